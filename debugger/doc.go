// This file is part of RNES.
//
// RNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RNES.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger implements a terminal debugger for the emulated console.
// It accepts commands on standard input, one per line. The HELP command
// lists what is available.
//
// While the RUN command is free-running the terminal is placed into cbreak
// mode and any keypress halts the emulation. Breakpoints can be placed on
// program counter values with the BREAK command.
package debugger
