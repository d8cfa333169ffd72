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

// Package instructions defines the 6502 instruction set as a table of
// Definition values indexed by opcode.
//
// The table is built once, at package initialisation, and is read-only
// thereafter. GetDefinitions() returns the shared table.
// Every documented opcode of the 6502 has an entry; the undocumented opcode
// slots are nil and it is the caller's responsibility to treat a nil entry
// as a fault rather than as a no-op.
package instructions
