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

// Package cpu emulates the 2A03, the 6502 derivative found in the NES.
//
// Emulation is accurate at the instruction level. The entire effect of an
// instruction is applied when the opcode is fetched and the remaining cycle
// budget is then consumed one Tick() at a time, so that over any stretch of
// ticks the emulated CPU keeps pace with the real part. Binary decimal mode
// is not implemented, matching the 2A03 which lacks it.
//
// Interrupts are serviced through the Reset(), IRQ() and NMI() functions.
// IRQ() honours the interrupt disable flag; NMI() and Reset() cannot be
// masked.
package cpu
