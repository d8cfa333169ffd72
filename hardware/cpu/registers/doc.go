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

// Package registers implements the register types of the 6502: the general
// purpose 8 bit Register, the 16 bit ProgramCounter, the StackPointer and the
// StatusRegister.
//
// All arithmetic on the 8 bit registers is modular. Adding 1 to 0xff wraps to
// 0x00 and subtracting 1 from 0x00 wraps to 0xff. Nothing ever traps on
// overflow; the Add() and Subtract() functions instead report the carry and
// overflow states for the status register to record.
//
// The StatusRegister is a struct of named flag bits. The packed byte form of
// the register only exists at the interrupt/stack boundary, through the
// Value() and FromValue() functions.
package registers
