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

package registers

// StackPointer is an 8 bit register offsetting into the stack page of memory.
// It embeds Register and so inherits its modular arithmetic: decrementing
// past 0x00 wraps to 0xff within the stack page, never into the rest of the
// address space.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// Address returns the current value of the stack pointer as an address in
// the stack page (0x0100 to 0x01ff).
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}
