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

// Package memorymap facilitates the translation of addresses appearing on
// the CPU bus to the canonical address of the area being accessed.
//
// The NES decodes only part of the address bus for its internal RAM and for
// the PPU register file, causing those areas to repeat throughout their
// address ranges. MapAddress() folds a mirror address onto the primary
// address. Addresses in the cartridge space map to themselves.
package memorymap

// Area represents the different areas of the CPU bus.
type Area int

// The different areas of the CPU bus.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// The origin and memtop of each bus area.
const (
	OriginRAM       uint16 = 0x0000
	MemtopRAM       uint16 = 0x1fff
	OriginPPU       uint16 = 0x2000
	MemtopPPU       uint16 = 0x3fff
	OriginIO        uint16 = 0x4000
	MemtopIO        uint16 = 0x401f
	OriginCartridge uint16 = 0x4020
	MemtopCartridge uint16 = 0xffff
)

// The stack occupies the second page of internal RAM.
const (
	OriginStack uint16 = 0x0100
	MemtopStack uint16 = 0x01ff
)

// MapAddress translates an address on the CPU bus to the primary address of
// the area it selects.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		// 2KiB of RAM repeats four times
		return address & 0x07ff, RAM
	case address <= MemtopPPU:
		// eight PPU registers repeat every eight bytes
		return OriginPPU | (address & 0x0007), PPU
	case address <= MemtopIO:
		return address, IO
	}
	return address, Cartridge
}
