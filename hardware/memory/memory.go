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

// Package memory implements the memory system attached to the CPU. The
// backing store is a single 64KiB array. Mirrored areas of the bus are
// folded onto their primary addresses on every access, so the mirrors of
// internal RAM and of the PPU register file behave as they do on real
// hardware.
package memory

import (
	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/hardware/memory/memorymap"
)

// Sentinal error returned by Memory.Cram().
const (
	CramTooLarge = "memory: %d bytes will not fit at origin %#04x"
)

// Memory is the monolithic memory system attached to the CPU. It implements
// the cpubus.Memory interface.
type Memory struct {
	ram []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		ram: make([]uint8, 0x10000),
	}
}

// Reset contents of memory to zero.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
}

// Read a byte from the bus address.
func (mem *Memory) Read(address uint16) uint8 {
	ma, _ := memorymap.MapAddress(address)
	return mem.ram[ma]
}

// Write a byte to the bus address.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, _ := memorymap.MapAddress(address)
	mem.ram[ma] = data
}

// Peek returns the value at the bus address without disturbing the state of
// the machine. for this memory system it is equivalent to Read() but
// debuggers should prefer it.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// ReadAddress reads the 16bit little-endian pointer stored at the bus
// address. used for interrupt vectors and by the debugger.
func (mem *Memory) ReadAddress(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// Cram a block of data into memory starting at origin. unlike Write() the
// data is placed at the literal addresses, with no mirror folding. used when
// attaching cartridge data.
func (mem *Memory) Cram(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.ram) {
		return curated.Errorf(CramTooLarge, len(data), origin)
	}
	copy(mem.ram[origin:], data)
	return nil
}
