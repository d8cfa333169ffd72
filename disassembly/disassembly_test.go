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

package disassembly_test

import (
	"testing"

	"github.com/latortuga71/rnes/disassembly"
	"github.com/latortuga71/rnes/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func TestDisassembly(t *testing.T) {
	mem := newMockMem()

	// LDA #$01; STA $0200; BNE back to the origin; .byte $02
	prog := []uint8{0xa9, 0x01, 0x8d, 0x00, 0x02, 0xd0, 0xf9, 0x02}
	for i, b := range prog {
		mem.Write(0x8000+uint16(i), b)
	}

	dsm := disassembly.FromMemory(mem, 0x8000, 0x8007)
	test.Equate(t, len(dsm.Entries), 4)

	test.Equate(t, dsm.Entries[0].String(), "0x8000  LDA #$01")
	test.Equate(t, dsm.Entries[1].String(), "0x8002  STA $0200")

	// branch operands are rendered as their target address
	test.Equate(t, dsm.Entries[2].String(), "0x8005  BNE $8000")

	// undocumented opcodes decode to raw data
	test.Equate(t, dsm.Entries[3].String(), "0x8007  .byte $02")
}
