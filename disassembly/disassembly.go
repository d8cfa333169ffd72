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

// Package disassembly turns the contents of cartridge space back into
// assembly language. Decoding is linear: it starts at a given origin and
// decodes every byte in sequence, so data interleaved with code will appear
// as spurious instructions. Bytes that decode to no documented instruction
// are rendered as raw data.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/latortuga71/rnes/hardware/cpu/instructions"
	"github.com/latortuga71/rnes/hardware/memory/cpubus"
)

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16
	Opcode  uint8

	// nil when the opcode is not a documented instruction
	Defn *instructions.Definition

	// raw operand value. the low byte is the only meaningful byte for the
	// single operand-byte addressing modes
	Operand uint16
}

// String returns the entry in the conventional assembly language form.
func (e Entry) String() string {
	if e.Defn == nil {
		return fmt.Sprintf("%#04x  .byte $%02x", e.Address, e.Opcode)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x  %s", e.Address, e.Defn.Operator))

	switch e.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		s.WriteString(" A")
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", e.Operand))
	case instructions.Relative:
		// render the branch target rather than the raw offset
		offset := e.Operand
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		s.WriteString(fmt.Sprintf(" $%04x", e.Address+uint16(e.Defn.Bytes)+offset))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", e.Operand))
	case instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", e.Operand))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", e.Operand))
	case instructions.IndexedIndirect:
		s.WriteString(fmt.Sprintf(" ($%02x,X)", e.Operand))
	case instructions.IndirectIndexed:
		s.WriteString(fmt.Sprintf(" ($%02x),Y", e.Operand))
	case instructions.AbsoluteIndexedX:
		s.WriteString(fmt.Sprintf(" $%04x,X", e.Operand))
	case instructions.AbsoluteIndexedY:
		s.WriteString(fmt.Sprintf(" $%04x,Y", e.Operand))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", e.Operand))
	case instructions.ZeroPageIndexedY:
		s.WriteString(fmt.Sprintf(" $%02x,Y", e.Operand))
	}

	return s.String()
}

// Disassembly is the result of a decoding pass over an area of memory.
type Disassembly struct {
	Entries []Entry
}

// FromMemory decodes from origin up to and including memtop.
func FromMemory(mem cpubus.Memory, origin uint16, memtop uint16) *Disassembly {
	dsm := &Disassembly{}
	defns := instructions.GetDefinitions()

	address := uint32(origin)
	for address <= uint32(memtop) {
		e := Entry{
			Address: uint16(address),
			Opcode:  mem.Read(uint16(address)),
		}
		e.Defn = defns[e.Opcode]
		address++

		if e.Defn != nil {
			for i := 0; i < e.Defn.Bytes-1 && address <= uint32(memtop); i++ {
				e.Operand |= uint16(mem.Read(uint16(address))) << (8 * i)
				address++
			}
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	return dsm
}

// Write the disassembly, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
