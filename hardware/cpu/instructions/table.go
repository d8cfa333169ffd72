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

package instructions

// the documented 6502 instruction set. cycle counts are the base costs;
// opcodes marked PageSensitive pay one extra cycle when the effective
// address crosses a page, and branches account for their own penalties.
var definitions = []Definition{
	// ADC
	{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x61, Operator: Adc, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x71, Operator: Adc, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// AND
	{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x21, Operator: And, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x31, Operator: And, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// ASL
	{OpCode: 0x0a, Operator: Asl, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x06, Operator: Asl, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x16, Operator: Asl, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	// branches
	{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative, Cycles: 2, Effect: Flow},

	// BIT
	{OpCode: 0x24, Operator: Bit, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute, Cycles: 4, Effect: Read},

	// BRK
	{OpCode: 0x00, Operator: Brk, AddressingMode: Implied, Cycles: 7, Effect: Interrupt},

	// flag clear/set
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Cycles: 2, Effect: Read},

	// CMP
	{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xc5, Operator: Cmp, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xd5, Operator: Cmp, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xc1, Operator: Cmp, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xd1, Operator: Cmp, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// CPX
	{OpCode: 0xe0, Operator: Cpx, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xe4, Operator: Cpx, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute, Cycles: 4, Effect: Read},

	// CPY
	{OpCode: 0xc0, Operator: Cpy, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xc4, Operator: Cpy, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute, Cycles: 4, Effect: Read},

	// DEC
	{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	// DEX/DEY
	{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Cycles: 2, Effect: Read},

	// EOR
	{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x41, Operator: Eor, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x51, Operator: Eor, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// INC
	{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	// INX/INY
	{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Cycles: 2, Effect: Read},

	// JMP
	{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Cycles: 3, Effect: Flow},
	{OpCode: 0x6c, Operator: Jmp, AddressingMode: Indirect, Cycles: 5, Effect: Flow},

	// JSR
	{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Cycles: 6, Effect: Subroutine},

	// LDA
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xb1, Operator: Lda, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// LDX
	{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},

	// LDY
	{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},

	// LSR
	{OpCode: 0x4a, Operator: Lsr, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x46, Operator: Lsr, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x56, Operator: Lsr, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x4e, Operator: Lsr, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x5e, Operator: Lsr, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	// NOP
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Cycles: 2, Effect: Read},

	// ORA
	{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0x01, Operator: Ora, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0x11, Operator: Ora, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// stack
	{OpCode: 0x48, Operator: Pha, AddressingMode: Implied, Cycles: 3, Effect: Read},
	{OpCode: 0x08, Operator: Php, AddressingMode: Implied, Cycles: 3, Effect: Read},
	{OpCode: 0x68, Operator: Pla, AddressingMode: Implied, Cycles: 4, Effect: Read},
	{OpCode: 0x28, Operator: Plp, AddressingMode: Implied, Cycles: 4, Effect: Read},

	// ROL
	{OpCode: 0x2a, Operator: Rol, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x26, Operator: Rol, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x36, Operator: Rol, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	// ROR
	{OpCode: 0x6a, Operator: Ror, AddressingMode: Accumulator, Cycles: 2, Effect: Read},
	{OpCode: 0x66, Operator: Ror, AddressingMode: ZeroPage, Cycles: 5, Effect: RMW},
	{OpCode: 0x76, Operator: Ror, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: RMW},
	{OpCode: 0x6e, Operator: Ror, AddressingMode: Absolute, Cycles: 6, Effect: RMW},
	{OpCode: 0x7e, Operator: Ror, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: RMW},

	// RTI/RTS
	{OpCode: 0x40, Operator: Rti, AddressingMode: Implied, Cycles: 6, Effect: Interrupt},
	{OpCode: 0x60, Operator: Rts, AddressingMode: Implied, Cycles: 6, Effect: Subroutine},

	// SBC
	{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate, Cycles: 2, Effect: Read},
	{OpCode: 0xe5, Operator: Sbc, AddressingMode: ZeroPage, Cycles: 3, Effect: Read},
	{OpCode: 0xf5, Operator: Sbc, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Read},
	{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute, Cycles: 4, Effect: Read},
	{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true, Effect: Read},
	{OpCode: 0xe1, Operator: Sbc, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Read},
	{OpCode: 0xf1, Operator: Sbc, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true, Effect: Read},

	// STA
	{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteIndexedX, Cycles: 5, Effect: Write},
	{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteIndexedY, Cycles: 5, Effect: Write},
	{OpCode: 0x81, Operator: Sta, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Write},
	{OpCode: 0x91, Operator: Sta, AddressingMode: IndirectIndexed, Cycles: 6, Effect: Write},

	// STX
	{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Cycles: 4, Effect: Write},

	// STY
	{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Write},
	{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Cycles: 4, Effect: Write},

	// transfers
	{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Cycles: 2, Effect: Read},
	{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Cycles: 2, Effect: Read},
}

// the table built by the package init() function and shared by every CPU
// instance. never mutated after construction.
var table []*Definition

func init() {
	table = make([]*Definition, 256)
	for i := range definitions {
		defn := &definitions[i]
		if table[defn.OpCode] != nil {
			// an opcode defined twice is a defect in the table above, not a
			// runtime condition
			panic(defn.String())
		}
		defn.Bytes = defn.AddressingMode.OperandBytes() + 1
		table[defn.OpCode] = defn
	}
}

// GetDefinitions returns the instruction table, indexed by opcode. Slots for
// which the 6502 has no documented instruction are nil; callers must treat a
// nil entry as a fault, never as a no-op.
func GetDefinitions() []*Definition {
	return table
}
