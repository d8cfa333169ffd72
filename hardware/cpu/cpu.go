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

package cpu

import (
	"fmt"

	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/hardware/cpu/execution"
	"github.com/latortuga71/rnes/hardware/cpu/instructions"
	"github.com/latortuga71/rnes/hardware/cpu/registers"
	"github.com/latortuga71/rnes/hardware/memory/cpubus"
)

// Sentinal errors returned by the CPU.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	UnknownAddressingMode    = "cpu: unknown addressing mode for %s"
	UnknownOperator          = "cpu: unknown operator for %s"
)

// CPU implements the 2A03 found in the NES.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// the instruction table, indexed by opcode
	instructions []*instructions.Definition

	// state of the instruction currently being consumed. the definition
	// field is nil until the first fetch after a reset
	LastResult execution.Context
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Note that the CPU will be in an undefined state and will need to be reset
// before use.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset puts the CPU into the state it is in after power cycling. The
// program counter is loaded from the reset vector and the next eight ticks
// are consumed before the first fetch, as on the real part.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.PC.Load(mc.read16Bit(cpubus.Reset))
	mc.LastResult.Reset()
	mc.LastResult.RemainingCycles = 8
}

// IRQ requests a maskable interrupt. The request is ignored when the
// interrupt disable flag is set. The status byte is pushed with the break
// bit clear, distinguishing a hardware interrupt from BRK.
func (mc *CPU) IRQ() {
	if mc.Status.InterruptDisable {
		return
	}

	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Value() &^ 0x10)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.IRQ))
	mc.LastResult.Reset()
	mc.LastResult.RemainingCycles = 7
}

// NMI triggers the non-maskable interrupt. The interrupt disable flag is not
// consulted.
func (mc *CPU) NMI() {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Value() &^ 0x10)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.NMI))
	mc.LastResult.Reset()
	mc.LastResult.RemainingCycles = 8
}

// HasResetVector returns false if the reset vector points into the zero
// page, a sure sign that nothing has been attached to cartridge space.
func (mc *CPU) HasResetVector() bool {
	return mc.read16Bit(cpubus.Reset)&0xff00 != 0x0000
}

// Tick advances the CPU by one cycle. A new instruction is fetched and fully
// executed when the previous instruction has no cycles left to consume; the
// fetch tick itself counts towards the new instruction's budget.
func (mc *CPU) Tick() error {
	if mc.LastResult.RemainingCycles == 0 {
		if err := mc.executeInstruction(); err != nil {
			return err
		}
	}
	mc.LastResult.RemainingCycles--
	return nil
}

// Step advances the CPU to the next instruction boundary, consuming however
// many ticks the current instruction requires.
func (mc *CPU) Step() error {
	if err := mc.Tick(); err != nil {
		return err
	}
	for mc.LastResult.RemainingCycles > 0 {
		// an error can only occur on the fetch tick
		_ = mc.Tick()
	}
	return nil
}

// read 8 bits from the PC address and advance the PC.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// read 16 bits, little-endian, from the PC address and advance the PC.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return (uint16(hi) << 8) | uint16(lo)
}

// read 16 bits, little-endian, from the supplied address.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) push(data uint8) {
	mc.mem.Write(mc.SP.Address(), data)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(mc.SP.Address())
}

// resolve the effective address for the instruction. returns the address and
// whether the calculation crossed a page boundary. for relative addressing
// the sign-extended offset is recorded in the execution context instead.
func (mc *CPU) resolveAddress(defn *instructions.Definition) (uint16, bool, error) {
	var address uint16
	var pageFault bool

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// no operand

	case instructions.Immediate:
		address = mc.PC.Address()
		mc.PC.Add(1)

	case instructions.Relative:
		offset := uint16(mc.read8BitPC())
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		mc.LastResult.RelativeOffset = offset

	case instructions.Absolute:
		address = mc.read16BitPC()

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())

	case instructions.Indirect:
		// the 6502 does not carry into the high byte when the pointer sits
		// at the end of a page. it reads the high byte from the start of the
		// same page. JMP is the only instruction with this mode and programs
		// do rely on the quirk
		ptr := mc.read16BitPC()
		lo := mc.mem.Read(ptr)
		var hi uint8
		if ptr&0x00ff == 0x00ff {
			hi = mc.mem.Read(ptr & 0xff00)
		} else {
			hi = mc.mem.Read(ptr + 1)
		}
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		t := mc.read8BitPC() + mc.X.Value()
		lo := mc.mem.Read(uint16(t))
		hi := mc.mem.Read(uint16(t + 1))
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndirectIndexed:
		t := mc.read8BitPC()
		lo := mc.mem.Read(uint16(t))
		hi := mc.mem.Read(uint16(t + 1))
		base := (uint16(hi) << 8) | uint16(lo)
		address = base + mc.Y.Address()
		pageFault = address&0xff00 != base&0xff00

	case instructions.AbsoluteIndexedX:
		base := mc.read16BitPC()
		address = base + mc.X.Address()
		pageFault = address&0xff00 != base&0xff00

	case instructions.AbsoluteIndexedY:
		base := mc.read16BitPC()
		address = base + mc.Y.Address()
		pageFault = address&0xff00 != base&0xff00

	case instructions.ZeroPageIndexedX:
		// zero page indexing stays in the zero page
		address = uint16(mc.read8BitPC() + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		address = uint16(mc.read8BitPC() + mc.Y.Value())

	default:
		return 0, false, curated.Errorf(UnknownAddressingMode, defn.String())
	}

	return address, pageFault, nil
}

// executeInstruction fetches, decodes and applies the full effect of the
// next instruction. the caller is responsible for pacing out the cycle
// budget left in the execution context.
func (mc *CPU) executeInstruction() error {
	opcodeAddress := mc.PC.Address()
	opcode := mc.read8BitPC()

	defn := mc.instructions[opcode]
	if defn == nil {
		// something has gone wrong with the program. there is no meaningful
		// way to continue
		mc.PC.Load(opcodeAddress)
		return curated.Errorf(UnimplementedInstruction, opcode, opcodeAddress)
	}

	mc.LastResult.Reset()
	mc.LastResult.Defn = defn

	address, pageFault, err := mc.resolveAddress(defn)
	if err != nil {
		return err
	}
	mc.LastResult.AbsoluteAddress = address
	mc.LastResult.PageFault = pageFault

	cycles := defn.Cycles
	if pageFault && defn.PageSensitive {
		cycles++
	}

	// value is the operand for instructions with a read effect. the
	// accumulator mode instructions operate on the A register directly
	var value uint8
	switch defn.Effect {
	case instructions.Read, instructions.RMW:
		if defn.AddressingMode == instructions.Accumulator {
			value = mc.A.Value()
		} else if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Relative {
			value = mc.mem.Read(address)
		}
	}

	// branch takes the branch when taken is true. penalties are one cycle
	// for the branch and another if the branch destination is in a
	// different page to the instruction that follows the branch
	branch := func(taken bool) {
		if !taken {
			return
		}
		cycles++
		target := mc.PC.Address() + mc.LastResult.RelativeOffset
		if target&0xff00 != mc.PC.Address()&0xff00 {
			cycles++
		}
		mc.PC.Load(target)
		mc.LastResult.AbsoluteAddress = target
		mc.LastResult.BranchTaken = true
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Adc:
		var carry, overflow bool
		carry, overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Sbc:
		var carry, overflow bool
		carry, overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Asl:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ASL()
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		} else {
			r := registers.NewAnonRegister(value)
			mc.Status.Carry = r.ASL()
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
			mc.mem.Write(address, r.Value())
		}

	case instructions.Lsr:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.LSR()
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		} else {
			r := registers.NewAnonRegister(value)
			mc.Status.Carry = r.LSR()
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
			mc.mem.Write(address, r.Value())
		}

	case instructions.Rol:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		} else {
			r := registers.NewAnonRegister(value)
			mc.Status.Carry = r.ROL(mc.Status.Carry)
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
			mc.mem.Write(address, r.Value())
		}

	case instructions.Ror:
		if defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		} else {
			r := registers.NewAnonRegister(value)
			mc.Status.Carry = r.ROR(mc.Status.Carry)
			mc.Status.Zero = r.IsZero()
			mc.Status.Sign = r.IsNegative()
			mc.mem.Write(address, r.Value())
		}

	case instructions.Inc:
		r := registers.NewAnonRegister(value + 1)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.mem.Write(address, r.Value())

	case instructions.Dec:
		r := registers.NewAnonRegister(value - 1)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.mem.Write(address, r.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Bit:
		r := registers.NewAnonRegister(value)
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()

	case instructions.Cmp:
		r := registers.NewAnonRegister(mc.A.Value())
		carry, _ := r.Subtract(value, true)
		mc.Status.Carry = carry
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Cpx:
		r := registers.NewAnonRegister(mc.X.Value())
		carry, _ := r.Subtract(value, true)
		mc.Status.Carry = carry
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Cpy:
		r := registers.NewAnonRegister(mc.Y.Value())
		carry, _ := r.Subtract(value, true)
		mc.Status.Carry = carry
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		// no flags affected
		mc.SP.Load(mc.X.Value())

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		// the break bit is only ever set in the pushed copy
		mc.push(mc.Status.Value() | 0x10)

	case instructions.Plp:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// the PC pushed is the address of the last byte of the JSR
		// instruction, not of the instruction that follows it
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.PC.Load(address)

	case instructions.Rts:
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
		mc.PC.Add(1)

	case instructions.Brk:
		// the byte after the opcode is padding. the pushed PC skips it
		mc.PC.Add(1)
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))
		mc.push(mc.Status.Value() | 0x10)
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))

	case instructions.Rti:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	case instructions.Bcc:
		branch(!mc.Status.Carry)

	case instructions.Bcs:
		branch(mc.Status.Carry)

	case instructions.Beq:
		branch(mc.Status.Zero)

	case instructions.Bne:
		branch(!mc.Status.Zero)

	case instructions.Bmi:
		branch(mc.Status.Sign)

	case instructions.Bpl:
		branch(!mc.Status.Sign)

	case instructions.Bvs:
		branch(mc.Status.Overflow)

	case instructions.Bvc:
		branch(!mc.Status.Overflow)

	default:
		return curated.Errorf(UnknownOperator, defn.String())
	}

	mc.LastResult.RemainingCycles = cycles

	return nil
}
