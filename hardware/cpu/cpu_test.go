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

package cpu_test

import (
	"testing"

	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/hardware/cpu"
	rtest "github.com/latortuga71/rnes/hardware/cpu/registers/test"
	"github.com/latortuga71/rnes/test"
)

func TestResetSequence(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.Write(0xfffc, 0x00)
	mem.Write(0xfffd, 0x80)
	mem.putInstructions(0x8000, 0xea)

	mc.Reset()
	rtest.EquateRegisters(t, mc.PC, 0x8000)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.X, 0)
	rtest.EquateRegisters(t, mc.Y, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizc")

	// eight cycles before the first fetch
	test.Equate(t, mc.LastResult.RemainingCycles, 8)
	tickN(t, mc, 8)

	// first instruction executes on the next tick
	tickN(t, mc, 2)
	rtest.EquateRegisters(t, mc.PC, 0x8001)
}

func TestLoadsAndStores(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$ff; STA $10; LDX #$00; STX $0200
	mem.putInstructions(0x1000, 0xa9, 0xff, 0x85, 0x10, 0xa2, 0x00, 0x8e, 0x00, 0x02)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc) // LDA #$ff
	rtest.EquateRegisters(t, mc.A, 0xff)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")

	step(t, mc) // STA $10
	mem.assert(t, 0x0010, 0xff)

	step(t, mc) // LDX #$00
	rtest.EquateRegisters(t, mc.X, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-bdiZc")

	step(t, mc) // STX $0200
	mem.assert(t, 0x0200, 0x00)
	rtest.EquateRegisters(t, mc.PC, 0x1009)
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$7f; ADC #$01 -- signed overflow with no carry out
	mem.putInstructions(0x1000, 0xa9, 0x7f, 0x69, 0x01)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateRegisters(t, mc.Status, "SV-bdizc")
}

func TestArithmeticCarry(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$ff; ADC #$01 -- wraps to zero with carry out
	mem.putInstructions(0x1000, 0xa9, 0xff, 0x69, 0x01)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateRegisters(t, mc.Status, "sv-bdiZC")
}

func TestSubtraction(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// SEC; LDA #$05; SBC #$03 -- carry set means no borrow
	mem.putInstructions(0x1000, 0x38, 0xa9, 0x05, 0xe9, 0x03)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x02)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
}

func TestFlagInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// SEC; SEC; CLC -- setting a set flag is a no-op
	mem.putInstructions(0x1000, 0x38, 0x38, 0x18)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizc")
}

func TestZeroPageIndexedWrap(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// indexing off the end of the zero page wraps within the zero page
	mem.Write(0x0001, 0x42)
	mem.putInstructions(0x1000, 0xa2, 0x02, 0xb5, 0xff) // LDX #$02; LDA $ff,X
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x42)
}

func TestIndexedIndirect(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0024, 0x34)
	mem.Write(0x0025, 0x12)
	mem.Write(0x1234, 0x99)
	mem.putInstructions(0x1000, 0xa2, 0x04, 0xa1, 0x20) // LDX #$04; LDA ($20,X)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x99)
}

func TestIndirectIndexed(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0040, 0x00)
	mem.Write(0x0041, 0x12)
	mem.Write(0x1205, 0x77)
	mem.putInstructions(0x1000, 0xa0, 0x05, 0xb1, 0x40) // LDY #$05; LDA ($40),Y
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x77)
}

func TestJmpIndirectBug(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// a pointer at the end of a page reads its high byte from the start of
	// the same page, not from the next page
	mem.Write(0x02ff, 0x00)
	mem.Write(0x0300, 0x80) // would be the high byte on a corrected part
	mem.Write(0x0200, 0x40)
	mem.putInstructions(0x1000, 0x6c, 0xff, 0x02) // JMP ($02ff)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x4000)
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$37; PHA; LDA #$00; PLA
	mem.putInstructions(0x1000, 0xa9, 0x37, 0x48, 0xa9, 0x00, 0x68)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc) // PHA
	rtest.EquateRegisters(t, mc.SP, 0xfc)
	mem.assert(t, 0x01fd, 0x37)

	step(t, mc) // LDA #$00
	rtest.EquateRegisters(t, mc.A, 0x00)

	step(t, mc) // PLA
	rtest.EquateRegisters(t, mc.A, 0x37)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
}

func TestStatusStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// SEC; PHP; CLC; PLP -- carry travels through the stack, the break bit
	// exists only in the pushed copy
	mem.putInstructions(0x1000, 0x38, 0x08, 0x18, 0x28)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc) // PHP
	mem.assert(t, 0x01fd, 0x31)

	step(t, mc) // CLC
	rtest.EquateRegisters(t, mc.Status, "sv-bdizc")

	step(t, mc) // PLP
	rtest.EquateRegisters(t, mc.Status, "sv-bdizC")
}

func TestJsrRts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0x20, 0x00, 0x20, 0xea) // JSR $2000; NOP
	mem.putInstructions(0x2000, 0x60)                   // RTS
	startProgram(t, mc, mem, 0x1000)

	tickN(t, mc, 6) // JSR
	rtest.EquateRegisters(t, mc.PC, 0x2000)
	rtest.EquateRegisters(t, mc.SP, 0xfb)

	// the pushed return address is one short of the following instruction
	mem.assert(t, 0x01fd, 0x10)
	mem.assert(t, 0x01fc, 0x02)

	tickN(t, mc, 6) // RTS
	rtest.EquateRegisters(t, mc.PC, 0x1003)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
}

func TestBrkRti(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0x00, 0xff) // BRK with padding byte
	mem.putInstructions(0x2000, 0x40)       // RTI
	mem.Write(0xfffe, 0x00)
	mem.Write(0xffff, 0x20)
	startProgram(t, mc, mem, 0x1000)

	tickN(t, mc, 7) // BRK
	rtest.EquateRegisters(t, mc.PC, 0x2000)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")

	// pushed status has the break bit set, pushed PC skips the padding byte
	mem.assert(t, 0x01fb, 0x30)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fd, 0x10)

	tickN(t, mc, 6) // RTI
	rtest.EquateRegisters(t, mc.PC, 0x1002)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizc")
}

func TestBranchTiming(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// branch not taken costs the base two cycles
	mem.putInstructions(0x1000, 0xa9, 0x00, 0xd0, 0x02) // LDA #$00; BNE +2
	startProgram(t, mc, mem, 0x1000)
	step(t, mc)
	tickN(t, mc, 2)
	rtest.EquateRegisters(t, mc.PC, 0x1004)

	// branch taken within the page costs one extra cycle
	mem.putInstructions(0x1000, 0xa9, 0x01, 0xd0, 0x02) // LDA #$01; BNE +2
	startProgram(t, mc, mem, 0x1000)
	step(t, mc)
	tickN(t, mc, 3)
	rtest.EquateRegisters(t, mc.PC, 0x1006)

	// branch taken into another page costs two extra cycles
	mem.putInstructions(0x10fb, 0xa9, 0x01, 0xd0, 0x01) // LDA #$01; BNE +1
	startProgram(t, mc, mem, 0x10fb)
	step(t, mc)
	tickN(t, mc, 4)
	rtest.EquateRegisters(t, mc.PC, 0x1100)
}

func TestPageCrossPenalty(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.Write(0x1100, 0x42)
	mem.Write(0x1101, 0x43)

	// effective address crosses a page so the read costs five cycles
	mem.putInstructions(0x3000, 0xa0, 0x01, 0xb9, 0xff, 0x10) // LDY #$01; LDA $10ff,Y
	startProgram(t, mc, mem, 0x3000)
	step(t, mc)
	tickN(t, mc, 5)
	rtest.EquateRegisters(t, mc.A, 0x42)

	// no page cross, no penalty
	mem.putInstructions(0x3000, 0xa0, 0x01, 0xb9, 0x00, 0x11) // LDY #$01; LDA $1100,Y
	startProgram(t, mc, mem, 0x3000)
	step(t, mc)
	tickN(t, mc, 4)
	rtest.EquateRegisters(t, mc.A, 0x43)
}

func TestReadModifyWrite(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0020, 0x81)
	mem.putInstructions(0x1000, 0x06, 0x20, 0xe6, 0x20) // ASL $20; INC $20
	startProgram(t, mc, mem, 0x1000)

	tickN(t, mc, 5) // ASL
	mem.assert(t, 0x0020, 0x02)
	rtest.EquateRegisters(t, mc.Status, "sv-bdizC")

	tickN(t, mc, 5) // INC
	mem.assert(t, 0x0020, 0x03)
}

func TestBit(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.Write(0x0030, 0xc0)
	mem.putInstructions(0x1000, 0xa9, 0x0f, 0x24, 0x30) // LDA #$0f; BIT $30
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "SV-bdiZc")
	rtest.EquateRegisters(t, mc.A, 0x0f)
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20) // LDA #$10; CMP #$10; CMP #$20
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "sv-bdiZC")
	step(t, mc)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")
}

func TestTransfers(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$80; TAX; TXS; LDX #$00; TSX
	mem.putInstructions(0x1000, 0xa9, 0x80, 0xaa, 0x9a, 0xa2, 0x00, 0xba)
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc) // TAX
	rtest.EquateRegisters(t, mc.X, 0x80)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")

	step(t, mc) // TXS affects no flags
	rtest.EquateRegisters(t, mc.SP, 0x80)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")

	step(t, mc) // LDX #$00
	step(t, mc) // TSX
	rtest.EquateRegisters(t, mc.X, 0x80)
}

func TestDecrementWrap(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0xa2, 0x00, 0xca) // LDX #$00; DEX
	startProgram(t, mc, mem, 0x1000)

	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0xff)
	rtest.EquateRegisters(t, mc.Status, "Sv-bdizc")
}

func TestIRQ(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0xea)
	mem.Write(0xfffe, 0x00)
	mem.Write(0xffff, 0x20)
	startProgram(t, mc, mem, 0x1000)

	mc.IRQ()
	rtest.EquateRegisters(t, mc.PC, 0x2000)
	rtest.EquateRegisters(t, mc.Status, "sv-bdIzc")
	test.Equate(t, mc.LastResult.RemainingCycles, 7)

	// pushed status has the break bit clear
	mem.assert(t, 0x01fb, 0x20)

	// a second request is masked
	mc.IRQ()
	rtest.EquateRegisters(t, mc.PC, 0x2000)
	rtest.EquateRegisters(t, mc.SP, 0xfa)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0x78, 0xea) // SEI
	mem.Write(0xfffa, 0x00)
	mem.Write(0xfffb, 0x30)
	startProgram(t, mc, mem, 0x1000)

	// the interrupt disable flag does not mask an NMI
	step(t, mc)
	mc.NMI()
	rtest.EquateRegisters(t, mc.PC, 0x3000)
	test.Equate(t, mc.LastResult.RemainingCycles, 8)
}

func TestUnimplementedInstruction(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000, 0x02)
	startProgram(t, mc, mem, 0x1000)

	err := mc.Step()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.UnimplementedInstruction) {
		t.Errorf("unexpected error: %v", err)
	}

	// the PC is left pointing at the offending opcode
	rtest.EquateRegisters(t, mc.PC, 0x1000)
}
