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

	"github.com/latortuga71/rnes/hardware/cpu"
	"github.com/latortuga71/rnes/hardware/memory/cpubus"
	"github.com/latortuga71/rnes/test"
)

// mockMem is a bare 64KiB array with no mirroring. it keeps the cpu tests
// independent of the memory package.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// putInstructions writes bytes to consecutive addresses from origin,
// returning the address after the last byte written.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for _, b := range bytes {
		mem.Write(origin, b)
		origin++
	}
	return origin
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.Equate(t, mem.internal[address], value)
}

// startProgram points the reset vector at origin and resets the cpu,
// consuming the reset latency so that the next step executes the first
// instruction of the program.
func startProgram(t *testing.T, mc *cpu.CPU, mem *mockMem, origin uint16) {
	t.Helper()
	mem.Write(cpubus.Reset, uint8(origin))
	mem.Write(cpubus.Reset+1, uint8(origin>>8))
	mc.Reset()
	step(t, mc)
}

// step the cpu to the next instruction boundary, expecting no fault.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.ExpectedSuccess(t, mc.Step())
}

// tickN advances the cpu by exactly n cycles, expecting no fault and
// expecting the cpu to be at an instruction boundary afterwards.
func tickN(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.ExpectedSuccess(t, mc.Tick())
	}
	test.Equate(t, mc.LastResult.RemainingCycles, 0)
}
