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

// Package hardware assembles the units of the console into a single
// machine. Attach a cartridge, reset, and tick.
package hardware

import (
	"github.com/latortuga71/rnes/cartridgeloader"
	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/hardware/cpu"
	"github.com/latortuga71/rnes/hardware/memory"
	"github.com/latortuga71/rnes/logger"
)

// Sentinal errors returned by the Console type.
const (
	NoResetVector = "console: no reset vector; has a cartridge been attached?"
)

// PRG bank data is placed in the upper half of the address space. a single
// bank cartridge is visible in both halves.
const (
	prgOrigin uint16 = 0x8000
	prgMirror uint16 = 0xc000
)

// Console is the named collection of the units that make up the emulated
// machine.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewConsole creates a Console in a powered-off state. A cartridge must be
// attached and the console reset before emulation can proceed.
func NewConsole() *Console {
	mem := memory.NewMemory()
	return &Console{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// AttachCartridge to the console. The program banks are placed into
// cartridge space and the console is reset. A cartridge with a single
// program bank is mirrored into both halves of the program area.
func (con *Console) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return curated.Errorf("console: %v", err)
	}

	logger.Logf("console", "attaching %s", cartload.String())

	con.Mem.Reset()
	if err := con.Mem.Cram(prgOrigin, cartload.PRG); err != nil {
		return curated.Errorf("console: %v", err)
	}
	if len(cartload.PRG) <= 0x4000 {
		if err := con.Mem.Cram(prgMirror, cartload.PRG); err != nil {
			return curated.Errorf("console: %v", err)
		}
	}

	return con.Reset()
}

// Reset the console. Equivalent to pressing the reset switch on a real
// machine. It is an error to reset a console with nothing in cartridge
// space.
func (con *Console) Reset() error {
	con.CPU.Reset()
	if !con.CPU.HasResetVector() {
		return curated.Errorf(NoResetVector)
	}
	logger.Logf("console", "reset: %s", con.CPU.String())
	return nil
}

// Tick the console one cycle.
func (con *Console) Tick() error {
	return con.CPU.Tick()
}

// Step the console to the next instruction boundary.
func (con *Console) Step() error {
	return con.CPU.Step()
}
