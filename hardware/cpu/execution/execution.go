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

// Package execution tracks the progress of the instruction currently being
// worked through by the CPU.
package execution

import (
	"fmt"

	"github.com/latortuga71/rnes/hardware/cpu/instructions"
)

// Context records the decoded state of the instruction most recently fetched
// by the CPU and how many cycles of it remain to be consumed.
type Context struct {
	// definition of the fetched opcode. nil when the CPU has yet to fetch
	// anything, for example immediately after a hard reset
	Defn *instructions.Definition

	// the effective address resolved for the instruction. meaningless for
	// implied and accumulator addressing
	AbsoluteAddress uint16

	// sign-extended branch offset. valid only for relative addressing
	RelativeOffset uint16

	// cycles still to be consumed before the next fetch. the instruction's
	// effects have already been applied; the counter exists so that ticks
	// advance at the pace of the real machine
	RemainingCycles int

	// whether the most recent branch instruction took its branch
	BranchTaken bool

	// whether the effective address calculation crossed a page boundary
	PageFault bool
}

// Reset forgets the in-flight instruction. the next tick will fetch.
func (ctx *Context) Reset() {
	ctx.Defn = nil
	ctx.AbsoluteAddress = 0
	ctx.RelativeOffset = 0
	ctx.RemainingCycles = 0
	ctx.BranchTaken = false
	ctx.PageFault = false
}

func (ctx Context) String() string {
	if ctx.Defn == nil {
		return "no instruction in flight"
	}
	return fmt.Sprintf("%s addr=%#04x remaining=%d", ctx.Defn.String(), ctx.AbsoluteAddress, ctx.RemainingCycles)
}
