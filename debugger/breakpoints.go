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

package debugger

import (
	"fmt"
	"strings"
)

// breakpoints is the list of program counter values the RUN loop halts on.
type breakpoints struct {
	breaks map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		breaks: make(map[uint16]bool),
	}
}

// add a breakpoint. adding an existing breakpoint is harmless.
func (bp *breakpoints) add(address uint16) {
	bp.breaks[address] = true
}

// drop a breakpoint. returns false if no breakpoint exists at the address.
func (bp *breakpoints) drop(address uint16) bool {
	if !bp.breaks[address] {
		return false
	}
	delete(bp.breaks, address)
	return true
}

// check returns true if a breakpoint exists for the address.
func (bp *breakpoints) check(address uint16) bool {
	return bp.breaks[address]
}

func (bp *breakpoints) String() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}

	s := strings.Builder{}
	for address := range bp.breaks {
		s.WriteString(fmt.Sprintf("break on PC=%#04x\n", address))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
