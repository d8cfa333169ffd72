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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal wraps the posix terminal attached to the debugger's input. the
// debugger spends most of its time in canonical mode; cbreak mode is used
// while the emulation is free-running so that a single keypress can halt it.
type terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// whether terminal attributes could be read at all. when input is not a
	// terminal, a pipe for example, mode switching silently does nothing
	isTerminal bool
}

func newTerminal(input *os.File) *terminal {
	trm := &terminal{input: input}

	if err := termios.Tcgetattr(input.Fd(), &trm.canAttr); err != nil {
		return trm
	}
	trm.isTerminal = true

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	return trm
}

// cbreakMode puts the terminal into cbreak mode. input is available byte by
// byte, without waiting for a newline.
func (trm *terminal) cbreakMode() {
	if !trm.isTerminal {
		return
	}
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
}

// canonicalMode returns the terminal to normal line-buffered input.
func (trm *terminal) canonicalMode() {
	if !trm.isTerminal {
		return
	}
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
}
