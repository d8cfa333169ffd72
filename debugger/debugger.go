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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/latortuga71/rnes/cartridgeloader"
	"github.com/latortuga71/rnes/hardware"
	"golang.org/x/sys/unix"
)

// Debugger is the parent type for the console debugger.
type Debugger struct {
	console *hardware.Console
	breaks  *breakpoints

	trm    *terminal
	input  *bufio.Scanner
	output io.Writer

	// the command loop runs until this is false
	running bool
}

// NewDebugger creates the debugger and attaches the cartridge. Commands are
// read from standard input.
func NewDebugger(cartload cartridgeloader.Loader) (*Debugger, error) {
	dbg := &Debugger{
		console: hardware.NewConsole(),
		breaks:  newBreakpoints(),
		trm:     newTerminal(os.Stdin),
		input:   bufio.NewScanner(os.Stdin),
		output:  os.Stdout,
	}

	if err := dbg.console.AttachCartridge(cartload); err != nil {
		return nil, err
	}

	return dbg, nil
}

func (dbg *Debugger) printf(s string, a ...interface{}) {
	fmt.Fprintf(dbg.output, s, a...)
	fmt.Fprintln(dbg.output)
}

// Start the command loop. Returns when the QUIT command is given or input
// reaches EOF.
func (dbg *Debugger) Start() error {
	dbg.running = true
	for dbg.running {
		fmt.Fprintf(dbg.output, "[%s] ", dbg.console.CPU.PC)
		if !dbg.input.Scan() {
			break
		}
		if err := dbg.parseCommand(dbg.input.Text()); err != nil {
			dbg.printf("error: %v", err)
		}
	}
	return dbg.input.Err()
}

// runUntilHalt free-runs the emulation until a keypress, a breakpoint or a
// cpu fault. the terminal is placed into cbreak mode for the duration so
// that the keypress does not need a newline.
func (dbg *Debugger) runUntilHalt() error {
	dbg.printf("running. press any key to halt")

	dbg.trm.cbreakMode()
	defer dbg.trm.canonicalMode()

	for i := 0; ; i++ {
		if err := dbg.console.Step(); err != nil {
			return err
		}

		if dbg.breaks.check(dbg.console.CPU.PC.Address()) {
			dbg.printf("%s", dbg.breaks.String())
			return nil
		}

		// polling the terminal for every instruction would dominate the run
		// loop
		if i%1024 == 0 && dbg.keyWaiting() {
			return nil
		}
	}
}

// keyWaiting returns true once a keypress is available, consuming it.
func (dbg *Debugger) keyWaiting() bool {
	if !dbg.trm.isTerminal {
		return false
	}

	fds := []unix.PollFd{{Fd: int32(dbg.trm.input.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}

	b := make([]byte, 1)
	_, _ = dbg.trm.input.Read(b)
	return true
}
