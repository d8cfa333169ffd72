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
	"strconv"
	"strings"

	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/logger"
)

// Sentinal errors returned by the command parser.
const (
	UnknownCommand   = "debugger: unknown command (%s)"
	MissingArgument  = "debugger: %s requires an argument"
	InvalidArgument  = "debugger: cannot interpret %s as a value"
	NoSuchBreakpoint = "debugger: no breakpoint at %#04x"
)

const helpText = `BREAK <addr>    halt RUN when the program counter reaches addr
DROP <addr>     remove a breakpoint
LIST            list breakpoints
STEP [n]        execute the next n instructions (default 1)
TICK [n]        consume n cycles (default 1)
RUN             free-run until keypress, breakpoint or fault
REGS            show cpu registers
LAST            show the instruction in flight
MEM <addr> [n]  hexdump n bytes of memory (default 64)
POKE <addr> <v> write a value to memory
IRQ             request a maskable interrupt
NMI             trigger the non-maskable interrupt
RESET           reset the console
LOG             show the emulation log
VIZ [file]      write a graphviz map of the machine state
QUIT            leave the debugger`

// parse a numeric argument. hexadecimal is the normal radix of the debugger;
// a decimal value must be prefixed with '#'.
func parseValue(arg string, bitSize int) (uint64, error) {
	base := 16
	arg = strings.TrimPrefix(arg, "$")
	arg = strings.TrimPrefix(arg, "0x")
	if strings.HasPrefix(arg, "#") {
		arg = arg[1:]
		base = 10
	}

	v, err := strconv.ParseUint(arg, base, bitSize)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, arg)
	}
	return v, nil
}

func (dbg *Debugger) parseCommand(line string) error {
	toks := strings.Fields(strings.ToUpper(line))
	if len(toks) == 0 {
		return nil
	}
	cmd := toks[0]
	args := toks[1:]

	// repeat count for STEP and TICK
	count := func() (int, error) {
		if len(args) == 0 {
			return 1, nil
		}
		n, err := parseValue("#"+strings.TrimPrefix(args[0], "#"), 32)
		return int(n), err
	}

	// required address argument
	address := func() (uint16, error) {
		if len(args) == 0 {
			return 0, curated.Errorf(MissingArgument, cmd)
		}
		a, err := parseValue(args[0], 16)
		return uint16(a), err
	}

	switch cmd {
	case "HELP":
		dbg.printf("%s", helpText)

	case "QUIT", "EXIT":
		dbg.running = false

	case "RESET":
		return dbg.console.Reset()

	case "STEP":
		n, err := count()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := dbg.console.Step(); err != nil {
				return err
			}
		}
		dbg.printf("%s", dbg.console.CPU.String())

	case "TICK":
		n, err := count()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := dbg.console.Tick(); err != nil {
				return err
			}
		}
		dbg.printf("%s", dbg.console.CPU.LastResult.String())

	case "RUN":
		if err := dbg.runUntilHalt(); err != nil {
			return err
		}
		dbg.printf("%s", dbg.console.CPU.String())

	case "REGS":
		dbg.printf("%s", dbg.console.CPU.String())

	case "LAST":
		dbg.printf("%s", dbg.console.CPU.LastResult.String())

	case "MEM":
		a, err := address()
		if err != nil {
			return err
		}
		n := 64
		if len(args) > 1 {
			v, err := parseValue(args[1], 16)
			if err != nil {
				return err
			}
			n = int(v)
		}
		dbg.hexdump(a, n)

	case "POKE":
		a, err := address()
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, cmd)
		}
		v, err := parseValue(args[1], 8)
		if err != nil {
			return err
		}
		dbg.console.Mem.Write(a, uint8(v))

	case "IRQ":
		dbg.console.CPU.IRQ()
		dbg.printf("%s", dbg.console.CPU.String())

	case "NMI":
		dbg.console.CPU.NMI()
		dbg.printf("%s", dbg.console.CPU.String())

	case "BREAK":
		a, err := address()
		if err != nil {
			return err
		}
		dbg.breaks.add(a)

	case "DROP":
		a, err := address()
		if err != nil {
			return err
		}
		if !dbg.breaks.drop(a) {
			return curated.Errorf(NoSuchBreakpoint, a)
		}

	case "LIST":
		dbg.printf("%s", dbg.breaks.String())

	case "LOG":
		logger.Write(dbg.output)

	case "VIZ":
		fn := "rnes_state.dot"
		if len(args) > 0 {
			// the filename should keep the case it was typed with
			fn = strings.Fields(line)[1]
		}
		return dbg.visualise(fn)

	default:
		return curated.Errorf(UnknownCommand, cmd)
	}

	return nil
}

func (dbg *Debugger) hexdump(origin uint16, length int) {
	for i := 0; i < length; i += 16 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%#04x: ", origin+uint16(i)))
		for j := 0; j < 16 && i+j < length; j++ {
			s.WriteString(fmt.Sprintf("%02x ", dbg.console.Mem.Peek(origin+uint16(i+j))))
		}
		dbg.printf("%s", s.String())
	}
}
