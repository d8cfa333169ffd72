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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/latortuga71/rnes/cartridgeloader"
	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/debugger"
	"github.com/latortuga71/rnes/disassembly"
	"github.com/latortuga71/rnes/hardware"
	"github.com/latortuga71/rnes/logger"
	"github.com/latortuga71/rnes/modalflag"
	"github.com/latortuga71/rnes/statsview"
	"github.com/latortuga71/rnes/version"
)

// Sentinal errors for command line processing.
const (
	NoCartridge = "no cartridge file specified"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM")
	ver := md.AddBool("version", false, "display version number and quit")

	r, err := md.Parse()
	switch r {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	if *ver {
		_, rev, _ := version.Version()
		fmt.Printf("%s [%s]\n", version.Title(), rev)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}
}

// loader processes the flags common to every mode and builds the cartridge
// loader from the remaining argument.
func loader(md *modalflag.Modes, format string, log bool) (cartridgeloader.Loader, error) {
	if log {
		logger.SetEcho(os.Stderr)
	}

	if len(md.RemainingArgs()) == 0 {
		return cartridgeloader.Loader{}, curated.Errorf(NoCartridge)
	}

	return cartridgeloader.NewLoader(md.GetArg(0), format)
}

func emulate(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force cartridge format (INES, RAW)")
	log := md.AddBool("log", false, "echo emulation log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")
	numInstructions := md.AddInt("n", 0, "number of instructions to run (0 for no limit)")

	r, err := md.Parse()
	switch r {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	cartload, err := loader(md, *format, *log)
	if err != nil {
		return err
	}

	con := hardware.NewConsole()
	if err := con.AttachCartridge(cartload); err != nil {
		return err
	}

	startTime := time.Now()
	ct := 0
	for *numInstructions == 0 || ct < *numInstructions {
		if err := con.Step(); err != nil {
			fmt.Printf("* %v\n", err)
			break
		}
		ct++
	}

	dur := time.Since(startTime).Seconds()
	fmt.Printf("%s\n", con.CPU.String())
	if dur > 0 {
		fmt.Printf("%d instructions in %.2fs (%.0f/s)\n", ct, dur, float64(ct)/dur)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force cartridge format (INES, RAW)")
	log := md.AddBool("log", false, "echo emulation log to stderr")

	r, err := md.Parse()
	switch r {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	cartload, err := loader(md, *format, *log)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(cartload)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force cartridge format (INES, RAW)")

	r, err := md.Parse()
	switch r {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	cartload, err := loader(md, *format, false)
	if err != nil {
		return err
	}

	// a cartridge with no reset vector can still be disassembled
	con := hardware.NewConsole()
	if err := con.AttachCartridge(cartload); err != nil && !curated.Is(err, hardware.NoResetVector) {
		return err
	}

	dsm := disassembly.FromMemory(con.Mem, 0x8000, 0xffff)
	return dsm.Write(os.Stdout)
}
