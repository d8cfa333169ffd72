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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/latortuga71/rnes/cartridgeloader"
	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/test"
)

// writeImage builds a minimal iNES file with the given number of 16k
// program banks.
func writeImage(t *testing.T, name string, prgBanks int, trainer bool) string {
	t.Helper()

	header := make([]byte, 16)
	copy(header, []byte{'N', 'E', 'S', 0x1a})
	header[4] = uint8(prgBanks)
	if trainer {
		header[6] = 0x04
	}

	data := header
	if trainer {
		data = append(data, make([]byte, 512)...)
	}
	prg := make([]byte, prgBanks*0x4000)
	prg[0] = 0xa9
	data = append(data, prg...)

	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoaderAuto(t *testing.T) {
	fn := writeImage(t, "image.nes", 1, false)

	cl, err := cartridgeloader.NewLoader(fn, "AUTO")
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, cl.Load())

	test.Equate(t, len(cl.PRG), 0x4000)
	test.Equate(t, cl.PRG[0], 0xa9)
	test.Equate(t, cl.Hash != "", true)
}

func TestLoaderTrainer(t *testing.T) {
	fn := writeImage(t, "image.nes", 2, true)

	cl, err := cartridgeloader.NewLoader(fn, "INES")
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, cl.Load())

	// the trainer is skipped, not treated as program data
	test.Equate(t, len(cl.PRG), 0x8000)
	test.Equate(t, cl.PRG[0], 0xa9)
}

func TestLoaderRaw(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(fn, []byte{0xea, 0xea, 0x00}, 0600); err != nil {
		t.Fatal(err)
	}

	cl, err := cartridgeloader.NewLoader(fn, "AUTO")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cl.Format, "RAW")
	test.ExpectedSuccess(t, cl.Load())
	test.Equate(t, len(cl.PRG), 3)
}

func TestLoaderBadHeader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.nes")
	if err := os.WriteFile(fn, []byte("not a cartridge"), 0600); err != nil {
		t.Fatal(err)
	}

	cl, err := cartridgeloader.NewLoader(fn, "AUTO")
	test.ExpectedSuccess(t, err)

	err = cl.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.InvalidHeader))
}

func TestLoaderUnknownFormat(t *testing.T) {
	_, err := cartridgeloader.NewLoader("image.nes", "TAPE")
	test.ExpectedFailure(t, err)
}
