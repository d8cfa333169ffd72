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

// Package cartridgeloader is used to specify the cartridge to attach to the
// console. Files in the iNES format have their header parsed and their
// program banks extracted; any other file is attached raw, as a bare program
// bank.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/latortuga71/rnes/curated"
)

// Sentinal errors returned by the cartridgeloader package.
const (
	FileError      = "cartridgeloader: %v"
	InvalidHeader  = "cartridgeloader: %s: not an iNES file"
	TruncatedImage = "cartridgeloader: %s: data shorter than the header claims"
	EmptyImage     = "cartridgeloader: %s: no program data"
)

// the iNES header is sixteen bytes, beginning with a fixed signature.
const headerLen = 16

var inesSignature = []byte{'N', 'E', 'S', 0x1a}

// Loader abstracts all the ways data can be attached to cartridge space.
type Loader struct {
	Filename string

	// "INES", "RAW" or "AUTO". "AUTO" decides from the file extension
	Format string

	// sha1 of the file as stored on disk. valid after Load()
	Hash string

	// program data. valid after Load()
	PRG []uint8

	// character data, present only for iNES files with CHR banks. the
	// emulated machine has no PPU to give it to but the loader keeps it so
	// that inspection tools can see it
	CHR []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument can be used to force the loading method. Untrusted
// input should use "AUTO".
func NewLoader(filename string, format string) (Loader, error) {
	cl := Loader{
		Filename: filename,
		Format:   strings.ToUpper(format),
	}

	switch cl.Format {
	case "AUTO":
		if strings.ToLower(filepath.Ext(filename)) == ".nes" {
			cl.Format = "INES"
		} else {
			cl.Format = "RAW"
		}
	case "INES", "RAW":
	default:
		return Loader{}, curated.Errorf(FileError, fmt.Sprintf("unrecognised format (%s)", format))
	}

	return cl, nil
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(cl.Filename))
}

func (cl Loader) String() string {
	return fmt.Sprintf("%s [%s] PRG=%dk", cl.ShortName(), cl.Format, len(cl.PRG)/1024)
}

// Load the cartridge data and prepare for attachment to a console.
func (cl *Loader) Load() error {
	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	if cl.Format == "INES" {
		return cl.decodeINES(data)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyImage, cl.ShortName())
	}
	cl.PRG = data

	return nil
}

func (cl *Loader) decodeINES(data []byte) error {
	if len(data) < headerLen || string(data[:4]) != string(inesSignature) {
		return curated.Errorf(InvalidHeader, cl.ShortName())
	}

	prgLen := int(data[4]) * 0x4000
	chrLen := int(data[5]) * 0x2000

	offset := headerLen
	if data[6]&0x04 == 0x04 {
		// a 512 byte trainer sits between the header and the program data
		offset += 512
	}

	if prgLen == 0 {
		return curated.Errorf(EmptyImage, cl.ShortName())
	}
	if len(data) < offset+prgLen+chrLen {
		return curated.Errorf(TruncatedImage, cl.ShortName())
	}

	cl.PRG = data[offset : offset+prgLen]
	cl.CHR = data[offset+prgLen : offset+prgLen+chrLen]

	return nil
}
