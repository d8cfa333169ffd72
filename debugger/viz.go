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
	"bytes"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/latortuga71/rnes/curated"
)

// visualise writes a graphviz (dot) rendering of the cpu state to file.
// useful when chasing a divergence between this emulation and another.
func (dbg *Debugger) visualise(filename string) error {
	b := &bytes.Buffer{}
	memviz.Map(b, dbg.console.CPU)

	if err := os.WriteFile(filename, b.Bytes(), 0644); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.printf("machine state written to %s", filename)
	return nil
}
