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
	"testing"

	"github.com/latortuga71/rnes/test"
)

func TestParseValue(t *testing.T) {
	v, err := parseValue("8000", 16)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 0x8000)

	// dollar and 0x prefixes are accepted noise
	v, err = parseValue("$c000", 16)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 0xc000)

	v, err = parseValue("0xff", 8)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 0xff)

	// decimal needs the hash prefix
	v, err = parseValue("#100", 16)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 100)

	_, err = parseValue("xyz", 16)
	test.ExpectedFailure(t, err)

	// out of range for the bit size
	_, err = parseValue("100", 8)
	test.ExpectedFailure(t, err)
}

func TestBreakpoints(t *testing.T) {
	bp := newBreakpoints()
	test.Equate(t, bp.String(), "no breakpoints")

	bp.add(0x8000)
	bp.add(0x8000)
	test.Equate(t, bp.check(0x8000), true)
	test.Equate(t, bp.check(0x8001), false)
	test.Equate(t, bp.String(), "break on PC=0x8000")

	test.Equate(t, bp.drop(0x8000), true)
	test.Equate(t, bp.drop(0x8000), false)
	test.Equate(t, bp.check(0x8000), false)
}
