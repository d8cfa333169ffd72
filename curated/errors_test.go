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

package curated_test

import (
	"errors"
	"testing"

	"github.com/latortuga71/rnes/curated"
	"github.com/latortuga71/rnes/test"
)

const testPattern = "test: %s"
const wrapPattern = "wrap: %v"

func TestMatching(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.Equate(t, err.Error(), "test: detail")

	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedSuccess(t, curated.Is(err, testPattern))
	test.ExpectedFailure(t, curated.Is(err, wrapPattern))

	// plain errors are not curated
	plain := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(plain))
	test.ExpectedFailure(t, curated.Is(plain, testPattern))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
}

func TestChaining(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf(wrapPattern, inner)

	test.Equate(t, outer.Error(), "wrap: test: detail")

	// Is() matches the outermost pattern only; Has() searches the chain
	test.ExpectedFailure(t, curated.Is(outer, testPattern))
	test.ExpectedSuccess(t, curated.Has(outer, testPattern))
	test.ExpectedSuccess(t, curated.Has(outer, wrapPattern))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate parts in the message chain are folded
	inner := curated.Errorf("debugger: %v", errors.New("oops"))
	outer := curated.Errorf("debugger: %v", inner)
	test.Equate(t, outer.Error(), "debugger: oops")
}
