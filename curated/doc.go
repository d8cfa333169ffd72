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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in
// the fmt package, and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern:
//
//	e := curated.Errorf("cpu: unimplemented instruction (%#02x)", o)
//
//	if curated.Is(e, "cpu: unimplemented instruction (%#02x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain rather than only at the head.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. The distinction is useful when deciding whether an
// error is an expected emulation condition or a genuinely unexpected failure.
//
// The Error() function implementation normalises the error chain so that it
// does not contain duplicate adjacent parts. Parts of a chain are separated
// by the sub-string ': '. Sentinal patterns should be stored as const
// strings, suitably named and commented.
package curated
