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

// Package test contains functions useful for testing of register values from
// other packages. The EquateRegisters function differs from test.Equate in
// that it understands the register types directly: numeric registers can be
// compared against plain int literals and the status register against its
// flag-pattern string.
package test

import (
	"testing"

	"github.com/latortuga71/rnes/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between a register value and an
// expected value. Numeric registers are compared against int (or the
// register's own type); the status register is compared against a pattern
// string of the form "sv-bdizc".
func EquateRegisters(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for EquateRegisters() function (%T)", v)

	case registers.Register:
		switch ev := expectedValue.(type) {
		case int:
			if v.Value() != uint8(ev) {
				t.Errorf("register (%s) equation failed (%#02x  - wanted %#02x)", v.Label(), v.Value(), ev)
			}
		case uint8:
			if v.Value() != ev {
				t.Errorf("register (%s) equation failed (%#02x  - wanted %#02x)", v.Label(), v.Value(), ev)
			}
		default:
			t.Fatalf("values for EquateRegisters() are not compatible (%T and %T)", v, ev)
		}

	case registers.StackPointer:
		switch ev := expectedValue.(type) {
		case int:
			if v.Value() != uint8(ev) {
				t.Errorf("stack pointer equation failed (%#02x  - wanted %#02x)", v.Value(), ev)
			}
		default:
			t.Fatalf("values for EquateRegisters() are not compatible (%T and %T)", v, ev)
		}

	case registers.ProgramCounter:
		switch ev := expectedValue.(type) {
		case int:
			if v.Address() != uint16(ev) {
				t.Errorf("program counter equation failed (%#04x  - wanted %#04x)", v.Address(), ev)
			}
		case uint16:
			if v.Address() != ev {
				t.Errorf("program counter equation failed (%#04x  - wanted %#04x)", v.Address(), ev)
			}
		default:
			t.Fatalf("values for EquateRegisters() are not compatible (%T and %T)", v, ev)
		}

	case registers.StatusRegister:
		switch ev := expectedValue.(type) {
		case string:
			if v.String() != ev {
				t.Errorf("status register equation failed (%s  - wanted %s)", v.String(), ev)
			}
		default:
			t.Fatalf("values for EquateRegisters() are not compatible (%T and %T)", v, ev)
		}
	}
}
