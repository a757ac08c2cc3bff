// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"strings"
)

// Direction is the spin direction of a rotor seen from above its spin axis.
// The zero value is invalid, so an unset direction never passes validation.
type Direction int8

const (
	CW  Direction = -1 // clockwise
	CCW Direction = 1  // counter-clockwise
)

// ParseDirection accepts "CW" or "CCW" in any case, surrounding whitespace ignored.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CW":
		return CW, nil
	case "CCW":
		return CCW, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Valid reports whether d is CW or CCW.
func (d Direction) Valid() bool { return d == CW || d == CCW }

// Sign is +1 for CCW and -1 for CW. The reaction torque of a rotor is
// -Cm·axis·Sign. Sign of an invalid direction is 0.
func (d Direction) Sign() float64 {
	switch d {
	case CCW:
		return 1
	case CW:
		return -1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}
