// SPDX-License-Identifier: MIT

package mixer

import "fmt"

// Axis indexes a row of the allocation matrix and a column of the mix matrix.
type Axis int

const (
	Roll Axis = iota
	Pitch
	Yaw
	X
	Y
	Z
)

// NumAxes is the number of controlled axes (3 torque + 3 thrust).
const NumAxes = 6

var axisNames = [NumAxes]string{"roll", "pitch", "yaw", "x", "y", "z"}

// Axes lists every axis in matrix order.
func Axes() []Axis { return []Axis{Roll, Pitch, Yaw, X, Y, Z} }

// String returns the lower-case axis name.
func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return fmt.Sprintf("Axis(%d)", int(a))
	}

	return axisNames[a]
}
