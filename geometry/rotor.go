// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// MinAxisNorm is the smallest spin-axis norm that can be normalized.
const MinAxisNorm = 1e-9

// Rotor is one physical rotor in the body frame.
//   - Position is in meters.
//   - Axis is the spin axis (thrust direction); it need not be unit length.
//   - Ct relates the rotor command to thrust along Axis.
//   - Cm relates the rotor command to reaction torque about Axis.
type Rotor struct {
	Name      string
	Position  r3.Vector
	Axis      r3.Vector
	Direction Direction
	Ct        float64
	Cm        float64
}

// NewRotor builds a validated Rotor. See Validate for the checks applied.
func NewRotor(name string, position, axis r3.Vector, dir Direction, ct, cm float64) (Rotor, error) {
	r := Rotor{
		Name:      name,
		Position:  position,
		Axis:      axis,
		Direction: dir,
		Ct:        ct,
		Cm:        cm,
	}
	if err := r.Validate(); err != nil {
		return Rotor{}, err
	}

	return r, nil
}

// Validate checks, in order: finite position/axis/coefficients, axis norm,
// direction, Ct > 0, Cm ≥ 0. The returned *GeometryError has Index -1;
// callers that know the rotor's position in a geometry set it.
func (r Rotor) Validate() error {
	if !finiteVec(r.Position) {
		return rotorErr(-1, r.Name, "position", ErrNonFinite)
	}
	if !finiteVec(r.Axis) {
		return rotorErr(-1, r.Name, "axis", ErrNonFinite)
	}
	if !finite(r.Ct) {
		return rotorErr(-1, r.Name, "Ct", ErrNonFinite)
	}
	if !finite(r.Cm) {
		return rotorErr(-1, r.Name, "Cm", ErrNonFinite)
	}
	if r.Axis.Norm() < MinAxisNorm {
		return rotorErr(-1, r.Name, "axis", ErrZeroAxis)
	}
	if !r.Direction.Valid() {
		return rotorErr(-1, r.Name, "direction", ErrInvalidDirection)
	}
	if r.Ct <= 0 {
		return rotorErr(-1, r.Name, "Ct", ErrBadCoefficient)
	}
	if r.Cm < 0 {
		return rotorErr(-1, r.Name, "Cm", ErrBadCoefficient)
	}

	return nil
}

// UnitAxis returns Axis/‖Axis‖, or ErrZeroAxis when ‖Axis‖ < MinAxisNorm.
// Components are divided by the norm rather than multiplied by its reciprocal.
func (r Rotor) UnitAxis() (r3.Vector, error) {
	n := r.Axis.Norm()
	if n < MinAxisNorm || math.IsNaN(n) {
		return r3.Vector{}, rotorErr(-1, r.Name, "axis", ErrZeroAxis)
	}

	return r3.Vector{X: r.Axis.X / n, Y: r.Axis.Y / n, Z: r.Axis.Z / n}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func finiteVec(v r3.Vector) bool { return finite(v.X) && finite(v.Y) && finite(v.Z) }
