// SPDX-License-Identifier: MIT

package mixer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rotormix/matrix"
)

// AuthorityTolerance is the residual below which an axis counts as controllable.
const AuthorityTolerance = 1e-6

// Authority measures, per axis j, how far the mix misses a unit wrench on
// that axis: max_i |(A·B)_ij − δ_ij|. A residual near 0 means the axis is
// fully controllable; near 1 means the geometry has no authority on it.
//
// a must be 6×N and b N×6 (raw, not normalized).
func Authority(a, b matrix.Matrix) ([NumAxes]float64, error) {
	var res [NumAxes]float64
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return res, err
	}
	if a.Rows() != NumAxes || b.Cols() != NumAxes {
		return res, fmt.Errorf("%w: got A %dx%d, B %dx%d", ErrBadMix, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	ab, err := matrix.Mul(a, b)
	if err != nil {
		return res, err
	}
	id, err := matrix.NewIdentity(NumAxes)
	if err != nil {
		return res, err
	}
	for j := 0; j < NumAxes; j++ {
		got, err := ab.Col(j)
		if err != nil {
			return res, err
		}
		want, err := id.Col(j)
		if err != nil {
			return res, err
		}
		for i := range got {
			res[j] = math.Max(res[j], math.Abs(got[i]-want[i]))
		}
	}

	return res, nil
}

// Uncontrollable lists the axes whose residual exceeds AuthorityTolerance.
func (r *Result) Uncontrollable() []Axis {
	var out []Axis
	for _, ax := range Axes() {
		if r.Residual[ax] > AuthorityTolerance {
			out = append(out, ax)
		}
	}

	return out
}
