// SPDX-License-Identifier: MIT
// Package: mixer
//
// Purpose:
//   - Legacy per-axis rescaling of a mix matrix so that generated tables
//     match the ones older firmware was tuned against. Kept for
//     compatibility only; new consumers should use the raw B.
//
// Scale factors (one per column of B):
//   - roll = pitch = max(‖B[:,0]‖, ‖B[:,1]‖) / sqrt(N/2)
//   - yaw          = max|B[:,2]|
//   - x = y        = max(max|B[:,3]|, max|B[:,4]|)
//   - z            = max|B[:,5]|
//   - any factor below MinScale is replaced by 1 and reported.
//
// AI-Hints:
//   - The sqrt(N/2) divisor on roll/pitch is a historical convention with
//     no derivation behind it. Do not "fix" it; existing tables depend on it.

package mixer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rotormix/matrix"
)

// MinScale is the smallest scale factor applied as-is.
const MinScale = 1e-3

// LegacyScale computes the six legacy scale factors of b (N×6).
// Clamped factors are returned as 1 and listed in the warnings, in axis order.
func LegacyScale(b matrix.Matrix) ([NumAxes]float64, []NormalizationWarning, error) {
	var scale [NumAxes]float64
	if err := matrix.ValidateNotNil(b); err != nil {
		return scale, nil, err
	}
	if b.Cols() != NumAxes || b.Rows() == 0 {
		return scale, nil, fmt.Errorf("%w: got %dx%d", ErrBadMix, b.Rows(), b.Cols())
	}
	norms, err := matrix.ColNormsL2(b)
	if err != nil {
		return scale, nil, err
	}
	maxs, err := matrix.ColMaxAbs(b)
	if err != nil {
		return scale, nil, err
	}

	n := float64(b.Rows())
	scale[Roll] = math.Max(norms[Roll], norms[Pitch]) / math.Sqrt(n/2)
	scale[Pitch] = scale[Roll]
	scale[Yaw] = maxs[Yaw]
	scale[X] = math.Max(maxs[X], maxs[Y])
	scale[Y] = scale[X]
	scale[Z] = maxs[Z]

	var warnings []NormalizationWarning
	for _, ax := range Axes() {
		if math.Abs(scale[ax]) < MinScale {
			warnings = append(warnings, NormalizationWarning{Axis: ax, Scale: scale[ax]})
			scale[ax] = 1
		}
	}

	return scale, warnings, nil
}

// Normalize returns a copy of b when legacy is false, otherwise b with each
// column divided by its legacy scale factor. The returned scale is all ones
// when legacy is false.
func Normalize(b matrix.Matrix, legacy bool) (*matrix.Dense, [NumAxes]float64, []NormalizationWarning, error) {
	if !legacy {
		out, err := matrix.Copy(b)
		return out, [NumAxes]float64{1, 1, 1, 1, 1, 1}, nil, err
	}
	scale, warnings, err := LegacyScale(b)
	if err != nil {
		return nil, scale, nil, err
	}
	out, err := matrix.DivideCols(b, scale[:])
	if err != nil {
		return nil, scale, nil, err
	}

	return out, scale, warnings, nil
}
