// SPDX-License-Identifier: MIT

package mixer

import (
	"errors"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/matrix"
)

// Result is the outcome of mixing one geometry.
type Result struct {
	Info       geometry.Info
	RotorCount int

	// A is the 6×N allocation matrix.
	A *matrix.Dense
	// Raw is pinv(A), N×6.
	Raw *matrix.Dense
	// B is the mix to publish: Raw, or Raw rescaled when Normalized.
	B *matrix.Dense

	Normalized bool
	// Scale holds the per-axis divisors applied to Raw (all ones unless Normalized).
	Scale [NumAxes]float64
	// Warnings lists axes whose legacy scale was clamped to 1.
	Warnings []NormalizationWarning
	// Residual is Authority(A, Raw): per-axis distance from a perfect inverse.
	Residual [NumAxes]float64
}

// Mix runs Allocation, Solve and (optionally) Normalize for g.
//
// Errors carry the geometry name and source:
//   - *geometry.GeometryError for rotor problems.
//   - *SingularGeometryError when the pseudoinverse fails.
//   - ErrNilGeometry for a nil g.
func Mix(g *geometry.Geometry, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	o := gatherOptions(opts...)

	return mix(g, o)
}

func mix(g *geometry.Geometry, o options) (*Result, error) {
	a, err := Allocation(g.Rotors())
	if err != nil {
		return nil, geometry.WithIdentity(err, g.Name(), g.Source())
	}
	raw, err := Solve(a, matrix.WithRCond(o.rcond))
	if err != nil {
		var se *SingularGeometryError
		if errors.As(err, &se) {
			se.Geometry = g.Name()
		}
		return nil, err
	}
	residual, err := Authority(a, raw)
	if err != nil {
		return nil, err
	}
	b, scale, warnings, err := Normalize(raw, o.legacy)
	if err != nil {
		return nil, err
	}

	return &Result{
		Info:       g.Info(),
		RotorCount: g.Len(),
		A:          a,
		Raw:        raw,
		B:          b,
		Normalized: o.legacy,
		Scale:      scale,
		Warnings:   warnings,
		Residual:   residual,
	}, nil
}
