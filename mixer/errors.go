// SPDX-License-Identifier: MIT

package mixer

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadMix indicates a mix matrix whose shape is not N×6.
	ErrBadMix = errors.New("mixer: mix matrix must have 6 columns")

	// ErrNilGeometry indicates a nil *geometry.Geometry passed to Mix or MixAll.
	ErrNilGeometry = errors.New("mixer: nil geometry")
)

// SingularGeometryError reports that the pseudoinverse could not be computed
// for a geometry. It is fatal for that geometry only.
type SingularGeometryError struct {
	Geometry string
	Err      error
}

func (e *SingularGeometryError) Error() string {
	if e.Geometry == "" {
		return fmt.Sprintf("mixer: singular geometry: %v", e.Err)
	}

	return fmt.Sprintf("mixer: singular geometry %s: %v", e.Geometry, e.Err)
}

func (e *SingularGeometryError) Unwrap() error { return e.Err }

// NormalizationWarning records an axis whose legacy scale factor was
// degenerate (|s| < MinScale) and was replaced by 1. The axis is left
// unscaled; it is usually one the geometry cannot actuate.
type NormalizationWarning struct {
	Axis  Axis
	Scale float64 // the degenerate value before clamping
}

func (w NormalizationWarning) String() string {
	return fmt.Sprintf("axis %s: scale %g clamped to 1", w.Axis, w.Scale)
}
