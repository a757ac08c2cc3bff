// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every GeometryError wraps exactly one of these; match with errors.Is.
var (
	// ErrGeometry matches every *GeometryError via errors.Is.
	ErrGeometry = errors.New("geometry: invalid geometry")

	// ErrNoRotors indicates an empty rotor list.
	ErrNoRotors = errors.New("geometry: no rotors")

	// ErrZeroAxis indicates a spin axis whose norm is below MinAxisNorm.
	ErrZeroAxis = errors.New("geometry: zero-norm axis")

	// ErrInvalidDirection indicates a direction other than CW or CCW.
	ErrInvalidDirection = errors.New("geometry: invalid direction")

	// ErrNonFinite indicates a NaN or ±Inf position, axis or coefficient.
	ErrNonFinite = errors.New("geometry: non-finite value")

	// ErrBadCoefficient indicates Ct ≤ 0 or Cm < 0.
	ErrBadCoefficient = errors.New("geometry: coefficient out of range")

	// ErrMissingName indicates a geometry without a name.
	ErrMissingName = errors.New("geometry: missing name")

	// ErrMissingField indicates a required field absent from both the rotor and [rotor_default].
	ErrMissingField = errors.New("geometry: missing field")

	// ErrUnknownField indicates a key the loader does not understand.
	ErrUnknownField = errors.New("geometry: unknown field")

	// ErrDecode indicates malformed TOML or a value of the wrong type.
	ErrDecode = errors.New("geometry: decode failed")
)

// GeometryError reports a malformed or degenerate geometry with enough
// identity to locate the problem. It is fatal for that geometry only.
type GeometryError struct {
	Geometry string // geometry name; empty when not yet known
	Source   string // file the geometry was loaded from; empty for in-memory geometries
	Index    int    // rotor index, or -1 when the error is not rotor-specific
	Rotor    string // rotor name when known
	Field    string // offending field when known
	Err      error  // one of the sentinels above, possibly wrapping a cause
}

// Error renders "geometry <name> (<source>): rotor <i> "<name>": field <f>: <cause>".
func (e *GeometryError) Error() string {
	var b strings.Builder
	b.WriteString("geometry")
	if e.Geometry != "" {
		b.WriteString(" " + e.Geometry)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": rotor %d", e.Index)
		if e.Rotor != "" {
			fmt.Fprintf(&b, " %q", e.Rotor)
		}
	}
	if e.Field != "" {
		b.WriteString(": field " + e.Field)
	}
	b.WriteString(": ")
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(ErrGeometry.Error())
	}

	return b.String()
}

// Unwrap exposes the sentinel for errors.Is.
func (e *GeometryError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrGeometry) hold for every GeometryError.
func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

// rotorErr builds a rotor-scoped GeometryError.
func rotorErr(index int, rotor, field string, err error) *GeometryError {
	return &GeometryError{Index: index, Rotor: rotor, Field: field, Err: err}
}

// WithIdentity returns err with the geometry name and source filled in when
// err is a *GeometryError that lacks them. The original error is not mutated.
// Other errors are returned unchanged.
func WithIdentity(err error, name, source string) error {
	var ge *GeometryError
	if !errors.As(err, &ge) {
		return err
	}
	cp := *ge
	if cp.Geometry == "" {
		cp.Geometry = name
	}
	if cp.Source == "" {
		cp.Source = source
	}

	return &cp
}
