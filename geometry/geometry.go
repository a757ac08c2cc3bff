// SPDX-License-Identifier: MIT

package geometry

// Info identifies a geometry in generated tables.
//   - Name becomes the enum identifier (upper-cased) and table suffix.
//   - Key is the short string the firmware uses to select the geometry.
type Info struct {
	Name        string
	Key         string
	Description string
}

// Geometry is an immutable, ordered list of rotors plus identifying Info.
type Geometry struct {
	info   Info
	source string
	rotors []Rotor
}

// New validates info and every rotor and returns a Geometry owning a copy of rotors.
//
// Errors (*GeometryError):
//   - ErrMissingName when info.Name is empty.
//   - ErrNoRotors when rotors is empty.
//   - any Rotor.Validate failure, with Index set to the rotor's position.
func New(info Info, rotors []Rotor) (*Geometry, error) {
	return newGeometry(info, "", rotors)
}

func newGeometry(info Info, source string, rotors []Rotor) (*Geometry, error) {
	if info.Name == "" {
		return nil, &GeometryError{Source: source, Index: -1, Field: "info.name", Err: ErrMissingName}
	}
	if len(rotors) == 0 {
		return nil, &GeometryError{Geometry: info.Name, Source: source, Index: -1, Err: ErrNoRotors}
	}
	for i, r := range rotors {
		if err := r.Validate(); err != nil {
			ge := err.(*GeometryError)
			ge.Geometry, ge.Source, ge.Index = info.Name, source, i
			return nil, ge
		}
	}
	cp := make([]Rotor, len(rotors))
	copy(cp, rotors)

	return &Geometry{info: info, source: source, rotors: cp}, nil
}

// Info returns the identifying metadata.
func (g *Geometry) Info() Info { return g.info }

// Name is shorthand for Info().Name.
func (g *Geometry) Name() string { return g.info.Name }

// Key is shorthand for Info().Key.
func (g *Geometry) Key() string { return g.info.Key }

// Source is the file the geometry was loaded from, or "" for in-memory geometries.
func (g *Geometry) Source() string { return g.source }

// Len returns the rotor count.
func (g *Geometry) Len() int { return len(g.rotors) }

// Rotors returns a copy of the rotor list in declaration order.
func (g *Geometry) Rotors() []Rotor {
	cp := make([]Rotor, len(g.rotors))
	copy(cp, g.rotors)

	return cp
}
