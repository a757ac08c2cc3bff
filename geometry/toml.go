// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golang/geo/r3"
)

// fileInfo mirrors the [info] table.
type fileInfo struct {
	Name        string `toml:"name"`
	Key         string `toml:"key"`
	Description string `toml:"description"`
}

// rotorFields mirrors one [[rotors]] entry or the [rotor_default] table.
// Pointers distinguish "absent" from "zero".
type rotorFields struct {
	Name      *string     `toml:"name"`
	Position  *[3]float64 `toml:"position"`
	Axis      *[3]float64 `toml:"axis"`
	Direction *string     `toml:"direction"`
	Ct        *float64    `toml:"Ct"`
	Cm        *float64    `toml:"Cm"`
}

type fileGeometry struct {
	Info         fileInfo      `toml:"info"`
	RotorDefault rotorFields   `toml:"rotor_default"`
	Rotors       []rotorFields `toml:"rotors"`
}

// LoadFile reads and decodes one geometry description.
// When [info].name is absent the file stem is used.
func LoadFile(path string) (*Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &GeometryError{Source: path, Index: -1, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}

	return Decode(data, path)
}

// Decode parses a TOML geometry description. source names the origin for
// error reporting and, when [info].name is absent, provides the name (file
// stem). Every rotor field is resolved from the rotor table first, then
// from [rotor_default]; a field found in neither fails with ErrMissingField.
func Decode(data []byte, source string) (*Geometry, error) {
	var raw fileGeometry
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, &GeometryError{Source: source, Index: -1, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &GeometryError{
			Geometry: raw.Info.Name,
			Source:   source,
			Index:    -1,
			Field:    strings.Join(keys, ", "),
			Err:      ErrUnknownField,
		}
	}

	info := Info{
		Name:        strings.TrimSpace(raw.Info.Name),
		Key:         strings.TrimSpace(raw.Info.Key),
		Description: strings.TrimSpace(raw.Info.Description),
	}
	if !meta.IsDefined("info", "name") && source != "" {
		info.Name = stem(source)
	}
	if info.Name == "" {
		return nil, &GeometryError{Source: source, Index: -1, Field: "info.name", Err: ErrMissingName}
	}
	if !meta.IsDefined("info", "key") {
		return nil, &GeometryError{Geometry: info.Name, Source: source, Index: -1, Field: "info.key", Err: ErrMissingField}
	}

	rotors := make([]Rotor, 0, len(raw.Rotors))
	for i, rf := range raw.Rotors {
		r, err := resolveRotor(rf, raw.RotorDefault)
		if err != nil {
			err.Geometry, err.Source, err.Index = info.Name, source, i
			return nil, err
		}
		rotors = append(rotors, r)
	}

	return newGeometry(info, source, rotors)
}

// resolveRotor merges one rotor table over the defaults field by field and
// builds a validated Rotor.
func resolveRotor(r, def rotorFields) (Rotor, *GeometryError) {
	name, ok := pick(r.Name, def.Name)
	if !ok {
		return Rotor{}, rotorErr(-1, "", "name", ErrMissingField)
	}
	position, ok := pick(r.Position, def.Position)
	if !ok {
		return Rotor{}, rotorErr(-1, name, "position", ErrMissingField)
	}
	axis, ok := pick(r.Axis, def.Axis)
	if !ok {
		return Rotor{}, rotorErr(-1, name, "axis", ErrMissingField)
	}
	dirText, ok := pick(r.Direction, def.Direction)
	if !ok {
		return Rotor{}, rotorErr(-1, name, "direction", ErrMissingField)
	}
	ct, ok := pick(r.Ct, def.Ct)
	if !ok {
		return Rotor{}, rotorErr(-1, name, "Ct", ErrMissingField)
	}
	cm, ok := pick(r.Cm, def.Cm)
	if !ok {
		return Rotor{}, rotorErr(-1, name, "Cm", ErrMissingField)
	}

	dir, err := ParseDirection(dirText)
	if err != nil {
		return Rotor{}, rotorErr(-1, name, "direction", err)
	}
	rotor, err := NewRotor(name, vec(position), vec(axis), dir, ct, cm)
	if err != nil {
		return Rotor{}, err.(*GeometryError)
	}

	return rotor, nil
}

// pick returns *own when set, else *def when set.
func pick[T any](own, def *T) (T, bool) {
	switch {
	case own != nil:
		return *own, true
	case def != nil:
		return *def, true
	default:
		var zero T
		return zero, false
	}
}

func vec(a [3]float64) r3.Vector { return r3.Vector{X: a[0], Y: a[1], Z: a[2]} }

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Glob lists the *.toml files of dir in lexical order. The order fixes the
// enum values of generated tables, so it must not depend on the file system.
func Glob(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("geometry: glob %s: %w", dir, err)
	}
	sort.Strings(matches)

	return matches, nil
}
