// SPDX-License-Identifier: MIT

package geometry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotormix/geometry"
)

const coaxialDoc = `
[info]
name = "coax"
key = "2c"
description = "coaxial pair"

[rotor_default]
position = [0.0, 0.0, 0.0]
axis = [0.0, 0.0, -2.0]
Ct = 1.0
Cm = 0.05

[[rotors]]
name = "top"
direction = "ccw"

[[rotors]]
name = "bottom"
direction = "CW"
Ct = 0.8
axis = [0.0, 0.0, -1.0]
`

func TestDecode_DefaultInheritance(t *testing.T) {
	g, err := geometry.Decode([]byte(coaxialDoc), "coax.toml")
	require.NoError(t, err)

	assert.Equal(t, geometry.Info{Name: "coax", Key: "2c", Description: "coaxial pair"}, g.Info())
	assert.Equal(t, "coax.toml", g.Source())
	require.Equal(t, 2, g.Len())

	rotors := g.Rotors()
	assert.Equal(t, "top", rotors[0].Name)
	assert.Equal(t, geometry.CCW, rotors[0].Direction)
	assert.Equal(t, r3.Vector{Z: -2}, rotors[0].Axis, "axes are stored as given")
	assert.Equal(t, 1.0, rotors[0].Ct)

	assert.Equal(t, geometry.CW, rotors[1].Direction)
	assert.Equal(t, 0.8, rotors[1].Ct)
	assert.Equal(t, 0.05, rotors[1].Cm)
	assert.Equal(t, r3.Vector{Z: -1}, rotors[1].Axis)
}

func TestDecode_MissingFieldFailsLoudly(t *testing.T) {
	doc := `
[info]
name = "partial"
key = "p"

[[rotors]]
name = "a"
position = [1.0, 0.0, 0.0]
axis = [0.0, 0.0, -1.0]
direction = "CW"
Ct = 1.0
`
	_, err := geometry.Decode([]byte(doc), "")
	require.ErrorIs(t, err, geometry.ErrMissingField)

	var ge *geometry.GeometryError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "partial", ge.Geometry)
	assert.Equal(t, 0, ge.Index)
	assert.Equal(t, "a", ge.Rotor)
	assert.Equal(t, "Cm", ge.Field)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		want  error
		field string
	}{
		{
			name: "invalid direction",
			doc: `[info]
name = "x"
key = "x"
[[rotors]]
name = "a"
position = [0.0, 0.0, 0.0]
axis = [0.0, 0.0, -1.0]
direction = "sideways"
Ct = 1.0
Cm = 0.0`,
			want:  geometry.ErrInvalidDirection,
			field: "direction",
		},
		{
			name: "zero axis",
			doc: `[info]
name = "x"
key = "x"
[[rotors]]
name = "a"
position = [0.0, 0.0, 0.0]
axis = [0.0, 0.0, 0.0]
direction = "CW"
Ct = 1.0
Cm = 0.0`,
			want:  geometry.ErrZeroAxis,
			field: "axis",
		},
		{
			name: "no rotors",
			doc: `[info]
name = "x"
key = "x"`,
			want: geometry.ErrNoRotors,
		},
		{
			name: "missing key",
			doc: `[info]
name = "x"`,
			want:  geometry.ErrMissingField,
			field: "info.key",
		},
		{
			name:  "missing name without source",
			doc:   `[info]` + "\n" + `key = "x"`,
			want:  geometry.ErrMissingName,
			field: "info.name",
		},
		{
			name: "unknown key",
			doc: `[info]
name = "x"
key = "x"
colour = "red"`,
			want:  geometry.ErrUnknownField,
			field: "info.colour",
		},
		{
			name: "short vector",
			doc: `[info]
name = "x"
key = "x"
[[rotors]]
name = "a"
position = [0.0, 0.0]`,
			want: geometry.ErrDecode,
		},
		{
			name: "malformed toml",
			doc:  `[info`,
			want: geometry.ErrDecode,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geometry.Decode([]byte(tc.doc), "")
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, geometry.ErrGeometry)
			if tc.field != "" {
				var ge *geometry.GeometryError
				require.ErrorAs(t, err, &ge)
				assert.Equal(t, tc.field, ge.Field)
			}
		})
	}
}

func TestLoadFile_NameFromStem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono_rotor.toml")
	doc := `[info]
key = "1"
[[rotors]]
name = "only"
position = [0.0, 0.0, 0.0]
axis = [0.0, 0.0, -1.0]
direction = "CW"
Ct = 1.0
Cm = 0.0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	g, err := geometry.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mono_rotor", g.Name())
	assert.Equal(t, path, g.Source())

	_, err = geometry.LoadFile(filepath.Join(dir, "absent.toml"))
	require.ErrorIs(t, err, geometry.ErrDecode)
}

func TestLoadFile_ShippedGeometries(t *testing.T) {
	files, err := geometry.Glob("../geoms")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.IsIncreasing(t, files)

	for _, f := range files {
		g, err := geometry.LoadFile(f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, g.Key(), f)
		assert.GreaterOrEqual(t, g.Len(), 4, f)
	}
}

func TestLoadFile_QuadX(t *testing.T) {
	g, err := geometry.LoadFile("../geoms/quad_x.toml")
	require.NoError(t, err)
	assert.Equal(t, "quad_x", g.Name())
	assert.Equal(t, "4x", g.Key())

	rotors := g.Rotors()
	require.Len(t, rotors, 4)
	names := make([]string, len(rotors))
	for i, r := range rotors {
		names[i] = r.Name
		assert.Equal(t, r3.Vector{Z: -1}, r.Axis)
		assert.Equal(t, 0.05, r.Cm)
	}
	assert.Equal(t, []string{"front_right", "rear_left", "front_left", "rear_right"}, names)
}
