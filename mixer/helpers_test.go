// SPDX-License-Identifier: MIT

package mixer_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/matrix"
)

var down = r3.Vector{Z: -1}

func mustRotor(t *testing.T, name string, pos, axis r3.Vector, dir geometry.Direction, ct, cm float64) geometry.Rotor {
	t.Helper()
	r, err := geometry.NewRotor(name, pos, axis, dir, ct, cm)
	require.NoError(t, err)

	return r
}

// quadPlus returns four rotors at (±r,0,0), (0,±r,0) with unit coefficients;
// the x-axis pair spins CCW, the y-axis pair CW.
func quadPlus(t *testing.T, r float64) []geometry.Rotor {
	t.Helper()
	return []geometry.Rotor{
		mustRotor(t, "front", r3.Vector{X: r}, down, geometry.CCW, 1, 1),
		mustRotor(t, "back", r3.Vector{X: -r}, down, geometry.CCW, 1, 1),
		mustRotor(t, "right", r3.Vector{Y: r}, down, geometry.CW, 1, 1),
		mustRotor(t, "left", r3.Vector{Y: -r}, down, geometry.CW, 1, 1),
	}
}

func mustGeometry(t *testing.T, name string, rotors []geometry.Rotor) *geometry.Geometry {
	t.Helper()
	g, err := geometry.New(geometry.Info{Name: name, Key: name}, rotors)
	require.NoError(t, err)

	return g
}

// randomRotors draws n rotors with tilted unit axes from a fixed seed.
func randomRotors(t *testing.T, n int, seed int64) []geometry.Rotor {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	uniform := func(lo, hi float64) float64 { return lo + (hi-lo)*rng.Float64() }
	rotors := make([]geometry.Rotor, n)
	for i := range rotors {
		pos := r3.Vector{X: uniform(-1, 1), Y: uniform(-1, 1), Z: uniform(-0.2, 0.2)}
		axis := r3.Vector{X: uniform(-0.5, 0.5), Y: uniform(-0.5, 0.5), Z: -1}.Normalize()
		dir := geometry.CW
		if rng.Intn(2) == 0 {
			dir = geometry.CCW
		}
		rotors[i] = mustRotor(t, "", pos, axis, dir, uniform(0.5, 1.5), uniform(0.01, 0.1))
	}

	return rotors
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func col(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	c, err := m.Col(j)
	require.NoError(t, err)

	return c
}

func requireSliceClose(t *testing.T, want, got []float64, atol float64, msg string) {
	t.Helper()
	require.Len(t, got, len(want), msg)
	for i := range want {
		if math.Abs(want[i]-got[i]) > atol {
			t.Fatalf("%s[%d]: got %.17g want %.17g", msg, i, got[i], want[i])
		}
	}
}
