// SPDX-License-Identifier: MIT

package mixer_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/mixer"
)

func TestAllocation_ColumnFormula(t *testing.T) {
	rotors := randomRotors(t, 7, 11)
	a, err := mixer.Allocation(rotors)
	require.NoError(t, err)
	r, c := a.Shape()
	require.Equal(t, 6, r)
	require.Equal(t, len(rotors), c)

	for i, rt := range rotors {
		// Axes are already unit length here.
		torque := rt.Position.Cross(rt.Axis).Mul(rt.Ct).Sub(rt.Axis.Mul(rt.Cm * rt.Direction.Sign()))
		thrust := rt.Axis.Mul(rt.Ct)
		want := []float64{torque.X, torque.Y, torque.Z, thrust.X, thrust.Y, thrust.Z}
		requireSliceClose(t, want, col(t, a, i), 1e-14, "column")
	}
}

func TestAllocation_NormalizesAxis(t *testing.T) {
	unit := []geometry.Rotor{mustRotor(t, "u", r3.Vector{X: 1}, down, geometry.CW, 1, 0.5)}
	long := []geometry.Rotor{mustRotor(t, "l", r3.Vector{X: 1}, r3.Vector{Z: -4}, geometry.CW, 1, 0.5)}

	a1, err := mixer.Allocation(unit)
	require.NoError(t, err)
	a2, err := mixer.Allocation(long)
	require.NoError(t, err)
	assert.Equal(t, a1.RawRowMajor(), a2.RawRowMajor())
}

func TestAllocation_Blocks(t *testing.T) {
	rotors := quadPlus(t, 1)
	a, err := mixer.Allocation(rotors)
	require.NoError(t, err)
	am, err := mixer.TorqueMatrix(rotors)
	require.NoError(t, err)
	at, err := mixer.ThrustMatrix(rotors)
	require.NoError(t, err)

	raw := a.RawRowMajor()
	assert.Equal(t, am.RawRowMajor(), raw[:12])
	assert.Equal(t, at.RawRowMajor(), raw[12:])

	// Rows: roll, pitch, yaw, x, y, z.
	assert.Equal(t, []float64{
		0, 0, -1, 1,
		1, -1, 0, 0,
		1, 1, -1, -1,
		0, 0, 0, 0,
		0, 0, 0, 0,
		-1, -1, -1, -1,
	}, raw)
}

func TestAllocation_Rejects(t *testing.T) {
	_, err := mixer.Allocation(nil)
	require.ErrorIs(t, err, geometry.ErrNoRotors)
	require.ErrorIs(t, err, geometry.ErrGeometry)

	good := mustRotor(t, "ok", r3.Vector{X: 1}, down, geometry.CW, 1, 0)
	cases := []struct {
		name string
		bad  geometry.Rotor
		want error
	}{
		{"zero axis", geometry.Rotor{Name: "z", Direction: geometry.CW, Ct: 1}, geometry.ErrZeroAxis},
		{"no direction", geometry.Rotor{Name: "d", Axis: down, Ct: 1}, geometry.ErrInvalidDirection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mixer.Allocation([]geometry.Rotor{good, tc.bad})
			require.ErrorIs(t, err, tc.want)

			var ge *geometry.GeometryError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, 1, ge.Index)
			assert.Equal(t, tc.bad.Name, ge.Rotor)
		})
	}

	_, err = mixer.TorqueMatrix(nil)
	require.ErrorIs(t, err, geometry.ErrNoRotors)
	_, err = mixer.ThrustMatrix([]geometry.Rotor{{Direction: geometry.CW, Ct: 1}})
	require.ErrorIs(t, err, geometry.ErrZeroAxis)
}
