// SPDX-License-Identifier: MIT

package mixer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/matrix"
	"github.com/katalvlaran/rotormix/mixer"
)

func TestSolve_FullRowRankIsRightInverse(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		a, err := mixer.Allocation(randomRotors(t, 8, seed))
		require.NoError(t, err)
		b, err := mixer.Solve(a)
		require.NoError(t, err)
		require.Equal(t, 8, b.Rows())
		require.Equal(t, 6, b.Cols())

		residual, err := mixer.Authority(a, b)
		require.NoError(t, err)
		for ax, r := range residual {
			assert.Less(t, r, 1e-9, "seed %d axis %s", seed, mixer.Axis(ax))
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	rotors := randomRotors(t, 8, 7)
	a1, err := mixer.Allocation(rotors)
	require.NoError(t, err)
	a2, err := mixer.Allocation(rotors)
	require.NoError(t, err)
	b1, err := mixer.Solve(a1)
	require.NoError(t, err)
	b2, err := mixer.Solve(a2)
	require.NoError(t, err)

	assert.Equal(t, a1.RawRowMajor(), a2.RawRowMajor())
	assert.Equal(t, b1.RawRowMajor(), b2.RawRowMajor())
}

func TestSolve_PermutationTracksRotors(t *testing.T) {
	rotors := randomRotors(t, 8, 99)
	perm := []int{3, 0, 7, 1, 6, 2, 5, 4}
	permuted := make([]geometry.Rotor, len(rotors))
	for i, p := range perm {
		permuted[i] = rotors[p]
	}

	a, err := mixer.Allocation(rotors)
	require.NoError(t, err)
	ap, err := mixer.Allocation(permuted)
	require.NoError(t, err)
	b, err := mixer.Solve(a)
	require.NoError(t, err)
	bp, err := mixer.Solve(ap)
	require.NoError(t, err)

	for i, p := range perm {
		// Columns are computed independently, so they move bit-for-bit.
		assert.Equal(t, col(t, a, p), col(t, ap, i))

		want, err := b.Row(p)
		require.NoError(t, err)
		got, err := bp.Row(i)
		require.NoError(t, err)
		requireSliceClose(t, want, got, 1e-12, "row")
	}
}

func TestSolve_CoaxialStackHasNoLateralAuthority(t *testing.T) {
	rotors := []geometry.Rotor{
		mustRotor(t, "upper", r3.Vector{Z: -0.1}, down, geometry.CCW, 1, 0.05),
		mustRotor(t, "lower", r3.Vector{Z: 0.1}, down, geometry.CW, 1, 0.05),
	}
	a, err := mixer.Allocation(rotors)
	require.NoError(t, err)
	b, err := mixer.Solve(a)
	require.NoError(t, err)

	for _, ax := range []mixer.Axis{mixer.X, mixer.Y, mixer.Roll, mixer.Pitch} {
		for _, v := range col(t, b, int(ax)) {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), ax.String())
			assert.InDelta(t, 0, v, 1e-12, ax.String())
		}
	}
	// Yaw and heave remain controllable.
	requireSliceClose(t, []float64{10, -10}, col(t, b, int(mixer.Yaw)), 1e-9, "yaw")
	requireSliceClose(t, []float64{-0.5, -0.5}, col(t, b, int(mixer.Z)), 1e-9, "z")
}

func TestSolve_SingleRotor(t *testing.T) {
	a, err := mixer.Allocation([]geometry.Rotor{
		mustRotor(t, "solo", r3.Vector{X: 0.2, Y: -0.1}, down, geometry.CW, 1, 0.05),
	})
	require.NoError(t, err)
	require.Equal(t, 6, a.Rows())
	require.Equal(t, 1, a.Cols())

	b, err := mixer.Solve(a)
	require.NoError(t, err)
	require.Equal(t, 1, b.Rows())
	require.Equal(t, 6, b.Cols())
	require.NoError(t, matrix.ValidateFinite(b))

	// pinv of a single column is its transpose over its squared norm.
	var sq float64
	for _, v := range a.RawRowMajor() {
		sq += v * v
	}
	for j, v := range a.RawRowMajor() {
		assert.InDelta(t, v/sq, mustAt(t, b, 0, j), 1e-12)
	}
}

func TestSolve_ZeroAndNil(t *testing.T) {
	a, err := matrix.NewDense(6, 2)
	require.NoError(t, err)
	_, err = mixer.Solve(a)
	require.NoError(t, err, "an all-zero allocation has a zero pseudoinverse")

	_, err = mixer.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var se *mixer.SingularGeometryError
	assert.False(t, errors.As(err, &se))
}

func TestSingularGeometryError(t *testing.T) {
	err := &mixer.SingularGeometryError{Geometry: "hex", Err: matrix.ErrSVDFailed}
	assert.ErrorIs(t, err, matrix.ErrSVDFailed)
	assert.Contains(t, err.Error(), "hex")
	assert.Contains(t, (&mixer.SingularGeometryError{Err: matrix.ErrSVDFailed}).Error(), "singular geometry")
}
