// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotormix/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major slice or fails the test.
func NewFilledDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// RandomDense fills an r×c matrix with values in [-1, 1) from a fixed seed.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, data)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts identical shapes and |a-b| ≤ atol + rtol*|b| element-wise.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("mismatch at (%d,%d): got %g want %g", i, j, av, bv)
			}
		}
	}
}

// sliceClose asserts two vectors are equal within atol.
func sliceClose(t *testing.T, got, want []float64, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], atol, "index %d", i)
	}
}
