// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide per-column aggregates used by scale normalization of mixing
//     matrices: Euclidean norm and maximum absolute value.
//
// Exposed API:
//   - ColNormsL2(X) -> norms  // ‖X[:,j]‖₂ for every column j
//   - ColMaxAbs(X)  -> maxes  // max_i |X[i,j]| for every column j
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on the row-major flat buffer.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColNormsL2 = "ColNormsL2"
	opColMaxAbs  = "ColMaxAbs"
)

// ColNormsL2 returns the Euclidean norm of every column of X.
//
// Implementation:
//   - Stage 1: accumulate squares per column in i→j order.
//   - Stage 2: take square roots.
//
// Notes:
//   - Plain sum of squares (no scaling); inputs here are mixing coefficients of
//     moderate magnitude, so overflow is not a concern.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColNormsL2(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColNormsL2, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, c)
	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				norms[j] += v * v
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColNormsL2, err)
				}
				norms[j] += v * v
			}
		}
	}
	for j = 0; j < c; j++ {
		norms[j] = math.Sqrt(norms[j])
	}

	return norms, nil
}

// ColMaxAbs returns max_i |X[i,j]| for every column j.
// Complexity: Time O(r*c), Space O(c).
func ColMaxAbs(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColMaxAbs, err)
	}
	r, c := X.Rows(), X.Cols()
	maxes := make([]float64, c)
	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if v = math.Abs(d.data[base+j]); v > maxes[j] {
					maxes[j] = v
				}
			}
		}
		return maxes, nil
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColMaxAbs, err)
			}
			if v = math.Abs(v); v > maxes[j] {
				maxes[j] = v
			}
		}
	}

	return maxes, nil
}
