// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); api.go exposes thin wrappers.

package matrix

import "math"

// ewDivideCols computes out[i,j] = X[i,j] / d[j].
// Division (not multiplication by a reciprocal) keeps results identical to
// the broadcast division used when the tables were first generated.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewDivideCols(X Matrix, d []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("DivideCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(d, c); err != nil {
		return nil, matrixErrorf("DivideCols", err)
	}
	for _, v := range d {
		if v == 0 {
			return nil, matrixErrorf("DivideCols", ErrZeroDivisor)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf("DivideCols", ErrNaNInf)
		}
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("DivideCols", err)
	}

	// Dense fast-path.
	if src, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = src.data[base+j] / d[j]
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("DivideCols", e)
			}
			if e = out.Set(i, j, v/d[j]); e != nil {
				return nil, matrixErrorf("DivideCols", e)
			}
		}
	}
	return out, nil
}
