// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Singular value decomposition and the Moore–Penrose pseudoinverse.
//   - The factorization itself is delegated to gonum (LAPACK Dgesvd port);
//     this file adapts between Dense and mat.Dense and applies the cutoff policy.
//
// Determinism:
//   - gonum's SVD is deterministic for identical inputs; the reconstruction
//     loops below use fixed i→j→k order. Pinv is bit-reproducible.
//
// AI-Hints:
//   - Pinv never special-cases rank deficiency: singular values under the
//     cutoff are zeroed, which yields the minimum-norm least-squares inverse.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opSVD  = "SVD"
	opPinv = "Pinv"
)

// SVDResult holds a thin factorization m = U·diag(Values)·Vᵀ.
//   - U is r×k, V is c×k, k = min(r, c).
//   - Values are non-negative and sorted in descending order.
type SVDResult struct {
	U      *Dense
	V      *Dense
	Values []float64
}

// SVD computes the thin singular value decomposition of m.
//
// Implementation:
//   - Stage 1: validate non-nil and finite input.
//   - Stage 2: copy into a gonum mat.Dense (row-major, same layout) and factorize.
//   - Stage 3: copy U, V and the singular values back into package types.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf from validation.
//   - ErrSVDFailed when the factorization does not converge.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func SVD(m Matrix) (*SVDResult, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	src, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	var fact mat.SVD
	if ok := fact.Factorize(src, mat.SVDThin); !ok {
		return nil, matrixErrorf(opSVD, ErrSVDFailed)
	}
	var u, v mat.Dense
	fact.UTo(&u)
	fact.VTo(&v)

	res := &SVDResult{Values: fact.Values(nil)}
	if res.U, err = fromGonum(&u); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	if res.V, err = fromGonum(&v); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	return res, nil
}

// Pinv returns the Moore–Penrose pseudoinverse of m (c×r for an r×c input).
//
// Implementation:
//   - Stage 1: thin SVD m = U·Σ·Vᵀ.
//   - Stage 2: cutoff = rcond·σmax; σ⁺ = 1/σ for σ > cutoff, else 0.
//   - Stage 3: pinv = (V·diag(σ⁺))·Uᵀ via Transpose and Mul.
//
// Behavior highlights:
//   - Full rank, rank-deficient, under- and over-determined inputs are all
//     handled by the same path. An all-zero input yields an all-zero result.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSVDFailed.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Pinv(m Matrix, opts ...PinvOption) (*Dense, error) {
	o := gatherPinvOptions(opts...)
	f, err := SVD(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	c := m.Cols()
	k := len(f.Values)

	// Values are sorted descending, so σmax is the first entry.
	var smax float64
	if k > 0 {
		smax = f.Values[0]
	}
	cutoff := o.rcond * smax
	inv := make([]float64, k)
	for i, s := range f.Values {
		if s > cutoff {
			inv[i] = 1 / s
		}
	}

	// m⁺ = V·Σ⁺·Uᵀ; columns of V are scaled by 1/σ in place of forming Σ⁺.
	vs, err := Copy(f.V)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	for i := 0; i < c; i++ {
		for l := 0; l < k; l++ {
			vs.data[i*k+l] *= inv[l]
		}
	}
	ut, err := Transpose(f.U)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	out, err := Mul(vs, ut)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	return out, nil
}

// toGonum copies m into a freshly allocated mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(r, c, d.RawRowMajor()), nil
	}
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// fromGonum copies a mat.Dense (honoring its stride) into a new Dense.
func fromGonum(g *mat.Dense) (*Dense, error) {
	raw := g.RawMatrix()
	out, err := NewDense(raw.Rows, raw.Cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < raw.Rows; i++ {
		copy(out.data[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return out, nil
}
