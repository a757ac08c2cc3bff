// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose and vertical stacking. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - Every kernel allocates a fresh result; operands are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opVStack    = "VStack"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a×b as a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast-path (both *Dense) with i→k→j order; fallback i→j→k via At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; zero entries of a are skipped on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}
		return res, nil
	}
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// VStack stacks blocks vertically: the result has Σ rows(block) rows and the
// common column count. Block order is preserved.
//
// Errors:
//   - ErrNilMatrix for an empty block list or a nil block.
//   - ErrDimensionMismatch when column counts differ.
//
// Complexity:
//   - Time O(R*c), Space O(R*c) where R is the total row count.
func VStack(blocks ...Matrix) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opVStack, ErrNilMatrix)
	}
	var rows int
	for _, blk := range blocks {
		if err := ValidateNotNil(blk); err != nil {
			return nil, matrixErrorf(opVStack, err)
		}
		if blk.Cols() != blocks[0].Cols() {
			return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
		}
		rows += blk.Rows()
	}
	cols := blocks[0].Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	var (
		off  int // destination row-major offset of the current block
		i, j int
		v    float64
	)
	for _, blk := range blocks {
		if d, ok := blk.(*Dense); ok {
			copy(res.data[off:off+len(d.data)], d.data)
			off += len(d.data)
			continue
		}
		for i = 0; i < blk.Rows(); i++ {
			for j = 0; j < cols; j++ {
				if v, err = blk.At(i, j); err != nil {
					return nil, matrixErrorf(opVStack, err)
				}
				res.data[off+i*cols+j] = v
			}
		}
		off += blk.Rows() * cols
	}

	return res, nil
}
