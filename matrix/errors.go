// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these with matrixErrorf(op, err)
// so callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> dimension mismatch -> numeric failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a broadcast vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroDivisor is returned by DivideCols when a divisor is exactly zero.
	ErrZeroDivisor = errors.New("matrix: zero divisor")

	// ErrSVDFailed indicates that the singular value decomposition did not
	// converge. Rank deficiency alone never produces this error.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")
)
