// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"           // method tag used in error wrappers
	ctxSet     = "Set"          // method tag used in error wrappers
	ctxFrom    = "NewDenseFrom" // ctor tag
	ctxFromRow = "FromRows"     // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix from a row-major slice.
// The slice is copied; later mutation of data does not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when data holds a non-finite value (default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxFrom, rows, cols, ErrDimensionMismatch)
	}
	for k, v := range data {
		if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a Dense from a rectangular [][]float64 literal.
// Handy for fixtures; every row must have the same length.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf(ctxFromRow, i, len(row), ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(r, c, flat)
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j, or ErrOutOfRange.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawRowMajor returns a copy of the row-major buffer.
func (m *Dense) RawRowMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders rows as lines of comma-separated values (%g) for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
