// SPDX-License-Identifier: MIT

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Copy returns a *Dense holding the same values as m.
// Unlike Clone it always yields the concrete type, whatever m's implementation.
func Copy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Copy", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("Copy", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf("Copy", e)
			}
			if e = out.Set(i, j, v); e != nil {
				return nil, matrixErrorf("Copy", e)
			}
		}
	}

	return out, nil
}

// ---------- Broadcast (public surface → ew* kernels) ----------

// DivideCols returns a copy of X with every column j divided by d[j].
// len(d) must equal Cols(X); zero or non-finite divisors are rejected.
// Time: O(r*c). Space: O(r*c). Deterministic.
func DivideCols(X Matrix, d []float64) (*Dense, error) {
	return ewDivideCols(X, d)
}
