// SPDX-License-Identifier: MIT

package mixer

import (
	"errors"

	"github.com/katalvlaran/rotormix/matrix"
)

// Solve returns the mix matrix B = pinv(A) (N×6 for a 6×N allocation).
//
// B is the minimum-norm least-squares inverse: A·B·A = A always holds, and
// A·B = I when A has full row rank (6 independent rotors). Rank-deficient
// geometries are not special-cased; the axes they cannot actuate get
// (near-)zero columns in B.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf for invalid input.
//   - *SingularGeometryError wrapping matrix.ErrSVDFailed when the
//     factorization does not converge.
func Solve(a matrix.Matrix, opts ...matrix.PinvOption) (*matrix.Dense, error) {
	b, err := matrix.Pinv(a, opts...)
	if err != nil {
		if errors.Is(err, matrix.ErrSVDFailed) {
			return nil, &SingularGeometryError{Err: err}
		}
		return nil, err
	}

	return b, nil
}
