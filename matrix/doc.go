// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used to derive
// control-allocation and mixing matrices.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional finite-only numeric policy.
//   - Canonical kernels: Mul, Transpose, VStack.
//   - Column statistics used by scale normalization: ColNormsL2, ColMaxAbs.
//   - Broadcast division of columns: DivideCols.
//   - Singular value decomposition and the Moore–Penrose pseudoinverse
//     (SVD, Pinv), backed by gonum's LAPACK port.
//
// All kernels are deterministic: fixed loop orders, no map iteration, no
// randomness. Identical inputs produce bit-identical outputs.
//
// Errors are package-level sentinels (errors.go) wrapped with an operation
// tag; match them with errors.Is.
package matrix
