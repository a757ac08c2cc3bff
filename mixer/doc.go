// SPDX-License-Identifier: MIT

// Package mixer turns a multirotor geometry into a mixing matrix.
//
// The pipeline has three stages, each usable on its own:
//
//	Allocation  geometry → A (6×N): wrench produced by a unit command on each rotor
//	Solve       A → B = pinv(A) (N×6): rotor commands for a desired wrench
//	Normalize   B → B / scale: legacy per-axis rescaling (optional)
//
// Rows of A and columns of B are ordered Roll, Pitch, Yaw, X, Y, Z (see Axis).
// Columns of A and rows of B follow the rotor order of the geometry.
//
// Mix runs all three for one geometry; MixAll runs Mix over many geometries
// concurrently and keeps the input order.
//
// Determinism: identical geometries produce bit-identical matrices.
// Nothing in this package logs; non-fatal conditions are returned as
// NormalizationWarning values on the Result.
package mixer
