// SPDX-License-Identifier: MIT

// Package rotormix generates multirotor mixing tables from rotor geometry.
//
// A geometry lists each rotor's body-frame position, spin axis, spin
// direction and thrust/torque coefficients. From it rotormix builds the
// allocation matrix A (rotor commands → body torque and thrust), inverts it
// into the mix matrix B = pinv(A), optionally applies the legacy per-axis
// rescaling, and emits the C++ tables the flight stack compiles in.
//
// Layout:
//
//	matrix/         row-major Dense, kernels, column statistics, SVD and pseudoinverse
//	geometry/       Rotor, Direction, Geometry, TOML loader with [rotor_default]
//	mixer/          Allocation, Solve, LegacyScale/Normalize, Mix and MixAll
//	table/          Build (pure), WriteHeader, WriteTOML
//	observability/  zerolog console logger, Prometheus textfile metrics
//	cmd/mixgen/     command-line generator
//	geoms/          shipped geometry descriptions
//
// Quick start:
//
//	go run ./cmd/mixgen -d geoms -o mixer_multirotor.generated.h
//
// Conventions:
//   - Body frame is forward-right-down; a downward spin axis [0, 0, -1]
//     produces upward thrust along -z.
//   - Rows of A and columns of B are ordered roll, pitch, yaw, x, y, z.
//   - Identical inputs give bit-identical outputs.
package rotormix
