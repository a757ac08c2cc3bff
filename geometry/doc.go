// SPDX-License-Identifier: MIT

// Package geometry describes multirotor airframes as typed, validated records.
//
// A Geometry is an ordered sequence of Rotor values plus identifying Info
// (name, key, description). Order is significant: rotor i becomes column i of
// the allocation matrix and row i of the mixing matrix.
//
// Records are validated once, at construction:
//
//   - Direction is a two-valued enum (CW, CCW) parsed case-insensitively.
//   - Positions and axes are finite r3.Vector values; the axis must have a
//     norm of at least MinAxisNorm and need not be unit length.
//   - Ct must be positive, Cm non-negative.
//
// Geometry descriptions are usually loaded from TOML files (see Decode and
// LoadFile). A [rotor_default] table may supply any rotor field; a field
// missing from both the rotor and the defaults is an error, never a zero.
//
//	[info]
//	name = "quad_x"
//	key  = "4x"
//
//	[rotor_default]
//	axis = [0.0, 0.0, -1.0]
//	Ct   = 1.0
//	Cm   = 0.05
//
//	[[rotors]]
//	name      = "front_right"
//	position  = [0.707107, 0.707107, 0.0]
//	direction = "CCW"
//
// All failures are reported as *GeometryError carrying the geometry name,
// source file, rotor index/name and field, and wrapping one of the
// sentinel errors in errors.go.
package geometry
