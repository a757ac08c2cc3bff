// SPDX-License-Identifier: MIT

// Package table turns mix results into the geometry tables consumed by the
// flight stack.
//
// Build is pure: it orders, validates and projects results into a Table
// value. Serialization is separate and works on that value only:
//
//	WriteHeader  C++ header with the MultirotorGeometry enum and rotor arrays
//	WriteTOML    the same table as TOML, for tooling and diffs
//
// In 4-DOF mode each rotor row is {roll, pitch, yaw, thrust} with thrust
// taken as −B[i,z] so that upward thrust is positive. In 6-DOF mode the full
// B row is emitted unchanged.
package table
