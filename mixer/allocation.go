// SPDX-License-Identifier: MIT
// Package: mixer
//
// Purpose:
//   - Build the 6×N allocation matrix A from a rotor list.
//   - Column i of A is the wrench (torque; thrust) produced by a unit command
//     on rotor i:
//     torque_i = Ct·(p × â) − Cm·â·dir
//     thrust_i = Ct·â
//     where â = axis/‖axis‖ and dir = +1 for CCW, −1 for CW.
//
// AI-Hints:
//   - Columns follow rotor order; reordering rotors permutes columns of A
//     and, after Solve, rows of B.
//   - Zero axes are rejected, never defaulted.

package mixer

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/matrix"
)

// Allocation returns A = [TorqueMatrix; ThrustMatrix], shape 6×N.
//
// Errors (*geometry.GeometryError, Index set to the offending rotor):
//   - geometry.ErrNoRotors for an empty list.
//   - geometry.ErrZeroAxis for ‖axis‖ < geometry.MinAxisNorm.
//   - geometry.ErrInvalidDirection for a direction other than CW or CCW.
//   - any other Rotor.Validate failure.
func Allocation(rotors []geometry.Rotor) (*matrix.Dense, error) {
	am, err := TorqueMatrix(rotors)
	if err != nil {
		return nil, err
	}
	at, err := ThrustMatrix(rotors)
	if err != nil {
		return nil, err
	}

	return matrix.VStack(am, at)
}

// TorqueMatrix returns Am (3×N): roll, pitch, yaw torque per unit command.
func TorqueMatrix(rotors []geometry.Rotor) (*matrix.Dense, error) {
	torque, _, err := columns(rotors)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(3, len(rotors), torque)
}

// ThrustMatrix returns At (3×N): x, y, z thrust per unit command.
func ThrustMatrix(rotors []geometry.Rotor) (*matrix.Dense, error) {
	_, thrust, err := columns(rotors)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(3, len(rotors), thrust)
}

// columns computes both 3×N blocks in row-major layout.
func columns(rotors []geometry.Rotor) (torque, thrust []float64, err error) {
	n := len(rotors)
	if n == 0 {
		return nil, nil, &geometry.GeometryError{Index: -1, Err: geometry.ErrNoRotors}
	}
	torque = make([]float64, 3*n)
	thrust = make([]float64, 3*n)
	for i, r := range rotors {
		tq, th, err := wrench(r)
		if err != nil {
			ge := *err
			ge.Index = i
			return nil, nil, &ge
		}
		torque[i], torque[n+i], torque[2*n+i] = tq.X, tq.Y, tq.Z
		thrust[i], thrust[n+i], thrust[2*n+i] = th.X, th.Y, th.Z
	}

	return torque, thrust, nil
}

// wrench returns the torque and thrust of one rotor under a unit command.
func wrench(r geometry.Rotor) (torque, thrust r3.Vector, err *geometry.GeometryError) {
	if verr := r.Validate(); verr != nil {
		return r3.Vector{}, r3.Vector{}, verr.(*geometry.GeometryError)
	}
	a, aerr := r.UnitAxis()
	if aerr != nil {
		return r3.Vector{}, r3.Vector{}, aerr.(*geometry.GeometryError)
	}
	dir := r.Direction.Sign()
	torque = r.Position.Cross(a).Mul(r.Ct).Sub(a.Mul(r.Cm * dir))
	thrust = a.Mul(r.Ct)

	return torque, thrust, nil
}
