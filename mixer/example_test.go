// SPDX-License-Identifier: MIT

package mixer_test

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/mixer"
)

// clean rounds to three decimals and folds -0 into 0 for stable output.
func clean(v float64) float64 {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return 0
	}

	return v
}

// ExampleMix mixes a "+" quadcopter: two CCW rotors on the x axis and two
// CW rotors on the y axis, one meter from the center.
func ExampleMix() {
	down := r3.Vector{Z: -1}
	var rotors []geometry.Rotor
	for _, rs := range []struct {
		name string
		pos  r3.Vector
		dir  geometry.Direction
	}{
		{"front", r3.Vector{X: 1}, geometry.CCW},
		{"back", r3.Vector{X: -1}, geometry.CCW},
		{"right", r3.Vector{Y: 1}, geometry.CW},
		{"left", r3.Vector{Y: -1}, geometry.CW},
	} {
		r, err := geometry.NewRotor(rs.name, rs.pos, down, rs.dir, 1, 1)
		if err != nil {
			panic(err)
		}
		rotors = append(rotors, r)
	}
	g, err := geometry.New(geometry.Info{Name: "quad_plus", Key: "4+"}, rotors)
	if err != nil {
		panic(err)
	}

	res, err := mixer.Mix(g)
	if err != nil {
		panic(err)
	}
	fmt.Println("rotor  roll  pitch   yaw     x      y      z")
	for i, r := range g.Rotors() {
		row, _ := res.B.Row(i)
		fmt.Printf("%-5s", r.Name)
		for _, v := range row {
			fmt.Printf(" %6.3f", clean(v))
		}
		fmt.Println()
	}
	// Output:
	// rotor  roll  pitch   yaw     x      y      z
	// front  0.000  0.500  0.250  0.000  0.000 -0.250
	// back   0.000 -0.500  0.250  0.000  0.000 -0.250
	// right -0.500  0.000 -0.250  0.000  0.000 -0.250
	// left   0.500  0.000 -0.250  0.000  0.000 -0.250
}
