package geometrize

import (
	"math"

	"github.com/golang/geo/s1"
)

// rsqrtMagic is the float64 seed constant of the bit-level reciprocal
// square root approximation.
const rsqrtMagic uint64 = 0x5fe6eb50c7b537a9

// rsqrtIterations is the number of Newton-Raphson refinement steps.
// Changing it changes results in the last bits.
const rsqrtIterations = 4

// FastInvSqrt approximates 1/sqrt(x).
//
// The IEEE 754 bit pattern of x is reinterpreted as an integer to get a
// first estimate, which is then refined with four Newton-Raphson
// iterations y = y*(1.5 - 0.5*x*y*y). For positive normal inputs the
// relative error is below machine epsilon in practice, but the result is
// not guaranteed to equal 1/math.Sqrt(x) exactly.
func FastInvSqrt(x float64) float64 {
	const threeHalfs = 1.5

	x2 := 0.5 * x
	y := math.Float64frombits(rsqrtMagic - math.Float64bits(x)>>1)
	for range rsqrtIterations {
		y *= threeHalfs - x2*y*y
	}
	return y
}

// epsilon is the float64 machine epsilon (2^-52).
const epsilon = 0x1p-52

// degToRad converts an angle in degrees to radians.
func degToRad(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}
