package geometrize

import "math"

// Vector represents a 2D displacement.
// Unlike Point which represents a position, Vector represents a direction and
// magnitude. Edge vectors of shapes are Vectors.
type Vector struct {
	X, Y float64
}

// V is a convenience function to create a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0; its sign gives
// the turning direction from v to w.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Magnitude returns the exact Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the same direction.
//
// The reciprocal length comes from FastInvSqrt, so the result is an
// approximation that may differ from v/|v| in the last bits.
// The zero vector normalizes to the zero vector.
func (v Vector) Normalize() Vector {
	return v.Scale(FastInvSqrt(v.Dot(v)))
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
