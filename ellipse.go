package geometrize

import (
	"math"

	"github.com/golang/geo/r2"
)

// Ellipse is the shape ((x-u)/a)² + ((y-v)/b)² = 1, optionally rotated by
// an angle in radians around its center.
//
// Ellipses carry no validity constraint: IsValid always reports true.
// Whether an ellipse is a circle or rotated are queries, not validity gates.
type Ellipse struct {
	u, v    float64
	a, b    float64
	angle   float64
	rotated bool
}

// NewEllipse returns a builder for an axis-aligned unit circle centered on
// the origin.
func NewEllipse() *EllipseBuilder {
	return &EllipseBuilder{a: 1, b: 1}
}

// Center returns the center (u, v) of the ellipse.
func (e Ellipse) Center() Point {
	return Point{X: e.u, Y: e.v}
}

// Axes returns the semi-axes a (along x) and b (along y) before rotation.
func (e Ellipse) Axes() (a, b float64) {
	return e.a, e.b
}

// Angle returns the rotation angle and whether the ellipse is rotated.
func (e Ellipse) Angle() (float64, bool) {
	return e.angle, e.rotated
}

// IsCircle reports whether both semi-axes are equal within machine epsilon.
func (e Ellipse) IsCircle() bool {
	return math.Abs(e.a-e.b) < epsilon
}

// IsRotated reports whether a rotation angle was set.
func (e Ellipse) IsRotated() bool {
	return e.rotated
}

// Kind returns KindEllipse.
func (Ellipse) Kind() Kind { return KindEllipse }

// IsValid always returns true.
func (Ellipse) IsValid() bool { return true }

// Bounds returns the axis-aligned box enclosing the (rotated) ellipse.
func (e Ellipse) Bounds() r2.Rect {
	hw, hh := math.Abs(e.a), math.Abs(e.b)
	if e.rotated {
		sin, cos := math.Sincos(e.angle)
		hw = math.Hypot(e.a*cos, e.b*sin)
		hh = math.Hypot(e.a*sin, e.b*cos)
	}
	return r2.RectFromCenterSize(
		r2.Point{X: e.u, Y: e.v},
		r2.Point{X: 2 * hw, Y: 2 * hh},
	)
}

// Mutate moves the center, resizes one semi-axis, or, for rotated
// ellipses, turns the ellipse. Semi-axes never shrink below 1.
func (e *Ellipse) Mutate(j Jitter) {
	n := 3
	if e.rotated {
		n = 4
	}
	switch j.Intn(n) {
	case 0:
		e.u += j.Offset()
		e.v += j.Offset()
	case 1:
		e.a = math.Max(1, e.a+j.Offset())
	case 2:
		e.b = math.Max(1, e.b+j.Offset())
	case 3:
		e.angle += degToRad(j.Offset())
	}
}

func (*Ellipse) sealed() {}

// EllipseBuilder accumulates the parameters of an Ellipse.
// All methods return the builder for chaining.
type EllipseBuilder struct {
	u, v    float64
	a, b    float64
	angle   float64
	rotated bool
}

// U sets the x coordinate of the center.
func (b *EllipseBuilder) U(u float64) *EllipseBuilder {
	b.u = u
	return b
}

// V sets the y coordinate of the center.
func (b *EllipseBuilder) V(v float64) *EllipseBuilder {
	b.v = v
	return b
}

// Center sets both coordinates of the center.
func (b *EllipseBuilder) Center(u, v float64) *EllipseBuilder {
	b.u, b.v = u, v
	return b
}

// A sets the semi-axis along x.
func (b *EllipseBuilder) A(a float64) *EllipseBuilder {
	b.a = a
	return b
}

// B sets the semi-axis along y.
func (b *EllipseBuilder) B(semi float64) *EllipseBuilder {
	b.b = semi
	return b
}

// Axes sets both semi-axes.
func (b *EllipseBuilder) Axes(a, semi float64) *EllipseBuilder {
	b.a, b.b = a, semi
	return b
}

// Angle sets the rotation angle in radians and marks the ellipse as rotated,
// even when angle is zero.
func (b *EllipseBuilder) Angle(angle float64) *EllipseBuilder {
	b.angle = angle
	b.rotated = true
	return b
}

// Build returns the ellipse described by the builder.
func (b *EllipseBuilder) Build() Ellipse {
	return Ellipse{
		u:       b.u,
		v:       b.v,
		a:       b.a,
		b:       b.b,
		angle:   b.angle,
		rotated: b.rotated,
	}
}
