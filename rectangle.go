package geometrize

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/gogpu/geometrize/internal/mathutil"
)

// MaxAspectRatio is the largest ratio between the longer and the shorter
// side of a valid rectangle. The bound is inclusive.
const MaxAspectRatio = 5.0

// Rectangle is a unit square anchored at Origin, scaled to its width and
// height and rotated by Angle radians around Origin.
type Rectangle struct {
	// Origin is the anchor corner of the rectangle.
	Origin Point

	// Angle is the rotation of the rectangle in radians.
	Angle float64

	width, height float64
}

// NewRectangle returns a builder for the unit square at the origin.
//
// Example:
//
//	// A rotated golden rectangle.
//	rect := geometrize.NewRectangle().
//	    Height((1 + math.Sqrt(5)) / 2).
//	    Angle(math.Pi / 4).
//	    Build()
func NewRectangle() *RectangleBuilder {
	return &RectangleBuilder{width: 1, height: 1}
}

// Width returns the horizontal scaling of the rectangle.
func (r Rectangle) Width() float64 {
	return r.width
}

// Height returns the vertical scaling of the rectangle.
func (r Rectangle) Height() float64 {
	return r.height
}

// AspectRatio returns the larger side divided by the smaller one. Sides are
// compared as signed values, so degenerate rectangles give Inf, NaN or a
// negative ratio.
func (r Rectangle) AspectRatio() float64 {
	short, long := mathutil.Order(r.width, r.height)
	return long / short
}

// Corners returns the four corners in order, starting at Origin.
func (r Rectangle) Corners() [4]Point {
	sin, cos := math.Sincos(r.Angle)
	ux := Vector{X: r.width * cos, Y: r.width * sin}
	uy := Vector{X: -r.height * sin, Y: r.height * cos}
	return [4]Point{
		r.Origin,
		r.Origin.Add(ux),
		r.Origin.Add(ux).Add(uy),
		r.Origin.Add(uy),
	}
}

// Kind returns KindRectangle.
func (Rectangle) Kind() Kind { return KindRectangle }

// IsValid reports whether the aspect ratio does not exceed MaxAspectRatio.
// The sides themselves are not checked: a zero side fails through an
// infinite or NaN ratio, and negative sides pass whenever their ratio does.
// Use HasPositiveSides for the stricter test.
func (r Rectangle) IsValid() bool {
	return r.AspectRatio() <= MaxAspectRatio
}

// HasPositiveSides reports whether width and height are both greater than
// zero.
func (r Rectangle) HasPositiveSides() bool {
	return r.width > 0 && r.height > 0
}

// Bounds returns the axis-aligned box enclosing the rotated rectangle.
func (r Rectangle) Bounds() r2.Rect {
	c := r.Corners()
	return boundsOf(c[:])
}

// Mutate moves the origin, resizes one side, or turns the rectangle.
// Sides never shrink below 1.
func (r *Rectangle) Mutate(j Jitter) {
	switch j.Intn(4) {
	case 0:
		r.Origin = r.Origin.Add(Vector{X: j.Offset(), Y: j.Offset()})
	case 1:
		r.width = math.Max(1, r.width+j.Offset())
	case 2:
		r.height = math.Max(1, r.height+j.Offset())
	case 3:
		r.Angle += degToRad(j.Offset())
	}
}

func (*Rectangle) sealed() {}

// RectangleBuilder accumulates the parameters of a Rectangle.
// All methods return the builder for chaining.
type RectangleBuilder struct {
	origin        Point
	width, height float64
	angle         float64
}

// Origin sets the anchor corner.
func (b *RectangleBuilder) Origin(x, y float64) *RectangleBuilder {
	b.origin = Point{X: x, Y: y}
	return b
}

// Aspect sets both the width and the height.
func (b *RectangleBuilder) Aspect(width, height float64) *RectangleBuilder {
	b.width, b.height = width, height
	return b
}

// Width sets the width.
func (b *RectangleBuilder) Width(width float64) *RectangleBuilder {
	b.width = width
	return b
}

// Height sets the height.
func (b *RectangleBuilder) Height(height float64) *RectangleBuilder {
	b.height = height
	return b
}

// Angle sets the rotation angle in radians.
func (b *RectangleBuilder) Angle(angle float64) *RectangleBuilder {
	b.angle = angle
	return b
}

// Build returns the rectangle described by the builder.
func (b *RectangleBuilder) Build() Rectangle {
	return Rectangle{
		Origin: b.origin,
		Angle:  b.angle,
		width:  b.width,
		height: b.height,
	}
}
