package geometrize

import "github.com/golang/geo/r2"

// Kind identifies a shape variant.
type Kind uint8

const (
	// KindEllipse is an optionally rotated ellipse.
	KindEllipse Kind = iota

	// KindRectangle is a scaled and rotated unit square.
	KindRectangle

	// KindTriangle is a three-vertex polygon.
	KindTriangle

	// KindPolygon is a polygon of arbitrary order.
	KindPolygon
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindRectangle:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Kinds lists every shape variant in declaration order.
var Kinds = []Kind{KindEllipse, KindRectangle, KindTriangle, KindPolygon}

// Shape is the capability set shared by all shape variants.
//
// The set of variants is closed: Ellipse, Rectangle, Triangle and Polygon
// are the only implementations. Shapes are plain values; Mutate and the
// builders never validate, so a shape may stay invalid until IsValid is
// queried.
type Shape interface {
	// Kind returns the variant tag.
	Kind() Kind

	// IsValid reports whether the shape satisfies the constraints of its
	// variant. It is a pure predicate over the shape's own fields.
	IsValid() bool

	// Mutate perturbs the shape parameters in place. The perturbation
	// policy is owned by j.
	Mutate(j Jitter)

	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() r2.Rect

	sealed()
}

// Validate returns an *InvalidShapeError if s is not valid.
func Validate(s Shape) error {
	if s.IsValid() {
		return nil
	}
	return &InvalidShapeError{Kind: s.Kind()}
}

var (
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Polygon)(nil)
)

// boundsOf returns the bounding box of a point set.
func boundsOf(points []Point) r2.Rect {
	r := r2.EmptyRect()
	for _, p := range points {
		r = r.AddPoint(p.R2())
	}
	return r
}
