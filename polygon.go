package geometrize

import (
	"slices"

	"github.com/golang/geo/r2"
)

// Polygon is a closed polygon given by its ordered vertices.
// The last vertex connects back to the first.
type Polygon struct {
	vertices []Point
}

// NewPolygon creates a polygon from the given vertices.
// The vertices are copied.
func NewPolygon(vertices ...Point) Polygon {
	return Polygon{vertices: slices.Clone(vertices)}
}

// Order returns the number of vertices.
func (p Polygon) Order() int {
	return len(p.vertices)
}

// Vertices returns a copy of the vertices.
func (p Polygon) Vertices() []Point {
	return slices.Clone(p.vertices)
}

// Kind returns KindPolygon.
func (Polygon) Kind() Kind { return KindPolygon }

// IsValid reports whether the polygon has at least three vertices and every
// pair of consecutive edges turns in the same direction.
//
// Edge i goes from vertices[i] to vertices[(i+1)%n]; the turn at each vertex
// is the sign of the cross product of the incoming and outgoing edges. A zero
// cross product (collinear edges) counts as a non-positive turn.
// Self-intersecting sequences that wind more than once around a point, such
// as a pentagram, keep a consistent turn and are therefore reported valid.
func (p Polygon) IsValid() bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}

	positive := p.turn(0) > 0
	for i := 1; i < n; i++ {
		if (p.turn(i) > 0) != positive {
			return false
		}
	}
	return true
}

// turn returns the cross product of edge i and edge i+1.
func (p Polygon) turn(i int) float64 {
	n := len(p.vertices)
	p0 := p.vertices[i%n]
	p1 := p.vertices[(i+1)%n]
	p2 := p.vertices[(i+2)%n]
	return p1.Sub(p0).Cross(p2.Sub(p1))
}

// Bounds returns the bounding box of the vertices.
// An empty polygon has an empty box.
func (p Polygon) Bounds() r2.Rect {
	return boundsOf(p.vertices)
}

// Mutate moves one vertex. Empty polygons are left unchanged.
func (p *Polygon) Mutate(j Jitter) {
	if len(p.vertices) == 0 {
		return
	}
	i := j.Intn(len(p.vertices))
	p.vertices[i] = p.vertices[i].Add(Vector{X: j.Offset(), Y: j.Offset()})
}

func (*Polygon) sealed() {}
