package geometrize

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// MinInteriorAngle is the smallest interior angle, in degrees, of a valid
// triangle.
const MinInteriorAngle = 15.0

// Triangle is defined by three ordered vertices.
//
// A triangle whose interior angles are not all at least MinInteriorAngle is
// still a triangle, but it is not valid.
type Triangle struct {
	vertices [3]Point
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{vertices: [3]Point{a, b, c}}
}

// TriangleFrom creates a triangle from a vertex array.
func TriangleFrom(vertices [3]Point) Triangle {
	return Triangle{vertices: vertices}
}

// Vertices returns the three vertices.
func (t Triangle) Vertices() [3]Point {
	return t.vertices
}

// InteriorAngles returns the interior angles at each vertex. The third
// angle is derived as a half turn minus the first two.
func (t Triangle) InteriorAngles() [3]s1.Angle {
	v := t.vertices
	a1 := vertexAngle(v[0], v[1], v[2])
	a2 := vertexAngle(v[1], v[0], v[2])
	return [3]s1.Angle{a1, a2, math.Pi*s1.Radian - a1 - a2}
}

// Angles returns InteriorAngles in degrees.
func (t Triangle) Angles() [3]float64 {
	a := t.InteriorAngles()
	return [3]float64{a[0].Degrees(), a[1].Degrees(), a[2].Degrees()}
}

// vertexAngle returns the angle at apex between the edges towards p and q.
func vertexAngle(apex, p, q Point) s1.Angle {
	u := p.Sub(apex).Normalize()
	w := q.Sub(apex).Normalize()
	// Normalize is approximate; keep acos in its domain.
	cos := math.Max(-1, math.Min(1, u.Dot(w)))
	return s1.Angle(math.Acos(cos)) * s1.Radian
}

// Kind returns KindTriangle.
func (Triangle) Kind() Kind { return KindTriangle }

// IsValid reports whether every interior angle is at least MinInteriorAngle.
func (t Triangle) IsValid() bool {
	for _, a := range t.Angles() {
		if !(a >= MinInteriorAngle) {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the vertices.
func (t Triangle) Bounds() r2.Rect {
	return boundsOf(t.vertices[:])
}

// Mutate moves one vertex.
func (t *Triangle) Mutate(j Jitter) {
	i := j.Intn(len(t.vertices))
	t.vertices[i] = t.vertices[i].Add(Vector{X: j.Offset(), Y: j.Offset()})
}

func (*Triangle) sealed() {}
