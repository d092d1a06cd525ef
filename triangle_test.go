package geometrize

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
)

func TestTriangle_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		vertices [3]Point
		want     bool
	}{
		{"isosceles", [3]Point{Pt(0, 0), Pt(0.5, 1), Pt(1, 0)}, true},
		{"degenerately thin", [3]Point{Pt(0, 0), Pt(0, 1), Pt(50, 0)}, false},
		{"equilateral", [3]Point{Pt(0, 0), Pt(1, 0), Pt(0.5, math.Sqrt(3) / 2)}, true},
		{"right isosceles", [3]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}, true},
		{"clockwise order", [3]Point{Pt(0, 0), Pt(1, 0), Pt(0.5, -1)}, true},
		{"collinear", [3]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, false},
		{"coincident vertices", [3]Point{Pt(0, 0), Pt(0, 0), Pt(1, 0)}, false},
		{"obtuse sliver", [3]Point{Pt(0, 0), Pt(10, 0), Pt(5, 0.5)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TriangleFrom(tt.vertices).IsValid(); got != tt.want {
				t.Errorf("IsValid() for %v = %v, want %v (angles %v)",
					tt.vertices, got, tt.want, TriangleFrom(tt.vertices).Angles())
			}
		})
	}
}

func TestTriangle_Angles(t *testing.T) {
	tr := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	want := [3]float64{90, 45, 45}

	got := tr.Angles()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Angles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTriangle_ThirdAngleIsDerived(t *testing.T) {
	tr := NewTriangle(Pt(0, 0), Pt(0.5, 1), Pt(1, 0))
	a := tr.InteriorAngles()
	if a[2] != math.Pi-a[0]-a[1] {
		t.Errorf("third angle %v is not Pi - %v - %v", a[2], a[0], a[1])
	}
	if sum := a[0] + a[1] + a[2]; math.Abs(sum.Degrees()-180) > 1e-9 {
		t.Errorf("angle sum = %v, want 180 degrees", sum.Degrees())
	}
}

func TestTriangle_InteriorAngles(t *testing.T) {
	tr := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	want := [3]s1.Angle{s1.Angle(math.Pi / 2), s1.Angle(math.Pi / 4), s1.Angle(math.Pi / 4)}

	got := tr.InteriorAngles()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-9 {
			t.Errorf("InteriorAngles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTriangle_Constructors(t *testing.T) {
	v := [3]Point{Pt(1, 2), Pt(3, 4), Pt(5, 0)}
	if NewTriangle(v[0], v[1], v[2]) != TriangleFrom(v) {
		t.Error("NewTriangle and TriangleFrom disagree")
	}
	if got := TriangleFrom(v).Vertices(); got != v {
		t.Errorf("Vertices() = %v, want %v", got, v)
	}
}

func TestTriangle_Bounds(t *testing.T) {
	b := NewTriangle(Pt(1, 5), Pt(-2, 3), Pt(4, -1)).Bounds()
	if b.Lo().X != -2 || b.Lo().Y != -1 || b.Hi().X != 4 || b.Hi().Y != 5 {
		t.Errorf("Bounds() = %v, want [(-2, -1), (4, 5)]", b)
	}
}

func TestTriangle_Mutate(t *testing.T) {
	tr := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	j := &scriptedJitter{picks: []int{1}, offsets: []float64{1, 2}}

	tr.Mutate(j)

	if j.bounds[0] != 3 {
		t.Errorf("vertex picked among %d, want 3", j.bounds[0])
	}
	want := [3]Point{Pt(0, 0), Pt(2, 2), Pt(0, 1)}
	if got := tr.Vertices(); got != want {
		t.Errorf("Vertices() after Mutate = %v, want %v", got, want)
	}
}
