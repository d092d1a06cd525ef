package main

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"golang.org/x/exp/rand"

	"github.com/gogpu/geometrize"
)

// maxShapeExtent bounds the size of scattered shapes, in pixels.
const maxShapeExtent = 48.0

// scatter creates n random candidates of every shape kind inside a
// width x height canvas.
func scatter(rng *rand.Rand, n int, width, height float64) []geometrize.Shape {
	shapes := make([]geometrize.Shape, 0, n*len(geometrize.Kinds))
	for range n {
		cx, cy := rng.Float64()*width, rng.Float64()*height
		size := func() float64 { return 1 + rng.Float64()*(maxShapeExtent-1) }

		eb := geometrize.NewEllipse().Center(cx, cy).Axes(size()/2, size()/2)
		if rng.Intn(2) == 0 {
			eb.Angle(rng.Float64() * math.Pi)
		}
		e := eb.Build()

		r := geometrize.NewRectangle().
			Origin(cx, cy).
			Aspect(size(), size()).
			Angle(rng.Float64() * 2 * math.Pi).
			Build()

		corner := func() geometrize.Point {
			return geometrize.Pt(cx+(rng.Float64()-0.5)*maxShapeExtent, cy+(rng.Float64()-0.5)*maxShapeExtent)
		}
		t := geometrize.NewTriangle(corner(), corner(), corner())

		p := geometrize.NewPolygon(starVertices(rng, cx, cy, 3+rng.Intn(6))...)

		shapes = append(shapes, &e, &r, &t, &p)
	}
	return shapes
}

// starVertices returns order points around (cx, cy) sorted by angle, at
// random radii. The result is star-shaped but not necessarily convex.
func starVertices(rng *rand.Rand, cx, cy float64, order int) []geometrize.Point {
	angles := make([]float64, order)
	for i := range angles {
		angles[i] = rng.Float64() * 2 * math.Pi
	}
	slices.Sort(angles)

	vertices := make([]geometrize.Point, order)
	for i, a := range angles {
		radius := maxShapeExtent / 4 * (1 + rng.Float64())
		sin, cos := math.Sincos(a)
		vertices[i] = geometrize.Pt(cx+radius*cos, cy+radius*sin)
	}
	return vertices
}

// run scatters and mutates shapes, then accumulates and writes the
// coverage heatmap of the valid ones.
func run(cfg Config, logger *slog.Logger) (*report, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	jitter := geometrize.NewGaussianJitter(cfg.Seed+1, cfg.Sigma)

	shapes := scatter(rng, cfg.Shapes, float64(cfg.Width), float64(cfg.Height))
	rep := newReport(cfg)
	for _, s := range shapes {
		rep.count(s, false)
	}

	var bounds []r2.Rect
	for _, s := range shapes {
		s.Mutate(jitter)
		if rep.count(s, true) {
			bounds = append(bounds, s.Bounds())
		}
	}
	logger.Debug("shapes mutated", "total", len(shapes), "valid", len(bounds))

	coverage, err := geometrize.ParallelFromFunc(cfg.Width, cfg.Height, func(x, y int) uint64 {
		center := r2.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		var n uint64
		for _, b := range bounds {
			if b.ContainsPoint(center) {
				n++
			}
		}
		return n
	}, geometrize.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("accumulate coverage: %w", err)
	}
	rep.peak = coverage.Max()
	rep.total = coverage.Sum()

	out := cfg.Output
	switch out.format() {
	case "tiff":
		err = coverage.SaveTIFF(out.Path, out.Depth, out.Gamma)
	case "bmp":
		err = coverage.SaveBMP(out.Path, out.Gamma)
	default:
		err = coverage.SavePNG(out.Path, out.Depth, out.Gamma)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("heatmap written", "path", out.Path, "format", out.format(), "depth", out.Depth)

	return rep, nil
}
