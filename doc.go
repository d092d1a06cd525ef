// Package geometrize provides the geometric and numeric foundation of an
// image-approximation engine that represents an image as a collection of
// simple shapes.
//
// # Overview
//
// The package has three parts:
//   - A 2D kernel: Point (position) and Vector (displacement), with a
//     bit-level fast reciprocal square root used for normalization.
//   - Shapes: Ellipse, Rectangle, Triangle and Polygon, each built with a
//     fluent builder and exposing a validity predicate and a mutation slot
//     through the Shape interface.
//   - Heatmap: a dense grid of uint64 magnitudes used to accumulate
//     per-pixel data such as error maps, with merge and grayscale export.
//
// # Quick Start
//
//	import "github.com/gogpu/geometrize"
//
//	rect := geometrize.NewRectangle().Origin(10, 10).Aspect(25, 5).Build()
//	if rect.IsValid() {
//	    // hand the candidate to the search loop
//	}
//
//	hm, _ := geometrize.HeatmapFromFunc(64, 64, func(x, y int) uint64 {
//	    return uint64(x * y)
//	})
//	_ = hm.SavePNG("heat.png", 8, 1.0)
//
// # Validity
//
// Builders never validate. A shape may hold parameters that violate its
// constraints until a caller asks IsValid:
//   - Ellipse: always valid.
//   - Rectangle: aspect ratio at most MaxAspectRatio; sides are not checked.
//   - Triangle: every interior angle at least MinInteriorAngle degrees.
//   - Polygon: at least three vertices turning consistently in one direction.
//
// # Concurrency
//
// Shapes and heatmaps carry no locks. Build shapes freely from several
// goroutines; to accumulate in parallel give every worker its own Heatmap
// and combine them with Merge or MergeAll. ParallelFromFunc instead fills
// disjoint row bands of a single heatmap.
//
// # Coordinate System
//
// Uses standard image coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package geometrize
