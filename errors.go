package geometrize

import (
	"errors"
	"fmt"
)

// Heatmap errors.
var (
	// ErrInvalidDimensions is returned when a heatmap is requested with a
	// negative width or height.
	ErrInvalidDimensions = errors.New("geometrize: invalid dimensions")

	// ErrHeatmapTooLarge is returned when width*height exceeds MaxHeatmapCells.
	ErrHeatmapTooLarge = errors.New("geometrize: heatmap too large")

	// ErrDimensionMismatch is returned by MergeStrict when the operands
	// do not have the same dimensions.
	ErrDimensionMismatch = errors.New("geometrize: heatmap dimension mismatch")

	// ErrUnsupportedDepth is returned by encoders for bit depths other than 8 and 16.
	ErrUnsupportedDepth = errors.New("geometrize: unsupported bit depth")
)

// ErrInvalidShape is wrapped by every *InvalidShapeError.
var ErrInvalidShape = errors.New("geometrize: invalid shape")

// InvalidShapeError reports a shape that failed its validity predicate.
type InvalidShapeError struct {
	Kind Kind
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("geometrize: invalid %s", e.Kind)
}

// Unwrap returns ErrInvalidShape.
func (e *InvalidShapeError) Unwrap() error {
	return ErrInvalidShape
}
