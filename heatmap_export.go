package geometrize

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Grayscale returns the heatmap as an 8-bit (depth 8) or 16-bit (depth 16)
// grayscale image.
func (h *Heatmap) Grayscale(depth int, gamma float64) (image.Image, error) {
	switch depth {
	case 8:
		return h.ToLuma8(gamma), nil
	case 16:
		return h.ToLuma16(gamma), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
}

// EncodePNG writes the grayscale export of the heatmap as PNG.
func (h *Heatmap) EncodePNG(w io.Writer, depth int, gamma float64) error {
	img, err := h.Grayscale(depth, gamma)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("geometrize: encode PNG: %w", err)
	}
	return nil
}

// EncodeTIFF writes the grayscale export of the heatmap as a
// deflate-compressed TIFF.
func (h *Heatmap) EncodeTIFF(w io.Writer, depth int, gamma float64) error {
	img, err := h.Grayscale(depth, gamma)
	if err != nil {
		return err
	}
	opts := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
	if err := tiff.Encode(w, img, opts); err != nil {
		return fmt.Errorf("geometrize: encode TIFF: %w", err)
	}
	return nil
}

// EncodeBMP writes the 8-bit grayscale export of the heatmap as BMP.
// BMP has no 16-bit grayscale mode.
func (h *Heatmap) EncodeBMP(w io.Writer, gamma float64) error {
	if err := bmp.Encode(w, h.ToLuma8(gamma)); err != nil {
		return fmt.Errorf("geometrize: encode BMP: %w", err)
	}
	return nil
}

// SavePNG saves the grayscale export of the heatmap to a PNG file.
func (h *Heatmap) SavePNG(path string, depth int, gamma float64) error {
	return saveFile(path, func(w io.Writer) error {
		return h.EncodePNG(w, depth, gamma)
	})
}

// SaveTIFF saves the grayscale export of the heatmap to a TIFF file.
func (h *Heatmap) SaveTIFF(path string, depth int, gamma float64) error {
	return saveFile(path, func(w io.Writer) error {
		return h.EncodeTIFF(w, depth, gamma)
	})
}

// SaveBMP saves the 8-bit grayscale export of the heatmap to a BMP file.
func (h *Heatmap) SaveBMP(path string, gamma float64) error {
	return saveFile(path, func(w io.Writer) error {
		return h.EncodeBMP(w, gamma)
	})
}

func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("geometrize: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
