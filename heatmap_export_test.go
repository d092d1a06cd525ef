package geometrize

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func gradientHeatmap(t *testing.T) *Heatmap {
	t.Helper()
	return mustHeatmap(t, 16, 8, func(x, y int) uint64 { return uint64(x*y + x) })
}

// samePixels compares two images through their 16-bit RGBA representation.
func samePixels(t *testing.T, got, want image.Image) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gr, _, _, _ := got.At(x, y).RGBA()
			wr, _, _, _ := want.At(x, y).RGBA()
			if gr != wr {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, gr, wr)
			}
		}
	}
}

func TestHeatmap_Grayscale(t *testing.T) {
	h := gradientHeatmap(t)

	img, err := h.Grayscale(8, 1)
	if err != nil {
		t.Fatalf("Grayscale(8) error: %v", err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Errorf("Grayscale(8) returned %T, want *image.Gray", img)
	}

	img, err = h.Grayscale(16, 1)
	if err != nil {
		t.Fatalf("Grayscale(16) error: %v", err)
	}
	if _, ok := img.(*image.Gray16); !ok {
		t.Errorf("Grayscale(16) returned %T, want *image.Gray16", img)
	}

	if _, err := h.Grayscale(12, 1); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("Grayscale(12) error = %v, want ErrUnsupportedDepth", err)
	}
}

func TestHeatmap_EncodePNG(t *testing.T) {
	h := gradientHeatmap(t)

	for _, depth := range []int{8, 16} {
		var buf bytes.Buffer
		if err := h.EncodePNG(&buf, depth, 1); err != nil {
			t.Fatalf("EncodePNG(depth %d) error: %v", depth, err)
		}
		decoded, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("png.Decode(depth %d) error: %v", depth, err)
		}
		want, _ := h.Grayscale(depth, 1)
		samePixels(t, decoded, want)
	}

	if err := h.EncodePNG(&bytes.Buffer{}, 4, 1); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("EncodePNG(depth 4) error = %v, want ErrUnsupportedDepth", err)
	}
}

func TestHeatmap_EncodeTIFF(t *testing.T) {
	h := gradientHeatmap(t)

	for _, depth := range []int{8, 16} {
		var buf bytes.Buffer
		if err := h.EncodeTIFF(&buf, depth, 0.5); err != nil {
			t.Fatalf("EncodeTIFF(depth %d) error: %v", depth, err)
		}
		decoded, err := tiff.Decode(&buf)
		if err != nil {
			t.Fatalf("tiff.Decode(depth %d) error: %v", depth, err)
		}
		want, _ := h.Grayscale(depth, 0.5)
		samePixels(t, decoded, want)
	}
}

func TestHeatmap_EncodeBMP(t *testing.T) {
	h := gradientHeatmap(t)

	var buf bytes.Buffer
	if err := h.EncodeBMP(&buf, 1); err != nil {
		t.Fatalf("EncodeBMP error: %v", err)
	}
	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode error: %v", err)
	}
	samePixels(t, decoded, h.ToLuma8(1))
}

func TestHeatmap_SaveFiles(t *testing.T) {
	h := gradientHeatmap(t)
	dir := t.TempDir()

	saves := map[string]func(string) error{
		"heat.png":  func(p string) error { return h.SavePNG(p, 16, 1) },
		"heat.tiff": func(p string) error { return h.SaveTIFF(p, 16, 1) },
		"heat.bmp":  func(p string) error { return h.SaveBMP(p, 1) },
	}

	for name, save := range saves {
		path := filepath.Join(dir, name)
		if err := save(path); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestHeatmap_SaveInvalidPath(t *testing.T) {
	h := gradientHeatmap(t)
	path := filepath.Join(t.TempDir(), "missing", "heat.png")

	if err := h.SavePNG(path, 8, 1); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
