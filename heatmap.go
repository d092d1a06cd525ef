package geometrize

import (
	"image"
	"math"
	"slices"

	"github.com/gogpu/geometrize/internal/mathutil"
)

// MaxHeatmapCells is the largest number of cells a heatmap may hold.
const MaxHeatmapCells = 1 << 30

// Heatmap is a dense 2D grid of unsigned magnitudes.
//
// Cells are stored row-major and start at zero. A Heatmap has no internal
// synchronization: concurrent writers must either own disjoint heatmaps and
// combine them with Merge, or arrange exclusive access themselves.
type Heatmap struct {
	width  int
	height int
	pix    []uint64
}

// NewHeatmap creates a zero-filled heatmap with the given dimensions.
func NewHeatmap(width, height int) (*Heatmap, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Heatmap{
		width:  width,
		height: height,
		pix:    make([]uint64, width*height),
	}, nil
}

// HeatmapFromFunc creates a heatmap and fills every cell with f(x, y).
// f is called exactly once per cell, in row-major order.
//
// Example:
//
//	hm, err := geometrize.HeatmapFromFunc(32, 32, func(x, y int) uint64 {
//	    if (x*y)%2 == 0 {
//	        return uint64(x * y)
//	    }
//	    return 0
//	})
func HeatmapFromFunc(width, height int, f func(x, y int) uint64) (*Heatmap, error) {
	h, err := NewHeatmap(width, height)
	if err != nil {
		return nil, err
	}
	h.fillRows(0, height, f)
	return h, nil
}

func checkDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}
	if height != 0 && width > MaxHeatmapCells/height {
		return ErrHeatmapTooLarge
	}
	return nil
}

// fillRows sets every cell of rows [y0, y1) to f(x, y).
func (h *Heatmap) fillRows(y0, y1 int, f func(x, y int) uint64) {
	for y := y0; y < y1; y++ {
		row := h.pix[y*h.width : (y+1)*h.width]
		for x := range row {
			row[x] = f(x, y)
		}
	}
}

// Width returns the width of the heatmap.
func (h *Heatmap) Width() int {
	return h.width
}

// Height returns the height of the heatmap.
func (h *Heatmap) Height() int {
	return h.height
}

// Dimensions returns the width and height of the heatmap.
func (h *Heatmap) Dimensions() (width, height int) {
	return h.width, h.height
}

// Len returns the number of cells (width*height).
func (h *Heatmap) Len() int {
	return len(h.pix)
}

// Bounds returns the heatmap extent as an image rectangle.
func (h *Heatmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, h.width, h.height)
}

// Values returns a row-major copy of all cells.
func (h *Heatmap) Values() []uint64 {
	return slices.Clone(h.pix)
}

func (h *Heatmap) inBounds(x, y int) bool {
	return x >= 0 && x < h.width && y >= 0 && y < h.height
}

// GetPixel returns the magnitude at (x, y).
// ok is false when the coordinates are outside the heatmap.
func (h *Heatmap) GetPixel(x, y int) (value uint64, ok bool) {
	if !h.inBounds(x, y) {
		return 0, false
	}
	return h.pix[y*h.width+x], true
}

// GetPixelMut returns a pointer to the cell at (x, y), or nil when the
// coordinates are outside the heatmap. The pointer is invalidated by Clear
// and MergeInPlace.
func (h *Heatmap) GetPixelMut(x, y int) *uint64 {
	if !h.inBounds(x, y) {
		return nil
	}
	return &h.pix[y*h.width+x]
}

// SetPixel stores value at (x, y). Out-of-range coordinates are ignored and
// reported by a false result.
func (h *Heatmap) SetPixel(x, y int, value uint64) bool {
	p := h.GetPixelMut(x, y)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Accumulate adds delta to the cell at (x, y). Out-of-range coordinates are
// ignored and reported by a false result.
func (h *Heatmap) Accumulate(x, y int, delta uint64) bool {
	p := h.GetPixelMut(x, y)
	if p == nil {
		return false
	}
	*p += delta
	return true
}

// Clear resets every cell to zero. The dimensions are unchanged.
func (h *Heatmap) Clear() {
	h.pix = make([]uint64, h.width*h.height)
}

// Clone returns a deep copy of the heatmap.
func (h *Heatmap) Clone() *Heatmap {
	return &Heatmap{
		width:  h.width,
		height: h.height,
		pix:    slices.Clone(h.pix),
	}
}

// Max returns the largest magnitude, or 0 for an empty heatmap.
func (h *Heatmap) Max() uint64 {
	var m uint64
	for _, v := range h.pix {
		m = max(m, v)
	}
	return m
}

// Sum returns the total of all magnitudes. The sum wraps on overflow.
func (h *Heatmap) Sum() uint64 {
	var s uint64
	for _, v := range h.pix {
		s += v
	}
	return s
}

// Merge returns a new heatmap holding the cell-wise sum of h and other.
//
// The result covers the overlapping extent only: its dimensions are the
// minimum of both widths and of both heights. Cells outside the overlap are
// dropped without error; the truncation is logged at warn level. Use
// MergeStrict to reject mismatched dimensions instead. A nil other is
// treated as an empty 0x0 heatmap.
func (h *Heatmap) Merge(other *Heatmap) *Heatmap {
	if other == nil {
		other = &Heatmap{}
	}
	width := min(h.width, other.width)
	height := min(h.height, other.height)
	if width != h.width || height != h.height || width != other.width || height != other.height {
		Logger().Warn("heatmap merge truncated",
			"left", dimString(h), "right", dimString(other),
			"width", width, "height", height)
	}

	out := &Heatmap{
		width:  width,
		height: height,
		pix:    make([]uint64, width*height),
	}
	for y := range height {
		dst := out.pix[y*width : (y+1)*width]
		a := h.pix[y*h.width : y*h.width+width]
		b := other.pix[y*other.width : y*other.width+width]
		for x := range dst {
			dst[x] = a[x] + b[x]
		}
	}
	return out
}

// MergeInPlace replaces h with h.Merge(other).
func (h *Heatmap) MergeInPlace(other *Heatmap) {
	*h = *h.Merge(other)
}

// MergeStrict is like Merge but returns ErrDimensionMismatch when the
// heatmaps differ in size. A nil other is treated as an empty 0x0 heatmap.
func (h *Heatmap) MergeStrict(other *Heatmap) (*Heatmap, error) {
	if other == nil {
		other = &Heatmap{}
	}
	if h.width != other.width || h.height != other.height {
		return nil, ErrDimensionMismatch
	}
	return h.Merge(other), nil
}

// MergeAll merges heatmaps left to right. It returns nil when maps is empty
// and a copy of the single element when it has one.
func MergeAll(maps ...*Heatmap) *Heatmap {
	if len(maps) == 0 {
		return nil
	}
	out := maps[0].Clone()
	for _, m := range maps[1:] {
		out.MergeInPlace(m)
	}
	return out
}

// Equal reports whether both heatmaps have the same dimensions and the same
// magnitude in every cell.
func (h *Heatmap) Equal(other *Heatmap) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.width == other.width && h.height == other.height && slices.Equal(h.pix, other.pix)
}

// EqualValues reports whether the cells, read in row-major order, equal
// values.
func (h *Heatmap) EqualValues(values []uint64) bool {
	return slices.Equal(h.pix, values)
}

// ToLuma8 returns an 8-bit grayscale copy of the heatmap.
//
// Each pixel is round(255 * (cell/max)^gamma), where max is the largest
// magnitude in the heatmap. A heatmap whose cells are all zero exports as
// an all-black image.
func (h *Heatmap) ToLuma8(gamma float64) *image.Gray {
	img := image.NewGray(h.Bounds())
	levels := h.levels(gamma, math.MaxUint8)
	for y := range h.height {
		row := img.Pix[y*img.Stride : y*img.Stride+h.width]
		for x := range row {
			row[x] = uint8(levels[y*h.width+x])
		}
	}
	return img
}

// ToLuma16 returns a 16-bit grayscale copy of the heatmap.
//
// Levels are scaled exactly as in ToLuma8, round(255 * (cell/max)^gamma),
// so the image only uses the low 0..255 range of each sample. Use
// ToLuma16Full to spread levels over 0..65535.
func (h *Heatmap) ToLuma16(gamma float64) *image.Gray16 {
	return h.toGray16(h.levels(gamma, math.MaxUint8))
}

// ToLuma16Full is like ToLuma16 but scales to the full 16-bit range:
// each pixel is round(65535 * (cell/max)^gamma).
func (h *Heatmap) ToLuma16Full(gamma float64) *image.Gray16 {
	return h.toGray16(h.levels(gamma, math.MaxUint16))
}

func (h *Heatmap) toGray16(levels []uint32) *image.Gray16 {
	img := image.NewGray16(h.Bounds())
	for y := range h.height {
		for x := range h.width {
			v := levels[y*h.width+x]
			i := y*img.Stride + 2*x
			img.Pix[i+0] = uint8(v >> 8)
			img.Pix[i+1] = uint8(v)
		}
	}
	return img
}

// levels maps every cell to a gamma-corrected level in [0, full].
func (h *Heatmap) levels(gamma float64, full uint32) []uint32 {
	out := make([]uint32, len(h.pix))
	peak := h.Max()
	if peak == 0 {
		if len(h.pix) > 0 {
			Logger().Warn("heatmap export of an all-zero heatmap",
				"width", h.width, "height", h.height)
		}
		return out
	}

	scale := float64(full)
	for i, v := range h.pix {
		px := math.Pow(float64(v)/float64(peak), gamma)
		out[i] = uint32(math.Round(scale * mathutil.Clamp(px, 0, 1)))
	}
	return out
}

func dimString(h *Heatmap) string {
	return image.Pt(h.width, h.height).String()
}
