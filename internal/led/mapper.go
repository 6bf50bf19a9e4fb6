// Package led converts rendered frames into the pixel order a physically
// wired LED matrix expects: a high-quality downsample to matrix resolution
// followed by a wiring-dependent reindex into transmission order.
package led

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// RGB is one LED's color. Channel values are already in the device's 0-255
// range by construction.
type RGB struct {
	R, G, B uint8
}

// Layout selects the physical wiring pattern of the matrix. It is chosen
// once via calibration and fixed for the session.
type Layout uint8

const (
	// RowMajor scans every row left to right.
	RowMajor Layout = iota
	// RowSerpentine scans even rows left to right and odd rows right to
	// left, matching a single strip snaking across the panel.
	RowSerpentine
	// ColMajor scans every column top to bottom.
	ColMajor
	// ColSerpentine alternates column scan direction.
	ColSerpentine
	// SplitPanels treats the matrix as two independently wired half-width
	// panels: the left starts top-left with horizontal serpentine, the
	// right starts bottom-right with the serpentine reversed.
	SplitPanels
)

var layoutNames = map[string]Layout{
	"row":            RowMajor,
	"row-serpentine": RowSerpentine,
	"col":            ColMajor,
	"col-serpentine": ColSerpentine,
	"split":          SplitPanels,
}

// ParseLayout resolves a configuration string to a Layout.
func ParseLayout(s string) (Layout, error) {
	l, ok := layoutNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown wiring layout %q (want row, row-serpentine, col, col-serpentine, or split)", s)
	}
	return l, nil
}

// String returns the configuration name of the layout.
func (l Layout) String() string {
	for name, v := range layoutNames {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("layout(%d)", uint8(l))
}

// Mapper downsamples frames to the matrix resolution and reorders pixels
// into transmission order.
type Mapper struct {
	W, H   int
	Layout Layout

	scaled *image.RGBA
	linear []RGB
	out    []RGB
}

// NewMapper validates the matrix dimensions against the layout and returns
// a mapper with preallocated buffers.
func NewMapper(w, h int, layout Layout) (*Mapper, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("matrix dimensions %dx%d must be positive", w, h)
	}
	if layout == SplitPanels && w%2 != 0 {
		return nil, fmt.Errorf("split layout needs an even matrix width, got %d", w)
	}
	return &Mapper{
		W:      w,
		H:      h,
		Layout: layout,
		scaled: image.NewRGBA(image.Rect(0, 0, w, h)),
		linear: make([]RGB, w*h),
		out:    make([]RGB, w*h),
	}, nil
}

// Map produces the LED pixel buffer for one frame: downsample, then remap to
// transmission order. The returned slice is reused across calls.
func (m *Mapper) Map(src *image.RGBA) []RGB {
	m.downsample(src)
	return m.remap()
}

// downsample resamples the source frame into the matrix resolution with a
// Catmull-Rom kernel, an alias-reducing area filter in the Lanczos family.
func (m *Mapper) downsample(src *image.RGBA) {
	xdraw.CatmullRom.Scale(m.scaled, m.scaled.Rect, src, src.Rect, xdraw.Src, nil)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			i := m.scaled.PixOffset(x, y)
			m.linear[y*m.W+x] = RGB{
				R: m.scaled.Pix[i+0],
				G: m.scaled.Pix[i+1],
				B: m.scaled.Pix[i+2],
			}
		}
	}
}

// remap writes each logical (x, y) pixel at its transmission index.
func (m *Mapper) remap() []RGB {
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			m.out[TransmissionIndex(m.Layout, x, y, m.W, m.H)] = m.linear[y*m.W+x]
		}
	}
	return m.out
}

// Remap reorders a row-major pixel buffer into transmission order without
// downsampling. Used by the calibration tool, which generates patterns at
// matrix resolution directly.
func (m *Mapper) Remap(pixels []RGB) []RGB {
	copy(m.linear, pixels)
	return m.remap()
}

// TransmissionIndex maps logical matrix coordinates to the index at which
// the pixel must appear in the transmitted sequence. For every layout the
// mapping is a bijection over [0, w*h).
func TransmissionIndex(layout Layout, x, y, w, h int) int {
	switch layout {
	case RowSerpentine:
		if y%2 == 1 {
			x = w - 1 - x
		}
		return y*w + x
	case ColMajor:
		return x*h + y
	case ColSerpentine:
		if x%2 == 1 {
			y = h - 1 - y
		}
		return x*h + y
	case SplitPanels:
		return splitPanelIndex(x, y, w, h)
	default:
		return y*w + x
	}
}

// splitPanelIndex follows the two-panel wiring found during calibration:
// panel 0 covers the left half and snakes from the top-left, panel 1 covers
// the right half and snakes from the bottom-right with reversed rows.
func splitPanelIndex(x, y, w, h int) int {
	pw := w / 2
	if x < pw {
		if y%2 == 1 {
			x = pw - 1 - x
		}
		return y*pw + x
	}
	px := x - pw
	fromBottom := h - 1 - y
	if fromBottom%2 == 0 {
		px = pw - 1 - px
	}
	return pw*h + fromBottom*pw + px
}
