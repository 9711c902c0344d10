package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/phasebounce/internal/geom"
)

const BytesPerPixel = 4

var ErrBufferSize = errors.New("raster: buffer size does not match frame dimensions")

type Frame struct {
	Pix           []byte
	Width, Height int
}

// NewFrame wraps pix, which must hold exactly width*height RGBA pixels.
func NewFrame(pix []byte, width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBufferSize, width, height)
	}
	if want := width * height * BytesPerPixel; len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrBufferSize, len(pix), want, width, height)
	}
	return &Frame{Pix: pix, Width: width, Height: height}, nil
}

// Alloc returns a frame backed by a freshly allocated buffer.
func Alloc(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * BytesPerPixel
}

func (f *Frame) put(i int, c Color) {
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = c.A
}

// Clear paints every pixel with c.
func (f *Frame) Clear(c Color) {
	for i := 0; i+BytesPerPixel <= len(f.Pix); i += BytesPerPixel {
		f.put(i, c)
	}
}

// SetPixel writes one pixel. Out-of-bounds coordinates are ignored.
func (f *Frame) SetPixel(x, y int, c Color) {
	if !f.InBounds(x, y) {
		return
	}
	f.put(f.offset(x, y), c)
}

// PlotPoint writes the pixel nearest to p.
func (f *Frame) PlotPoint(p geom.Vec2, c Color) {
	x, y, ok := roundPoint(p)
	if !ok {
		return
	}
	f.SetPixel(x, y, c)
}

// At returns the pixel at (x, y), or the zero color when out of bounds.
func (f *Frame) At(x, y int) Color {
	if !f.InBounds(x, y) {
		return Color{}
	}
	i := f.offset(x, y)
	return Color{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// FillDisk paints every pixel strictly inside d and returns how many were
// painted. A disk too small to cover any pixel center still lights the pixel
// nearest its center, so sub-pixel particles stay visible; the fallback
// pixel is not counted.
func (f *Frame) FillDisk(d geom.Disk, c Color) int {
	colStart := clampIndex(math.Floor(d.Center.X-d.Radius), f.Width)
	colEnd := clampIndex(math.Ceil(d.Center.X+d.Radius), f.Width)
	rowStart := clampIndex(math.Floor(d.Center.Y-d.Radius), f.Height)
	rowEnd := clampIndex(math.Ceil(d.Center.Y+d.Radius), f.Height)

	lit := 0
	for row := rowStart; row < rowEnd; row++ {
		dy := float64(row) - d.Center.Y
		for col := colStart; col < colEnd; col++ {
			dx := float64(col) - d.Center.X
			if dx*dx+dy*dy < d.RadiusSq {
				f.put(f.offset(col, row), c)
				lit++
			}
		}
	}

	if lit == 0 {
		f.PlotPoint(d.Center, c)
	}
	return lit
}

// clampIndex converts v to an index in [0, limit]. NaN clamps to 0.
func clampIndex(v float64, limit int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(limit) {
		return limit
	}
	return int(v)
}

func roundPoint(p geom.Vec2) (int, int, bool) {
	if !p.IsValid() {
		return 0, 0, false
	}
	x, y := math.Round(p.X), math.Round(p.Y)
	if x < math.MinInt32 || x > math.MaxInt32 || y < math.MinInt32 || y > math.MaxInt32 {
		return 0, 0, false
	}
	return int(x), int(y), true
}
