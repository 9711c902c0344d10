package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/phasebounce/internal/raster"
)

// halfBlock draws the upper sub-pixel in the foreground color and the lower
// one in the background color, so each cell shows two rows.
const halfBlock = "▀"

// Canvas is a downsampled copy of a frame sized in terminal cells.
type Canvas struct {
	Cols, Rows int
	// sub holds Cols x 2*Rows sub-pixels, row-major.
	sub []raster.Color
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Resize(cols, rows int) {
	c.Cols = max(cols, 1)
	c.Rows = max(rows, 1)
	c.sub = make([]raster.Color, c.Cols*c.Rows*2)
}

// Sample box-averages f into the canvas sub-pixel grid.
func (c *Canvas) Sample(f *raster.Frame) {
	subRows := c.Rows * 2
	for sy := 0; sy < subRows; sy++ {
		y0, y1 := block(sy, subRows, f.Height)
		for sx := 0; sx < c.Cols; sx++ {
			x0, x1 := block(sx, c.Cols, f.Width)
			c.sub[sy*c.Cols+sx] = average(f, x0, y0, x1, y1)
		}
	}
}

// At returns the sub-pixel at column x and sub-row y.
func (c *Canvas) At(x, y int) raster.Color { return c.sub[y*c.Cols+x] }

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			top := c.sub[(2*row)*c.Cols+col]
			bottom := c.sub[(2*row+1)*c.Cols+col]
			b.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render(halfBlock))
		}
		if row < c.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// block maps cell i of n onto a non-empty source range of size limit.
func block(i, n, limit int) (int, int) {
	lo := i * limit / n
	hi := (i + 1) * limit / n
	if hi <= lo {
		hi = lo + 1
	}
	if hi > limit {
		hi = limit
		lo = min(lo, hi-1)
	}
	return lo, hi
}

func average(f *raster.Frame, x0, y0, x1, y1 int) raster.Color {
	var r, g, b, n int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := f.At(x, y)
			r += int(px.R)
			g += int(px.G)
			b += int(px.B)
			n++
		}
	}
	if n == 0 {
		return raster.Black
	}
	return raster.RGBA(uint8(r/n), uint8(g/n), uint8(b/n), 255)
}

func hex(c raster.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
