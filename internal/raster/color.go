package raster

import (
	"math"

	"github.com/san-kum/phasebounce/internal/geom"
)

type Color struct {
	R, G, B, A uint8
}

func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	Black = RGBA(0, 0, 0, 255)
	White = RGBA(255, 255, 255, 255)
)

// ByteSpan is the full range of an 8-bit channel.
var ByteSpan = geom.Span{Low: 0, High: 255}

// MapRange maps v affinely from one span onto another. A zero-width source
// span is a caller error and yields ±Inf or NaN.
func MapRange(v float64, from, to geom.Span) float64 {
	return (v-from.Low)/(from.High-from.Low)*(to.High-to.Low) + to.Low
}

// Channel rounds v half away from zero and clamps it into a byte.
// NaN maps to 0.
func Channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
