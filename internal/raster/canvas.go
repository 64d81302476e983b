package raster

import (
	"image"
	"math"

	"phong-tracer/internal/shading"
)

// Sink receives shaded samples. Colors arrive unclamped.
type Sink interface {
	WriteColor(x, y int, c shading.Color)
}

// Canvas holds the rendering target as a flat row-major slice for cache
// locality. Distinct pixels may be written from different goroutines.
type Canvas struct {
	Width  int
	Height int
	Pix    []shading.Color // len = W*H
}

// NewCanvas allocates a black canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		Pix:    make([]shading.Color, w*h),
	}
}

// WriteColor stores c at (x, y). Writes outside the canvas are dropped.
func (c *Canvas) WriteColor(x, y int, col shading.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Pix[y*c.Width+x] = col
}

func (c *Canvas) PixelAt(x, y int) shading.Color {
	return c.Pix[y*c.Width+x]
}

// Image converts the canvas to an opaque NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i, col := range c.Pix {
		o := i * 4
		img.Pix[o] = Quantize(col.R)
		img.Pix[o+1] = Quantize(col.G)
		img.Pix[o+2] = Quantize(col.B)
		img.Pix[o+3] = 255
	}
	return img
}

// Quantize maps a linear channel value onto 0..255 with rounding. Values
// outside [0,1] are clamped here and nowhere earlier.
func Quantize(v float64) uint8 {
	s := math.Round(v * 255)
	if s < 0 || math.IsNaN(s) {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
