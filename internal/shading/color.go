package shading

import "phong-tracer/internal/mathutil"

// Color is a linear RGB triple. Components are unbounded until an image
// encoder clamps them.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func RGB(r, g, b float64) Color { return Color{r, g, b} }

func (a Color) Add(b Color) Color { return Color{a.R + b.R, a.G + b.G, a.B + b.B} }
func (a Color) Sub(b Color) Color { return Color{a.R - b.R, a.G - b.G, a.B - b.B} }
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Hadamard returns the component-wise product, used to blend a surface
// color with a light's intensity.
func (a Color) Hadamard(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

func (a Color) ApproxEqual(b Color) bool {
	return mathutil.ApproxEqual(a.R, b.R) &&
		mathutil.ApproxEqual(a.G, b.G) &&
		mathutil.ApproxEqual(a.B, b.B)
}
