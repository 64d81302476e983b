package shading

import "phong-tracer/internal/mathutil"

// Material holds the Phong surface coefficients.
type Material struct {
	Color     Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultMaterial returns a white surface with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200.
func DefaultMaterial() Material {
	return Material{
		Color:     White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// PointLight is a light source with no size at Position.
type PointLight struct {
	Position  mathutil.Tuple
	Intensity Color
}

func NewPointLight(position mathutil.Tuple, intensity Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
