package shading

import (
	"math"

	"phong-tracer/internal/mathutil"
)

// Lighting shades point with the Phong model: ambient + diffuse + specular.
// eyev and normalv must be unit vectors. The result is not clamped.
func Lighting(m Material, light PointLight, point, eyev, normalv mathutil.Tuple) Color {
	effective := m.Color.Hadamard(light.Intensity)
	lightv := light.Position.Sub(point).Normalize()
	ambient := effective.Scale(m.Ambient)

	// Light on the far side of the surface
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	// Reflection pointing away from the eye
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}
	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
