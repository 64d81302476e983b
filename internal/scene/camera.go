package scene

import (
	"fmt"
	"math"

	"phong-tracer/internal/geom"
	"phong-tracer/internal/mathutil"
)

// Camera maps an HSize×VSize canvas onto a view plane one unit in front of
// the eye. Transform orients the world relative to the camera.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64 // radians

	HalfWidth  float64
	HalfHeight float64
	PixelSize  float64

	transform mathutil.Matrix
	inverse   mathutil.Matrix
}

func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fov,
		transform:   mathutil.Identity4(),
		inverse:     mathutil.Identity4(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = c.HalfWidth * 2 / float64(hsize)
	return c
}

func (c *Camera) Transform() mathutil.Matrix { return c.transform }

// SetTransform caches the inverse used for every cast ray.
func (c *Camera) SetTransform(m mathutil.Matrix) error {
	if m.N != 4 {
		return fmt.Errorf("camera: set transform: %w", mathutil.ErrNotTransform)
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera: set transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the ray from the eye through the centre of pixel
// (px, py). The direction is unit length.
func (c *Camera) RayForPixel(px, py int) geom.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// camera looks toward -z, so +x is to the left
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := c.inverse.MulTuple(mathutil.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(mathutil.Origin)
	direction := pixel.Sub(origin).Normalize()
	return geom.NewRay(origin, direction)
}
