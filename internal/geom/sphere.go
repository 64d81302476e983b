package geom

import (
	"fmt"
	"math"

	"phong-tracer/internal/mathutil"
	"phong-tracer/internal/shading"
)

// Sphere is a unit sphere at the object-space origin, placed in the world
// by its transform. The inverse and inverse-transpose are computed once in
// SetTransform so tracing never has to invert.
type Sphere struct {
	Name     string
	Material shading.Material

	transform mathutil.Matrix
	inverse   mathutil.Matrix
	normalM   mathutil.Matrix // transpose(inverse)
}

// NewSphere returns a unit sphere with the identity transform and the
// default material.
func NewSphere() Sphere {
	id := mathutil.Identity4()
	return Sphere{
		Material:  shading.DefaultMaterial(),
		transform: id,
		inverse:   id,
		normalM:   id,
	}
}

func (s *Sphere) Transform() mathutil.Matrix { return s.transform }

// SetTransform replaces the object-to-world transform. A matrix that is not
// 4x4 or not invertible leaves the sphere unchanged and returns an error
// wrapping mathutil.ErrNotTransform or mathutil.ErrNotInvertible.
func (s *Sphere) SetTransform(m mathutil.Matrix) error {
	if m.N != 4 {
		return fmt.Errorf("sphere %q: set transform: %w", s.Name, mathutil.ErrNotTransform)
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("sphere %q: set transform: %w", s.Name, err)
	}
	s.transform = m
	s.inverse = inv
	s.normalM = inv.Transpose()
	return nil
}

// Intersect returns the points where r crosses the sphere, sorted by t. A
// miss yields an empty collection; a tangent ray yields two equal t values.
func (s *Sphere) Intersect(r Ray) Intersections {
	local := r.Transform(s.inverse)
	sphereToRay := local.Origin.Sub(mathutil.Origin)

	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return NewIntersections(
		Intersection{T: t1, Object: s},
		Intersection{T: t2, Object: s},
	)
}

// NormalAt returns the unit world-space normal at a world point on the
// surface. Normals go back to world space through the inverse-transpose,
// which keeps them perpendicular under non-uniform scaling.
func (s *Sphere) NormalAt(worldPoint mathutil.Tuple) mathutil.Tuple {
	objectPoint := s.inverse.MulTuple(worldPoint)
	objectNormal := objectPoint.Sub(mathutil.Origin)
	worldNormal := s.normalM.MulTuple(objectNormal)
	worldNormal[3] = 0
	return worldNormal.Normalize()
}
