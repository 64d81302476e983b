package scene

import (
	"phong-tracer/internal/geom"
	"phong-tracer/internal/mathutil"
	"phong-tracer/internal/shading"
)

// World is a set of spheres lit by a single point light. It owns its
// object table; intersections point into it. A World is read-only once
// NewWorld returns, so any number of goroutines may trace it.
type World struct {
	Objects []geom.Sphere
	Light   shading.PointLight
}

// NewWorld copies spheres into a world-owned table.
func NewWorld(light shading.PointLight, spheres ...geom.Sphere) *World {
	objs := make([]geom.Sphere, len(spheres))
	copy(objs, spheres)
	return &World{Objects: objs, Light: light}
}

// DefaultWorld is a light at (-10, 10, -10) and two concentric spheres: an
// outer unit sphere and an inner one scaled by 0.5.
func DefaultWorld() *World {
	light := shading.NewPointLight(mathutil.Point(-10, 10, -10), shading.White)

	outer := geom.NewSphere()
	outer.Name = "outer"
	outer.Material.Color = shading.RGB(0.8, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geom.NewSphere()
	inner.Name = "inner"
	// scaling by 0.5 is always invertible
	_ = inner.SetTransform(mathutil.Scaling(0.5, 0.5, 0.5))

	return NewWorld(light, outer, inner)
}

// Intersect merges every object's intersections into one sorted collection.
func (w *World) Intersect(r geom.Ray) geom.Intersections {
	sets := make([]geom.Intersections, len(w.Objects))
	for i := range w.Objects {
		sets[i] = w.Objects[i].Intersect(r)
	}
	return geom.Merge(sets...)
}

// Computations caches the values needed to shade one hit.
type Computations struct {
	T       float64
	Object  *geom.Sphere
	Point   mathutil.Tuple
	EyeV    mathutil.Tuple
	NormalV mathutil.Tuple
	Inside  bool
}

// Prepare evaluates the hit along r. When the eye is inside the object the
// normal is flipped to face it.
func Prepare(hit geom.Intersection, r geom.Ray) Computations {
	c := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  r.Position(hit.T),
		EyeV:   r.Direction.Negate(),
	}
	c.NormalV = hit.Object.NormalAt(c.Point)
	if c.NormalV.Dot(c.EyeV) < 0 {
		c.Inside = true
		c.NormalV = c.NormalV.Negate()
	}
	return c
}

func (w *World) ShadeHit(c Computations) shading.Color {
	return shading.Lighting(c.Object.Material, w.Light, c.Point, c.EyeV, c.NormalV)
}

// ColorAt runs the whole per-ray pipeline: intersect, pick the hit, shade.
// A ray that hits nothing is black.
func (w *World) ColorAt(r geom.Ray) shading.Color {
	hit, ok := w.Intersect(r).Hit()
	if !ok {
		return shading.Black
	}
	return w.ShadeHit(Prepare(hit, r))
}
