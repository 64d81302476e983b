package geom

import "phong-tracer/internal/mathutil"

// Ray is a half-line from Origin along Direction. Rays are values; Transform
// returns a new ray.
type Ray struct {
	Origin    mathutil.Tuple
	Direction mathutil.Tuple
}

func NewRay(origin, direction mathutil.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns origin + direction*t.
func (r Ray) Position(t float64) mathutil.Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

func (r Ray) Transform(m mathutil.Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
