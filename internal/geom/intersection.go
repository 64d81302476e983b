package geom

import (
	"cmp"
	"slices"
)

// Intersection records where a ray met an object. Object is borrowed from
// the scene's object table and is only read during tracing.
type Intersection struct {
	T      float64
	Object *Sphere
}

// Intersections is kept sorted ascending by T.
type Intersections []Intersection

// NewIntersections returns xs sorted by T.
func NewIntersections(xs ...Intersection) Intersections {
	out := make(Intersections, len(xs))
	copy(out, xs)
	slices.SortStableFunc(out, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return out
}

// Merge combines sorted collections into one sorted collection.
func Merge(sets ...Intersections) Intersections {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	all := make([]Intersection, 0, n)
	for _, s := range sets {
		all = append(all, s...)
	}
	return NewIntersections(all...)
}

// Hit returns the intersection with the lowest non-negative T. ok is false
// when every intersection is behind the ray origin or there are none.
func (xs Intersections) Hit() (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
