package mathutil

import "math"

// Tuple is a homogeneous coordinate (x, y, z, w). Points carry w=1 and
// vectors w=0. Value type, copied freely.
type Tuple [4]float64

// Point returns a position tuple (w=1).
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector returns a direction tuple (w=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// Origin is Point(0, 0, 0).
var Origin = Point(0, 0, 0)

func (t Tuple) X() float64 { return t[0] }
func (t Tuple) Y() float64 { return t[1] }
func (t Tuple) Z() float64 { return t[2] }
func (t Tuple) W() float64 { return t[3] }

func (t Tuple) IsPoint() bool  { return ApproxEqual(t[3], 1) }
func (t Tuple) IsVector() bool { return ApproxEqual(t[3], 0) }

// Add returns a + b. Point + Vector is a Point; Vector + Vector is a Vector.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a - b. Point - Point is a Vector; Point - Vector is a Point.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t[0] * s, t[1] * s, t[2] * s, t[3] * s}
}

func (t Tuple) Div(s float64) Tuple {
	return Tuple{t[0] / s, t[1] / s, t[2] / s, t[3] / s}
}

func (t Tuple) Negate() Tuple {
	return Tuple{-t[0], -t[1], -t[2], -t[3]}
}

func (a Tuple) Dot(b Tuple) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Cross uses only the xyz components and always yields a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns a unit-length copy. Only the zero tuple has no
// direction; it is returned unchanged and callers must not rely on it.
func (t Tuple) Normalize() Tuple {
	l := t.Magnitude()
	if l == 0 {
		return Tuple{}
	}
	return t.Div(l)
}

// Reflect mirrors t around the normal n.
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Sub(n.Scale(2 * t.Dot(n)))
}

// ApproxEqual compares component-wise within Epsilon.
func (a Tuple) ApproxEqual(b Tuple) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
