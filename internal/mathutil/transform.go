package mathutil

import "math"

// Translation moves points by (x, y, z). Vectors are unaffected because
// their w is 0.
func Translation(x, y, z float64) Matrix {
	return NewMatrix(4,
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

func Scaling(x, y, z float64) Matrix {
	return NewMatrix(4,
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns a right-handed rotation around the X axis. Angle in radians.
func RotationX(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return NewMatrix(4,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a right-handed rotation around the Y axis.
func RotationY(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return NewMatrix(4,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns a right-handed rotation around the Z axis.
func RotationZ(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return NewMatrix(4,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing moves each component in proportion to the other two: xy is the
// shift of x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(4,
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// Chain composes transforms in application order: Chain(a, b, c) applies a
// first, then b, then c, and equals c.Mul(b).Mul(a).
func Chain(ms ...Matrix) Matrix {
	r := Identity4()
	for _, m := range ms {
		r = m.Mul(r)
	}
	return r
}

// Fluent helpers. Each applies its operation after m, so
// Identity4().RotateX(a).Scale(5, 5, 5).Translate(10, 5, 7) reads in
// application order.

func (m Matrix) Translate(x, y, z float64) Matrix { return Translation(x, y, z).Mul(m) }
func (m Matrix) Scale(x, y, z float64) Matrix     { return Scaling(x, y, z).Mul(m) }
func (m Matrix) RotateX(a float64) Matrix         { return RotationX(a).Mul(m) }
func (m Matrix) RotateY(a float64) Matrix         { return RotationY(a).Mul(m) }
func (m Matrix) RotateZ(a float64) Matrix         { return RotationZ(a).Mul(m) }

func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Mul(m)
}

// ViewTransform orients the world relative to an eye at from looking toward
// to, with up roughly pointing upward.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix(4,
		left[0], left[1], left[2], 0,
		trueUp[0], trueUp[1], trueUp[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		0, 0, 0, 1,
	)
	return orientation.Mul(Translation(-from[0], -from[1], -from[2]))
}
