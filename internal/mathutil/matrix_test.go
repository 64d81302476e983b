package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(4,
		1, 2, 3, 4,
		5.5, 6.5, 7.5, 8.5,
		9, 10, 11, 12,
		13.5, 14.5, 15.5, 16.5,
	)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 4.0, m.At(0, 3))
	assert.Equal(t, 5.5, m.At(1, 0))
	assert.Equal(t, 7.5, m.At(1, 2))
	assert.Equal(t, 11.0, m.At(2, 2))
	assert.Equal(t, 13.5, m.At(3, 0))
	assert.Equal(t, 15.5, m.At(3, 2))

	m2 := NewMatrix(2, -3, 5, 1, -2)
	assert.Equal(t, -3.0, m2.At(0, 0))
	assert.Equal(t, -2.0, m2.At(1, 1))

	assert.Panics(t, func() { NewMatrix(5) })
	assert.Panics(t, func() { NewMatrix(2, 1, 2, 3) })
}

func TestMatrixApproxEqual(t *testing.T) {
	a := NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := NewMatrix(3, 1, 2, 3, 4, 5, 6, 7, 8, 9+Epsilon/2)
	c := NewMatrix(3, 2, 3, 4, 5, 6, 7, 8, 9, 8)
	assert.True(t, a.ApproxEqual(b))
	assert.False(t, a.ApproxEqual(c))
	assert.False(t, Identity(2).ApproxEqual(Identity(3)))
}

func TestMatrixMul(t *testing.T) {
	a := NewMatrix(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix(4,
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)
	assertMatrix(t, NewMatrix(4,
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	), a.Mul(b))
	assert.False(t, a.Mul(b).ApproxEqual(b.Mul(a)))

	assertMatrix(t, a, a.Mul(Identity4()))
	assertMatrix(t, a, Identity4().Mul(a))

	assert.Panics(t, func() { a.Mul(Identity(3)) })
}

func TestMatrixMulTuple(t *testing.T) {
	a := NewMatrix(4,
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)
	assertTuple(t, Tuple{18, 24, 33, 1}, a.MulTuple(Tuple{1, 2, 3, 1}))
	assertTuple(t, Tuple{1, 2, 3, 4}, Identity4().MulTuple(Tuple{1, 2, 3, 4}))
	assert.Panics(t, func() { Identity(3).MulTuple(Tuple{}) })
}

func TestTranspose(t *testing.T) {
	a := NewMatrix(4,
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	)
	assertMatrix(t, NewMatrix(4,
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	), a.Transpose())
	assertMatrix(t, Identity4(), Identity4().Transpose())
}

func TestTransposeOfProduct(t *testing.T) {
	a := NewMatrix(4,
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	)
	b := NewMatrix(4,
		8, 2, 2, 2,
		3, -1, 7, 0,
		7, 0, 5, 4,
		6, -2, 0, 5,
	)
	assertMatrix(t, b.Transpose().Mul(a.Transpose()), a.Mul(b).Transpose())

	c := NewMatrix(3, 1, 2, 3, 0, 1, 4, 5, 6, 0)
	d := NewMatrix(3, -2, 1, 0, 3, 3, 3, 1, -1, 2)
	assertMatrix(t, d.Transpose().Mul(c.Transpose()), c.Mul(d).Transpose())
}

func TestSubmatrix(t *testing.T) {
	a := NewMatrix(3,
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	)
	assertMatrix(t, NewMatrix(2, -3, 2, 0, 6), a.Submatrix(0, 2))

	b := NewMatrix(4,
		-6, 1, 1, 6,
		-8, 5, 8, 6,
		-1, 0, 8, 2,
		-7, 1, -1, 1,
	)
	assertMatrix(t, NewMatrix(3,
		-6, 1, 6,
		-8, 8, 6,
		-7, -1, 1,
	), b.Submatrix(2, 1))
}

func TestMinorAndCofactor(t *testing.T) {
	a := NewMatrix(3,
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	)
	assert.InDelta(t, 25, a.Submatrix(1, 0).Determinant(), Epsilon)
	assert.InDelta(t, 25, a.Minor(1, 0), Epsilon)
	assert.InDelta(t, -12, a.Minor(0, 0), Epsilon)
	assert.InDelta(t, -12, a.Cofactor(0, 0), Epsilon)
	assert.InDelta(t, -25, a.Cofactor(1, 0), Epsilon)
}

func TestDeterminant(t *testing.T) {
	assert.InDelta(t, 17, NewMatrix(2, 1, 5, -3, 2).Determinant(), Epsilon)

	a := NewMatrix(3,
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	)
	assert.InDelta(t, 56, a.Cofactor(0, 0), Epsilon)
	assert.InDelta(t, 12, a.Cofactor(0, 1), Epsilon)
	assert.InDelta(t, -46, a.Cofactor(0, 2), Epsilon)
	assert.InDelta(t, -196, a.Determinant(), Epsilon)

	b := NewMatrix(4,
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	)
	assert.InDelta(t, 690, b.Cofactor(0, 0), Epsilon)
	assert.InDelta(t, 447, b.Cofactor(0, 1), Epsilon)
	assert.InDelta(t, 210, b.Cofactor(0, 2), Epsilon)
	assert.InDelta(t, 51, b.Cofactor(0, 3), Epsilon)
	assert.InDelta(t, -4071, b.Determinant(), Epsilon)
}

func TestInvertible(t *testing.T) {
	a := NewMatrix(4,
		6, 4, 4, 4,
		5, 5, 7, 6,
		4, -9, 3, -7,
		9, 1, 7, -6,
	)
	assert.InDelta(t, -2120, a.Determinant(), Epsilon)
	assert.True(t, a.Invertible())

	b := NewMatrix(4,
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	)
	assert.InDelta(t, 0, b.Determinant(), Epsilon)
	assert.False(t, b.Invertible())

	_, err := b.Inverse()
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestInverse(t *testing.T) {
	a := NewMatrix(4,
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	)
	inv, err := a.Inverse()
	require.NoError(t, err)

	assert.InDelta(t, 532, a.Determinant(), Epsilon)
	// element (j,i) of the inverse holds cofactor(i,j)/det
	assert.InDelta(t, -160, a.Cofactor(2, 3), Epsilon)
	assert.InDelta(t, -160.0/532, inv.At(3, 2), Epsilon)
	assert.InDelta(t, 105, a.Cofactor(3, 2), Epsilon)
	assert.InDelta(t, 105.0/532, inv.At(2, 3), Epsilon)

	assertMatrix(t, NewMatrix(4,
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52256, -0.80451, -0.30075, 0.30639,
	), inv)

	b := NewMatrix(4,
		8, -5, 9, 2,
		7, 5, 6, 1,
		-6, 0, 9, 6,
		-3, 0, -9, -4,
	)
	binv, err := b.Inverse()
	require.NoError(t, err)
	assertMatrix(t, NewMatrix(4,
		-0.15385, -0.15385, -0.28205, -0.53846,
		-0.07692, 0.12308, 0.02564, 0.03077,
		0.35897, 0.35897, 0.43590, 0.92308,
		-0.69231, -0.69231, -0.76923, -1.92308,
	), binv)
}

func TestInverseRoundTrip(t *testing.T) {
	matrices := []Matrix{
		NewMatrix(4,
			3, -9, 7, 3,
			3, -8, 2, -9,
			-4, 4, 4, 1,
			-6, 5, -1, 1,
		),
		NewMatrix(4,
			8, 2, 2, 2,
			3, -1, 7, 0,
			7, 0, 5, 4,
			6, -2, 0, 5,
		),
		NewMatrix(3, 1, 2, 6, -5, 8, -4, 2, 6, 4),
		NewMatrix(2, 4, 7, 2, 6),
		Translation(1, -2, 3).Mul(RotationY(0.7)).Mul(Scaling(2, 0.5, 3)),
	}
	for _, m := range matrices {
		inv, err := m.Inverse()
		require.NoError(t, err)
		assertMatrix(t, Identity(m.N), m.Mul(inv))
	}

	a, b := matrices[0], matrices[1]
	binv, err := b.Inverse()
	require.NoError(t, err)
	assertMatrix(t, a, a.Mul(b).Mul(binv))
}
