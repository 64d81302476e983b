package mathutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNotInvertible is returned by Inverse when the determinant is within
// Epsilon of zero.
var ErrNotInvertible = errors.New("mathutil: matrix is not invertible")

// ErrNotTransform is returned where a 4x4 transform is required.
var ErrNotTransform = errors.New("mathutil: transform must be 4x4")

// Matrix is an N×N matrix (N in 2..4) stored row-major in a fixed 4×4 array.
// Value type for zero heap allocation; only the top-left N×N block is used.
type Matrix struct {
	N int
	M [4][4]float64
}

// NewMatrix builds an n×n matrix from row-major values. It panics when n is
// outside 2..4 or len(values) != n*n.
func NewMatrix(n int, values ...float64) Matrix {
	checkSize(n)
	if len(values) != n*n {
		panic(fmt.Sprintf("mathutil: %dx%d matrix needs %d values, got %d", n, n, n*n, len(values)))
	}
	m := Matrix{N: n}
	for i, v := range values {
		m.M[i/n][i%n] = v
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	checkSize(n)
	m := Matrix{N: n}
	for i := 0; i < n; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Identity4 is Identity(4), the default transform.
func Identity4() Matrix { return Identity(4) }

func checkSize(n int) {
	if n < 2 || n > 4 {
		panic(fmt.Sprintf("mathutil: unsupported matrix size %d", n))
	}
}

func (m Matrix) At(row, col int) float64 {
	return m.M[row][col]
}

// Mul returns m × b. Composition is not commutative.
func (m Matrix) Mul(b Matrix) Matrix {
	if m.N != b.N {
		panic(fmt.Sprintf("mathutil: multiply %dx%d by %dx%d", m.N, m.N, b.N, b.N))
	}
	r := Matrix{N: m.N}
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			var sum float64
			for k := 0; k < m.N; k++ {
				sum += m.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// MulTuple returns m × t for a 4×4 matrix.
func (m Matrix) MulTuple(t Tuple) Tuple {
	if m.N != 4 {
		panic(fmt.Sprintf("mathutil: apply %dx%d matrix to tuple", m.N, m.N))
	}
	var r Tuple
	for i := 0; i < 4; i++ {
		r[i] = m.M[i][0]*t[0] + m.M[i][1]*t[1] + m.M[i][2]*t[2] + m.M[i][3]*t[3]
	}
	return r
}

func (m Matrix) Transpose() Matrix {
	r := Matrix{N: m.N}
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			r.M[j][i] = m.M[i][j]
		}
	}
	return r
}

// Submatrix returns a copy of m with the given row and column removed.
func (m Matrix) Submatrix(row, col int) Matrix {
	r := Matrix{N: m.N - 1}
	checkSize(r.N)
	ri := 0
	for i := 0; i < m.N; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < m.N; j++ {
			if j == col {
				continue
			}
			r.M[ri][ci] = m.M[i][j]
			ci++
		}
		ri++
	}
	return r
}

func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant is ad−bc for 2×2 and first-row cofactor expansion otherwise.
func (m Matrix) Determinant() float64 {
	if m.N == 2 {
		return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]
	}
	var det float64
	for col := 0; col < m.N; col++ {
		det += m.M[0][col] * m.Cofactor(0, col)
	}
	return det
}

func (m Matrix) Invertible() bool {
	return math.Abs(m.Determinant()) > Epsilon
}

// Inverse returns the adjugate divided by the determinant. Element (j,i) of
// the result is cofactor(i,j)/det.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) <= Epsilon {
		return Matrix{}, ErrNotInvertible
	}
	r := Matrix{N: m.N}
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			r.M[j][i] = m.Cofactor(i, j) / det
		}
	}
	return r, nil
}

// ApproxEqual compares element-wise within Epsilon. Matrices of different
// sizes are never equal.
func (m Matrix) ApproxEqual(b Matrix) bool {
	if m.N != b.N {
		return false
	}
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			if !ApproxEqual(m.M[i][j], b.M[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.N; i++ {
		sb.WriteString("|")
		for j := 0; j < m.N; j++ {
			fmt.Fprintf(&sb, " %9.5f", m.M[i][j])
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
