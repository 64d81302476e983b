package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertColor(t *testing.T, want, got Color) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got), "want %+v, got %+v", want, got)
}

func TestColorOps(t *testing.T) {
	c1 := RGB(0.9, 0.6, 0.75)
	c2 := RGB(0.7, 0.1, 0.25)
	assertColor(t, RGB(1.6, 0.7, 1.0), c1.Add(c2))
	assertColor(t, RGB(0.2, 0.5, 0.5), c1.Sub(c2))
	assertColor(t, RGB(0.4, 0.6, 0.8), RGB(0.2, 0.3, 0.4).Scale(2))
	assertColor(t, RGB(0.9, 0.2, 0.04), RGB(1, 0.2, 0.4).Hadamard(RGB(0.9, 1, 0.1)))
}

func TestColorApproxEqual(t *testing.T) {
	assert.True(t, RGB(1, 2, 3).ApproxEqual(RGB(1+4e-6, 2, 3-4e-6)))
	assert.False(t, RGB(1, 2, 3).ApproxEqual(RGB(1, 2.001, 3)))
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	assert.Equal(t, White, m.Color)
	assert.Equal(t, 0.1, m.Ambient)
	assert.Equal(t, 0.9, m.Diffuse)
	assert.Equal(t, 0.9, m.Specular)
	assert.Equal(t, 200.0, m.Shininess)
}
