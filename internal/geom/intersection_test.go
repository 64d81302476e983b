package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phong-tracer/internal/mathutil"
)

func TestNewIntersectionsSorts(t *testing.T) {
	s := NewSphere()
	xs := NewIntersections(
		Intersection{T: 5, Object: &s},
		Intersection{T: 7, Object: &s},
		Intersection{T: -3, Object: &s},
		Intersection{T: 2, Object: &s},
	)
	assert.Equal(t, []float64{-3, 2, 5, 7}, tValues(xs))
}

func TestHit(t *testing.T) {
	s := NewSphere()
	at := func(ts ...float64) Intersections {
		var xs []Intersection
		for _, v := range ts {
			xs = append(xs, Intersection{T: v, Object: &s})
		}
		return NewIntersections(xs...)
	}

	tests := []struct {
		name   string
		xs     Intersections
		want   float64
		wantOK bool
	}{
		{"all positive", at(1, 2), 1, true},
		{"some negative", at(-1, 1), 1, true},
		{"all negative", at(-2, -1), 0, false},
		{"lowest non-negative", at(5, 7, -3, 2), 2, true},
		{"zero counts", at(-1, 0, 3), 0, true},
		{"empty", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.xs.Hit()
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, hit.T)
				assert.Same(t, &s, hit.Object)
			}
		})
	}
}

func TestMergeAcrossObjects(t *testing.T) {
	near := NewSphere()
	far := NewSphere()
	require.NoError(t, far.SetTransform(mathutil.Translation(0, 0, 10)))
	require.NoError(t, near.SetTransform(mathutil.Scaling(0.5, 0.5, 0.5)))

	r := NewRay(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1))
	xs := Merge(far.Intersect(r), near.Intersect(r))
	require.Len(t, xs, 4)
	assert.InDeltaSlice(t, []float64{4.5, 5.5, 14, 16}, tValues(xs), mathutil.Epsilon)

	hit, ok := xs.Hit()
	require.True(t, ok)
	assert.Same(t, &near, hit.Object)
}
