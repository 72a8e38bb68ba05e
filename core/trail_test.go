package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/vmath"
)

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(vmath.V(float64(i), 0))
	}

	require.Equal(t, 3, tr.Len())
	assert.Equal(t, []vmath.Vec{vmath.V(2, 0), vmath.V(3, 0), vmath.V(4, 0)}, tr.Points())

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, vmath.V(4, 0), last)
}

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(vmath.V(1, 1))
	assert.Equal(t, 0, tr.Len())
	_, ok := tr.Last()
	assert.False(t, ok)
	assert.Nil(t, tr.Segments(10))
}

func TestTrailResizeKeepsNewest(t *testing.T) {
	tr := NewTrail(5)
	for i := 0; i < 5; i++ {
		tr.Push(vmath.V(float64(i), 0))
	}

	tr.Resize(2)
	assert.Equal(t, 2, tr.Cap())
	assert.Equal(t, []vmath.Vec{vmath.V(3, 0), vmath.V(4, 0)}, tr.Points())

	tr.Resize(4)
	tr.Push(vmath.V(5, 0))
	assert.Equal(t, []vmath.Vec{vmath.V(3, 0), vmath.V(4, 0), vmath.V(5, 0)}, tr.Points())
}

func TestTrailSegmentsSplitOnJump(t *testing.T) {
	tr := NewTrail(10)
	for _, x := range []float64{95, 97, 99, 1, 3, 5} {
		tr.Push(vmath.V(x, 0))
	}

	segs := tr.Segments(50)
	require.Len(t, segs, 2)
	assert.Equal(t, []vmath.Vec{vmath.V(95, 0), vmath.V(97, 0), vmath.V(99, 0)}, segs[0])
	assert.Equal(t, []vmath.Vec{vmath.V(1, 0), vmath.V(3, 0), vmath.V(5, 0)}, segs[1])
}

func TestTrailSegmentsDropsSinglePoints(t *testing.T) {
	tr := NewTrail(10)
	for _, x := range []float64{0, 100, 200, 201} {
		tr.Push(vmath.V(x, 0))
	}
	segs := tr.Segments(50)
	require.Len(t, segs, 1)
	assert.Equal(t, []vmath.Vec{vmath.V(200, 0), vmath.V(201, 0)}, segs[0])
}

func TestRadiusMonotonicInMass(t *testing.T) {
	prev := 0.0
	for _, m := range []float64{1, 10, 1000, 1e5, 1e7} {
		r := RadiusForMass(m)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
	assert.Equal(t, MinBodyRadius, RadiusForMass(1))
	assert.Zero(t, RadiusForMass(0))
}

func TestNewBodyDefaults(t *testing.T) {
	b := NewBody(7, vmath.V(1, 2), vmath.V(3, 4), 1e6, 16)
	assert.True(t, b.Alive)
	assert.Equal(t, 16, b.Trail.Cap())
	assert.InDelta(t, 20.0, b.Radius, 1e-9)
	assert.InDelta(t, 5.0, b.Speed(), 1e-12)
	assert.Equal(t, vmath.V(3e6, 4e6), b.Momentum())

	b.BlackHole = true
	b.UpdateRadius()
	assert.InDelta(t, 100.0, b.Radius, 1e-9)

	b.Kill()
	assert.False(t, b.Alive)
}

func TestColorMixWeighted(t *testing.T) {
	a := RGB{200, 0, 0}
	b := RGB{0, 200, 0}
	m := a.Mix(b, 3, 1)
	assert.Equal(t, RGB{150, 50, 0}, m)
	assert.Equal(t, a, a.Mix(b, 0, 0))
}
