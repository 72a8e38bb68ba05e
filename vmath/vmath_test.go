package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeZeroSafe(t *testing.T) {
	assert.Equal(t, Vec{}, Normalize(Vec{}))

	n := Normalize(V(3, 4))
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, Magnitude(n), 1e-12)
}

func TestPerpendicularIsCounterClockwise(t *testing.T) {
	p := Perpendicular(V(1, 0))
	assert.Equal(t, V(0, 1), p)
	assert.Zero(t, Dot(V(5, -2), Perpendicular(V(5, -2))))
	assert.Positive(t, Cross(V(1, 0), p))
}

func TestRotateAndPolar(t *testing.T) {
	r := Rotate(V(1, 0), math.Pi/2)
	assert.True(t, ApproxEqual(r, V(0, 1), 1e-12))

	p := FromPolar(2, math.Pi)
	assert.True(t, ApproxEqual(p, V(-2, 0), 1e-12))
	assert.InDelta(t, math.Pi, Angle(p), 1e-12)
}

func TestReflectAgainstVerticalWall(t *testing.T) {
	r := Reflect(V(3, -1), V(-1, 0))
	assert.True(t, ApproxEqual(r, V(-3, -1), 1e-12))
}

func TestClampMagnitude(t *testing.T) {
	v := ClampMagnitude(V(30, 40), 5)
	assert.InDelta(t, 5, Magnitude(v), 1e-12)
	assert.Equal(t, V(1, 1), ClampMagnitude(V(1, 1), 5))
}

func TestWeightedAverage(t *testing.T) {
	avg := WeightedAverage(V(0, 0), 1, V(3, 3), 2)
	assert.True(t, ApproxEqual(avg, V(2, 2), 1e-12))
	assert.Equal(t, V(7, 7), WeightedAverage(V(7, 7), 0, V(1, 1), 0))
}

func TestExpApproach(t *testing.T) {
	assert.Zero(t, ExpApproach(0, 1))
	assert.Zero(t, ExpApproach(5, 0))
	f := ExpApproach(2, 0.5)
	assert.InDelta(t, 1-math.Exp(-1), f, 1e-12)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, WrapAngle(math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0, WrapAngle(4*math.Pi), 1e-12)
}

func TestEllipseCircularCase(t *testing.T) {
	pts := EllipsePoints(V(10, 10), 5, 0, 0, 32)
	assert.Len(t, pts, 33)
	for _, p := range pts {
		assert.InDelta(t, 5, Distance(p, V(10, 10)), 1e-9)
	}
	assert.True(t, ApproxEqual(pts[0], pts[32], 1e-9))
}

func TestEllipsePeriapsisAndApoapsis(t *testing.T) {
	a, e := 10.0, 0.5
	focus := V(0, 0)
	peri := EllipsePoint(focus, a, e, 0, 0)
	apo := EllipsePoint(focus, a, e, 0, math.Pi)
	assert.InDelta(t, a*(1-e), peri.X, 1e-9)
	assert.InDelta(t, -a*(1+e), apo.X, 1e-9)
	assert.True(t, ApproxEqual(EllipseCenter(focus, a, e, 0), V(-5, 0), 1e-9))
	assert.InDelta(t, 10*math.Sqrt(0.75), EllipseSemiMinor(a, e), 1e-9)
}

func TestEllipsePointsRejectsDegenerate(t *testing.T) {
	assert.Nil(t, EllipsePoints(V(0, 0), 0, 0, 0, 16))
	assert.Nil(t, EllipsePoints(V(0, 0), 1, 1, 0, 16))
	assert.Nil(t, EllipsePoints(V(0, 0), 1, 0, 0, 2))
}

func TestBoxHelpers(t *testing.T) {
	b := NewBox(V(-5, 0), 10, 4)
	assert.Equal(t, 10.0, BoxWidth(b))
	assert.Equal(t, 4.0, BoxHeight(b))
	assert.Equal(t, V(0, 2), BoxCenter(b))
	assert.True(t, BoxContains(b, V(5, 4)))
	assert.False(t, BoxContains(b, V(5.1, 4)))
	assert.True(t, BoxValid(b))
	assert.False(t, BoxValid(NewBox(V(0, 0), 0, 1)))
}
