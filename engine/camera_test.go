package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

func TestCameraRoundTrip(t *testing.T) {
	c := Camera{Offset: vmath.V(100, -50), Zoom: 2.5, Viewport: vmath.V(800, 600)}
	for _, p := range []vmath.Vec{{}, vmath.V(123.4, -56.7), vmath.V(-1e4, 3e3)} {
		got := c.ScreenToWorld(c.WorldToScreen(p))
		assert.True(t, vmath.ApproxEqual(p, got, 1e-9), "%v -> %v", p, got)
	}
	assert.Equal(t, vmath.V(0, 0), c.WorldToScreen(vmath.V(100, -50)))
	assert.Equal(t, vmath.V(25, 25), c.WorldToScreen(vmath.V(110, -40)))
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	c := Camera{Offset: vmath.V(10, 10), Zoom: 1, Viewport: vmath.V(200, 100)}
	anchor := vmath.V(50, 40)
	before := c.ScreenToWorld(anchor)

	c.ZoomAt(anchor, parameter.ZoomStep)
	assert.InDelta(t, parameter.ZoomStep, c.Zoom, 1e-12)
	assert.True(t, vmath.ApproxEqual(before, c.ScreenToWorld(anchor), 1e-9))

	c.ZoomAt(anchor, 1e-6)
	assert.Equal(t, parameter.MinZoom, c.Zoom)

	c.ZoomAt(anchor, -1)
	assert.Equal(t, parameter.MinZoom, c.Zoom)
}

func TestCameraVisibleBoxAndFit(t *testing.T) {
	c := Camera{Zoom: 2, Viewport: vmath.V(200, 100), Offset: vmath.V(5, 5)}
	box := c.VisibleBox()
	assert.Equal(t, vmath.V(5, 5), box.Min)
	assert.Equal(t, vmath.V(105, 55), box.Max)

	c.Fit(vmath.NewBox(vmath.Vec{}, 400, 400))
	assert.Equal(t, 0.25, c.Zoom)
	assert.Equal(t, vmath.Vec{}, c.Offset)
}

func TestCameraPan(t *testing.T) {
	c := Camera{Zoom: 2, Viewport: vmath.V(100, 100)}
	c.Pan(vmath.V(10, -4))
	assert.Equal(t, vmath.V(5, -2), c.Offset)
}

func TestTrackingHardLock(t *testing.T) {
	c := Camera{Zoom: 1, Viewport: vmath.V(100, 50)}
	c.Track(BodyTarget(3))
	c.UpdateTracking(0.016, 0, func(Target) (vmath.Vec, bool) { return vmath.V(500, 500), true })
	assert.Equal(t, vmath.V(450, 475), c.Offset)
	assert.True(t, c.Tracking())
}

func TestTrackingExponentialDeterministic(t *testing.T) {
	resolve := func(Target) (vmath.Vec, bool) { return vmath.V(1000, 0), true }
	run := func() vmath.Vec {
		c := Camera{Zoom: 1, Viewport: vmath.V(0, 0)}
		c.Track(BodyTarget(1))
		for i := 0; i < 10; i++ {
			c.UpdateTracking(0.1, 2, resolve)
		}
		return c.Offset
	}
	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Greater(t, a.X, 0.0)
	assert.Less(t, a.X, 1000.0)
}

func TestTrackingClearsWhenTargetGone(t *testing.T) {
	c := Camera{Zoom: 1, Offset: vmath.V(7, 7)}
	c.Track(BodyTarget(9))
	c.UpdateTracking(0.016, 0, func(Target) (vmath.Vec, bool) { return vmath.Vec{}, false })
	assert.False(t, c.Tracking())
	assert.Equal(t, vmath.V(7, 7), c.Offset)
}
