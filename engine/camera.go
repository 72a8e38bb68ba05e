package engine

import (
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

// TargetKind identifies what the camera follows
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetBody
	TargetOrbit
)

// Target is a weak reference re-resolved every tick; it never keeps a body alive
type Target struct {
	Kind  TargetKind
	Body  core.BodyID
	Orbit core.OrbitID
}

// BodyTarget and OrbitTarget build targets
func BodyTarget(id core.BodyID) Target   { return Target{Kind: TargetBody, Body: id} }
func OrbitTarget(id core.OrbitID) Target { return Target{Kind: TargetOrbit, Orbit: id} }

// Camera maps world space to screen space: screen = (world − Offset)·Zoom
// Offset is the world coordinate shown at the viewport's top-left corner
type Camera struct {
	Offset   vmath.Vec
	Zoom     float64
	Viewport vmath.Vec // Width and height in screen units
	Target   Target
}

// NewCamera returns a camera fitting the given world extent into the viewport
func NewCamera(viewport vmath.Vec, world vmath.Box) Camera {
	c := Camera{Zoom: 1, Viewport: viewport}
	c.Fit(world)
	return c
}

// WorldToScreen converts a world position to screen units
func (c *Camera) WorldToScreen(p vmath.Vec) vmath.Vec {
	return vmath.Scale(vmath.Sub(p, c.Offset), c.Zoom)
}

// ScreenToWorld is the inverse of WorldToScreen
func (c *Camera) ScreenToWorld(s vmath.Vec) vmath.Vec {
	return vmath.Add(vmath.Scale(s, 1/c.Zoom), c.Offset)
}

// ScreenLength converts a world distance to screen units
func (c *Camera) ScreenLength(d float64) float64 { return d * c.Zoom }

// WorldLength converts a screen distance to world units
func (c *Camera) WorldLength(d float64) float64 { return d / c.Zoom }

// VisibleBox returns the world rectangle covered by the viewport
func (c *Camera) VisibleBox() vmath.Box {
	return vmath.NewBox(c.Offset, c.Viewport.X/c.Zoom, c.Viewport.Y/c.Zoom)
}

// Pan moves the view by a screen-space delta
func (c *Camera) Pan(delta vmath.Vec) {
	c.Offset = vmath.Add(c.Offset, vmath.Scale(delta, 1/c.Zoom))
}

// ZoomAt multiplies zoom by factor keeping the world point under anchor fixed on screen
// Zoom is clamped to [MinZoom, MaxZoom]
func (c *Camera) ZoomAt(anchor vmath.Vec, factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	pinned := c.ScreenToWorld(anchor)
	c.Zoom = vmath.Clamp(c.Zoom*factor, parameter.MinZoom, parameter.MaxZoom)
	c.Offset = vmath.Sub(pinned, vmath.Scale(anchor, 1/c.Zoom))
}

// CenterOn places p at the viewport center
func (c *Camera) CenterOn(p vmath.Vec) {
	c.Offset = c.desiredOffset(p)
}

func (c *Camera) desiredOffset(p vmath.Vec) vmath.Vec {
	return vmath.Sub(p, vmath.Scale(c.Viewport, 0.5/c.Zoom))
}

// Fit sets zoom and offset so that box is fully visible, anchored at its top-left
func (c *Camera) Fit(box vmath.Box) {
	w, h := vmath.BoxWidth(box), vmath.BoxHeight(box)
	if w <= 0 || h <= 0 || c.Viewport.X <= 0 || c.Viewport.Y <= 0 {
		c.Zoom = 1
		c.Offset = box.Min
		return
	}
	c.Zoom = vmath.Clamp(math.Min(c.Viewport.X/w, c.Viewport.Y/h), parameter.MinZoom, parameter.MaxZoom)
	c.Offset = box.Min
}

// Resize updates the viewport keeping offset and zoom
func (c *Camera) Resize(viewport vmath.Vec) {
	c.Viewport = viewport
}

// Track sets the camera target
func (c *Camera) Track(t Target) { c.Target = t }

// ClearTarget returns the camera to free mode
func (c *Camera) ClearTarget() { c.Target = Target{} }

// Tracking reports whether a target is set
func (c *Camera) Tracking() bool { return c.Target.Kind != TargetNone }

// UpdateTracking moves the view toward the tracked target
// rate = 0 locks hard; otherwise offset approaches the desired offset by 1 − e^(−rate·dt)
// A target that no longer resolves is cleared
func (c *Camera) UpdateTracking(dt, rate float64, resolve func(Target) (vmath.Vec, bool)) {
	if !c.Tracking() {
		return
	}
	p, ok := resolve(c.Target)
	if !ok {
		c.ClearTarget()
		return
	}

	desired := c.desiredOffset(p)
	if rate <= 0 {
		c.Offset = desired
		return
	}
	c.Offset = vmath.Lerp(c.Offset, desired, vmath.ExpApproach(rate, dt))
}
