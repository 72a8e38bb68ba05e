package render

import (
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/orbit"
	"github.com/lixenwraith/gravsim/vmath"
)

// HUDState carries readouts that live outside the world
type HUDState struct {
	TickMillis float64
	Muted      bool
	Peers      int
	Message    string // Transient line shown at the bottom, empty hides it
}

// RenderContext is the per-frame input shared by all renderers
type RenderContext struct {
	Snapshot *engine.Snapshot

	// Screen size in cells
	Width  int
	Height int

	// Orbit tool state; Preview is nil unless the latest preview was valid
	ToolActive bool
	Preview    *orbit.Solution
	PreviewErr error

	HUD HUDState
}

// ToScreen maps a world point to canvas pixels
func (ctx *RenderContext) ToScreen(p vmath.Vec) vmath.Vec {
	return ctx.Snapshot.Camera.WorldToScreen(p)
}

// ToScreenLength maps a world distance to canvas pixels
func (ctx *RenderContext) ToScreenLength(d float64) float64 {
	return ctx.Snapshot.Camera.ScreenLength(d)
}

// Viewport returns the canvas size in pixels for a screen of width × height cells
// The world camera uses this as its viewport so one screen unit is one pixel
func Viewport(width, height int) vmath.Vec {
	return vmath.V(float64(width), float64(height*PixelsPerCell))
}

// CellToScreen maps a terminal cell to the screen point at its center
func CellToScreen(x, y int) vmath.Vec {
	return vmath.V(float64(x)+0.5, float64(y*PixelsPerCell)+float64(PixelsPerCell)/2)
}
