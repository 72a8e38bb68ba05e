// Package renderers draws the simulation layers onto the render buffer
package renderers

import (
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/vmath"
)

// ExtentRenderer outlines the simulation extent
// The outline changes color while the extent follows the view
type ExtentRenderer struct{}

func NewExtentRenderer() *ExtentRenderer { return &ExtentRenderer{} }

// Render implements SystemRenderer
func (r *ExtentRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if !vmath.BoxValid(snap.Extent) {
		return
	}
	color := render.RgbExtent
	if snap.Config.ZoomBounds {
		color = render.RgbExtentZoom
	}

	// Half a pixel inward so the far edges land on the last pixel inside the extent
	lo := ctx.ToScreen(snap.Extent.Min)
	hi := vmath.Sub(ctx.ToScreen(snap.Extent.Max), vmath.V(0.5, 0.5))
	corners := []vmath.Vec{lo, vmath.V(hi.X, lo.Y), hi, vmath.V(lo.X, hi.Y), lo}
	buf.Polyline(corners, color, render.BlendReplace, 1)
}
