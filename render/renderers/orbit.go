package renderers

import (
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/vmath"
)

// Orbit path brightness relative to the body color
const (
	orbitDim     = 0.35
	orbitTracked = 0.75
)

// Velocity arrow length of the preview, in pixels
const previewArrow = 6.0

// OrbitPathRenderer draws the committed ellipse of every orbit spec
type OrbitPathRenderer struct {
	visible bool
}

func NewOrbitPathRenderer() *OrbitPathRenderer {
	return &OrbitPathRenderer{visible: true}
}

// Toggle flips orbit path visibility
func (r *OrbitPathRenderer) Toggle() { r.visible = !r.visible }

// IsVisible implements VisibilityToggle
func (r *OrbitPathRenderer) IsVisible() bool { return r.visible }

// Render implements SystemRenderer
func (r *OrbitPathRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	for i := range snap.Orbits {
		o := &snap.Orbits[i]
		color := render.RgbPreview
		if b, ok := snap.Body(o.Spec.BodyID); ok {
			color = b.Color
		}
		factor := orbitDim
		if o.Tracked {
			factor = orbitTracked
		}
		buf.Polyline(screenPath(ctx, o.Path), color.Scale(factor), render.BlendMax, 1)
	}
}

// PreviewRenderer draws the orbit tool's live preview: the ellipse, the spawn point and its velocity
type PreviewRenderer struct{}

func NewPreviewRenderer() *PreviewRenderer { return &PreviewRenderer{} }

// Render implements SystemRenderer
func (r *PreviewRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.ToolActive || ctx.Preview == nil {
		return
	}
	sol := ctx.Preview

	buf.Polyline(screenPath(ctx, sol.Path), render.RgbPreview, render.BlendAlpha, 0.6)

	center := ctx.ToScreen(sol.Center)
	spawn := ctx.ToScreen(sol.Pos)
	buf.Line(center, spawn, render.RgbPreview.Scale(0.3), render.BlendMax, 1)
	buf.Disc(spawn, 1, render.RgbPreview, render.BlendReplace, 1)

	// Arrow shows direction relative to the center's own motion
	rel := vmath.Sub(sol.Vel, sol.CenterVel)
	if vmath.MagnitudeSq(rel) > 0 {
		tip := vmath.Add(spawn, vmath.Scale(vmath.Normalize(rel), previewArrow))
		buf.Line(spawn, tip, render.RgbStatusAccent, render.BlendReplace, 1)
	}
	buf.PlotPoint(center, render.RgbTrackMarker, render.BlendReplace, 1)
}

func screenPath(ctx render.RenderContext, path []vmath.Vec) []vmath.Vec {
	out := make([]vmath.Vec, len(path))
	for i, p := range path {
		out[i] = ctx.ToScreen(p)
	}
	return out
}
