package renderers

import (
	"github.com/lixenwraith/gravsim/render"
)

// Trail brightness ramps from oldest to newest point
const (
	trailOldest = 0.12
	trailNewest = 0.7
)

// TrailRenderer draws fading body trails
// Portal wraps already split trails into separate segments
type TrailRenderer struct {
	visible bool
}

func NewTrailRenderer() *TrailRenderer {
	return &TrailRenderer{visible: true}
}

// Toggle flips trail visibility
func (r *TrailRenderer) Toggle() { r.visible = !r.visible }

// IsVisible implements VisibilityToggle
func (r *TrailRenderer) IsVisible() bool { return r.visible }

// Render implements SystemRenderer
func (r *TrailRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.Snapshot.Bodies {
		b := &ctx.Snapshot.Bodies[i]
		total := 0
		for _, seg := range b.Trail {
			total += len(seg)
		}
		if total < 2 {
			continue
		}

		k := 0
		for _, seg := range b.Trail {
			prev := ctx.ToScreen(seg[0])
			k++
			for _, p := range seg[1:] {
				next := ctx.ToScreen(p)
				buf.Line(prev, next, b.Color.Scale(trailBrightness(k, total)), render.BlendMax, 1)
				prev = next
				k++
			}
		}
	}
}

// trailBrightness returns the fade factor for the k-th of n points, oldest first
func trailBrightness(k, n int) float64 {
	if n < 2 {
		return trailNewest
	}
	return trailOldest + (trailNewest-trailOldest)*float64(k)/float64(n-1)
}
