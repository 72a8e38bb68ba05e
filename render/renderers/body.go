package renderers

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/render"
)

// Minimum on-screen ring radius of a black hole, in pixels
const blackHoleMinRing = 1.5

// BodyRenderer draws bodies as filled discs scaled by zoom
// Black holes are a dark disc inside a bright ring; the tracked body gets a marker ring
type BodyRenderer struct{}

func NewBodyRenderer() *BodyRenderer { return &BodyRenderer{} }

// Render implements SystemRenderer
func (r *BodyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	tracked := trackedBody(snap)

	for i := range snap.Bodies {
		b := &snap.Bodies[i]
		center := ctx.ToScreen(b.Pos)
		radius := ctx.ToScreenLength(b.Radius)

		if b.BlackHole {
			ring := max(radius, blackHoleMinRing)
			buf.Disc(center, ring, core.RGBBlack, render.BlendReplace, 1)
			buf.Ring(center, ring, core.RGBBlackHole, render.BlendReplace, 1)
		} else {
			buf.Disc(center, radius, b.Color, render.BlendReplace, 1)
		}

		if b.ID == tracked {
			buf.Ring(center, max(radius, 1)+2, render.RgbTrackMarker, render.BlendMax, 1)
		}
	}
}

// trackedBody resolves the camera target to a body ID, 0 when nothing is tracked
func trackedBody(snap *engine.Snapshot) core.BodyID {
	switch snap.Camera.Target.Kind {
	case engine.TargetBody:
		return snap.Camera.Target.Body
	case engine.TargetOrbit:
		for _, o := range snap.Orbits {
			if o.Spec.ID == snap.Camera.Target.Orbit {
				return o.Spec.BodyID
			}
		}
	}
	return 0
}
