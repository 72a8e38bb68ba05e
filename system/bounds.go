package system

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
)

// BoundsSystem applies the bounds mode to every live regular body
// The extent follows the camera when zoom bounds are enabled; black holes are exempt
type BoundsSystem struct{}

func NewBoundsSystem() *BoundsSystem {
	return &BoundsSystem{}
}

func (s *BoundsSystem) Name() string {
	return "bounds"
}

func (s *BoundsSystem) Priority() int {
	return parameter.PriorityBounds
}

func (s *BoundsSystem) Update(w *engine.World, dt float64) {
	cfg := w.Config()
	extent := w.Extent()

	for _, b := range w.Bodies() {
		if !b.Alive || b.BlackHole {
			continue
		}

		switch cfg.Bounds {
		case core.BoundsHard:
			if physics.ReflectBounds(b, extent, cfg.Restitution) {
				w.Notify(event.Notice{Type: event.NoticeBounced, Body: b.ID, Pos: b.Pos})
			}
		case core.BoundsSoft:
			if physics.OutOfBounds(b, extent) {
				b.Kill()
				w.Notify(event.Notice{Type: event.NoticeDespawned, Body: b.ID, Pos: b.Pos})
			}
		case core.BoundsPortal:
			if physics.WrapBounds(b, extent) {
				w.Notify(event.Notice{Type: event.NoticeWrapped, Body: b.ID, Pos: b.Pos})
			}
		}
	}
}
