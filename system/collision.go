package system

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
)

// CollisionSystem resolves overlapping pairs with the configured response
// Pairs are scanned once per tick in ascending ID order; a body absorbed earlier in the scan is skipped
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	cfg := w.Config()
	if cfg.Collision == core.CollisionNone {
		return
	}

	bodies := w.Bodies()
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			// Either side may have been absorbed by an earlier pair
			if !a.Alive || !b.Alive {
				continue
			}
			if a.BlackHole && b.BlackHole {
				continue
			}
			if !physics.Overlaps(a, b) {
				continue
			}

			switch cfg.Collision {
			case core.CollisionMerge:
				survivor, absorbed := physics.Absorber(a, b)
				physics.Merge(survivor, absorbed)
				w.Notify(event.Notice{Type: event.NoticeMerged, Body: survivor.ID, Other: absorbed.ID, Pos: survivor.Pos})
			case core.CollisionRepel:
				physics.Repel(a, b, cfg.RepelStrength)
				w.Notify(event.Notice{Type: event.NoticeRepelled, Body: a.ID, Other: b.ID, Pos: a.Pos})
			}

			if !a.Alive {
				break
			}
		}
	}
}
