package system

import (
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
)

// TrailSystem appends each moving body's position once bounds have settled it
// Runs after bounds so recorded points are the wrapped or clamped positions
type TrailSystem struct{}

func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

func (s *TrailSystem) Name() string {
	return "trail"
}

func (s *TrailSystem) Priority() int {
	return parameter.PriorityTrail
}

func (s *TrailSystem) Update(w *engine.World, dt float64) {
	for _, b := range w.Bodies() {
		if !b.Alive || b.BlackHole {
			continue
		}
		b.Trail.Push(b.Pos)
	}
}
