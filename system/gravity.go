package system

import (
	"log"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
)

// GravitySystem computes accelerations for every live body
// Black holes act as sources; direct summation unless Barnes-Hut is selected
type GravitySystem struct {
	bodies []*core.Body
}

// NewGravitySystem creates the force phase
func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Name() string {
	return "gravity"
}

func (s *GravitySystem) Priority() int {
	return parameter.PriorityGravity
}

func (s *GravitySystem) Update(w *engine.World, dt float64) {
	cfg := w.Config()
	s.bodies = append(s.bodies[:0], w.Bodies()...)
	g := cfg.EffectiveG()

	if cfg.ForceMethod == core.ForceBarnesHut {
		err := physics.BarnesHut(s.bodies, g, cfg.Softening, cfg.Theta)
		if err == nil {
			return
		}
		log.Printf("gravity: falling back to direct summation: %v", err)
	}
	physics.Accelerations(s.bodies, g, cfg.Softening)
}
