package system

import (
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
)

// IntegrateSystem advances velocities then positions
type IntegrateSystem struct{}

func NewIntegrateSystem() *IntegrateSystem {
	return &IntegrateSystem{}
}

func (s *IntegrateSystem) Name() string {
	return "integrate"
}

func (s *IntegrateSystem) Priority() int {
	return parameter.PriorityIntegrate
}

func (s *IntegrateSystem) Update(w *engine.World, dt float64) {
	for _, b := range w.Bodies() {
		physics.Integrate(b, dt)
	}
}
