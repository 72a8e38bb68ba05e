package system

import (
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
)

// CleanupSystem removes bodies killed this tick and the orbit specs that referenced them
// It runs after collision and bounds so both can tag bodies first
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Name() string {
	return "cleanup"
}

// Priority returns the system's priority (after all physics phases)
func (s *CleanupSystem) Priority() int {
	return parameter.PriorityCleanup
}

func (s *CleanupSystem) Update(w *engine.World, dt float64) {
	w.Sweep()
}
