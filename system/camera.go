package system

import (
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
)

// CameraSystem follows the tracked target and clears it once the target is gone
// Runs while paused so the view settles on a frozen target
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) RunsWhilePaused() bool {
	return true
}

func (s *CameraSystem) Update(w *engine.World, dt float64) {
	cfg := w.Config()
	step := dt
	if step == 0 {
		// Paused ticks still smooth toward the target at the base rate
		step = cfg.Dt
	}
	w.Camera().UpdateTracking(step, cfg.TrackingRate, w.Resolve)
}
