package system

import "github.com/lixenwraith/gravsim/engine"

// RegisterAll installs the full tick pipeline: force, integrate, collide, bounds, trail, sweep, camera
func RegisterAll(w *engine.World) {
	w.AddSystem(NewGravitySystem())
	w.AddSystem(NewIntegrateSystem())
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewBoundsSystem())
	w.AddSystem(NewTrailSystem())
	w.AddSystem(NewCleanupSystem())
	w.AddSystem(NewCameraSystem())
}
