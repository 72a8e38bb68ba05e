package engine

// System is one phase of the tick pipeline
type System interface {
	Name() string
	Update(w *World, dt float64)
	Priority() int // Lower values run first
}

// PauseAware is implemented by systems that keep running while physics is paused
type PauseAware interface {
	RunsWhilePaused() bool
}

func runsWhilePaused(s System) bool {
	pa, ok := s.(PauseAware)
	return ok && pa.RunsWhilePaused()
}
