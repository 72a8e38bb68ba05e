package renderers

import "github.com/lixenwraith/gravsim/render"

// Set holds the registered layers that key bindings can toggle
type Set struct {
	Trails *TrailRenderer
	Orbits *OrbitPathRenderer
	Help   *HelpRenderer
}

// RegisterAll registers every layer with o at its priority
func RegisterAll(o *render.RenderOrchestrator, help []string) *Set {
	set := &Set{
		Trails: NewTrailRenderer(),
		Orbits: NewOrbitPathRenderer(),
		Help:   NewHelpRenderer(help),
	}
	o.Register(NewExtentRenderer(), render.PriorityBackground)
	o.Register(set.Orbits, render.PriorityOrbitPath)
	o.Register(set.Trails, render.PriorityTrail)
	o.Register(NewBodyRenderer(), render.PriorityBody)
	o.Register(NewPreviewRenderer(), render.PriorityPreview)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewInfoRenderer(), render.PriorityUI)
	o.Register(set.Help, render.PriorityOverlay)
	return set
}
