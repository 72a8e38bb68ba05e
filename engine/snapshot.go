package engine

import (
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
	"github.com/lixenwraith/gravsim/vmath"
)

// BodyView is an immutable copy of a body for renderers and streamers
type BodyView struct {
	ID        core.BodyID   `json:"id"`
	Pos       vmath.Vec     `json:"pos"`
	Vel       vmath.Vec     `json:"vel"`
	Mass      float64       `json:"mass"`
	Radius    float64       `json:"radius"`
	Color     core.RGB      `json:"color"`
	BlackHole bool          `json:"black_hole,omitempty"`
	Trail     [][]vmath.Vec `json:"trail,omitempty"`
}

// OrbitView is an orbit spec with its drawable path
type OrbitView struct {
	Spec    core.OrbitSpec `json:"spec"`
	Path    []vmath.Vec    `json:"path,omitempty"`
	Tracked bool           `json:"tracked,omitempty"`
}

// Energy totals over live bodies
type Energy struct {
	Kinetic   float64 `json:"kinetic"`
	Potential float64 `json:"potential"`
}

// Total returns kinetic + potential
func (e Energy) Total() float64 { return e.Kinetic + e.Potential }

// Snapshot is the read-only state handed to collaborators after a tick
type Snapshot struct {
	Tick    uint64      `json:"tick"`
	Time    float64     `json:"time"`
	Bodies  []BodyView  `json:"bodies"`
	Orbits  []OrbitView `json:"orbits"`
	Camera  Camera      `json:"camera"`
	Extent  vmath.Box   `json:"extent"`
	Config  Config      `json:"config"`
	Energy  Energy      `json:"energy"`
	Info    *Info       `json:"info,omitempty"`
	Pending int         `json:"pending"`
}

// Snapshot copies current state
// Trails are split where consecutive points jump more than half the larger extent dimension
func (w *World) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	extent := w.Extent()
	jump := math.Max(vmath.BoxWidth(extent), vmath.BoxHeight(extent)) / 2

	bodies := w.Bodies()
	s := Snapshot{
		Tick:    w.tick,
		Time:    w.simTime,
		Bodies:  make([]BodyView, 0, len(bodies)),
		Orbits:  make([]OrbitView, 0, len(w.orbitOrder)),
		Camera:  w.camera,
		Extent:  extent,
		Config:  w.config,
		Pending: w.commands.Len(),
	}

	for _, b := range bodies {
		if !b.Alive {
			continue
		}
		s.Bodies = append(s.Bodies, BodyView{
			ID:        b.ID,
			Pos:       b.Pos,
			Vel:       b.Vel,
			Mass:      b.Mass,
			Radius:    b.Radius,
			Color:     b.Color,
			BlackHole: b.BlackHole,
			Trail:     b.Trail.Segments(jump),
		})
	}

	for _, o := range w.Orbits() {
		s.Orbits = append(s.Orbits, OrbitView{
			Spec:    *o,
			Path:    o.Points(parameter.OrbitPreviewSegments),
			Tracked: w.camera.Target == OrbitTarget(o.ID),
		})
	}

	s.Energy.Kinetic, s.Energy.Potential = physics.SystemEnergy(bodies, w.config.EffectiveG(), w.config.Softening)

	if w.infoShow.Kind != TargetNone {
		if info, err := w.info(w.infoShow); err == nil {
			s.Info = &info
		}
	}
	return s
}

// BodyAt returns the body nearest to world point p whose disc, grown by slack, contains p
func (s *Snapshot) BodyAt(p vmath.Vec, slack float64) (BodyView, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range s.Bodies {
		b := &s.Bodies[i]
		d := vmath.Distance(b.Pos, p)
		if d <= b.Radius+slack && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return BodyView{}, false
	}
	return s.Bodies[best], true
}

// Body returns the view for id
func (s *Snapshot) Body(id core.BodyID) (BodyView, bool) {
	for i := range s.Bodies {
		if s.Bodies[i].ID == id {
			return s.Bodies[i], true
		}
	}
	return BodyView{}, false
}
