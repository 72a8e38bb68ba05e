package engine

import (
	"fmt"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/physics"
	"github.com/lixenwraith/gravsim/vmath"
)

// Info is the live readout for a body or orbit
// Potential is the body's share: half of each pair energy with a regular body, all of it against black holes
type Info struct {
	Target Target
	BodyID core.BodyID

	Pos   vmath.Vec
	Vel   vmath.Vec
	Mass  float64
	Speed float64

	Kinetic   float64
	Potential float64
	Total     float64

	// Orbit-only fields
	SemiMajorAxis float64
	Eccentricity  float64
	Period        float64
}

// Info computes the readout for a target
func (w *World) Info(t Target) (Info, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.info(t)
}

func (w *World) info(t Target) (Info, error) {
	var (
		b    *core.Body
		spec *core.OrbitSpec
	)
	switch t.Kind {
	case TargetBody:
		bb, ok := w.bodies[t.Body]
		if !ok || !bb.Alive {
			return Info{}, fmt.Errorf("info: %w: %d", ErrUnknownBody, t.Body)
		}
		b = bb
	case TargetOrbit:
		o, ok := w.orbits[t.Orbit]
		if !ok {
			return Info{}, fmt.Errorf("info: %w: %d", ErrUnknownOrbit, t.Orbit)
		}
		bb, ok := w.bodies[o.BodyID]
		if !ok || !bb.Alive {
			return Info{}, fmt.Errorf("info: orbit %d: %w: %d", t.Orbit, ErrUnknownBody, o.BodyID)
		}
		b, spec = bb, o
	default:
		return Info{}, fmt.Errorf("info: %w: no target", ErrUnknownBody)
	}

	kinetic := physics.KineticEnergy(b)
	potential := physics.BodyPotential(b, w.Bodies(), w.config.EffectiveG(), w.config.Softening)
	info := Info{
		Target:    t,
		BodyID:    b.ID,
		Pos:       b.Pos,
		Vel:       b.Vel,
		Mass:      b.Mass,
		Speed:     b.Speed(),
		Kinetic:   kinetic,
		Potential: potential,
		Total:     kinetic + potential,
	}
	if spec != nil {
		info.SemiMajorAxis = spec.SemiMajorAxis
		info.Eccentricity = spec.Eccentricity
		info.Period = spec.Period
	}
	return info, nil
}
