package physics

import (
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// KineticEnergy returns ½·m·v²
func KineticEnergy(b *core.Body) float64 {
	return 0.5 * b.Mass * vmath.MagnitudeSq(b.Vel)
}

// PairPotential returns the softened gravitational potential energy of a pair: −G·ma·mb / max(d, ε)
func PairPotential(a, b *core.Body, g, softening float64) float64 {
	d := math.Max(vmath.Distance(a.Pos, b.Pos), EffectiveSoftening(softening))
	return -g * a.Mass * b.Mass / d
}

// BodyPotential returns the potential energy attributed to target
// Pair energy with a regular body is split evenly between the two; energy against a black hole is fully attributed
// Black hole pairs are pinned and carry no energy, as in SystemEnergy
func BodyPotential(target *core.Body, bodies []*core.Body, g, softening float64) float64 {
	var u float64
	for _, other := range bodies {
		if other == target || other.ID == target.ID || !other.Alive {
			continue
		}
		if target.BlackHole && other.BlackHole {
			continue
		}
		p := PairPotential(target, other, g, softening)
		if other.BlackHole {
			u += p
		} else {
			u += 0.5 * p
		}
	}
	return u
}

// SystemEnergy returns total kinetic and potential energy of all live bodies
// Pinned black holes contribute potential but no kinetic energy
func SystemEnergy(bodies []*core.Body, g, softening float64) (kinetic, potential float64) {
	for i, a := range bodies {
		if !a.Alive {
			continue
		}
		if !a.BlackHole {
			kinetic += KineticEnergy(a)
		}
		for _, b := range bodies[i+1:] {
			if !b.Alive || (a.BlackHole && b.BlackHole) {
				continue
			}
			potential += PairPotential(a, b, g, softening)
		}
	}
	return kinetic, potential
}
