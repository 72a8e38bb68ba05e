package physics

import (
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

// EffectiveSoftening returns the distance floor actually applied
// A non-positive floor would make coincident bodies produce infinite force, so it is raised to the minimum
func EffectiveSoftening(softening float64) float64 {
	if !(softening > parameter.MinSoftening) {
		return parameter.MinSoftening
	}
	return softening
}

// AccelerationFrom returns the acceleration at pos caused by mass at src
// a = G·m·(src − pos) / max(|src − pos|, ε)³
func AccelerationFrom(pos, src vmath.Vec, mass, g, softening float64) vmath.Vec {
	d := vmath.Sub(src, pos)
	dist := math.Max(vmath.Magnitude(d), EffectiveSoftening(softening))
	return vmath.Scale(d, g*mass/(dist*dist*dist))
}

// Accelerations overwrites Acc of every live body with the direct pairwise sum
// Each pair is evaluated once and applied to both sides so momentum transfer stays symmetric
// Dead bodies neither feel nor exert force
func Accelerations(bodies []*core.Body, g, softening float64) {
	eps := EffectiveSoftening(softening)

	for _, b := range bodies {
		b.Acc = vmath.Vec{}
	}

	for i := 0; i < len(bodies); i++ {
		bi := bodies[i]
		if !bi.Alive {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			bj := bodies[j]
			if !bj.Alive {
				continue
			}
			d := vmath.Sub(bj.Pos, bi.Pos)
			dist := math.Max(vmath.Magnitude(d), eps)
			f := vmath.Scale(d, g/(dist*dist*dist))
			bi.Acc = vmath.Add(bi.Acc, vmath.Scale(f, bj.Mass))
			bj.Acc = vmath.Sub(bj.Acc, vmath.Scale(f, bi.Mass))
		}
	}
}
