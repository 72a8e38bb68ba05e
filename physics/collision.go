package physics

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// Overlaps reports whether two discs intersect: |pa − pb| < ra + rb
func Overlaps(a, b *core.Body) bool {
	r := a.Radius + b.Radius
	return vmath.DistanceSq(a.Pos, b.Pos) < r*r
}

// Absorber orders an overlapping pair into (survivor, absorbed)
// Black holes always survive; otherwise the heavier body, ties going to the lower ID
func Absorber(a, b *core.Body) (*core.Body, *core.Body) {
	if a.BlackHole != b.BlackHole {
		if a.BlackHole {
			return a, b
		}
		return b, a
	}
	if a.Mass > b.Mass || (a.Mass == b.Mass && a.ID < b.ID) {
		return a, b
	}
	return b, a
}

// Merge folds absorbed into survivor and kills absorbed
// Regular survivors take the summed mass, momentum-weighted velocity and mass-weighted centroid
// Black hole survivors are pinned and keep their own state
func Merge(survivor, absorbed *core.Body) {
	defer absorbed.Kill()
	if survivor.BlackHole {
		return
	}

	m := survivor.Mass + absorbed.Mass
	if m <= 0 {
		return
	}
	survivor.Vel = vmath.WeightedAverage(survivor.Vel, survivor.Mass, absorbed.Vel, absorbed.Mass)
	survivor.Pos = vmath.WeightedAverage(survivor.Pos, survivor.Mass, absorbed.Pos, absorbed.Mass)
	survivor.Color = survivor.Color.Mix(absorbed.Color, survivor.Mass, absorbed.Mass)
	survivor.Mass = m
	survivor.UpdateRadius()
}

// Repel pushes an overlapping pair apart along the separation normal
// Impulse magnitude is strength × overlap depth; the pair's total momentum is unchanged
// A black hole does not move, its partner takes the full impulse
func Repel(a, b *core.Body, strength float64) {
	d := vmath.Sub(b.Pos, a.Pos)
	dist := vmath.Magnitude(d)
	overlap := a.Radius + b.Radius - dist
	if overlap <= 0 {
		return
	}

	n := vmath.V(1, 0)
	if dist > vmath.Epsilon {
		n = vmath.Scale(d, 1/dist)
	}
	j := strength * overlap

	if !a.BlackHole && a.Mass > 0 {
		ApplyImpulse(a, vmath.Scale(n, -j/a.Mass))
	}
	if !b.BlackHole && b.Mass > 0 {
		ApplyImpulse(b, vmath.Scale(n, j/b.Mass))
	}
}
