package physics

import (
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
// Pinned bodies (black holes) are left in place
func Integrate(b *core.Body, dt float64) {
	if b.BlackHole || !b.Alive {
		return
	}
	b.Vel = vmath.Add(b.Vel, vmath.Scale(b.Acc, dt))
	b.Pos = vmath.Add(b.Pos, vmath.Scale(b.Vel, dt))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *core.Body, dv vmath.Vec) {
	b.Vel = vmath.Add(b.Vel, dv)
}

// reflectAxis clamps v into [lo, hi] and turns the velocity back inside scaled by restitution
func reflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		*vel = math.Abs(*vel) * restitution
		return true
	}
	if *pos > hi {
		*pos = hi
		*vel = -math.Abs(*vel) * restitution
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
// The offending velocity component is negated and scaled by restitution
func ReflectBounds(b *core.Body, box vmath.Box, restitution float64) bool {
	rx := reflectAxis(&b.Pos.X, &b.Vel.X, box.Min.X, box.Max.X, restitution)
	ry := reflectAxis(&b.Pos.Y, &b.Vel.Y, box.Min.Y, box.Max.Y, restitution)
	return rx || ry
}

// wrapAxis maps v back into [lo, hi] by whole extents
func wrapAxis(v, lo, hi float64) (float64, bool) {
	span := hi - lo
	if span <= 0 {
		return v, false
	}
	if v > hi {
		return lo + math.Mod(v-lo, span), true
	}
	if v < lo {
		return hi - math.Mod(hi-v, span), true
	}
	return v, false
}

// WrapBounds teleports a body leaving the box to the opposite edge, velocity unchanged
// Returns true if a wrap occurred
func WrapBounds(b *core.Body, box vmath.Box) bool {
	var wx, wy bool
	b.Pos.X, wx = wrapAxis(b.Pos.X, box.Min.X, box.Max.X)
	b.Pos.Y, wy = wrapAxis(b.Pos.Y, box.Min.Y, box.Max.Y)
	return wx || wy
}

// OutOfBounds reports whether the body center lies outside the box
func OutOfBounds(b *core.Body, box vmath.Box) bool {
	return !vmath.BoxContains(box, b.Pos)
}
