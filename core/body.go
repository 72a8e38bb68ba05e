package core

import (
	"math"

	"github.com/lixenwraith/gravsim/vmath"
)

// BodyID is a stable body identifier, never reused within a session
// Zero is reserved as "no body"
type BodyID uint64

// OrbitID is a stable orbit identifier, zero is "no orbit"
type OrbitID uint64

// Body is a point mass participating in gravitational interaction
type Body struct {
	ID BodyID

	// Pos, Vel, Acc are world-space kinematics; Acc holds the last computed acceleration
	Pos vmath.Vec
	Vel vmath.Vec
	Acc vmath.Vec

	Mass   float64
	Radius float64

	Trail Trail
	Color RGB

	// BlackHole bodies are pinned: attract others, never integrated, ignore bounds
	BlackHole bool
	// Alive is cleared on merge absorption or despawn; dead bodies are swept at end of tick
	Alive bool
}

// NewBody creates a live body with radius derived from mass and trail capacity trailLen
func NewBody(id BodyID, pos, vel vmath.Vec, mass float64, trailLen int) Body {
	return Body{
		ID:     id,
		Pos:    pos,
		Vel:    vel,
		Mass:   mass,
		Radius: RadiusForMass(mass),
		Trail:  NewTrail(trailLen),
		Color:  PaletteColor(id),
		Alive:  true,
	}
}

// Momentum returns m·v
func (b *Body) Momentum() vmath.Vec {
	return vmath.Scale(b.Vel, b.Mass)
}

// Speed returns |v|
func (b *Body) Speed() float64 {
	return vmath.Magnitude(b.Vel)
}

// Kill marks the body for removal at end of tick
func (b *Body) Kill() {
	b.Alive = false
}

// Radius derivation: r = max(MinBodyRadius, RadiusScale·∛m)
// Monotonic in mass so merged bodies never shrink
const (
	MinBodyRadius = 3.0
	RadiusScale   = 0.2
	// BlackHoleRadiusScale sizes black holes from √m
	BlackHoleRadiusScale = 0.1
	MinBlackHoleRadius   = 5.0
)

// RadiusForMass returns the disc radius for a regular body
func RadiusForMass(mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	return math.Max(MinBodyRadius, RadiusScale*math.Cbrt(mass))
}

// BlackHoleRadius returns the event disc radius for a black hole of given mass
func BlackHoleRadius(mass float64) float64 {
	if mass <= 0 {
		return MinBlackHoleRadius
	}
	return math.Max(MinBlackHoleRadius, BlackHoleRadiusScale*math.Sqrt(mass))
}

// UpdateRadius recomputes radius after a mass change
func (b *Body) UpdateRadius() {
	if b.BlackHole {
		b.Radius = BlackHoleRadius(b.Mass)
		return
	}
	b.Radius = RadiusForMass(b.Mass)
}
