package engine

import (
	"fmt"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
)

// Config holds simulation tunables
// Mutated only through setters, which reject out-of-range values and keep the previous one
type Config struct {
	G             float64
	InvertGravity bool
	Softening     float64
	ForceMethod   core.ForceMethod
	Theta         float64

	Dt        float64
	TimeScale float64
	Paused    bool

	Bounds      core.BoundsMode
	ZoomBounds  bool
	WorldWidth  float64
	WorldHeight float64
	Restitution float64

	Collision     core.CollisionMode
	RepelStrength float64

	BlackHoleMass float64
	TrailLength   int
	TrackingRate  float64
}

// DefaultConfig returns the interactive defaults
func DefaultConfig() Config {
	return Config{
		G:             parameter.DefaultG,
		Softening:     parameter.DefaultSoftening,
		ForceMethod:   core.ForceDirect,
		Theta:         parameter.DefaultTheta,
		Dt:            parameter.DefaultDt,
		TimeScale:     parameter.DefaultTimeScale,
		Bounds:        core.BoundsHard,
		WorldWidth:    parameter.DefaultWorldWidth,
		WorldHeight:   parameter.DefaultWorldHeight,
		Restitution:   parameter.DefaultRestitution,
		Collision:     core.CollisionMerge,
		RepelStrength: parameter.DefaultRepelStrength,
		BlackHoleMass: parameter.DefaultBlackHoleMass,
		TrailLength:   parameter.DefaultTrailLength,
		TrackingRate:  parameter.DefaultTrackingRate,
	}
}

// checkRange rejects NaN as well as values outside [lo, hi]
func checkRange(name string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrConfigOutOfRange, name, v, lo, hi)
	}
	return nil
}

// EffectiveG returns the signed gravitational constant applied by the force phase
func (c *Config) EffectiveG() float64 {
	if c.InvertGravity {
		return -c.G
	}
	return c.G
}

// StepDt returns the simulated time advanced by one tick
func (c *Config) StepDt() float64 {
	return c.Dt * c.TimeScale
}

// Validate checks every field against its setter's range
func (c *Config) Validate() error {
	checks := []error{
		checkRange("G", c.G, parameter.MinG, parameter.MaxG),
		checkRange("softening", c.Softening, parameter.MinSoftening, parameter.MaxG),
		checkRange("theta", c.Theta, 0, 2),
		checkRange("dt", c.Dt, 1e-9, parameter.MaxDt),
		checkRange("time scale", c.TimeScale, parameter.MinTimeScale, parameter.MaxTimeScale),
		checkRange("world width", c.WorldWidth, 1, 1e9),
		checkRange("world height", c.WorldHeight, 1, 1e9),
		checkRange("restitution", c.Restitution, 0, 1),
		checkRange("repel strength", c.RepelStrength, 0, parameter.MaxRepelStrength),
		checkRange("black hole mass", c.BlackHoleMass, parameter.OrbitMinCenterMass, parameter.MaxBlackHoleMass),
		checkRange("trail length", float64(c.TrailLength), 0, parameter.MaxTrailLength),
		checkRange("tracking rate", c.TrackingRate, 0, parameter.MaxTrackingRate),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if !c.ForceMethod.Valid() {
		return fmt.Errorf("%w: force method %d", ErrConfigOutOfRange, c.ForceMethod)
	}
	if !c.Bounds.Valid() {
		return fmt.Errorf("%w: bounds mode %d", ErrConfigOutOfRange, c.Bounds)
	}
	if !c.Collision.Valid() {
		return fmt.Errorf("%w: collision mode %d", ErrConfigOutOfRange, c.Collision)
	}
	return nil
}

// SetG sets the gravitational constant magnitude
func (c *Config) SetG(v float64) error {
	if err := checkRange("G", v, parameter.MinG, parameter.MaxG); err != nil {
		return err
	}
	c.G = v
	return nil
}

// AdjustG shifts G by delta; a result at or below zero is rejected
func (c *Config) AdjustG(delta float64) error {
	return c.SetG(c.G + delta)
}

func (c *Config) SetSoftening(v float64) error {
	if err := checkRange("softening", v, parameter.MinSoftening, parameter.MaxG); err != nil {
		return err
	}
	c.Softening = v
	return nil
}

func (c *Config) SetForceMethod(m core.ForceMethod) error {
	if !m.Valid() {
		return fmt.Errorf("%w: force method %d", ErrConfigOutOfRange, m)
	}
	c.ForceMethod = m
	return nil
}

func (c *Config) SetTheta(v float64) error {
	if err := checkRange("theta", v, 0, 2); err != nil {
		return err
	}
	c.Theta = v
	return nil
}

func (c *Config) SetDt(v float64) error {
	if err := checkRange("dt", v, 1e-9, parameter.MaxDt); err != nil {
		return err
	}
	c.Dt = v
	return nil
}

func (c *Config) SetTimeScale(v float64) error {
	if err := checkRange("time scale", v, parameter.MinTimeScale, parameter.MaxTimeScale); err != nil {
		return err
	}
	c.TimeScale = v
	return nil
}

func (c *Config) SetBounds(m core.BoundsMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: bounds mode %d", ErrConfigOutOfRange, m)
	}
	c.Bounds = m
	return nil
}

// SetWorldSize sets the fixed extent used when zoom bounds are off
func (c *Config) SetWorldSize(w, h float64) error {
	if err := checkRange("world width", w, 1, 1e9); err != nil {
		return err
	}
	if err := checkRange("world height", h, 1, 1e9); err != nil {
		return err
	}
	c.WorldWidth, c.WorldHeight = w, h
	return nil
}

func (c *Config) SetRestitution(v float64) error {
	if err := checkRange("restitution", v, 0, 1); err != nil {
		return err
	}
	c.Restitution = v
	return nil
}

// SetMerge enables merge collisions; enabling clears repel, disabling leaves no collision response
func (c *Config) SetMerge(on bool) {
	switch {
	case on:
		c.Collision = core.CollisionMerge
	case c.Collision == core.CollisionMerge:
		c.Collision = core.CollisionNone
	}
}

// SetRepel enables repel collisions; enabling clears merge
func (c *Config) SetRepel(on bool) {
	switch {
	case on:
		c.Collision = core.CollisionRepel
	case c.Collision == core.CollisionRepel:
		c.Collision = core.CollisionNone
	}
}

func (c *Config) SetRepelStrength(v float64) error {
	if err := checkRange("repel strength", v, 0, parameter.MaxRepelStrength); err != nil {
		return err
	}
	c.RepelStrength = v
	return nil
}

func (c *Config) SetBlackHoleMass(v float64) error {
	if err := checkRange("black hole mass", v, parameter.OrbitMinCenterMass, parameter.MaxBlackHoleMass); err != nil {
		return err
	}
	c.BlackHoleMass = v
	return nil
}

func (c *Config) SetTrailLength(n int) error {
	if n < 0 || n > parameter.MaxTrailLength {
		return fmt.Errorf("%w: trail length=%d not in [0, %d]", ErrConfigOutOfRange, n, parameter.MaxTrailLength)
	}
	c.TrailLength = n
	return nil
}

func (c *Config) SetTrackingRate(v float64) error {
	if err := checkRange("tracking rate", v, 0, parameter.MaxTrackingRate); err != nil {
		return err
	}
	c.TrackingRate = v
	return nil
}

// ViewLocked reports whether pan and zoom are disabled
// A walled or wrapping fixed extent must stay fully visible
func (c *Config) ViewLocked() bool {
	return !c.ZoomBounds && (c.Bounds == core.BoundsHard || c.Bounds == core.BoundsPortal)
}
