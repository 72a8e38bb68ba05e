// Package scene generates starting layouts as command batches for the world queue
package scene

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
	"github.com/lixenwraith/gravsim/vmath"
)

// Preset selects a layout
type Preset uint8

const (
	PresetEmpty  Preset = iota // Nothing
	PresetDisk                 // Black hole with a disk of circular orbiters
	PresetBinary               // Two equal bodies on a mutual circular orbit
	PresetGalaxy               // Uniform cloud with random drift
)

var presetNames = [...]string{"empty", "disk", "binary", "galaxy"}

func (p Preset) String() string {
	if int(p) < len(presetNames) {
		return presetNames[p]
	}
	return fmt.Sprintf("Preset(%d)", p)
}

func (p Preset) MarshalText() ([]byte, error) {
	if int(p) >= len(presetNames) {
		return nil, fmt.Errorf("invalid scene preset %d", p)
	}
	return []byte(presetNames[p]), nil
}

func (p *Preset) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range presetNames {
		if s == name {
			*p = Preset(i)
			return nil
		}
	}
	return fmt.Errorf("scene preset: unknown value %q (want one of %s)", s, strings.Join(presetNames[:], ", "))
}

// Options parameterize a layout
type Options struct {
	Preset Preset
	// Bodies is the number of small bodies placed
	Bodies int
	// Seed makes layouts reproducible
	Seed uint64
	// Radius is the outer extent of the layout around Center
	Radius float64
	Center vmath.Vec
	// CenterMass is the black hole or binary component mass
	CenterMass float64
	// BodyMass is the mean small body mass; each varies ±50%
	BodyMass float64
}

// DefaultOptions returns a disk of 60 bodies
func DefaultOptions() Options {
	return Options{
		Preset:     PresetDisk,
		Bodies:     60,
		Seed:       1,
		Radius:     300,
		CenterMass: 5e5,
		BodyMass:   10,
	}
}

// Validate rejects layouts that cannot be generated or would overflow the command queue
func (o Options) Validate() error {
	if o.Bodies < 0 {
		return fmt.Errorf("scene: negative body count %d", o.Bodies)
	}
	if o.Bodies > parameter.MaxSceneBodies {
		return fmt.Errorf("scene: %d bodies exceeds limit %d", o.Bodies, parameter.MaxSceneBodies)
	}
	if o.Preset != PresetEmpty && !(o.Radius > 0) {
		return fmt.Errorf("scene: radius must be positive, got %g", o.Radius)
	}
	return nil
}

// Build returns the commands producing the layout under gravitational constant g
// Orbital speeds assume g is the value in effect when the commands are applied
func Build(opts Options, g float64) ([]event.Command, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rnd := rand.New(rand.NewSource(opts.Seed))
	switch opts.Preset {
	case PresetEmpty:
		return nil, nil
	case PresetDisk:
		return disk(opts, g, rnd), nil
	case PresetBinary:
		return binary(opts, g, rnd), nil
	case PresetGalaxy:
		return galaxy(opts, rnd), nil
	default:
		return nil, fmt.Errorf("scene: unknown preset %d", opts.Preset)
	}
}

func addBody(pos, vel vmath.Vec, mass float64) event.Command {
	return event.Command{
		Type:    event.CmdAddBody,
		Payload: &event.AddBodyPayload{Pos: pos, Vel: vel, Mass: mass},
	}
}

func jitterMass(opts Options, rnd *rand.Rand) float64 {
	return opts.BodyMass * (0.5 + rnd.Float64())
}

// disk places a black hole at the center and bodies on counter-clockwise circular orbits
// Radii are uniform in [Radius/5, Radius]
func disk(opts Options, g float64, rnd *rand.Rand) []event.Command {
	cmds := []event.Command{
		{Type: event.CmdSetBlackHoleMass, Payload: &event.ValuePayload{Value: opts.CenterMass}},
		{Type: event.CmdAddBlackHole, Payload: &event.PointPayload{Pos: opts.Center}},
	}
	inner := opts.Radius / 5
	for i := 0; i < opts.Bodies; i++ {
		r := inner + rnd.Float64()*(opts.Radius-inner)
		rel := vmath.FromPolar(r, rnd.Float64()*2*math.Pi)
		vel := physics.OrbitalInsert(rel, g, opts.CenterMass, 0, false)
		cmds = append(cmds, addBody(vmath.Add(opts.Center, rel), vel, jitterMass(opts, rnd)))
	}
	return cmds
}

// binary places two CenterMass bodies Radius apart orbiting their barycenter
// Small bodies go on wide circumbinary orbits beyond 1.5·Radius
func binary(opts Options, g float64, rnd *rand.Rand) []event.Command {
	half := opts.Radius / 2
	// Each component circles the barycenter at d/2 under the other's pull: v² = G·m/(2d)
	v := math.Sqrt(g * opts.CenterMass / (2 * opts.Radius))

	cmds := []event.Command{
		addBody(vmath.Add(opts.Center, vmath.V(-half, 0)), vmath.V(0, -v), opts.CenterMass),
		addBody(vmath.Add(opts.Center, vmath.V(half, 0)), vmath.V(0, v), opts.CenterMass),
	}

	total := 2 * opts.CenterMass
	for i := 0; i < opts.Bodies; i++ {
		r := opts.Radius * (1.5 + rnd.Float64())
		rel := vmath.FromPolar(r, rnd.Float64()*2*math.Pi)
		vel := physics.OrbitalInsert(rel, g, total, 0, false)
		cmds = append(cmds, addBody(vmath.Add(opts.Center, rel), vel, jitterMass(opts, rnd)))
	}
	return cmds
}

// galaxy scatters bodies uniformly over the square of half-width Radius with normally distributed drift
func galaxy(opts Options, rnd *rand.Rand) []event.Command {
	cmds := make([]event.Command, 0, opts.Bodies)
	for i := 0; i < opts.Bodies; i++ {
		pos := vmath.V(
			opts.Center.X+(2*rnd.Float64()-1)*opts.Radius,
			opts.Center.Y+(2*rnd.Float64()-1)*opts.Radius,
		)
		vel := vmath.V(rnd.NormFloat64(), rnd.NormFloat64())
		cmds = append(cmds, addBody(pos, vel, jitterMass(opts, rnd)))
	}
	return cmds
}

// Push sends cmds to sink in order
func Push(sink interface{ Push(event.Command) }, cmds []event.Command) {
	for _, c := range cmds {
		sink.Push(c)
	}
}
