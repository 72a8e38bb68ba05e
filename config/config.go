// Package config loads session settings from an INI-style file
//
// Every section is optional; absent variables keep their defaults.
// Values are validated by the engine setters' ranges after loading.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/gcfg.v1"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/scene"
	"github.com/lixenwraith/gravsim/vmath"
)

// SimulationSection maps [simulation]
type SimulationSection struct {
	G             float64
	InvertGravity bool
	Softening     float64
	ForceMethod   core.ForceMethod
	Theta         float64
	Dt            float64
	TimeScale     float64
	Paused        bool
	BlackHoleMass float64
	TrailLength   int
}

// BoundsSection maps [bounds]
type BoundsSection struct {
	Mode        core.BoundsMode
	ZoomBounds  bool
	Width       float64
	Height      float64
	Restitution float64
}

// CollisionSection maps [collision]
type CollisionSection struct {
	Mode          core.CollisionMode
	RepelStrength float64
}

// CameraSection maps [camera]
type CameraSection struct {
	TrackingRate float64
}

// SceneSection maps [scene]
type SceneSection struct {
	Preset     scene.Preset
	Bodies     int
	Seed       uint64
	Radius     float64
	CenterMass float64
	BodyMass   float64
}

// ServicesSection maps [services]; empty addresses disable the endpoint
type ServicesSection struct {
	Metrics        string
	Stream         string
	StreamCommands bool
	Muted          bool
	LogFile        string
}

// KeysSection maps [keys]; each Bind value is "key action" and may repeat
type KeysSection struct {
	Bind []string
}

// File is the whole configuration document
type File struct {
	Simulation SimulationSection
	Bounds     BoundsSection
	Collision  CollisionSection
	Camera     CameraSection
	Scene      SceneSection
	Services   ServicesSection
	Keys       KeysSection
}

// Default returns a File holding the engine and scene defaults
func Default() *File {
	ec := engine.DefaultConfig()
	so := scene.DefaultOptions()
	return &File{
		Simulation: SimulationSection{
			G:             ec.G,
			InvertGravity: ec.InvertGravity,
			Softening:     ec.Softening,
			ForceMethod:   ec.ForceMethod,
			Theta:         ec.Theta,
			Dt:            ec.Dt,
			TimeScale:     ec.TimeScale,
			Paused:        ec.Paused,
			BlackHoleMass: ec.BlackHoleMass,
			TrailLength:   ec.TrailLength,
		},
		Bounds: BoundsSection{
			Mode:        ec.Bounds,
			ZoomBounds:  ec.ZoomBounds,
			Width:       ec.WorldWidth,
			Height:      ec.WorldHeight,
			Restitution: ec.Restitution,
		},
		Collision: CollisionSection{
			Mode:          ec.Collision,
			RepelStrength: ec.RepelStrength,
		},
		Camera: CameraSection{
			TrackingRate: ec.TrackingRate,
		},
		Scene: SceneSection{
			Preset:     so.Preset,
			Bodies:     so.Bodies,
			Seed:       so.Seed,
			Radius:     so.Radius,
			CenterMass: so.CenterMass,
			BodyMass:   so.BodyMass,
		},
		Services: ServicesSection{
			StreamCommands: true,
		},
	}
}

// Load reads path over the defaults; a missing path returns the defaults
func Load(path string) (*File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := gcfg.ReadFileInto(f, path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse reads an in-memory document over the defaults
func Parse(text string) (*File, error) {
	f := Default()
	if err := gcfg.ReadStringInto(f, text); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

func (f *File) validate() error {
	if _, err := f.Engine(); err != nil {
		return err
	}
	if err := f.SceneOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", engine.ErrConfigOutOfRange, err)
	}
	return nil
}

// Engine builds a validated engine configuration
func (f *File) Engine() (engine.Config, error) {
	s, b, c := f.Simulation, f.Bounds, f.Collision
	cfg := engine.Config{
		G:             s.G,
		InvertGravity: s.InvertGravity,
		Softening:     s.Softening,
		ForceMethod:   s.ForceMethod,
		Theta:         s.Theta,
		Dt:            s.Dt,
		TimeScale:     s.TimeScale,
		Paused:        s.Paused,
		Bounds:        b.Mode,
		ZoomBounds:    b.ZoomBounds,
		WorldWidth:    b.Width,
		WorldHeight:   b.Height,
		Restitution:   b.Restitution,
		Collision:     c.Mode,
		RepelStrength: c.RepelStrength,
		BlackHoleMass: s.BlackHoleMass,
		TrailLength:   s.TrailLength,
		TrackingRate:  f.Camera.TrackingRate,
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

// SceneOptions returns the scene layout centered on the fixed world extent
func (f *File) SceneOptions() scene.Options {
	sc := f.Scene
	return scene.Options{
		Preset:     sc.Preset,
		Bodies:     sc.Bodies,
		Seed:       sc.Seed,
		Radius:     sc.Radius,
		Center:     vmath.V(f.Bounds.Width/2, f.Bounds.Height/2),
		CenterMass: sc.CenterMass,
		BodyMass:   sc.BodyMass,
	}
}

// WriteExample prints an annotated configuration with the defaults filled in
func WriteExample(w io.Writer) error {
	f := Default()
	_, err := fmt.Fprintf(w, exampleTemplate,
		f.Simulation.G, f.Simulation.InvertGravity, f.Simulation.Softening, f.Simulation.ForceMethod,
		f.Simulation.Theta, f.Simulation.Dt, f.Simulation.TimeScale, f.Simulation.Paused,
		f.Simulation.BlackHoleMass, f.Simulation.TrailLength,
		f.Bounds.Mode, f.Bounds.ZoomBounds, f.Bounds.Width, f.Bounds.Height, f.Bounds.Restitution,
		f.Collision.Mode, f.Collision.RepelStrength,
		f.Camera.TrackingRate,
		f.Scene.Preset, f.Scene.Bodies, f.Scene.Seed, f.Scene.Radius, f.Scene.CenterMass, f.Scene.BodyMass,
		f.Services.StreamCommands, f.Services.Muted,
	)
	return err
}

const exampleTemplate = `; gravsim configuration
[simulation]
G = %g
InvertGravity = %t
Softening = %g
; direct | barneshut
ForceMethod = %s
Theta = %g
Dt = %g
TimeScale = %g
Paused = %t
BlackHoleMass = %g
TrailLength = %d

[bounds]
; hard | soft | portal
Mode = %s
ZoomBounds = %t
Width = %g
Height = %g
Restitution = %g

[collision]
; none | merge | repel
Mode = %s
RepelStrength = %g

[camera]
; 0 locks the view on the target, otherwise exponential follow rate per second
TrackingRate = %g

[scene]
; empty | disk | binary | galaxy
Preset = %s
Bodies = %d
Seed = %d
Radius = %g
CenterMass = %g
BodyMass = %g

[services]
; listen addresses, empty disables
Metrics = ""
Stream = ""
StreamCommands = %t
Muted = %t
LogFile = ""

[keys]
; one binding per line as "key action", action none unbinds
; bind = p toggle_pause
`
