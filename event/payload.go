package event

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// AddBodyPayload places a body at a world position
type AddBodyPayload struct {
	Pos  vmath.Vec `json:"pos"`
	Vel  vmath.Vec `json:"vel"`
	Mass float64   `json:"mass"`
}

// BodyRefPayload addresses a body by ID
type BodyRefPayload struct {
	ID core.BodyID `json:"id"`
}

// PointPayload carries a world-space point
type PointPayload struct {
	Pos vmath.Vec `json:"pos"`
}

// ValuePayload carries a scalar setting or delta
type ValuePayload struct {
	Value float64 `json:"value"`
}

// CountPayload carries an integer setting
type CountPayload struct {
	Value int `json:"value"`
}

// TogglePayload carries a boolean setting
type TogglePayload struct {
	Enabled bool `json:"enabled"`
}

// BoundsModePayload selects a bounds mode
type BoundsModePayload struct {
	Mode core.BoundsMode `json:"mode"`
}

// ForceMethodPayload selects the gravity solver
type ForceMethodPayload struct {
	Method core.ForceMethod `json:"method"`
}

// PanPayload shifts the camera by a screen-space delta
type PanPayload struct {
	Delta vmath.Vec `json:"delta"`
}

// ZoomPayload scales the camera about a screen-space anchor
type ZoomPayload struct {
	Anchor vmath.Vec `json:"anchor"`
	Factor float64   `json:"factor"`
}

// ResizePayload carries the viewport size in screen units
type ResizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SpawnOrbitPayload carries a committed orbit; IDs are assigned on application
type SpawnOrbitPayload struct {
	Body  core.Body      `json:"-"`
	Orbit core.OrbitSpec `json:"-"`
}

// OrbitAction enumerates per-orbit list actions
type OrbitAction uint8

const (
	OrbitTrack  OrbitAction = iota // Toggle camera tracking of the orbit's body
	OrbitDelete                    // Remove spec and body
	OrbitInfo                      // Toggle the live info readout
)

// OrbitActionPayload addresses an orbit with an action
type OrbitActionPayload struct {
	ID     core.OrbitID `json:"id"`
	Action OrbitAction  `json:"action"`
}
