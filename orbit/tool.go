package orbit

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

// CommandSink receives committed orbits; *event.CommandQueue satisfies it
type CommandSink interface {
	Push(cmd event.Command)
}

// Tool is the two-click orbit construction workflow
// Click1 picks the center, PreviewAt follows the cursor, Click2 commits
// Calls are synchronous against the latest snapshot; commits are queued for the next tick
type Tool struct {
	sink CommandSink

	mass         float64
	eccentricity float64
	clockwise    bool

	active   bool
	centerID core.BodyID // 0 when the first click hit empty space
	center   vmath.Vec
	current  Solution
	valid    bool
	lastErr  error
}

// NewTool creates an idle tool committing into sink
func NewTool(sink CommandSink) *Tool {
	return &Tool{
		sink: sink,
		mass: parameter.DefaultOrbitBodyMass,
	}
}

// Active reports whether a center has been picked
func (t *Tool) Active() bool { return t.active }

// Current returns the latest valid preview
func (t *Tool) Current() (Solution, bool) { return t.current, t.active && t.valid }

// Err returns the advisory from the latest preview, nil when it was valid
func (t *Tool) Err() error { return t.lastErr }

// Center returns the picked center body, 0 for empty space
func (t *Tool) Center() core.BodyID { return t.centerID }

func (t *Tool) Mass() float64         { return t.mass }
func (t *Tool) Eccentricity() float64 { return t.eccentricity }
func (t *Tool) Clockwise() bool       { return t.clockwise }

// SetMass sets the mass of bodies spawned by later commits
func (t *Tool) SetMass(m float64) error {
	if !(m > 0) || math.IsInf(m, 0) {
		return fmt.Errorf("%w: orbit body mass %g", engine.ErrConfigOutOfRange, m)
	}
	t.mass = m
	return nil
}

// SetEccentricity sets the eccentricity of later previews
func (t *Tool) SetEccentricity(e float64) error {
	if !(e >= 0 && e <= parameter.MaxOrbitEccentricity) {
		return fmt.Errorf("%w: eccentricity %g not in [0, %g]", engine.ErrConfigOutOfRange, e, parameter.MaxOrbitEccentricity)
	}
	t.eccentricity = e
	return nil
}

// SetClockwise sets the direction of later previews
func (t *Tool) SetClockwise(cw bool) { t.clockwise = cw }

// Click1 picks the body under point as the orbit center
// The pick radius grows with zoom-out so small discs stay clickable
// Clicking empty space still starts the tool; the massless center is reported by PreviewAt and Click2
func (t *Tool) Click1(snap *engine.Snapshot, point vmath.Vec) {
	t.Cancel()
	t.active = true
	t.center = point

	slack := snap.Camera.WorldLength(parameter.PickRadiusMin)
	if b, ok := snap.BodyAt(point, slack); ok {
		t.centerID = b.ID
		t.center = b.Pos
	}
}

// PreviewAt recomputes the orbit for a cursor at point
// The center is re-resolved from the snapshot so orbits around moving bodies use their current state
func (t *Tool) PreviewAt(snap *engine.Snapshot, point vmath.Vec) (Solution, error) {
	if !t.active {
		return Solution{}, fmt.Errorf("%w: no center selected", engine.ErrInvalidOrbitGeometry)
	}

	center, vel, mass := t.center, vmath.Vec{}, 0.0
	if t.centerID != 0 {
		b, ok := snap.Body(t.centerID)
		if !ok {
			t.valid = false
			t.lastErr = fmt.Errorf("%w: center %d", engine.ErrUnknownBody, t.centerID)
			return Solution{}, t.lastErr
		}
		center, vel, mass = b.Pos, b.Vel, b.Mass
		t.center = center
	}

	sol, err := Preview(center, point, vel, snap.Config.EffectiveG(), mass, t.eccentricity, t.clockwise)
	if err != nil {
		t.valid = false
		t.lastErr = err
		return Solution{}, err
	}
	sol.CenterID = t.centerID
	t.current = sol
	t.valid = true
	t.lastErr = nil
	return sol, nil
}

// Click2 commits the orbit through point and resets the tool
// On an invalid geometry nothing is committed, the advisory is returned and the tool stays active
func (t *Tool) Click2(snap *engine.Snapshot, point vmath.Vec) (Solution, error) {
	sol, err := t.PreviewAt(snap, point)
	if err != nil {
		return Solution{}, err
	}

	body, spec, err := Commit(sol, t.mass)
	if err != nil {
		t.lastErr = err
		return Solution{}, err
	}

	t.sink.Push(event.Command{
		Type:    event.CmdSpawnOrbit,
		Payload: &event.SpawnOrbitPayload{Body: body, Orbit: spec},
	})
	t.Cancel()
	return sol, nil
}

// Cancel returns the tool to idle
func (t *Tool) Cancel() {
	t.active = false
	t.centerID = 0
	t.center = vmath.Vec{}
	t.current = Solution{}
	t.valid = false
	t.lastErr = nil
}
