package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/vmath"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(DefaultConfig())
	require.NoError(t, err)
	return w
}

func addBody(w *World, x, y, mass float64) {
	w.Push(event.CmdAddBody, &event.AddBodyPayload{Pos: vmath.V(x, y), Mass: mass})
}

// recordingSystem captures the order systems run in
type recordingSystem struct {
	name     string
	priority int
	paused   bool
	log      *[]string
}

func (s *recordingSystem) Name() string          { return s.name }
func (s *recordingSystem) Priority() int         { return s.priority }
func (s *recordingSystem) RunsWhilePaused() bool { return s.paused }
func (s *recordingSystem) Update(*World, float64) {
	*s.log = append(*s.log, s.name)
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.G = 0
	_, err := NewWorld(cfg)
	assert.ErrorIs(t, err, ErrConfigOutOfRange)
}

func TestCommandsApplyAtTickBoundary(t *testing.T) {
	w := newTestWorld(t)
	addBody(w, 10, 10, 100)
	assert.Zero(t, w.BodyCount())

	report := w.Tick()
	assert.Equal(t, 1, report.Commands)
	assert.Equal(t, 1, w.BodyCount())
	require.NotEmpty(t, report.Notices)
	assert.Equal(t, event.NoticeSpawned, report.Notices[0].Type)
}

func TestBodyIDsStableAndAscending(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		addBody(w, float64(i*10), 0, 1)
	}
	w.Tick()
	w.Push(event.CmdRemoveBody, &event.BodyRefPayload{ID: 2})
	w.Tick()
	addBody(w, 0, 0, 1)
	w.Tick()

	var ids []core.BodyID
	for _, b := range w.Bodies() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []core.BodyID{1, 3, 4, 5, 6}, ids)
}

func TestRejectedCommandsKeepRunning(t *testing.T) {
	w := newTestWorld(t)
	w.Push(event.CmdRemoveBody, &event.BodyRefPayload{ID: 42})
	w.Push(event.CmdAddBody, &event.AddBodyPayload{Mass: 0})
	w.Push(event.CmdSetTimeScale, &event.ValuePayload{Value: 1000})
	w.Push(event.CmdAddBody, "wrong payload")
	addBody(w, 1, 1, 5)

	report := w.Tick()
	assert.Equal(t, 5, report.Commands)
	assert.Equal(t, 4, report.Rejected)
	assert.Equal(t, 1, w.BodyCount())
	assert.Equal(t, DefaultConfig().TimeScale, w.Config().TimeScale)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld(t)
	var log []string
	w.AddSystem(&recordingSystem{name: "camera", priority: 60, paused: true, log: &log})
	w.AddSystem(&recordingSystem{name: "gravity", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "bounds", priority: 40, log: &log})
	w.AddSystem(&recordingSystem{name: "collision", priority: 30, log: &log})

	w.Tick()
	assert.Equal(t, []string{"gravity", "collision", "bounds", "camera"}, log)

	log = nil
	w.Push(event.CmdSetPaused, &event.TogglePayload{Enabled: true})
	report := w.Tick()
	assert.False(t, report.Simulated)
	assert.Equal(t, []string{"camera"}, log)
	assert.Equal(t, uint64(1), w.TickCount())
}

func TestToggleBlackHole(t *testing.T) {
	w := newTestWorld(t)
	w.Push(event.CmdToggleBlackHoleAt, &event.PointPayload{Pos: vmath.V(100, 100)})
	w.Tick()
	require.Equal(t, 1, w.BodyCount())
	bh := w.Bodies()[0]
	assert.True(t, bh.BlackHole)
	assert.Equal(t, DefaultConfig().BlackHoleMass, bh.Mass)

	w.Push(event.CmdSetBlackHoleMass, &event.ValuePayload{Value: 9000})
	w.Tick()
	assert.Equal(t, 9000.0, bh.Mass)
	assert.Equal(t, core.BlackHoleRadius(9000), bh.Radius)

	w.Push(event.CmdToggleBlackHoleAt, &event.PointPayload{Pos: vmath.V(101, 99)})
	w.Tick()
	assert.Zero(t, w.BodyCount())
}

func TestTrailLengthResizesBodies(t *testing.T) {
	w := newTestWorld(t)
	addBody(w, 0, 0, 1)
	w.Push(event.CmdSetTrailLength, &event.CountPayload{Value: 12})
	w.Tick()
	assert.Equal(t, 12, w.Bodies()[0].Trail.Cap())
}

func TestViewLockedUnderHardBounds(t *testing.T) {
	w := newTestWorld(t)
	zoom := w.Camera().Zoom
	w.Push(event.CmdZoom, &event.ZoomPayload{Factor: 2})
	report := w.Tick()
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, zoom, w.Camera().Zoom)

	w.Push(event.CmdSetBoundsMode, &event.BoundsModePayload{Mode: core.BoundsSoft})
	w.Push(event.CmdZoom, &event.ZoomPayload{Factor: 2})
	report = w.Tick()
	assert.Zero(t, report.Rejected)
	assert.InDelta(t, zoom*2, w.Camera().Zoom, 1e-12)
}

func TestBoundsModeChangeResetsView(t *testing.T) {
	w := newTestWorld(t)
	w.Push(event.CmdSetBoundsMode, &event.BoundsModePayload{Mode: core.BoundsSoft})
	w.Push(event.CmdPan, &event.PanPayload{Delta: vmath.V(50, 50)})
	w.Tick()
	require.NotEqual(t, vmath.Vec{}, w.Camera().Offset)

	w.Push(event.CmdCycleBoundsMode, nil)
	w.Tick()
	assert.Equal(t, core.BoundsPortal, w.Config().Bounds)
	assert.Equal(t, vmath.Vec{}, w.Camera().Offset)
}

func TestTrackingUnderHardEnablesZoomBounds(t *testing.T) {
	w := newTestWorld(t)
	addBody(w, 10, 10, 1)
	w.Tick()
	w.Push(event.CmdTrackBody, &event.BodyRefPayload{ID: 1})
	w.Tick()
	assert.True(t, w.Config().ZoomBounds)
	assert.Equal(t, BodyTarget(1), w.Camera().Target)
	assert.Equal(t, w.Camera().VisibleBox(), w.Extent())
}

func TestSpawnOrbitAndActions(t *testing.T) {
	w := newTestWorld(t)
	body := core.NewBody(0, vmath.V(110, 100), vmath.V(0, 10), 1, 0)
	w.Push(event.CmdSpawnOrbit, &event.SpawnOrbitPayload{
		Body:  body,
		Orbit: core.OrbitSpec{Center: vmath.V(100, 100), SemiMajorAxis: 10},
	})
	w.Tick()

	orbits := w.Orbits()
	require.Len(t, orbits, 1)
	o := orbits[0]
	assert.Equal(t, core.OrbitID(1), o.ID)
	b, ok := w.Body(o.BodyID)
	require.True(t, ok)
	assert.Equal(t, DefaultConfig().TrailLength, b.Trail.Cap())

	w.Push(event.CmdOrbitAction, &event.OrbitActionPayload{ID: o.ID, Action: event.OrbitInfo})
	w.Push(event.CmdOrbitAction, &event.OrbitActionPayload{ID: o.ID, Action: event.OrbitTrack})
	w.Tick()
	snap := w.Snapshot()
	require.NotNil(t, snap.Info)
	assert.Equal(t, o.BodyID, snap.Info.BodyID)
	require.Len(t, snap.Orbits, 1)
	assert.True(t, snap.Orbits[0].Tracked)

	w.Push(event.CmdOrbitAction, &event.OrbitActionPayload{ID: o.ID, Action: event.OrbitDelete})
	w.Tick()
	assert.Empty(t, w.Orbits())
	assert.Zero(t, w.BodyCount())
	assert.False(t, w.Camera().Tracking())

	w.Push(event.CmdOrbitAction, &event.OrbitActionPayload{ID: o.ID, Action: event.OrbitDelete})
	assert.Equal(t, 1, w.Tick().Rejected)
}

func TestSweepPrunesOrbitsOfDeadBodies(t *testing.T) {
	w := newTestWorld(t)
	w.Push(event.CmdSpawnOrbit, &event.SpawnOrbitPayload{
		Body:  core.Body{Pos: vmath.V(5, 5), Mass: 1},
		Orbit: core.OrbitSpec{SemiMajorAxis: 5},
	})
	w.Tick()
	require.Len(t, w.Orbits(), 1)

	w.Bodies()[0].Kill()
	assert.Equal(t, 1, w.Sweep())
	assert.Empty(t, w.Orbits())
}

func TestResetClearsEverything(t *testing.T) {
	w := newTestWorld(t)
	addBody(w, 1, 1, 1)
	addBody(w, 2, 2, 1)
	w.Tick()
	w.Push(event.CmdTrackBody, &event.BodyRefPayload{ID: 1})
	w.Push(event.CmdReset, nil)
	w.Tick()
	assert.Zero(t, w.BodyCount())
	assert.False(t, w.Camera().Tracking())

	addBody(w, 1, 1, 1)
	w.Tick()
	assert.Equal(t, core.BodyID(3), w.Bodies()[0].ID)
}

func TestInfoEnergySplit(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.SetG(1))
	require.NoError(t, cfg.SetSoftening(1))
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	w.Push(event.CmdAddBody, &event.AddBodyPayload{Pos: vmath.V(0, 0), Vel: vmath.V(2, 0), Mass: 10})
	w.Push(event.CmdAddBody, &event.AddBodyPayload{Pos: vmath.V(100, 0), Mass: 10})
	w.Tick()

	info, err := w.Info(BodyTarget(1))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, info.Kinetic, 1e-12)
	assert.InDelta(t, -0.5, info.Potential, 1e-12)
	assert.InDelta(t, 19.5, info.Total, 1e-12)

	_, err = w.Info(BodyTarget(99))
	assert.ErrorIs(t, err, ErrUnknownBody)
	_, err = w.Info(OrbitTarget(1))
	assert.ErrorIs(t, err, ErrUnknownOrbit)
}

func TestSnapshotBodyAt(t *testing.T) {
	w := newTestWorld(t)
	addBody(w, 100, 100, 1)
	addBody(w, 110, 100, 1)
	w.Tick()

	snap := w.Snapshot()
	b, ok := snap.BodyAt(vmath.V(108, 100), 0)
	require.True(t, ok)
	assert.Equal(t, core.BodyID(2), b.ID)

	_, ok = snap.BodyAt(vmath.V(300, 300), 1)
	assert.False(t, ok)
}

func TestClockStepNotifiesObservers(t *testing.T) {
	w := newTestWorld(t)
	c := NewClock(w, 0)
	var seen []uint64
	c.Observe(TickObserverFunc(func(r TickReport, s *Snapshot) {
		seen = append(seen, r.Tick)
		assert.Equal(t, r.Tick, s.Tick)
	}))

	c.Step()
	c.Step()
	assert.Equal(t, []uint64{1, 2}, seen)
	assert.Equal(t, uint64(2), c.Latest().Tick)
	assert.Equal(t, uint64(2), c.Ticks())
}
