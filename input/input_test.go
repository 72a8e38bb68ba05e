package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/orbit"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

type sink struct {
	cmds []event.Command
}

func (s *sink) Push(cmd event.Command) { s.cmds = append(s.cmds, cmd) }

func (s *sink) last(t *testing.T) event.Command {
	t.Helper()
	require.NotEmpty(t, s.cmds)
	return s.cmds[len(s.cmds)-1]
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Camera: engine.Camera{Zoom: 1, Viewport: vmath.V(80, 48)},
		Config: engine.DefaultConfig(),
	}
}

func newHandler(actions Actions) (*Handler, *sink) {
	s := &sink{}
	return NewHandler(nil, s, orbit.NewTool(s), actions), s
}

func TestKeysMapToCommands(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()

	cases := []struct {
		r    rune
		want event.CommandType
	}{
		{' ', event.CmdTogglePause},
		{'+', event.CmdSetGravity},
		{'b', event.CmdCycleBoundsMode},
		{'0', event.CmdResetView},
		{'R', event.CmdReset},
	}
	for _, c := range cases {
		h.HandleEvent(key(c.r), snap)
		assert.Equal(t, c.want, s.last(t).Type, string(c.r))
	}

	h.HandleEvent(key('-'), snap)
	assert.Equal(t, -parameter.GravityStep, s.last(t).Payload.(*event.ValuePayload).Value)
}

func TestTogglesReadCurrentState(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()

	h.HandleEvent(key('i'), snap)
	assert.True(t, s.last(t).Payload.(*event.TogglePayload).Enabled)
	snap.Config.InvertGravity = true
	h.HandleEvent(key('i'), snap)
	assert.False(t, s.last(t).Payload.(*event.TogglePayload).Enabled)

	// Default collision is merge, so the merge key turns it off and repel turns repel on
	h.HandleEvent(key('m'), snap)
	assert.Equal(t, event.CmdSetMergeMode, s.last(t).Type)
	assert.False(t, s.last(t).Payload.(*event.TogglePayload).Enabled)
	h.HandleEvent(key('r'), snap)
	assert.True(t, s.last(t).Payload.(*event.TogglePayload).Enabled)

	h.HandleEvent(key('g'), snap)
	assert.Equal(t, core.ForceBarnesHut, s.last(t).Payload.(*event.ForceMethodPayload).Method)

	snap.Config.TimeScale = parameter.MaxTimeScale
	h.HandleEvent(key('>'), snap)
	assert.Equal(t, parameter.MaxTimeScale, s.last(t).Payload.(*event.ValuePayload).Value)
}

func TestViewLockedRefusesPan(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()
	snap.Config.Bounds = core.BoundsPortal
	require.True(t, snap.Config.ViewLocked())

	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), snap)
	assert.Empty(t, s.cmds)
	assert.Contains(t, h.Message(), "view locked")

	snap.Config.Bounds = core.BoundsSoft
	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), snap)
	assert.Equal(t, vmath.V(-parameter.PanStep, 0), s.last(t).Payload.(*event.PanPayload).Delta)
}

func TestQuitAndResize(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()
	assert.True(t, h.HandleEvent(key('q'), snap).Quit)
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), snap).Quit)

	res := h.HandleEvent(tcell.NewEventResize(100, 30), snap)
	assert.True(t, res.Resized)
	assert.Equal(t, 100, res.Width)
	p := s.last(t).Payload.(*event.ResizePayload)
	assert.Equal(t, 100.0, p.Width)
	assert.Equal(t, 60.0, p.Height)
}

func TestLocalActions(t *testing.T) {
	var trails, help int
	muted := false
	h, s := newHandler(Actions{
		ToggleTrails: func() { trails++ },
		ToggleHelp:   func() { help++ },
		ToggleMute: func() bool {
			muted = !muted
			return muted
		},
	})
	snap := newSnapshot()
	h.HandleEvent(key('T'), snap)
	h.HandleEvent(key('?'), snap)
	h.HandleEvent(key('s'), snap)
	h.HandleEvent(key('O'), snap) // unset action is skipped

	assert.Equal(t, 1, trails)
	assert.Equal(t, 1, help)
	assert.True(t, muted)
	assert.Equal(t, "sound muted", h.Message())
	assert.Empty(t, s.cmds)
}

func TestDragPlacesBody(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()

	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), snap)
	h.HandleEvent(tcell.NewEventMouse(14, 5, tcell.Button1, tcell.ModNone), snap)
	assert.Empty(t, s.cmds)
	h.HandleEvent(tcell.NewEventMouse(14, 5, tcell.ButtonNone, tcell.ModNone), snap)

	cmd := s.last(t)
	require.Equal(t, event.CmdAddBody, cmd.Type)
	p := cmd.Payload.(*event.AddBodyPayload)
	assert.Equal(t, vmath.V(10.5, 11), p.Pos)
	assert.Equal(t, vmath.V(4*parameter.DragVelocityScale, 0), p.Vel)
	assert.Equal(t, parameter.DefaultBodyMass, p.Mass)

	h.HandleEvent(tcell.NewEventMouse(3, 3, tcell.Button3, tcell.ModNone), snap)
	assert.Equal(t, event.CmdToggleBlackHoleAt, s.last(t).Type)

	h.HandleEvent(tcell.NewEventMouse(3, 3, tcell.WheelUp, tcell.ModNone), snap)
	assert.Equal(t, event.CmdToggleBlackHoleAt, s.last(t).Type, "hard walls lock the view")

	snap.Config.Bounds = core.BoundsSoft
	h.HandleEvent(tcell.NewEventMouse(3, 3, tcell.WheelUp, tcell.ModNone), snap)
	z := s.last(t).Payload.(*event.ZoomPayload)
	assert.Equal(t, parameter.ZoomStep, z.Factor)
	assert.Equal(t, vmath.V(3.5, 7), z.Anchor)
}

func TestOrbitToolClicks(t *testing.T) {
	w, err := engine.NewWorld(engine.DefaultConfig())
	require.NoError(t, err)
	w.Push(event.CmdResize, &event.ResizePayload{Width: 80, Height: 48})
	w.Push(event.CmdResetView, nil)
	w.Push(event.CmdAddBody, &event.AddBodyPayload{Pos: vmath.V(640, 360), Mass: 5e5})
	w.Tick()
	snap := w.Snapshot()

	s := &sink{}
	h := NewHandler(nil, s, orbit.NewTool(s), Actions{})
	h.HandleEvent(key('o'), &snap)
	require.True(t, h.ToolMode())

	center := snap.Camera.WorldToScreen(vmath.V(640, 360))
	cx, cy := int(center.X), int(center.Y)/2
	h.HandleEvent(tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone), &snap)
	h.HandleEvent(tcell.NewEventMouse(cx+10, cy, tcell.ButtonNone, tcell.ModNone), &snap)

	active, sol, err := h.Preview()
	assert.True(t, active)
	require.NoError(t, err)
	require.NotNil(t, sol)
	assert.Positive(t, sol.SemiMajorAxis)

	h.HandleEvent(tcell.NewEventMouse(cx+10, cy, tcell.Button1, tcell.ModNone), &snap)
	assert.Equal(t, event.CmdSpawnOrbit, s.last(t).Type)
	assert.Contains(t, h.Message(), "orbit placed")

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &snap)
	assert.False(t, h.ToolMode())
	active, _, _ = h.Preview()
	assert.False(t, active)
}

func TestOrbitToolEmptyCenterReportsError(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()
	h.HandleEvent(key('o'), snap)
	h.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone), snap)
	h.HandleEvent(tcell.NewEventMouse(9, 5, tcell.ButtonNone, tcell.ModNone), snap)

	_, sol, err := h.Preview()
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, engine.ErrInvalidOrbitGeometry)

	h.HandleEvent(tcell.NewEventMouse(9, 5, tcell.Button1, tcell.ModNone), snap)
	assert.Empty(t, s.cmds, "invalid geometry is never committed")
	assert.Contains(t, h.Message(), "orbit not placed")
}

func TestOrbitToolSettings(t *testing.T) {
	s := &sink{}
	tool := orbit.NewTool(s)
	h := NewHandler(nil, s, tool, Actions{})
	snap := newSnapshot()

	h.HandleEvent(key('c'), snap)
	assert.True(t, tool.Clockwise())
	for i := 0; i < 100; i++ {
		h.HandleEvent(key('e'), snap)
	}
	assert.Equal(t, parameter.MaxOrbitEccentricity, tool.Eccentricity())
	h.HandleEvent(key('E'), snap)
	assert.InDelta(t, parameter.MaxOrbitEccentricity-parameter.EccentricityStep, tool.Eccentricity(), 1e-12)
}

func TestOrbitSelectionAndActions(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()

	h.HandleEvent(key('t'), snap)
	assert.Empty(t, s.cmds)
	assert.Equal(t, "no orbits", h.Message())

	snap.Orbits = []engine.OrbitView{{Spec: core.OrbitSpec{ID: 3}}, {Spec: core.OrbitSpec{ID: 8}}}
	h.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), snap)
	assert.Equal(t, core.OrbitID(3), h.Selected())
	h.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), snap)
	assert.Equal(t, core.OrbitID(8), h.Selected())
	h.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), snap)
	assert.Equal(t, core.OrbitID(3), h.Selected(), "wraps")

	h.HandleEvent(key('I'), snap)
	p := s.last(t).Payload.(*event.OrbitActionPayload)
	assert.Equal(t, event.OrbitInfo, p.Action)
	assert.Equal(t, core.OrbitID(3), p.ID)

	h.HandleEvent(key('d'), snap)
	assert.Equal(t, event.OrbitDelete, s.last(t).Payload.(*event.OrbitActionPayload).Action)
	assert.Zero(t, h.Selected())
}

func TestFollowBodyUnderCursor(t *testing.T) {
	h, s := newHandler(Actions{})
	snap := newSnapshot()
	snap.Bodies = []engine.BodyView{{ID: 5, Pos: vmath.V(20.5, 21), Radius: 1}}

	h.HandleEvent(key('f'), snap)
	assert.Zero(t, s.last(t).Payload.(*event.BodyRefPayload).ID, "no cursor clears tracking")

	h.HandleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone), snap)
	h.HandleEvent(key('f'), snap)
	assert.Equal(t, core.BodyID(5), s.last(t).Payload.(*event.BodyRefPayload).ID)
}

func TestKeyBindings(t *testing.T) {
	kt, err := BuildKeyTable([]string{"p toggle_pause", "space none", "ctrl+s toggle_mute", "Q quit"})
	require.NoError(t, err)
	assert.Equal(t, IntentTogglePause, kt.Lookup(key('p')))
	assert.Equal(t, IntentNone, kt.Lookup(key(' ')))
	assert.Equal(t, IntentToggleMute, kt.Lookup(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	assert.Equal(t, IntentQuit, kt.Lookup(key('Q')))
	assert.Equal(t, IntentQuit, kt.Lookup(key('q')), "defaults stay")

	_, err = BuildKeyTable([]string{"p warp_drive"})
	assert.Error(t, err)
	_, err = BuildKeyTable([]string{"f13 quit"})
	assert.Error(t, err)
	_, err = BuildKeyTable([]string{"p"})
	assert.Error(t, err)
}

func TestHelpLinesCoverBindings(t *testing.T) {
	lines := DefaultKeyTable().HelpLines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "quit")
	assert.Contains(t, lines[0], "ctrl+c")

	found := false
	for _, l := range lines {
		if l == "space          toggle_pause" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Contains(t, ActionNames(), "orbit_tool")
	assert.Equal(t, "delete_orbit", IntentDeleteOrbit.String())
}
