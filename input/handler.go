// Package input turns terminal key and mouse events into world commands and orbit tool calls
package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/orbit"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/vmath"
)

// CommandSink receives world commands; *event.CommandQueue satisfies it
type CommandSink interface {
	Push(cmd event.Command)
}

// Actions are local side effects that never reach the world
// Nil entries are skipped
type Actions struct {
	ToggleTrails     func()
	ToggleOrbitPaths func()
	ToggleHelp       func()
	ToggleMute       func() bool // Returns the new muted state
}

// Result tells the frame loop what an event changed
type Result struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Handler translates tcell events against the latest snapshot
// Not safe for concurrent use; owned by the main loop
type Handler struct {
	keys    *KeyTable
	sink    CommandSink
	tool    *orbit.Tool
	actions Actions

	cursor    vmath.Vec // Last mouse position in screen units
	hasCursor bool
	buttons   tcell.ButtonMask

	// Left drag start for slingshot placement
	dragging  bool
	dragStart vmath.Vec

	toolMode bool
	selected core.OrbitID
	bodyMass float64

	message string
	msgLeft int
}

// NewHandler creates a handler pushing into sink
func NewHandler(keys *KeyTable, sink CommandSink, tool *orbit.Tool, actions Actions) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{
		keys:     keys,
		sink:     sink,
		tool:     tool,
		actions:  actions,
		bodyMass: parameter.DefaultBodyMass,
	}
}

// ToolMode reports whether clicks drive the orbit tool
func (h *Handler) ToolMode() bool { return h.toolMode }

// Selected returns the orbit addressed by track, info and delete
func (h *Handler) Selected() core.OrbitID { return h.selected }

// Message returns the transient HUD message and ages it by one frame
func (h *Handler) Message() string {
	if h.msgLeft <= 0 {
		return ""
	}
	h.msgLeft--
	return h.message
}

func (h *Handler) notify(format string, args ...any) {
	h.message = fmt.Sprintf(format, args...)
	h.msgLeft = parameter.MessageFrames
}

func (h *Handler) push(t event.CommandType, payload any) {
	h.sink.Push(event.Command{Type: t, Payload: payload})
}

// HandleEvent dispatches one terminal event
func (h *Handler) HandleEvent(ev tcell.Event, snap *engine.Snapshot) Result {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hgt := ev.Size()
		if w > 0 && hgt > 0 {
			vp := render.Viewport(w, hgt)
			h.push(event.CmdResize, &event.ResizePayload{Width: vp.X, Height: vp.Y})
		}
		return Result{Resized: true, Width: w, Height: hgt}
	case *tcell.EventKey:
		return h.handleIntent(h.keys.Lookup(ev), snap)
	case *tcell.EventMouse:
		h.handleMouse(ev, snap)
	}
	return Result{}
}

func (h *Handler) handleMouse(ev *tcell.EventMouse, snap *engine.Snapshot) {
	x, y := ev.Position()
	h.cursor = render.CellToScreen(x, y)
	h.hasCursor = true
	world := snap.Camera.ScreenToWorld(h.cursor)

	buttons := ev.Buttons()
	pressed := buttons &^ h.buttons
	released := h.buttons &^ buttons
	h.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	switch {
	case buttons&tcell.WheelUp != 0:
		h.zoom(snap, h.cursor, parameter.ZoomStep)
		return
	case buttons&tcell.WheelDown != 0:
		h.zoom(snap, h.cursor, 1/parameter.ZoomStep)
		return
	}

	if h.toolMode {
		switch {
		case pressed&tcell.Button1 != 0:
			h.orbitClick(snap, world)
		case pressed&tcell.Button3 != 0:
			h.tool.Cancel()
		case h.tool.Active():
			// Errors surface through the tool state on the next frame
			_, _ = h.tool.PreviewAt(snap, world)
		}
		return
	}

	switch {
	case pressed&tcell.Button1 != 0:
		h.dragging = true
		h.dragStart = world
	case released&tcell.Button1 != 0 && h.dragging:
		h.dragging = false
		vel := vmath.Scale(vmath.Sub(world, h.dragStart), parameter.DragVelocityScale)
		h.push(event.CmdAddBody, &event.AddBodyPayload{Pos: h.dragStart, Vel: vel, Mass: h.bodyMass})
	case pressed&tcell.Button3 != 0:
		h.push(event.CmdToggleBlackHoleAt, &event.PointPayload{Pos: world})
	}
}

func (h *Handler) orbitClick(snap *engine.Snapshot, world vmath.Vec) {
	if !h.tool.Active() {
		h.tool.Click1(snap, world)
		return
	}
	sol, err := h.tool.Click2(snap, world)
	if err != nil {
		h.notify("orbit not placed: %v", err)
		return
	}
	h.notify("orbit placed: a %.1f, e %.2f, T %.2f", sol.SemiMajorAxis, sol.Eccentricity, sol.Period)
}

func (h *Handler) cursorWorld(snap *engine.Snapshot) (vmath.Vec, bool) {
	if !h.hasCursor {
		return vmath.Vec{}, false
	}
	return snap.Camera.ScreenToWorld(h.cursor), true
}

func (h *Handler) handleIntent(intent Intent, snap *engine.Snapshot) Result {
	cfg := snap.Config

	switch intent {
	case IntentQuit:
		return Result{Quit: true}

	case IntentEscape:
		if h.tool.Active() {
			h.tool.Cancel()
		} else if h.toolMode {
			h.toolMode = false
		}

	case IntentToggleMute:
		if h.actions.ToggleMute != nil {
			if h.actions.ToggleMute() {
				h.notify("sound muted")
			} else {
				h.notify("sound on")
			}
		}
	case IntentToggleHelp:
		call(h.actions.ToggleHelp)
	case IntentToggleTrails:
		call(h.actions.ToggleTrails)
	case IntentToggleOrbitPaths:
		call(h.actions.ToggleOrbitPaths)

	case IntentTogglePause:
		h.push(event.CmdTogglePause, nil)
	case IntentReset:
		h.tool.Cancel()
		h.selected = 0
		h.push(event.CmdReset, nil)
	case IntentGravityUp:
		h.push(event.CmdSetGravity, &event.ValuePayload{Value: parameter.GravityStep})
	case IntentGravityDown:
		h.push(event.CmdSetGravity, &event.ValuePayload{Value: -parameter.GravityStep})
	case IntentInvertGravity:
		h.push(event.CmdSetInvertGravity, &event.TogglePayload{Enabled: !cfg.InvertGravity})
	case IntentToggleMerge:
		h.push(event.CmdSetMergeMode, &event.TogglePayload{Enabled: cfg.Collision != core.CollisionMerge})
	case IntentToggleRepel:
		h.push(event.CmdSetRepelMode, &event.TogglePayload{Enabled: cfg.Collision != core.CollisionRepel})
	case IntentCycleBounds:
		h.push(event.CmdCycleBoundsMode, nil)
	case IntentToggleZoomBounds:
		h.push(event.CmdSetZoomBounds, &event.TogglePayload{Enabled: !cfg.ZoomBounds})
	case IntentToggleForceMethod:
		method := core.ForceBarnesHut
		if cfg.ForceMethod == core.ForceBarnesHut {
			method = core.ForceDirect
		}
		h.push(event.CmdSetForceMethod, &event.ForceMethodPayload{Method: method})
	case IntentSpeedUp, IntentSlowDown:
		scale := cfg.TimeScale * parameter.TimeScaleStep
		if intent == IntentSlowDown {
			scale = cfg.TimeScale / parameter.TimeScaleStep
		}
		scale = vmath.Clamp(scale, parameter.MinTimeScale, parameter.MaxTimeScale)
		h.push(event.CmdSetTimeScale, &event.ValuePayload{Value: scale})
	case IntentBlackHole:
		if p, ok := h.cursorWorld(snap); ok {
			h.push(event.CmdToggleBlackHoleAt, &event.PointPayload{Pos: p})
		} else {
			h.push(event.CmdToggleBlackHoleAt, &event.PointPayload{Pos: vmath.BoxCenter(snap.Camera.VisibleBox())})
		}

	case IntentPanLeft:
		h.pan(snap, vmath.V(-parameter.PanStep, 0))
	case IntentPanRight:
		h.pan(snap, vmath.V(parameter.PanStep, 0))
	case IntentPanUp:
		h.pan(snap, vmath.V(0, -parameter.PanStep))
	case IntentPanDown:
		h.pan(snap, vmath.V(0, parameter.PanStep))
	case IntentZoomIn, IntentZoomOut:
		anchor := vmath.Scale(snap.Camera.Viewport, 0.5)
		if h.hasCursor {
			anchor = h.cursor
		}
		factor := parameter.ZoomStep
		if intent == IntentZoomOut {
			factor = 1 / parameter.ZoomStep
		}
		h.zoom(snap, anchor, factor)
	case IntentResetView:
		h.push(event.CmdResetView, nil)
	case IntentFollow:
		h.follow(snap)

	case IntentOrbitTool:
		h.toolMode = !h.toolMode
		if !h.toolMode {
			h.tool.Cancel()
		}
	case IntentOrbitDirection:
		h.tool.SetClockwise(!h.tool.Clockwise())
	case IntentEccentricityUp, IntentEccentricityDown:
		e := h.tool.Eccentricity() + parameter.EccentricityStep
		if intent == IntentEccentricityDown {
			e = h.tool.Eccentricity() - parameter.EccentricityStep
		}
		e = vmath.Clamp(e, 0, parameter.MaxOrbitEccentricity)
		if err := h.tool.SetEccentricity(e); err != nil {
			h.notify("%v", err)
		}
	case IntentNextOrbit:
		h.selectNext(snap)
	case IntentTrackOrbit:
		h.orbitAction(snap, event.OrbitTrack)
	case IntentOrbitInfo:
		h.orbitAction(snap, event.OrbitInfo)
	case IntentDeleteOrbit:
		h.orbitAction(snap, event.OrbitDelete)
	}
	return Result{}
}

func call(f func()) {
	if f != nil {
		f()
	}
}

func (h *Handler) pan(snap *engine.Snapshot, delta vmath.Vec) {
	if snap.Config.ViewLocked() {
		h.notify("%v", engine.ErrViewLocked)
		return
	}
	h.push(event.CmdPan, &event.PanPayload{Delta: delta})
}

func (h *Handler) zoom(snap *engine.Snapshot, anchor vmath.Vec, factor float64) {
	if snap.Config.ViewLocked() {
		h.notify("%v", engine.ErrViewLocked)
		return
	}
	h.push(event.CmdZoom, &event.ZoomPayload{Anchor: anchor, Factor: factor})
}

// follow tracks the body under the cursor; with nothing there it stops tracking
func (h *Handler) follow(snap *engine.Snapshot) {
	var id core.BodyID
	if p, ok := h.cursorWorld(snap); ok {
		slack := snap.Camera.WorldLength(parameter.PickRadiusMin)
		if b, ok := snap.BodyAt(p, slack); ok {
			id = b.ID
		}
	}
	h.push(event.CmdTrackBody, &event.BodyRefPayload{ID: id})
}

// selectNext cycles the orbit selection in list order
func (h *Handler) selectNext(snap *engine.Snapshot) {
	if len(snap.Orbits) == 0 {
		h.selected = 0
		h.notify("no orbits")
		return
	}
	next := snap.Orbits[0].Spec.ID
	for i, o := range snap.Orbits {
		if o.Spec.ID == h.selected && i+1 < len(snap.Orbits) {
			next = snap.Orbits[i+1].Spec.ID
			break
		}
	}
	h.selected = next
	h.notify("orbit #%d selected", next)
}

func (h *Handler) orbitAction(snap *engine.Snapshot, action event.OrbitAction) {
	if !h.selectionLive(snap) {
		h.selectNext(snap)
		if h.selected == 0 {
			return
		}
	}
	h.push(event.CmdOrbitAction, &event.OrbitActionPayload{ID: h.selected, Action: action})
	if action == event.OrbitDelete {
		h.selected = 0
	}
}

func (h *Handler) selectionLive(snap *engine.Snapshot) bool {
	for _, o := range snap.Orbits {
		if o.Spec.ID == h.selected {
			return true
		}
	}
	return false
}

// Preview returns the tool state for the render context
// active is true while clicks drive the orbit tool
func (h *Handler) Preview() (active bool, sol *orbit.Solution, err error) {
	if !h.toolMode {
		return false, nil, nil
	}
	if s, ok := h.tool.Current(); ok {
		return true, &s, nil
	}
	if h.tool.Active() {
		return true, nil, h.tool.Err()
	}
	return true, nil, nil
}
