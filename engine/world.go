package engine

import (
	"fmt"
	"log"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

// World owns the body arena, orbit registry, camera and configuration
// Bodies are keyed by stable IDs and always iterated in ascending ID order
// All mutation happens on the tick goroutine; other goroutines push commands and read snapshots
type World struct {
	mu sync.RWMutex

	config Config
	camera Camera

	bodies map[core.BodyID]*core.Body
	order  []core.BodyID // Ascending, includes bodies killed this tick until swept

	orbits     map[core.OrbitID]*core.OrbitSpec
	orbitOrder []core.OrbitID

	nextBodyID  core.BodyID
	nextOrbitID core.OrbitID

	commands *event.CommandQueue
	systems  []System

	tick     uint64
	simTime  float64
	notices  []event.Notice
	infoShow Target // Target whose live info is included in snapshots
}

// NewWorld creates an empty world; cfg must validate
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world config: %w", err)
	}
	w := &World{
		config:      cfg,
		bodies:      make(map[core.BodyID]*core.Body),
		orbits:      make(map[core.OrbitID]*core.OrbitSpec),
		nextBodyID:  1,
		nextOrbitID: 1,
		commands:    event.NewCommandQueue(),
	}
	w.camera = NewCamera(vmath.V(cfg.WorldWidth, cfg.WorldHeight), w.fixedExtent())
	return w, nil
}

// Commands returns the queue producers push into
func (w *World) Commands() *event.CommandQueue {
	return w.commands
}

// Push queues a command for the next tick boundary
func (w *World) Push(t event.CommandType, payload any) {
	w.commands.Push(event.Command{Type: t, Payload: payload})
}

// AddSystem adds a system and keeps the pipeline sorted by priority
func (w *World) AddSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.systems)
}

// --- Accessors used by systems during a tick ---

// Config returns a copy of the current configuration
func (w *World) Config() Config { return w.config }

// Camera returns the camera for in-tick mutation
func (w *World) Camera() *Camera { return &w.camera }

// TickCount returns the number of simulated steps
func (w *World) TickCount() uint64 { return w.tick }

// Bodies returns the arena in ascending ID order, including bodies killed earlier in this tick
// Callers must check Alive
func (w *World) Bodies() []*core.Body {
	out := make([]*core.Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.bodies[id])
	}
	return out
}

// Body returns a body by ID, dead or alive, until it is swept
func (w *World) Body(id core.BodyID) (*core.Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// BodyCount returns the number of bodies in the arena
func (w *World) BodyCount() int { return len(w.order) }

// Orbits returns registered orbit specs in ascending ID order
func (w *World) Orbits() []*core.OrbitSpec {
	out := make([]*core.OrbitSpec, 0, len(w.orbitOrder))
	for _, id := range w.orbitOrder {
		out = append(out, w.orbits[id])
	}
	return out
}

// Orbit returns an orbit spec by ID
func (w *World) Orbit(id core.OrbitID) (*core.OrbitSpec, bool) {
	o, ok := w.orbits[id]
	return o, ok
}

// Extent returns the rectangle bounds are enforced against
// With zoom bounds it is the camera's visible area, otherwise the fixed world rectangle
func (w *World) Extent() vmath.Box {
	if w.config.ZoomBounds {
		return w.camera.VisibleBox()
	}
	return w.fixedExtent()
}

func (w *World) fixedExtent() vmath.Box {
	return vmath.NewBox(vmath.Vec{}, w.config.WorldWidth, w.config.WorldHeight)
}

// Notify records a tick outcome for audio and telemetry consumers
func (w *World) Notify(n event.Notice) {
	n.Tick = w.tick
	w.notices = append(w.notices, n)
}

// Resolve returns the world position of a camera target, false when it no longer exists
func (w *World) Resolve(t Target) (vmath.Vec, bool) {
	switch t.Kind {
	case TargetBody:
		if b, ok := w.bodies[t.Body]; ok && b.Alive {
			return b.Pos, true
		}
	case TargetOrbit:
		if o, ok := w.orbits[t.Orbit]; ok {
			if b, ok := w.bodies[o.BodyID]; ok && b.Alive {
				return b.Pos, true
			}
		}
	}
	return vmath.Vec{}, false
}

// --- Arena mutation ---

// insertBody assigns the next ID and adds b to the arena
func (w *World) insertBody(b core.Body) (core.BodyID, error) {
	if !(b.Mass > 0) || math.IsInf(b.Mass, 0) || !vmath.IsFinite(b.Pos) || !vmath.IsFinite(b.Vel) {
		return 0, fmt.Errorf("%w: mass=%g pos=%v vel=%v", ErrInvalidBody, b.Mass, b.Pos, b.Vel)
	}
	if len(w.order) >= parameter.MaxBodies {
		return 0, fmt.Errorf("%w: %d bodies", ErrArenaFull, len(w.order))
	}

	id := w.nextBodyID
	w.nextBodyID++

	b.ID = id
	b.Alive = true
	b.Trail = core.NewTrail(w.config.TrailLength)
	if b.Color == (core.RGB{}) {
		b.Color = core.PaletteColor(id)
	}
	if b.BlackHole {
		b.Color = core.RGBBlackHole
	}
	b.UpdateRadius()

	w.bodies[id] = &b
	// IDs are monotonic so appending keeps order ascending
	w.order = append(w.order, id)
	w.Notify(event.Notice{Type: event.NoticeSpawned, Body: id, Pos: b.Pos})
	return id, nil
}

// removeBody deletes a body immediately
func (w *World) removeBody(id core.BodyID) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	b.Kill()
	delete(w.bodies, id)
	if i, found := slices.BinarySearch(w.order, id); found {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return true
}

func (w *World) insertOrbit(o core.OrbitSpec) core.OrbitID {
	id := w.nextOrbitID
	w.nextOrbitID++
	o.ID = id
	w.orbits[id] = &o
	w.orbitOrder = append(w.orbitOrder, id)
	return id
}

// RemoveOrbit unregisters an orbit spec, leaving its body alone
func (w *World) RemoveOrbit(id core.OrbitID) bool {
	if _, ok := w.orbits[id]; !ok {
		return false
	}
	delete(w.orbits, id)
	if i, found := slices.BinarySearch(w.orbitOrder, id); found {
		w.orbitOrder = slices.Delete(w.orbitOrder, i, i+1)
	}
	if w.infoShow.Kind == TargetOrbit && w.infoShow.Orbit == id {
		w.infoShow = Target{}
	}
	return true
}

// Sweep removes dead bodies and prunes orbit specs whose body is gone
// Returns the number of bodies removed
func (w *World) Sweep() int {
	kept := w.order[:0]
	removed := 0
	for _, id := range w.order {
		if w.bodies[id].Alive {
			kept = append(kept, id)
			continue
		}
		delete(w.bodies, id)
		removed++
	}
	w.order = kept

	for _, id := range slices.Clone(w.orbitOrder) {
		if _, ok := w.bodies[w.orbits[id].BodyID]; !ok {
			w.RemoveOrbit(id)
		}
	}
	if w.infoShow.Kind == TargetBody {
		if _, ok := w.bodies[w.infoShow.Body]; !ok {
			w.infoShow = Target{}
		}
	}
	return removed
}

// clear drops every body and orbit; IDs keep counting so they are never reused
func (w *World) clear() {
	clear(w.bodies)
	clear(w.orbits)
	w.order = w.order[:0]
	w.orbitOrder = w.orbitOrder[:0]
	w.infoShow = Target{}
	w.camera.ClearTarget()
}

// resetView fits the fixed extent and drops tracking
func (w *World) resetView() {
	w.camera.ClearTarget()
	w.camera.Fit(w.fixedExtent())
}

// --- Tick ---

// TickReport summarizes one call to Tick
type TickReport struct {
	Tick      uint64
	Simulated bool // False while paused
	Dt        float64
	Commands  int
	Rejected  int
	Removed   int
	Bodies    int
	Notices   []event.Notice
	Elapsed   time.Duration
}

// Tick drains queued commands then runs the system pipeline once
// While paused only pause-aware systems run and simulated time does not advance
func (w *World) Tick() TickReport {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	w.notices = w.notices[:0]
	report := TickReport{}

	for _, cmd := range w.commands.Consume() {
		report.Commands++
		if err := w.apply(cmd); err != nil {
			report.Rejected++
			log.Printf("command %s rejected: %v", cmd.Type, err)
			w.Notify(event.Notice{Type: event.NoticeRejected})
		}
	}

	report.Simulated = !w.config.Paused
	if report.Simulated {
		report.Dt = w.config.StepDt()
		w.tick++
		w.simTime += report.Dt
	}

	bodiesBefore := len(w.order)
	for _, s := range w.systems {
		if !report.Simulated && !runsWhilePaused(s) {
			continue
		}
		s.Update(w, report.Dt)
	}

	report.Tick = w.tick
	report.Bodies = len(w.order)
	report.Removed = max(0, bodiesBefore-report.Bodies)
	report.Notices = slices.Clone(w.notices)
	report.Elapsed = time.Since(start)
	return report
}
