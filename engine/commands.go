package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/vmath"
)

// apply executes one command; failures leave state unchanged
func (w *World) apply(cmd event.Command) error {
	switch cmd.Type {
	case event.CmdAddBody:
		p, err := payload[*event.AddBodyPayload](cmd)
		if err != nil {
			return err
		}
		_, err = w.insertBody(core.Body{Pos: p.Pos, Vel: p.Vel, Mass: p.Mass})
		return err

	case event.CmdRemoveBody:
		p, err := payload[*event.BodyRefPayload](cmd)
		if err != nil {
			return err
		}
		pos, ok := w.Resolve(BodyTarget(p.ID))
		if !w.removeBody(p.ID) {
			return fmt.Errorf("%w: %d", ErrUnknownBody, p.ID)
		}
		if ok {
			w.Notify(event.Notice{Type: event.NoticeRemoved, Body: p.ID, Pos: pos})
		}
		w.Sweep()
		return nil

	case event.CmdAddBlackHole:
		p, err := payload[*event.PointPayload](cmd)
		if err != nil {
			return err
		}
		return w.addBlackHole(p.Pos)

	case event.CmdToggleBlackHoleAt:
		p, err := payload[*event.PointPayload](cmd)
		if err != nil {
			return err
		}
		if id, ok := w.blackHoleAt(p.Pos); ok {
			w.removeBody(id)
			w.Notify(event.Notice{Type: event.NoticeRemoved, Body: id, Pos: p.Pos})
			w.Sweep()
			return nil
		}
		return w.addBlackHole(p.Pos)

	case event.CmdSetBlackHoleMass:
		p, err := payload[*event.ValuePayload](cmd)
		if err != nil {
			return err
		}
		if err := w.config.SetBlackHoleMass(p.Value); err != nil {
			return err
		}
		for _, b := range w.bodies {
			if b.BlackHole {
				b.Mass = p.Value
				b.UpdateRadius()
			}
		}
		return nil

	case event.CmdSetGravity:
		p, err := payload[*event.ValuePayload](cmd)
		if err != nil {
			return err
		}
		return w.config.AdjustG(p.Value)

	case event.CmdSetInvertGravity:
		p, err := payload[*event.TogglePayload](cmd)
		if err != nil {
			return err
		}
		w.config.InvertGravity = p.Enabled
		return nil

	case event.CmdSetMergeMode:
		p, err := payload[*event.TogglePayload](cmd)
		if err != nil {
			return err
		}
		w.config.SetMerge(p.Enabled)
		return nil

	case event.CmdSetRepelMode:
		p, err := payload[*event.TogglePayload](cmd)
		if err != nil {
			return err
		}
		w.config.SetRepel(p.Enabled)
		return nil

	case event.CmdSetBoundsMode:
		p, err := payload[*event.BoundsModePayload](cmd)
		if err != nil {
			return err
		}
		if err := w.config.SetBounds(p.Mode); err != nil {
			return err
		}
		w.resetView()
		return nil

	case event.CmdCycleBoundsMode:
		w.config.Bounds = w.config.Bounds.Next()
		w.resetView()
		return nil

	case event.CmdSetZoomBounds:
		p, err := payload[*event.TogglePayload](cmd)
		if err != nil {
			return err
		}
		w.config.ZoomBounds = p.Enabled
		if w.config.ViewLocked() {
			w.resetView()
		}
		return nil

	case event.CmdSetTrailLength:
		p, err := payload[*event.CountPayload](cmd)
		if err != nil {
			return err
		}
		if err := w.config.SetTrailLength(p.Value); err != nil {
			return err
		}
		for _, b := range w.bodies {
			b.Trail.Resize(p.Value)
		}
		return nil

	case event.CmdSetTimeScale:
		return w.setValue(cmd, w.config.SetTimeScale)
	case event.CmdSetRestitution:
		return w.setValue(cmd, w.config.SetRestitution)
	case event.CmdSetRepelStrength:
		return w.setValue(cmd, w.config.SetRepelStrength)
	case event.CmdSetSoftening:
		return w.setValue(cmd, w.config.SetSoftening)
	case event.CmdSetTheta:
		return w.setValue(cmd, w.config.SetTheta)
	case event.CmdSetTrackingRate:
		return w.setValue(cmd, w.config.SetTrackingRate)

	case event.CmdSetForceMethod:
		p, err := payload[*event.ForceMethodPayload](cmd)
		if err != nil {
			return err
		}
		return w.config.SetForceMethod(p.Method)

	case event.CmdSetPaused:
		p, err := payload[*event.TogglePayload](cmd)
		if err != nil {
			return err
		}
		w.config.Paused = p.Enabled
		return nil

	case event.CmdTogglePause:
		w.config.Paused = !w.config.Paused
		return nil

	case event.CmdReset:
		w.clear()
		w.resetView()
		return nil

	case event.CmdPan:
		p, err := payload[*event.PanPayload](cmd)
		if err != nil {
			return err
		}
		if w.config.ViewLocked() {
			return fmt.Errorf("pan: %w", ErrViewLocked)
		}
		if !vmath.IsFinite(p.Delta) {
			return fmt.Errorf("%w: pan delta %v", ErrConfigOutOfRange, p.Delta)
		}
		w.camera.Pan(p.Delta)
		return nil

	case event.CmdZoom:
		p, err := payload[*event.ZoomPayload](cmd)
		if err != nil {
			return err
		}
		if w.config.ViewLocked() {
			return fmt.Errorf("zoom: %w", ErrViewLocked)
		}
		if !(p.Factor > 0) || math.IsInf(p.Factor, 0) || !vmath.IsFinite(p.Anchor) {
			return fmt.Errorf("%w: zoom factor %g", ErrConfigOutOfRange, p.Factor)
		}
		w.camera.ZoomAt(p.Anchor, p.Factor)
		return nil

	case event.CmdResetView:
		w.resetView()
		return nil

	case event.CmdResize:
		p, err := payload[*event.ResizePayload](cmd)
		if err != nil {
			return err
		}
		if !(p.Width > 0 && p.Height > 0) {
			return fmt.Errorf("%w: viewport %gx%g", ErrConfigOutOfRange, p.Width, p.Height)
		}
		w.camera.Resize(vmath.V(p.Width, p.Height))
		if w.config.ViewLocked() {
			w.camera.Fit(w.fixedExtent())
		}
		return nil

	case event.CmdTrackBody:
		p, err := payload[*event.BodyRefPayload](cmd)
		if err != nil {
			return err
		}
		if p.ID == 0 {
			w.camera.ClearTarget()
			return nil
		}
		if _, ok := w.Resolve(BodyTarget(p.ID)); !ok {
			return fmt.Errorf("track: %w: %d", ErrUnknownBody, p.ID)
		}
		w.track(BodyTarget(p.ID))
		return nil

	case event.CmdSpawnOrbit:
		p, err := payload[*event.SpawnOrbitPayload](cmd)
		if err != nil {
			return err
		}
		id, err := w.insertBody(p.Body)
		if err != nil {
			return fmt.Errorf("spawn orbit: %w", err)
		}
		spec := p.Orbit
		spec.BodyID = id
		w.insertOrbit(spec)
		return nil

	case event.CmdOrbitAction:
		p, err := payload[*event.OrbitActionPayload](cmd)
		if err != nil {
			return err
		}
		return w.orbitAction(p.ID, p.Action)
	}

	return fmt.Errorf("unhandled command %s", cmd.Type)
}

// payload asserts the command carries T
func payload[T any](cmd event.Command) (T, error) {
	p, ok := cmd.Payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: unexpected payload %T", cmd.Type, cmd.Payload)
	}
	return p, nil
}

func (w *World) setValue(cmd event.Command, set func(float64) error) error {
	p, err := payload[*event.ValuePayload](cmd)
	if err != nil {
		return err
	}
	return set(p.Value)
}

func (w *World) addBlackHole(pos vmath.Vec) error {
	_, err := w.insertBody(core.Body{Pos: pos, Mass: w.config.BlackHoleMass, BlackHole: true})
	return err
}

// blackHoleAt returns the black hole whose disc contains p
func (w *World) blackHoleAt(p vmath.Vec) (core.BodyID, bool) {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Alive && b.BlackHole && vmath.CircleContains(b.Pos, b.Radius, p) {
			return id, true
		}
	}
	return 0, false
}

// track sets the camera target; a pinned view is released by switching bounds to follow the camera
func (w *World) track(t Target) {
	if w.config.ViewLocked() {
		w.config.ZoomBounds = true
	}
	w.camera.Track(t)
}

func (w *World) orbitAction(id core.OrbitID, action event.OrbitAction) error {
	o, ok := w.orbits[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOrbit, id)
	}

	switch action {
	case event.OrbitTrack:
		if w.camera.Target == OrbitTarget(id) {
			w.camera.ClearTarget()
			return nil
		}
		w.track(OrbitTarget(id))
	case event.OrbitDelete:
		bodyID := o.BodyID
		w.RemoveOrbit(id)
		if b, ok := w.bodies[bodyID]; ok {
			w.Notify(event.Notice{Type: event.NoticeRemoved, Body: bodyID, Pos: b.Pos})
			w.removeBody(bodyID)
		}
		if w.camera.Target == OrbitTarget(id) {
			w.camera.ClearTarget()
		}
	case event.OrbitInfo:
		if w.infoShow == OrbitTarget(id) {
			w.infoShow = Target{}
			return nil
		}
		w.infoShow = OrbitTarget(id)
	default:
		return fmt.Errorf("orbit %d: unknown action %d", id, action)
	}
	return nil
}
