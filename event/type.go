package event

// CommandType represents the type of user command applied at the tick boundary
type CommandType int

const (
	// === Body Commands ===

	// CmdAddBody places a regular body
	// Trigger: Click, scene loader, remote client | Payload: *AddBodyPayload
	CmdAddBody CommandType = iota + 1

	// CmdRemoveBody destroys a body by ID
	// Trigger: UI delete, remote client | Payload: *BodyRefPayload
	CmdRemoveBody

	// CmdAddBlackHole places a pinned black hole of the configured mass
	// Trigger: Scene loader, remote client | Payload: *PointPayload
	CmdAddBlackHole

	// CmdToggleBlackHoleAt removes the black hole under the point or places a new one
	// Trigger: Black hole tool click | Payload: *PointPayload
	CmdToggleBlackHoleAt

	// CmdSetBlackHoleMass updates configured mass and every existing black hole
	// Trigger: Slider | Payload: *ValuePayload
	CmdSetBlackHoleMass

	// === Physics Configuration ===

	// CmdSetGravity adjusts G by a signed delta, G stays positive
	// Trigger: Gravity +/- | Payload: *ValuePayload
	CmdSetGravity CommandType = iota + 100

	// CmdSetInvertGravity flips the attraction sign
	// Trigger: Toggle | Payload: *TogglePayload
	CmdSetInvertGravity

	// CmdSetMergeMode enables merge collisions, disabling repel
	// Trigger: Toggle | Payload: *TogglePayload
	CmdSetMergeMode

	// CmdSetRepelMode enables repel collisions, disabling merge
	// Trigger: Toggle | Payload: *TogglePayload
	CmdSetRepelMode

	// CmdSetBoundsMode selects HARD/SOFT/PORTAL
	// Trigger: Selector | Payload: *BoundsModePayload
	CmdSetBoundsMode

	// CmdCycleBoundsMode advances HARD → SOFT → PORTAL
	// Trigger: Key | Payload: nil
	CmdCycleBoundsMode

	// CmdSetZoomBounds ties the simulation extent to the visible area
	// Trigger: Toggle | Payload: *TogglePayload
	CmdSetZoomBounds

	// CmdSetTrailLength resizes every trail
	// Trigger: Slider | Payload: *CountPayload
	CmdSetTrailLength

	// CmdSetTimeScale multiplies the base step
	// Trigger: Slider | Payload: *ValuePayload
	CmdSetTimeScale

	// CmdSetRestitution sets HARD wall energy retention
	// Trigger: Config, remote client | Payload: *ValuePayload
	CmdSetRestitution

	// CmdSetRepelStrength sets repel impulse per unit overlap
	// Trigger: Config, remote client | Payload: *ValuePayload
	CmdSetRepelStrength

	// CmdSetSoftening sets the gravity distance floor
	// Trigger: Config, remote client | Payload: *ValuePayload
	CmdSetSoftening

	// CmdSetForceMethod selects direct or Barnes-Hut summation
	// Trigger: Key, config | Payload: *ForceMethodPayload
	CmdSetForceMethod

	// CmdSetTheta sets the Barnes-Hut opening angle
	// Trigger: Config | Payload: *ValuePayload
	CmdSetTheta

	// CmdSetTrackingRate sets camera tracking smoothing, 0 = hard lock
	// Trigger: Config | Payload: *ValuePayload
	CmdSetTrackingRate

	// === Session ===

	// CmdSetPaused freezes or resumes physics; commands still apply while paused
	// Trigger: Pause button | Payload: *TogglePayload
	CmdSetPaused CommandType = iota + 200

	// CmdTogglePause flips the paused flag
	// Trigger: Key | Payload: nil
	CmdTogglePause

	// CmdReset clears bodies, orbits, tracking and the view
	// Trigger: Reset button | Payload: nil
	CmdReset

	// === Camera ===

	// CmdPan shifts the view by a screen-space delta
	// Trigger: Drag, arrow keys | Payload: *PanPayload
	CmdPan CommandType = iota + 300

	// CmdZoom scales the view about a screen anchor
	// Trigger: Wheel, +/- keys | Payload: *ZoomPayload
	CmdZoom

	// CmdResetView restores offset and zoom
	// Trigger: Key | Payload: nil
	CmdResetView

	// CmdResize updates the viewport size in screen units
	// Trigger: Terminal resize | Payload: *ResizePayload
	CmdResize

	// CmdTrackBody locks the camera onto a body, ID 0 clears tracking
	// Trigger: Body click, remote client | Payload: *BodyRefPayload
	CmdTrackBody

	// === Orbits ===

	// CmdSpawnOrbit materializes a committed orbit: its body and its spec
	// Trigger: Orbit tool second click | Payload: *SpawnOrbitPayload
	CmdSpawnOrbit CommandType = iota + 400

	// CmdOrbitAction applies Track, Delete or Info to an orbit
	// Trigger: Orbit list | Payload: *OrbitActionPayload
	CmdOrbitAction
)

// Command is a queued request with its typed payload
type Command struct {
	Type    CommandType
	Payload any
}

func (t CommandType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}
