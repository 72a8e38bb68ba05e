package input

import "sort"

// actionRegistry maps canonical action names to intents
// Used by the key binding loader and the help overlay
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"escape":      IntentEscape,
	"toggle_mute": IntentToggleMute,
	"toggle_help": IntentToggleHelp,

	"toggle_pause":        IntentTogglePause,
	"reset":               IntentReset,
	"gravity_up":          IntentGravityUp,
	"gravity_down":        IntentGravityDown,
	"invert_gravity":      IntentInvertGravity,
	"toggle_merge":        IntentToggleMerge,
	"toggle_repel":        IntentToggleRepel,
	"cycle_bounds":        IntentCycleBounds,
	"toggle_zoom_bounds":  IntentToggleZoomBounds,
	"toggle_force_method": IntentToggleForceMethod,
	"speed_up":            IntentSpeedUp,
	"slow_down":           IntentSlowDown,
	"black_hole":          IntentBlackHole,

	"pan_left":           IntentPanLeft,
	"pan_right":          IntentPanRight,
	"pan_up":             IntentPanUp,
	"pan_down":           IntentPanDown,
	"zoom_in":            IntentZoomIn,
	"zoom_out":           IntentZoomOut,
	"reset_view":         IntentResetView,
	"follow":             IntentFollow,
	"toggle_trails":      IntentToggleTrails,
	"toggle_orbit_paths": IntentToggleOrbitPaths,

	"orbit_tool":        IntentOrbitTool,
	"orbit_direction":   IntentOrbitDirection,
	"eccentricity_up":   IntentEccentricityUp,
	"eccentricity_down": IntentEccentricityDown,
	"next_orbit":        IntentNextOrbit,
	"track_orbit":       IntentTrackOrbit,
	"orbit_info":        IntentOrbitInfo,
	"delete_orbit":      IntentDeleteOrbit,
}

var intentNames = func() [intentCount]string {
	var names [intentCount]string
	for name, intent := range actionRegistry {
		names[intent] = name
	}
	return names
}()

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// ActionNames returns every bindable action name, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
