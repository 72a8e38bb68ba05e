package input

// Intent is the semantic action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota

	// System-level intents
	IntentQuit
	IntentEscape // Cancel the orbit tool, close the help overlay
	IntentToggleMute
	IntentToggleHelp

	// Simulation
	IntentTogglePause
	IntentReset
	IntentGravityUp
	IntentGravityDown
	IntentInvertGravity
	IntentToggleMerge
	IntentToggleRepel
	IntentCycleBounds
	IntentToggleZoomBounds
	IntentToggleForceMethod
	IntentSpeedUp
	IntentSlowDown
	IntentBlackHole // Toggle a black hole under the cursor

	// View
	IntentPanLeft
	IntentPanRight
	IntentPanUp
	IntentPanDown
	IntentZoomIn
	IntentZoomOut
	IntentResetView
	IntentFollow // Track the body under the cursor, or stop tracking
	IntentToggleTrails
	IntentToggleOrbitPaths

	// Orbit tool and orbit list
	IntentOrbitTool
	IntentOrbitDirection
	IntentEccentricityUp
	IntentEccentricityDown
	IntentNextOrbit
	IntentTrackOrbit
	IntentOrbitInfo
	IntentDeleteOrbit

	intentCount
)
