package parameter

// Camera zoom and tracking configuration
const (
	// ZoomStep is the multiplicative factor of one zoom-in action
	ZoomStep = 1.1

	// MinZoom and MaxZoom clamp the camera scale
	MinZoom = 0.1
	MaxZoom = 50.0

	// DefaultTrackingRate is the exponential approach rate in 1/s; 0 locks hard onto the target
	DefaultTrackingRate = 0.0
	MaxTrackingRate     = 100.0

	// PanStep is the pan distance in screen units per pan action
	PanStep = 40.0

	// PickRadiusMin is the minimum screen-space pick radius for selecting bodies by click
	PickRadiusMin = 4.0
)
