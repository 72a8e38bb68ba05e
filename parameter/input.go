package parameter

// Interactive control steps
const (
	// TimeScaleStep is the multiplicative factor of one speed up/down action
	TimeScaleStep = 1.5

	// EccentricityStep is the orbit tool eccentricity increment
	EccentricityStep = 0.05

	// DragVelocityScale converts a drag distance in world units to a launch velocity
	DragVelocityScale = 0.5

	// MessageFrames is how many frames a transient HUD message stays visible
	MessageFrames = 150
)
