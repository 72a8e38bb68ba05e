package parameter

// Gravity
const (
	// DefaultG is the gravitational constant, inflated for visible motion at interactive scales
	DefaultG = 0.667430

	// MinG and MaxG bound SetGravity adjustments
	MinG = 1e-6
	MaxG = 1e6

	// GravityStep is the increment applied by a single gravity +/- action
	GravityStep = 0.1

	// DefaultSoftening is the distance floor in world units for pairwise gravity
	// Equivalent to clamping r² at 100
	DefaultSoftening = 10.0

	// MinSoftening keeps the floor strictly positive
	MinSoftening = 1e-6
)

// Barnes-Hut
const (
	// DefaultTheta is the opening angle for the tree approximation
	DefaultTheta = 0.5
)

// Time
const (
	// DefaultDt is the base step in seconds
	DefaultDt = 1.0 / 60.0

	// MaxDt bounds a single step to keep integration stable
	MaxDt = 1.0

	// DefaultTimeScale multiplies Dt
	DefaultTimeScale = 1.0
	MinTimeScale     = 0.1
	MaxTimeScale     = 20.0
)

// Bodies
const (
	// DefaultBodyMass is used by add-body actions without an explicit mass
	DefaultBodyMass = 1000.0

	// DefaultBlackHoleMass is the mass of newly placed black holes
	DefaultBlackHoleMass = 5000.0
	MaxBlackHoleMass     = 1e9

	// DefaultTrailLength is the number of positions kept per body
	DefaultTrailLength = 300
	MaxTrailLength     = 1000
)

// Collision response
const (
	// DefaultRestitution scales the reflected velocity on HARD walls (1 = perfectly elastic)
	DefaultRestitution = 1.0

	// DefaultRepelStrength is the impulse per unit of overlap depth in repel mode
	DefaultRepelStrength = 500.0
	MaxRepelStrength     = 1e6
)
