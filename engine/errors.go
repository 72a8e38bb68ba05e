package engine

import "errors"

var (
	// ErrInvalidOrbitGeometry reports an orbit that cannot be built: zero center mass, zero radius or unbound eccentricity
	ErrInvalidOrbitGeometry = errors.New("invalid orbit geometry")

	// ErrConfigOutOfRange reports a rejected setting; the previous value is kept
	ErrConfigOutOfRange = errors.New("config value out of range")

	// ErrUnknownBody reports a body ID that is not in the arena
	ErrUnknownBody = errors.New("unknown body")

	// ErrUnknownOrbit reports an orbit ID that is not registered
	ErrUnknownOrbit = errors.New("unknown orbit")

	// ErrInvalidBody reports a non-positive or non-finite mass or position
	ErrInvalidBody = errors.New("invalid body")

	// ErrArenaFull reports that the body limit is reached
	ErrArenaFull = errors.New("body limit reached")

	// ErrViewLocked reports pan or zoom while the view is pinned to the fixed extent
	ErrViewLocked = errors.New("view locked by bounds mode")
)
