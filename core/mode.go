package core

import (
	"fmt"
	"strings"
)

// BoundsMode selects how the simulation extent treats bodies leaving it
type BoundsMode uint8

const (
	BoundsHard   BoundsMode = iota // Reflect off walls
	BoundsSoft                     // Despawn on exit
	BoundsPortal                   // Wrap to the opposite edge
	boundsModeCount
)

var boundsModeNames = [...]string{"hard", "soft", "portal"}

func (m BoundsMode) String() string {
	if m < boundsModeCount {
		return boundsModeNames[m]
	}
	return fmt.Sprintf("BoundsMode(%d)", m)
}

// Next returns the following mode in HARD → SOFT → PORTAL → HARD order
func (m BoundsMode) Next() BoundsMode {
	return (m + 1) % boundsModeCount
}

// Valid reports whether m names a known mode
func (m BoundsMode) Valid() bool { return m < boundsModeCount }

func (m BoundsMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid bounds mode %d", m)
	}
	return []byte(m.String()), nil
}

func (m *BoundsMode) UnmarshalText(text []byte) error {
	v, err := parseName(string(text), boundsModeNames[:])
	if err != nil {
		return fmt.Errorf("bounds mode: %w", err)
	}
	*m = BoundsMode(v)
	return nil
}

// CollisionMode is the single tagged collision response; merge and repel never coexist
type CollisionMode uint8

const (
	CollisionNone CollisionMode = iota
	CollisionMerge
	CollisionRepel
	collisionModeCount
)

var collisionModeNames = [...]string{"none", "merge", "repel"}

func (m CollisionMode) String() string {
	if m < collisionModeCount {
		return collisionModeNames[m]
	}
	return fmt.Sprintf("CollisionMode(%d)", m)
}

func (m CollisionMode) Valid() bool { return m < collisionModeCount }

func (m CollisionMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid collision mode %d", m)
	}
	return []byte(m.String()), nil
}

func (m *CollisionMode) UnmarshalText(text []byte) error {
	v, err := parseName(string(text), collisionModeNames[:])
	if err != nil {
		return fmt.Errorf("collision mode: %w", err)
	}
	*m = CollisionMode(v)
	return nil
}

// ForceMethod selects the gravity solver
type ForceMethod uint8

const (
	ForceDirect    ForceMethod = iota // Exact pairwise summation
	ForceBarnesHut                    // Quadtree approximation
	forceMethodCount
)

var forceMethodNames = [...]string{"direct", "barneshut"}

func (m ForceMethod) String() string {
	if m < forceMethodCount {
		return forceMethodNames[m]
	}
	return fmt.Sprintf("ForceMethod(%d)", m)
}

func (m ForceMethod) Valid() bool { return m < forceMethodCount }

func (m ForceMethod) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid force method %d", m)
	}
	return []byte(m.String()), nil
}

func (m *ForceMethod) UnmarshalText(text []byte) error {
	v, err := parseName(string(text), forceMethodNames[:])
	if err != nil {
		return fmt.Errorf("force method: %w", err)
	}
	*m = ForceMethod(v)
	return nil
}

func parseName(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q (want one of %s)", s, strings.Join(names, ", "))
}
