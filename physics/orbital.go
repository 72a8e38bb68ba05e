package physics

import (
	"math"

	"github.com/lixenwraith/gravsim/vmath"
)

// CircularSpeed returns tangential speed for a circular orbit: v = sqrt(G·M/r)
func CircularSpeed(g, mass, radius float64) float64 {
	if radius <= 0 || g*mass <= 0 {
		return 0
	}
	return math.Sqrt(g * mass / radius)
}

// PeriapsisSpeed returns the vis-viva speed at periapsis distance r for eccentricity e
// Reduces to CircularSpeed at e = 0
func PeriapsisSpeed(g, mass, r, e float64) float64 {
	if r <= 0 || g*mass <= 0 {
		return 0
	}
	return math.Sqrt(g * mass * (1 + e) / r)
}

// VisViva returns orbital speed at distance r on an orbit of semi-major axis a
func VisViva(g, mass, r, a float64) float64 {
	v2 := g * mass * (2/r - 1/a)
	if v2 <= 0 {
		return 0
	}
	return math.Sqrt(v2)
}

// Period returns the orbital period 2π·sqrt(a³/GM)
func Period(g, mass, a float64) float64 {
	if g*mass <= 0 || a <= 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(a*a*a/(g*mass))
}

// OrbitalInsert returns velocity (relative to the center) for orbit insertion at offset rel
// rel is the periapsis position relative to the center, e the eccentricity
// Counter-clockwise unless clockwise is set
func OrbitalInsert(rel vmath.Vec, g, mass, e float64, clockwise bool) vmath.Vec {
	r := vmath.Magnitude(rel)
	if r == 0 {
		return vmath.Vec{}
	}

	speed := PeriapsisSpeed(g, mass, r, e)

	// Tangent is perpendicular to radius
	t := vmath.Normalize(vmath.Perpendicular(rel))
	if clockwise {
		t = vmath.Scale(t, -1)
	}
	return vmath.Scale(t, speed)
}
