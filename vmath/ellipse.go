package vmath

import "math"

// Ellipse utilities for orbit previews
// Conic is described focus-first: focus at the attracting center, periapsis along orientation

// EllipseRadius returns focal distance at true anomaly nu for semi-major axis a and eccentricity e
// r(ν) = a(1 - e²) / (1 + e cos ν)
func EllipseRadius(a, e, nu float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(nu))
}

// EllipsePoint returns the world point at true anomaly nu on the focus-centered ellipse
func EllipsePoint(focus Vec, a, e, orientation, nu float64) Vec {
	r := EllipseRadius(a, e, nu)
	return Add(focus, FromPolar(r, orientation+nu))
}

// EllipsePoints samples a closed polyline of segments+1 points (first == last)
// Returns nil for degenerate input
func EllipsePoints(focus Vec, a, e, orientation float64, segments int) []Vec {
	if segments < 3 || a <= 0 || e < 0 || e >= 1 {
		return nil
	}
	pts := make([]Vec, segments+1)
	for i := 0; i <= segments; i++ {
		nu := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = EllipsePoint(focus, a, e, orientation, nu)
	}
	return pts
}

// EllipseSemiMinor returns b = a·sqrt(1 - e²)
func EllipseSemiMinor(a, e float64) float64 {
	return a * math.Sqrt(1-e*e)
}

// EllipseCenter returns the geometric center of a focus-centered ellipse
// Center sits a·e behind the focus, away from periapsis
func EllipseCenter(focus Vec, a, e, orientation float64) Vec {
	return Sub(focus, FromPolar(a*e, orientation))
}

// CircleContains returns true if point is inside or on circle of given radius
func CircleContains(center Vec, radius float64, p Vec) bool {
	return DistanceSq(center, p) <= radius*radius
}
