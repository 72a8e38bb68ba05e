package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is the 2D vector used by every package, aliased to the gonum spatial type
type Vec = r2.Vec

// V constructs a vector from components
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns a + b
func Add(a, b Vec) Vec { return r2.Add(a, b) }

// Sub returns a - b
func Sub(a, b Vec) Vec { return r2.Sub(a, b) }

// Scale returns v * f
func Scale(v Vec, f float64) Vec { return r2.Scale(f, v) }

// Dot returns a.X*b.X + a.Y*b.Y
func Dot(a, b Vec) float64 { return r2.Dot(a, b) }

// Cross returns the z component of the 3D cross product a × b
func Cross(a, b Vec) float64 { return r2.Cross(a, b) }

// Magnitude returns Euclidean length
func Magnitude(v Vec) float64 { return r2.Norm(v) }

// MagnitudeSq returns squared length without sqrt
func MagnitudeSq(v Vec) float64 { return r2.Norm2(v) }

// Distance returns |a - b|
func Distance(a, b Vec) float64 { return r2.Norm(r2.Sub(a, b)) }

// DistanceSq returns |a - b|² without sqrt
func DistanceSq(a, b Vec) float64 { return r2.Norm2(r2.Sub(a, b)) }

// Normalize returns unit vector, zero-safe
func Normalize(v Vec) Vec {
	mag := r2.Norm(v)
	if mag == 0 {
		return Vec{}
	}
	return Vec{X: v.X / mag, Y: v.Y / mag}
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v Vec) Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by angle radians counter-clockwise around the origin
func Rotate(v Vec, angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Angle returns the direction of v in radians, (-π, π]
func Angle(v Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// FromPolar returns the vector with given length and direction
func FromPolar(length, angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{X: length * cos, Y: length * sin}
}

// ClampMagnitude limits vector to maxMag while preserving direction
func ClampMagnitude(v Vec, maxMag float64) Vec {
	mag := r2.Norm(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return r2.Scale(maxMag/mag, v)
}

// Lerp returns a + (b - a) * t
func Lerp(a, b Vec, t float64) Vec {
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(vel, normal Vec) Vec {
	dot2 := 2 * r2.Dot(vel, normal)
	return Vec{X: vel.X - dot2*normal.X, Y: vel.Y - dot2*normal.Y}
}

// WeightedAverage returns (wa*a + wb*b) / (wa + wb), or a when the weights sum to zero
func WeightedAverage(a Vec, wa float64, b Vec, wb float64) Vec {
	sum := wa + wb
	if sum == 0 {
		return a
	}
	return Vec{X: (a.X*wa + b.X*wb) / sum, Y: (a.Y*wa + b.Y*wb) / sum}
}

// IsFinite reports whether both components are neither NaN nor Inf
func IsFinite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ApproxEqual reports component-wise equality within tol
func ApproxEqual(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
