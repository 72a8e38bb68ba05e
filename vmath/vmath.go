package vmath

import "math"

// Epsilon is the tolerance below which a length or mass is treated as zero
const Epsilon = 1e-9

// --- Scalars ---

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearZero reports |v| < Epsilon
func NearZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// ExpApproach returns the blend factor for exponential approach at rate over dt
// Result is in [0, 1): 0 when rate or dt is zero, tending to 1 as rate*dt grows
func ExpApproach(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// WrapAngle maps an angle into (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
