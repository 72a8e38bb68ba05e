package core

import "github.com/lixenwraith/gravsim/vmath"

// OrbitSpec records a user-authored orbit and the single body it spawned
// The spec lives until deleted or until its body dies
type OrbitSpec struct {
	ID       OrbitID
	CenterID BodyID    // Body the orbit was built around
	Center   vmath.Vec // Center position at commit time (focus of the ellipse)

	SemiMajorAxis float64
	Eccentricity  float64
	Orientation   float64 // Direction of periapsis from the center, radians
	Clockwise     bool
	Period        float64

	BodyID BodyID
}

// Points returns the committed ellipse polyline around the commit-time center
func (o *OrbitSpec) Points(segments int) []vmath.Vec {
	return vmath.EllipsePoints(o.Center, o.SemiMajorAxis, o.Eccentricity, o.Orientation, segments)
}
