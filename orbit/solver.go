// Package orbit derives insertion velocities for bodies placed on Keplerian orbits
// and implements the two-click orbit construction tool.
package orbit

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
	"github.com/lixenwraith/gravsim/vmath"
)

// Solution is a previewed orbit: where the body starts, how fast it moves, and the path it will trace
// The radius point is periapsis; e = 0 gives a circle
type Solution struct {
	CenterID   core.BodyID
	Center     vmath.Vec
	CenterVel  vmath.Vec
	CenterMass float64

	Pos    vmath.Vec // Spawn position
	Vel    vmath.Vec // Absolute velocity, center velocity included
	Radius float64

	SemiMajorAxis float64
	Eccentricity  float64
	Orientation   float64
	Clockwise     bool
	Period        float64

	Path []vmath.Vec // Ellipse polyline around the center, for live drawing
}

// Preview solves the insertion velocity for a body at radiusPoint orbiting center
// Speed is sqrt(G·M(1+e)/r), tangential, counter-clockwise unless clockwise is set
// baseVel is the center's own velocity and is added so orbits around moving bodies stay bound
// Fails with ErrInvalidOrbitGeometry for vanishing G·M or radius, or e outside [0, 1)
func Preview(center, radiusPoint, baseVel vmath.Vec, g, centerMass, e float64, clockwise bool) (Solution, error) {
	rel := vmath.Sub(radiusPoint, center)
	r := vmath.Magnitude(rel)

	switch {
	case !(centerMass > parameter.OrbitMinCenterMass):
		return Solution{}, fmt.Errorf("%w: center mass %g", engine.ErrInvalidOrbitGeometry, centerMass)
	case !(g > 0):
		return Solution{}, fmt.Errorf("%w: gravity %g does not bind", engine.ErrInvalidOrbitGeometry, g)
	case !(r > parameter.OrbitMinRadius) || math.IsInf(r, 0):
		return Solution{}, fmt.Errorf("%w: radius %g", engine.ErrInvalidOrbitGeometry, r)
	case !(e >= 0 && e < 1):
		return Solution{}, fmt.Errorf("%w: eccentricity %g", engine.ErrInvalidOrbitGeometry, e)
	}

	a := r / (1 - e)
	orientation := vmath.Angle(rel)
	vel := vmath.Add(baseVel, physics.OrbitalInsert(rel, g, centerMass, e, clockwise))

	return Solution{
		Center:        center,
		CenterVel:     baseVel,
		CenterMass:    centerMass,
		Pos:           radiusPoint,
		Vel:           vel,
		Radius:        r,
		SemiMajorAxis: a,
		Eccentricity:  e,
		Orientation:   orientation,
		Clockwise:     clockwise,
		Period:        physics.Period(g, centerMass, a),
		Path:          vmath.EllipsePoints(center, a, e, orientation, parameter.OrbitPreviewSegments),
	}, nil
}

// Commit materializes a solution into a body of the given mass and its orbit spec
// IDs are assigned by the world when the spawn command is applied
func Commit(s Solution, mass float64) (core.Body, core.OrbitSpec, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return core.Body{}, core.OrbitSpec{}, fmt.Errorf("%w: body mass %g", engine.ErrInvalidBody, mass)
	}
	if !(s.SemiMajorAxis > 0) {
		return core.Body{}, core.OrbitSpec{}, fmt.Errorf("%w: empty solution", engine.ErrInvalidOrbitGeometry)
	}

	body := core.Body{
		Pos:   s.Pos,
		Vel:   s.Vel,
		Mass:  mass,
		Alive: true,
	}
	body.UpdateRadius()

	spec := core.OrbitSpec{
		CenterID:      s.CenterID,
		Center:        s.Center,
		SemiMajorAxis: s.SemiMajorAxis,
		Eccentricity:  s.Eccentricity,
		Orientation:   s.Orientation,
		Clockwise:     s.Clockwise,
		Period:        s.Period,
	}
	return body, spec, nil
}
