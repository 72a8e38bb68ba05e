package parameter

// Orbit tool defaults
const (
	// DefaultOrbitBodyMass is the mass of bodies spawned by the orbit tool
	DefaultOrbitBodyMass = 10.0

	// OrbitMinRadius is the smallest center-to-body distance accepted as an orbit
	OrbitMinRadius = 1e-6

	// OrbitMinCenterMass is the smallest center mass accepted as an attractor
	OrbitMinCenterMass = 1e-9

	// MaxOrbitEccentricity keeps previews bound (e < 1)
	MaxOrbitEccentricity = 0.95

	// OrbitPreviewSegments is the polyline resolution of previewed and committed orbits
	OrbitPreviewSegments = 64
)
