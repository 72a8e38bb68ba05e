package parameter

// System Execution Priorities (lower runs first)
// Order follows the tick phases: force, integrate, collide, bounds, trail, sweep, camera
const (
	PriorityGravity   = 10
	PriorityIntegrate = 20
	PriorityCollision = 30
	PriorityBounds    = 40
	PriorityTrail     = 45
	PriorityCleanup   = 50
	PriorityCamera    = 60
)
