package core

import "github.com/lixenwraith/gravsim/vmath"

// Trail is a fixed-capacity ring of recent positions, oldest evicted first
// Zero capacity disables recording
type Trail struct {
	points []vmath.Vec
	head   int // Index of oldest point
	count  int
}

// NewTrail creates a trail holding at most capacity points
func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{points: make([]vmath.Vec, capacity)}
}

// Cap returns capacity
func (t *Trail) Cap() int { return len(t.points) }

// Len returns number of stored points
func (t *Trail) Len() int { return t.count }

// Push appends p, evicting the oldest point when full
func (t *Trail) Push(p vmath.Vec) {
	n := len(t.points)
	if n == 0 {
		return
	}
	if t.count < n {
		t.points[(t.head+t.count)%n] = p
		t.count++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % n
}

// At returns the i-th point, 0 = oldest
func (t *Trail) At(i int) vmath.Vec {
	return t.points[(t.head+i)%len(t.points)]
}

// Last returns the most recent point
func (t *Trail) Last() (vmath.Vec, bool) {
	if t.count == 0 {
		return vmath.Vec{}, false
	}
	return t.At(t.count - 1), true
}

// Points returns a copy ordered oldest to newest
func (t *Trail) Points() []vmath.Vec {
	out := make([]vmath.Vec, t.count)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Clear drops all points, keeping capacity
func (t *Trail) Clear() {
	t.head = 0
	t.count = 0
}

// Resize changes capacity keeping the newest points
func (t *Trail) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	if capacity == len(t.points) {
		return
	}
	pts := t.Points()
	if len(pts) > capacity {
		pts = pts[len(pts)-capacity:]
	}
	t.points = make([]vmath.Vec, capacity)
	copy(t.points, pts)
	t.head = 0
	t.count = len(pts)
}

// Segments splits the trail into polylines wherever consecutive points are farther apart than jump
// Portal wraps produce such jumps; renderers draw each segment separately
// Segments with fewer than two points are dropped
func (t *Trail) Segments(jump float64) [][]vmath.Vec {
	if t.count < 2 {
		return nil
	}
	jumpSq := jump * jump
	var segments [][]vmath.Vec
	current := []vmath.Vec{t.At(0)}
	for i := 1; i < t.count; i++ {
		p := t.At(i)
		if jump > 0 && vmath.DistanceSq(p, current[len(current)-1]) > jumpSq {
			if len(current) > 1 {
				segments = append(segments, current)
			}
			current = []vmath.Vec{p}
			continue
		}
		current = append(current, p)
	}
	if len(current) > 1 {
		segments = append(segments, current)
	}
	return segments
}
