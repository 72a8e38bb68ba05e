package physics

import (
	"errors"
	"math"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// quadMaxDepth bounds subdivision; bodies closer than the root size / 2^depth share a leaf
const quadMaxDepth = 24

var errNonFinite = errors.New("barnes-hut: non-finite body position")

// quadNode is a square cell of the tree
// Mass and center of mass aggregate every body below the node
type quadNode struct {
	box      vmath.Box
	mass     float64
	weighted vmath.Vec // Σ m·p, divided by mass once the tree is built
	com      vmath.Vec
	bodies   []*core.Body // Leaf occupants, empty for internal nodes
	children [4]*quadNode
	internal bool
}

// quadrant returns the child index of p relative to the cell midpoint
// Points on the midpoint go to the high side
func (n *quadNode) quadrant(p vmath.Vec) int {
	mid := vmath.BoxCenter(n.box)
	q := 0
	if p.X >= mid.X {
		q |= 1
	}
	if p.Y >= mid.Y {
		q |= 2
	}
	return q
}

func (n *quadNode) childBox(q int) vmath.Box {
	mid := vmath.BoxCenter(n.box)
	b := vmath.Box{Min: n.box.Min, Max: mid}
	if q&1 != 0 {
		b.Min.X, b.Max.X = mid.X, n.box.Max.X
	}
	if q&2 != 0 {
		b.Min.Y, b.Max.Y = mid.Y, n.box.Max.Y
	}
	return b
}

func (n *quadNode) insert(b *core.Body, depth int) {
	n.mass += b.Mass
	n.weighted = vmath.Add(n.weighted, vmath.Scale(b.Pos, b.Mass))

	if !n.internal {
		if len(n.bodies) == 0 || depth >= quadMaxDepth {
			n.bodies = append(n.bodies, b)
			return
		}
		// Split: push the occupants down, then fall through for b
		n.internal = true
		occupants := n.bodies
		n.bodies = nil
		for _, o := range occupants {
			n.child(n.quadrant(o.Pos)).insert(o, depth+1)
		}
	}
	n.child(n.quadrant(b.Pos)).insert(b, depth+1)
}

func (n *quadNode) child(q int) *quadNode {
	if n.children[q] == nil {
		n.children[q] = &quadNode{box: n.childBox(q)}
	}
	return n.children[q]
}

// finish resolves centers of mass bottom up
func (n *quadNode) finish() {
	if n.mass > 0 {
		n.com = vmath.Scale(n.weighted, 1/n.mass)
	}
	for _, c := range n.children {
		if c != nil {
			c.finish()
		}
	}
}

// accelerationOn sums the field at target, opening cells whose size/distance ratio reaches theta
// A cell containing the target is always opened so a body never attracts itself
func (n *quadNode) accelerationOn(target *core.Body, theta, g, softening float64) vmath.Vec {
	if n.mass == 0 {
		return vmath.Vec{}
	}
	if !n.internal {
		var acc vmath.Vec
		for _, o := range n.bodies {
			if o != target {
				acc = vmath.Add(acc, AccelerationFrom(target.Pos, o.Pos, o.Mass, g, softening))
			}
		}
		return acc
	}

	size := vmath.BoxWidth(n.box)
	d := vmath.Distance(target.Pos, n.com)
	if d > 0 && size/d < theta && !vmath.BoxContains(n.box, target.Pos) {
		return AccelerationFrom(target.Pos, n.com, n.mass, g, softening)
	}

	var acc vmath.Vec
	for _, c := range n.children {
		if c != nil {
			acc = vmath.Add(acc, c.accelerationOn(target, theta, g, softening))
		}
	}
	return acc
}

// buildQuadTree covers every live body with a square root cell
func buildQuadTree(bodies []*core.Body) (*quadNode, error) {
	lo := vmath.V(math.Inf(1), math.Inf(1))
	hi := vmath.V(math.Inf(-1), math.Inf(-1))
	count := 0
	for _, b := range bodies {
		if !b.Alive {
			continue
		}
		if !vmath.IsFinite(b.Pos) {
			return nil, errNonFinite
		}
		lo = vmath.V(math.Min(lo.X, b.Pos.X), math.Min(lo.Y, b.Pos.Y))
		hi = vmath.V(math.Max(hi.X, b.Pos.X), math.Max(hi.Y, b.Pos.Y))
		count++
	}
	if count == 0 {
		return &quadNode{}, nil
	}

	// Square cells keep the size/distance criterion isotropic; the pad keeps Max points inside
	side := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	side = side*1.001 + 1
	root := &quadNode{box: vmath.NewBox(lo, side, side)}
	for _, b := range bodies {
		if b.Alive {
			root.insert(b, 0)
		}
	}
	root.finish()
	return root, nil
}

// BarnesHut overwrites Acc of every live body using a quadtree approximation with opening angle theta
// theta = 0 opens every cell and matches direct summation
// On failure Acc is left untouched and the error is returned for the caller to fall back
func BarnesHut(bodies []*core.Body, g, softening, theta float64) error {
	root, err := buildQuadTree(bodies)
	if err != nil {
		return err
	}

	for _, b := range bodies {
		b.Acc = vmath.Vec{}
	}
	for _, b := range bodies {
		if b.Alive {
			b.Acc = root.accelerationOn(b, theta, g, softening)
		}
	}
	return nil
}
