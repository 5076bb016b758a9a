package internal

import (
	"math"
	"sort"
)

// Optional check for the "simple polygon" precondition. The sweep assumes no
// two edges cross; when that is violated the output is undefined, so callers
// with untrusted geometry can ask for this check first.
//
// This is the Shamos-Hoey sweep: vertices are visited top to bottom in the
// exact lexicographic order, and the edges crossing the sweep line are kept
// sorted left to right. Two edges can only meet after they have become
// neighbors in that list, so each edge is only compared with its neighbors
// when it is inserted, and neighbors are compared again when an edge between
// them leaves. Edges meeting at a vertex are compared with each other
// directly. The whole check is O(n log n) comparisons.

type simpleChecker struct {
	vt     *VertexTable
	order  Order
	active []int
}

// ValidateSimple reports the first pair of non-adjacent edges that touch or
// cross, or a pair of adjacent edges that fold back over each other.
func ValidateSimple(vt *VertexTable) error {
	c := &simpleChecker{vt: vt}

	vertices := make([]int, vt.Len())
	for v := range vertices {
		vertices[v] = v
	}
	sort.SliceStable(vertices, func(i, j int) bool {
		return c.order.Above(vt.Points[vertices[i]], vt.Points[vertices[j]])
	})

	for i := 0; i < len(vertices); {
		// Group coincident vertices into one event
		p := vt.Points[vertices[i]]
		j := i
		for j < len(vertices) && vt.Points[vertices[j]] == p {
			j++
		}
		if a, b, ok := c.visit(p, vertices[i:j]); !ok {
			return c.conflictError(a, b)
		}
		i = j
	}
	return nil
}

// Process one event point. Returns the first conflicting pair of edges found.
func (c *simpleChecker) visit(p Point, vertices []int) (int, int, bool) {
	var incident []int
	for _, v := range vertices {
		for _, e := range [2]int{v, c.vt.Prev(v)} {
			if !containsInt(incident, e) {
				incident = append(incident, e)
			}
		}
	}
	for i, a := range incident {
		for _, b := range incident[i+1:] {
			if edgesConflict(c.vt, a, b) {
				return a, b, false
			}
		}
	}

	var starting []int
	for _, e := range incident {
		upper, lower := c.endpoints(e)
		switch {
		case lower == p:
			if !c.remove(e, p) {
				// Only possible if the order was already broken by a crossing
				return e, e, false
			}
		case upper == p:
			starting = append(starting, e)
		}
	}

	// The edges around p after the ending edges are gone. An edge running
	// through p sorts to pos.
	pos := c.search(p)
	var neighbors []int
	for _, i := range [2]int{pos - 1, pos} {
		if i >= 0 && i < len(c.active) {
			neighbors = append(neighbors, c.active[i])
		}
	}
	for _, e := range incident {
		for _, other := range neighbors {
			if edgesConflict(c.vt, e, other) {
				return e, other, false
			}
		}
	}
	if len(starting) == 0 && len(neighbors) == 2 && edgesConflict(c.vt, neighbors[0], neighbors[1]) {
		return neighbors[0], neighbors[1], false
	}

	// Starting edges fan out downward from p. Sort them west to east.
	sort.Slice(starting, func(i, j int) bool {
		_, lowerI := c.endpoints(starting[i])
		_, lowerJ := c.endpoints(starting[j])
		return Cross(p, lowerJ, lowerI) < 0
	})
	c.active = append(c.active, starting...)
	copy(c.active[pos+len(starting):], c.active[pos:])
	copy(c.active[pos:], starting)
	return 0, 0, true
}

func (c *simpleChecker) endpoints(e int) (upper, lower Point) {
	a, b := c.vt.Points[e], c.vt.Points[c.vt.Next(e)]
	if c.order.Below(a, b) {
		return b, a
	}
	return a, b
}

func (c *simpleChecker) isLeftOf(e int, p Point) bool {
	upper, lower := c.endpoints(e)
	return Cross(upper, lower, p) > 0
}

// Position of the first active edge that is not strictly left of p.
func (c *simpleChecker) search(p Point) int {
	return sort.Search(len(c.active), func(i int) bool {
		return !c.isLeftOf(c.active[i], p)
	})
}

// Remove an edge at its lower endpoint p. Edges through p sit together
// starting at search(p).
func (c *simpleChecker) remove(e int, p Point) bool {
	i := c.search(p)
	for ; i < len(c.active); i++ {
		if c.active[i] == e {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return true
		}
		upper, lower := c.endpoints(c.active[i])
		if Cross(upper, lower, p) < 0 {
			break
		}
	}
	// Rounding put the lookup off. Fall back to a scan.
	for i, other := range c.active {
		if other == e {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return true
		}
	}
	return false
}

func (c *simpleChecker) conflictError(a, b int) error {
	vt := c.vt
	return &SelfIntersectingInputError{
		A:     Segment{vt.Points[a], vt.Points[vt.Next(a)]},
		B:     Segment{vt.Points[b], vt.Points[vt.Next(b)]},
		RingA: vt.Ring(a),
		RingB: vt.Ring(b),
	}
}

func containsInt(s []int, x int) bool {
	for _, y := range s {
		if x == y {
			return true
		}
	}
	return false
}

// Edges are identified by their start vertex.
func edgesConflict(vt *VertexTable, a, b int) bool {
	aTo, bTo := vt.Next(a), vt.Next(b)
	// Adjacent edges share exactly one vertex. They only conflict if they are
	// collinear and fold back over each other.
	if aTo == b || bTo == a {
		if aTo == b && bTo == a {
			// A two point ring. Normalization rejects these, but be safe.
			return true
		}
		var shared, endA, endB Point
		if aTo == b {
			shared, endA, endB = vt.Points[aTo], vt.Points[a], vt.Points[bTo]
		} else {
			shared, endA, endB = vt.Points[a], vt.Points[aTo], vt.Points[b]
		}
		da, db := endA.Sub(shared), endB.Sub(shared)
		return Cross(shared, endA, endB) == 0 && da.X*db.X+da.Y*db.Y > 0
	}
	return SegmentsIntersect(vt.Points[a], vt.Points[aTo], vt.Points[b], vt.Points[bTo])
}

// Closed segment intersection: touching counts.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := sign(Cross(q1, q2, p1))
	d2 := sign(Cross(q1, q2, p2))
	d3 := sign(Cross(p1, p2, q1))
	d4 := sign(Cross(p1, p2, q2))

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

// Is p (known to be collinear with a and b) within their bounding box?
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
