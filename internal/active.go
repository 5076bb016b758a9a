package internal

import (
	"sort"

	"github.com/osuushi/tessellate/internal/dbg"
)

// The set of edges currently crossing the sweep line, ordered left to right.
// Only edges that run downward are kept. With the interior on the left of every
// directed edge, those are the edges bounding the interior on its west side,
// which is all the monotone partition ever needs to look up.
//
// Edges are identified by the index of their start vertex: edge e runs from e
// to Next(e). The set is a plain slice. Edges are inserted and removed near
// each other in sweep order, and a slice with binary search beats a tree at
// the sizes we deal with.
type ActiveEdges struct {
	vt    *VertexTable
	order Order
	edges []int
}

func NewActiveEdges(vt *VertexTable, order Order) *ActiveEdges {
	return &ActiveEdges{vt: vt, order: order}
}

func (a *ActiveEdges) Len() int {
	return len(a.edges)
}

// Edge ids from left to right. The returned slice must not be modified.
func (a *ActiveEdges) Edges() []int {
	return a.edges
}

// Is the edge strictly left of the point? Because edges in the set never
// cross, comparing against the line through the edge is enough, and it is
// well defined even for (lexicographically tilted) horizontal edges.
func (a *ActiveEdges) IsLeftOf(edge int, p Point) bool {
	upper := a.vt.Points[edge]
	lower := a.vt.Points[a.vt.Next(edge)]
	if a.order.Below(upper, lower) {
		upper, lower = lower, upper
	}
	// Walking down the edge, p is on our left (east) when the cross product is
	// positive.
	return Cross(upper, lower, p) > 0
}

// Position of the first edge that is not left of p.
func (a *ActiveEdges) search(p Point) int {
	return sort.Search(len(a.edges), func(i int) bool {
		return !a.IsLeftOf(a.edges[i], p)
	})
}

// Find the edge directly left of the vertex. Returns -1 if there is none.
func (a *ActiveEdges) LeftOf(v int) int {
	i := a.search(a.vt.Points[v])
	if i == 0 {
		return -1
	}
	return a.edges[i-1]
}

// Insert an edge at its start vertex.
func (a *ActiveEdges) Insert(edge int) {
	i := a.search(a.vt.Points[edge])
	a.edges = append(a.edges, 0)
	copy(a.edges[i+1:], a.edges[i:])
	a.edges[i] = edge
}

// Remove an edge, which is normally done at its lower vertex. Returns false if
// the edge was not in the set.
func (a *ActiveEdges) Remove(edge int) bool {
	i := a.search(a.vt.Points[a.vt.Next(edge)])
	if i >= len(a.edges) || a.edges[i] != edge {
		// Floating point noise can put the lookup one slot off. Fall back to a
		// scan rather than corrupting the set.
		i = -1
		for j, e := range a.edges {
			if e == edge {
				i = j
				break
			}
		}
		if i < 0 {
			return false
		}
	}
	a.edges = append(a.edges[:i], a.edges[i+1:]...)
	return true
}

func (a *ActiveEdges) String() string {
	segments := make([]Segment, len(a.edges))
	for i, e := range a.edges {
		segments[i] = Segment{a.vt.Points[e], a.vt.Points[a.vt.Next(e)]}
	}
	return dbg.Dump(segments)
}
