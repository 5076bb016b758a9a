package internal

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
)

// Vertex classification for the monotone partition sweep. The sweep goes from
// top to bottom, using the lexicographic order, and every directed ring edge
// has the polygon interior on its left.
type EventKind int

const (
	// Both neighbors below, convex. Begins a new chain.
	Start EventKind = iota
	// Both neighbors above, convex. Closes a chain.
	End
	// Both neighbors below, reflex. Needs a diagonal upward.
	Split
	// Both neighbors above, reflex. Needs a diagonal downward.
	Merge
	// One neighbor above, one below, with the interior to the right. The vertex
	// is on the left boundary of the piece being swept.
	RegularLeft
	// One neighbor above, one below, with the interior to the left.
	RegularRight
)

var eventKindNames = [...]string{
	Start:        "start",
	End:          "end",
	Split:        "split",
	Merge:        "merge",
	RegularLeft:  "regular-left",
	RegularRight: "regular-right",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// Colored name for debug output. Vertices that need diagonals stand out.
func (k EventKind) DbgName() string {
	switch k {
	case Split, Merge:
		return aurora.Red(k.String()).String()
	case Start, End:
		return aurora.Cyan(k.String()).String()
	}
	return aurora.Green(k.String()).String()
}

type Event struct {
	Vertex int
	Kind   EventKind
}

// Classify a single vertex by comparing it with its two ring neighbors.
func ClassifyVertex(vt *VertexTable, v int, order Order) EventKind {
	p := vt.Points[v]
	prev := vt.Points[vt.Prev(v)]
	next := vt.Points[vt.Next(v)]

	prevBelow := order.Below(prev, p)
	nextBelow := order.Below(next, p)
	// The interior is on the left of each edge, so a left turn means the
	// interior angle is less than 180°
	convex := Cross(prev, p, next) > 0

	switch {
	case prevBelow && nextBelow:
		if convex {
			return Start
		}
		return Split
	case !prevBelow && !nextBelow:
		if convex {
			return End
		}
		return Merge
	case nextBelow:
		// Coming down from above, so the boundary is descending and the interior
		// is on its right
		return RegularLeft
	default:
		return RegularRight
	}
}

// BuildEvents classifies every vertex and returns the events in sweep order,
// along with the classification indexed by vertex. Coincident points are
// ordered by ring and then by position within the ring, so output is
// deterministic even for degenerate input.
func BuildEvents(vt *VertexTable, order Order) ([]Event, []EventKind) {
	kinds := make([]EventKind, vt.Len())
	events := make([]Event, vt.Len())
	for v := range vt.Points {
		kinds[v] = ClassifyVertex(vt, v, order)
		events[v] = Event{Vertex: v, Kind: kinds[v]}
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := vt.Points[events[i].Vertex], vt.Points[events[j].Vertex]
		if a == b {
			// Vertex indexes are laid out ring by ring, so this is the (ring,
			// position) tiebreak.
			return events[i].Vertex < events[j].Vertex
		}
		return order.Above(a, b)
	})
	return events, kinds
}
