package internal

// Monotone partition by plane sweep (de Berg et al., "Computational Geometry",
// chapter 3). The sweep line moves from top to bottom through the vertex
// events. Every start, split, merge and end vertex is resolved with diagonals
// so that after the sweep, each piece bounded by ring edges and diagonals is
// y-monotone.
//
// Holes need no special treatment: with holes wound clockwise, the top of a
// hole is a split vertex and the bottom is a merge vertex, so each hole ends up
// connected to the rest of the polygon by diagonals.

type Diagonal [2]int

type Sweep struct {
	vt     *VertexTable
	order  Order
	kinds  []EventKind
	active *ActiveEdges
	// helper[e] is the helper vertex of active edge e, or -1 when e is not
	// active. Indexed by edge id, which is the edge's start vertex.
	helper    []int
	Diagonals []Diagonal
}

func NewSweep(vt *VertexTable, kinds []EventKind, order Order) *Sweep {
	helper := make([]int, vt.Len())
	for i := range helper {
		helper[i] = -1
	}
	return &Sweep{
		vt:     vt,
		order:  order,
		kinds:  kinds,
		active: NewActiveEdges(vt, order),
		helper: helper,
	}
}

// Run processes every event. The events must be in sweep order, as returned
// by BuildEvents.
func (s *Sweep) Run(events []Event) {
	for _, event := range events {
		switch event.Kind {
		case Start:
			s.handleStart(event.Vertex)
		case End:
			s.handleEnd(event.Vertex)
		case Split:
			s.handleSplit(event.Vertex)
		case Merge:
			s.handleMerge(event.Vertex)
		case RegularLeft:
			s.handleRegularLeft(event.Vertex)
		case RegularRight:
			s.handleRegularRight(event.Vertex)
		default:
			fatalf("unknown event kind %v at vertex %d", event.Kind, event.Vertex)
		}
	}
	if s.active.Len() != 0 {
		fatalf("%d edges still active after the sweep: %s", s.active.Len(), s.active)
	}
}

func (s *Sweep) isMerge(v int) bool {
	return v >= 0 && s.kinds[v] == Merge
}

func (s *Sweep) addDiagonal(a, b int) {
	s.Diagonals = append(s.Diagonals, Diagonal{a, b})
}

func (s *Sweep) insert(edge, helper int) {
	s.active.Insert(edge)
	s.helper[edge] = helper
}

// Close the edge ending at v (the edge starting at its ring predecessor). If
// that edge's helper was a merge vertex, connect it to v first.
func (s *Sweep) closeIncoming(v int) {
	edge := s.vt.Prev(v)
	helper := s.helper[edge]
	if helper < 0 {
		fatalf("edge %d ending at %v (%s) is not active", edge, s.vt.Points[v], s.kinds[v])
	}
	if s.isMerge(helper) {
		s.addDiagonal(v, helper)
	}
	if !s.active.Remove(edge) {
		fatalf("edge %d ending at %v is missing from the active set", edge, s.vt.Points[v])
	}
	s.helper[edge] = -1
}

// Find the edge directly left of v. There always is one for split, merge and
// right-side regular vertices of a valid polygon.
func (s *Sweep) leftEdge(v int) int {
	edge := s.active.LeftOf(v)
	if edge < 0 {
		fatalf("no active edge left of %s vertex %v", s.kinds[v], s.vt.Points[v])
	}
	return edge
}

func (s *Sweep) handleStart(v int) {
	s.insert(v, v)
}

func (s *Sweep) handleEnd(v int) {
	s.closeIncoming(v)
}

func (s *Sweep) handleSplit(v int) {
	left := s.leftEdge(v)
	s.addDiagonal(v, s.helper[left])
	s.helper[left] = v
	s.insert(v, v)
}

func (s *Sweep) handleMerge(v int) {
	s.closeIncoming(v)
	left := s.leftEdge(v)
	if s.isMerge(s.helper[left]) {
		s.addDiagonal(v, s.helper[left])
	}
	s.helper[left] = v
}

func (s *Sweep) handleRegularLeft(v int) {
	s.closeIncoming(v)
	s.insert(v, v)
}

func (s *Sweep) handleRegularRight(v int) {
	left := s.leftEdge(v)
	if s.isMerge(s.helper[left]) {
		s.addDiagonal(v, s.helper[left])
	}
	s.helper[left] = v
}
