package internal

import "github.com/osuushi/tessellate/internal/dbg"

// Splitting the polygon into pieces along the diagonals. The ring edges (in
// ring direction only) plus both directions of every diagonal form a set of
// half edges, each with the interior of its piece on the left. Walking from a
// half edge and always taking the tightest left turn traces exactly one piece,
// counterclockwise.

type halfEdge struct {
	to      int
	visited bool
}

// SplitPieces returns each piece as a list of vertex indices in
// counterclockwise order.
func SplitPieces(vt *VertexTable, diagonals []Diagonal) [][]int {
	outgoing := make([][]halfEdge, vt.Len())
	for v := range vt.Points {
		outgoing[v] = append(outgoing[v], halfEdge{to: vt.Next(v)})
	}
	for _, d := range diagonals {
		outgoing[d[0]] = append(outgoing[d[0]], halfEdge{to: d[1]})
		outgoing[d[1]] = append(outgoing[d[1]], halfEdge{to: d[0]})
	}

	// Upper bound on the number of half edges in a piece, to stop runaway walks
	// if the graph is not planar (which would mean the input intersected
	// itself)
	limit := vt.Len() + 2*len(diagonals)

	var pieces [][]int
	for start := range vt.Points {
		for i := range outgoing[start] {
			if outgoing[start][i].visited {
				continue
			}
			piece := []int{start}
			from := start
			edge := &outgoing[start][i]
			for {
				edge.visited = true
				to := edge.to
				if to == start {
					break
				}
				piece = append(piece, to)
				if len(piece) > limit {
					fatalf("piece starting at %v does not close: %s", vt.Points[start], dbg.Dump(piece))
				}
				edge = nextHalfEdge(vt, outgoing[to], from, to)
				from = to
			}
			if len(piece) < 3 {
				fatalf("degenerate piece %s", dbg.Dump(piece))
			}
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// Arriving at `at` from `from`, pick the outgoing half edge that is the first
// one clockwise from the direction we came in. That keeps the piece on our
// left.
func nextHalfEdge(vt *VertexTable, candidates []halfEdge, from, at int) *halfEdge {
	origin := vt.Points[at]
	back := vt.Points[from].Sub(origin)
	var best *halfEdge
	bestAngle := 0.0
	for i := range candidates {
		candidate := &candidates[i]
		angle := ClockwiseAngle(back, vt.Points[candidate.to].Sub(origin))
		if best == nil || angle < bestAngle {
			best = candidate
			bestAngle = angle
		}
	}
	if best == nil {
		fatalf("vertex %v has no outgoing edges", origin)
	}
	if best.visited {
		fatalf("half edge %v -> %v walked twice", origin, vt.Points[best.to])
	}
	return best
}
