package internal

import (
	"fmt"
	"math"
)

// Shoelace formula. Positive for counterclockwise rings.
func (r Ring) SignedArea() float64 {
	var area float64
	for i, p := range r {
		q := r[CircularIndex(i+1, len(r))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func (r Ring) IsCCW() bool {
	return r.SignedArea() > 0
}

func (r Ring) IsCW() bool {
	return r.SignedArea() < 0
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, len(r))
	for i, p := range r {
		reversed[len(r)-1-i] = p
	}
	return reversed
}

// Largest side of the bounding box
func (r Ring) Extent() float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range r {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

// Winding rule point-in-ring. This is provided primarily for testing.
func (r Ring) ContainsPointByEvenOdd(p Point) bool {
	return r.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossing the
// horizontal ray from p to +∞.
func (r Ring) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range r {
		nextVertex := r[CircularIndex(i+1, len(r))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// NormalizeRing drops consecutive duplicate points, including a closing point
// that repeats the first one. The input is not modified.
func NormalizeRing(r Ring) Ring {
	result := make(Ring, 0, len(r))
	for _, p := range r {
		if len(result) > 0 && result[len(result)-1] == p {
			continue
		}
		result = append(result, p)
	}
	for len(result) > 1 && result[len(result)-1] == result[0] {
		result = result[:len(result)-1]
	}
	return result
}

// Check that a normalized ring can be tessellated at all. Self intersection is
// not checked here; see ValidateSimple.
func ValidateRing(r Ring, ringIndex int, epsilon float64) error {
	for _, p := range r {
		if !p.IsFinite() {
			return &DegenerateRingError{Ring: ringIndex, Reason: fmt.Sprintf("non-finite point %v", p)}
		}
	}

	distinct := make(map[Point]struct{}, len(r))
	for _, p := range r {
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return &DegenerateRingError{Ring: ringIndex, Reason: fmt.Sprintf("only %d distinct points", len(distinct))}
	}

	// The ring is "zero area" when it is thinner than epsilon.
	if math.Abs(r.SignedArea()) <= epsilon*r.Extent() {
		return &DegenerateRingError{Ring: ringIndex, Reason: "zero area"}
	}
	return nil
}

// Normalize copies the polygon, drops duplicate points, validates every ring,
// and fixes the winding so that the exterior is counterclockwise and holes are
// clockwise. With that winding, the interior is always on the left of every
// directed edge.
func (poly Polygon) Normalize(epsilon float64) (Polygon, error) {
	exterior := NormalizeRing(poly.Exterior)
	if err := ValidateRing(exterior, 0, epsilon); err != nil {
		return Polygon{}, err
	}
	if exterior.IsCW() {
		exterior = exterior.Reverse()
	}

	result := Polygon{Exterior: exterior, Holes: make([]Ring, 0, len(poly.Holes))}
	for i, hole := range poly.Holes {
		hole = NormalizeRing(hole)
		if err := ValidateRing(hole, i+1, epsilon); err != nil {
			return Polygon{}, err
		}
		if hole.IsCCW() {
			hole = hole.Reverse()
		}
		result.Holes = append(result.Holes, hole)
	}
	return result, nil
}

// Rings in order: the exterior, then the holes.
func (poly Polygon) Rings() []Ring {
	rings := make([]Ring, 0, len(poly.Holes)+1)
	rings = append(rings, poly.Exterior)
	return append(rings, poly.Holes...)
}

func (poly Polygon) VertexCount() int {
	count := len(poly.Exterior)
	for _, hole := range poly.Holes {
		count += len(hole)
	}
	return count
}

// Area of the interior (exterior minus holes). Assumes a valid polygon.
func (poly Polygon) Area() float64 {
	area := math.Abs(poly.Exterior.SignedArea())
	for _, hole := range poly.Holes {
		area -= math.Abs(hole.SignedArea())
	}
	return area
}

// Point-in-polygon by the even-odd rule over all rings.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, ring := range poly.Rings() {
		count += ring.CrossingCount(p)
	}
	return count%2 == 1
}

// VertexTable flattens the rings of a polygon into a single index space. Ring
// neighbors are found by (ring, position) arithmetic rather than pointers, so
// nothing in the engine holds cyclic references.
type VertexTable struct {
	Points []Point
	// start offset of each ring in Points
	ringStart []int
	ringOf    []int
}

func NewVertexTable(poly Polygon) *VertexTable {
	vt := &VertexTable{
		Points: make([]Point, 0, poly.VertexCount()),
		ringOf: make([]int, 0, poly.VertexCount()),
	}
	for ringIndex, ring := range poly.Rings() {
		vt.ringStart = append(vt.ringStart, len(vt.Points))
		for _, p := range ring {
			vt.Points = append(vt.Points, p)
			vt.ringOf = append(vt.ringOf, ringIndex)
		}
	}
	return vt
}

func (vt *VertexTable) Len() int {
	return len(vt.Points)
}

func (vt *VertexTable) RingCount() int {
	return len(vt.ringStart)
}

func (vt *VertexTable) Ring(v int) int {
	return vt.ringOf[v]
}

func (vt *VertexTable) Position(v int) int {
	return v - vt.ringStart[vt.ringOf[v]]
}

func (vt *VertexTable) ringLen(ring int) int {
	if ring+1 < len(vt.ringStart) {
		return vt.ringStart[ring+1] - vt.ringStart[ring]
	}
	return len(vt.Points) - vt.ringStart[ring]
}

func (vt *VertexTable) Next(v int) int {
	ring := vt.ringOf[v]
	return vt.ringStart[ring] + CircularIndex(vt.Position(v)+1, vt.ringLen(ring))
}

func (vt *VertexTable) Prev(v int) int {
	ring := vt.ringOf[v]
	return vt.ringStart[ring] + CircularIndex(vt.Position(v)-1, vt.ringLen(ring))
}
