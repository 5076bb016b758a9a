package internal

// This contains no actual tests. It is just a helper for testing tessellation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is a valid tessellation of a polygon. The rules
// are:
// 1. Every mesh vertex is a point of the polygon, and every polygon point is used.
// 2. Every ring edge of the polygon is an edge of some triangle.
// 3. Every triangle is counterclockwise with positive area.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
// 5. There are exactly V + 2H - 2 triangles.
// 6. Sampled points inside the polygon are covered by exactly one triangle,
//    and points outside are covered by none.
func AssertValidTriangulation(t *testing.T, polygon Polygon, mesh *Mesh) {
	t.Helper()
	normalized, err := polygon.Normalize(DefaultEpsilon)
	require.NoError(t, err)

	polyPoints := make(map[Point]struct{})
	for _, ring := range normalized.Rings() {
		for _, p := range ring {
			polyPoints[p] = struct{}{}
		}
	}
	meshPoints := make(map[Point]struct{})
	for _, p := range mesh.Vertices {
		require.Contains(t, polyPoints, p, "mesh vertex is not a polygon point")
		meshPoints[p] = struct{}{}
	}
	require.Equal(t, len(polyPoints), len(meshPoints), "set of points in the mesh must equal the set of points in the polygon")

	triangleSegmentSet := make(segmentSet)
	var triangleArea float64
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		cross := Cross(tri[0], tri[1], tri[2])
		require.Greater(t, cross, 0.0, "clockwise or empty triangle: %v", tri)
		triangleArea += cross / 2
		triangleSegmentSet.add(tri[0], tri[1])
		triangleSegmentSet.add(tri[1], tri[2])
		triangleSegmentSet.add(tri[2], tri[0])
	}

	for _, ring := range normalized.Rings() {
		for i, p1 := range ring {
			p2 := ring[CircularIndex(i+1, len(ring))]
			require.True(t, triangleSegmentSet.contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
		}
	}

	expectedArea := normalized.Area()
	require.InDelta(t, expectedArea, triangleArea, 1e-9*math.Max(1, expectedArea), "sum of the areas of all triangles must equal the area of the polygon")

	require.Equal(t, normalized.VertexCount()+2*len(normalized.Holes)-2, mesh.TriangleCount(), "triangle count")

	validateCoverageBySampling(t, normalized, mesh)
}

// Undirected segment, so that a diagonal walked in either direction matches.
type segment struct {
	a, b Point
}

type segmentSet map[segment]struct{}

func (set segmentSet) add(a, b Point) {
	set[normalizedSegment(a, b)] = struct{}{}
}

func (set segmentSet) contains(a, b Point) bool {
	_, ok := set[normalizedSegment(a, b)]
	return ok
}

func normalizedSegment(a, b Point) segment {
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return segment{a, b}
	}
	return segment{b, a}
}

func validateCoverageBySampling(t *testing.T, polygon Polygon, mesh *Mesh) {
	t.Helper()
	extent := polygon.Exterior.Extent()
	minX, minY := math.Inf(1), math.Inf(1)
	for _, p := range polygon.Exterior {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}

	// Pad the bounding box by 10%, and use an irrational-ish step so samples
	// rarely land on edges
	padding := extent * 0.1
	minX -= padding
	minY -= padding
	size := extent + 2*padding
	step := size / 53.7
	// Points this close to an edge are skipped, since either answer is fine
	margin := extent * 1e-6

	for y := minY; y <= minY+size; y += step {
		for x := minX; x <= minX+size; x += step {
			p := Point{X: x, Y: y}
			if nearBoundary(polygon, p, margin) {
				continue
			}
			covering := 0
			for i := 0; i < mesh.TriangleCount(); i++ {
				tri := mesh.Triangle(i)
				if Cross(tri[0], tri[1], p) > 0 && Cross(tri[1], tri[2], p) > 0 && Cross(tri[2], tri[0], p) > 0 {
					covering++
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.Equal(t, 1, covering, "point %v should be covered by exactly one triangle", p)
			} else {
				assert.Equal(t, 0, covering, "point %v should not be covered", p)
			}
		}
	}
}

// Is p within margin of a ring edge, or of a diagonal? Diagonals are not known
// here, so any segment between two polygon points that p is collinear with
// counts. That is conservative, but only skips a handful of samples.
func nearBoundary(polygon Polygon, p Point, margin float64) bool {
	var points []Point
	for _, ring := range polygon.Rings() {
		points = append(points, ring...)
	}
	for i, a := range points {
		for _, b := range points[i+1:] {
			if distanceToSegment(p, a, b) < margin {
				return true
			}
		}
	}
	return false
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lengthSquared := ab.X*ab.X + ab.Y*ab.Y
	t := 0.0
	if lengthSquared > 0 {
		t = math.Max(0, math.Min(1, (ap.X*ab.X+ap.Y*ab.Y)/lengthSquared))
	}
	closest := Point{a.X + t*ab.X, a.Y + t*ab.Y}
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}
