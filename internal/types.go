package internal

type Point struct {
	X float64
	Y float64
}

// A ring is a closed boundary. The last point connects back to the first, so
// it must not be repeated (see NormalizeRing for inputs that do repeat it).
type Ring []Point

// A polygon is one exterior ring plus any number of holes. Holes must lie
// inside the exterior and must not overlap each other.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// Triangles produced by the engine are indices into the vertex table of the
// polygon being tessellated, rather than points. This lets the mesh assembler
// decide how to deduplicate without having to compare floats twice.
type Triangle [3]int

type Segment struct {
	Start Point
	End   Point
}

// Stack of vertex indices, used by the monotone triangulator.
type IndexStack []int
