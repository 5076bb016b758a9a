package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Output of the engine: a vertex table and triangles as index triples. Every
// triangle is counterclockwise with positive area.
type Mesh struct {
	Vertices []Point
	Indices  []uint32
}

type MeshOptions struct {
	// Merge vertices with equal coordinates. When false, every triangle corner
	// gets its own vertex.
	Dedupe bool
	// When positive, vertices closer than this (in both x and y) are merged
	// instead of requiring exact equality.
	Tolerance float64
}

// AssembleMesh converts triangles over vt into a mesh. Vertices appear in the
// order they are first referenced, so the output is deterministic.
func AssembleMesh(vt *VertexTable, triangles []Triangle, options MeshOptions) *Mesh {
	mesh := &Mesh{Indices: make([]uint32, 0, 3*len(triangles))}

	if !options.Dedupe {
		mesh.Vertices = make([]Point, 0, 3*len(triangles))
		for _, tri := range triangles {
			for _, v := range tri {
				mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
				mesh.Vertices = append(mesh.Vertices, vt.Points[v])
			}
		}
		return mesh
	}

	var index vertexIndex
	if options.Tolerance > 0 {
		index = newGridIndex(options.Tolerance)
	} else {
		index = exactIndex{}
	}

	// Cache by vertex id, so each input vertex is only looked up once
	assigned := make(map[int]uint32, vt.Len())
	for _, tri := range triangles {
		var ids [3]uint32
		for i, v := range tri {
			id, ok := assigned[v]
			if !ok {
				p := vt.Points[v]
				id, ok = index.find(p)
				if !ok {
					id = uint32(len(mesh.Vertices))
					mesh.Vertices = append(mesh.Vertices, p)
					index.add(p, id)
				}
				assigned[v] = id
			}
			ids[i] = id
		}
		// A tolerance merge can collapse a sliver triangle, or snap it inside out
		if ids[0] == ids[1] || ids[1] == ids[2] || ids[2] == ids[0] {
			continue
		}
		if options.Tolerance > 0 && Cross(mesh.Vertices[ids[0]], mesh.Vertices[ids[1]], mesh.Vertices[ids[2]]) <= 0 {
			continue
		}
		mesh.Indices = append(mesh.Indices, ids[:]...)
	}
	return mesh
}

type vertexIndex interface {
	find(p Point) (uint32, bool)
	add(p Point, id uint32)
}

type exactIndex map[Point]uint32

func (idx exactIndex) find(p Point) (uint32, bool) {
	id, ok := idx[p]
	return id, ok
}

func (idx exactIndex) add(p Point, id uint32) {
	idx[p] = id
}

// Spatial hash with cells the size of the tolerance. A point can only match
// points in its own cell or the eight around it.
type gridIndex struct {
	tolerance float64
	cells     map[[2]int64][]gridEntry
}

type gridEntry struct {
	p  Point
	id uint32
}

func newGridIndex(tolerance float64) *gridIndex {
	return &gridIndex{tolerance: tolerance, cells: make(map[[2]int64][]gridEntry)}
}

func (g *gridIndex) cell(p Point) [2]int64 {
	return [2]int64{int64(math.Floor(p.X / g.tolerance)), int64(math.Floor(p.Y / g.tolerance))}
}

func (g *gridIndex) find(p Point) (uint32, bool) {
	c := g.cell(p)
	found := false
	var best uint32
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, entry := range g.cells[[2]int64{c[0] + dx, c[1] + dy}] {
				if math.Abs(entry.p.X-p.X) <= g.tolerance && math.Abs(entry.p.Y-p.Y) <= g.tolerance {
					// Prefer the earliest vertex, for determinism
					if !found || entry.id < best {
						best = entry.id
						found = true
					}
				}
			}
		}
	}
	return best, found
}

func (g *gridIndex) add(p Point, id uint32) {
	c := g.cell(p)
	g.cells[c] = append(g.cells[c], gridEntry{p, id})
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) Triangle(i int) [3]Point {
	return [3]Point{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// Sum of the triangle areas.
func (m *Mesh) Area() float64 {
	var area float64
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		area += Cross(tri[0], tri[1], tri[2]) / 2
	}
	return area
}

// Interleaved x, y pairs, for uploading to APIs that take 32 bit floats.
func (m *Mesh) Float32Vertices() []float32 {
	result := make([]float32, 0, 2*len(m.Vertices))
	for _, p := range m.Vertices {
		result = append(result, float32(p.X), float32(p.Y))
	}
	return result
}

// Indices narrowed to 16 bits. Fails if the mesh has too many vertices.
func (m *Mesh) Uint16Indices() ([]uint16, error) {
	if len(m.Vertices) > math.MaxUint16+1 {
		return nil, errors.Errorf("mesh has %d vertices, too many for 16 bit indices", len(m.Vertices))
	}
	result := make([]uint16, len(m.Indices))
	for i, index := range m.Indices {
		result[i] = uint16(index)
	}
	return result, nil
}
