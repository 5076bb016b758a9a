package internal

import (
	"log/slog"

	"github.com/osuushi/tessellate/internal/dbg"
)

type Options struct {
	// Tolerance for treating y values as equal in the sweep order
	Epsilon float64
	Mesh    MeshOptions
	// Check that no edges intersect before tessellating
	Validate bool
}

func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Mesh:    MeshOptions{Dedupe: true},
	}
}

// Tessellate runs the whole pipeline: normalize and validate the rings, build
// the event queue, sweep into monotone pieces, triangulate each piece, and
// assemble the mesh. On error, no mesh is returned.
func Tessellate(poly Polygon, options Options) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()

	normalized, err := poly.Normalize(options.Epsilon)
	if err != nil {
		return nil, err
	}
	vt := NewVertexTable(normalized)
	if options.Validate {
		if err := ValidateSimple(vt); err != nil {
			return nil, err
		}
	}

	triangles := TriangulateVertexTable(vt, Order{Epsilon: options.Epsilon})
	mesh = AssembleMesh(vt, triangles, options.Mesh)
	Logger().Debug("tessellated polygon",
		slog.Int("vertices", vt.Len()),
		slog.Int("holes", len(normalized.Holes)),
		slog.Int("triangles", mesh.TriangleCount()),
		slog.Int("meshVertices", len(mesh.Vertices)),
	)
	return mesh, nil
}

// The algorithmic core, without validation or mesh assembly. Panics with an
// *InvalidMonotoneChainError on internal failure.
func TriangulateVertexTable(vt *VertexTable, order Order) []Triangle {
	events, kinds := BuildEvents(vt, order)
	if debugEnabled() {
		for _, event := range events {
			Logger().Debug("event",
				slog.String("vertex", dbg.Name(vt.Points[event.Vertex])),
				slog.Any("point", vt.Points[event.Vertex]),
				slog.String("kind", event.Kind.DbgName()),
			)
		}
	}

	sweep := NewSweep(vt, kinds, order)
	sweep.Run(events)
	if debugEnabled() {
		for _, d := range sweep.Diagonals {
			Logger().Debug("diagonal",
				slog.String("from", dbg.Name(vt.Points[d[0]])),
				slog.String("to", dbg.Name(vt.Points[d[1]])),
			)
		}
	}

	pieces := SplitPieces(vt, sweep.Diagonals)
	Logger().Debug("monotone partition",
		slog.Int("events", len(events)),
		slog.Int("diagonals", len(sweep.Diagonals)),
		slog.Int("pieces", len(pieces)),
	)

	triangles := make([]Triangle, 0, vt.Len())
	for _, piece := range pieces {
		triangles = append(triangles, TriangulateMonotone(vt, piece, order)...)
	}
	return triangles
}
