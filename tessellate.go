// A polygon tessellation package for Go.
//
// This package converts a simple polygon, which may be non-convex and may
// contain holes, into a triangle mesh that exactly covers its interior, using
// only the original points. The mesh is a vertex table plus an index buffer,
// ready to hand to a rasterizer that only draws triangles.
//
// The algorithm is the classic plane sweep: the polygon is split into
// y-monotone pieces with diagonals, then each piece is triangulated in linear
// time. Tessellating a polygon with n vertices takes O(n log n) time.
package tessellate

import (
	"context"
	"runtime"
	"sync"

	"github.com/osuushi/tessellate/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Ring = internal.Ring
type Polygon = internal.Polygon
type Mesh = internal.Mesh

// Tessellate a single polygon.
//
// The rings must be simple and must not intersect each other, and every hole
// must lie inside the exterior. The winding of the rings does not matter; it
// is normalized internally. These requirements are not validated unless
// WithValidation is given, and the output for input that breaks them is
// undefined.
//
// Tessellate is a pure function of its input. It is safe to call from multiple
// goroutines at once.
func Tessellate(poly Polygon, opts ...Option) (*Mesh, error) {
	config := NewConfig(opts...)
	if err := config.Check(); err != nil {
		return nil, err
	}
	return internal.Tessellate(poly, config.engineOptions())
}

// Tessellate independent polygons concurrently. The meshes are returned in the
// same order as the polygons.
//
// A single tessellation cannot be interrupted, so the context is only checked
// between polygons. If any polygon fails, the remaining ones are skipped, and
// the error is returned wrapped with the index of the polygon that failed.
func TessellateAll(ctx context.Context, polygons []Polygon, opts ...Option) ([]*Mesh, error) {
	config := NewConfig(opts...)
	if err := config.Check(); err != nil {
		return nil, err
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(polygons) {
		workers = len(polygons)
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	meshes := make([]*Mesh, len(polygons))
	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				mesh, err := internal.Tessellate(polygons[i], config.engineOptions())
				if err != nil {
					errOnce.Do(func() {
						firstErr = errors.Wrapf(err, "polygon %d", i)
						cancel()
					})
					continue
				}
				meshes[i] = mesh
			}
		}()
	}

feed:
	for i := range polygons {
		select {
		case <-workCtx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return meshes, nil
}

// Build a ring from interleaved x, y coordinates.
func RingFromFloat32s(xy []float32) (Ring, error) {
	if len(xy)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(xy))
	}
	ring := make(Ring, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		ring = append(ring, Point{X: float64(xy[i]), Y: float64(xy[i+1])})
	}
	return ring, nil
}

// Build a ring from interleaved x, y coordinates.
func RingFromFloat64s(xy []float64) (Ring, error) {
	if len(xy)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(xy))
	}
	ring := make(Ring, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		ring = append(ring, Point{X: xy[i], Y: xy[i+1]})
	}
	return ring, nil
}
