package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Drawing helpers for previews and debugging. None of this is used by the
// engine itself.

// Padding around the shape, in pixels
const drawPadding = 20

// DrawPreview renders the polygon in red and the mesh triangles in green on
// top of it, with the triangle edges stroked. Any red left showing is a gap in
// the mesh. The y axis points up.
func DrawPreview(poly Polygon, mesh *Mesh, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ring := range poly.Rings() {
		for _, p := range ring {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Polygon, with holes by the even-odd rule
	c.SetFillRuleEvenOdd()
	for _, ring := range poly.Rings() {
		if len(ring) == 0 {
			continue
		}
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(1, 0, 0)
	c.Fill()

	if mesh == nil {
		return c
	}

	c.SetFillRuleWinding()
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		c.MoveTo(tri[0].X, tri[0].Y)
		c.LineTo(tri[1].X, tri[1].Y)
		c.LineTo(tri[2].X, tri[2].Y)
		c.ClosePath()
		c.SetRGB(0, 1, 0)
		c.FillPreserve()
		c.SetRGB(0, 0.4, 0)
		c.SetLineWidth(1)
		c.Stroke()
	}
	return c
}

// SavePreview writes the context to a PNG file, and if terminal is non-nil,
// also prints it there (iTerm only).
func SavePreview(c *gg.Context, path string, terminal io.Writer) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "saving preview")
	}
	if terminal != nil {
		return errors.Wrap(imgcat.CatFile(path, terminal), "printing preview")
	}
	return nil
}
