package main

import (
	"fmt"
	"io"

	"github.com/osuushi/tessellate"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlMesh struct {
	Vertices  [][2]float64 `yaml:"vertices"`
	Triangles [][3]uint32  `yaml:"triangles"`
}

func writeMesh(out io.Writer, mesh *tessellate.Mesh, format string) error {
	switch format {
	case "yaml":
		doc := yamlMesh{
			Vertices:  make([][2]float64, len(mesh.Vertices)),
			Triangles: make([][3]uint32, mesh.TriangleCount()),
		}
		for i, p := range mesh.Vertices {
			doc.Vertices[i] = [2]float64{p.X, p.Y}
		}
		for i := range doc.Triangles {
			copy(doc.Triangles[i][:], mesh.Indices[3*i:3*i+3])
		}
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return encoder.Close()
	case "text":
		fmt.Fprintf(out, "vertices %d\n", len(mesh.Vertices))
		for _, p := range mesh.Vertices {
			fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
		}
		fmt.Fprintf(out, "triangles %d\n", mesh.TriangleCount())
		for i := 0; i < mesh.TriangleCount(); i++ {
			fmt.Fprintf(out, "%d %d %d\n", mesh.Indices[3*i], mesh.Indices[3*i+1], mesh.Indices[3*i+2])
		}
		return nil
	}
	return errors.Errorf("unknown format %q", format)
}
