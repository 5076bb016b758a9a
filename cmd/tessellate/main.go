// Command tessellate reads a polygon with holes and prints its triangle mesh,
// or renders a PNG preview of it.
//
// Text input on stdin (or a file) should be newline separated points in the
// form "x y", with each ring separated by an extra newline. The first ring is
// the exterior, and the rest are holes. With --svg, every <polygon> element is
// a ring instead.
package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/osuushi/tessellate"
	"github.com/osuushi/tessellate/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type cli struct {
	app *kingpin.Application

	configPath *string
	epsilon    *optionalFloat
	noDedupe   *bool
	validate   *bool
	svg        *bool
	sample     *bool
	verbose    *bool

	mesh   *kingpin.CmdClause
	format *string
	input  *string

	render     *kingpin.CmdClause
	out        *string
	scale      *float64
	imgcat     *bool
	renderFile *string
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("tessellate", "Convert polygons with holes into triangle meshes.")}
	c.configPath = c.app.Flag("config", "YAML config file. Flags override it.").ExistingFile()
	c.epsilon = &optionalFloat{}
	c.app.Flag("epsilon", "Tolerance for treating y values as equal.").SetValue(c.epsilon)
	c.noDedupe = c.app.Flag("no-dedupe", "Emit a triangle soup instead of merging vertices.").Bool()
	c.validate = c.app.Flag("validate", "Reject self intersecting input.").Bool()
	c.svg = c.app.Flag("svg", "Read <polygon> elements from an SVG document.").Bool()
	c.sample = c.app.Flag("sample", "Ignore the input and use a built in sample ring.").Bool()
	c.verbose = c.app.Flag("verbose", "Log sweep events and diagonals.").Short('v').Bool()

	c.mesh = c.app.Command("mesh", "Print the mesh.").Default()
	c.format = c.mesh.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	c.input = c.mesh.Arg("file", "Input file. Defaults to stdin.").ExistingFile()

	c.render = c.app.Command("render", "Write a PNG preview of the polygon and its mesh.")
	c.out = c.render.Flag("out", "PNG file to write.").Required().String()
	c.scale = c.render.Flag("scale", "Pixels per unit.").Default("10").Float64()
	c.imgcat = c.render.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()
	c.renderFile = c.render.Arg("file", "Input file. Defaults to stdin.").ExistingFile()
	return c
}

func (c *cli) run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *c.verbose {
		level = slog.LevelDebug
	}
	tessellate.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer tessellate.SetLogger(nil)

	opts, err := c.options()
	if err != nil {
		return err
	}

	path := *c.input
	if command == c.render.FullCommand() {
		path = *c.renderFile
	}
	poly, err := c.readInput(path, stdin)
	if err != nil {
		return err
	}

	mesh, err := tessellate.Tessellate(poly, opts...)
	if err != nil {
		return errors.Wrap(err, "tessellating")
	}
	tessellate.Logger().Info("tessellated",
		slog.Int("triangles", mesh.TriangleCount()),
		slog.Int("vertices", len(mesh.Vertices)),
	)

	switch command {
	case c.render.FullCommand():
		var terminal io.Writer
		if *c.imgcat {
			terminal = stdout
		}
		preview := internal.DrawPreview(poly, mesh, *c.scale)
		return internal.SavePreview(preview, *c.out, terminal)
	default:
		return writeMesh(stdout, mesh, *c.format)
	}
}

// Options from the config file, with flags applied on top.
func (c *cli) options() ([]tessellate.Option, error) {
	var opts []tessellate.Option
	if *c.configPath != "" {
		data, err := os.ReadFile(*c.configPath)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		config, err := tessellate.ParseConfig(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tessellate.WithConfig(config))
	}
	if c.epsilon.set {
		opts = append(opts, tessellate.WithEpsilon(c.epsilon.value))
	}
	if *c.noDedupe {
		opts = append(opts, tessellate.WithDedupe(false))
	}
	if *c.validate {
		opts = append(opts, tessellate.WithValidation(true))
	}
	return opts, nil
}

// A float flag that remembers whether it was given, so zero can override a
// config file.
type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) Set(s string) error {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid number %q", s)
	}
	f.value, f.set = value, true
	return nil
}

func (f *optionalFloat) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (c *cli) readInput(path string, stdin io.Reader) (tessellate.Polygon, error) {
	if *c.sample {
		return tessellate.Polygon{Exterior: sampleRing}, nil
	}

	in := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return tessellate.Polygon{}, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	if *c.svg {
		return readSVG(in)
	}
	return readPolygon(in)
}

func main() {
	c := newCLI()
	err := c.run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	c.app.FatalIfError(err, "")
}
