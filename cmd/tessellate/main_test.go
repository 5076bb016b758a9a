package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const squareWithHole = `0 0
10 0
10 10
0 10

4 4
6 4
6 6
4 6
`

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newCLI().run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMesh_Text(t *testing.T) {
	stdout, stderr, err := runCLI(t, squareWithHole, "mesh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "vertices 8\n"), stdout)
	assert.Contains(t, stdout, "triangles 8\n")
	assert.Contains(t, stderr, "triangles=8")
}

func TestMesh_DefaultCommand(t *testing.T) {
	stdout, _, err := runCLI(t, squareWithHole)
	require.NoError(t, err)
	assert.Contains(t, stdout, "triangles 8\n")
}

func TestMesh_YAML(t *testing.T) {
	stdout, _, err := runCLI(t, squareWithHole, "mesh", "--format", "yaml", "--no-dedupe")
	require.NoError(t, err)

	var doc yamlMesh
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Len(t, doc.Vertices, 24)
	assert.Len(t, doc.Triangles, 8)
}

func TestMesh_Sample(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--sample", "mesh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "vertices 8\n")
	assert.Contains(t, stdout, "triangles 6\n")
}

func TestMesh_SVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 10,0 10,10 0,10" />
  <polygon points="4,4 6,4 6,6 4,6" />
</svg>`
	stdout, _, err := runCLI(t, svg, "--svg", "mesh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "triangles 8\n")
}

func TestMesh_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dedupe_vertices: false\n"), 0o644))
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(squareWithHole), 0o644))

	stdout, _, err := runCLI(t, "", "--config", configPath, "mesh", inputPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "vertices 24\n")
}

func TestMesh_EpsilonOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	// Large enough that the hole is thinner than epsilon
	require.NoError(t, os.WriteFile(configPath, []byte("epsilon: 5\n"), 0o644))

	_, _, err := runCLI(t, squareWithHole, "--config", configPath, "mesh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero area")

	stdout, _, err := runCLI(t, squareWithHole, "--config", configPath, "--epsilon", "0", "mesh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "triangles 8\n")

	_, _, err = runCLI(t, squareWithHole, "--epsilon", "nope", "mesh")
	assert.Error(t, err)
}

func TestOptionalFloat(t *testing.T) {
	var f optionalFloat
	assert.Equal(t, "", f.String())
	require.NoError(t, f.Set("0"))
	assert.True(t, f.set)
	assert.Zero(t, f.value)
	assert.Equal(t, "0", f.String())

	require.NoError(t, f.Set("1e-3"))
	assert.Equal(t, "0.001", f.String())

	var bad optionalFloat
	assert.Error(t, bad.Set("x"))
	assert.False(t, bad.set)
}

func TestMesh_Errors(t *testing.T) {
	_, _, err := runCLI(t, "0 0\n1 1\n", "mesh")
	assert.Error(t, err)

	_, _, err = runCLI(t, "0 0\nnope\n", "mesh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = runCLI(t, "", "mesh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rings")

	_, _, err = runCLI(t, "0 0\n4 4\n4 0\n0 2\n", "--validate", "mesh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intersects")
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mesh.png")
	_, _, err := runCLI(t, squareWithHole, "render", "--out", out, "--scale", "5")
	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestReadPolygon(t *testing.T) {
	poly, err := readPolygon(strings.NewReader("\n0 0\n1 0\n  1 1  \n\n\n"))
	require.NoError(t, err)
	assert.Len(t, poly.Exterior, 3)
	assert.Empty(t, poly.Holes)
}
