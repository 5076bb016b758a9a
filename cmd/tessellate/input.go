package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/tessellate"
	"github.com/pkg/errors"
)

// Glyph outline from a font renderer. Handy for trying the tool without an
// input file.
var sampleRing = tessellate.Ring{
	{X: 0.8898926, Y: 0.796875},
	{X: 0.8876953, Y: 0.79541016},
	{X: 0.8845215, Y: 0.80029297},
	{X: 0.8857422, Y: 0.8010254},
	{X: 0.88427734, Y: 0.80371094},
	{X: 0.88500977, Y: 0.8041992},
	{X: 0.88378906, Y: 0.8059082},
	{X: 0.8847656, Y: 0.8063965},
	{X: 0.8898926, Y: 0.796875},
}

// Input should be newline separated points in the form "x y", with each ring
// separated by an extra newline. The first ring is the exterior, and the rest
// are holes.
func readPolygon(in io.Reader) (tessellate.Polygon, error) {
	var rings []tessellate.Ring
	// Scan lines
	scanner := bufio.NewScanner(in)
	var ring tessellate.Ring
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return tessellate.Polygon{}, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return tessellate.Polygon{}, errors.Wrap(err, "reading input")
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return polygonFromRings(rings)
}

func parsePoint(line string) (tessellate.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return tessellate.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return tessellate.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return tessellate.Point{}, errors.Wrap(err, "parsing y")
	}
	return tessellate.Point{X: x, Y: y}, nil
}

// Every <polygon> element is a ring, in document order.
func readSVG(in io.Reader) (tessellate.Polygon, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return tessellate.Polygon{}, errors.Wrap(err, "parsing svg")
	}

	var rings []tessellate.Ring
	for i, el := range root.FindAll("polygon") {
		var ring tessellate.Ring
		for _, pair := range strings.Fields(el.Attributes["points"]) {
			point, err := parsePoint(strings.Replace(pair, ",", " ", 1))
			if err != nil {
				return tessellate.Polygon{}, errors.Wrapf(err, "polygon %d", i)
			}
			ring = append(ring, point)
		}
		rings = append(rings, ring)
	}
	return polygonFromRings(rings)
}

func polygonFromRings(rings []tessellate.Ring) (tessellate.Polygon, error) {
	if len(rings) == 0 {
		return tessellate.Polygon{}, errors.New("no rings in input")
	}
	return tessellate.Polygon{Exterior: rings[0], Holes: rings[1:]}, nil
}
