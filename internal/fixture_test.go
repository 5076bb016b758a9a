package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. The first <polygon> element is the exterior
// ring, and every following one is a hole. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var result Polygon
	for i, polygonEl := range polygons {
		ring := parsePoints(polygonEl.Attributes["points"])
		if i == 0 {
			result.Exterior = ring
		} else {
			result.Holes = append(result.Holes, ring)
		}
	}
	return result
}

func parsePoints(pointString string) Ring {
	pointStrings := strings.Split(pointString, " ")
	ring := make(Ring, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		ring = append(ring, Point{x, y})
	}
	return ring
}

// Some ad hoc code specified fixtures

func makeStar(x, y, outerRadius, innerRadius float64) Ring {
	ring := make(Ring, 0, 10)
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		ring = append(ring, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return ring
}

func SimpleStar() Polygon {
	return Polygon{Exterior: makeStar(0, 0, 5, 2)}
}

func regularPolygon(n int) Polygon {
	ring := make(Ring, n)
	for i := range ring {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return Polygon{Exterior: ring}
}

func UnitSquare() Polygon {
	return Polygon{Exterior: Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
}

// 10x10 square with a 4x4 hole in the middle. The hole is deliberately wound
// the "wrong" way (counterclockwise), so normalization has to fix it.
func SquareWithHole() Polygon {
	return Polygon{
		Exterior: Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Holes:    []Ring{{{3, 3}, {7, 3}, {7, 7}, {3, 7}}},
	}
}

func StarOutline() Polygon {
	return Polygon{
		Exterior: makeStar(0, 0, 10, 5),
		Holes:    []Ring{makeStar(0, 0, 8, 3).Reverse()},
	}
}

// A star with star shaped holes, each of which has a filled star inside. The
// inner stars are separate polygons, since a hole may not contain anything.
func MultiLayeredHoles() []Polygon {
	return []Polygon{
		{
			Exterior: makeStar(0, 0, 10, 7),
			Holes: []Ring{
				makeStar(1.5, 5, 3, 2),
				makeStar(1.8, -5, 3, 2),
				makeStar(-3, 0, 4, 2),
			},
		},
		{Exterior: makeStar(1.5, 5, 2, 1)},
		{Exterior: makeStar(1.8, -5, 2, 1)},
		{Exterior: makeStar(-3, 0, 3, 1)},
	}
}

// 100x100 square with a 3x3 grid of square holes.
func GridOfHoles() Polygon {
	poly := Polygon{Exterior: Ring{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x, y := float64(10+i*30), float64(10+j*30)
			poly.Holes = append(poly.Holes, Ring{{x, y}, {x + 10, y}, {x + 10, y + 10}, {x, y + 10}})
		}
	}
	return poly
}
