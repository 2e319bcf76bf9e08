package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds the one polygon in the file and
// converts its points into an integer Polygon, keeping the winding as drawn.
// If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

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
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var result Polygon
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseInt(coords[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseInt(coords[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		result = append(result, Pt(x, y))
	}
	return result
}

// Some ad hoc fixtures

func Square(size int64) Polygon {
	return Polygon{{0, 0}, {size, 0}, {size, size}, {0, size}}
}

// A square with an extra vertex in the middle of its bottom edge
func SquareWithCollinearVertex() Polygon {
	return Polygon{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
}

// The teeth of a comb point up; each of the gaps between teeth dips down to a
// reflex vertex at height 4.
func Comb(gaps int) Polygon {
	poly := Polygon{{0, 0}, {int64(4 * gaps), 0}}
	for i := gaps; i > 0; i-- {
		right := int64(4 * i)
		poly = append(poly, Pt(right, 10), Pt(right-2, 4))
	}
	poly = append(poly, Pt(0, 10))
	return poly
}
