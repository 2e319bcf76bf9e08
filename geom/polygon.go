package geom

import "github.com/osuushi/brainwall/internal/throw"

// Polygon is a simple polygon given by its vertices. The last vertex connects
// back to the first. Either winding is accepted.
type Polygon []Point

// Often we want to treat a slice as a circular buffer. This gives the modular
// index for length n, but unlike the raw modulo operator, it is never negative.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Edge returns the i-th boundary segment, from vertex i to vertex i+1.
func (poly Polygon) Edge(i int) Segment {
	return Segment{poly[i], poly[CircularIndex(i+1, len(poly))]}
}

// Edges lists the closed boundary.
func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly))
	for i := range poly {
		edges[i] = poly.Edge(i)
	}
	return edges
}

// SignedArea2 is twice the signed area. It is positive when the vertices run
// counterclockwise in the y-up sense (which looks clockwise on a y-down
// screen).
func (poly Polygon) SignedArea2() int64 {
	var area int64
	for i, p := range poly {
		area += p.Cross(poly[CircularIndex(i+1, len(poly))])
	}
	return area
}

// Orientation is +1 when the interior lies to the left of every directed edge
// (positive cross product), and -1 when it lies to the right.
func (poly Polygon) Orientation() int64 {
	area := poly.SignedArea2()
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	}
	throw.Fatalf("degenerate polygon with zero area: %v", poly)
	return 0
}

// Reverse returns the polygon with the opposite winding.
func (poly Polygon) Reverse() Polygon {
	reversed := make(Polygon, len(poly))
	for i, p := range poly {
		reversed[len(poly)-1-i] = p
	}
	return reversed
}

// Rotate returns the same polygon starting at vertex k.
func (poly Polygon) Rotate(k int) Polygon {
	rotated := make(Polygon, len(poly))
	for i := range poly {
		rotated[i] = poly[CircularIndex(i+k, len(poly))]
	}
	return rotated
}

// PointInPolygon is a ray casting test with the boundary counted as inside.
// It uses only integer arithmetic, and its answer does not depend on which
// vertex the polygon starts at or on its winding.
func PointInPolygon(p Point, poly Polygon) bool {
	odd := false
	for i, p1 := range poly {
		p2 := poly[CircularIndex(i+1, len(poly))]
		if p == p1 {
			return true
		}

		if p1.Y == p2.Y {
			// Horizontal edges never toggle parity, but the point may sit on one
			if p.Y == p1.Y && minInt(p1.X, p2.X) <= p.X && p.X <= maxInt(p1.X, p2.X) {
				return true
			}
			continue
		}

		// Half open on y so that a ray through a vertex is counted once
		if minInt(p1.Y, p2.Y) <= p.Y && p.Y < maxInt(p1.Y, p2.Y) {
			// x of the edge at height p.Y is xNumer/denom
			tNumer := p.Y - p1.Y
			denom := p2.Y - p1.Y
			xNumer := p1.X*denom + tNumer*(p2.X-p1.X)
			if denom < 0 {
				denom = -denom
				xNumer = -xNumer
			}
			edgeX := p.X * denom
			switch {
			case xNumer == edgeX:
				return true
			case xNumer > edgeX:
				odd = !odd
			}
		}
	}
	return odd
}

// BoundingBox returns the min and max corners of the points. ok is false when
// there are no points.
func BoundingBox(points []Point) (min, max Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, false
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = minInt(min.X, p.X)
		min.Y = minInt(min.Y, p.Y)
		max.X = maxInt(max.X, p.X)
		max.Y = maxInt(max.Y, p.Y)
	}
	return min, max, true
}

// LatticePointsInside lists every integer point inside the polygon or on its
// boundary, row by row.
func LatticePointsInside(poly Polygon) []Point {
	min, max, ok := BoundingBox(poly)
	if !ok {
		return nil
	}
	var inside []Point
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			p := Point{x, y}
			if PointInPolygon(p, poly) {
				inside = append(inside, p)
			}
		}
	}
	return inside
}
