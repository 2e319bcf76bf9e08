package geom

// SegmentInPolygon reports whether the whole closed segment lies inside the
// polygon, boundary included. The polygon may be concave.
//
// Endpoint containment plus the absence of proper crossings is not enough: a
// segment can leave the polygon through a vertex, or run across a notch
// between two boundary points, without ever crossing an edge at an interior
// point. So every place where the segment touches the boundary gets a local
// test: the parts of the segment leaving that point must head into the
// interior (or along the boundary).
func SegmentInPolygon(seg Segment, poly Polygon) bool {
	if !PointInPolygon(seg.A, poly) || !PointInPolygon(seg.B, poly) {
		return false
	}
	if seg.IsDegenerate() {
		return true
	}

	orientation := poly.Orientation()
	for i, vertex := range poly {
		edge := poly.Edge(i)

		switch hit := SegmentIntersection(seg, edge); hit.Kind {
		case InternalIntersection:
			return false
		case EndpointIntersection:
			// Contact at a polygon vertex is handled by the corner test below.
			// Otherwise one of our endpoints may rest on the middle of this edge.
			// The classifier only tells us that the supporting lines meet there,
			// so confirm the contact before judging the direction.
			if hit.Point != edge.A && hit.Point != edge.B && edge.Contains(hit.Point) {
				ray := seg.otherEnd(hit.Point).Sub(hit.Point)
				if !rayInsideEdge(edge, ray, orientation) {
					return false
				}
			}
		}

		if seg.Contains(vertex) {
			prev := poly[CircularIndex(i-1, len(poly))]
			next := edge.B
			for _, end := range [2]Point{seg.A, seg.B} {
				if end == vertex {
					continue
				}
				if !rayInsideCorner(vertex, prev, next, end.Sub(vertex), orientation) {
					return false
				}
			}
		}
	}
	return true
}

func (s Segment) otherEnd(p Point) Point {
	if p == s.A {
		return s.B
	}
	return s.A
}

// A ray starting on the interior of an edge stays inside when it points to
// the interior side of the edge or runs along it.
func rayInsideEdge(edge Segment, ray Point, orientation int64) bool {
	return orientation*edge.B.Sub(edge.A).Cross(ray) >= 0
}

// A ray starting at a polygon vertex stays inside when it lies in the closed
// angular sector of the interior at that vertex. With positive orientation the
// interior is swept counterclockwise from the outgoing edge to the incoming
// edge (reversed); with negative orientation, the other way around.
func rayInsideCorner(vertex, prev, next, ray Point, orientation int64) bool {
	toNext := next.Sub(vertex)
	toPrev := prev.Sub(vertex)
	if orientation > 0 {
		return angleWithin(toNext, toPrev, ray)
	}
	return angleWithin(toPrev, toNext, ray)
}

// angleWithin reports whether ray lies in the closed sector swept
// counterclockwise from `from` to `to`.
func angleWithin(from, to, ray Point) bool {
	return compareAngles(from, ray, to) <= 0
}

// compareAngles orders u and v by their counterclockwise angle from base, each
// angle taken in [0, 2π). It returns -1, 0, or 1.
func compareAngles(base, u, v Point) int {
	hu, hv := halfTurn(base, u), halfTurn(base, v)
	if hu != hv {
		if hu < hv {
			return -1
		}
		return 1
	}
	// Within one half turn, the cross product orders the angles.
	switch c := u.Cross(v); {
	case c > 0:
		return -1
	case c < 0:
		return 1
	}
	return 0
}

// halfTurn is 0 when v is in [0, π) counterclockwise from base, and 1 when it
// is in [π, 2π).
func halfTurn(base, v Point) int {
	c := base.Cross(v)
	if c > 0 || (c == 0 && base.Dot(v) > 0) {
		return 0
	}
	return 1
}
