package geom

import "github.com/osuushi/brainwall/internal/throw"

type Segment struct {
	A, B Point
}

func Seg(a, b Point) Segment {
	return Segment{a, b}
}

// Reversed swaps the endpoints.
func (s Segment) Reversed() Segment {
	return Segment{s.B, s.A}
}

// IsDegenerate reports whether the segment has zero length.
func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

// Contains reports whether p lies on the closed segment.
func (s Segment) Contains(p Point) bool {
	if s.B.Sub(s.A).Cross(p.Sub(s.A)) != 0 {
		return false
	}
	return minInt(s.A.X, s.B.X) <= p.X && p.X <= maxInt(s.A.X, s.B.X) &&
		minInt(s.A.Y, s.B.Y) <= p.Y && p.Y <= maxInt(s.A.Y, s.B.Y)
}

type IntersectionKind int

const (
	// Either the segments are disjoint, or they are parallel. Collinear
	// overlapping segments are deliberately reported here as well.
	NoIntersection IntersectionKind = iota
	// The segments meet at exactly one point, and that point is an endpoint of
	// at least one of them.
	EndpointIntersection
	// The segments cross at a point interior to both.
	InternalIntersection
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "No"
	case EndpointIntersection:
		return "Endpoint"
	case InternalIntersection:
		return "Internal"
	}
	return "Unknown"
}

type Intersection struct {
	Kind IntersectionKind
	// Only meaningful for EndpointIntersection.
	Point Point
}

// SegmentIntersection classifies how two segments meet. Both segments must
// have non-zero length.
//
// The classification is symmetric: swapping the arguments gives the same
// answer. Parallel segments never intersect, even if they overlap; callers
// that care about collinear contact must test for it separately.
func SegmentIntersection(s1, s2 Segment) Intersection {
	if s1.IsDegenerate() || s2.IsDegenerate() {
		throw.Fatalf("zero length segment in intersection test: %v, %v", s1, s2)
	}

	// Intersection of the two bounding boxes
	bbX1 := maxInt(minInt(s1.A.X, s1.B.X), minInt(s2.A.X, s2.B.X))
	bbY1 := maxInt(minInt(s1.A.Y, s1.B.Y), minInt(s2.A.Y, s2.B.Y))
	bbX2 := minInt(maxInt(s1.A.X, s1.B.X), maxInt(s2.A.X, s2.B.X))
	bbY2 := minInt(maxInt(s1.A.Y, s1.B.Y), maxInt(s2.A.Y, s2.B.Y))
	if bbX1 > bbX2 || bbY1 > bbY2 {
		return Intersection{Kind: NoIntersection}
	}

	d1 := s1.B.Sub(s1.A)
	d2 := s2.B.Sub(s2.A)
	if d1.Cross(d2) == 0 {
		return Intersection{Kind: NoIntersection}
	}

	// Signed distances (scaled) of s2's endpoints from the line through s1.
	// They differ because the directions are not parallel.
	alpha := d1.Cross(s2.A.Sub(s1.A))
	beta := d1.Cross(s2.B.Sub(s1.A))

	// The intersection point is (xNumer/denom, yNumer/denom). We never divide.
	denom := beta - alpha
	xNumer := s2.A.X*beta - s2.B.X*alpha
	yNumer := s2.A.Y*beta - s2.B.Y*alpha
	if denom < 0 {
		denom = -denom
		xNumer = -xNumer
		yNumer = -yNumer
	}

	for _, p := range [4]Point{s1.A, s1.B, s2.A, s2.B} {
		if p.X*denom == xNumer && p.Y*denom == yNumer {
			return Intersection{Kind: EndpointIntersection, Point: p}
		}
	}

	if bbX1*denom <= xNumer && xNumer <= bbX2*denom &&
		bbY1*denom <= yNumer && yNumer <= bbY2*denom {
		return Intersection{Kind: InternalIntersection}
	}
	return Intersection{Kind: NoIntersection}
}
