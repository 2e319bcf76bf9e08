// Package problem holds the data model of a figure-in-hole puzzle: the hole,
// the flexible figure, and the bonuses on offer, plus poses that place the
// figure. It also reads and writes the JSON wire format.
package problem

import (
	"github.com/osuushi/brainwall/geom"
	"github.com/pkg/errors"
)

// Edge joins two figure vertices by index.
type Edge struct {
	U, V int
}

// Reversed swaps the endpoints.
func (e Edge) Reversed() Edge {
	return Edge{e.V, e.U}
}

// Same reports whether the two edges join the same vertices, in either order.
func (e Edge) Same(other Edge) bool {
	return e == other || e == other.Reversed()
}

type Figure struct {
	Vertices []geom.Point `json:"vertices"`
	Edges    []Edge       `json:"edges"`
}

// OriginalLength is the squared length of an edge in the figure as given.
func (f *Figure) OriginalLength(e Edge) int64 {
	return f.Vertices[e.U].Dist2(f.Vertices[e.V])
}

// BonusOffer is a bonus the problem makes available. Putting any pose vertex
// exactly on Position unlocks it for use in the target problem.
type BonusOffer struct {
	Bonus    BonusKind  `json:"bonus"`
	Problem  int        `json:"problem"`
	Position geom.Point `json:"position"`
}

type Problem struct {
	Hole    geom.Polygon `json:"hole"`
	Figure  Figure       `json:"figure"`
	Epsilon int64        `json:"epsilon"`
	Bonuses []BonusOffer `json:"bonuses,omitempty"`
}

// MaxEpsilon is the largest deformation allowed, in parts per million of the
// squared length. It is 100%.
const MaxEpsilon = 1_000_000

// Validate checks the structure of the problem: the hole is a real polygon,
// every coordinate is within geom.MaxCoord, edges refer to existing vertices
// and have non-zero length, and epsilon is in range.
func (p *Problem) Validate() error {
	if len(p.Hole) < 3 {
		return errors.Errorf("hole has %d points, need at least 3", len(p.Hole))
	}
	for i, pt := range p.Hole {
		if !pt.InBounds() {
			return errors.Errorf("hole point %d %v is out of bounds", i, pt)
		}
	}
	if p.Hole.SignedArea2() == 0 {
		return errors.New("hole has zero area")
	}

	for i, pt := range p.Figure.Vertices {
		if !pt.InBounds() {
			return errors.Errorf("figure vertex %d %v is out of bounds", i, pt)
		}
	}
	for _, b := range p.Bonuses {
		if !b.Position.InBounds() {
			return errors.Errorf("%s bonus position %v is out of bounds", b.Bonus, b.Position)
		}
	}

	n := len(p.Figure.Vertices)
	for i, e := range p.Figure.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return errors.Errorf("edge %d %v refers to a missing vertex (figure has %d)", i, e, n)
		}
		if p.Figure.OriginalLength(e) == 0 {
			return errors.Errorf("edge %d %v has zero length", i, e)
		}
	}

	if p.Epsilon < 0 || p.Epsilon > MaxEpsilon {
		return errors.Errorf("epsilon %d is outside [0, %d]", p.Epsilon, MaxEpsilon)
	}
	return nil
}
