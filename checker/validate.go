package checker

import (
	"math"

	"github.com/osuushi/brainwall/geom"
	"github.com/osuushi/brainwall/internal/throw"
	"github.com/osuushi/brainwall/problem"
)

type EdgeStatus struct {
	FitsInHole   bool  `json:"fits_in_hole"`
	ActualLength int64 `json:"actual_length"`
	MinLength    int64 `json:"min_length"`
	MaxLength    int64 `json:"max_length"`
}

// LengthOK reports whether the actual squared length is within range.
func (s EdgeStatus) LengthOK() bool {
	return s.MinLength <= s.ActualLength && s.ActualLength <= s.MaxLength
}

// Verdict is the outcome of checking one pose.
type Verdict struct {
	// One per checked edge, in the order of Checker.Edges.
	EdgeStatuses []EdgeStatus `json:"edge_statuses"`
	Dislikes     int64        `json:"dislikes"`
	Valid        bool         `json:"valid"`
	// Which of the problem's bonus offers the pose unlocks, in order. This
	// does not depend on validity.
	Unlocked []bool `json:"unlocked"`
	// Under GLOBALIST, the total relative deviation of all edges in parts per
	// million, rounded up. The budget is len(edges) * epsilon.
	GlobalDeviation *int64 `json:"global_deviation,omitempty"`

	// The parts of Valid.
	LengthValid      bool `json:"-"`
	ContainmentValid bool `json:"-"`
	SingleBonus      bool `json:"-"`
	// The vertex WALLHACK let out of the hole, or -1.
	ExcusedVertex int `json:"-"`
}

// Validate checks a pose. The pose must have exactly VertexCount vertices,
// all within geom.MaxCoord.
//
// The bonus in effect is the checker's. The pose's own declarations only
// matter in that declaring more than one bonus makes the pose invalid.
func (c *Checker) Validate(pose *problem.Pose) *Verdict {
	if len(pose.Vertices) != c.vertexCount {
		throw.Fatalf("pose has %d vertices, expected %d", len(pose.Vertices), c.vertexCount)
	}
	checkBounds(pose.Vertices)

	verdict := &Verdict{
		EdgeStatuses:  make([]EdgeStatus, len(c.edges)),
		ExcusedVertex: -1,
	}
	for i, e := range c.edges {
		p1, p2 := pose.Vertices[e.U], pose.Vertices[e.V]
		verdict.EdgeStatuses[i] = EdgeStatus{
			FitsInHole:   c.EdgeInHole(p1, p2),
			ActualLength: p1.Dist2(p2),
			MinLength:    c.ranges[i].Min,
			MaxLength:    c.ranges[i].Max,
		}
	}

	verdict.LengthValid = c.lengthValid(verdict)
	verdict.ContainmentValid, verdict.ExcusedVertex = c.containmentValid(pose, verdict.EdgeStatuses)
	verdict.SingleBonus = len(pose.Bonuses) <= 1
	verdict.Valid = verdict.LengthValid && verdict.ContainmentValid && verdict.SingleBonus

	verdict.Dislikes = Dislikes(c.problem.Hole, pose.Vertices)
	verdict.Unlocked = UnlockedBonuses(c.problem, pose.Vertices)
	return verdict
}

func (c *Checker) lengthValid(verdict *Verdict) bool {
	violations := 0
	for _, s := range verdict.EdgeStatuses {
		if !s.LengthOK() {
			violations++
		}
	}

	switch c.bonus.(type) {
	case nil, problem.Wallhack, problem.BreakALeg:
		return violations == 0
	case problem.Superflex:
		return violations <= 1
	case problem.Globalist:
		deviation := c.globalDeviation(verdict.EdgeStatuses)
		ppm := ceilPPM(deviation)
		verdict.GlobalDeviation = &ppm
		return deviation.Cmp(c.globalBudget()) <= 0
	}
	throw.Fatalf("unknown bonus %T", c.bonus)
	return false
}

// containmentValid also returns the vertex excused by WALLHACK, or -1.
func (c *Checker) containmentValid(pose *problem.Pose, statuses []EdgeStatus) (bool, int) {
	switch c.bonus.(type) {
	case nil, problem.Globalist, problem.BreakALeg, problem.Superflex:
		for _, s := range statuses {
			if !s.FitsInHole {
				return false, -1
			}
		}
		return true, -1
	case problem.Wallhack:
		return c.wallhackValid(pose, statuses)
	}
	throw.Fatalf("unknown bonus %T", c.bonus)
	return false, -1
}

// Every edge that does not fit must have exactly one endpoint outside the
// hole, and that endpoint must be the same vertex for all of them.
func (c *Checker) wallhackValid(pose *problem.Pose, statuses []EdgeStatus) (bool, int) {
	excused := -1
	for i, s := range statuses {
		if s.FitsInHole {
			continue
		}
		e := c.edges[i]
		uInside := c.PointInHole(pose.Vertices[e.U])
		vInside := c.PointInHole(pose.Vertices[e.V])

		var outside int
		switch {
		case uInside && !vInside:
			outside = e.V
		case !uInside && vInside:
			outside = e.U
		default:
			return false, -1
		}

		if excused >= 0 && excused != outside {
			return false, -1
		}
		excused = outside
	}
	return true, excused
}

// ForPose builds a checker with the bonus the pose declares. Declaring more
// than one bonus is a precondition failure.
func ForPose(p *problem.Problem, pose *problem.Pose) *Checker {
	bonus, ok := pose.Bonus()
	if !ok {
		throw.Fatalf("pose declares %d bonuses, at most one is allowed", len(pose.Bonuses))
	}
	return New(p, bonus)
}

// CheckPose validates a pose under the bonus it declares.
func CheckPose(p *problem.Problem, pose *problem.Pose) *Verdict {
	return ForPose(p, pose).Validate(pose)
}

// Dislikes sums, over the hole's vertices, the squared distance to the
// nearest pose vertex.
func Dislikes(hole geom.Polygon, vertices []geom.Point) int64 {
	if len(vertices) == 0 {
		throw.Fatalf("cannot score a pose with no vertices")
	}
	checkBounds(vertices)
	var total int64
	for _, h := range hole {
		nearest := int64(math.MaxInt64)
		for _, v := range vertices {
			if d := h.Dist2(v); d < nearest {
				nearest = d
			}
		}
		total += nearest
	}
	return total
}

// UnlockedBonuses reports, for each bonus the problem offers, whether some
// vertex sits exactly on its position.
func UnlockedBonuses(p *problem.Problem, vertices []geom.Point) []bool {
	occupied := make(map[geom.Point]bool, len(vertices))
	for _, v := range vertices {
		occupied[v] = true
	}
	unlocked := make([]bool, len(p.Bonuses))
	for i, offer := range p.Bonuses {
		unlocked[i] = occupied[offer.Position]
	}
	return unlocked
}

// Beyond MaxCoord the squared distances and cross products overflow int64.
func checkBounds(vertices []geom.Point) {
	for i, v := range vertices {
		if !v.InBounds() {
			throw.Fatalf("pose vertex %d %v is out of bounds", i, v)
		}
	}
}
