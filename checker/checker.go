// Package checker decides whether a pose is legal for a problem, and scores
// it.
//
// A Checker is built once per problem and bonus, and then validates any
// number of poses. It memoizes which segments fit in the hole, since solvers
// tend to try the same edge placements over and over. A Checker is not safe
// for concurrent use; give each goroutine its own.
package checker

import (
	"github.com/osuushi/brainwall/geom"
	"github.com/osuushi/brainwall/internal/throw"
	"github.com/osuushi/brainwall/problem"
)

type Checker struct {
	problem *problem.Problem
	bonus   problem.Bonus

	// The edges checked, after any BREAK_A_LEG rewrite, and for each one the
	// length it is measured against and the lengths it may take.
	edges     []problem.Edge
	baselines []Baseline
	ranges    []Range

	vertexCount int

	adjacency [][]int
	edgeCache map[edgeKey]bool
	inside    []geom.Point
	stats     CacheStats
}

// A segment as its canonical coordinate quadruple: the lesser endpoint first.
type edgeKey [4]int64

type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// New builds a checker for the problem with the given bonus in effect, which
// may be nil. A malformed problem, or a BREAK_A_LEG on an edge the figure does
// not have, is fatal.
func New(p *problem.Problem, bonus problem.Bonus) *Checker {
	if err := p.Validate(); err != nil {
		throw.Fatalf("%v", err)
	}

	c := &Checker{
		problem:     p,
		bonus:       bonus,
		vertexCount: len(p.Figure.Vertices),
		edgeCache:   make(map[edgeKey]bool),
	}

	for _, e := range p.Figure.Edges {
		c.addEdge(e, Baseline{p.Figure.OriginalLength(e), 1})
	}

	switch b := bonus.(type) {
	case nil, problem.Globalist, problem.Wallhack, problem.Superflex:
	case problem.BreakALeg:
		c.breakLeg(b.Edge)
	default:
		throw.Fatalf("unknown bonus %T", bonus)
	}

	logger := Logger()
	logger.Debug("checker ready",
		"hole", len(p.Hole),
		"vertices", c.vertexCount,
		"edges", len(c.edges),
		"epsilon", p.Epsilon,
		"bonus", bonusName(bonus),
	)
	return c
}

func (c *Checker) addEdge(e problem.Edge, baseline Baseline) {
	c.edges = append(c.edges, e)
	c.baselines = append(c.baselines, baseline)
	c.ranges = append(c.ranges, baseline.Range(c.problem.Epsilon))
}

// breakLeg replaces the edge (u, v) by (u, m) and (m, v), where m is a new
// vertex numbered after all the figure's own. Each half is measured against
// a quarter of the original squared length, that is, half its length.
func (c *Checker) breakLeg(target problem.Edge) {
	index := -1
	for i, e := range c.edges {
		if e.Same(target) {
			index = i
			break
		}
	}
	if index < 0 {
		throw.Fatalf("cannot break leg %v: no such edge in the figure", target)
	}

	broken := c.edges[index]
	d := c.baselines[index].Num
	m := c.vertexCount
	c.vertexCount++

	edges, baselines := c.edges, c.baselines
	c.edges, c.baselines, c.ranges = nil, nil, nil
	for i := range edges {
		if i == index {
			half := Baseline{d, 4}
			c.addEdge(problem.Edge{U: broken.U, V: m}, half)
			c.addEdge(problem.Edge{U: m, V: broken.V}, half)
			continue
		}
		c.addEdge(edges[i], baselines[i])
	}

	Logger().Debug("leg broken", "edge", broken, "joint", m)
}

func bonusName(b problem.Bonus) string {
	if b == nil {
		return "none"
	}
	return b.Kind().String()
}

func (c *Checker) Problem() *problem.Problem {
	return c.problem
}

// Bonus is the bonus in effect, or nil.
func (c *Checker) Bonus() problem.Bonus {
	return c.bonus
}

// Edges lists the edges that are checked. Under BREAK_A_LEG this differs from
// the figure's edges.
func (c *Checker) Edges() []problem.Edge {
	return c.edges
}

// Ranges gives the admissible squared length of each edge, parallel to Edges.
func (c *Checker) Ranges() []Range {
	return c.ranges
}

// VertexCount is the number of vertices a pose must have.
func (c *Checker) VertexCount() int {
	return c.vertexCount
}

// EdgeInHole reports whether the segment between the two points lies entirely
// inside the hole. The answer is memoized, and does not depend on the order of
// the points.
func (c *Checker) EdgeInHole(p1, p2 geom.Point) bool {
	if p2.Less(p1) {
		p1, p2 = p2, p1
	}
	key := edgeKey{p1.X, p1.Y, p2.X, p2.Y}
	if fits, ok := c.edgeCache[key]; ok {
		c.stats.Hits++
		return fits
	}
	c.stats.Misses++
	fits := geom.SegmentInPolygon(geom.Seg(p1, p2), c.problem.Hole)
	c.edgeCache[key] = fits
	return fits
}

// PointInHole reports whether the point is inside the hole or on its boundary.
func (c *Checker) PointInHole(p geom.Point) bool {
	return geom.PointInPolygon(p, c.problem.Hole)
}

// Neighbours lists the vertices joined to v by a checked edge.
func (c *Checker) Neighbours(v int) []int {
	if c.adjacency == nil {
		c.adjacency = make([][]int, c.vertexCount)
		for _, e := range c.edges {
			c.adjacency[e.U] = append(c.adjacency[e.U], e.V)
			c.adjacency[e.V] = append(c.adjacency[e.V], e.U)
		}
	}
	return c.adjacency[v]
}

// InsidePoints lists every lattice point in the hole, row by row.
func (c *Checker) InsidePoints() []geom.Point {
	if c.inside == nil {
		c.inside = geom.LatticePointsInside(c.problem.Hole)
	}
	return c.inside
}

// CacheStats reports how well the segment cache is doing.
func (c *Checker) CacheStats() CacheStats {
	stats := c.stats
	stats.Entries = len(c.edgeCache)
	return stats
}
