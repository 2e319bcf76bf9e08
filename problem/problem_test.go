package problem

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/osuushi/brainwall/geom"
	"github.com/osuushi/brainwall/internal/throw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleProblem() *Problem {
	return &Problem{
		Hole: geom.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		Figure: Figure{
			Vertices: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
			Edges:    []Edge{{0, 1}},
		},
	}
}

func TestLoad(t *testing.T) {
	p, err := Load("testdata/notch.problem.json")
	require.NoError(t, err)
	assert.Equal(t, geom.Polygon{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 40}, {X: 20, Y: 20}, {X: 0, Y: 40}}, p.Hole)
	assert.Len(t, p.Figure.Vertices, 4)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}, p.Figure.Edges)
	assert.Equal(t, int64(150000), p.Epsilon)
	assert.Equal(t, []BonusOffer{
		{Bonus: KindGlobalist, Problem: 7, Position: geom.Pt(40, 0)},
		{Bonus: KindBreakALeg, Problem: 12, Position: geom.Pt(2, 30)},
	}, p.Bonuses)
	assert.Equal(t, int64(200), p.Figure.OriginalLength(Edge{0, 2}))

	pose, err := LoadPose("testdata/notch.pose.json")
	require.NoError(t, err)
	assert.Len(t, pose.Vertices, 4)
	assert.Equal(t, []PoseBonus{{Bonus: KindSuperflex, Problem: 3}}, pose.Bonuses)

	_, err = Load("testdata/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/missing.json")
}

func TestDecodeRejects(t *testing.T) {
	for name, input := range map[string]string{
		"unknown bonus": `{"hole": [[0,0],[1,0],[0,1]], "figure": {"vertices": [], "edges": []},
			"epsilon": 0, "bonuses": [{"bonus": "TELEPORT", "problem": 1, "position": [0,0]}]}`,
		"bad point": `{"hole": [[0,0,0],[1,0],[0,1]], "figure": {"vertices": [], "edges": []}, "epsilon": 0}`,
		"bad edge":  `{"hole": [[0,0],[1,0],[0,1]], "figure": {"vertices": [[0,0],[1,1]], "edges": [[0]]}, "epsilon": 0}`,
		"structure": `{"hole": [[0,0],[1,0]], "figure": {"vertices": [], "edges": []}, "epsilon": 0}`,
		"not json":  `hole`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, triangleProblem().Validate())

	for name, tc := range map[string]struct {
		mutate  func(p *Problem)
		message string
	}{
		"short hole": {
			func(p *Problem) { p.Hole = p.Hole[:2] },
			"at least 3",
		},
		"flat hole": {
			func(p *Problem) { p.Hole = geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}} },
			"zero area",
		},
		"hole out of bounds": {
			func(p *Problem) { p.Hole[1] = geom.Pt(geom.MaxCoord+1, 0) },
			"hole point 1",
		},
		"vertex out of bounds": {
			func(p *Problem) { p.Figure.Vertices[0] = geom.Pt(0, -geom.MaxCoord-1) },
			"figure vertex 0",
		},
		"bonus out of bounds": {
			func(p *Problem) {
				p.Bonuses = []BonusOffer{{Bonus: KindWallhack, Position: geom.Pt(0, geom.MaxCoord+1)}}
			},
			"WALLHACK bonus position",
		},
		"missing vertex": {
			func(p *Problem) { p.Figure.Edges = append(p.Figure.Edges, Edge{1, 2}) },
			"missing vertex",
		},
		"negative vertex": {
			func(p *Problem) { p.Figure.Edges[0] = Edge{-1, 0} },
			"missing vertex",
		},
		"zero length edge": {
			func(p *Problem) { p.Figure.Vertices[1] = p.Figure.Vertices[0] },
			"zero length",
		},
		"negative epsilon": {
			func(p *Problem) { p.Epsilon = -1 },
			"epsilon",
		},
		"huge epsilon": {
			func(p *Problem) { p.Epsilon = MaxEpsilon + 1 },
			"epsilon",
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := triangleProblem()
			tc.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestWireFormat(t *testing.T) {
	pose := &Pose{
		Vertices: []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Bonuses:  []PoseBonus{Declare(BreakALeg{Edge{0, 1}}, 5)},
	}
	var buf bytes.Buffer
	require.NoError(t, EncodePose(&buf, pose))
	assert.JSONEq(t, `{"vertices": [[1,2],[3,4]], "bonuses": [{"bonus": "BREAK_A_LEG", "problem": 5, "edge": [0,1]}]}`, buf.String())

	decoded, err := DecodePose(&buf)
	require.NoError(t, err)
	assert.Equal(t, pose, decoded)

	data, err := json.Marshal(PoseBonus{Bonus: KindWallhack, Problem: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"bonus": "WALLHACK", "problem": 2}`, string(data))

	_, err = json.Marshal(BonusKind(42))
	assert.Error(t, err)
}

func TestBonusKind(t *testing.T) {
	for _, name := range []string{"GLOBALIST", "BREAK_A_LEG", "WALLHACK", "SUPERFLEX"} {
		kind, err := ParseBonusKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, kind.String())
	}
	_, err := ParseBonusKind("globalist")
	assert.Error(t, err)
	assert.Equal(t, "BonusKind(0)", BonusKind(0).String())
}

func TestVariant(t *testing.T) {
	edge := Edge{2, 1}
	assert.Equal(t, Globalist{}, PoseBonus{Bonus: KindGlobalist}.Variant())
	assert.Equal(t, BreakALeg{Edge{2, 1}}, PoseBonus{Bonus: KindBreakALeg, Edge: &edge}.Variant())
	assert.Equal(t, Wallhack{}, PoseBonus{Bonus: KindWallhack}.Variant())
	assert.Equal(t, Superflex{}, PoseBonus{Bonus: KindSuperflex}.Variant())

	for _, b := range []Bonus{Globalist{}, BreakALeg{edge}, Wallhack{}, Superflex{}} {
		assert.Equal(t, b, Declare(b, 9).Variant())
	}

	func() {
		defer func() {
			err := throw.Recover(recover())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "without an edge")
		}()
		PoseBonus{Bonus: KindBreakALeg}.Variant()
	}()
}

func TestPoseBonus(t *testing.T) {
	b, ok := (&Pose{}).Bonus()
	assert.True(t, ok)
	assert.Nil(t, b)

	b, ok = (&Pose{Bonuses: []PoseBonus{{Bonus: KindSuperflex}}}).Bonus()
	assert.True(t, ok)
	assert.Equal(t, Superflex{}, b)

	_, ok = (&Pose{Bonuses: []PoseBonus{{Bonus: KindSuperflex}, {Bonus: KindWallhack}}}).Bonus()
	assert.False(t, ok)
}

func TestEdge(t *testing.T) {
	assert.True(t, Edge{1, 2}.Same(Edge{2, 1}))
	assert.True(t, Edge{1, 2}.Same(Edge{1, 2}))
	assert.False(t, Edge{1, 2}.Same(Edge{1, 3}))

	p := triangleProblem()
	pose := OriginalPose(p)
	assert.Equal(t, p.Figure.Vertices, pose.Vertices)
	pose.Vertices[0] = geom.Pt(5, 5)
	assert.Equal(t, geom.Pt(0, 0), p.Figure.Vertices[0])
}
