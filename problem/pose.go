package problem

import "github.com/osuushi/brainwall/geom"

// Pose places every vertex of a figure. Under BREAK_A_LEG it has one extra
// vertex at the end, for the new joint.
type Pose struct {
	Vertices []geom.Point `json:"vertices"`
	Bonuses  []PoseBonus  `json:"bonuses,omitempty"`
}

// Bonus returns the single declared bonus, or nil when there is none. ok is
// false when the pose declares more than one.
func (pose *Pose) Bonus() (b Bonus, ok bool) {
	switch len(pose.Bonuses) {
	case 0:
		return nil, true
	case 1:
		return pose.Bonuses[0].Variant(), true
	}
	return nil, false
}

// OriginalPose places the figure where the problem draws it.
func OriginalPose(p *Problem) *Pose {
	vertices := make([]geom.Point, len(p.Figure.Vertices))
	copy(vertices, p.Figure.Vertices)
	return &Pose{Vertices: vertices}
}
