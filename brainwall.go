// An exact pose checker for the figure-in-hole puzzle.
//
// A problem gives a hole polygon and a flexible figure: vertices joined by
// edges that may stretch or shrink by a small tolerance. A pose places the
// figure's vertices. This package decides whether a pose is legal, with every
// edge inside the hole and within its length range, and how many dislikes it
// scores. All geometry is done in exact integer arithmetic.
//
// The functions here return errors. The packages underneath (checker,
// problem, geom) panic on malformed input instead; see internal/throw.
package brainwall

import (
	"github.com/osuushi/brainwall/checker"
	"github.com/osuushi/brainwall/geom"
	"github.com/osuushi/brainwall/internal/throw"
	"github.com/osuushi/brainwall/problem"
)

type Point = geom.Point
type Polygon = geom.Polygon
type Problem = problem.Problem
type Pose = problem.Pose
type Bonus = problem.Bonus
type Checker = checker.Checker
type Verdict = checker.Verdict
type EdgeStatus = checker.EdgeStatus

// CheckPose validates a pose under the bonus it declares.
func CheckPose(p *Problem, pose *Pose) (verdict *Verdict, err error) {
	defer func() {
		if recoveredErr := throw.Recover(recover()); recoveredErr != nil {
			verdict = nil
			err = recoveredErr
		}
	}()
	return checker.CheckPose(p, pose), nil
}

// NewChecker builds a reusable checker for a problem with a bonus in effect.
// The bonus may be nil.
func NewChecker(p *Problem, bonus Bonus) (c *Checker, err error) {
	defer func() {
		if recoveredErr := throw.Recover(recover()); recoveredErr != nil {
			c = nil
			err = recoveredErr
		}
	}()
	return checker.New(p, bonus), nil
}

// NewPoseChecker builds a checker with the bonus the pose declares.
func NewPoseChecker(p *Problem, pose *Pose) (c *Checker, err error) {
	defer func() {
		if recoveredErr := throw.Recover(recover()); recoveredErr != nil {
			c = nil
			err = recoveredErr
		}
	}()
	return checker.ForPose(p, pose), nil
}

// Validate checks a pose with an existing checker.
func Validate(c *Checker, pose *Pose) (verdict *Verdict, err error) {
	defer func() {
		if recoveredErr := throw.Recover(recover()); recoveredErr != nil {
			verdict = nil
			err = recoveredErr
		}
	}()
	return c.Validate(pose), nil
}

func LoadProblem(path string) (*Problem, error) {
	return problem.Load(path)
}

func LoadPose(path string) (*Pose, error) {
	return problem.LoadPose(path)
}
