package checker

import (
	"sort"

	"github.com/osuushi/brainwall/internal/throw"
	"github.com/osuushi/brainwall/problem"
)

// Rank summarizes a valid pose for comparison with other solutions to the
// same problem.
type Rank struct {
	// The bonus the pose spends, if any.
	UsedBonus *problem.BonusKind
	Dislikes  int64
	// How many bonus offers the pose unlocks.
	Unlocked int
}

// NewRank ranks a pose from its verdict. The pose may declare at most one
// bonus.
func NewRank(pose *problem.Pose, verdict *Verdict) Rank {
	r := Rank{Dislikes: verdict.Dislikes}
	switch len(pose.Bonuses) {
	case 0:
	case 1:
		kind := pose.Bonuses[0].Bonus
		r.UsedBonus = &kind
	default:
		throw.Fatalf("cannot rank a pose declaring %d bonuses", len(pose.Bonuses))
	}
	for _, unlocked := range verdict.Unlocked {
		if unlocked {
			r.Unlocked++
		}
	}
	return r
}

// Spending a bonus costs a point and unlocking one earns a point.
func (r Rank) sortKey() int64 {
	key := r.Dislikes - int64(r.Unlocked)
	if r.UsedBonus != nil {
		key++
	}
	return key
}

// Dominates reports whether r is at least as good as other: no more dislikes,
// and no bonus spent unless other spends the same one.
func (r Rank) Dominates(other Rank) bool {
	if other.Dislikes < r.Dislikes {
		return false
	}
	if r.UsedBonus == nil {
		return true
	}
	return other.UsedBonus != nil && *other.UsedBonus == *r.UsedBonus
}

// Pareto keeps the ranks not dominated by a better one, best first. Ranks that
// tie keep their input order.
func Pareto(ranks []Rank) []Rank {
	sorted := make([]Rank, len(ranks))
	copy(sorted, ranks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].sortKey() < sorted[j].sortKey()
	})

	var front []Rank
	for _, candidate := range sorted {
		dominated := false
		for _, kept := range front {
			if kept.Dominates(candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, candidate)
		}
	}
	return front
}
