package checker

import (
	"math"
	"math/big"
)

var (
	bigOne     = big.NewRat(1, 1)
	bigIntOne  = big.NewInt(1)
	bigEpsBase = big.NewInt(EpsBase)
)

// globalDeviation is the exact sum over edges of |actual/baseline - 1|.
func (c *Checker) globalDeviation(statuses []EdgeStatus) *big.Rat {
	sum := new(big.Rat)
	term := new(big.Rat)
	for i, s := range statuses {
		b := c.baselines[i]
		term.SetFrac64(s.ActualLength*b.Den, b.Num)
		term.Sub(term, bigOne)
		term.Abs(term)
		sum.Add(sum, term)
	}
	return sum
}

// globalBudget is len(edges) * epsilon / EpsBase.
func (c *Checker) globalBudget() *big.Rat {
	return big.NewRat(int64(len(c.edges))*c.problem.Epsilon, EpsBase)
}

// ceilPPM converts a non-negative deviation to parts per million, rounding up.
// It saturates rather than overflow.
func ceilPPM(r *big.Rat) int64 {
	num := new(big.Int).Mul(r.Num(), bigEpsBase)
	q, m := new(big.Int).QuoRem(num, r.Denom(), new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, bigIntOne)
	}
	if !q.IsInt64() {
		return math.MaxInt64
	}
	return q.Int64()
}
