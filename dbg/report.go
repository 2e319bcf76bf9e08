package dbg

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/brainwall/checker"
)

// Report writes a readable account of a verdict, one line per edge. Colors
// are ANSI escapes, and can be turned off for files and pipes.
func Report(w io.Writer, c *checker.Checker, verdict *checker.Verdict, colors bool) error {
	au := aurora.NewAurora(colors)
	ok := func(good bool, text string) aurora.Value {
		if good {
			return au.Green(text)
		}
		return au.Red(text)
	}

	r := &reporter{w: w}
	status := "VALID"
	if !verdict.Valid {
		status = "INVALID"
	}
	r.printf("%s  lengths %s  containment %s  bonuses %s\n",
		au.Bold(ok(verdict.Valid, status)),
		ok(verdict.LengthValid, "ok"),
		ok(verdict.ContainmentValid, "ok"),
		ok(verdict.SingleBonus, "ok"),
	)
	r.printf("bonus in effect: %s\n", au.Cyan(bonusName(c)))
	r.printf("dislikes: %d\n", au.Bold(verdict.Dislikes))
	if verdict.GlobalDeviation != nil {
		budget := int64(len(c.Edges())) * c.Problem().Epsilon
		r.printf("global deviation: %d ppm of %d\n", *verdict.GlobalDeviation, budget)
	}
	if verdict.ExcusedVertex >= 0 {
		r.printf("outside the hole: %s\n", au.Magenta(VertexName(verdict.ExcusedVertex)))
	}

	r.printf("edges:\n")
	for i, e := range c.Edges() {
		s := verdict.EdgeStatuses[i]
		fits := au.Green("in hole")
		if !s.FitsInHole {
			fits = au.Red("OUT OF HOLE")
		}
		r.printf("  %3d  %s - %s  %s in [%d, %d]  %s\n",
			i, VertexName(e.U), VertexName(e.V),
			ok(s.LengthOK(), fmt.Sprint(s.ActualLength)), s.MinLength, s.MaxLength,
			fits,
		)
	}

	if offers := c.Problem().Bonuses; len(offers) > 0 {
		r.printf("bonus offers:\n")
		for i, offer := range offers {
			state := au.Faint("locked")
			if verdict.Unlocked[i] {
				state = au.Yellow("unlocked")
			}
			r.printf("  %s for problem %d at %v  %s\n", offer.Bonus, offer.Problem, offer.Position, state)
		}
	}
	return r.err
}

func bonusName(c *checker.Checker) string {
	if c.Bonus() == nil {
		return "none"
	}
	return c.Bonus().Kind().String()
}

// reporter keeps the first write error, so the report reads straight through.
type reporter struct {
	w   io.Writer
	err error
}

func (r *reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
