package checker

import "github.com/osuushi/brainwall/internal/throw"

// EpsBase is the denominator of epsilon: deformations are measured in parts
// per million of the squared length. Both the per-edge ranges and the global
// deviation budget use it.
const EpsBase = 1_000_000

// Range is an inclusive range of squared lengths.
type Range struct {
	Min, Max int64
}

func (r Range) Contains(length int64) bool {
	return r.Min <= length && length <= r.Max
}

// Baseline is the squared length an edge is measured against, as the fraction
// Num/Den. Ordinary edges have Den 1. Each half of a broken leg is measured
// against a quarter of the original.
type Baseline struct {
	Num, Den int64
}

// Range gives the admissible squared lengths for epsilon eps. The minimum is
// rounded up and the maximum down, so the range never admits a length that is
// off by more than eps.
func (b Baseline) Range(eps int64) Range {
	if eps < 0 || eps > EpsBase {
		throw.Fatalf("epsilon %d is outside [0, %d]", eps, EpsBase)
	}
	den := b.Den * EpsBase
	return Range{
		Min: ceilDiv(b.Num*(EpsBase-eps), den),
		Max: floorDiv(b.Num*(EpsBase+eps), den),
	}
}

// AdmissibleRange is the range for an edge whose original squared length is d.
func AdmissibleRange(d, eps int64) (min, max int64) {
	r := Baseline{d, 1}.Range(eps)
	return r.Min, r.Max
}

// Both helpers expect a non-negative numerator and a positive denominator.

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func floorDiv(a, b int64) int64 {
	return a / b
}
