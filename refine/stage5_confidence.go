package refine

import (
	"math"

	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// regularityFactor penalizes a Master case 3 result whose regularity
// condition a·f(n/b) ≤ c·f(n) could not be verified on the sample
// grid; every other case reports full confidence.
func regularityFactor(verified bool) float64 {
	if verified {
		return 1.0
	}
	return 0.5
}

// inductionFactor turns the induction stage's pass/fail and trend
// slope into a multiplicative confidence factor: a failed check
// costs heavily, a passed-but-drifting one costs a little.
func inductionFactor(r InductionResult) float64 {
	if !r.Passed {
		return 0.2
	}
	drift := math.Min(math.Abs(r.TrendSlope), 1)
	return 1 - 0.3*drift
}

// classificationConfidence reports how cleanly the refined candidate
// itself classifies — a candidate classify can't confidently place
// into a known growth form is suspect regardless of how well it
// tracked the induction grids.
func classificationConfidence(candidate expr.Expression, v variable.Variable) float64 {
	return classify.Classify(candidate, v).Confidence
}

// aggregateConfidence combines the stage factors multiplicatively and
// clamps to [0, 1]; any single weak stage can sink overall confidence,
// matching the five stages' role as independent checks rather than
// redundant votes.
func aggregateConfidence(factors ...float64) float64 {
	product := 1.0
	for _, f := range factors {
		product *= f
	}
	if product < 0 {
		return 0
	}
	if product > 1 {
		return 1
	}
	return product
}
