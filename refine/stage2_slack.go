package refine

import (
	"math"

	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/theorem"
)

// slackDeltas is the small exponent-perturbation grid tried around a
// Master case 1/2 result.
var slackDeltas = []float64{-0.1, -0.05, 0, 0.05, 0.1}

// slackOptimize only acts on Master case 1/2 results, where the
// solution is a bare or poly-log power of n and a small exponent
// adjustment is meaningful. It tries each delta's n^(logBA+delta)
// candidate under a tight induction check and keeps whichever passes
// with the smallest asymptotic-trend slope; for every other case, or
// if no candidate passes, it keeps the dominant-term solution
// unchanged.
func (e Engine) slackOptimize(original expr.Expression) (expr.Expression, []string) {
	m, ok := e.Applicability.(theorem.MasterApplies)
	if !ok || (m.Case != 1 && m.Case != 2) {
		return original, nil
	}

	best := original
	bestSlope := math.Inf(1)
	for _, delta := range slackDeltas {
		candidate := classify.Simplify(expr.NewPowerOf(expr.NewVariable(e.Var), m.LogBA+delta))
		res := e.verifyInduction(candidate, BoundTight)
		if !res.Passed {
			continue
		}
		slope := math.Abs(res.TrendSlope)
		if slope < bestSlope {
			bestSlope = slope
			best = candidate
		}
	}
	if math.IsInf(bestSlope, 1) {
		return original, []string{"slack optimization found no tighter passing exponent; kept dominant-term solution"}
	}
	return best, nil
}
