package theorem

import (
	"math"

	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/recurrence"
)

const (
	// epsilonMin guards the numerical boundary between Master's case 1
	// and case 3; gaps smaller than this in magnitude never reach the
	// strict sign branches below.
	epsilonMin = 1e-6
	// epsilonTol is case 2's window: |d - log_b(a)| < epsilonTol. It is
	// checked before the sign split, so it takes priority whenever the
	// gap is small enough to be poly-log rather than purely dominated
	// by one side.
	epsilonTol = 1e-2
)

// tryMaster applies Master's Theorem to a single-term, Master-eligible
// divide recurrence. Cases 1 and 2 always resolve; case 3 resolves
// only if the regularity condition verifies on the sample grid — when
// it doesn't, ok is false and the caller falls through to Akra-Bazzi.
func tryMaster(d recurrence.DivideRecurrence) (MasterApplies, bool) {
	term := d.Terms[0]
	a := term.Coefficient
	b := 1 / term.Scale
	logBA := math.Log(a) / math.Log(b)

	g := d.NonRecursiveWork
	degree, k := polyLogShape(classify.Classify(g, d.Var))
	gap := degree - logBA

	switch {
	case math.Abs(gap) < epsilonTol:
		solution := classify.Simplify(expr.NewPolyLog(1, d.Var, logBA, k+1))
		return MasterApplies{Case: 2, A: a, B: b, LogBA: logBA, Epsilon: epsilonTol, K: k, Gap: gap, Solution: solution}, true

	case gap < 0:
		solution := classify.Simplify(expr.NewPowerOf(expr.NewVariable(d.Var), logBA))
		return MasterApplies{Case: 1, A: a, B: b, LogBA: logBA, Epsilon: epsilonMin, K: k, Gap: gap, Solution: solution}, true

	default:
		if !verifyRegularity(a, b, g, d.Var) {
			return MasterApplies{}, false
		}
		solution := classify.Simplify(g)
		return MasterApplies{Case: 3, A: a, B: b, LogBA: logBA, Epsilon: epsilonMin, K: k, Gap: gap, RegularityVerified: true, Solution: solution}, true
	}
}

// polyLogShape extracts the (polynomial degree, log exponent) pair
// Master's case arithmetic compares against log_b(a). Every form
// outside the poly-log family (exponential, factorial, unknown)
// collapses to degree 0 — Master's case split was never meant to
// classify those shapes, and by the time one reaches here Akra-Bazzi
// or the linear path is the appropriate fallback regardless of what
// this function reports.
func polyLogShape(c classify.Classification) (degree, k float64) {
	switch c.Form {
	case classify.FormPolynomial, classify.FormPolyLog:
		return c.PolynomialDegree, c.LogExponent
	case classify.FormLogarithmic:
		return 0, c.LogExponent
	default:
		return 0, 0
	}
}
