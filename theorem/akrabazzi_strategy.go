package theorem

import (
	"github.com/complexo-io/complexo/akrabazzi"
	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/recurrence"
)

// tryAkraBazzi solves the critical exponent for every term of d and
// evaluates the non-recursive-work integral at that exponent. A
// validated DivideRecurrence always has every scale in (0,1), so this
// only fails to apply when the numerical critical-exponent solve
// itself fails (a malformed or pathological coefficient set).
func tryAkraBazzi(d recurrence.DivideRecurrence) (AkraBazziApplies, bool) {
	terms := make([]akrabazzi.Term, len(d.Terms))
	for i, t := range d.Terms {
		terms[i] = akrabazzi.Term{A: t.Coefficient, B: t.Scale}
	}

	res, err := akrabazzi.SolveCriticalExponent(terms)
	if err != nil {
		return AkraBazziApplies{}, false
	}

	integral := akrabazzi.EvaluateIntegral(d.NonRecursiveWork, d.Var, res.P)
	gClass := classify.Classify(d.NonRecursiveWork, d.Var)
	return AkraBazziApplies{P: res.P, GClassification: gClass, Solution: integral.Solution}, true
}
