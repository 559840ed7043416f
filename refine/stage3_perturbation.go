package refine

import (
	"math"

	"github.com/complexo-io/complexo/akrabazzi"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/theorem"
)

const (
	// boundaryWindow is refine's own, wider window for flagging a
	// result as "near a theorem-case boundary" — distinct from the
	// decision-time epsilonTol the theorem package uses to pick
	// Master's case in the first place.
	boundaryWindow = 0.1
	// pRoundTol is how close an Akra-Bazzi critical exponent must be
	// to an integer before it is snapped to that integer and the
	// integral re-evaluated exactly. Numerical noise from Newton/Brent
	// can leave p = 0.999999 where the true root is 1, which would
	// otherwise dispatch the integral evaluator's k-vs-p comparison
	// into the wrong closed-form branch.
	pRoundTol = 1e-6
)

// perturbationExpand flags boundary cases the theorem analyzer's
// strict decision rules can land just outside of, and — for Akra-
// Bazzi — snaps a numerically-near-integer critical exponent to the
// exact integer before re-deriving the integral, recovering the log-n
// factor the exact boundary case predicts.
func (e Engine) perturbationExpand(candidate expr.Expression) (expr.Expression, []string, float64) {
	switch t := e.Applicability.(type) {
	case theorem.MasterApplies:
		return perturbMaster(t, candidate)
	case theorem.AkraBazziApplies:
		return e.perturbAkraBazzi(t, candidate)
	default:
		return candidate, nil, 1.0
	}
}

func perturbMaster(m theorem.MasterApplies, candidate expr.Expression) (expr.Expression, []string, float64) {
	switch m.Case {
	case 1:
		if m.Gap < 0 && m.Gap > -boundaryWindow {
			return candidate, []string{"near Master case 1/2 boundary; confidence reduced pending induction check"}, 0.7
		}
	case 3:
		if m.Gap > 0 && m.Gap < boundaryWindow {
			return candidate, []string{"near Master case 2/3 boundary; confidence reduced pending induction check"}, 0.7
		}
	}
	return candidate, nil, 1.0
}

func (e Engine) perturbAkraBazzi(a theorem.AkraBazziApplies, candidate expr.Expression) (expr.Expression, []string, float64) {
	rounded := math.Round(a.P)
	if e.NonRecursiveWork != nil && a.P != rounded && math.Abs(a.P-rounded) < pRoundTol {
		exact := akrabazzi.EvaluateIntegral(e.NonRecursiveWork, e.Var, rounded)
		return exact.Solution, []string{"critical exponent snapped to integer boundary; integral re-evaluated exactly"}, exact.Confidence
	}
	if math.Abs(a.P-rounded) < boundaryWindow {
		return candidate, []string{"near an integer Akra-Bazzi critical exponent; confidence reduced pending induction check"}, 0.8
	}
	return candidate, nil, 1.0
}
