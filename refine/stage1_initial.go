package refine

import (
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/theorem"
)

// initialSolution extracts the candidate Expression, a base theorem-
// applicability confidence, and whether Master's regularity check
// (stage 5's "regularity-verified factor") passed, from the theorem
// analyzer's result. Regularity only applies to Master case 3; every
// other outcome reports true (the factor is neutral when the check
// doesn't apply).
func initialSolution(a theorem.TheoremApplicability) (candidate expr.Expression, confidence float64, regularityVerified bool) {
	switch t := a.(type) {
	case theorem.MasterApplies:
		if t.Case == 3 {
			return t.Solution, 1.0, t.RegularityVerified
		}
		return t.Solution, 1.0, true
	case theorem.AkraBazziApplies:
		return t.Solution, t.GClassification.Confidence, true
	case theorem.LinearSolved:
		return t.Solution.Expression, 1.0, true
	case theorem.NotApplicable:
		return expr.NewConstant(1), 0, true
	default:
		return expr.NewConstant(1), 0, true
	}
}
