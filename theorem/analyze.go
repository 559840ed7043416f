package theorem

import (
	"fmt"

	"github.com/complexo-io/complexo/errs"
	"github.com/complexo-io/complexo/linearsolve"
	"github.com/complexo-io/complexo/recurrence"
)

// Analyze dispatches on in's shape and tries its applicable strategies
// in the fixed order Master -> Akra-Bazzi (for divide-form input) or
// Linear (for subtraction-form input), falling through to a
// NotApplicable result with suggestions when nothing fires.
func Analyze(in Input) (TheoremApplicability, error) {
	switch t := in.(type) {
	case DivideInput:
		return analyzeDivide(t.Recurrence)
	case LinearInput:
		return analyzeLinear(t.Recurrence)
	default:
		return nil, errs.InputInvalid.New("theorem analyzer received an unrecognized recurrence input")
	}
}

func analyzeDivide(d recurrence.DivideRecurrence) (TheoremApplicability, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if d.MasterEligible() {
		if m, ok := tryMaster(d); ok {
			return m, nil
		}
	}

	if ab, ok := tryAkraBazzi(d); ok {
		return ab, nil
	}

	return NotApplicable{
		Reason:      "divide recurrence fits neither Master's single-term shape nor Akra-Bazzi's critical-exponent solver",
		Suggestions: []string{"numerical simulation", "substitution method"},
	}, nil
}

func analyzeLinear(l recurrence.LinearRecurrence) (TheoremApplicability, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	sol, err := linearsolve.Solve(l.Coefficients, l.NonHomogeneous, l.Var)
	if err != nil {
		return NotApplicable{
			Reason:      fmt.Sprintf("linear characteristic-polynomial solve failed: %v", err),
			Suggestions: []string{"numerical simulation", "substitution method"},
		}, nil
	}
	return LinearSolved{Solution: sol, Method: "characteristic-polynomial"}, nil
}
