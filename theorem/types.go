package theorem

import (
	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/linearsolve"
	"github.com/complexo-io/complexo/recurrence"
)

// Input is the sum type Analyze accepts: a divide-form recurrence
// (routed to Master/Akra-Bazzi) or a subtraction-form one (routed to
// the linear solver). A folded mutual-recursion system converts to
// one of these two via recurrence.FoldedRecurrence.ToLinear/ToDivide
// before reaching Analyze.
type Input interface {
	isInput()
}

// DivideInput wraps a divide-and-conquer recurrence for Master/Akra-
// Bazzi analysis.
type DivideInput struct {
	Recurrence recurrence.DivideRecurrence
}

func (DivideInput) isInput() {}

// LinearInput wraps a subtraction-pattern recurrence for the linear
// characteristic-polynomial solver.
type LinearInput struct {
	Recurrence recurrence.LinearRecurrence
}

func (LinearInput) isInput() {}

// TheoremApplicability is the sum-of-cases result Analyze returns.
type TheoremApplicability interface {
	isTheoremApplicability()
}

// MasterApplies reports which of Master's Theorem's three cases fired
// and the resulting solution.
type MasterApplies struct {
	Case               int
	A                  float64
	B                  float64
	LogBA              float64
	Epsilon            float64
	K                  float64
	Gap                float64 // g(n)'s polynomial degree minus LogBA, the case-decision quantity
	RegularityVerified bool
	Solution           expr.Expression
}

func (MasterApplies) isTheoremApplicability() {}

// AkraBazziApplies reports the critical exponent and resulting
// solution when Akra-Bazzi's method fires.
type AkraBazziApplies struct {
	P               float64
	GClassification classify.Classification
	Solution        expr.Expression
}

func (AkraBazziApplies) isTheoremApplicability() {}

// LinearSolved reports the characteristic-polynomial solution and the
// method string ("characteristic-polynomial") that produced it.
type LinearSolved struct {
	Solution linearsolve.Solution
	Method   string
}

func (LinearSolved) isTheoremApplicability() {}

// NotApplicable is returned when no strategy fits the given input.
type NotApplicable struct {
	Reason      string
	Suggestions []string
}

func (NotApplicable) isTheoremApplicability() {}
