package recurrence

import (
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// BuildLinearRecursion implements the "linear recursion T(n) = T(n−1)
// + w -> linear recurrence with order 1" composition rule: a single
// self-call one step back, plus non-recursive work w.
func BuildLinearRecursion(w expr.Expression, v variable.Variable) (LinearRecurrence, error) {
	return NewLinearRecurrence([]float64{1}, w, nil, v)
}

// BuildDivideRecursion implements the "divide recursion T(n) =
// a·T(n/b) + w -> divide recurrence" composition rule. b must be > 1
// (a genuine divide-and-conquer split); the stored term scale is 1/b,
// matching the divide-form invariant that scale lies in (0,1).
func BuildDivideRecursion(a, b float64, w expr.Expression, v variable.Variable) (DivideRecurrence, error) {
	return NewDivideRecurrence([]DivideTerm{{Coefficient: a, Scale: 1 / b}}, w, nil, v)
}
