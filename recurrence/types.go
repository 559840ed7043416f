package recurrence

import (
	"github.com/complexo-io/complexo/errs"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// DivideTerm is one aᵢ·T(bᵢ·n) summand of a divide-and-conquer
// recurrence: Coefficient aᵢ > 0, Scale bᵢ ∈ (0,1).
type DivideTerm struct {
	Coefficient float64
	Scale       float64
}

// DivideRecurrence is Σ Terms[i].Coefficient·T(Terms[i].Scale·n) +
// NonRecursiveWork, with BaseCase = T(1).
type DivideRecurrence struct {
	Terms            []DivideTerm
	NonRecursiveWork expr.Expression
	BaseCase         expr.Expression
	Var              variable.Variable
}

// NewDivideRecurrence builds and validates a DivideRecurrence.
func NewDivideRecurrence(terms []DivideTerm, work, base expr.Expression, v variable.Variable) (DivideRecurrence, error) {
	d := DivideRecurrence{
		Terms:            append([]DivideTerm(nil), terms...),
		NonRecursiveWork: work,
		BaseCase:         base,
		Var:              v,
	}
	if err := d.Validate(); err != nil {
		return DivideRecurrence{}, err
	}
	return d, nil
}

// Validate checks spec.md §3's divide-form invariants: at least one
// term, all coefficients positive, all scales strictly in (0,1).
func (d DivideRecurrence) Validate() error {
	if len(d.Terms) == 0 {
		return errs.InputInvalid.New("divide recurrence has no terms")
	}
	for i, t := range d.Terms {
		if t.Coefficient <= 0 {
			return errs.InputInvalid.New("divide recurrence term has non-positive coefficient")
		}
		if t.Scale <= 0 || t.Scale >= 1 {
			_ = i
			return errs.InputInvalid.New("divide recurrence term has scale outside (0,1)")
		}
	}
	if d.NonRecursiveWork == nil {
		return errs.InputInvalid.New("divide recurrence is missing non-recursive work")
	}
	return nil
}

// MasterEligible reports whether this recurrence has the exact shape
// Master's Theorem requires: exactly one term with a >= 1 and
// b = 1/scale > 1.
func (d DivideRecurrence) MasterEligible() bool {
	if len(d.Terms) != 1 {
		return false
	}
	t := d.Terms[0]
	return t.Coefficient >= 1 && 1/t.Scale > 1
}

// AkraBazziEligible reports whether every term's scale lies strictly
// in (0,1) — true by Validate's invariant, but named for callers that
// want the applicability predicate without re-deriving it.
func (d DivideRecurrence) AkraBazziEligible() bool {
	for _, t := range d.Terms {
		if t.Scale <= 0 || t.Scale >= 1 {
			return false
		}
	}
	return true
}

// LinearRecurrence is Σ Coefficients[i]·T(n−(i+1)) + NonHomogeneous,
// with Order() = len(Coefficients).
type LinearRecurrence struct {
	Coefficients   []float64
	NonHomogeneous expr.Expression
	BaseCase       expr.Expression
	Var            variable.Variable
}

// NewLinearRecurrence builds and validates a LinearRecurrence.
func NewLinearRecurrence(coefficients []float64, nonHomogeneous, base expr.Expression, v variable.Variable) (LinearRecurrence, error) {
	l := LinearRecurrence{
		Coefficients:   append([]float64(nil), coefficients...),
		NonHomogeneous: nonHomogeneous,
		BaseCase:       base,
		Var:            v,
	}
	if err := l.Validate(); err != nil {
		return LinearRecurrence{}, err
	}
	return l, nil
}

// Validate requires at least one coefficient.
func (l LinearRecurrence) Validate() error {
	if len(l.Coefficients) == 0 {
		return errs.InputInvalid.New("linear recurrence has no coefficients")
	}
	return nil
}

// Order returns k in T(n) = Σ aᵢ·T(n−i), i=1..k.
func (l LinearRecurrence) Order() int { return len(l.Coefficients) }

// IsHomogeneous reports whether f(n) is the zero constant (or nil).
func (l LinearRecurrence) IsHomogeneous() bool {
	if l.NonHomogeneous == nil {
		return true
	}
	c, ok := l.NonHomogeneous.(expr.Constant)
	return ok && c.Value == 0
}
