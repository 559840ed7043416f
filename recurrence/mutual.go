package recurrence

import (
	"github.com/complexo-io/complexo/errs"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// EdgeKind tags how a MutualComponent reduces the recurrence variable
// on recursive call: by subtraction (linear-style) or by division
// (divide-style).
type EdgeKind int

const (
	EdgeReduction EdgeKind = iota
	EdgeScale
)

// MutualComponent is one node of a strongly-connected recursion cycle:
// its own non-recursive work, how it reduces the argument on its
// recursive call (Reduction for EdgeReduction, Scale for EdgeScale),
// and the names of the components it calls within the cycle.
type MutualComponent struct {
	Name             string
	NonRecursiveWork expr.Expression
	EdgeKind         EdgeKind
	Reduction        float64
	Scale            float64
	Callees          []string
}

// MutualSystem is an ordered cycle of components sharing one
// recurrence variable, detected upstream as a strongly-connected
// component of the call graph.
type MutualSystem struct {
	Components []MutualComponent
	Var        variable.Variable
}

// Validate checks that the system is non-empty and every component's
// edge parameter matches its declared EdgeKind.
func (s MutualSystem) Validate() error {
	if len(s.Components) == 0 {
		return errs.InputInvalid.New("mutual-recursion system has no components")
	}
	for _, c := range s.Components {
		switch c.EdgeKind {
		case EdgeReduction:
			if c.Reduction <= 0 {
				return errs.InputInvalid.New("mutual-recursion component has non-positive reduction")
			}
		case EdgeScale:
			if c.Scale <= 0 || c.Scale >= 1 {
				return errs.InputInvalid.New("mutual-recursion component has scale outside (0,1)")
			}
		default:
			return errs.InputInvalid.New("mutual-recursion component has unknown edge kind")
		}
	}
	return nil
}

// FoldedRecurrence is the single equivalent relation produced by
// FoldMutual: the reductions/scales of every component in the cycle
// combined into one, with the combined non-recursive work, ready to
// hand to the same theorem analyzer used for an ordinary recurrence.
type FoldedRecurrence struct {
	Var              variable.Variable
	Kind             EdgeKind
	CombinedWork     expr.Expression
	CombinedReduction float64
	CombinedScale    float64
}

// FoldMutual folds a cycle of k components to one recurrence: combined
// reduction is the sum of per-component subtractions (or combined
// scale is the product of per-component scale factors); combined
// non-recursive work is the sum of per-component works. All components
// in the cycle must share the same EdgeKind — a cycle mixing
// subtraction and division edges has no single equivalent relation and
// is rejected as InputInvalid.
func FoldMutual(s MutualSystem) (FoldedRecurrence, error) {
	if err := s.Validate(); err != nil {
		return FoldedRecurrence{}, err
	}
	kind := s.Components[0].EdgeKind
	var work expr.Expression = expr.Constant{Value: 0}
	reduction := 0.0
	scale := 1.0
	for _, c := range s.Components {
		if c.EdgeKind != kind {
			return FoldedRecurrence{}, errs.InputInvalid.New("mutual-recursion cycle mixes reduction and scale edges")
		}
		work = expr.Add(work, c.NonRecursiveWork)
		switch kind {
		case EdgeReduction:
			reduction += c.Reduction
		case EdgeScale:
			scale *= c.Scale
		}
	}
	return FoldedRecurrence{
		Var:               s.Var,
		Kind:              kind,
		CombinedWork:       work,
		CombinedReduction:  reduction,
		CombinedScale:      scale,
	}, nil
}

// ToLinear converts a EdgeReduction-folded result to the equivalent
// LinearRecurrence T(n) = T(n−r) + CombinedWork: a single nonzero
// coefficient at order r (rounded to the nearest integer >= 1), since
// the combined reduction need not itself be an integer for arbitrary
// front-end input but the linear-recurrence model is integer-order.
func (f FoldedRecurrence) ToLinear() (LinearRecurrence, error) {
	if f.Kind != EdgeReduction {
		return LinearRecurrence{}, errs.InputInvalid.New("folded recurrence is scale-style, not reduction-style")
	}
	order := int(f.CombinedReduction + 0.5)
	if order < 1 {
		order = 1
	}
	coeffs := make([]float64, order)
	coeffs[order-1] = 1
	return NewLinearRecurrence(coeffs, f.CombinedWork, nil, f.Var)
}

// ToDivide converts a EdgeScale-folded result to the equivalent
// DivideRecurrence T(n) = T(CombinedScale·n) + CombinedWork.
func (f FoldedRecurrence) ToDivide() (DivideRecurrence, error) {
	if f.Kind != EdgeScale {
		return DivideRecurrence{}, errs.InputInvalid.New("folded recurrence is reduction-style, not scale-style")
	}
	return NewDivideRecurrence([]DivideTerm{{Coefficient: 1, Scale: f.CombinedScale}}, f.CombinedWork, nil, f.Var)
}
