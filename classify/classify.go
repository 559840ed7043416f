package classify

import (
	"math"
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

var (
	memoMu    sync.Mutex
	memoCache = make(map[memoKey]Classification)
)

// memoKey identifies a (expression, variable) pair cheaply enough to
// use as a map key: a structural hash of the expression combined with
// the order-independent hash of its free-variable set
// (variable.Set.Hash), plus the variable
// classification is taken with respect to (by Name/Kind only, matching
// Variable.Equal — Description never affects the result).
type memoKey struct {
	exprHash uint64
	varsHash uint64
	varName  string
	varKind  variable.Kind
}

// classifyMemoKey hashes e and its free-variable set. Hashing a plain
// data Expression never fails in practice, but a future variant
// embedding something hashstructure can't reflect over (a channel, a
// func) would — ok=false simply disables caching for that call rather
// than failing Classify.
func classifyMemoKey(e expr.Expression, v variable.Variable) (memoKey, bool) {
	eHash, err := hashstructure.Hash(e, hashstructure.FormatV2, nil)
	if err != nil {
		return memoKey{}, false
	}
	varsHash, err := e.FreeVariables().Hash()
	if err != nil {
		return memoKey{}, false
	}
	return memoKey{exprHash: eHash, varsHash: varsHash, varName: v.Name, varKind: v.Kind}, true
}

// Classify reduces e to its dominant Form with respect to v: every
// leaf that does not depend on v is treated as O(1) in v (exact, not
// an approximation — that is what "dominant with respect to v" means
// for a multi-variable expression), and every composite node combines
// its children's Classifications the way the corresponding algebra
// operator combines growth rates. Confidence drops below 1 only where
// the combination itself is a genuine asymptotic approximation (e.g.
// collapsing b^(n^2) into the FormExponential bucket).
//
// Classify and Simplify both recurse into the same subtrees — Simplify
// calls Classify on every Binary node it collapses, and Classify's own
// Binary case recurses into its children — so the same (expression,
// variable) pair is often classified several times in one Simplify
// walk. Results are memoized across calls keyed by classifyMemoKey.
func Classify(e expr.Expression, v variable.Variable) Classification {
	key, cacheable := classifyMemoKey(e, v)
	if cacheable {
		memoMu.Lock()
		c, hit := memoCache[key]
		memoMu.Unlock()
		if hit {
			return c
		}
	}

	c := classifyUncached(e, v)

	if cacheable {
		memoMu.Lock()
		memoCache[key] = c
		memoMu.Unlock()
	}
	return c
}

func classifyUncached(e expr.Expression, v variable.Variable) Classification {
	switch t := e.(type) {
	case expr.Constant:
		return constant(t.Value)

	case expr.VarRef:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return Classification{Form: FormPolynomial, Variable: v, PolynomialDegree: 1, Coefficient: 1, Confidence: 1}

	case expr.Linear:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return Classification{Form: FormPolynomial, Variable: v, PolynomialDegree: 1, Coefficient: t.Coefficient, Confidence: 1}

	case expr.Polynomial:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		deg, coeff, found := leadingTerm(t.Coefficients)
		if !found {
			return constant(0)
		}
		return Classification{Form: FormPolynomial, Variable: v, PolynomialDegree: deg, Coefficient: coeff, Confidence: 1}

	case expr.Logarithmic:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return Classification{Form: FormLogarithmic, Variable: v, LogExponent: 1, Coefficient: t.Coefficient, Confidence: 1}

	case expr.PolyLog:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return polyLogClassification(v, t.PolyDegree, t.LogExponent, t.Coefficient, 1)

	case expr.Exponential:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: t.Base, Coefficient: t.Coefficient, Confidence: 1}

	case expr.Factorial:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return Classification{Form: FormFactorial, Variable: v, Coefficient: 1, Confidence: 1}

	case expr.Binary:
		return classifyBinary(t, v)

	case expr.Conditional:
		then := Classify(t.Then, v)
		els := Classify(t.Else, v)
		d := Dominant(then, els)
		d.Confidence = math.Min(then.Confidence, els.Confidence)
		if then.Form != els.Form {
			d.Confidence *= 0.9
		}
		return d

	case expr.PowerOf:
		return classifyPowerOf(t, v)

	case expr.LogOf:
		return classifyLogOf(t, v)

	case expr.ExpOf:
		return classifyExpOf(t, v)

	case expr.FactorialOf:
		return classifyFactorialOf(t, v)

	case expr.SpecialFunction:
		if len(t.Args) == 0 {
			return Classification{Form: FormUnknown, Variable: v, Confidence: 0.3}
		}
		c := Classify(t.Args[0], v)
		c.Form = FormUnknown
		c.Confidence *= 0.6
		return c

	case expr.Amortized:
		return Classify(t.AmortizedCost, v)

	case expr.Parallel:
		return Classify(t.Span, v)

	case expr.Probabilistic:
		return Classify(t.Expected, v)

	case expr.Memory:
		return Classify(t.Total, v)

	case expr.InverseAckermann:
		if !t.Var.Equal(v) {
			return constant(1)
		}
		return Classification{Form: FormConstant, Variable: v, Coefficient: 1, Confidence: 0.9}

	default:
		return Classification{Form: FormUnknown, Variable: v, Confidence: 0}
	}
}

func constant(value float64) Classification {
	return Classification{Form: FormConstant, Coefficient: value, Confidence: 1}
}

// leadingTerm returns the highest degree with a nonzero coefficient.
func leadingTerm(coeffs map[int]float64) (degree, coeff float64, found bool) {
	best := 0
	for d, c := range coeffs {
		if c == 0 {
			continue
		}
		if !found || d > best {
			best, coeff, found = d, c, true
		}
	}
	return float64(best), coeff, found
}

// polyLogClassification folds a (degree, logExponent) pair down to the
// simplest Form that represents it: Constant when both are zero,
// Logarithmic when the polynomial degree is zero, Polynomial when the
// log exponent is zero, PolyLog otherwise.
func polyLogClassification(v variable.Variable, degree, logExponent, coefficient, confidence float64) Classification {
	switch {
	case degree == 0 && logExponent == 0:
		return Classification{Form: FormConstant, Variable: v, Coefficient: coefficient, Confidence: confidence}
	case degree == 0:
		return Classification{Form: FormLogarithmic, Variable: v, LogExponent: logExponent, Coefficient: coefficient, Confidence: confidence}
	case logExponent == 0:
		return Classification{Form: FormPolynomial, Variable: v, PolynomialDegree: degree, Coefficient: coefficient, Confidence: confidence}
	default:
		return Classification{Form: FormPolyLog, Variable: v, PolynomialDegree: degree, LogExponent: logExponent, Coefficient: coefficient, Confidence: confidence}
	}
}

func classifyBinary(t expr.Binary, v variable.Variable) Classification {
	l := Classify(t.Left, v)
	r := Classify(t.Right, v)
	switch t.Op {
	case expr.OpAdd:
		d := Dominant(l, r)
		d.Confidence = math.Min(l.Confidence, r.Confidence)
		return d
	case expr.OpMul:
		return mulClassification(l, r)
	case expr.OpMax:
		d := Dominant(l, r)
		d.Confidence = math.Min(l.Confidence, r.Confidence)
		return d
	case expr.OpMin:
		var d Classification
		if Compare(l, r) <= 0 {
			d = l
		} else {
			d = r
		}
		d.Confidence = math.Min(l.Confidence, r.Confidence)
		return d
	default:
		return Classification{Form: FormUnknown, Variable: v, Confidence: 0}
	}
}

// isPolyFamily reports whether c's Form participates in the additive
// polynomial/log/constant degree algebra used for multiplication.
func isPolyFamily(f Form) bool {
	return f == FormConstant || f == FormLogarithmic || f == FormPolynomial || f == FormPolyLog
}

func mulClassification(l, r Classification) Classification {
	conf := math.Min(l.Confidence, r.Confidence)
	v := l.Variable
	if v == (variable.Variable{}) {
		v = r.Variable
	}

	switch {
	case l.Form == FormFactorial || r.Form == FormFactorial:
		return Classification{Form: FormFactorial, Variable: v, Coefficient: l.Coefficient * r.Coefficient, Confidence: conf}

	case l.Form == FormExponential && r.Form == FormExponential:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: l.ExponentialBase * r.ExponentialBase, Coefficient: l.Coefficient * r.Coefficient, Confidence: conf}

	case l.Form == FormExponential:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: l.ExponentialBase, Coefficient: l.Coefficient * r.Coefficient, Confidence: conf}

	case r.Form == FormExponential:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: r.ExponentialBase, Coefficient: l.Coefficient * r.Coefficient, Confidence: conf}

	case isPolyFamily(l.Form) && isPolyFamily(r.Form):
		return polyLogClassification(v, l.PolynomialDegree+r.PolynomialDegree, l.LogExponent+r.LogExponent, l.Coefficient*r.Coefficient, conf)

	default:
		return Classification{Form: FormUnknown, Variable: v, Confidence: conf * 0.8}
	}
}

func classifyPowerOf(t expr.PowerOf, v variable.Variable) Classification {
	ci := Classify(t.Inner, v)
	if t.Exponent == 1 {
		return ci
	}
	switch {
	case isPolyFamily(ci.Form):
		return polyLogClassification(v, ci.PolynomialDegree*t.Exponent, ci.LogExponent*t.Exponent, math.Pow(ci.Coefficient, t.Exponent), ci.Confidence)
	case ci.Form == FormExponential:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: ci.ExponentialBase, Confidence: ci.Confidence * 0.7}
	case ci.Form == FormFactorial:
		return Classification{Form: FormFactorial, Variable: v, Confidence: ci.Confidence * 0.8}
	default:
		return Classification{Form: FormUnknown, Variable: v, Confidence: ci.Confidence * 0.8}
	}
}

func classifyLogOf(t expr.LogOf, v variable.Variable) Classification {
	ci := Classify(t.Inner, v)
	switch {
	case ci.Form == FormConstant:
		return ci
	case (ci.Form == FormPolynomial || ci.Form == FormPolyLog || ci.Form == FormLogarithmic) && ci.PolynomialDegree > 0:
		return Classification{Form: FormLogarithmic, Variable: v, LogExponent: 1, Coefficient: ci.PolynomialDegree, Confidence: ci.Confidence}
	case ci.Form == FormLogarithmic || ci.Form == FormPolyLog:
		// log(log^j n) ~ log log n: a slower-growing term than log n,
		// over-approximated here as logarithmic with reduced confidence.
		return Classification{Form: FormLogarithmic, Variable: v, LogExponent: 1, Confidence: ci.Confidence * 0.6}
	case ci.Form == FormExponential:
		return Classification{Form: FormPolynomial, Variable: v, PolynomialDegree: 1, Coefficient: math.Log(ci.ExponentialBase), Confidence: ci.Confidence}
	case ci.Form == FormFactorial:
		return Classification{Form: FormPolyLog, Variable: v, PolynomialDegree: 1, LogExponent: 1, Confidence: ci.Confidence * 0.9}
	default:
		return Classification{Form: FormUnknown, Variable: v, Confidence: ci.Confidence * 0.7}
	}
}

func classifyExpOf(t expr.ExpOf, v variable.Variable) Classification {
	ci := Classify(t.Inner, v)
	switch {
	case ci.Form == FormConstant:
		return Classification{Form: FormConstant, Variable: v, Coefficient: math.Pow(t.Base, ci.Coefficient), Confidence: ci.Confidence}
	case ci.Form == FormPolynomial && ci.PolynomialDegree == 1:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: math.Pow(t.Base, ci.Coefficient), Confidence: ci.Confidence}
	case ci.Form == FormPolynomial || ci.Form == FormPolyLog || ci.Form == FormLogarithmic:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: t.Base, Confidence: ci.Confidence * 0.6}
	default:
		return Classification{Form: FormExponential, Variable: v, ExponentialBase: t.Base, Confidence: ci.Confidence * 0.5}
	}
}

func classifyFactorialOf(t expr.FactorialOf, v variable.Variable) Classification {
	ci := Classify(t.Inner, v)
	if ci.Form == FormPolynomial && ci.PolynomialDegree == 1 {
		return Classification{Form: FormFactorial, Variable: v, Confidence: ci.Confidence}
	}
	return Classification{Form: FormFactorial, Variable: v, Confidence: ci.Confidence * 0.7}
}
