package classify

import (
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// Simplify rewrites e to a canonical, reduced-complexity tree:
// additive chains collapse dominated addends under the asymptotic
// order (drop_lower_order_terms(n^2 + n + log n) = n^2), same-shape
// additive terms combine by summing coefficients, multiplicative
// poly-log chains merge by summing exponents, and multiplying by the
// constant 1 is the identity. Simplify only collapses an Add/Mul pair
// when the two sides share at most one free variable — an expression
// mixing unrelated variables (e.g. V + E) has no total order to decide
// "dominated", so it is left as a simplified-children Binary node.
// Simplify is idempotent: re-running it on its own output is a no-op.
func Simplify(e expr.Expression) expr.Expression {
	switch t := e.(type) {
	case expr.Binary:
		l := Simplify(t.Left)
		r := Simplify(t.Right)
		switch t.Op {
		case expr.OpAdd:
			return simplifyAdd(l, r)
		case expr.OpMul:
			return simplifyMul(l, r)
		case expr.OpMax:
			return simplifyMaxMin(l, r, true)
		case expr.OpMin:
			return simplifyMaxMin(l, r, false)
		default:
			return expr.Binary{Op: t.Op, Left: l, Right: r}
		}

	case expr.Conditional:
		return expr.Conditional{Condition: t.Condition, Then: Simplify(t.Then), Else: Simplify(t.Else)}

	case expr.PowerOf:
		return expr.PowerOf{Inner: Simplify(t.Inner), Exponent: t.Exponent}

	case expr.LogOf:
		return expr.LogOf{Inner: Simplify(t.Inner), Base: t.Base}

	case expr.ExpOf:
		return expr.ExpOf{Base: t.Base, Inner: Simplify(t.Inner)}

	case expr.FactorialOf:
		return expr.FactorialOf{Inner: Simplify(t.Inner)}

	case expr.SpecialFunction:
		args := make([]expr.Expression, len(t.Args))
		for i, a := range t.Args {
			args[i] = Simplify(a)
		}
		return expr.SpecialFunction{FuncKind: t.FuncKind, Args: args, Note: t.Note}

	case expr.Amortized:
		return expr.Amortized{AmortizedCost: Simplify(t.AmortizedCost), WorstCase: Simplify(t.WorstCase), Method: t.Method}

	case expr.Parallel:
		return expr.Parallel{Work: Simplify(t.Work), Span: Simplify(t.Span), Processors: t.Processors}

	case expr.Probabilistic:
		return expr.Probabilistic{
			Expected: Simplify(t.Expected), Worst: Simplify(t.Worst), Best: Simplify(t.Best),
			Distribution: t.Distribution, Assumptions: t.Assumptions,
		}

	case expr.Memory:
		return expr.Memory{
			Total: Simplify(t.Total), Stack: Simplify(t.Stack), Heap: Simplify(t.Heap),
			Auxiliary: Simplify(t.Auxiliary), Allocations: Simplify(t.Allocations),
		}

	default:
		return e
	}
}

// sharedVariable returns the single variable that both l and r depend
// on (ok=false if they mention zero or more than one distinct
// variable between them, in which case no asymptotic order applies).
func sharedVariable(l, r expr.Expression) (variable.Variable, bool) {
	union := l.FreeVariables().Union(r.FreeVariables()).Slice()
	switch len(union) {
	case 0:
		return variable.Variable{}, true
	case 1:
		return union[0], true
	default:
		return variable.Variable{}, false
	}
}

func sameShape(a, b Classification) bool {
	if a.Form != b.Form {
		return false
	}
	switch a.Form {
	case FormPolynomial, FormPolyLog:
		return a.PolynomialDegree == b.PolynomialDegree && a.LogExponent == b.LogExponent
	case FormLogarithmic:
		return a.LogExponent == b.LogExponent
	case FormExponential:
		return a.ExponentialBase == b.ExponentialBase
	default:
		return true
	}
}

func simplifyAdd(l, r expr.Expression) expr.Expression {
	v, ok := sharedVariable(l, r)
	if !ok {
		return expr.Add(l, r)
	}
	cl := Classify(l, v)
	cr := Classify(r, v)
	if cl.Form == FormUnknown || cr.Form == FormUnknown {
		return expr.Add(l, r)
	}
	if sameShape(cl, cr) {
		combined := cl
		combined.Coefficient = cl.Coefficient + cr.Coefficient
		combined.Confidence = minFloat(cl.Confidence, cr.Confidence)
		return classificationToExpr(combined, v)
	}
	dominant := Dominant(cl, cr)
	return classificationToExpr(dominant, v)
}

func simplifyMul(l, r expr.Expression) expr.Expression {
	if lc, ok := l.(expr.Constant); ok {
		if lc.Value == 1 {
			return r
		}
		if lc.Value == 0 {
			return expr.Constant{Value: 0}
		}
		if scaled, ok := scaleCoefficient(r, lc.Value); ok {
			return scaled
		}
		return expr.Mul(l, r)
	}
	if rc, ok := r.(expr.Constant); ok {
		if rc.Value == 1 {
			return l
		}
		if rc.Value == 0 {
			return expr.Constant{Value: 0}
		}
		if scaled, ok := scaleCoefficient(l, rc.Value); ok {
			return scaled
		}
		return expr.Mul(l, r)
	}

	v, ok := sharedVariable(l, r)
	if !ok {
		return expr.Mul(l, r)
	}
	cl := Classify(l, v)
	cr := Classify(r, v)
	if isPolyFamily(cl.Form) && isPolyFamily(cr.Form) {
		return classificationToExpr(mulClassification(cl, cr), v)
	}
	return expr.Mul(l, r)
}

func simplifyMaxMin(l, r expr.Expression, isMax bool) expr.Expression {
	v, ok := sharedVariable(l, r)
	if !ok {
		if isMax {
			return expr.Max(l, r)
		}
		return expr.Min(l, r)
	}
	cl := Classify(l, v)
	cr := Classify(r, v)
	if cl.Form == FormUnknown || cr.Form == FormUnknown {
		if isMax {
			return expr.Max(l, r)
		}
		return expr.Min(l, r)
	}
	if isMax {
		return classificationToExpr(Dominant(cl, cr), v)
	}
	if Compare(cl, cr) <= 0 {
		return classificationToExpr(cl, v)
	}
	return classificationToExpr(cr, v)
}

// scaleCoefficient scales a monomial-shaped expression's leading
// coefficient by c, returning ok=false for anything else (composite
// nodes are left as an explicit Mul rather than guessed at).
func scaleCoefficient(e expr.Expression, c float64) (expr.Expression, bool) {
	switch t := e.(type) {
	case expr.Constant:
		return expr.Constant{Value: c * t.Value}, true
	case expr.VarRef:
		return expr.Linear{Coefficient: c, Var: t.Var}, true
	case expr.Linear:
		return expr.Linear{Coefficient: c * t.Coefficient, Var: t.Var}, true
	case expr.Polynomial:
		scaled := make(map[int]float64, len(t.Coefficients))
		for d, coeff := range t.Coefficients {
			scaled[d] = c * coeff
		}
		return expr.Polynomial{Var: t.Var, Coefficients: scaled}, true
	case expr.Logarithmic:
		return expr.Logarithmic{Coefficient: c * t.Coefficient, Var: t.Var, Base: t.Base}, true
	case expr.PolyLog:
		return expr.PolyLog{Coefficient: c * t.Coefficient, Var: t.Var, PolyDegree: t.PolyDegree, LogExponent: t.LogExponent}, true
	case expr.Exponential:
		return expr.Exponential{Coefficient: c * t.Coefficient, Base: t.Base, Var: t.Var}, true
	default:
		return nil, false
	}
}

// classificationToExpr rebuilds a canonical Expression matching c,
// the inverse of Classify for every Form it can produce. Callers never
// pass a FormUnknown Classification.
func classificationToExpr(c Classification, v variable.Variable) expr.Expression {
	switch c.Form {
	case FormConstant:
		return expr.Constant{Value: c.Coefficient}
	case FormLogarithmic:
		return expr.Logarithmic{Coefficient: c.Coefficient, Var: v, Base: 0}
	case FormPolynomial:
		if c.PolynomialDegree == 1 {
			return expr.Linear{Coefficient: c.Coefficient, Var: v}
		}
		if isInteger(c.PolynomialDegree) {
			return expr.Polynomial{Var: v, Coefficients: map[int]float64{int(c.PolynomialDegree): c.Coefficient}}
		}
		return expr.PolyLog{Coefficient: c.Coefficient, Var: v, PolyDegree: c.PolynomialDegree, LogExponent: 0}
	case FormPolyLog:
		return expr.PolyLog{Coefficient: c.Coefficient, Var: v, PolyDegree: c.PolynomialDegree, LogExponent: c.LogExponent}
	case FormExponential:
		return expr.Exponential{Coefficient: c.Coefficient, Base: c.ExponentialBase, Var: v}
	case FormFactorial:
		return expr.Factorial{Var: v}
	default:
		return expr.Constant{Value: c.Coefficient}
	}
}

func isInteger(f float64) bool { return f == float64(int64(f)) }

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
