package expr

import "github.com/complexo-io/complexo/variable"

// Kind tags the variant of a ComplexityExpression, enabling exhaustive
// type-switch dispatch in classify and bigo rendering without a type
// assertion cascade.
type Kind int

const (
	KindConstant Kind = iota
	KindVariable
	KindLinear
	KindPolynomial
	KindLogarithmic
	KindPolyLog
	KindExponential
	KindFactorial
	KindBinary
	KindConditional
	KindPowerOf
	KindLogOf
	KindExpOf
	KindFactorialOf
	KindSpecialFunction
	KindAmortized
	KindParallel
	KindProbabilistic
	KindMemory
	KindInverseAckermann
)

// BinaryOp is the operator of a Binary composite expression.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpMul
	OpMax
	OpMin
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	default:
		return "?"
	}
}

// SpecialKind selects the family of a SpecialFunction expression.
type SpecialKind int

const (
	SpecialPolylog SpecialKind = iota
	SpecialIncompleteGamma
	SpecialIncompleteBeta
	SpecialHypergeometric
	SpecialIntegral
)

func (k SpecialKind) String() string {
	switch k {
	case SpecialPolylog:
		return "Li"
	case SpecialIncompleteGamma:
		return "Γ_inc"
	case SpecialIncompleteBeta:
		return "B_inc"
	case SpecialHypergeometric:
		return "₂F₁"
	case SpecialIntegral:
		return "∫"
	default:
		return "special"
	}
}

// Expression is the interface implemented by every complexity-algebra
// variant: constant, single-variable, linear, polynomial, logarithmic,
// poly-log, exponential, factorial, binary composition, conditional
// branch, power-of/log-of/exp-of/factorial-of, special-function,
// amortized, parallel, probabilistic, memory, and inverse-Ackermann.
type Expression interface {
	// Kind returns the variant tag for type-switch dispatch.
	Kind() Kind
	// Accept dispatches to the matching Visitor method.
	Accept(v Visitor) any
	// Substitute returns a new expression with every leaf occurrence of
	// vr replaced by repl. Pure and structural.
	Substitute(vr variable.Variable, repl Expression) Expression
	// FreeVariables returns the set of Variables appearing in this
	// expression.
	FreeVariables() variable.Set
	// Evaluate numerically evaluates the expression given a binding
	// from variable name to value. Returns (0, false) if a free
	// variable is unbound, or the result is undefined (e.g. log of a
	// non-positive number) or overflows.
	Evaluate(assignments map[string]float64) (float64, bool)
	// BigO renders the expression as a Big-O string. Always succeeds.
	BigO() string
}

// Constant is O(1): a fixed, variable-free cost.
type Constant struct {
	Value float64
}

// NewConstant returns the constant expression c.
func NewConstant(c float64) Expression { return Constant{Value: c} }

// VarRef is a bare single variable: Θ(n) cost for its Var.
type VarRef struct {
	Var variable.Variable
}

// NewVariable returns the bare-variable expression for v.
func NewVariable(v variable.Variable) Expression { return VarRef{Var: v} }

// Linear is c·n for an explicit coefficient c, distinct from VarRef so
// simplification can combine coefficients without first decomposing a
// Binary(Mul, Constant, VarRef) pair.
type Linear struct {
	Coefficient float64
	Var         variable.Variable
}

// NewLinear returns c·v.
func NewLinear(c float64, v variable.Variable) Expression {
	return Linear{Coefficient: c, Var: v}
}

// Polynomial is Σ coefficients[d]·n^d, keyed by integer degree.
type Polynomial struct {
	Var          variable.Variable
	Coefficients map[int]float64
}

// NewPolynomial returns a polynomial in v with the given degree→
// coefficient map. The map is copied defensively.
func NewPolynomial(v variable.Variable, coeffs map[int]float64) Expression {
	cp := make(map[int]float64, len(coeffs))
	for d, c := range coeffs {
		cp[d] = c
	}
	return Polynomial{Var: v, Coefficients: cp}
}

// Logarithmic is coefficient·log_base(v).
type Logarithmic struct {
	Coefficient float64
	Var         variable.Variable
	Base        float64
}

// NewLogarithmic returns coefficient·log_base(v). Base<=1 or Base<=0 is
// normalized to math.E by Evaluate/BigO (see evaluate.go, bigo.go).
func NewLogarithmic(coefficient float64, v variable.Variable, base float64) Expression {
	return Logarithmic{Coefficient: coefficient, Var: v, Base: base}
}

// PolyLog is coefficient·v^PolyDegree·log^LogExponent(v), the canonical
// poly-log form c·n^k·log^j n used throughout the Master/Akra-Bazzi
// solvers.
type PolyLog struct {
	Coefficient float64
	Var         variable.Variable
	PolyDegree  float64
	LogExponent float64
}

// NewPolyLog returns coefficient·v^polyDegree·log^logExponent(v).
func NewPolyLog(coefficient float64, v variable.Variable, polyDegree, logExponent float64) Expression {
	return PolyLog{Coefficient: coefficient, Var: v, PolyDegree: polyDegree, LogExponent: logExponent}
}

// Exponential is coefficient·base^v.
type Exponential struct {
	Coefficient float64
	Base        float64
	Var         variable.Variable
}

// NewExponential returns coefficient·base^v.
func NewExponential(coefficient, base float64, v variable.Variable) Expression {
	return Exponential{Coefficient: coefficient, Base: base, Var: v}
}

// Factorial is v!.
type Factorial struct {
	Var variable.Variable
}

// NewFactorial returns v!.
func NewFactorial(v variable.Variable) Expression { return Factorial{Var: v} }

// Binary composes two expressions under +, ×, max, or min.
type Binary struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

// Add, Mul, Max, and Min build Binary expressions directly. The
// compose.go constructors Sequential, Nested and Branch return the same
// Binary values; only Loop folds its constant count into a Constant,
// Linear or Polynomial body.
func Add(a, b Expression) Expression { return Binary{Op: OpAdd, Left: a, Right: b} }
func Mul(a, b Expression) Expression { return Binary{Op: OpMul, Left: a, Right: b} }
func Max(a, b Expression) Expression { return Binary{Op: OpMax, Left: a, Right: b} }
func Min(a, b Expression) Expression { return Binary{Op: OpMin, Left: a, Right: b} }

// Conditional represents a data-dependent branch whose taken side is
// not statically known. Unlike Binary(OpMax,...), it retains the
// branch condition for diagnostics; classify/bigO treat it as the max
// of Then and Else (the worst-case composition rule) but confidence
// scoring penalizes branches of incomparable asymptotic form.
type Conditional struct {
	Condition string
	Then      Expression
	Else      Expression
}

// NewConditional returns a branch expression with the given
// human-readable condition description.
func NewConditional(condition string, then, els Expression) Expression {
	return Conditional{Condition: condition, Then: then, Else: els}
}

// PowerOf raises Inner to a fixed Exponent: Inner^Exponent.
type PowerOf struct {
	Inner    Expression
	Exponent float64
}

// NewPowerOf returns inner^exponent.
func NewPowerOf(inner Expression, exponent float64) Expression {
	return PowerOf{Inner: inner, Exponent: exponent}
}

// LogOf is log_Base(Inner).
type LogOf struct {
	Inner Expression
	Base  float64
}

// NewLogOf returns log_base(inner).
func NewLogOf(inner Expression, base float64) Expression {
	return LogOf{Inner: inner, Base: base}
}

// ExpOf is Base^Inner.
type ExpOf struct {
	Base  float64
	Inner Expression
}

// NewExpOf returns base^inner.
func NewExpOf(base float64, inner Expression) Expression {
	return ExpOf{Base: base, Inner: inner}
}

// FactorialOf is Inner!.
type FactorialOf struct {
	Inner Expression
}

// NewFactorialOf returns inner!.
func NewFactorialOf(inner Expression) Expression { return FactorialOf{Inner: inner} }

// SpecialFunction wraps a named special function (polylog, incomplete
// gamma/beta, hypergeometric, or a symbolic integral) over Args, with a
// free-form Note (e.g. the asymptotic-bound estimate attached by the
// integral evaluator's symbolic fallback).
type SpecialFunction struct {
	FuncKind SpecialKind
	Args     []Expression
	Note     string
}

// NewSpecialFunction returns a SpecialFunction expression.
func NewSpecialFunction(kind SpecialKind, args []Expression, note string) Expression {
	return SpecialFunction{FuncKind: kind, Args: append([]Expression(nil), args...), Note: note}
}

// Amortized pairs an amortized cost with its worst-case per-operation
// cost and names the accounting method (e.g. "potential", "banker's").
type Amortized struct {
	AmortizedCost Expression
	WorstCase     Expression
	Method        string
}

// NewAmortized returns an Amortized expression.
func NewAmortized(amortizedCost, worstCase Expression, method string) Expression {
	return Amortized{AmortizedCost: amortizedCost, WorstCase: worstCase, Method: method}
}

// Parallel carries Work (total sequential operations), Span (critical-
// path length), and the Processors variable.
type Parallel struct {
	Work       Expression
	Span       Expression
	Processors variable.Variable
}

// NewParallel returns a Parallel expression.
func NewParallel(work, span Expression, processors variable.Variable) Expression {
	return Parallel{Work: work, Span: span, Processors: processors}
}

// Probabilistic carries Expected/Worst/Best case costs plus the
// Distribution name and any Assumptions behind it (e.g. "uniform key
// distribution", "random pivot choice").
type Probabilistic struct {
	Expected     Expression
	Worst        Expression
	Best         Expression
	Distribution string
	Assumptions  []string
}

// NewProbabilistic returns a Probabilistic expression.
func NewProbabilistic(expected, worst, best Expression, distribution string, assumptions []string) Expression {
	return Probabilistic{
		Expected:     expected,
		Worst:        worst,
		Best:         best,
		Distribution: distribution,
		Assumptions:  append([]string(nil), assumptions...),
	}
}

// Memory carries Total/Stack/Heap/Auxiliary space costs and an
// Allocations count expression.
type Memory struct {
	Total       Expression
	Stack       Expression
	Heap        Expression
	Auxiliary   Expression
	Allocations Expression
}

// NewMemory returns a Memory expression.
func NewMemory(total, stack, heap, auxiliary, allocations Expression) Expression {
	return Memory{Total: total, Stack: stack, Heap: heap, Auxiliary: auxiliary, Allocations: allocations}
}

// InverseAckermann is α(v), the inverse-Ackermann function of v — the
// near-constant growth term from union-find with path compression.
type InverseAckermann struct {
	Var variable.Variable
}

// NewInverseAckermann returns α(v).
func NewInverseAckermann(v variable.Variable) Expression { return InverseAckermann{Var: v} }
