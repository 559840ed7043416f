package expr

import "github.com/complexo-io/complexo/variable"

// Substitute replaces every leaf occurrence of vr with repl. It is
// pure and structural: composite nodes substitute into each child and
// rebuild; a VarRef matching vr is replaced by repl, and a coefficient
// form over vr (Linear, Polynomial, Logarithmic, PolyLog, Exponential,
// Factorial) is rebuilt around repl — substituting n -> m+1 into "2n"
// yields 2·(m+1).
func (e Constant) Substitute(variable.Variable, Expression) Expression { return e }

func (e VarRef) Substitute(vr variable.Variable, repl Expression) Expression {
	if e.Var.Equal(vr) {
		return repl
	}
	return e
}

func (e Linear) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	// c·n[n->repl] = c·repl
	return Mul(Constant{Value: e.Coefficient}, repl)
}

func (e Polynomial) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	var sum Expression = Constant{Value: 0}
	for degree, coeff := range e.Coefficients {
		term := Mul(Constant{Value: coeff}, PowerOf{Inner: repl, Exponent: float64(degree)})
		sum = Add(sum, term)
	}
	return sum
}

func (e Logarithmic) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	return Mul(Constant{Value: e.Coefficient}, LogOf{Inner: repl, Base: e.Base})
}

func (e PolyLog) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	poly := PowerOf{Inner: repl, Exponent: e.PolyDegree}
	logPart := PowerOf{Inner: LogOf{Inner: repl, Base: 0}, Exponent: e.LogExponent}
	return Mul(Constant{Value: e.Coefficient}, Mul(poly, logPart))
}

func (e Exponential) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	return Mul(Constant{Value: e.Coefficient}, ExpOf{Base: e.Base, Inner: repl})
}

func (e Factorial) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	return FactorialOf{Inner: repl}
}

func (e Binary) Substitute(vr variable.Variable, repl Expression) Expression {
	return Binary{Op: e.Op, Left: e.Left.Substitute(vr, repl), Right: e.Right.Substitute(vr, repl)}
}

func (e Conditional) Substitute(vr variable.Variable, repl Expression) Expression {
	return Conditional{
		Condition: e.Condition,
		Then:      e.Then.Substitute(vr, repl),
		Else:      e.Else.Substitute(vr, repl),
	}
}

func (e PowerOf) Substitute(vr variable.Variable, repl Expression) Expression {
	return PowerOf{Inner: e.Inner.Substitute(vr, repl), Exponent: e.Exponent}
}

func (e LogOf) Substitute(vr variable.Variable, repl Expression) Expression {
	return LogOf{Inner: e.Inner.Substitute(vr, repl), Base: e.Base}
}

func (e ExpOf) Substitute(vr variable.Variable, repl Expression) Expression {
	return ExpOf{Base: e.Base, Inner: e.Inner.Substitute(vr, repl)}
}

func (e FactorialOf) Substitute(vr variable.Variable, repl Expression) Expression {
	return FactorialOf{Inner: e.Inner.Substitute(vr, repl)}
}

func (e SpecialFunction) Substitute(vr variable.Variable, repl Expression) Expression {
	args := make([]Expression, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Substitute(vr, repl)
	}
	return SpecialFunction{FuncKind: e.FuncKind, Args: args, Note: e.Note}
}

func (e Amortized) Substitute(vr variable.Variable, repl Expression) Expression {
	return Amortized{
		AmortizedCost: e.AmortizedCost.Substitute(vr, repl),
		WorstCase:     e.WorstCase.Substitute(vr, repl),
		Method:        e.Method,
	}
}

func (e Parallel) Substitute(vr variable.Variable, repl Expression) Expression {
	return Parallel{
		Work:       e.Work.Substitute(vr, repl),
		Span:       e.Span.Substitute(vr, repl),
		Processors: e.Processors,
	}
}

func (e Probabilistic) Substitute(vr variable.Variable, repl Expression) Expression {
	return Probabilistic{
		Expected:     e.Expected.Substitute(vr, repl),
		Worst:        e.Worst.Substitute(vr, repl),
		Best:         e.Best.Substitute(vr, repl),
		Distribution: e.Distribution,
		Assumptions:  e.Assumptions,
	}
}

func (e Memory) Substitute(vr variable.Variable, repl Expression) Expression {
	return Memory{
		Total:       e.Total.Substitute(vr, repl),
		Stack:       e.Stack.Substitute(vr, repl),
		Heap:        e.Heap.Substitute(vr, repl),
		Auxiliary:   e.Auxiliary.Substitute(vr, repl),
		Allocations: e.Allocations.Substitute(vr, repl),
	}
}

func (e InverseAckermann) Substitute(vr variable.Variable, repl Expression) Expression {
	if !e.Var.Equal(vr) {
		return e
	}
	return SpecialFunction{FuncKind: SpecialPolylog, Args: []Expression{repl}, Note: "alpha(" + repl.BigO() + ")"}
}
