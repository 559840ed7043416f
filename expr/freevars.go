package expr

import "github.com/complexo-io/complexo/variable"

func (Constant) FreeVariables() variable.Set { return variable.NewSet() }

func (e VarRef) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e Linear) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e Polynomial) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e Logarithmic) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e PolyLog) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e Exponential) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e Factorial) FreeVariables() variable.Set { return variable.NewSet(e.Var) }

func (e Binary) FreeVariables() variable.Set {
	return e.Left.FreeVariables().Union(e.Right.FreeVariables())
}

func (e Conditional) FreeVariables() variable.Set {
	return e.Then.FreeVariables().Union(e.Else.FreeVariables())
}

func (e PowerOf) FreeVariables() variable.Set { return e.Inner.FreeVariables() }

func (e LogOf) FreeVariables() variable.Set { return e.Inner.FreeVariables() }

func (e ExpOf) FreeVariables() variable.Set { return e.Inner.FreeVariables() }

func (e FactorialOf) FreeVariables() variable.Set { return e.Inner.FreeVariables() }

func (e SpecialFunction) FreeVariables() variable.Set {
	out := variable.NewSet()
	for _, a := range e.Args {
		out = out.Union(a.FreeVariables())
	}
	return out
}

func (e Amortized) FreeVariables() variable.Set {
	return e.AmortizedCost.FreeVariables().Union(e.WorstCase.FreeVariables())
}

func (e Parallel) FreeVariables() variable.Set {
	return e.Work.FreeVariables().Union(e.Span.FreeVariables()).Add(e.Processors)
}

func (e Probabilistic) FreeVariables() variable.Set {
	return e.Expected.FreeVariables().Union(e.Worst.FreeVariables()).Union(e.Best.FreeVariables())
}

func (e Memory) FreeVariables() variable.Set {
	out := e.Total.FreeVariables()
	out = out.Union(e.Stack.FreeVariables())
	out = out.Union(e.Heap.FreeVariables())
	out = out.Union(e.Auxiliary.FreeVariables())
	out = out.Union(e.Allocations.FreeVariables())
	return out
}

func (e InverseAckermann) FreeVariables() variable.Set { return variable.NewSet(e.Var) }
