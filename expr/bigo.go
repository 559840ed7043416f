package expr

import (
	"fmt"
	"strings"
)

func (e Constant) BigO() string { return "O(1)" }

func (e VarRef) BigO() string { return fmt.Sprintf("O(%s)", e.Var.Name) }

func (e Linear) BigO() string { return fmt.Sprintf("O(%s)", e.Var.Name) }

func (e Polynomial) BigO() string {
	maxDeg := 0
	found := false
	for d, c := range e.Coefficients {
		if c == 0 {
			continue
		}
		if !found || d > maxDeg {
			maxDeg = d
			found = true
		}
	}
	if !found {
		return "O(1)"
	}
	return fmt.Sprintf("O(%s)", powerTerm(e.Var.Name, float64(maxDeg)))
}

func (e Logarithmic) BigO() string {
	return fmt.Sprintf("O(log %s)", e.Var.Name)
}

func (e PolyLog) BigO() string {
	var parts []string
	if e.PolyDegree != 0 {
		parts = append(parts, powerTerm(e.Var.Name, e.PolyDegree))
	}
	if e.LogExponent != 0 {
		parts = append(parts, powerTerm("log "+e.Var.Name, e.LogExponent))
	}
	if len(parts) == 0 {
		return "O(1)"
	}
	return fmt.Sprintf("O(%s)", strings.Join(parts, " "))
}

func (e Exponential) BigO() string {
	return fmt.Sprintf("O(%s^%s)", formatFloat(e.Base), e.Var.Name)
}

func (e Factorial) BigO() string { return fmt.Sprintf("O(%s!)", e.Var.Name) }

func (e Binary) BigO() string {
	l := strings.TrimSuffix(strings.TrimPrefix(e.Left.BigO(), "O("), ")")
	r := strings.TrimSuffix(strings.TrimPrefix(e.Right.BigO(), "O("), ")")
	switch e.Op {
	case OpAdd:
		return fmt.Sprintf("O(%s + %s)", l, r)
	case OpMul:
		return fmt.Sprintf("O(%s * %s)", l, r)
	case OpMax:
		return fmt.Sprintf("O(max(%s, %s))", l, r)
	case OpMin:
		return fmt.Sprintf("O(min(%s, %s))", l, r)
	default:
		return "O(?)"
	}
}

func (e Conditional) BigO() string {
	return Binary{Op: OpMax, Left: e.Then, Right: e.Else}.BigO()
}

func (e PowerOf) BigO() string {
	inner := strings.TrimSuffix(strings.TrimPrefix(e.Inner.BigO(), "O("), ")")
	return fmt.Sprintf("O(%s)", powerTerm(inner, e.Exponent))
}

func (e LogOf) BigO() string {
	inner := strings.TrimSuffix(strings.TrimPrefix(e.Inner.BigO(), "O("), ")")
	return fmt.Sprintf("O(log(%s))", inner)
}

func (e ExpOf) BigO() string {
	inner := strings.TrimSuffix(strings.TrimPrefix(e.Inner.BigO(), "O("), ")")
	return fmt.Sprintf("O(%s^%s)", formatFloat(e.Base), inner)
}

func (e FactorialOf) BigO() string {
	inner := strings.TrimSuffix(strings.TrimPrefix(e.Inner.BigO(), "O("), ")")
	return fmt.Sprintf("O((%s)!)", inner)
}

func (e SpecialFunction) BigO() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = strings.TrimSuffix(strings.TrimPrefix(a.BigO(), "O("), ")")
	}
	label := fmt.Sprintf("%s(%s)", e.FuncKind.String(), strings.Join(args, ", "))
	if e.Note != "" {
		return fmt.Sprintf("O(%s) [%s]", label, e.Note)
	}
	return fmt.Sprintf("O(%s)", label)
}

func (e Amortized) BigO() string {
	amortized := strings.TrimSuffix(strings.TrimPrefix(e.AmortizedCost.BigO(), "O("), ")")
	worst := strings.TrimSuffix(strings.TrimPrefix(e.WorstCase.BigO(), "O("), ")")
	return fmt.Sprintf("O(%s) amortized (O(%s) worst-case, %s)", amortized, worst, e.Method)
}

func (e Parallel) BigO() string {
	work := strings.TrimSuffix(strings.TrimPrefix(e.Work.BigO(), "O("), ")")
	span := strings.TrimSuffix(strings.TrimPrefix(e.Span.BigO(), "O("), ")")
	return fmt.Sprintf("O(%s) work, O(%s) span on %s processors", work, span, e.Processors.Name)
}

func (e Probabilistic) BigO() string {
	exp := strings.TrimSuffix(strings.TrimPrefix(e.Expected.BigO(), "O("), ")")
	worst := strings.TrimSuffix(strings.TrimPrefix(e.Worst.BigO(), "O("), ")")
	return fmt.Sprintf("O(%s) expected (O(%s) worst-case, %s)", exp, worst, e.Distribution)
}

func (e Memory) BigO() string { return e.Total.BigO() }

func (e InverseAckermann) BigO() string { return fmt.Sprintf("O(alpha(%s))", e.Var.Name) }

// powerTerm renders base^exponent, collapsing exponent==1 to the bare
// base and exponent==0 to "1".
func powerTerm(base string, exponent float64) string {
	if exponent == 0 {
		return "1"
	}
	if exponent == 1 {
		return base
	}
	return fmt.Sprintf("%s^%s", base, formatFloat(exponent))
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.3g", f)
}
