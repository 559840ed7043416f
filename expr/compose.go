package expr

// This file implements the non-recursive composition rules from
// spec.md §4.1's table: sequential -> +, nested -> ×, branch -> max,
// loop with a known count -> count × body. The recursion-builder rows
// of that table (linear and divide-and-conquer recursion -> a
// recurrence relation) live in package recurrence, since building a
// Recurrence requires recurrence's own types and would otherwise
// create an import cycle back into expr.

// Sequential composes two statements executed one after another:
// left + right. Equivalent to Add, but named for callers translating
// straight-line code composition directly from spec.md's table.
func Sequential(left, right Expression) Expression { return Add(left, right) }

// Nested composes a body executed inside an enclosing construct (e.g.
// a loop body nested inside another loop): left * right.
func Nested(outer, inner Expression) Expression { return Mul(outer, inner) }

// Branch composes two mutually exclusive code paths under the
// worst-case assumption: max(left, right).
func Branch(left, right Expression) Expression { return Max(left, right) }

// Loop composes a constant iteration count with a loop body. Integer
// constants collapse immediately (count * body folds to a Linear/
// Polynomial-friendly scaled expression instead of staying a generic
// Binary(Mul, Constant, body)), matching "integer constants collapse"
// in spec.md's table.
func Loop(count int, body Expression) Expression {
	if count == 1 {
		return body
	}
	switch b := body.(type) {
	case Constant:
		return Constant{Value: float64(count) * b.Value}
	case VarRef:
		return Linear{Coefficient: float64(count), Var: b.Var}
	case Linear:
		return Linear{Coefficient: float64(count) * b.Coefficient, Var: b.Var}
	case Polynomial:
		scaled := make(map[int]float64, len(b.Coefficients))
		for d, c := range b.Coefficients {
			scaled[d] = float64(count) * c
		}
		return Polynomial{Var: b.Var, Coefficients: scaled}
	default:
		return Mul(Constant{Value: float64(count)}, body)
	}
}
