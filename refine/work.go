package refine

import "github.com/complexo-io/complexo/recurrence"

// RecurrenceWork evaluates a recurrence's right-hand side at n, given
// a way to evaluate the candidate solution at an arbitrary argument —
// the induction ratio's numerator, identical in shape whether the
// recurrence divides (bᵢ·n) or subtracts (n−i).
type RecurrenceWork func(n float64, candidate func(float64) (float64, bool)) (float64, bool)

// DivideWork builds the RecurrenceWork for a divide-and-conquer
// recurrence: Σ aᵢ·candidate(bᵢ·n) + g(n).
func DivideWork(d recurrence.DivideRecurrence) RecurrenceWork {
	return func(n float64, candidate func(float64) (float64, bool)) (float64, bool) {
		sum := 0.0
		for _, t := range d.Terms {
			c, ok := candidate(t.Scale * n)
			if !ok {
				return 0, false
			}
			sum += t.Coefficient * c
		}
		g, ok := d.NonRecursiveWork.Evaluate(map[string]float64{d.Var.Name: n})
		if !ok {
			return 0, false
		}
		return sum + g, true
	}
}

// LinearWork builds the RecurrenceWork for a subtraction-pattern
// recurrence: Σ aᵢ·candidate(n−i) + f(n).
func LinearWork(l recurrence.LinearRecurrence) RecurrenceWork {
	return func(n float64, candidate func(float64) (float64, bool)) (float64, bool) {
		sum := 0.0
		for i, a := range l.Coefficients {
			c, ok := candidate(n - float64(i+1))
			if !ok {
				return 0, false
			}
			sum += a * c
		}
		if l.NonHomogeneous != nil {
			f, ok := l.NonHomogeneous.Evaluate(map[string]float64{l.Var.Name: n})
			if !ok {
				return 0, false
			}
			sum += f
		}
		return sum, true
	}
}
