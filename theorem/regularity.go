package theorem

import (
	"gonum.org/v1/gonum/floats"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// regularityGrid samples n at 2^10, 2^14, 2^18: three widely-spaced
// points, the minimum the regularity check names, wide enough apart
// that a recurrence which only looks regular at small n is caught.
var regularityGrid = []float64{1 << 10, 1 << 14, 1 << 18}

// verifyRegularity checks Master case 3's precondition a·f(n/b) <=
// c·f(n) for some c < 1, by evaluating the ratio a·f(n/b)/f(n) at
// every grid point and requiring the largest of them to stay below 1.
// g is treated as inapplicable (false) if it can't be evaluated at any
// sample point, or evaluates to a non-positive f(n).
func verifyRegularity(a, b float64, g expr.Expression, v variable.Variable) bool {
	ratios := make([]float64, 0, len(regularityGrid))
	for _, n := range regularityGrid {
		fn, ok := g.Evaluate(map[string]float64{v.Name: n})
		if !ok || fn <= 0 {
			return false
		}
		fnb, ok := g.Evaluate(map[string]float64{v.Name: n / b})
		if !ok {
			return false
		}
		ratios = append(ratios, a*fnb/fn)
	}
	return floats.Max(ratios) < 1
}
