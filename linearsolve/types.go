package linearsolve

import (
	"math"

	"github.com/complexo-io/complexo/expr"
)

// CharacteristicRoot is one root of the characteristic polynomial
// x^k − Σ aᵢ·x^(k−i) = 0, after clustering roots within rootClusterTol
// of each other into a single entry with a summed Multiplicity.
type CharacteristicRoot struct {
	Real         float64
	Imag         float64
	Multiplicity int
}

// Magnitude returns |Real + i·Imag|.
func (r CharacteristicRoot) Magnitude() float64 { return math.Hypot(r.Real, r.Imag) }

// IsReal reports whether the imaginary part is negligible.
func (r CharacteristicRoot) IsReal() bool { return math.Abs(r.Imag) < rootClusterTol }

// IsRepeated reports a clustered multiplicity greater than one.
func (r CharacteristicRoot) IsRepeated() bool { return r.Multiplicity > 1 }

// Solution is the outcome of solving a linear recurrence's
// characteristic polynomial: every root found, the subset tied for
// largest magnitude (within rootClusterTol — the dominant set can have
// more than one member), the resulting asymptotic Expression, and a
// human-readable Explanation of which case fired.
type Solution struct {
	Roots         []CharacteristicRoot
	DominantRoots []CharacteristicRoot
	Expression    expr.Expression
	Explanation   string
}
