package linearsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/errs"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

const (
	// rootClusterTol is the distance below which two characteristic
	// roots are treated as one (repeated) root, and the magnitude
	// window within which the dominant set ties.
	rootClusterTol = 1e-6
)

// Solve finds the roots of the characteristic polynomial
// x^k − coeffs[0]·x^(k−1) − coeffs[1]·x^(k−2) − ... − coeffs[k−1] = 0
// for the linear recurrence T(n) = Σ coeffs[i]·T(n−1−i) + f(n), and
// builds the asymptotic Expression the dominant root(s) imply. f may
// be nil for a homogeneous recurrence.
func Solve(coeffs []float64, f expr.Expression, v variable.Variable) (Solution, error) {
	if len(coeffs) == 0 {
		return Solution{}, errs.InputInvalid.New("linear recurrence has no coefficients")
	}

	var roots []CharacteristicRoot
	switch len(coeffs) {
	case 1:
		roots = []CharacteristicRoot{{Real: coeffs[0], Multiplicity: 1}}
	case 2:
		roots = solveOrder2(coeffs[0], coeffs[1])
	default:
		rs, err := solveCompanion(coeffs)
		if err != nil {
			return Solution{}, err
		}
		roots = rs
	}

	roots = clusterRoots(roots)
	dominant := dominantSet(roots)
	expression, explanation := buildSolution(dominant, f, v)

	return Solution{
		Roots:         roots,
		DominantRoots: dominant,
		Expression:    expression,
		Explanation:   explanation,
	}, nil
}

// solveOrder2 applies the quadratic formula to
// x^2 − a1·x − a2 = 0, producing a complex-conjugate pair when the
// discriminant is negative.
func solveOrder2(a1, a2 float64) []CharacteristicRoot {
	disc := a1*a1 + 4*a2
	if disc >= 0 {
		sq := math.Sqrt(disc)
		return []CharacteristicRoot{
			{Real: (a1 + sq) / 2, Multiplicity: 1},
			{Real: (a1 - sq) / 2, Multiplicity: 1},
		}
	}
	sq := math.Sqrt(-disc)
	return []CharacteristicRoot{
		{Real: a1 / 2, Imag: sq / 2, Multiplicity: 1},
		{Real: a1 / 2, Imag: -sq / 2, Multiplicity: 1},
	}
}

// solveCompanion handles order >= 3 by building the companion matrix
// of x^k − coeffs[0]·x^(k−1) − ... − coeffs[k−1] and reading its
// eigenvalues off with gonum's general (non-symmetric) decomposition.
//
// Stage 1: allocate the k×k working matrix, top row = coeffs, unit
// subdiagonal elsewhere.
// Stage 2: factorize with mat.Eigen (EigenNone: only the values are
// needed, not eigenvectors).
// Stage 3: read back each eigenvalue's real/imaginary parts.
func solveCompanion(coeffs []float64) ([]CharacteristicRoot, error) {
	k := len(coeffs)
	companion := mat.NewDense(k, k, nil)
	for j, c := range coeffs {
		companion.Set(0, j, c)
	}
	for i := 1; i < k; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, errs.NumericalFailure.New("companion-matrix eigendecomposition did not converge")
	}
	values := eig.Values(nil)

	roots := make([]CharacteristicRoot, len(values))
	for i, val := range values {
		roots[i] = CharacteristicRoot{Real: real(val), Imag: imag(val), Multiplicity: 1}
	}
	return roots, nil
}

// clusterRoots merges roots within rootClusterTol of each other
// (Euclidean distance in the complex plane) into a single entry whose
// Multiplicity is the sum of the cluster's members and whose
// Real/Imag is the cluster's first member (clustering is meant to
// detect repeated roots from a numerically imprecise decomposition,
// not to average distinct nearby roots).
func clusterRoots(roots []CharacteristicRoot) []CharacteristicRoot {
	used := make([]bool, len(roots))
	var clustered []CharacteristicRoot
	for i := range roots {
		if used[i] {
			continue
		}
		cluster := roots[i]
		used[i] = true
		for j := i + 1; j < len(roots); j++ {
			if used[j] {
				continue
			}
			dr := roots[j].Real - cluster.Real
			di := roots[j].Imag - cluster.Imag
			if math.Hypot(dr, di) < rootClusterTol {
				cluster.Multiplicity += roots[j].Multiplicity
				used[j] = true
			}
		}
		clustered = append(clustered, cluster)
	}
	return clustered
}

// dominantSet returns every root tied for the largest magnitude within
// rootClusterTol, per the recurrence solver's rule that ties are
// included in full rather than arbitrarily broken.
func dominantSet(roots []CharacteristicRoot) []CharacteristicRoot {
	if len(roots) == 0 {
		return nil
	}
	best := roots[0].Magnitude()
	for _, r := range roots[1:] {
		if m := r.Magnitude(); m > best {
			best = m
		}
	}
	var dominant []CharacteristicRoot
	for _, r := range roots {
		if math.Abs(r.Magnitude()-best) < rootClusterTol {
			dominant = append(dominant, r)
		}
	}
	return dominant
}

// buildSolution constructs the asymptotic Expression implied by the
// dominant root set. A single real dominant root r with multiplicity m
// gives Θ(n^(m−1)·r^n); the special case r=1 with a non-trivial f(n)
// replaces the exponential factor with the discrete summation
// approximation of f, since T(n) ~ Σf(i) when the homogeneous part is
// Θ(1). A non-real dominant root's magnitude alone drives growth. A
// tied multi-root dominant set takes the highest multiplicity among
// the tied roots, since every tied root contributes the same n^m
// polynomial envelope.
func buildSolution(dominant []CharacteristicRoot, f expr.Expression, v variable.Variable) (expr.Expression, string) {
	if len(dominant) == 0 {
		return expr.NewConstant(1), "no roots found; treated as O(1)"
	}

	allReal := true
	maxMultiplicity := 1
	magnitude := dominant[0].Magnitude()
	for _, r := range dominant {
		if !r.IsReal() {
			allReal = false
		}
		if r.Multiplicity > maxMultiplicity {
			maxMultiplicity = r.Multiplicity
		}
	}

	if allReal && math.Abs(magnitude-1) < rootClusterTol && !isTrivial(f, v) {
		sum := approximateSummation(f, v)
		return sum, fmt.Sprintf("dominant root 1 (multiplicity %d); solution is the non-recursive-work summation", maxMultiplicity)
	}

	polyPart := polynomialEnvelope(v, maxMultiplicity-1)
	var growth expr.Expression
	explanation := fmt.Sprintf("dominant root magnitude %.6f", magnitude)
	switch {
	case math.Abs(magnitude-1) < rootClusterTol:
		// 1^n contributes nothing to growth; the polynomial envelope
		// from the root's multiplicity is the entire asymptotic shape.
		growth = expr.NewConstant(1)
		explanation = fmt.Sprintf("dominant root of unit magnitude (multiplicity %d); no exponential growth", maxMultiplicity)
	case allReal:
		growth = expr.NewExponential(1, dominant[0].Real, v)
		explanation = fmt.Sprintf("dominant real root %.6f (multiplicity %d)", dominant[0].Real, maxMultiplicity)
	default:
		growth = expr.NewExponential(1, magnitude, v)
		explanation += " (complex dominant root; magnitude drives growth)"
	}

	return classify.Simplify(expr.Mul(polyPart, growth)), explanation
}

// polynomialEnvelope returns n^degree, collapsing to the multiplicative
// identity when degree is zero (a simple, non-repeated root).
func polynomialEnvelope(v variable.Variable, degree int) expr.Expression {
	if degree <= 0 {
		return expr.NewConstant(1)
	}
	return expr.NewPolynomial(v, map[int]float64{degree: 1})
}

// isTrivial reports whether f is absent or identically zero in v.
func isTrivial(f expr.Expression, v variable.Variable) bool {
	if f == nil {
		return true
	}
	c := classify.Classify(f, v)
	return c.Form == classify.FormConstant && c.Coefficient == 0
}

// approximateSummation estimates Θ(Σᵢ₌₁ⁿ f(i)) from f's classified
// shape: a degree-k polynomial term sums to Θ(n^(k+1)); a log^j(n)
// factor survives with one extra power of n attached (the textbook
// n·log^j(n) bound for Σ log^j(i)); an exponential f is dominated by
// its own last term, so the sum is Θ(f(n)) itself.
func approximateSummation(f expr.Expression, v variable.Variable) expr.Expression {
	c := classify.Classify(f, v)
	switch c.Form {
	case classify.FormConstant:
		return expr.NewLinear(1, v)
	case classify.FormLogarithmic:
		return classify.Simplify(expr.NewPolyLog(1, v, 1, c.LogExponent))
	case classify.FormPolynomial:
		return classify.Simplify(expr.NewPolynomial(v, map[int]float64{int(c.PolynomialDegree) + 1: 1}))
	case classify.FormPolyLog:
		return classify.Simplify(expr.NewPolyLog(1, v, c.PolynomialDegree+1, c.LogExponent))
	case classify.FormExponential:
		return f
	default:
		return classify.Simplify(expr.NewPolynomial(v, map[int]float64{int(c.PolynomialDegree) + 1: 1}))
	}
}
