package akrabazzi

import (
	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

// IntegralResult is the outcome of evaluating ∫₁ⁿ g(u)/u^(p+1) du: the
// integral term itself, the combined full Akra-Bazzi solution
// n^p·(1+integral), a confidence in [0,1] (reduced whenever the
// closed-form table doesn't cover g's classified shape), and a free-
// form diagnostic Note.
type IntegralResult struct {
	Integral   expr.Expression
	Solution   expr.Expression
	Confidence float64
	Note       string
}

// EvaluateIntegral dispatches on the classified shape of g against v:
// constant/polynomial, poly-log, pure-logarithmic, exponential-in-n,
// or unknown (symbolic fallback with a reduced-confidence bound
// estimate).
func EvaluateIntegral(g expr.Expression, v variable.Variable, p float64) IntegralResult {
	c := classify.Classify(g, v)
	switch c.Form {
	case classify.FormConstant, classify.FormPolynomial:
		return evaluatePolynomialIntegral(v, c.PolynomialDegree, p)
	case classify.FormPolyLog:
		return evaluatePolyLogIntegral(v, c.PolynomialDegree, c.LogExponent, p)
	case classify.FormLogarithmic:
		return evaluatePolyLogIntegral(v, 0, c.LogExponent, p)
	case classify.FormExponential:
		// g dominates the n^p factor entirely: Θ(g(n)).
		return IntegralResult{Integral: g, Solution: g, Confidence: 1, Note: "exponential g(n) dominates n^p"}
	default:
		bound := expr.NewPowerOf(expr.NewVariable(v), c.PolynomialDegree-p)
		note := "unknown integrand shape; symbolic bound estimate from dominant term"
		solution := expr.Mul(expr.NewPowerOf(expr.NewVariable(v), p), expr.Add(expr.NewConstant(1), bound))
		return IntegralResult{Integral: bound, Solution: solution, Confidence: 0.4, Note: note}
	}
}

// evaluatePolynomialIntegral handles g(n) = n^k: k<p -> O(1), k=p ->
// log n, k>p -> n^(k-p)/(k-p).
func evaluatePolynomialIntegral(v variable.Variable, k, p float64) IntegralResult {
	switch {
	case k < p:
		integral := expr.NewConstant(1)
		return IntegralResult{Integral: integral, Solution: combinedSolution(v, p, integral), Confidence: 1}
	case k == p:
		integral := expr.NewLogarithmic(1, v, 0)
		return IntegralResult{Integral: integral, Solution: combinedSolution(v, p, integral), Confidence: 1}
	default:
		integral := expr.NewPolyLog(1/(k-p), v, k-p, 0)
		return IntegralResult{Integral: integral, Solution: combinedSolution(v, p, integral), Confidence: 1}
	}
}

// evaluatePolyLogIntegral handles g(n) = n^k·log^j(n), j>=1 (closed
// form via repeated integration by parts, per spec.md §4.5): k>p ->
// Θ(n^(k-p)·log^j n); k=p -> log^(j+1)(n)/(j+1); k<p -> O(1).
func evaluatePolyLogIntegral(v variable.Variable, k, j, p float64) IntegralResult {
	switch {
	case j == 0:
		return evaluatePolynomialIntegral(v, k, p)
	case k < p:
		integral := expr.NewConstant(1)
		return IntegralResult{Integral: integral, Solution: combinedSolution(v, p, integral), Confidence: 1}
	case k == p:
		integral := expr.NewPolyLog(1/(j+1), v, 0, j+1)
		return IntegralResult{Integral: integral, Solution: combinedSolution(v, p, integral), Confidence: 1}
	default:
		integral := expr.NewPolyLog(1/(k-p), v, k-p, j)
		return IntegralResult{Integral: integral, Solution: combinedSolution(v, p, integral), Confidence: 1}
	}
}

// combinedSolution builds n^p · (1 + integral), simplified to its
// canonical dominant-term form.
func combinedSolution(v variable.Variable, p float64, integral expr.Expression) expr.Expression {
	nToP := expr.NewPowerOf(expr.NewVariable(v), p)
	full := expr.Mul(nToP, expr.Add(expr.NewConstant(1), integral))
	return classify.Simplify(full)
}
