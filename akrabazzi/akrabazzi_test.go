package akrabazzi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/akrabazzi"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

var n = variable.New("n", variable.KindInputSize)

func TestSolveCriticalExponentUnbalanced(t *testing.T) {
	// T(n) = T(n/3) + T(2n/3) + n: 1/3^p + (2/3)^p = 1 has root p=1.
	res, err := akrabazzi.SolveCriticalExponent([]akrabazzi.Term{
		{A: 1, B: 1.0 / 3}, {A: 1, B: 2.0 / 3},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.P, 1e-3)
}

func TestSolveCriticalExponentBalanced(t *testing.T) {
	// Merge-sort-shaped: 2·(1/2)^p = 1 -> p = 1.
	res, err := akrabazzi.SolveCriticalExponent([]akrabazzi.Term{
		{A: 2, B: 0.5},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.P, 1e-6)
}

func TestSolveCriticalExponentResidualWithinTolerance(t *testing.T) {
	terms := []akrabazzi.Term{{A: 1.7, B: 0.4}, {A: 0.9, B: 0.7}}
	res, err := akrabazzi.SolveCriticalExponent(terms)
	require.NoError(t, err)
	sum := 0.0
	for _, term := range terms {
		sum += term.A * math.Pow(term.B, res.P)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestSolveCriticalExponentRejectsInvalidTerms(t *testing.T) {
	_, err := akrabazzi.SolveCriticalExponent([]akrabazzi.Term{{A: -1, B: 0.5}})
	assert.Error(t, err)
	_, err = akrabazzi.SolveCriticalExponent([]akrabazzi.Term{{A: 1, B: 1.5}})
	assert.Error(t, err)
}

func TestEvaluateIntegralLinearGYieldsLogN(t *testing.T) {
	// g(n) = n, p = 1: unbalanced-Akra-Bazzi's non-recursive work.
	g := expr.NewLinear(1, n)
	res := akrabazzi.EvaluateIntegral(g, n, 1)
	assert.Contains(t, res.Solution.BigO(), "log")
}

func TestEvaluateIntegralDominatedByHigherDegree(t *testing.T) {
	g := expr.NewPolynomial(n, map[int]float64{2: 1})
	res := akrabazzi.EvaluateIntegral(g, n, 1)
	assert.Equal(t, "O(n^2)", res.Solution.BigO())
}

func TestEvaluateIntegralExponentialDominates(t *testing.T) {
	g := expr.NewExponential(1, 2, n)
	res := akrabazzi.EvaluateIntegral(g, n, 1)
	assert.Equal(t, g.BigO(), res.Solution.BigO())
	assert.Equal(t, 1.0, res.Confidence)
}
