package linearsolve_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/linearsolve"
	"github.com/complexo-io/complexo/variable"
)

var n = variable.New("n", variable.KindInputSize)

func TestSolveOrder1(t *testing.T) {
	sol, err := linearsolve.Solve([]float64{2}, nil, n)
	require.NoError(t, err)
	require.Len(t, sol.DominantRoots, 1)
	assert.InDelta(t, 2.0, sol.DominantRoots[0].Real, 1e-9)
	assert.Equal(t, "O(2^n)", sol.Expression.BigO())
}

func TestSolveOrder2RealRoots(t *testing.T) {
	// T(n) = 3T(n-1) - 2T(n-2): roots 1 and 2, dominant root 2.
	sol, err := linearsolve.Solve([]float64{3, -2}, nil, n)
	require.NoError(t, err)
	require.Len(t, sol.DominantRoots, 1)
	assert.InDelta(t, 2.0, sol.DominantRoots[0].Real, 1e-6)
}

func TestSolveOrder2ComplexRoots(t *testing.T) {
	// T(n) = T(n-1) - T(n-2): complex roots of magnitude 1.
	sol, err := linearsolve.Solve([]float64{1, -1}, nil, n)
	require.NoError(t, err)
	require.Len(t, sol.DominantRoots, 2)
	assert.False(t, sol.DominantRoots[0].IsReal())
	assert.InDelta(t, 1.0, sol.DominantRoots[0].Magnitude(), 1e-6)
}

func TestSolveFibonacciGoldenRatio(t *testing.T) {
	// T(n) = T(n-1) + T(n-2): dominant root (1+sqrt(5))/2 ~ 1.618034.
	sol, err := linearsolve.Solve([]float64{1, 1}, nil, n)
	require.NoError(t, err)
	require.Len(t, sol.DominantRoots, 1)
	assert.InDelta(t, 1.6180339887, sol.DominantRoots[0].Real, 1e-6)
	assert.Contains(t, sol.Explanation, "1.618034")
}

func TestSolveOrder3Companion(t *testing.T) {
	// T(n) = T(n-1) + T(n-2) + T(n-3): dominant real root ~1.839287 (tribonacci).
	sol, err := linearsolve.Solve([]float64{1, 1, 1}, nil, n)
	require.NoError(t, err)
	require.Len(t, sol.DominantRoots, 1)
	assert.InDelta(t, 1.839286755, sol.DominantRoots[0].Real, 1e-5)
}

func TestSolveUnitRootWithNonTrivialWorkSumsF(t *testing.T) {
	// T(n) = T(n-1) + n: r*=1, f(n) polynomial degree 1 -> Theta(n^2).
	f := expr.NewLinear(1, n)
	sol, err := linearsolve.Solve([]float64{1}, f, n)
	require.NoError(t, err)
	assert.Equal(t, "O(n^2)", sol.Expression.BigO())
	assert.True(t, strings.Contains(sol.Explanation, "summation"))
}

func TestSolveUnitRootHomogeneousIsConstant(t *testing.T) {
	sol, err := linearsolve.Solve([]float64{1}, nil, n)
	require.NoError(t, err)
	assert.Equal(t, "O(1)", sol.Expression.BigO())
}

func TestSolveRejectsEmptyCoefficients(t *testing.T) {
	_, err := linearsolve.Solve(nil, nil, n)
	assert.Error(t, err)
}
