package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/classify"
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

var n = variable.New("n", variable.KindInputSize)

func TestClassifyBasicForms(t *testing.T) {
	cases := []struct {
		name string
		e    expr.Expression
		form classify.Form
	}{
		{"constant", expr.NewConstant(7), classify.FormConstant},
		{"linear", expr.NewLinear(3, n), classify.FormPolynomial},
		{"polynomial", expr.NewPolynomial(n, map[int]float64{2: 1}), classify.FormPolynomial},
		{"log", expr.NewLogarithmic(1, n, 2), classify.FormLogarithmic},
		{"polylog", expr.NewPolyLog(1, n, 1, 1), classify.FormPolyLog},
		{"exponential", expr.NewExponential(1, 2, n), classify.FormExponential},
		{"factorial", expr.NewFactorial(n), classify.FormFactorial},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := classify.Classify(c.e, n)
			assert.Equal(t, c.form, got.Form)
		})
	}
}

func TestCompareTotalOrder(t *testing.T) {
	order := []expr.Expression{
		expr.NewConstant(1),
		expr.NewLogarithmic(1, n, 0),
		expr.NewLinear(1, n),
		expr.NewPolyLog(1, n, 1, 1),
		expr.NewPolynomial(n, map[int]float64{2: 1}),
		expr.NewExponential(1, 2, n),
		expr.NewFactorial(n),
	}
	for i := 0; i < len(order)-1; i++ {
		lower := classify.Classify(order[i], n)
		higher := classify.Classify(order[i+1], n)
		assert.LessOrEqual(t, classify.Compare(lower, higher), 0, "expected %v <= %v", order[i], order[i+1])
	}
}

func TestCompareCommutativeUnderAdd(t *testing.T) {
	a := expr.NewLinear(2, n)
	b := expr.NewPolynomial(n, map[int]float64{2: 1})
	ab := classify.Simplify(expr.Add(a, b))
	ba := classify.Simplify(expr.Add(b, a))
	assert.Equal(t, ab.BigO(), ba.BigO())
}

func TestDropLowerOrderTerms(t *testing.T) {
	poly := expr.NewPolynomial(n, map[int]float64{2: 1})
	e := expr.Add(expr.Add(poly, expr.NewLinear(1, n)), expr.NewLogarithmic(1, n, 0))
	simplified := classify.Simplify(e)
	assert.Equal(t, "O(n^2)", simplified.BigO())
}

func TestCombineSameDegreePolynomials(t *testing.T) {
	e := expr.Add(expr.NewLinear(2, n), expr.NewLinear(3, n))
	simplified := classify.Simplify(e)
	lin, ok := simplified.(expr.Linear)
	require.True(t, ok)
	assert.Equal(t, 5.0, lin.Coefficient)
}

func TestMergePolyLogMultiplication(t *testing.T) {
	left := expr.NewPolyLog(1, n, 1, 1)
	right := expr.NewLinear(1, n)
	simplified := classify.Simplify(expr.Mul(left, right))
	pl, ok := simplified.(expr.PolyLog)
	require.True(t, ok)
	assert.Equal(t, 2.0, pl.PolyDegree)
	assert.Equal(t, 1.0, pl.LogExponent)
}

func TestConstantOneIdentity(t *testing.T) {
	e := expr.NewLinear(1, n)
	simplified := classify.Simplify(expr.Mul(expr.NewConstant(1), e))
	assert.Equal(t, e, simplified)
}

func TestSimplifyIsIdempotent(t *testing.T) {
	e := expr.Add(expr.Add(expr.NewPolynomial(n, map[int]float64{2: 1}), expr.NewLinear(1, n)), expr.NewConstant(5))
	once := classify.Simplify(e)
	twice := classify.Simplify(once)
	assert.Equal(t, once, twice)
}

func TestSimplifyPreservesBigOAcrossMultivariable(t *testing.T) {
	m := variable.New("m", variable.KindSecondarySize)
	e := expr.Add(expr.NewVariable(n), expr.NewVariable(m))
	simplified := classify.Simplify(e)
	bin, ok := simplified.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, expr.OpAdd, bin.Op)
}

func TestDominantPrefersLeftOnTie(t *testing.T) {
	a := classify.Classify(expr.NewLinear(1, n), n)
	b := classify.Classify(expr.NewLinear(1, n), n)
	d := classify.Dominant(a, b)
	assert.Equal(t, a, d)
}
