package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/variable"
)

var n = variable.New("n", variable.KindInputSize)

func TestBigOConstant(t *testing.T) {
	assert.Equal(t, "O(1)", expr.NewConstant(42).BigO())
}

func TestBigOLinearAndPolynomial(t *testing.T) {
	assert.Equal(t, "O(n)", expr.NewLinear(3, n).BigO())
	poly := expr.NewPolynomial(n, map[int]float64{0: 1, 1: 2, 2: 5})
	assert.Equal(t, "O(n^2)", poly.BigO())
}

func TestBigOPolyLog(t *testing.T) {
	pl := expr.NewPolyLog(1, n, 1, 1)
	assert.Equal(t, "O(n log n)", pl.BigO())
}

func TestBigOBranchIsMax(t *testing.T) {
	left := expr.NewLinear(1, n)
	right := expr.NewPolynomial(n, map[int]float64{2: 1})
	branch := expr.Branch(left, right)
	assert.Equal(t, "O(max(n, n^2))", branch.BigO())
}

func TestLoopCollapsesIntegerConstant(t *testing.T) {
	body := expr.NewLinear(1, n)
	looped := expr.Loop(5, body)
	lin, ok := looped.(expr.Linear)
	require.True(t, ok)
	assert.Equal(t, 5.0, lin.Coefficient)
}

func TestSequentialIsAdd(t *testing.T) {
	a := expr.NewConstant(1)
	b := expr.NewLinear(1, n)
	seq := expr.Sequential(a, b)
	bin, ok := seq.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, expr.OpAdd, bin.Op)
}

func TestEvaluateUnboundVariable(t *testing.T) {
	_, ok := expr.NewVariable(n).Evaluate(map[string]float64{})
	assert.False(t, ok)
}

func TestEvaluateLogNonPositive(t *testing.T) {
	e := expr.NewLogarithmic(1, n, 0)
	_, ok := e.Evaluate(map[string]float64{"n": 0})
	assert.False(t, ok)
	_, ok = e.Evaluate(map[string]float64{"n": -5})
	assert.False(t, ok)
}

func TestEvaluatePolynomial(t *testing.T) {
	poly := expr.NewPolynomial(n, map[int]float64{0: 1, 2: 2})
	v, ok := poly.Evaluate(map[string]float64{"n": 3})
	require.True(t, ok)
	assert.Equal(t, 1+2*9.0, v)
}

func TestEvaluateFactorialOverflowIsUndefined(t *testing.T) {
	f := expr.NewFactorial(n)
	_, ok := f.Evaluate(map[string]float64{"n": 1e8})
	assert.False(t, ok)
}

func TestFreeVariablesBinary(t *testing.T) {
	m := variable.New("m", variable.KindSecondarySize)
	e := expr.Add(expr.NewVariable(n), expr.NewVariable(m))
	fv := e.FreeVariables()
	assert.Equal(t, 2, fv.Len())
	assert.True(t, fv.Contains(n))
	assert.True(t, fv.Contains(m))
}

func TestSubstitutePure(t *testing.T) {
	e := expr.NewLinear(2, n)
	m := variable.New("m", variable.KindSecondarySize)
	repl := expr.Add(expr.NewVariable(m), expr.NewConstant(1))
	out := e.Substitute(n, repl)

	// original untouched (purity)
	assert.Equal(t, "O(n)", e.BigO())
	bin, ok := out.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, expr.OpMul, bin.Op)
}

func TestVisitorFallback(t *testing.T) {
	var seen []expr.Kind
	v := &expr.BaseVisitor{Fallback: func(e expr.Expression) any {
		seen = append(seen, e.Kind())
		return nil
	}}
	expr.NewConstant(1).Accept(v)
	expr.NewVariable(n).Accept(v)
	assert.Equal(t, []expr.Kind{expr.KindConstant, expr.KindVariable}, seen)
}

// collectingVisitor overrides only VisitLinear; everything else falls
// through to BaseVisitor.Fallback, demonstrating that adding variants
// never breaks an existing, partially-overridden Visitor.
type collectingVisitor struct {
	expr.BaseVisitor
	linearCoeffs []float64
}

func (c *collectingVisitor) VisitLinear(e expr.Linear) any {
	c.linearCoeffs = append(c.linearCoeffs, e.Coefficient)
	return nil
}

func TestVisitorPartialOverride(t *testing.T) {
	var fallbackCount int
	c := &collectingVisitor{BaseVisitor: expr.BaseVisitor{Fallback: func(expr.Expression) any {
		fallbackCount++
		return nil
	}}}
	expr.NewLinear(7, n).Accept(c)
	expr.NewConstant(1).Accept(c)
	assert.Equal(t, []float64{7}, c.linearCoeffs)
	assert.Equal(t, 1, fallbackCount)
}

func TestAmortizedBigO(t *testing.T) {
	a := expr.NewAmortized(expr.NewConstant(1), expr.NewLinear(1, n), "potential")
	assert.Contains(t, a.BigO(), "amortized")
	assert.Contains(t, a.BigO(), "potential")
}
