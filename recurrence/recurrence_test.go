package recurrence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/recurrence"
	"github.com/complexo-io/complexo/variable"
)

var n = variable.New("n", variable.KindInputSize)

func TestDivideRecurrenceValidation(t *testing.T) {
	_, err := recurrence.NewDivideRecurrence(nil, expr.NewLinear(1, n), nil, n)
	assert.Error(t, err)

	_, err = recurrence.NewDivideRecurrence(
		[]recurrence.DivideTerm{{Coefficient: 2, Scale: 1.5}},
		expr.NewLinear(1, n), nil, n,
	)
	assert.Error(t, err, "scale outside (0,1) must be rejected")

	d, err := recurrence.NewDivideRecurrence(
		[]recurrence.DivideTerm{{Coefficient: 2, Scale: 0.5}},
		expr.NewLinear(1, n), nil, n,
	)
	require.NoError(t, err)
	assert.True(t, d.MasterEligible())
}

func TestLinearRecurrenceOrderAndHomogeneity(t *testing.T) {
	l, err := recurrence.NewLinearRecurrence([]float64{1, 1}, nil, expr.NewConstant(0), n)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Order())
	assert.True(t, l.IsHomogeneous())

	l2, err := recurrence.NewLinearRecurrence([]float64{1}, expr.NewConstant(1), nil, n)
	require.NoError(t, err)
	assert.False(t, l2.IsHomogeneous())
}

func TestBuildLinearRecursion(t *testing.T) {
	l, err := recurrence.BuildLinearRecursion(expr.NewConstant(1), n)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Order())
	assert.Equal(t, []float64{1}, l.Coefficients)
}

func TestBuildDivideRecursion(t *testing.T) {
	d, err := recurrence.BuildDivideRecursion(2, 2, expr.NewLinear(1, n), n)
	require.NoError(t, err)
	require.Len(t, d.Terms, 1)
	assert.Equal(t, 0.5, d.Terms[0].Scale)
	assert.True(t, d.MasterEligible())
}

func TestFoldMutualReductionStyle(t *testing.T) {
	sys := recurrence.MutualSystem{
		Var: n,
		Components: []recurrence.MutualComponent{
			{Name: "even", NonRecursiveWork: expr.NewConstant(1), EdgeKind: recurrence.EdgeReduction, Reduction: 1, Callees: []string{"odd"}},
			{Name: "odd", NonRecursiveWork: expr.NewConstant(1), EdgeKind: recurrence.EdgeReduction, Reduction: 1, Callees: []string{"even"}},
		},
	}
	folded, err := recurrence.FoldMutual(sys)
	require.NoError(t, err)
	assert.Equal(t, 2.0, folded.CombinedReduction)

	lin, err := folded.ToLinear()
	require.NoError(t, err)
	assert.Equal(t, 2, lin.Order())
	assert.Equal(t, 1.0, lin.Coefficients[1])
}

func TestFoldMutualScaleStyle(t *testing.T) {
	sys := recurrence.MutualSystem{
		Var: n,
		Components: []recurrence.MutualComponent{
			{Name: "a", NonRecursiveWork: expr.NewConstant(1), EdgeKind: recurrence.EdgeScale, Scale: 0.5},
			{Name: "b", NonRecursiveWork: expr.NewConstant(1), EdgeKind: recurrence.EdgeScale, Scale: 0.5},
		},
	}
	folded, err := recurrence.FoldMutual(sys)
	require.NoError(t, err)
	assert.Equal(t, 0.25, folded.CombinedScale)

	div, err := folded.ToDivide()
	require.NoError(t, err)
	assert.Equal(t, 0.25, div.Terms[0].Scale)
}

func TestFoldMutualRejectsMixedEdgeKinds(t *testing.T) {
	sys := recurrence.MutualSystem{
		Var: n,
		Components: []recurrence.MutualComponent{
			{Name: "a", NonRecursiveWork: expr.NewConstant(1), EdgeKind: recurrence.EdgeReduction, Reduction: 1},
			{Name: "b", NonRecursiveWork: expr.NewConstant(1), EdgeKind: recurrence.EdgeScale, Scale: 0.5},
		},
	}
	_, err := recurrence.FoldMutual(sys)
	assert.Error(t, err)
}
