package methodtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/methodtable"
	"github.com/complexo-io/complexo/variable"
)

func TestSourceKindReviewRequired(t *testing.T) {
	cases := []struct {
		kind     methodtable.SourceKind
		required bool
	}{
		{methodtable.SourceDocumented, false},
		{methodtable.SourceAttested, false},
		{methodtable.SourceEmpirical, false},
		{methodtable.SourceInferred, true},
		{methodtable.SourceHeuristic, true},
		{methodtable.SourceUnknown, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.required, c.kind.ReviewRequired(), "kind %s", c.kind)
	}
}

func TestTableLookup(t *testing.T) {
	n := variable.New("n", variable.KindInputSize)
	table := methodtable.Table{
		{TypeName: "HashMap", MethodName: "Get"}: {
			Expression: expr.NewConstant(1),
			Source: methodtable.Source{
				Kind:        methodtable.SourceDocumented,
				Citation:    "language spec: amortized O(1) map access",
				Confidence:  0.95,
				IsAmortized: true,
			},
		},
	}

	ac, ok := table.Lookup("HashMap", "Get")
	assert.True(t, ok)
	assert.Equal(t, methodtable.SourceDocumented, ac.Source.Kind)
	assert.False(t, ac.ReviewRequired())

	_, ok = table.Lookup("HashMap", "Put")
	assert.False(t, ok)
}

func TestNeedsReviewCollectsUnverifiedEntries(t *testing.T) {
	table := methodtable.Table{
		{TypeName: "SortedList", MethodName: "Insert"}: {
			Expression: expr.NewLinear(1, variable.New("n", variable.KindInputSize)),
			Source:     methodtable.Source{Kind: methodtable.SourceEmpirical, Confidence: 0.8},
		},
		{TypeName: "Cache", MethodName: "Evict"}: {
			Expression: expr.NewConstant(1),
			Source:     methodtable.Source{Kind: methodtable.SourceHeuristic, Confidence: 0.4, Notes: "guessed from usage pattern"},
		},
	}

	keys := methodtable.NeedsReview(table)
	assert.Len(t, keys, 1)
	assert.Equal(t, methodtable.Key{TypeName: "Cache", MethodName: "Evict"}, keys[0])
}
