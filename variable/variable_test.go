package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/variable"
)

func TestEqualIgnoresDescription(t *testing.T) {
	a := variable.New("n", variable.KindInputSize)
	a.Description = "size of the input array"
	b := variable.New("n", variable.KindInputSize)
	assert.True(t, a.Equal(b))
}

func TestEqualDistinguishesKind(t *testing.T) {
	n1 := variable.New("n", variable.KindInputSize)
	n2 := variable.New("n", variable.KindVertexCount)
	assert.False(t, n1.Equal(n2))
}

func TestSetDedup(t *testing.T) {
	n := variable.New("n", variable.KindInputSize)
	s := variable.NewSet(n, n, n)
	assert.Equal(t, 1, s.Len())
}

func TestSetUnionAndContains(t *testing.T) {
	n := variable.New("n", variable.KindInputSize)
	v := variable.New("V", variable.KindVertexCount)
	s1 := variable.NewSet(n)
	s2 := variable.NewSet(v)
	u := s1.Union(s2)
	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Contains(n))
	assert.True(t, u.Contains(v))
}

func TestSetHashStableAcrossConstructionOrder(t *testing.T) {
	n := variable.New("n", variable.KindInputSize)
	v := variable.New("V", variable.KindVertexCount)
	s1 := variable.NewSet(n, v)
	s2 := variable.NewSet(v, n)
	h1, err := s1.Hash()
	require.NoError(t, err)
	h2, err := s2.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestSliceDeterministicOrder(t *testing.T) {
	s := variable.NewSet(
		variable.New("n", variable.KindInputSize),
		variable.New("E", variable.KindEdgeCount),
		variable.New("V", variable.KindVertexCount),
	)
	names := make([]string, 0, 3)
	for _, m := range s.Slice() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"E", "V", "n"}, names)
}
