package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ertuSebu/salbp-solver/internal/closure"
	"github.com/ertuSebu/salbp-solver/internal/cocomp"
	"github.com/ertuSebu/salbp-solver/internal/frontier"
	"github.com/ertuSebu/salbp-solver/internal/taskgraph"
)

func buildChain(t *testing.T) (*cocomp.Graph, *closure.BitMatrix, []int) {
	t.Helper()
	g, err := taskgraph.New(2, []int{1, 1}, []taskgraph.Arc{{U: 1, V: 2}})
	require.NoError(t, err)
	a, err := closure.Compute(g)
	require.NoError(t, err)
	h, err := cocomp.Build(a)
	require.NoError(t, err)

	duration := make([]int, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		duration[id] = g.Duration(id)
	}

	return h, a, duration
}

func TestEnumerate_ChainYieldsOnlySingletons(t *testing.T) {
	h, a, duration := buildChain(t)

	list, err := frontier.Enumerate(h, a, duration)
	require.NoError(t, err)

	// H has no edges, so every clique is a singleton: exactly N frontiers.
	assert.Equal(t, h.N(), list.Len())
	for i := 0; i < list.Len(); i++ {
		assert.Equal(t, 1, list.At(i).Size())
	}
}

func TestEnumerate_SourceAndSinkSingletonsAlwaysPresent(t *testing.T) {
	h, a, duration := buildChain(t)
	list, err := frontier.Enumerate(h, a, duration)
	require.NoError(t, err)

	assert.NotEqual(t, -1, list.IndexOfSingleton(0))
	assert.NotEqual(t, -1, list.IndexOfSingleton(h.N()-1))
}

func TestEnumerate_IndependentTasksYieldAPairFrontier(t *testing.T) {
	g, err := taskgraph.New(2, []int{1, 1}, nil)
	require.NoError(t, err)
	a, err := closure.Compute(g)
	require.NoError(t, err)
	h, err := cocomp.Build(a)
	require.NoError(t, err)
	duration := make([]int, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		duration[id] = g.Duration(id)
	}

	list, err := frontier.Enumerate(h, a, duration)
	require.NoError(t, err)

	foundPair := false
	for i := 0; i < list.Len(); i++ {
		f := list.At(i)
		if f.Size() == 2 && f.Nodes[0] == 1 && f.Nodes[1] == 2 {
			foundPair = true
		}
	}
	assert.True(t, foundPair, "expected the {1,2} clique to be emitted")
}

func TestIndexOfSingleton_AbsentReturnsNegativeOne(t *testing.T) {
	list := &frontier.List{Frontiers: []frontier.Frontier{{Nodes: []int{0, 1}}}}
	assert.Equal(t, -1, list.IndexOfSingleton(0))
}
