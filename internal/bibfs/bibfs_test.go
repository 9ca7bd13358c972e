package bibfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ertuSebu/salbp-solver/internal/bibfs"
	"github.com/ertuSebu/salbp-solver/internal/closure"
	"github.com/ertuSebu/salbp-solver/internal/cocomp"
	"github.com/ertuSebu/salbp-solver/internal/frontier"
	"github.com/ertuSebu/salbp-solver/internal/taskgraph"
)

// buildSingleTaskPipeline reproduces spec.md §8's n=1 boundary scenario:
// source(0) -> task 1 (duration d) -> sink(2).
func buildSingleTaskPipeline(t *testing.T, duration int) (*frontier.List, *closure.BitMatrix, []int, int, int) {
	t.Helper()
	g, err := taskgraph.New(1, []int{duration}, nil)
	require.NoError(t, err)
	a, err := closure.Compute(g)
	require.NoError(t, err)
	h, err := cocomp.Build(a)
	require.NoError(t, err)
	durations := make([]int, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		durations[id] = g.Duration(id)
	}
	list, err := frontier.Enumerate(h, a, durations)
	require.NoError(t, err)

	return list, a, durations, g.Source(), g.Sink()
}

func TestRun_SingleTaskFindsOneStationPath(t *testing.T) {
	list, a, durations, source, sink := buildSingleTaskPipeline(t, 5)

	res, err := bibfs.Run(list, a, durations, 5, source, sink)
	require.NoError(t, err)

	assert.NotEqual(t, -1, res.Meeting)
	assert.Equal(t, list.IndexOfSingleton(source), res.Source)
	assert.Equal(t, list.IndexOfSingleton(sink), res.Sink)
}

func TestRun_SourceFrontierNotFound(t *testing.T) {
	list, a, durations, _, sink := buildSingleTaskPipeline(t, 5)

	_, err := bibfs.Run(list, a, durations, 5, 99, sink)
	assert.ErrorIs(t, err, bibfs.ErrSourceFrontierNotFound)
}

func TestRun_SinkFrontierNotFound(t *testing.T) {
	list, a, durations, source, _ := buildSingleTaskPipeline(t, 5)

	_, err := bibfs.Run(list, a, durations, 5, source, 99)
	assert.ErrorIs(t, err, bibfs.ErrSinkFrontierNotFound)
}

func TestRun_RespectsCanceledContext(t *testing.T) {
	list, a, durations, source, sink := buildSingleTaskPipeline(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bibfs.Run(list, a, durations, 5, source, sink, bibfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_OnFrontierVisitAndOnMeetHooksFire(t *testing.T) {
	list, a, durations, source, sink := buildSingleTaskPipeline(t, 5)

	visited := false
	met := false
	_, err := bibfs.Run(list, a, durations, 5, source, sink,
		bibfs.WithOnFrontierVisit(func(bibfs.Side, int, int) { visited = true }),
		bibfs.WithOnMeet(func(int) { met = true }),
	)
	require.NoError(t, err)
	assert.True(t, met)
	assert.True(t, visited) // the first forward layer admits {1} before reaching {sink}
}
