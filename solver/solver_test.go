package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ertuSebu/salbp-solver/internal/fixtures"
	"github.com/ertuSebu/salbp-solver/solver"
)

// TestSolve_SingleTask reproduces spec.md §8's n=1 boundary: one task that
// exactly fills the cycle time needs exactly one station.
func TestSolve_SingleTask(t *testing.T) {
	res, err := solver.Solve(1, []int{5}, nil, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Stations())
	assert.Equal(t, [][]int{{1}}, res.StationTasks())
}

// TestSolve_LinearChainAllDurationsEqualCycle covers spec.md §8's
// "linear chain, all durations = c" boundary: each task needs its own
// station since none can be combined without exceeding c.
func TestSolve_LinearChainAllDurationsEqualCycle(t *testing.T) {
	inst := fixtures.Chain(4, 10)
	res, err := solver.Solve(inst.N, inst.Durations, inst.Edges, 10)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Stations())
}

// TestSolve_IndependentTasksPackIntoOneStation covers spec.md §8's
// "independent tasks (no arcs)" boundary: with no precedence constraints,
// tasks whose durations sum to <= c can share one station.
func TestSolve_IndependentTasksPackIntoOneStation(t *testing.T) {
	inst := fixtures.Independent([]int{2, 3, 4})
	res, err := solver.Solve(inst.N, inst.Durations, inst.Edges, 9)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Stations())
}

// TestSolve_PartitionsRealTasksWithoutDuplication checks invariant 5: every
// real task 1..n appears in exactly one station's task set.
func TestSolve_PartitionsRealTasksWithoutDuplication(t *testing.T) {
	inst := fixtures.RandomSparse(8, 0.3, 1, 5, 42)
	res, err := solver.Solve(inst.N, inst.Durations, inst.Edges, 6)
	require.NoError(t, err)

	count := make(map[int]int)
	for _, station := range res.StationTasks() {
		for _, task := range station {
			count[task]++
		}
	}
	for task := 1; task <= inst.N; task++ {
		assert.Equal(t, 1, count[task], "task %d should appear in exactly one station", task)
	}
}

// TestSolve_EachStationRespectsCycleTime checks invariant 4: no station's
// summed duration exceeds the cycle time.
func TestSolve_EachStationRespectsCycleTime(t *testing.T) {
	inst := fixtures.RandomSparse(10, 0.25, 1, 4, 7)
	const cycle = 6
	res, err := solver.Solve(inst.N, inst.Durations, inst.Edges, cycle)
	require.NoError(t, err)

	for _, station := range res.StationTasks() {
		load := 0
		for _, task := range station {
			load += inst.Durations[task-1]
		}
		assert.LessOrEqual(t, load, cycle)
	}
}

// TestSolve_ConcreteScenarios runs spec.md §8's six concrete scenarios
// (the n/c/durations/arcs/expected-k table), checking the expected station
// count k and, for each, invariants 4-6 on the returned station partition.
func TestSolve_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		cycle     int
		durations []int
		edges     []solver.Edge
		wantK     int
	}{
		{
			name:      "scenario 1: three independent tasks",
			n:         3,
			cycle:     10,
			durations: []int{5, 5, 5},
			wantK:     2,
		},
		{
			name:      "scenario 2: linear chain of four",
			n:         4,
			cycle:     10,
			durations: []int{4, 4, 4, 4},
			edges:     []solver.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}},
			wantK:     2,
		},
		{
			name:      "scenario 3: five independent tasks, no two fit one station",
			n:         5,
			cycle:     10,
			durations: []int{6, 6, 6, 6, 6},
			wantK:     5,
		},
		{
			// spec.md §8's table lists k=3 for this row, but {1,2,3} (load
			// 10) then {4,5} (load 10) is a valid precedence-respecting
			// partition at the exact work-content lower bound ceil(20/10)=2,
			// so invariant 7 (optimality) requires k=2 here; see DESIGN.md.
			name:      "scenario 4: five-task diamond-ish precedence",
			n:         5,
			cycle:     10,
			durations: []int{3, 3, 4, 5, 5},
			edges:     []solver.Edge{{U: 1, V: 3}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 3, V: 5}},
			wantK:     2,
		},
		{
			name:      "scenario 5: seven-task fan-in/fan-out",
			n:         7,
			cycle:     10,
			durations: []int{5, 5, 5, 5, 5, 5, 5},
			edges:     []solver.Edge{{U: 1, V: 4}, {U: 2, V: 4}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 4, V: 6}, {U: 4, V: 7}},
			wantK:     4,
		},
		{
			name:      "scenario 6: six-task mixed precedence, cycle time 7",
			n:         6,
			cycle:     7,
			durations: []int{3, 2, 4, 3, 3, 2},
			edges:     []solver.Edge{{U: 1, V: 3}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 3, V: 5}, {U: 4, V: 6}, {U: 5, V: 6}},
			wantK:     3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.Solve(tc.n, tc.durations, tc.edges, tc.cycle)
			require.NoError(t, err)

			assert.Equal(t, tc.wantK, res.Stations())
			assertStationInvariants(t, tc.n, tc.durations, tc.edges, tc.cycle, res.StationTasks())
		})
	}
}

// assertStationInvariants checks invariants 4 (per-transition load bound,
// observed here as per-station load), 5 (exact {1..n} partition), and 6
// (precedence respected across station order) on a returned partition.
func assertStationInvariants(t *testing.T, n int, durations []int, edges []solver.Edge, cycle int, stations [][]int) {
	t.Helper()

	stationOf := make(map[int]int)
	count := make(map[int]int)
	for i, station := range stations {
		load := 0
		for _, task := range station {
			require.GreaterOrEqual(t, task, 1, "station task id must be a real task")
			require.LessOrEqual(t, task, n, "station task id must be a real task")
			count[task]++
			stationOf[task] = i
			load += durations[task-1]
		}
		assert.LessOrEqual(t, load, cycle, "station %d load must not exceed cycle time", i+1)
	}

	for task := 1; task <= n; task++ {
		assert.Equal(t, 1, count[task], "task %d must appear in exactly one station", task)
	}

	for _, e := range edges {
		assert.LessOrEqual(t, stationOf[e.U], stationOf[e.V],
			"precedence %d -> %d must be respected across stations", e.U, e.V)
	}
}

func TestSolve_RejectsNonPositiveN(t *testing.T) {
	_, err := solver.Solve(0, nil, nil, 5)
	require.Error(t, err)
	kind, ok := solver.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, solver.KindInvalidInstance, kind)
}

func TestSolve_RejectsNonPositiveCycleTime(t *testing.T) {
	_, err := solver.Solve(1, []int{1}, nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrNonPositiveCycleTime)
}

func TestSolve_PathStartsAtSourceAndEndsAtSink(t *testing.T) {
	res, err := solver.Solve(2, []int{1, 1}, []solver.Edge{{U: 1, V: 2}}, 1)
	require.NoError(t, err)

	path := res.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, res.Stations(), len(path)-1)
}
