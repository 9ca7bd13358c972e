package solver

import (
	"github.com/ertuSebu/salbp-solver/internal/bibfs"
	"github.com/ertuSebu/salbp-solver/internal/closure"
	"github.com/ertuSebu/salbp-solver/internal/cocomp"
	"github.com/ertuSebu/salbp-solver/internal/frontier"
	"github.com/ertuSebu/salbp-solver/internal/station"
	"github.com/ertuSebu/salbp-solver/internal/taskgraph"
)

// Edge is a precedence arc over the node space {0, 1..n, n+1} (spec.md §6
// Entry A); node 0 is the source, n+1 the sink. Callers may omit
// source/sink arcs — Solve inserts them for every task lacking an explicit
// predecessor/successor.
type Edge struct {
	U, V int
}

// Result is the outcome of a successful Solve: the minimum station count k,
// the frontier-index path P, and the per-station task id sets (1-indexed,
// real tasks only) in station order.
type Result struct {
	stations [][]int
	path     []int
}

// Stations returns k = len(StationTasks()), the minimum number of stations.
func (r *Result) Stations() int { return len(r.stations) }

// Path returns the frontier-index path P = [s, p_1, ..., t] reconstructed by
// C5, exposed for diagnostics and golden-path tests.
func (r *Result) Path() []int { return append([]int(nil), r.path...) }

// StationTasks returns, for each station in order, the set of real task ids
// (1-indexed) assigned to it. Together they partition {1..n} exactly once
// (spec.md invariant 5).
func (r *Result) StationTasks() [][]int {
	out := make([][]int, len(r.stations))
	for i, s := range r.stations {
		out[i] = append([]int(nil), s...)
	}

	return out
}

// Solve runs the five-stage SALBP-1 pipeline (spec.md §2) on n real tasks
// with the given durations (length n) and precedence edges, returning the
// minimum station count and per-station task assignment for the fixed
// cycle time c.
//
// Options (§7 "Open Question" style decisions recorded in DESIGN.md): Solve
// never retries and never partially succeeds — the first failing stage
// aborts with a *Error carrying the matching ErrorKind.
func Solve(n int, durations []int, edges []Edge, cycleTime int) (*Result, error) {
	if n <= 0 {
		return nil, &Error{Kind: KindInvalidInstance, Err: ErrNoTasks}
	}
	if cycleTime <= 0 {
		return nil, &Error{Kind: KindInvalidInstance, Err: ErrNonPositiveCycleTime}
	}

	arcs := make([]taskgraph.Arc, len(edges))
	for i, e := range edges {
		arcs[i] = taskgraph.Arc{U: e.U, V: e.V}
	}

	g, err := taskgraph.New(n, durations, arcs)
	if err != nil {
		return nil, &Error{Kind: KindInvalidInstance, Err: err}
	}

	a, err := closure.Compute(g)
	if err != nil {
		return nil, &Error{Kind: KindAllocationFailure, Err: err}
	}

	h, err := cocomp.Build(a)
	if err != nil {
		return nil, &Error{Kind: KindAllocationFailure, Err: err}
	}

	duration := make([]int, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		duration[id] = g.Duration(id)
	}

	list, err := frontier.Enumerate(h, a, duration)
	if err != nil {
		return nil, &Error{Kind: KindAllocationFailure, Err: err}
	}

	bfsRes, err := bibfs.Run(list, a, duration, cycleTime, g.Source(), g.Sink())
	if err != nil {
		switch err {
		case bibfs.ErrSourceFrontierNotFound:
			return nil, &Error{Kind: KindSourceNotFound, Err: err}
		case bibfs.ErrSinkFrontierNotFound:
			return nil, &Error{Kind: KindSinkNotFound, Err: err}
		case bibfs.ErrNoPath:
			return nil, &Error{Kind: KindNoPath, Err: err}
		default:
			return nil, &Error{Kind: KindAllocationFailure, Err: err}
		}
	}

	path := station.ReconstructPath(bfsRes)
	stations, err := station.Stations(list, a, g.NodeCount(), path)
	if err != nil {
		return nil, &Error{Kind: KindAllocationFailure, Err: err}
	}

	return &Result{stations: stations, path: path}, nil
}
