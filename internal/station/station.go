// Package station implements path and station recovery (C5): walking the
// bidirectional BFS's parent arrays back into a frontier path P, then
// deriving each consecutive pair's station task set C(F,F') via the same
// ancestor-matrix predicate C4 uses for transition validity.
package station

import (
	"github.com/ertuSebu/salbp-solver/internal/bibfs"
	"github.com/ertuSebu/salbp-solver/internal/frontier"
	"github.com/ertuSebu/salbp-solver/internal/transition"
)

// ReconstructPath walks parent_s from the meeting index back to the source
// frontier, reverses it, then walks parent_t from parent_t[meeting] to the
// sink frontier (already sink-ward) and concatenates the two halves —
// spec.md §4.5's reconstruction rule, verbatim.
func ReconstructPath(res *bibfs.Result) []int {
	var fromSource []int
	for cur := res.Meeting; cur != -1; cur = res.ParentS[cur] {
		fromSource = append(fromSource, cur)
	}
	for i, j := 0, len(fromSource)-1; i < j; i, j = i+1, j-1 {
		fromSource[i], fromSource[j] = fromSource[j], fromSource[i]
	}

	var fromSink []int
	for cur := res.ParentT[res.Meeting]; cur != -1; cur = res.ParentT[cur] {
		fromSink = append(fromSink, cur)
	}

	path := make([]int, 0, len(fromSource)+len(fromSink))
	path = append(path, fromSource...)
	path = append(path, fromSink...)

	return path
}

// Stations derives, for each consecutive pair of the path P, the station
// task set C(F_{p-1}, F_p) (spec.md §4.5's "Station derivation"), with the
// synthetic source (node 0) and sink (node nNodes-1) filtered out of every
// set. ConstructionC scans the full node space 0..nNodes-1, exactly as the
// original's construction_C does, and the last transition's C always
// contains the sink (it is its own ancestor and no predecessor of the
// preceding frontier reaches it) — filtering here is what actually
// delivers spec.md invariant 5 ("the station partition covers exactly
// {1..n} once"), rather than carrying the synthetic endpoints into the
// public result. The returned slice has len(path)-1 entries, one per
// station, in path order; together they partition the real tasks exactly
// once.
func Stations(list *frontier.List, a transition.AncestorLookup, nNodes int, path []int) ([][]int, error) {
	source, sink := 0, nNodes-1
	stations := make([][]int, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		f := list.At(path[i-1])
		fp := list.At(path[i])
		c, err := transition.ConstructionC(a, f.Nodes, fp.Nodes, nNodes)
		if err != nil {
			return nil, err
		}

		tasks := make([]int, 0, len(c))
		for _, node := range c {
			if node == source || node == sink {
				continue
			}
			tasks = append(tasks, node)
		}
		stations = append(stations, tasks)
	}

	return stations, nil
}


