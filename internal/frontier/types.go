// Package frontier enumerates all frontiers (cliques of the cocomparability
// graph H) via degeneracy-ordered per-pivot subset expansion (C3), attaching
// forward/backward load heuristics computed from each pivot vertex.
//
// Grounded on the original's generate_all_cliques / generate_cliques_with_x
// (bitmask backtracking over each pivot's live neighbor set) and on the
// teacher's dfs package discipline of a single exported entry point
// (Enumerate) over unexported helpers.
package frontier

// Frontier is a non-empty antichain: a clique of H, carried with the
// forward/backward heuristics of its pivot vertex (spec.md §4.3: heuristics
// are attached per pivot, not per subset).
type Frontier struct {
	Nodes             []int // sorted ascending; pivot is not distinguished post-sort
	HeuristicForward  int
	HeuristicBackward int
}

// Size returns len(Nodes).
func (f Frontier) Size() int { return len(f.Nodes) }

// List is the ordered sequence L of all enumerated frontiers; a frontier's
// identity is its index into List.
type List struct {
	Frontiers []Frontier
}

// Len returns len(Frontiers).
func (l *List) Len() int { return len(l.Frontiers) }

// At returns the frontier at index idx.
func (l *List) At(idx int) Frontier { return l.Frontiers[idx] }

// IndexOfSingleton returns the index of the unique frontier {node}, or -1 if
// absent. Used to locate the source-frontier and sink-frontier indices s, t.
func (l *List) IndexOfSingleton(node int) int {
	for idx, f := range l.Frontiers {
		if len(f.Nodes) == 1 && f.Nodes[0] == node {
			return idx
		}
	}

	return -1
}
