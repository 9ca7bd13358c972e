package frontier

import "github.com/ertuSebu/salbp-solver/internal/cocomp"

// ancestorLookup is satisfied by *closure.BitMatrix; declared as an
// interface here so this package depends only on the shape it needs.
type ancestorLookup interface {
	At(i, j int) (bool, error)
}

// Enumerate emits every clique of h into a List, processing vertices in
// degeneracy order and, for each pivot x, backtracking over every subset of
// x's still-live neighbors that remains a clique together with x — exactly
// the original's generate_all_cliques / generate_cliques_with_x. Every
// frontier emitted while x is the pivot receives x's forward/backward
// heuristics, computed once per pivot from the full ancestor matrix a
// (spec.md §4.3, §9 "Heuristic attribution").
//
// Completeness guarantee preserved: every clique of h is emitted at least
// once, and in particular the singletons {source} and {sink} both appear
// (each is emitted when its own turn comes as a pivot, with the empty
// subset). Redundant (non-maximal) emissions are permitted by design.
func Enumerate(h *cocomp.Graph, a ancestorLookup, duration []int) (*List, error) {
	n := h.N()
	order := degeneracyOrder(h)
	adjList := buildAdjList(h)
	removed := make([]bool, n)

	list := &List{Frontiers: make([]Frontier, 0, n)}

	for _, x := range order {
		hFwd, hBwd, err := pivotHeuristics(a, duration, n, x)
		if err != nil {
			return nil, err
		}

		neighbors := make([]int, 0, len(adjList[x]))
		for _, v := range adjList[x] {
			if !removed[v] {
				neighbors = append(neighbors, v)
			}
		}

		if err = enumerateCliquesWithPivot(h, x, neighbors, hFwd, hBwd, list); err != nil {
			return nil, err
		}
		removed[x] = true
	}

	return list, nil
}

// pivotHeuristics computes heuristic_forward(x) and heuristic_backward(x)
// over the *full* node set (not just live neighbors), matching the
// original's per-pivot summation over i = 0..n-1.
func pivotHeuristics(a ancestorLookup, duration []int, n, x int) (forward, backward int, err error) {
	for i := 0; i < n; i++ {
		if i == x {
			continue
		}
		aix, err := a.At(i, x)
		if err != nil {
			return 0, 0, err
		}
		if aix {
			forward += duration[i]
		}
		axi, err := a.At(x, i)
		if err != nil {
			return 0, 0, err
		}
		if axi {
			backward += duration[i]
		}
	}

	return forward, backward, nil
}

// enumerateCliquesWithPivot walks every subset (bitmask 0..2^k-1) of
// neighbors, keeping only those that form a clique together with x, and
// appends each surviving {x} ∪ S to list. k is the live-neighbor count of
// the current pivot; acceptable because realistic SALBP cocomparability
// degeneracy is small (spec.md §4.3 complexity note).
func enumerateCliquesWithPivot(h *cocomp.Graph, x int, neighbors []int, hFwd, hBwd int, list *List) error {
	k := len(neighbors)
	total := 1 << uint(k)

	clique := make([]int, 0, k+1)
	for mask := 0; mask < total; mask++ {
		clique = clique[:0]
		clique = append(clique, x)
		valid := true
		for i := 0; i < k && valid; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			cand := neighbors[i]
			for _, member := range clique {
				if !h.Adjacent(member, cand) {
					valid = false
					break
				}
			}
			if valid {
				clique = append(clique, cand)
			}
		}
		if !valid {
			continue
		}

		nodes := make([]int, len(clique))
		copy(nodes, clique)
		sortAscending(nodes)
		list.Frontiers = append(list.Frontiers, Frontier{
			Nodes:             nodes,
			HeuristicForward:  hFwd,
			HeuristicBackward: hBwd,
		})
	}

	return nil
}

// sortAscending is a small insertion sort: frontiers are tiny (bounded by H's
// degeneracy), so this avoids pulling in sort.Ints for a handful of elements.
func sortAscending(nodes []int) {
	for i := 1; i < len(nodes); i++ {
		v := nodes[i]
		j := i - 1
		for j >= 0 && nodes[j] > v {
			nodes[j+1] = nodes[j]
			j--
		}
		nodes[j+1] = v
	}
}
