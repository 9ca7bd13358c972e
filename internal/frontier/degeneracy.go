package frontier

import "github.com/ertuSebu/salbp-solver/internal/cocomp"

// degeneracyOrder computes a permutation of H's nodes by repeatedly removing
// a not-yet-removed vertex of minimum *current* degree (ties broken by
// smallest index), exactly as spec.md §4.3 and the original's
// degeneracy_order. Unlike the original, which recomputes this order and
// then still linearly rescans it per step (spec.md §9 Open Question), this
// resolves that redundancy: the returned slice is consumed directly by
// Enumerate in order, no rescan.
//
// Complexity: O(n^2) (n vertices, each removal decrements its live
// neighbors' degrees).
func degeneracyOrder(h *cocomp.Graph) []int {
	n := h.N()
	deg := make([]int, n)
	adjList := buildAdjList(h)
	for i := 0; i < n; i++ {
		deg[i] = len(adjList[i])
	}

	removed := make([]bool, n)
	order := make([]int, 0, n)
	for step := 0; step < n; step++ {
		best, bestDeg := -1, n+1
		for v := 0; v < n; v++ {
			if !removed[v] && deg[v] < bestDeg {
				best, bestDeg = v, deg[v]
			}
		}
		order = append(order, best)
		removed[best] = true
		for _, u := range adjList[best] {
			if !removed[u] {
				deg[u]--
			}
		}
	}

	return order
}

// buildAdjList materializes H's adjacency list from its edge list, for the
// degeneracy order's neighbor-degree bookkeeping.
func buildAdjList(h *cocomp.Graph) [][]int {
	adj := make([][]int, h.N())
	for _, e := range h.Edges() {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}
