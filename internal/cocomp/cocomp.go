// Package cocomp builds the cocomparability graph H (C2): the undirected
// complement of the precedence reachability relation. {i,j} is an edge of H
// iff i != j and neither is an ancestor of the other in A.
//
// Grounded on the teacher's core.Graph adjacency-list idiom (core/types.go),
// adapted to a static, non-mutating, non-thread-safe structure per spec §5
// (no shared mutable state, single-threaded core) and to a dense integer
// node space shared with internal/closure and internal/taskgraph.
package cocomp

import "github.com/ertuSebu/salbp-solver/internal/closure"

// Edge is an unordered pair {U, V} with U < V.
type Edge struct {
	U, V int
}

// Graph is the cocomparability graph H: an edge list (deterministic
// iteration order, U < V; frontier builds its adjacency list for degeneracy
// ordering from it) plus a BitMatrix adjacency for O(1) adjacency tests used
// by clique validation.
type Graph struct {
	n     int
	adj   *closure.BitMatrix
	edges []Edge
}

// N returns the number of nodes (== the task graph's NodeCount).
func (h *Graph) N() int { return h.n }

// Edges returns H's edge list, each pair ordered U < V.
func (h *Graph) Edges() []Edge { return h.edges }

// Adjacent reports whether {i, j} is an edge of H.
func (h *Graph) Adjacent(i, j int) bool {
	if i == j {
		return false
	}
	ok, _ := h.adj.At(i, j)

	return ok
}

// Build constructs H from the ancestor matrix a (side N). Edge count upper
// bound N(N-1)/2, exactly as spec.md §4.2.
func Build(a *closure.BitMatrix) (*Graph, error) {
	n := a.Side()
	adj, err := closure.NewBitMatrix(n)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			aji, err := a.At(j, i)
			if err != nil {
				return nil, err
			}
			if !aij && !aji {
				edges = append(edges, Edge{U: i, V: j})
				if err = adj.Set(i, j, true); err != nil {
					return nil, err
				}
				if err = adj.Set(j, i, true); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Graph{n: n, adj: adj, edges: edges}, nil
}
