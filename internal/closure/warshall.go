package closure

import "github.com/ertuSebu/salbp-solver/internal/taskgraph"

// Compute builds the reflexive transitive closure A of g's arc set via
// Warshall's algorithm: A[i][i] = true for all i, A[u][v] = true for each
// arc (u,v), then for k, i, j in that fixed order, A[i][j] |= A[i][k] &&
// A[k][j], early-exiting the inner loop when A[i][k] is false.
//
// This is the exact loop order and early-exit discipline of the teacher's
// matrix.floydWarshallInPlace (matrix/impl_floydwarshall.go) and of the
// original's compute_ancestor_matrix, adapted from float64 relaxation to
// boolean OR-accumulation over BitMatrix words.
//
// Complexity: O(N^3) time, O(N^2/64) words of memory.
func Compute(g *taskgraph.Graph) (*BitMatrix, error) {
	n := g.NodeCount()
	a, err := NewBitMatrix(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if err = a.Set(i, i, true); err != nil {
			return nil, err
		}
	}
	for _, arc := range g.Arcs() {
		if err = a.Set(arc.U, arc.V, true); err != nil {
			return nil, err
		}
	}

	warshallInPlace(a)

	return a, nil
}

// warshallInPlace runs the reflexive-transitive closure in place on a,
// fixed k -> i -> j loop order for deterministic accumulation, matching
// matrix.floydWarshallInPlace's discipline but OR-ing whole words at a time
// when A[i][k] holds, instead of relaxing one float64 cell per (i,j).
func warshallInPlace(a *BitMatrix) {
	n := a.n
	for k := 0; k < n; k++ {
		kRow := a.rowWordRange(k)
		for i := 0; i < n; i++ {
			ik, _ := a.At(i, k)
			if !ik {
				// No path i -> k: no candidate via k can improve row i.
				continue
			}
			iRow := a.rowWordRange(i)
			for w := 0; w < a.wpr; w++ {
				iRow[w] |= kRow[w]
			}
		}
	}
}
