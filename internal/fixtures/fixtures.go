// Package fixtures generates deterministic SALBP-1 instances for tests: a
// linear chain, an independent (arc-free) task set, and a random sparse
// precedence DAG. Adapted from the teacher's builder package
// (Constructor/BuilderOption pattern, builder.BuildGraph, WithSeed,
// impl_path.go, impl_random_sparse.go) — generalized from building a
// core.Graph to building the (durations, edges) tuple solver.Solve expects,
// since the fixture's payload here is integer task durations, not vertex
// metadata.
package fixtures

import (
	"math/rand"

	"github.com/ertuSebu/salbp-solver/solver"
)

// Instance is a generated SALBP-1 fixture: n tasks, their durations, and
// precedence edges (1-indexed over the real tasks; solver.Solve inserts the
// source/sink arcs).
type Instance struct {
	N         int
	Durations []int
	Edges     []solver.Edge
}

// Chain returns the linear-chain fixture 1 -> 2 -> ... -> n, each task with
// the given duration — spec.md §8's "Linear chain ... all durations = c"
// boundary case.
func Chain(n, duration int) Instance {
	durations := make([]int, n)
	for i := range durations {
		durations[i] = duration
	}
	edges := make([]solver.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, solver.Edge{U: i, V: i + 1})
	}

	return Instance{N: n, Durations: durations, Edges: edges}
}

// Independent returns the arc-free fixture with the given per-task
// durations — spec.md §8's "Independent tasks (no arcs)" boundary case.
func Independent(durations []int) Instance {
	return Instance{N: len(durations), Durations: append([]int(nil), durations...)}
}

// RandomSparse returns an Erdős–Rényi-style random precedence DAG over n
// tasks: for each ordered pair (i, j) with i < j, include arc i -> j
// independently with probability p, then assign each task a duration drawn
// uniformly from [minDur, maxDur]. Restricting arcs to i < j guarantees
// acyclicity by construction, mirroring builder.RandomSparse's "iterate
// unordered pairs {i,j} with i<j" discipline (here directed, since SALBP
// precedence is a DAG, not an undirected sparse graph).
//
// Deterministic for a fixed seed, exactly as builder.WithSeed freezes
// RandomSparse's stochastic path.
func RandomSparse(n int, p float64, minDur, maxDur int, seed int64) Instance {
	rng := rand.New(rand.NewSource(seed))
	durations := make([]int, n)
	span := maxDur - minDur + 1
	for i := range durations {
		durations[i] = minDur + rng.Intn(span)
	}

	var edges []solver.Edge
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() < p {
				edges = append(edges, solver.Edge{U: i, V: j})
			}
		}
	}

	return Instance{N: n, Durations: durations, Edges: edges}
}
