// Package taskgraph defines the SALBP-1 task graph G: an artificial source
// (node 0), an artificial sink (node n+1), n real tasks in between, integer
// durations, and a precedence DAG over the arcs supplied by the caller.
//
// Mirrors the teacher's core.Graph construction idiom (all validation in one
// constructor, no functional options, sentinel errors, no panics on caller input)
// but trades the string-keyed adjacency list for a dense integer node space,
// since every downstream stage (closure, cocomp, frontier) indexes nodes
// 0..N-1 directly.
package taskgraph

import "errors"

// Sentinel errors for task graph construction. Every message is prefixed
// with "taskgraph: " for consistent grepping, matched via errors.Is.
var (
	// ErrNoTasks indicates n <= 0.
	ErrNoTasks = errors.New("taskgraph: n must be >= 1")

	// ErrNegativeDuration indicates a task duration below zero.
	ErrNegativeDuration = errors.New("taskgraph: task duration must be >= 0")

	// ErrTaskIDOutOfRange indicates an arc endpoint outside [0, n+1].
	ErrTaskIDOutOfRange = errors.New("taskgraph: task id out of range")

	// ErrDurationCountMismatch indicates len(durations) != n.
	ErrDurationCountMismatch = errors.New("taskgraph: durations length must equal n")

	// ErrCyclic indicates the supplied arcs do not form a DAG.
	ErrCyclic = errors.New("taskgraph: precedence arcs contain a cycle")
)

// Arc is a directed precedence edge u -> v ("u must finish before v starts").
type Arc struct {
	U, V int
}

// Graph is the SALBP-1 task graph. Node 0 is the source, node N-1 the sink,
// nodes 1..N-2 are real tasks. Duration[0] == Duration[N-1] == 0.
//
// Graph is built once by New and is immutable thereafter; it carries no
// locks because the core is single-threaded and synchronous (spec §5).
type Graph struct {
	n        int   // number of real tasks
	duration []int // length N = n+2, indexed by node id
	out      [][]int
	in       [][]int
	arcs     []Arc // full arc set, including inserted source/sink arcs
}

// N returns the number of real tasks (excludes source and sink).
func (g *Graph) N() int { return g.n }

// NodeCount returns N = n+2, the number of nodes including source and sink.
func (g *Graph) NodeCount() int { return len(g.duration) }

// Source returns the source node id (always 0).
func (g *Graph) Source() int { return 0 }

// Sink returns the sink node id (always n+1).
func (g *Graph) Sink() int { return len(g.duration) - 1 }

// Duration returns the duration of node id.
func (g *Graph) Duration(id int) int { return g.duration[id] }

// Out returns the immediate successors of node id.
func (g *Graph) Out(id int) []int { return g.out[id] }

// In returns the immediate predecessors of node id.
func (g *Graph) In(id int) []int { return g.in[id] }

// Arcs returns the full arc set, including inserted source/sink arcs.
func (g *Graph) Arcs() []Arc { return g.arcs }

// New builds a task graph from n real tasks, their durations (0-indexed,
// length n), and precedence arcs over the node space {0, 1..n, n+1} (the
// caller may omit source/sink arcs; New inserts them for every task that
// lacks an explicit predecessor or successor, exactly as spec.md §3/§6
// requires and as the original's add_source_and_sink did).
func New(n int, durations []int, arcs []Arc) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoTasks
	}
	if len(durations) != n {
		return nil, ErrDurationCountMismatch
	}
	for _, d := range durations {
		if d < 0 {
			return nil, ErrNegativeDuration
		}
	}

	nodeCount := n + 2
	sink := n + 1
	for _, a := range arcs {
		if a.U < 0 || a.U > sink || a.V < 0 || a.V > sink {
			return nil, ErrTaskIDOutOfRange
		}
	}

	duration := make([]int, nodeCount)
	for i := 0; i < n; i++ {
		duration[i+1] = durations[i]
	}
	// duration[0] and duration[sink] remain 0.

	hasPred := make([]bool, nodeCount)
	hasSucc := make([]bool, nodeCount)
	full := make([]Arc, 0, len(arcs)+2*n)
	full = append(full, arcs...)
	for _, a := range arcs {
		hasSucc[a.U] = true
		hasPred[a.V] = true
	}
	for t := 1; t <= n; t++ {
		if !hasPred[t] {
			full = append(full, Arc{U: 0, V: t})
		}
	}
	for t := 1; t <= n; t++ {
		if !hasSucc[t] {
			full = append(full, Arc{U: t, V: sink})
		}
	}

	out := make([][]int, nodeCount)
	in := make([][]int, nodeCount)
	for _, a := range full {
		out[a.U] = append(out[a.U], a.V)
		in[a.V] = append(in[a.V], a.U)
	}

	g := &Graph{n: n, duration: duration, out: out, in: in, arcs: full}
	if err := checkAcyclic(g); err != nil {
		return nil, err
	}

	return g, nil
}
