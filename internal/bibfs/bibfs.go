package bibfs

import (
	"github.com/ertuSebu/salbp-solver/internal/frontier"
	"github.com/ertuSebu/salbp-solver/internal/transition"
)

// Run executes the pruned bidirectional BFS of spec.md §4.4 over list,
// searching for the shortest frontier path from the singleton {sourceNode}
// to the singleton {sinkNode}.
//
// Tie-break rule (spec.md §5 "Determinism"): within a layer, candidate
// frontier indices are scanned in ascending index order on both sides; the
// first meeting index discovered under that order is the one reported.
// This is fixed and documented here because spec.md §4.4's "Ordering note"
// permits — but does not require — within-layer reordering as an
// optimisation; this implementation does not reorder.
func Run(list *frontier.List, a transition.AncestorLookup, duration []int, cycleTime, sourceNode, sinkNode int, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := list.IndexOfSingleton(sourceNode)
	if s == -1 {
		return nil, ErrSourceFrontierNotFound
	}
	t := list.IndexOfSingleton(sinkNode)
	if t == -1 {
		return nil, ErrSinkFrontierNotFound
	}

	nNodes := len(duration)
	nFrontiers := list.Len()

	w := &walker{
		list:     list,
		a:        a,
		duration: duration,
		cycle:    cycleTime,
		nNodes:   nNodes,
		opts:     o,
		res: &Result{
			ParentS: fillInt(nFrontiers, -1),
			DistS:   fillInt(nFrontiers, -1),
			ParentT: fillInt(nFrontiers, -1),
			DistT:   fillInt(nFrontiers, -1),
			Meeting: -1,
			Source:  s,
			Sink:    t,
		},
	}

	meeting, err := w.search()
	if err != nil {
		return nil, err
	}
	if meeting == -1 {
		return nil, ErrNoPath
	}
	w.res.Meeting = meeting
	o.onMeet(meeting)

	return w.res, nil
}

func fillInt(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// walker encapsulates mutable bidirectional-BFS state, mirroring the
// teacher's bfs.walker split between immutable config and mutable queues.
type walker struct {
	list     *frontier.List
	a        transition.AncestorLookup
	duration []int
	cycle    int
	nNodes   int
	opts     options
	res      *Result
}

// search runs the two-sided level BFS, alternating sides starting forward,
// and returns the first meeting index found (or -1 if both sides run dry).
// A side whose queue is empty on its turn is skipped rather than ending the
// search — the other side may still be advancing and must get its turn
// until both queues drain. The original's bidirectional_bfs stops the whole
// search the first time the side-to-move's queue is empty, which can report
// no-path while the other side still has unexplored frontiers; this is a
// deliberate deviation from that behavior, not a port of it.
func (w *walker) search() (int, error) {
	w.res.DistS[w.res.Source] = 0
	w.res.DistT[w.res.Sink] = 0
	queueS := []int{w.res.Source}
	queueT := []int{w.res.Sink}
	forward := true

	for len(queueS) > 0 || len(queueT) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return -1, w.opts.ctx.Err()
		default:
		}

		if forward {
			if len(queueS) > 0 {
				meeting, next, err := w.expandForward(queueS)
				if err != nil {
					return -1, err
				}
				if meeting != -1 {
					return meeting, nil
				}
				queueS = next
			}
			forward = false
		} else {
			if len(queueT) > 0 {
				meeting, next, err := w.expandBackward(queueT)
				if err != nil {
					return -1, err
				}
				if meeting != -1 {
					return meeting, nil
				}
				queueT = next
			}
			forward = true
		}
	}

	return -1, nil
}

// expandForward processes one full source-rooted layer. For each u in
// layer, every unvisited v is admitted iff: (1) heuristic_forward(v)
// doesn't prove v unreachable at this depth, (2) F_u is included-under-
// ancestry in F_v, and (3) C(F_u, F_v)'s total duration fits the cycle
// time. This is spec.md §4.4's forward half, verbatim.
func (w *walker) expandForward(layer []int) (meeting int, next []int, err error) {
	for _, u := range layer {
		fU := w.list.At(u)
		currentLevel := w.res.DistS[u]

		for v := 0; v < w.list.Len(); v++ {
			if u == v || w.res.DistS[v] != -1 {
				continue
			}
			fV := w.list.At(v)
			if !w.admissible(currentLevel, fV.HeuristicForward) {
				continue
			}

			ok, err := transition.Inclusion(w.a, fU.Nodes, fV.Nodes)
			if err != nil {
				return -1, nil, err
			}
			if !ok {
				continue
			}

			c, err := transition.ConstructionC(w.a, fU.Nodes, fV.Nodes, w.nNodes)
			if err != nil {
				return -1, nil, err
			}
			if transition.LoadOf(w.duration, c) > w.cycle {
				continue
			}

			w.res.DistS[v] = currentLevel + 1
			w.res.ParentS[v] = u
			w.opts.onFrontierVisit(Forward, v, w.res.DistS[v])
			if w.res.DistT[v] != -1 {
				return v, nil, nil
			}
			next = append(next, v)
		}
	}

	return -1, next, nil
}

// expandBackward is the symmetric sink-rooted half: the inclusion and
// constructionC argument order is reversed relative to expandForward (the
// "earlier" frontier is always first), per spec.md §9's "Transition test
// asymmetry" note — F_v is the earlier frontier here, F_u the later one,
// since the backward search walks from sink toward source.
func (w *walker) expandBackward(layer []int) (meeting int, next []int, err error) {
	for _, u := range layer {
		fU := w.list.At(u)
		currentLevel := w.res.DistT[u]

		for v := 0; v < w.list.Len(); v++ {
			if u == v || w.res.DistT[v] != -1 {
				continue
			}
			fV := w.list.At(v)
			if !w.admissible(currentLevel, fV.HeuristicBackward) {
				continue
			}

			ok, err := transition.Inclusion(w.a, fV.Nodes, fU.Nodes)
			if err != nil {
				return -1, nil, err
			}
			if !ok {
				continue
			}

			c, err := transition.ConstructionC(w.a, fV.Nodes, fU.Nodes, w.nNodes)
			if err != nil {
				return -1, nil, err
			}
			if transition.LoadOf(w.duration, c) > w.cycle {
				continue
			}

			w.res.DistT[v] = currentLevel + 1
			w.res.ParentT[v] = u
			w.opts.onFrontierVisit(Backward, v, w.res.DistT[v])
			if w.res.DistS[v] != -1 {
				return v, nil, nil
			}
			next = append(next, v)
		}
	}

	return -1, next, nil
}

// admissible implements spec.md §4.4's heuristic pruning rule: a frontier v
// with heuristic h is reachable at currentLevel+1 unless h != cycle and
// currentLevel < h/cycle (integer division, i.e. floor for non-negative
// operands) — the h == cycle exception preserves the valid single-station
// transition where upstream work exactly fills one station.
func (w *walker) admissible(currentLevel, h int) bool {
	if h == w.cycle {
		return true
	}

	return currentLevel >= h/w.cycle
}
