// Package transition implements the two ancestor-matrix predicates shared by
// C4 (bidirectional BFS) and C5 (path/station recovery): Inclusion (spec.md
// §3 "Transition validity", clause 1) and ConstructionC (spec.md §3
// "Transition set C(F,F')"). Grounded on the original's inclusion,
// check_ell, and construction_C.
package transition

// AncestorLookup is satisfied by *closure.BitMatrix; declared here so this
// package depends only on the shape it needs.
type AncestorLookup interface {
	At(i, j int) (bool, error)
}

// Inclusion reports whether every node of f has a dominator in fp under a:
// for each t in f there must be some t' in fp with t == t' or a[t][t'].
func Inclusion(a AncestorLookup, f, fp []int) (bool, error) {
	for _, t := range f {
		dominated := false
		for _, tp := range fp {
			if t == tp {
				dominated = true
				break
			}
			ok, err := a.At(t, tp)
			if err != nil {
				return false, err
			}
			if ok {
				dominated = true
				break
			}
		}
		if !dominated {
			return false, nil
		}
	}

	return true, nil
}

// ConstructionC builds C(f, fp): every node l (scanned over the full
// 0..n-1 node space) such that l is an ancestor of some x in fp, and l is
// not already an ancestor of any y in f.
func ConstructionC(a AncestorLookup, f, fp []int, n int) ([]int, error) {
	c := make([]int, 0, n)
	for l := 0; l < n; l++ {
		coveredByF := false
		for _, y := range f {
			ok, err := a.At(l, y)
			if err != nil {
				return nil, err
			}
			if ok {
				coveredByF = true
				break
			}
		}
		if coveredByF {
			continue
		}

		ancestorOfFp := false
		for _, x := range fp {
			ok, err := a.At(l, x)
			if err != nil {
				return nil, err
			}
			if ok {
				ancestorOfFp = true
				break
			}
		}
		if ancestorOfFp {
			c = append(c, l)
		}
	}

	return c, nil
}

// LoadOf sums duration[l] over l in c.
func LoadOf(duration []int, c []int) int {
	sum := 0
	for _, l := range c {
		sum += duration[l]
	}

	return sum
}
