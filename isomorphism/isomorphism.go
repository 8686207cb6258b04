package isomorphism

import (
	"sort"

	"github.com/arvonis/epiunfold/graph"
	"github.com/arvonis/epiunfold/morph"
)

// Find returns every isomorphism V(g1) -> V(g2), trimmed to
// {v -> phi(v) : v != phi(v)}. Returns nil if the graphs have different
// order: an isomorphism requires equal order.
//
// Complexity: worst case O(n!) candidate bijections; pruned by adjacency
// consistency at every partial assignment, which is effective at the small
// graph sizes this search runs over.
func Find(g1, g2 *graph.Graph) []morph.Mapping {
	n1, n2 := g1.Nodes(), g2.Nodes()
	if len(n1) != len(n2) {
		return nil
	}
	n := len(n1)
	if n == 0 {
		return []morph.Mapping{{}}
	}

	// Descending-degree ordering speeds up failure detection, mirroring
	// the symmetry-break advice in retract's search.
	sort.Slice(n1, func(i, j int) bool { return g1.Degree(n1[i]) > g1.Degree(n1[j]) })

	used := make(map[int]bool, n)
	assigned := make(map[int]int, n)
	var out []morph.Mapping

	var backtrack func(i int)
	backtrack = func(i int) {
		if i == n {
			trimmed := make(morph.Mapping, n)
			for v, phi := range assigned {
				if v != phi {
					trimmed[v] = phi
				}
			}
			out = append(out, trimmed)
			return
		}
		v := n1[i]
		for _, cand := range n2 {
			if used[cand] {
				continue
			}
			if consistent(g1, g2, v, cand, assigned) {
				used[cand] = true
				assigned[v] = cand
				backtrack(i + 1)
				delete(assigned, v)
				used[cand] = false
			}
		}
	}
	backtrack(0)

	return out
}

// consistent reports whether mapping v -> cand agrees with every
// already-assigned vertex of g1 on both the presence and the absence of
// edges, which is what makes the map a two-way isomorphism rather than a
// one-way homomorphism.
func consistent(g1, g2 *graph.Graph, v, cand int, assigned map[int]int) bool {
	for u, phiU := range assigned {
		if g1.HasEdge(v, u) != g2.HasEdge(cand, phiU) {
			return false
		}
	}
	// self-loop parity, covered above when u == v never occurs (v isn't
	// assigned yet); check explicitly against itself.
	if g1.HasEdge(v, v) != g2.HasEdge(cand, cand) {
		return false
	}

	return true
}
