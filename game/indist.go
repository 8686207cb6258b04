package game

import "github.com/arvonis/epiunfold/graph"

// buildIndistGraph turns one player's indistinguishability classes into a
// graph on the state ids: within a class, every pair of states is joined by
// an edge (the class is mutually indistinguishable), and every state carries
// a self-loop (a state is always indistinguishable from itself). Mirrors
// distgame.py's _indist_graph_from_classes.
//
// classes need not cover every state: a state absent from every class is
// implicitly its own singleton class. It is only an error for a state to
// appear in more than one class, which would make the classes overlap
// rather than partition.
func buildIndistGraph(classes [][]int, numStates int) (*graph.Graph, error) {
	g := graph.New()

	seen := make(map[int]bool, numStates)
	for _, class := range classes {
		for _, s := range class {
			if s < 0 || s >= numStates {
				return nil, ErrUnknownState
			}
			if seen[s] {
				return nil, ErrClassesNotPartition
			}
			seen[s] = true
		}
		for _, s := range class {
			for _, t := range class {
				g.AddEdge(s, t)
			}
		}
	}
	// Every state carries a self-loop regardless of class membership, and
	// any state omitted from every class becomes a singleton node here.
	for s := 0; s < numStates; s++ {
		g.AddEdge(s, s)
	}

	return g, nil
}

// AreDistinguishable reports whether player p can tell states s1 and s2
// apart: they are distinguishable exactly when no edge joins them in p's
// indistinguishability graph.
func (g *DistributedGame) AreDistinguishable(p, s1, s2 int) bool {
	return !g.indist[p].HasEdge(s1, s2)
}

// IndistGraph returns player p's indistinguishability graph.
func (g *DistributedGame) IndistGraph(p int) *graph.Graph {
	return g.indist[p]
}
