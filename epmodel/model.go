package epmodel

import (
	"fmt"
	"strings"

	"github.com/arvonis/epiunfold/game"
	"github.com/arvonis/epiunfold/graph"
)

// EpistemicModel is a model of every player's knowledge of the history of a
// distributed game so far. Histories are identified by their index into
// lastStates; that is all a history remembers of itself.
type EpistemicModel struct {
	g            *game.DistributedGame
	lastStates   []int
	indistGraphs []*graph.Graph
}

// NewInitialModel returns the epistemic model for g at its initial state: a
// single history, the singleton history of the initial state, that every
// player knows for certain.
func NewInitialModel(g *game.DistributedGame) *EpistemicModel {
	indist := make([]*graph.Graph, g.PlayerCount())
	for p := range indist {
		ig := graph.New()
		ig.AddEdge(0, 0)
		indist[p] = ig
	}
	return &EpistemicModel{
		g:            g,
		lastStates:   []int{g.InitialState()},
		indistGraphs: indist,
	}
}

// newModel builds a model directly from a complete model state, over the
// same underlying game. Mirrors epmodel.py's _new_model.
func (m *EpistemicModel) newModel(lastStates []int, indistGraphs []*graph.Graph) *EpistemicModel {
	return &EpistemicModel{g: m.g, lastStates: lastStates, indistGraphs: indistGraphs}
}

// HistoryCount returns the number of histories the model comprises.
func (m *EpistemicModel) HistoryCount() int {
	return len(m.lastStates)
}

// PlayerCount returns the number of players the model comprises.
func (m *EpistemicModel) PlayerCount() int {
	return len(m.indistGraphs)
}

// LastStates returns the final state id of every history, indexed by
// history id.
func (m *EpistemicModel) LastStates() []int {
	return append([]int(nil), m.lastStates...)
}

// IndistGraph returns player p's indistinguishability graph over history
// ids.
func (m *EpistemicModel) IndistGraph(p int) *graph.Graph {
	return m.indistGraphs[p]
}

// Game returns the underlying distributed game.
func (m *EpistemicModel) Game() *game.DistributedGame {
	return m.g
}

// String renders the model for console narration: the last state name of
// every history, then each player's indistinguishability pairs (loops
// omitted) by state name.
func (m *EpistemicModel) String() string {
	var b strings.Builder
	b.WriteString("MODEL {\n")
	b.WriteString("  last state per history\n    [")
	for i, s := range m.lastStates {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.g.StateName(s))
	}
	b.WriteString("]\n")
	b.WriteString("  indistinguishability relations per player\n")
	for _, ig := range m.indistGraphs {
		b.WriteString("    [")
		first := true
		for _, e := range ig.Edges() {
			if e[0] == e[1] {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&b, "(%s, %s)", m.g.StateName(m.lastStates[e[0]]), m.g.StateName(m.lastStates[e[1]]))
		}
		b.WriteString("]\n")
	}
	b.WriteString("}")
	return b.String()
}
