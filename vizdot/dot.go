package vizdot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arvonis/epiunfold/epmodel"
	"github.com/arvonis/epiunfold/game"
	"github.com/arvonis/epiunfold/unfold"
)

// GameDOT renders the base game as a directed DOT graph: states as nodes,
// the resolved transition relation as labeled edges (grouped by
// from/to state pair), and each player's indistinguishability rendered as
// undirected, styled edges. An edge from a hidden node marks the initial
// state (distgame.py's DistributedGame.to_pydot).
func GameDOT(g *game.DistributedGame) string {
	type pair struct{ from, to string }
	collapsed := make(map[pair][]string)
	var order []pair
	for _, tr := range g.AllTransitions() {
		fromName := g.StateName(tr.From)
		label := jointActionLabel(tr.Action)
		for _, to := range tr.To {
			toName := g.StateName(to)
			key := pair{fromName, toName}
			if _, ok := collapsed[key]; !ok {
				order = append(order, key)
			}
			collapsed[key] = append(collapsed[key], label)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].from != order[j].from {
			return order[i].from < order[j].from
		}
		return order[i].to < order[j].to
	})

	outCount := make(map[string]int)
	for _, k := range order {
		outCount[k.from]++
	}

	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, k := range order {
		label := "⊥"
		if outCount[k.from] != 1 {
			label = formatActionLabel(collapsed[k])
		}
		fmt.Fprintf(&b, "  %s -> %s [label=%s];\n", quoteDOT(k.from), quoteDOT(k.to), quoteDOT(label))
	}

	hidden := "hidden_initial"
	for hasStateName(g, hidden) {
		hidden += "_"
	}
	fmt.Fprintf(&b, "  %s [shape=none label=\"\"];\n", quoteDOT(hidden))
	fmt.Fprintf(&b, "  %s -> %s;\n", quoteDOT(hidden), quoteDOT(g.StateName(g.InitialState())))

	for p := 0; p < g.PlayerCount(); p++ {
		for _, e := range g.IndistGraph(p).Edges() {
			if e[0] == e[1] {
				continue
			}
			u, v := g.StateName(e[0]), g.StateName(e[1])
			fmt.Fprintf(&b, "  %s -> %s [dir=none style=%s color=%s];\n", quoteDOT(u), quoteDOT(v), styleFor(p), colorFor(p))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func hasStateName(g *game.DistributedGame, name string) bool {
	for _, s := range g.States() {
		if g.StateName(s) == name {
			return true
		}
	}
	return false
}

// ModelDOT renders a single epistemic model as an undirected DOT graph:
// one node per history, labeled with its last state's name, and each
// player's indistinguishability edges styled and colored distinctly
// (main.py's _model_to_dot).
func ModelDOT(m *epmodel.EpistemicModel) string {
	var b strings.Builder
	b.WriteString("graph {\n")
	lastStates := m.LastStates()
	for i, s := range lastStates {
		fmt.Fprintf(&b, "  %d [label=%s];\n", i, quoteDOT(m.Game().StateName(s)))
	}
	for p := 0; p < m.PlayerCount(); p++ {
		for _, e := range m.IndistGraph(p).Edges() {
			if e[0] == e[1] {
				continue
			}
			fmt.Fprintf(&b, "  %d -- %d [style=%s color=%s];\n", e[0], e[1], styleFor(p), colorFor(p))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// UnfoldedDOT renders an unfolding's location graph: one box node per
// location, displaying modelImages[i] as that location's rendered model,
// and labeled transitions between locations (main.py's _game_to_dot).
// modelImages must have one entry per result.Locations.
func UnfoldedDOT(result *unfold.Result, modelImages []string) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for i := range result.Locations {
		fmt.Fprintf(&b, "  %d [label=\"\" shape=box image=%s];\n", i, quoteDOT(modelImages[i]))
	}

	outCount := make(map[int]int)
	keys := make([]unfold.TransitionKey, 0, len(result.Transitions))
	for k := range result.Transitions {
		keys = append(keys, k)
		outCount[k.From]++
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})

	for _, k := range keys {
		label := "⊥"
		if outCount[k.From] != 1 {
			label = formatActionLabel(assignmentLabels(result.Transitions[k]))
		}
		fmt.Fprintf(&b, "  %d -> %d [label=%s];\n", k.From, k.To, quoteDOT(label))
	}

	hidden := quoteDOT("hidden_initial")
	fmt.Fprintf(&b, "  %s [shape=none label=\"\"];\n", hidden)
	fmt.Fprintf(&b, "  %s -> %d;\n", hidden, result.InitialIndex)
	b.WriteString("}\n")
	return b.String()
}
