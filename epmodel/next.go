package epmodel

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arvonis/epiunfold/game"
	"github.com/arvonis/epiunfold/graph"
)

// Assignment maps every history id to the joint action to perform for that
// history: Assignment[h] is performed at the history whose id is h.
type Assignment []game.JointAction

// Successor pairs a next epistemic model with every joint-action assignment
// that produces it, grouped because distinct assignments can induce an
// identical successor model.
type Successor struct {
	Model   *EpistemicModel
	Actions []Assignment
}

// Unfold returns every epistemic successor model reachable by a compatible
// joint-action assignment. core selects whether each successor is
// quotiented to its homomorphic core.
func (m *EpistemicModel) Unfold(core bool) []Successor {
	compatible := m.compatibleJointActions()

	type group struct {
		assignments []Assignment
	}
	order := make([]string, 0)
	groups := make(map[string]*group)
	for _, assignment := range compatible {
		key := m.resultKey(assignment)
		grp, ok := groups[key]
		if !ok {
			grp = &group{}
			groups[key] = grp
			order = append(order, key)
		}
		grp.assignments = append(grp.assignments, assignment)
	}

	var out []Successor
	for _, key := range order {
		grp := groups[key]
		for _, next := range m.Next(grp.assignments[0], core) {
			out = append(out, Successor{Model: next, Actions: grp.assignments})
		}
	}
	return out
}

// Next returns the epistemic successor models induced by performing
// assignment[h] at every history h of the model.
func (m *EpistemicModel) Next(assignment Assignment, core bool) []*EpistemicModel {
	newLastStates, successorsList := m.nextHistories(assignment)

	newIndistGraphs := make([]*graph.Graph, m.PlayerCount())
	union := graph.New()
	for p := range newIndistGraphs {
		ng := graph.New()
		for _, e := range m.indistGraphs[p].Edges() {
			h1, h2 := e[0], e[1]
			for _, n1 := range successorsList[h1] {
				for _, n2 := range successorsList[h2] {
					if !m.g.AreDistinguishable(p, newLastStates[n1], newLastStates[n2]) {
						ng.AddEdge(n1, n2)
						union.AddEdge(n1, n2)
					}
				}
			}
		}
		newIndistGraphs[p] = ng
	}

	components := union.ConnectedComponents()

	var models []*EpistemicModel
	if len(components) <= 1 {
		models = []*EpistemicModel{m.newModel(newLastStates, newIndistGraphs)}
	} else {
		for _, comp := range components {
			models = append(models, m.newSubmodel(comp, newLastStates, newIndistGraphs))
		}
	}

	if !core {
		return models
	}
	cored := make([]*EpistemicModel, len(models))
	for i, mod := range models {
		cored[i] = mod.Core()
	}
	return cored
}

// nextHistories expands every current history into its successor histories
// under assignment, returning the new model's last-state list and, for
// each old history, the ids of the new histories it produced.
func (m *EpistemicModel) nextHistories(assignment Assignment) ([]int, [][]int) {
	var newLastStates []int
	successorsList := make([][]int, m.HistoryCount())
	for h, lastState := range m.lastStates {
		succStates, _ := m.g.GetMove(assignment[h], lastState)
		ids := make([]int, 0, len(succStates))
		for _, s := range succStates {
			ids = append(ids, len(newLastStates))
			newLastStates = append(newLastStates, s)
		}
		successorsList[h] = ids
	}
	return newLastStates, successorsList
}

// newSubmodel returns the submodel induced by the history subset, with
// histories relabeled to the dense range 0..len(histories)-1 in ascending
// order of their old id, mirroring epmodel.py's _new_submodel.
func (m *EpistemicModel) newSubmodel(histories []int, lastStates []int, indistGraphs []*graph.Graph) *EpistemicModel {
	sorted := append([]int(nil), histories...)
	sort.Ints(sorted)
	oldToNew := make(map[int]int, len(sorted))
	for i, h := range sorted {
		oldToNew[h] = i
	}

	subLastStates := make([]int, len(sorted))
	for i, h := range sorted {
		subLastStates[i] = lastStates[h]
	}

	subIndist := make([]*graph.Graph, len(indistGraphs))
	for p, ig := range indistGraphs {
		sub := ig.Subgraph(sorted)
		subIndist[p] = sub.Relabel(func(v int) int { return oldToNew[v] })
	}

	return m.newModel(subLastStates, subIndist)
}

// resultKey encodes the successor-state tuple an assignment induces, one
// sorted successor-state list per history, as a canonical string so that
// assignments producing the same model group together.
func (m *EpistemicModel) resultKey(assignment Assignment) string {
	var b strings.Builder
	for h, lastState := range m.lastStates {
		succ, _ := m.g.GetMove(assignment[h], lastState)
		if h > 0 {
			b.WriteByte(';')
		}
		for i, s := range succ {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(s))
		}
	}
	return b.String()
}

// compatibleJointActions enumerates every joint-action assignment that is
// compatible with the model: for every player, two histories the player
// cannot tell apart are always assigned the same action.
func (m *EpistemicModel) compatibleJointActions() []Assignment {
	perPlayer := make([][][]string, m.PlayerCount())
	for p := range perPlayer {
		perPlayer[p] = m.compatibleActionsForPlayer(p)
	}

	combos := [][][]string{{}}
	for _, choices := range perPlayer {
		var next [][][]string
		for _, prefix := range combos {
			for _, choice := range choices {
				np := make([][]string, len(prefix)+1)
				copy(np, prefix)
				np[len(prefix)] = choice
				next = append(next, np)
			}
		}
		combos = next
	}

	out := make([]Assignment, 0, len(combos))
	for _, combo := range combos {
		assignment := make(Assignment, m.HistoryCount())
		for h := 0; h < m.HistoryCount(); h++ {
			ja := make(game.JointAction, m.PlayerCount())
			for p := 0; p < m.PlayerCount(); p++ {
				ja[p] = combo[p][h]
			}
			assignment[h] = ja
		}
		out = append(out, assignment)
	}
	return out
}

// compatibleActionsForPlayer enumerates every per-history action assignment
// for a single player that is constant across that player's
// indistinguishability classes.
func (m *EpistemicModel) compatibleActionsForPlayer(p int) [][]string {
	classes := m.indistGraphs[p].ConnectedComponents()
	actions := m.g.GetActions(p)

	classActionCombos := [][]string{{}}
	for range classes {
		var next [][]string
		for _, prefix := range classActionCombos {
			for _, a := range actions {
				na := make([]string, len(prefix)+1)
				copy(na, prefix)
				na[len(prefix)] = a
				next = append(next, na)
			}
		}
		classActionCombos = next
	}

	out := make([][]string, 0, len(classActionCombos))
	for _, classActions := range classActionCombos {
		assignment := make([]string, m.HistoryCount())
		for ci, class := range classes {
			for _, h := range class {
				assignment[h] = classActions[ci]
			}
		}
		out = append(out, assignment)
	}
	return out
}
