package epmodel

import (
	"github.com/arvonis/epiunfold/graph"
	"github.com/arvonis/epiunfold/morph"
	"github.com/arvonis/epiunfold/retract"
)

// Core returns the homomorphic core of the model: the homomorphically
// equivalent model, unique up to isomorphism, with the fewest histories.
// A model homomorphism must be a graph homomorphism for every player's
// indistinguishability graph simultaneously, and must only ever map a
// history onto one with the same last state.
//
// If the model is already its own core, Core returns the receiver
// unchanged rather than a copy.
func (m *EpistemicModel) Core() *EpistemicModel {
	sets := make([][]morph.Mapping, m.PlayerCount())
	for p, ig := range m.indistGraphs {
		sets[p] = morph.PartitionPreserving(retract.Find(ig), m.lastStates)
	}

	intersection := morph.IntersectAll(sets)
	coreRetraction, ok := morph.MaxBySize(intersection)
	if !ok || coreRetraction.Size() == 0 {
		return m
	}

	apply := func(v int) int {
		if t, ok := coreRetraction[v]; ok {
			return t
		}
		return v
	}
	newIndist := make([]*graph.Graph, m.PlayerCount())
	for p, ig := range m.indistGraphs {
		newIndist[p] = ig.Relabel(apply)
	}

	return m.newSubmodel(newIndist[0].Nodes(), m.lastStates, newIndist)
}
