package epmodel

import (
	"sort"

	"github.com/arvonis/epiunfold/isomorphism"
	"github.com/arvonis/epiunfold/morph"
)

// IsIsomorphic reports whether m and other are isomorphic: there exists,
// for every player simultaneously, a graph isomorphism between the two
// players' indistinguishability graphs, with a single morphism common to
// all players, that only ever maps a history to one with the same last
// state.
func (m *EpistemicModel) IsIsomorphic(other *EpistemicModel) bool {
	if m.HistoryCount() != other.HistoryCount() {
		return false
	}
	if m.PlayerCount() != other.PlayerCount() {
		return false
	}

	a := append([]int(nil), m.lastStates...)
	b := append([]int(nil), other.lastStates...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	sets := make([][]morph.Mapping, m.PlayerCount())
	for p := range m.indistGraphs {
		maps := isomorphism.Find(m.indistGraphs[p], other.indistGraphs[p])
		sets[p] = morph.PartitionPreservingAcross(maps, m.lastStates, other.lastStates)
	}

	// Trimmed mappings omit fixed points, which the partition filter
	// therefore never sees; a fixed point must keep its last state too.
	for _, f := range morph.IntersectAll(sets) {
		ok := true
		for h, s := range m.lastStates {
			if _, moved := f[h]; !moved && other.lastStates[h] != s {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
