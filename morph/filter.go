package morph

// PartitionPreserving returns the subsequence of maps that preserve
// partition: a map f preserves partition iff partition[x] == partition[f[x]]
// for every x in f's domain. partition is indexed by vertex label (typically
// last_states, so partition[x] is the last state of history x).
//
// Complexity: O(len(maps) * max map size).
func PartitionPreserving(maps []Mapping, partition []int) []Mapping {
	return PartitionPreservingAcross(maps, partition, partition)
}

// PartitionPreservingAcross is the two-partition generalization of
// PartitionPreserving, for maps whose domain and codomain are different
// vertex spaces: an isomorphism between two distinct models must match
// each history to one with the same last state, looked up in the
// respective model's own partition.
func PartitionPreservingAcross(maps []Mapping, domainPartition, codomainPartition []int) []Mapping {
	out := make([]Mapping, 0, len(maps))
	for _, f := range maps {
		if preserves(f, domainPartition, codomainPartition) {
			out = append(out, f)
		}
	}

	return out
}

func preserves(f Mapping, domainPartition, codomainPartition []int) bool {
	for x, fx := range f {
		if domainPartition[x] != codomainPartition[fx] {
			return false
		}
	}

	return true
}

// Intersect returns the mappings present in both a and b, compared by Key
// (stable value equality), not by map identity. Order follows a.
// Complexity: O(len(a) + len(b)).
func Intersect(a, b []Mapping) []Mapping {
	inB := make(map[string]struct{}, len(b))
	for _, f := range b {
		inB[f.Key()] = struct{}{}
	}

	out := make([]Mapping, 0, len(a))
	for _, f := range a {
		if _, ok := inB[f.Key()]; ok {
			out = append(out, f)
		}
	}

	return out
}

// IntersectAll folds Intersect across every set in sets. Returns nil if sets
// is empty.
func IntersectAll(sets [][]Mapping) []Mapping {
	if len(sets) == 0 {
		return nil
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = Intersect(result, s)
	}

	return result
}

// MaxBySize returns the mapping in maps with the most non-identity entries,
// along with true. If maps is empty, returns (nil, false). Ties are broken
// by taking the first maximum encountered; the resulting core is unique up
// to isomorphism regardless of which maximal mapping is chosen.
func MaxBySize(maps []Mapping) (Mapping, bool) {
	if len(maps) == 0 {
		return nil, false
	}
	best := maps[0]
	for _, f := range maps[1:] {
		if f.Size() > best.Size() {
			best = f
		}
	}

	return best, true
}
