package retract

import (
	"sort"

	"github.com/arvonis/epiunfold/graph"
	"github.com/arvonis/epiunfold/morph"
)

// Find returns every retraction of g, trimmed to {v -> r(v) : r(v) != v}.
// The identity retraction (image = every vertex) is always present in the
// result as the empty Mapping, matching epmodel.Core's expectation that if
// the intersection contains only the identity, the model is already a
// core.
//
// Complexity: exponential in |V| in the worst case (2^|V| candidate images,
// each searched by backtracking) — acceptable at the scale this search runs
// over (tens of histories), not at arbitrary scale.
func Find(g *graph.Graph) []morph.Mapping {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return []morph.Mapping{{}}
	}

	var out []morph.Mapping
	image := make([]int, 0, n)
	var walkImages func(idx int)
	walkImages = func(idx int) {
		if idx == n {
			if len(image) == 0 {
				return // the empty image never admits a valid retraction
			}
			out = append(out, searchImage(g, nodes, image)...)
			return
		}
		// try nodes[idx] out of the image
		walkImages(idx + 1)
		// try nodes[idx] in the image
		image = append(image, nodes[idx])
		walkImages(idx + 1)
		image = image[:len(image)-1]
	}
	walkImages(0)

	return out
}

// searchImage returns every trimmed retraction whose image is exactly
// image: every vertex of image maps to itself, and every vertex of
// nodes\image is assigned, by backtracking, a value in image consistent
// with being a graph homomorphism.
func searchImage(g *graph.Graph, nodes, image []int) []morph.Mapping {
	fixed := make(map[int]struct{}, len(image))
	for _, v := range image {
		fixed[v] = struct{}{}
	}

	var domain []int
	for _, v := range nodes {
		if _, ok := fixed[v]; !ok {
			domain = append(domain, v)
		}
	}
	if len(domain) == 0 {
		// image == V: the only retraction is the identity, trimmed to {}.
		return []morph.Mapping{{}}
	}

	// Symmetry break: process the highest-degree vertices first, so
	// failure is detected as early as possible.
	sort.Slice(domain, func(i, j int) bool { return g.Degree(domain[i]) > g.Degree(domain[j]) })

	assigned := make(map[int]int, len(domain))
	var out []morph.Mapping
	var backtrack func(i int)
	backtrack = func(i int) {
		if i == len(domain) {
			trimmed := make(morph.Mapping, len(assigned))
			for v, r := range assigned {
				trimmed[v] = r
			}
			out = append(out, trimmed)
			return
		}
		v := domain[i]
		for _, c := range image {
			if consistent(g, v, c, assigned, fixed) {
				assigned[v] = c
				backtrack(i + 1)
				delete(assigned, v)
			}
		}
	}
	backtrack(0)

	return out
}

// consistent reports whether assigning v -> c preserves the homomorphism
// constraint against every neighbor of v that already has an image: a fixed
// neighbor (in image, mapped to itself) requires edge(c, neighbor); an
// already-assigned domain neighbor requires edge(c, assigned[neighbor]).
// Unassigned domain neighbors are skipped; their constraint is checked when
// they, in turn, are assigned.
func consistent(g *graph.Graph, v, c int, assigned map[int]int, fixed map[int]struct{}) bool {
	for _, u := range g.Neighbors(v) {
		if u == v {
			// v has a self-loop: c must have one too, since r(v)=c, r(v)=c
			// implies the image edge (c,c) must exist.
			if !g.HasEdge(c, c) {
				return false
			}
			continue
		}
		if _, isFixed := fixed[u]; isFixed {
			if !g.HasEdge(c, u) {
				return false
			}
			continue
		}
		if ru, ok := assigned[u]; ok {
			if !g.HasEdge(c, ru) {
				return false
			}
		}
	}

	return true
}
