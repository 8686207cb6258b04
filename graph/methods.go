package graph

import "sort"

// Nodes returns all vertex labels in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Edges returns all edges as normalized (u, v) pairs with u <= v, sorted
// lexicographically. Complexity: O(E log E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, [2]int{k.u, k.v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// Neighbors returns the vertices adjacent to v, including v itself if v has
// a self-loop, in ascending order. Complexity: O(E) (scans the edge set;
// fine at the scale this module operates on).
func (g *Graph) Neighbors(v int) []int {
	seen := make(map[int]struct{})
	for k := range g.edges {
		if k.u == v {
			seen[k.v] = struct{}{}
		} else if k.v == v {
			seen[k.u] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of distinct neighbors of v (a self-loop counts
// v itself once). Complexity: O(E).
func (g *Graph) Degree(v int) int {
	return len(g.Neighbors(v))
}

// Clone returns a deep copy of g. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := New()
	for v := range g.nodes {
		out.nodes[v] = struct{}{}
	}
	for k := range g.edges {
		out.edges[k] = struct{}{}
	}

	return out
}
