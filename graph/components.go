package graph

import "sort"

// ConnectedComponents partitions g's nodes into maximal connected subsets.
// A vertex whose only incident edge is its own self-loop still forms a
// singleton component. Components are returned sorted by their smallest
// member, and each component's members are sorted ascending, for
// determinism. Complexity: O(V * E), since Neighbors scans the edge set
// for every visited vertex.
func (g *Graph) ConnectedComponents() [][]int {
	visited := make(map[int]bool, len(g.nodes))
	var components [][]int

	nodes := g.Nodes()
	for _, start := range nodes {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var comp []int
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, n := range g.Neighbors(v) {
				if n == v {
					continue // self-loop does not grow the component
				}
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	return components
}

// Subgraph returns the vertex-induced subgraph on nodeSet: every vertex in
// nodeSet, plus every edge of g with both endpoints in nodeSet.
// Complexity: O(V + E).
func (g *Graph) Subgraph(nodeSet []int) *Graph {
	keep := make(map[int]struct{}, len(nodeSet))
	for _, v := range nodeSet {
		keep[v] = struct{}{}
	}

	out := New()
	for v := range keep {
		out.AddNode(v)
	}
	for k := range g.edges {
		_, ku := keep[k.u]
		_, kv := keep[k.v]
		if ku && kv {
			out.AddEdge(k.u, k.v)
		}
	}

	return out
}

// Relabel returns a new graph with every vertex v renamed to mapping(v).
// Edges whose endpoints collapse onto the same pair of new labels merge
// into a single edge, as required when a retraction identifies vertices.
// Complexity: O(V + E).
func (g *Graph) Relabel(mapping func(int) int) *Graph {
	out := New()
	for v := range g.nodes {
		out.AddNode(mapping(v))
	}
	for k := range g.edges {
		out.AddEdge(mapping(k.u), mapping(k.v))
	}

	return out
}

// ConvertLabelsToIntegers returns a new graph whose vertices are bijectively
// renamed to the dense range 0..n-1, ordered by ascending original label,
// together with the inverse mapping (new label -> original label).
// Complexity: O(V log V + E).
func (g *Graph) ConvertLabelsToIntegers() (*Graph, map[int]int) {
	nodes := g.Nodes()
	forward := make(map[int]int, len(nodes))
	inverse := make(map[int]int, len(nodes))
	for i, v := range nodes {
		forward[v] = i
		inverse[i] = v
	}

	return g.Relabel(func(v int) int { return forward[v] }), inverse
}
