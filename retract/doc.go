// Package retract implements the homomorphic retraction finder: given a
// graph G, it enumerates every retraction r: V -> V, i.e. every idempotent
// vertex mapping that is a homomorphism of G into itself and fixes its own
// image pointwise.
//
// This is the single hottest code path in the system: for each candidate
// image subset I of V, the search looks for a homomorphism V -> I that
// fixes I pointwise, backtracking over the vertices outside I in
// descending-degree order and pruning candidates whose neighborhood in I
// cannot cover the partial assignment's constraints.
//
// No traversal/search package in the corpus implements subgraph-homomorphism
// search directly; this package is grounded in spirit on recursive-descent
// backtracking (dfs.dfsWalker) and augmenting-search backtracking
// (flow.ford_fulkerson), applied to a different problem.
package retract
