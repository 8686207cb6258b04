// Package isomorphism implements a VF2-style graph isomorphism finder:
// given two graphs of equal order, it enumerates every bijection
// V(G1) -> V(G2) that preserves edges in both directions, returning each
// in the trimmed form {v -> phi(v) : v != phi(v)}.
//
// The search shares its backtracking skeleton with package retract, since
// both are constraint-satisfaction searches over vertex assignments pruned
// by adjacency; the corpus carries no existing implementation of either.
package isomorphism
