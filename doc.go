// Command and library epiunfold computes the epistemic unfolding up to
// homomorphic cores of a finite distributed game of imperfect information.
//
// Given a game in which each state may be indistinguishable from others to
// a given player, epiunfold symbolically explores every reachable epistemic
// model — a set of histories linked by per-player indistinguishability —
// quotients each by its homomorphic core, deduplicates by isomorphism, and
// emits the resulting graph of epistemic situations connected by joint
// strategies.
//
// Package layout, leaves first:
//
//	graph/       — undirected graph kernel: components, subgraphs, relabeling
//	morph/       — vertex mappings: partition preservation, set intersection
//	retract/     — homomorphic retraction search over a single graph
//	isomorphism/ — graph isomorphism search between two graphs
//	game/        — distributed games: states, players, actions, indistinguishability
//	gamefile/    — the game file text format reader
//	epmodel/     — epistemic models: next, unfold, core, isomorphism
//	unfold/      — the breadth-first unfolding driver
//	vizdot/      — DOT/PNG rendering of games and unfoldings
//	cmd/epiunfold — the command-line entry point
package epiunfold
