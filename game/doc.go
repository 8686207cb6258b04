// Package game implements DistributedGame, grounded on distgame.py: a
// finite multiplayer state-transition system in which each state may be
// indistinguishable from others to any given player, and a single
// transition is decided by a joint action — one action per player.
//
// The transition relation is total: every (joint action, state) pair maps
// to a non-empty set of successor states, defaulting to the deterministic
// self-loop {state} when not set explicitly.
//
// Errors follow a sentinel-plus-wrap convention (core/types.go,
// bfs/types.go): package-scoped errors.New values, wrapped with
// fmt.Errorf("game: ...: %w", ...) at the call site for context.
package game
