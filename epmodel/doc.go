// Package epmodel implements EpistemicModel, grounded on epmodel.py: a
// model of every player's knowledge of the history of a DistributedGame so
// far.
//
// A model comprises a set of histories — each represented only by the id
// of the state it currently ends in — and, for each player, a graph on the
// history ids recording which histories that player cannot tell apart.
// Every indistinguishability graph always carries a self-loop on every
// history, since a history is always indistinguishable from itself.
//
// Next and Unfold advance a model along joint actions and split the result
// into independent submodels when the union of the players'
// indistinguishability graphs disconnects. Core quotients a model to its
// homomorphic core via package retract, and IsIsomorphic checks isomorphism
// via package isomorphism, both restricted to mappings that preserve each
// history's final state.
package epmodel
