// Package vizdot renders a DistributedGame, an EpistemicModel, and an
// unfolding's location graph as DOT text and PNG images, grounded on
// main.py's to_pydot/_model_to_dot/_game_to_dot and
// distgame.py's DistributedGame.to_pydot.
//
// No Go graphviz-binding library appears anywhere in the corpus this
// module was built from (the Python original renders with pydot, which
// itself just shells out to the `dot` binary). This package hand-rolls the
// DOT text generation pydot would have produced and renders PNGs the same
// way main.py's CLI entry point does: by invoking the `dot` binary
// directly.
package vizdot
