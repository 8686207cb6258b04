// Package gamefile reads a DistributedGame from a plain-text format,
// grounded on distgame.py's load_game and its _read_* helpers. The format
// has five fixed sections in order — actions, locations, initial location,
// observations, transitions — each introduced by a discarded header line
// and terminated by a blank line.
package gamefile
