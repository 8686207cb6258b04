package gamefile

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/arvonis/epiunfold/game"
)

// Read opens the game file at path and parses it into a DistributedGame.
// The file handle is closed on every return path.
func Read(path string) (*game.DistributedGame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gamefile: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("gamefile: reading %s: %w", path, err)
	}
	return g, nil
}

// Parse reads a game in the gamefile format from r.
func Parse(r io.Reader) (*game.DistributedGame, error) {
	lr, err := newLineReader(r)
	if err != nil {
		return nil, err
	}

	actionsTable, err := readActions(lr)
	if err != nil {
		return nil, err
	}
	locations, err := readLocations(lr)
	if err != nil {
		return nil, err
	}
	initial, err := readInitialLocation(lr)
	if err != nil {
		return nil, err
	}
	observations, err := readObservations(lr)
	if err != nil {
		return nil, err
	}
	transitions, err := readTransitions(lr, actionsTable)
	if err != nil {
		return nil, err
	}

	g, err := game.New(locations, initial, actionsTable, observations)
	if err != nil {
		return nil, fmt.Errorf("gamefile: constructing game: %w", err)
	}

	for _, rt := range transitions {
		to := make([]int, 0, len(rt.to))
		for s := range rt.to {
			to = append(to, s)
		}
		sort.Ints(to)
		if err := g.SetMove(game.JointAction(rt.action), rt.from, to); err != nil {
			return nil, fmt.Errorf("gamefile: setting transition from state %d: %w", rt.from, err)
		}
	}

	return g, nil
}
