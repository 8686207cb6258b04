package game

import (
	"fmt"
	"sort"
)

// Transition names a resolved (joint action, from-state) -> to-states edge,
// used by the visualization layer to render the full transition relation.
type Transition struct {
	Action JointAction
	From   int
	To     []int
}

// SetMove overrides the successor set for (jointAction, state). next must
// be non-empty, every entry must be a valid state id, and entries must be
// unique; the stored successor list is sorted.
func (g *DistributedGame) SetMove(jointAction JointAction, state int, next []int) error {
	if state < 0 || state >= len(g.stateNames) {
		return fmt.Errorf("game: setting move at state %d: %w", state, ErrUnknownState)
	}
	if err := g.validateJointAction(jointAction); err != nil {
		return fmt.Errorf("game: setting move %v at state %d: %w", jointAction, state, err)
	}
	if len(next) == 0 {
		return fmt.Errorf("game: setting move %v at state %d: %w", jointAction, state, ErrEmptySuccessors)
	}

	seen := make(map[int]bool, len(next))
	sorted := append([]int(nil), next...)
	sort.Ints(sorted)
	for i, s := range sorted {
		if s < 0 || s >= len(g.stateNames) {
			return fmt.Errorf("game: setting move %v at state %d: successor %d: %w", jointAction, state, s, ErrUnknownState)
		}
		if seen[s] {
			return fmt.Errorf("game: setting move %v at state %d: %w", jointAction, state, ErrDuplicateSuccessor)
		}
		seen[s] = true
		_ = i
	}

	g.moves[moveKey{action: jointActionKey(jointAction), state: state}] = sorted
	return nil
}

// GetMove returns the successor states of (jointAction, state): an
// explicit override if one was set, otherwise the default self-loop
// {state}. The transition relation is total, so this never fails once the
// arguments themselves are valid.
func (g *DistributedGame) GetMove(jointAction JointAction, state int) ([]int, error) {
	if state < 0 || state >= len(g.stateNames) {
		return nil, fmt.Errorf("game: getting move at state %d: %w", state, ErrUnknownState)
	}
	if err := g.validateJointAction(jointAction); err != nil {
		return nil, fmt.Errorf("game: getting move %v at state %d: %w", jointAction, state, err)
	}

	if next, ok := g.moves[moveKey{action: jointActionKey(jointAction), state: state}]; ok {
		return append([]int(nil), next...), nil
	}
	return []int{state}, nil
}

// AllTransitions enumerates the resolved successor set of every (joint
// action, state) pair in the game, including the ones that default to a
// self-loop. Used by the visualization layer, which must draw the
// complete transition relation rather than only the overrides that were
// set explicitly.
func (g *DistributedGame) AllTransitions() []Transition {
	jointActions := g.JointActions()
	states := g.States()
	out := make([]Transition, 0, len(jointActions)*len(states))
	for _, ja := range jointActions {
		for _, s := range states {
			next, _ := g.GetMove(ja, s)
			out = append(out, Transition{Action: ja, From: s, To: next})
		}
	}
	return out
}
