package game

import (
	"fmt"

	"github.com/arvonis/epiunfold/graph"
)

// DistributedGame is a finite multiplayer state-transition system. States
// are the ids 0..len(stateNames)-1; players are the ids 0..len(actions)-1.
type DistributedGame struct {
	stateNames   []string
	initialState int
	actionsList  [][]string
	indist       []*graph.Graph
	moves        map[moveKey][]int
}

// moveKey identifies a (joint action, state) pair. action is the joint
// action's components joined with the ASCII unit separator (\x1f), so the
// joined form is a faithful key as long as no action name contains that
// control character.
type moveKey struct {
	action string
	state  int
}

func jointActionKey(ja JointAction) string {
	key := ""
	for i, a := range ja {
		if i > 0 {
			key += "\x1f"
		}
		key += a
	}
	return key
}

// New builds a DistributedGame over the given state names, with the given
// initial state, one action set per player, and one indistinguishability
// class list per player. Every transition defaults to the self-loop
// {state} until overridden with SetMove.
func New(stateNames []string, initialState int, actionsList [][]string, indistClasses [][][]int) (*DistributedGame, error) {
	if len(actionsList) != len(indistClasses) {
		return nil, ErrPlayerCountMismatch
	}
	if initialState < 0 || initialState >= len(stateNames) {
		return nil, ErrInvalidInitialState
	}

	dedupedActions := make([][]string, len(actionsList))
	for p, actions := range actionsList {
		dedupedActions[p] = dedupeStrings(actions)
	}

	indist := make([]*graph.Graph, len(indistClasses))
	for p, classes := range indistClasses {
		g, err := buildIndistGraph(classes, len(stateNames))
		if err != nil {
			return nil, fmt.Errorf("game: building indistinguishability graph for player %d: %w", p, err)
		}
		indist[p] = g
	}

	return &DistributedGame{
		stateNames:   append([]string(nil), stateNames...),
		initialState: initialState,
		actionsList:  dedupedActions,
		indist:       indist,
		moves:        make(map[moveKey][]int),
	}, nil
}

// dedupeStrings keeps the first occurrence of each string, preserving
// order; a deterministic alternative to Python's set-backed deduplication.
func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// States returns every state id, 0..len(stateNames)-1.
func (g *DistributedGame) States() []int {
	out := make([]int, len(g.stateNames))
	for i := range out {
		out[i] = i
	}
	return out
}

// StateName returns the display name of a state id.
func (g *DistributedGame) StateName(state int) string {
	return g.stateNames[state]
}

// InitialState returns the id of the game's initial state.
func (g *DistributedGame) InitialState() int {
	return g.initialState
}

// Players returns every player id, 0..PlayerCount()-1.
func (g *DistributedGame) Players() []int {
	out := make([]int, len(g.actionsList))
	for i := range out {
		out[i] = i
	}
	return out
}

// PlayerCount returns the number of players.
func (g *DistributedGame) PlayerCount() int {
	return len(g.actionsList)
}

// GetActions returns player p's action set.
func (g *DistributedGame) GetActions(p int) []string {
	return g.actionsList[p]
}

// JointActions returns the cross product of every player's action set, one
// player varying fastest... rightmost, matching the natural nested-loop
// enumeration order.
func (g *DistributedGame) JointActions() []JointAction {
	if len(g.actionsList) == 0 {
		return []JointAction{{}}
	}
	out := []JointAction{{}}
	for _, actions := range g.actionsList {
		var next []JointAction
		for _, prefix := range out {
			for _, a := range actions {
				ja := make(JointAction, len(prefix)+1)
				copy(ja, prefix)
				ja[len(prefix)] = a
				next = append(next, ja)
			}
		}
		out = next
	}
	return out
}

// validateJointAction checks arity and that every component is a legal
// action for its player.
func (g *DistributedGame) validateJointAction(ja JointAction) error {
	if len(ja) != len(g.actionsList) {
		return ErrBadJointActionArity
	}
	for p, a := range ja {
		ok := false
		for _, allowed := range g.actionsList[p] {
			if allowed == a {
				ok = true
				break
			}
		}
		if !ok {
			return ErrUnknownAction
		}
	}
	return nil
}
