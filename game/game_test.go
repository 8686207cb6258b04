package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonis/epiunfold/game"
)

func twoPlayerCoinGame(t *testing.T) *game.DistributedGame {
	t.Helper()
	// Three states: 0 = start, 1 = heads revealed, 2 = tails revealed.
	// Player 0 (the flipper) distinguishes all three; player 1 cannot
	// tell 1 and 2 apart until told.
	g, err := game.New(
		[]string{"start", "heads", "tails"},
		0,
		[][]string{{"flip"}, {"wait"}},
		[][][]int{
			{{0}, {1}, {2}},
			{{0}, {1, 2}},
		},
	)
	require.NoError(t, err)
	require.NoError(t, g.SetMove(game.JointAction{"flip", "wait"}, 0, []int{1, 2}))
	return g
}

func TestNewRejectsPlayerCountMismatch(t *testing.T) {
	_, err := game.New([]string{"s0"}, 0, [][]string{{"a"}}, [][][]int{})
	assert.ErrorIs(t, err, game.ErrPlayerCountMismatch)
}

func TestNewRejectsBadInitialState(t *testing.T) {
	_, err := game.New([]string{"s0"}, 5, [][]string{{"a"}}, [][][]int{{{0}}})
	assert.ErrorIs(t, err, game.ErrInvalidInitialState)
}

func TestNewAllowsOmittedStatesAsImplicitSingletons(t *testing.T) {
	g, err := game.New([]string{"s0", "s1"}, 0, [][]string{{"a"}}, [][][]int{{{0}}})
	require.NoError(t, err, "state 1, omitted from every class, should become an implicit singleton")
	assert.True(t, g.AreDistinguishable(0, 0, 1), "states in different implicit/explicit singleton classes should be distinguishable")
}

func TestNewRejectsOverlappingClasses(t *testing.T) {
	_, err := game.New([]string{"s0", "s1"}, 0, [][]string{{"a"}}, [][][]int{{{0, 1}, {0}}})
	assert.ErrorIs(t, err, game.ErrClassesNotPartition)
}

func TestGetMoveDefaultsToSelfLoop(t *testing.T) {
	g := twoPlayerCoinGame(t)
	next, err := g.GetMove(game.JointAction{"flip", "wait"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, next)
}

func TestGetMoveReturnsExplicitOverride(t *testing.T) {
	g := twoPlayerCoinGame(t)
	next, err := g.GetMove(game.JointAction{"flip", "wait"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, next)
}

func TestSetMoveRejectsEmptySuccessors(t *testing.T) {
	g := twoPlayerCoinGame(t)
	err := g.SetMove(game.JointAction{"flip", "wait"}, 0, nil)
	assert.ErrorIs(t, err, game.ErrEmptySuccessors)
}

func TestSetMoveRejectsDuplicateSuccessor(t *testing.T) {
	g := twoPlayerCoinGame(t)
	err := g.SetMove(game.JointAction{"flip", "wait"}, 0, []int{1, 1})
	assert.ErrorIs(t, err, game.ErrDuplicateSuccessor)
}

func TestGetMoveRejectsWrongArity(t *testing.T) {
	g := twoPlayerCoinGame(t)
	_, err := g.GetMove(game.JointAction{"flip"}, 0)
	assert.ErrorIs(t, err, game.ErrBadJointActionArity)
}

func TestGetMoveRejectsUnknownAction(t *testing.T) {
	g := twoPlayerCoinGame(t)
	_, err := g.GetMove(game.JointAction{"nope", "wait"}, 0)
	assert.ErrorIs(t, err, game.ErrUnknownAction)
}

func TestAreDistinguishable(t *testing.T) {
	g := twoPlayerCoinGame(t)
	assert.True(t, g.AreDistinguishable(0, 1, 2), "player 0 should distinguish heads from tails")
	assert.False(t, g.AreDistinguishable(1, 1, 2), "player 1 should not distinguish heads from tails before being told")
}

func TestJointActionsIsCrossProduct(t *testing.T) {
	g := twoPlayerCoinGame(t)
	assert.Len(t, g.JointActions(), 1)
}

func TestAllTransitionsCoversEveryPairIncludingDefaults(t *testing.T) {
	g := twoPlayerCoinGame(t)
	// 1 joint action * 3 states = 3 transitions.
	assert.Len(t, g.AllTransitions(), 3)
}
