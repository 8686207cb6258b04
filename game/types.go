package game

import "errors"

// JointAction is a tuple with one action name per player, in player-index
// order.
type JointAction []string

// Sentinel errors for DistributedGame construction and access.
var (
	// ErrPlayerCountMismatch indicates the actions list and the
	// indistinguishability classes list have different lengths; both
	// describe one entry per player.
	ErrPlayerCountMismatch = errors.New("game: actions list and indistinguishability classes list have different lengths")

	// ErrInvalidInitialState indicates the initial state is not a valid
	// state id.
	ErrInvalidInitialState = errors.New("game: initial state is not a valid state id")

	// ErrUnknownState indicates a state id outside 0..|S|-1.
	ErrUnknownState = errors.New("game: unknown state id")

	// ErrBadJointActionArity indicates a joint action's length does not
	// equal the player count.
	ErrBadJointActionArity = errors.New("game: joint action arity does not match player count")

	// ErrUnknownAction indicates some player's action in a joint action is
	// not in that player's action set.
	ErrUnknownAction = errors.New("game: action cannot be performed by the corresponding player")

	// ErrEmptySuccessors indicates a move was set to an empty successor set.
	ErrEmptySuccessors = errors.New("game: successor states must be non-empty")

	// ErrDuplicateSuccessor indicates a move's successor list contained a
	// repeated state id.
	ErrDuplicateSuccessor = errors.New("game: successor states must be unique")

	// ErrClassesNotPartition indicates an indistinguishability class list
	// assigns some state id to more than one class.
	ErrClassesNotPartition = errors.New("game: indistinguishability classes must partition the state ids, with no state id repeated")
)
