// Package unfold provides the breadth-first driver that fully unfolds a
// distributed game's epistemic model, grounded on unfold_fully in main.py,
// in a functional-option walker style (bfs/types.go, bfs/bfs.go).
package unfold

import (
	"context"
	"errors"

	"github.com/arvonis/epiunfold/epmodel"
)

// ErrGameNil is returned if a nil game is passed to Unfold.
var ErrGameNil = errors.New("unfold: game is nil")

// Option configures the unfolding walk via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the unfolding walk.
type Options struct {
	// Ctx allows cancellation of a long-running unfolding.
	Ctx context.Context

	// Core selects whether every successor model is quotiented to its
	// homomorphic core before being compared for repetition.
	Core bool

	// OnDequeue is called when a location is popped off the BFS queue,
	// before it is unfolded, with its model and its index in Locations.
	OnDequeue func(model *epmodel.EpistemicModel, index int)

	// OnSuccessors is called once per dequeued location with the raw
	// successors produced by EpistemicModel.Unfold, before repetition
	// checking.
	OnSuccessors func(model *epmodel.EpistemicModel, successors []epmodel.Successor)

	// OnNewLocation is called when a successor model is not isomorphic to
	// any previously discovered location and is appended as a new one.
	OnNewLocation func(model *epmodel.EpistemicModel, index int)

	// OnRepetition is called when a successor model is isomorphic to an
	// already-discovered location, identified by its index.
	OnRepetition func(model *epmodel.EpistemicModel, existingIndex int)
}

// DefaultOptions returns Options with sane defaults: a background context,
// core-quotienting enabled, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Core:          true,
		OnDequeue:     func(*epmodel.EpistemicModel, int) {},
		OnSuccessors:  func(*epmodel.EpistemicModel, []epmodel.Successor) {},
		OnNewLocation: func(*epmodel.EpistemicModel, int) {},
		OnRepetition:  func(*epmodel.EpistemicModel, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCore toggles whether successor models are quotiented to their
// homomorphic core before repetition checking. Disabling this generally
// produces unwieldy unfoldings (the CLI's -c/--skip-core flag).
func WithCore(core bool) Option {
	return func(o *Options) { o.Core = core }
}

// WithOnDequeue registers a callback run when a location starts being
// unfolded.
func WithOnDequeue(fn func(model *epmodel.EpistemicModel, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnSuccessors registers a callback run with a location's raw,
// pre-deduplication successor list.
func WithOnSuccessors(fn func(model *epmodel.EpistemicModel, successors []epmodel.Successor)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSuccessors = fn
		}
	}
}

// WithOnNewLocation registers a callback run when a genuinely new location
// is discovered.
func WithOnNewLocation(fn func(model *epmodel.EpistemicModel, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNewLocation = fn
		}
	}
}

// WithOnRepetition registers a callback run when a successor turns out to
// be isomorphic to an already-discovered location.
func WithOnRepetition(fn func(model *epmodel.EpistemicModel, existingIndex int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRepetition = fn
		}
	}
}

// TransitionKey identifies an edge of the unfolded location graph by the
// index of its source and destination locations.
type TransitionKey struct {
	From, To int
}

// Result is the outcome of fully unfolding a game's epistemic model.
type Result struct {
	// Locations holds every distinct epistemic model discovered, up to
	// isomorphism, in discovery order; Locations[InitialIndex] is the
	// model for the game's initial state.
	Locations []*epmodel.EpistemicModel

	// InitialIndex is always 0: the initial model is always discovered
	// first.
	InitialIndex int

	// Transitions maps a location pair to every joint-action assignment
	// (grouped by induced result) that drives the transition.
	Transitions map[TransitionKey][]epmodel.Assignment
}
