package unfold

import (
	"github.com/arvonis/epiunfold/epmodel"
	"github.com/arvonis/epiunfold/game"
)

// queueItem pairs a location's model with its index in the result's
// Locations slice.
type queueItem struct {
	model *epmodel.EpistemicModel
	index int
}

// walker encapsulates mutable state for the unfolding BFS.
type walker struct {
	opts   Options
	queue  []queueItem
	result *Result
}

// Unfold fully unfolds g's epistemic model, starting from its initial
// state, returning every distinct location discovered (up to isomorphism)
// and the transitions between them.
func Unfold(g *game.DistributedGame, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	init := epmodel.NewInitialModel(g)
	w := &walker{
		opts: o,
		result: &Result{
			Locations:    []*epmodel.EpistemicModel{init},
			InitialIndex: 0,
			Transitions:  make(map[TransitionKey][]epmodel.Assignment),
		},
	}
	w.queue = append(w.queue, queueItem{model: init, index: 0})

	return w.result, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.model, item.index)

		successors := item.model.Unfold(w.opts.Core)
		w.opts.OnSuccessors(item.model, successors)

		for _, succ := range successors {
			nextIndex := w.resolveLocation(succ.Model)
			key := TransitionKey{From: item.index, To: nextIndex}
			w.result.Transitions[key] = append(w.result.Transitions[key], succ.Actions...)
		}
	}
	return nil
}

// resolveLocation returns the index of model's location: an existing one
// if model is isomorphic to an already-discovered location, otherwise a
// freshly appended one which is also enqueued for further unfolding.
func (w *walker) resolveLocation(model *epmodel.EpistemicModel) int {
	for i, loc := range w.result.Locations {
		if model.IsIsomorphic(loc) {
			w.opts.OnRepetition(model, i)
			return i
		}
	}

	index := len(w.result.Locations)
	w.result.Locations = append(w.result.Locations, model)
	w.opts.OnNewLocation(model, index)
	w.queue = append(w.queue, queueItem{model: model, index: index})
	return index
}
