package epmodel_test

import (
	"testing"

	"github.com/arvonis/epiunfold/epmodel"
	"github.com/arvonis/epiunfold/game"
)

func TestNewInitialModelSingleHistory(t *testing.T) {
	g, err := game.New([]string{"a"}, 0, [][]string{{"x"}}, [][][]int{{{0}}})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	m := epmodel.NewInitialModel(g)
	if m.HistoryCount() != 1 {
		t.Fatalf("expected 1 history, got %d", m.HistoryCount())
	}
	if !m.IndistGraph(0).HasEdge(0, 0) {
		t.Fatalf("expected the initial history to be self-indistinguishable")
	}
}

func TestNextMergesIndistinguishableSuccessors(t *testing.T) {
	// a -> {p, q}; player 0 cannot tell p and q apart.
	g, err := game.New(
		[]string{"a", "p", "q"},
		0,
		[][]string{{"go"}},
		[][][]int{{{0}, {1, 2}}},
	)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := g.SetMove(game.JointAction{"go"}, 0, []int{1, 2}); err != nil {
		t.Fatalf("SetMove: %v", err)
	}

	m0 := epmodel.NewInitialModel(g)
	models := m0.Next(epmodel.Assignment{game.JointAction{"go"}}, false)
	if len(models) != 1 {
		t.Fatalf("expected a single connected successor model, got %d", len(models))
	}
	next := models[0]
	if next.HistoryCount() != 2 {
		t.Fatalf("expected 2 histories, got %d", next.HistoryCount())
	}
	if !next.IndistGraph(0).HasEdge(0, 1) {
		t.Fatalf("expected the two new histories to remain indistinguishable to player 0")
	}
}

func TestNextSplitsIntoIndependentSubmodels(t *testing.T) {
	// a -> {x, y}; player 0 distinguishes every state, so the two new
	// histories share no indistinguishability edge and must split.
	g, err := game.New(
		[]string{"a", "x", "y"},
		0,
		[][]string{{"go"}},
		[][][]int{{{0}, {1}, {2}}},
	)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := g.SetMove(game.JointAction{"go"}, 0, []int{1, 2}); err != nil {
		t.Fatalf("SetMove: %v", err)
	}

	m0 := epmodel.NewInitialModel(g)
	models := m0.Next(epmodel.Assignment{game.JointAction{"go"}}, false)
	if len(models) != 2 {
		t.Fatalf("expected the successor to split into 2 submodels, got %d", len(models))
	}
	for _, sub := range models {
		if sub.HistoryCount() != 1 {
			t.Fatalf("expected each submodel to contain exactly 1 history, got %d", sub.HistoryCount())
		}
	}
}

func TestUnfoldGroupsCompatibleActionsByResult(t *testing.T) {
	g, err := game.New([]string{"a", "b"}, 0, [][]string{{"x", "y"}}, [][][]int{{{0}, {1}}})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := g.SetMove(game.JointAction{"x"}, 0, []int{1}); err != nil {
		t.Fatalf("SetMove: %v", err)
	}
	if err := g.SetMove(game.JointAction{"y"}, 0, []int{1}); err != nil {
		t.Fatalf("SetMove: %v", err)
	}

	m0 := epmodel.NewInitialModel(g)
	successors := m0.Unfold(false)
	if len(successors) != 1 {
		t.Fatalf("expected actions x and y to be grouped into 1 successor (both reach b), got %d", len(successors))
	}
	if len(successors[0].Actions) != 2 {
		t.Fatalf("expected 2 joint-action assignments to map to the single successor, got %d", len(successors[0].Actions))
	}
}

func TestCoreCollapsesIndistinguishableHistoriesWithSameLastState(t *testing.T) {
	g, err := game.New(
		[]string{"a", "p", "q", "b"},
		0,
		[][]string{{"go", "stay"}},
		[][][]int{{{0}, {1, 2}, {3}}},
	)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := g.SetMove(game.JointAction{"go"}, 0, []int{1, 2}); err != nil {
		t.Fatalf("SetMove a->{p,q}: %v", err)
	}
	if err := g.SetMove(game.JointAction{"stay"}, 1, []int{3}); err != nil {
		t.Fatalf("SetMove p->b: %v", err)
	}
	if err := g.SetMove(game.JointAction{"stay"}, 2, []int{3}); err != nil {
		t.Fatalf("SetMove q->b: %v", err)
	}

	m0 := epmodel.NewInitialModel(g)
	step1 := m0.Next(epmodel.Assignment{game.JointAction{"go"}}, false)
	if len(step1) != 1 || step1[0].HistoryCount() != 2 {
		t.Fatalf("setup failed: expected 1 model with 2 histories after step 1")
	}
	m1 := step1[0]

	step2 := m1.Next(epmodel.Assignment{game.JointAction{"stay"}, game.JointAction{"stay"}}, false)
	if len(step2) != 1 || step2[0].HistoryCount() != 2 {
		t.Fatalf("setup failed: expected 1 model with 2 histories after step 2, got %+v", step2)
	}

	cored := step2[0].Core()
	if cored.HistoryCount() != 1 {
		t.Fatalf("expected the two histories, both ending in b and mutually indistinguishable, to collapse to 1, got %d", cored.HistoryCount())
	}
}

func TestIsIsomorphicSameModel(t *testing.T) {
	g, err := game.New([]string{"a"}, 0, [][]string{{"x"}}, [][][]int{{{0}}})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	m1 := epmodel.NewInitialModel(g)
	m2 := epmodel.NewInitialModel(g)
	if !m1.IsIsomorphic(m2) {
		t.Fatalf("expected two freshly initialized models over the same game to be isomorphic")
	}
}

func TestIsIsomorphicDifferentHistoryCountIsFalse(t *testing.T) {
	g, err := game.New(
		[]string{"a", "p", "q"},
		0,
		[][]string{{"go"}},
		[][][]int{{{0}, {1, 2}}},
	)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := g.SetMove(game.JointAction{"go"}, 0, []int{1, 2}); err != nil {
		t.Fatalf("SetMove: %v", err)
	}
	m0 := epmodel.NewInitialModel(g)
	next := m0.Next(epmodel.Assignment{game.JointAction{"go"}}, false)[0]
	if m0.IsIsomorphic(next) {
		t.Fatalf("expected models with different history counts to be non-isomorphic")
	}
}
