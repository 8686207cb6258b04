package retract_test

import (
	"testing"

	"github.com/arvonis/epiunfold/graph"
	"github.com/arvonis/epiunfold/morph"
	"github.com/arvonis/epiunfold/retract"
)

func reflexivePath(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddEdge(i, i)
		if i > 0 {
			g.AddEdge(i-1, i)
		}
	}
	return g
}

func TestFindAlwaysContainsIdentity(t *testing.T) {
	g := reflexivePath(3)
	got := retract.Find(g)
	found := false
	for _, m := range got {
		if m.Size() == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the identity retraction (empty mapping) to always be present")
	}
}

func TestFindCollapsesReflexivePathOntoOneVertex(t *testing.T) {
	// 0 - 1 - 2, every vertex self-looped: every constant map is a
	// homomorphism of a reflexive graph, so the path retracts onto any one
	// of its vertices; which one is found first is not significant.
	g := reflexivePath(3)
	maps := retract.Find(g)

	best, ok := morph.MaxBySize(maps)
	if !ok {
		t.Fatalf("expected at least the identity mapping")
	}
	if best.Size() != 2 {
		t.Fatalf("expected the maximum retraction to collapse two vertices onto the third, got size %d (%v)", best.Size(), best)
	}
	target := -1
	for v := 0; v < 3; v++ {
		if _, moved := best[v]; !moved {
			target = v
		}
	}
	for v, r := range best {
		if r != target {
			t.Fatalf("expected vertex %d to map onto the remaining vertex %d, got %v", v, target, best)
		}
	}
}

func TestFindOnSingleSelfLoopVertex(t *testing.T) {
	g := graph.New()
	g.AddEdge(0, 0)
	maps := retract.Find(g)
	if len(maps) != 1 || maps[0].Size() != 0 {
		t.Fatalf("a single vertex only admits the identity retraction, got %v", maps)
	}
}

func TestFindCollapsesTwoIsomorphicIsolatedLoops(t *testing.T) {
	// Two disjoint self-looped points are homomorphically equivalent: the
	// graph retracts onto either one of them.
	g := graph.New()
	g.AddEdge(0, 0)
	g.AddEdge(1, 1)
	maps := retract.Find(g)
	best, ok := morph.MaxBySize(maps)
	if !ok || best.Size() != 1 {
		t.Fatalf("expected a size-1 retraction collapsing the two isolated loops, got %v", maps)
	}
}
