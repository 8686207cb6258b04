package morph_test

import (
	"testing"

	"github.com/arvonis/epiunfold/morph"
)

func TestMappingKeyOrderIndependent(t *testing.T) {
	a := morph.Mapping{1: 2, 3: 4}
	b := morph.Mapping{3: 4, 1: 2}
	if a.Key() != b.Key() {
		t.Fatalf("expected equal keys for the same mapping built in different orders")
	}
	if !a.Equal(b) {
		t.Fatalf("expected a.Equal(b)")
	}
}

func TestMappingKeyDistinguishesDifferentMappings(t *testing.T) {
	a := morph.Mapping{1: 2}
	b := morph.Mapping{1: 3}
	if a.Key() == b.Key() {
		t.Fatalf("expected distinct keys for distinct mappings")
	}
}

func TestPartitionPreserving(t *testing.T) {
	partition := []int{0, 0, 1} // vertices 0,1 share a label; 2 differs
	maps := []morph.Mapping{
		{0: 1}, // preserves: partition[0]==partition[1]
		{0: 2}, // violates: partition[0]!=partition[2]
		{},     // identity always preserves
	}
	got := morph.PartitionPreserving(maps, partition)
	if len(got) != 2 {
		t.Fatalf("expected 2 partition-preserving maps, got %d: %v", len(got), got)
	}
}

func TestIntersectAndMaxBySize(t *testing.T) {
	a := []morph.Mapping{{0: 1}, {0: 1, 2: 3}, {}}
	b := []morph.Mapping{{0: 1, 2: 3}, {}}
	got := morph.Intersect(a, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 common mappings, got %d", len(got))
	}
	best, ok := morph.MaxBySize(got)
	if !ok {
		t.Fatalf("expected a maximum to exist")
	}
	if best.Size() != 2 {
		t.Fatalf("expected the maximum mapping to have size 2, got %d", best.Size())
	}
}

func TestIntersectAllEmpty(t *testing.T) {
	if got := morph.IntersectAll(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
