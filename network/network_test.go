package network

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/nparse/nanta/acceptor"
)

func TestAddArcAndBunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.network")
	defer teardown()
	//
	entry := NewNode("entry")
	exit := NewNode("exit")
	entry.AddArc(exit, acceptor.NewSymbol("alpha", 0), Simple, Label{Tag: 1}, 0, 0)
	entry.AddArc(exit, acceptor.NewSymbol("beta", 0), Simple, Label{Tag: 2}, 0, 0)

	if entry.NumArcs() != 2 {
		t.Fatalf("got %d arcs, want 2", entry.NumArcs())
	}
	bunch := entry.Bunch(0)
	if len(bunch) != 2 {
		t.Fatalf("Bunch(0) returned %d arcs, want 2", len(bunch))
	}
	if bunch[1].Label.Tag != 2 {
		t.Errorf("second arc has tag %d, want 2", bunch[1].Label.Tag)
	}
	if rest := entry.Bunch(1); len(rest) != 1 {
		t.Errorf("Bunch(1) returned %d arcs, want 1 (remaining bunch semantics)", len(rest))
	}
}

func TestLabelIsActual(t *testing.T) {
	if (Label{}).IsActual() {
		t.Errorf("empty label should not be actual")
	}
	if !(Label{Tag: 1}).IsActual() {
		t.Errorf("label with non-zero tag should be actual")
	}
}

func TestArcIDsAreStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.network")
	defer teardown()
	//
	n := NewNode("n")
	a1 := n.AddArc(n, acceptor.Unconditional{}, Simple, Label{}, 0, 0)
	a2 := n.AddArc(n, acceptor.Unconditional{}, Simple, Label{}, 0, 0)
	if a1.ID() == a2.ID() {
		t.Errorf("distinct arcs should have distinct IDs")
	}
}

func TestSortByPriorityDescending(t *testing.T) {
	n := NewNode("n")
	low := n.AddArc(n, acceptor.Unconditional{}, Simple, Label{}, 1, 1)
	high := n.AddArc(n, acceptor.Unconditional{}, Simple, Label{}, 9, 1)
	mid := n.AddArc(n, acceptor.Unconditional{}, Simple, Label{}, 5, 1)
	arcs := []*Arc{low, high, mid}
	SortByPriority(arcs)
	if arcs[0] != high || arcs[1] != mid || arcs[2] != low {
		t.Errorf("arcs not sorted by descending priority: %v", arcs)
	}
}
