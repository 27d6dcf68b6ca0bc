package traveller

import (
	"container/heap"

	"github.com/nparse/nanta/pool"
)

// EventKind is one of the nine scheduling events of spec §4.6,
// "Observer hooks".
type EventKind int8

const (
	EvPush EventKind = iota
	EvPull
	EvDeny
	EvEntry
	EvTrace
	EvBlock
	EvSplit
	EvDefer
	EvEvict
)

func (k EventKind) String() string {
	switch k {
	case EvPush:
		return "PUSH"
	case EvPull:
		return "PULL"
	case EvDeny:
		return "DENY"
	case EvEntry:
		return "ENTRY"
	case EvTrace:
		return "TRACE"
	case EvBlock:
		return "BLOCK"
	case EvSplit:
		return "SPLIT"
	case EvDefer:
		return "DEFER"
	case EvEvict:
		return "EVICT"
	}
	return "?"
}

// Observer receives every scheduling event the Traveller dispatches
// (spec §4.6). t is the Traveller raising the event, so an Observer can
// look up the State at idx via t.State(idx) when it needs more detail.
type Observer interface {
	Observe(kind EventKind, idx pool.Index, t *Traveller)
}

// NopObserver implements Observer by ignoring every event.
type NopObserver struct{}

func (NopObserver) Observe(EventKind, pool.Index, *Traveller) {}

// deepestItem is one entry in DeepestReached's min-heap, ordered by
// ascending input offset, so the root of the heap is always the
// shallowest of the N tracked states, the cheapest one to evict when a
// deeper state arrives (see SPEC_FULL.md §12).
type deepestItem struct {
	offset int
	path   string
}

type deepestHeap []deepestItem

func (h deepestHeap) Len() int            { return len(h) }
func (h deepestHeap) Less(i, j int) bool  { return h[i].offset < h[j].offset }
func (h deepestHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *deepestHeap) Push(x interface{}) { *h = append(*h, x.(deepestItem)) }
func (h *deepestHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// DeepestReached is the production diagnostics Observer of spec §4.6:
// it tracks the N deepest-reached States on failure in a min-heap keyed
// by input offset, so a query after a failed parse yields "parser
// reached up to here" positions with reconstructed grammar rule paths
// (spec.md §4.6; original's offset_state.hpp).
type DeepestReached struct {
	N    int
	heap deepestHeap
}

// NewDeepestReached creates a tracker retaining the n deepest positions
// reached.
func NewDeepestReached(n int) *DeepestReached {
	if n <= 0 {
		n = 1
	}
	dr := &DeepestReached{N: n}
	heap.Init(&dr.heap)
	return dr
}

func (dr *DeepestReached) Observe(kind EventKind, idx pool.Index, t *Traveller) {
	if kind != EvEntry && kind != EvDeny {
		return
	}
	s := t.State(idx)
	offset := s.Range.Last
	path := t.rulePath(idx)
	if len(dr.heap) < dr.N {
		heap.Push(&dr.heap, deepestItem{offset, path})
		return
	}
	if offset > dr.heap[0].offset {
		heap.Pop(&dr.heap)
		heap.Push(&dr.heap, deepestItem{offset, path})
	}
}

// Positions returns the tracked (offset, rule-path) pairs, deepest
// first.
func (dr *DeepestReached) Positions() []struct {
	Offset int
	Path   string
} {
	items := make([]deepestItem, len(dr.heap))
	copy(items, dr.heap)
	out := make([]struct {
		Offset int
		Path   string
	}, len(items))
	// simple descending sort; N is always small (diagnostics budget).
	for i := range items {
		maxIdx := i
		for j := i + 1; j < len(items); j++ {
			if items[j].offset > items[maxIdx].offset {
				maxIdx = j
			}
		}
		items[i], items[maxIdx] = items[maxIdx], items[i]
		out[i] = struct {
			Offset int
			Path   string
		}{items[i].offset, items[i].path}
	}
	return out
}
