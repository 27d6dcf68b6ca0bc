package traveller

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/nparse/nanta/pool"
)

// schedQueue is the Traveller's dual-mode scheduler queue (spec §4.6,
// "Inner loop"): depth-first pops from the back, breadth-first pops
// from the front, switching mode the moment a negative-assertion arc
// enters the search (has_negations). Backed by
// github.com/emirpasic/gods/lists/doublylinkedlist so both ends are
// cheap, unlike arraylist's single backing array.
type schedQueue struct {
	list *doublylinkedlist.List
}

func newSchedQueue() *schedQueue {
	return &schedQueue{list: doublylinkedlist.New()}
}

func (q *schedQueue) pushBack(idx pool.Index) {
	q.list.Add(idx)
}

func (q *schedQueue) pushFront(idx pool.Index) {
	q.list.Prepend(idx)
}

func (q *schedQueue) popBack() (pool.Index, bool) {
	n := q.list.Size()
	if n == 0 {
		return pool.NoIndex, false
	}
	v, _ := q.list.Get(n - 1)
	q.list.Remove(n - 1)
	return v.(pool.Index), true
}

func (q *schedQueue) popFront() (pool.Index, bool) {
	v, ok := q.list.Get(0)
	if !ok {
		return pool.NoIndex, false
	}
	q.list.Remove(0)
	return v.(pool.Index), true
}

// removeWhere drops every queued element for which pred returns true,
// used by the negative-assertion cascade filter (spec §4.6,
// "Filtering").
func (q *schedQueue) removeWhere(pred func(pool.Index) bool) {
	values := q.list.Values()
	q.list.Clear()
	for _, v := range values {
		idx := v.(pool.Index)
		if !pred(idx) {
			q.list.Add(idx)
		}
	}
}

func (q *schedQueue) isEmpty() bool { return q.list.Empty() }

func (q *schedQueue) values() []pool.Index {
	raw := q.list.Values()
	out := make([]pool.Index, len(raw))
	for i, v := range raw {
		out[i] = v.(pool.Index)
	}
	return out
}
