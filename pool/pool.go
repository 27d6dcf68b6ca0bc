package pool

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nanta.pool'.
func tracer() tracing.Trace {
	return tracing.Select("nanta.pool")
}

// Index addresses a slot in a Pool. Index 0 is never a valid allocation
// (it is reserved to mean "no ancestor" for a State's ancestor field, a
// typed stand-in for the C++ original's null pointer); allocation starts
// at index 1.
type Index uint32

// NoIndex is the zero value of Index, meaning "absent" (spec §3,
// State.ancestor "or null for the root").
const NoIndex Index = 0

// ErrOutOfPool is raised by Allocate when the pool's capacity is
// exhausted (spec §4.5, "throws OutOfPool on exhaustion").
type ErrOutOfPool struct {
	Capacity int
}

func (e *ErrOutOfPool) Error() string {
	return fmt.Sprintf("pool exhausted at capacity %d", e.Capacity)
}

// Pool is a monotonic bump allocator over a slice of T (spec §4.5).
// Allocation only ever grows the backing slice's logical length up to
// Capacity; Evict only ever shrinks it from the end (last-in-first-out).
// States reference each other by Index rather
// than by *T (spec.md §9 design note), so eviction never dangles a live
// reference: an evicted Index is simply never dereferenced again,
// policed by the traveller, not by Pool itself.
type Pool[T any] struct {
	slots    []T
	capacity int
	peak     int
	evicted  int
}

// NewPool creates a Pool with the given capacity. Index 0 is reserved,
// so the pool holds at most capacity live allocations, addressed by
// Index 1 through capacity.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{capacity: capacity}
	p.slots = make([]T, 1, capacity+1) // slot 0 reserved, never returned
	return p
}

// Allocate appends value and returns its Index.
func (p *Pool[T]) Allocate(value T) (Index, error) {
	if len(p.slots) > p.capacity {
		return NoIndex, &ErrOutOfPool{Capacity: p.capacity}
	}
	idx := Index(len(p.slots))
	p.slots = append(p.slots, value)
	if len(p.slots)-1 > p.peak {
		p.peak = len(p.slots) - 1
	}
	tracer().Debugf("allocate -> %d (usage=%d)", idx, p.Usage())
	return idx, nil
}

// Get returns the value at idx. idx must be a live allocation; passing
// NoIndex or an evicted index is a programming error the caller (the
// traveller) is responsible for never committing, mirroring invariant
// I1 (ancestor < descendant) which makes such an access always safe in
// well-formed traversal order.
func (p *Pool[T]) Get(idx Index) *T {
	return &p.slots[idx]
}

// Usage returns the number of live allocations.
func (p *Pool[T]) Usage() int { return len(p.slots) - 1 }

// Peak returns the highest Usage ever observed since the last Clear.
func (p *Pool[T]) Peak() int { return p.peak }

// Evicted returns the total count of allocations rolled back by Evict
// since the last Clear.
func (p *Pool[T]) Evicted() int { return p.evicted }

// Evict rolls the cursor back to idx (exclusive), discarding every
// allocation at or after idx, iff idx is the tail of the live range
// (last-in-first-out discipline, spec §4.5 "evict(ptr,n) succeeds iff
// ptr+n == cursor"). It reports whether the eviction was accepted.
func (p *Pool[T]) Evict(idx Index) bool {
	if int(idx) <= 0 || int(idx) > len(p.slots) {
		return false
	}
	n := len(p.slots) - int(idx)
	p.slots = p.slots[:idx]
	p.evicted += n
	tracer().Debugf("evict back to %d (-%d, usage=%d)", idx, n, p.Usage())
	return true
}

// Next previews the Index the following Allocate call will return,
// without allocating, so a caller can remember the cursor before spawning
// descendants and later Evict back to exactly that point. The traveller
// calls neither Next nor Evict: a negative-assertion block marks States
// blocked and leaves their slots allocated.
func (p *Pool[T]) Next() Index { return Index(len(p.slots)) }

// Clear resets the pool to empty, destroying all outstanding allocations
// (spec §4.5, "clear() resets cursor to zero"). Peak and Evicted are
// reset too, since they are the "since last reset" counters spec §4.6
// describes for the traveller's iteration count.
func (p *Pool[T]) Clear() {
	p.slots = p.slots[:1]
	p.peak = 0
	p.evicted = 0
}

// Capacity returns the configured maximum live-allocation count.
func (p *Pool[T]) Capacity() int { return p.capacity }
