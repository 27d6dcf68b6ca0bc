package traveller

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
	"github.com/nparse/nanta/network"
	"github.com/nparse/nanta/pool"
)

// handleEndpoint processes a State s sitting at an endpoint Node (spec
// §4.6, "Endpoint handling"). It returns (next, true) when bunch
// expansion should continue against the returned split State, or
// (pool.NoIndex, false) when this iteration is done (a surface trace was
// recorded, or the caller was blocked by a returning negative assertion).
func (t *Traveller) handleEndpoint(idx pool.Index, s *State) (pool.Index, bool) {
	if s.Callee == pool.NoIndex {
		t.traces = append(t.traces, idx)
		t.observe(EvTrace, idx)
		return pool.NoIndex, false
	}

	calleeState := t.states.Get(s.Callee)
	caller := calleeState.Ancestor
	if caller == pool.NoIndex {
		// The invocation frame itself is rootless; nothing to return to.
		t.traces = append(t.traces, idx)
		t.observe(EvTrace, idx)
		return pool.NoIndex, false
	}
	callerState := t.states.Get(caller)

	switch calleeState.ProducedBy.Type {
	case network.Invoke:
		return t.spawnSplit(idx, caller, callerState, calleeState, s, SplitShifted, s.Range), true

	case network.Extend:
		rng := nanta.Range{First: callerState.Range.Last, Last: s.Range.Last}
		return t.spawnSplit(idx, caller, callerState, calleeState, s, SplitExtended, rng), true

	case network.Positive:
		return t.spawnSplit(idx, caller, callerState, calleeState, s, Split, callerState.Range), true

	case network.Negative:
		if !callerState.Blocked() {
			callerState.block()
			t.observe(EvBlock, caller)
			t.cascadeBlock(caller)
		}
		return pool.NoIndex, false
	}

	return pool.NoIndex, false
}

// spawnSplit allocates the split State that resumes the caller's bunch at
// calleeState.ContinuationPos once an invoke/extend/positive frame
// reaches its endpoint (spec §3, "split return state"; spec §4.2).
//
// A positive split's ancestor chain skips the caller itself (the
// assertion consumed nothing, so the caller is transparent); an
// invoke/extend split's ancestor is the completed call's own endpoint
// State, so the invoked subtree remains attached beneath it.
func (t *Traveller) spawnSplit(endpointIdx, caller pool.Index, callerState, calleeState, shiftState *State, kind Kind, rng nanta.Range) pool.Index {
	var ancestor pool.Index
	var ctx *context.Context
	switch kind {
	case Split:
		ancestor = callerState.Ancestor
		ctx = callerState.Ctx
	default: // SplitShifted, SplitExtended
		ancestor = endpointIdx
		ctx = context.NewChildContext(shiftState.Ctx)
	}

	split := State{
		Kind:       kind,
		Ancestor:   ancestor,
		ProducedBy: callerState.ProducedBy,
		Node:       callerState.Node,
		BunchPos:   calleeState.ContinuationPos,
		Range:      rng,
		Callee:     callerState.Callee,
		Ctx:        ctx,
	}
	idx, err := t.states.Allocate(split)
	if err != nil {
		return pool.NoIndex
	}
	t.observe(EvSplit, idx)
	return idx
}

// cascadeBlock blocks every live descendant of ancestor in the queue,
// the deferred list, and the trace list (spec §4.6, "Filtering"), by
// walking each candidate's ancestor chain with index comparison, since
// pool.Index only ever grows (invariant I1).
func (t *Traveller) cascadeBlock(ancestor pool.Index) {
	isDescendant := func(idx pool.Index) bool {
		p := idx
		for p > ancestor && p != blockSentinel {
			p = t.states.Get(p).Ancestor
		}
		return p == ancestor
	}

	t.queue.removeWhere(func(idx pool.Index) bool {
		if isDescendant(idx) {
			t.states.Get(idx).block()
			t.observe(EvBlock, idx)
			return true
		}
		return false
	})

	t.deferred = filterBlocking(t, ancestor, isDescendant, t.deferred)
	t.traces = filterBlocking(t, ancestor, isDescendant, t.traces)
}

func filterBlocking(t *Traveller, ancestor pool.Index, isDescendant func(pool.Index) bool, list []pool.Index) []pool.Index {
	out := list[:0]
	for _, idx := range list {
		if isDescendant(idx) {
			t.states.Get(idx).block()
			t.observe(EvBlock, idx)
			continue
		}
		out = append(out, idx)
	}
	return out
}
