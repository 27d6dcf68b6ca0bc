package traveller

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/acceptor"
	"github.com/nparse/nanta/context"
	"github.com/nparse/nanta/network"
	"github.com/nparse/nanta/pool"
)

// spawnDescendant allocates a new State transitioning via arc from
// ancestor, for the accepted range [from, to). ancestor is pool.NoIndex
// for the root spawn. continuationPos is only meaningful when arc.Type is
// not Simple; it records where the caller's bunch resumes once this new
// frame's endpoint returns a split (spec §4.2).
func (t *Traveller) spawnDescendant(ancestor pool.Index, arc *network.Arc, from, to, continuationPos int) (pool.Index, error) {
	var parentCtx *context.Context
	var inheritedCallee pool.Index

	if ancestor == pool.NoIndex {
		parentCtx = context.NewRootContext(t.interner)
		inheritedCallee = pool.NoIndex
	} else {
		anc := t.states.Get(ancestor)
		parentCtx = anc.Ctx
		inheritedCallee = anc.Callee
	}

	s := State{
		Kind:       Common,
		Ancestor:   ancestor,
		ProducedBy: arc,
		Node:       arc.Target,
		BunchPos:   0,
		Range:      nanta.Range{First: from, Last: to},
		Ctx:        context.NewChildContext(parentCtx),
	}

	idx, err := t.states.Allocate(s)
	if err != nil {
		return pool.NoIndex, err
	}

	if arc.Type != network.Simple {
		// A new invocation/assertion frame: the callee pointer is
		// self-referential (spec §3, "Four State variants").
		st := t.states.Get(idx)
		st.Callee = idx
		st.ContinuationPos = continuationPos
	} else {
		t.states.Get(idx).Callee = inheritedCallee
	}

	return idx, nil
}

// enqueueNew routes a freshly spawned State to the deferred list if its
// target Node belongs to an entanglement group, otherwise pushes it onto
// the scheduler queue (spec §4.6, "Push").
func (t *Traveller) enqueueNew(idx pool.Index) {
	s := t.states.Get(idx)
	if s.Node.Entangled != 0 {
		t.deferred = append(t.deferred, idx)
		t.observe(EvDefer, idx)
		return
	}
	t.queue.pushBack(idx)
	t.observe(EvPush, idx)
}

// spectrumAdapter implements acceptor.Spectrum for one Accept call,
// binding it to the ancestor State and the arc under consideration (spec
// §4.1, "Spectrum sink").
type spectrumAdapter struct {
	t               *Traveller
	ancestor        pool.Index
	arc             *network.Arc
	continuationPos int
}

func (sp *spectrumAdapter) Push(from, to int) {
	idx, err := sp.t.spawnDescendant(sp.ancestor, sp.arc, from, to, sp.continuationPos)
	if err != nil {
		return
	}
	sp.t.enqueueNew(idx)
}

func (sp *spectrumAdapter) Spawn(from, to int) acceptor.Spawned {
	idx, err := sp.t.spawnDescendant(sp.ancestor, sp.arc, from, to, sp.continuationPos)
	if err != nil {
		return nil
	}
	return &spawnedAdapter{t: sp.t, idx: idx}
}

type spawnedAdapter struct {
	t   *Traveller
	idx pool.Index
}

func (sw *spawnedAdapter) Context() *context.Context {
	return sw.t.states.Get(sw.idx).Ctx
}

func (sw *spawnedAdapter) Enqueue() {
	sw.t.enqueueNew(sw.idx)
}
