package acceptor

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

// tracer traces with key 'nanta.acceptor'.
func tracer() tracing.Trace {
	return tracing.Select("nanta.acceptor")
}

// Acceptor is the single-method predicate contract of spec §4.1.
// Accept examines the input suffix following accepted.Last within full
// and pushes zero or more successful acceptances onto s. Implementations
// must not mutate full, accepted, or any shared state; s is the sole
// output channel.
type Acceptor interface {
	Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum)
}

// Spectrum is the output sink an Acceptor pushes candidate ranges into
// (spec §4.1, "Spectrum sink"). It is implemented by the traveller;
// acceptors only ever see this narrow interface, never a concrete
// State or pool.
type Spectrum interface {
	// Push allocates a new descendant State for [from, to) and enqueues it.
	Push(from, to int)
	// Spawn allocates a new descendant State for [from, to) without
	// enqueuing it, so the acceptor can set trace variables on its
	// context (e.g. RegEx capture groups) before the caller enqueues it.
	Spawn(from, to int) Spawned
}

// Spawned is a State allocated by Spectrum.Spawn but not yet enqueued.
type Spawned interface {
	// Context is the spawned State's variable store, writable by the
	// acceptor before Enqueue.
	Context() *context.Context
	// Enqueue schedules the spawned State as if it had been Push'd.
	Enqueue()
}

// AcceptorFunc adapts a plain function to the Acceptor interface.
type AcceptorFunc func(full, accepted nanta.Range, in nanta.Input, s Spectrum)

func (f AcceptorFunc) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	f(full, accepted, in, s)
}

// probe is a throwaway Spectrum used by the Check and Not combinators to
// ask "would the wrapped acceptor have matched?" without allocating a
// real State; a probed Spawned's context is a disposable root Context,
// discarded with the probe.
type probe struct {
	ranges []nanta.Range
}

func (p *probe) Push(from, to int) {
	p.ranges = append(p.ranges, nanta.Range{First: from, Last: to})
}

func (p *probe) Spawn(from, to int) Spawned {
	p.ranges = append(p.ranges, nanta.Range{First: from, Last: to})
	return probeSpawned{}
}

type probeSpawned struct{}

func (probeSpawned) Context() *context.Context { return context.NewRootContext(nil) }
func (probeSpawned) Enqueue()                   {}
