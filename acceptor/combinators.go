package acceptor

import "github.com/nparse/nanta"

// Check succeeds only if the wrapped acceptor matches exactly the
// residual parser element, i.e. one of its candidate ranges reaches
// full.Last (spec §4.1, "Check(A)"; combinator shape supplemented per
// SPEC_FULL.md §12).
type Check struct {
	Inner Acceptor
}

func NewCheck(inner Acceptor) *Check { return &Check{Inner: inner} }

func (a *Check) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	p := &probe{}
	a.Inner.Accept(full, accepted, in, p)
	for _, r := range p.ranges {
		if r.Last == full.Last {
			s.Push(r.First, r.Last)
		}
	}
}

// Not succeeds (pushing an empty range at accepted.Last) iff the
// wrapped acceptor would have failed to produce any candidate range
// (spec §4.1, "Not(A)"; supplemented from the original's sas/not.hpp).
type Not struct {
	Inner Acceptor
}

func NewNot(inner Acceptor) *Not { return &Not{Inner: inner} }

func (a *Not) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	p := &probe{}
	a.Inner.Accept(full, accepted, in, p)
	if len(p.ranges) == 0 {
		s.Push(accepted.Last, accepted.Last)
	}
}

// OnceMarker is implemented by acceptors that wrap another acceptor to
// request left-recursion detection on re-entry (spec §4.1, "Once"). The
// traveller, which alone has access to a State's ancestor chain, is
// responsible for walking ancestors and raising LeftRecursion; Once
// itself only marks the arc and delegates matching to Inner.
type OnceMarker interface {
	Inner() Acceptor
}

// Once marks an arc for left-recursion detection (spec §4.1, "Once ...
// detects left-recursion by walking ancestor states and raising
// LeftRecursion error if the same arc is re-entered at the same
// range"). The actual ancestor walk lives in package traveller.
type Once struct {
	A Acceptor
}

func NewOnce(inner Acceptor) *Once { return &Once{A: inner} }

func (o *Once) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	o.A.Accept(full, accepted, in, s)
}

func (o *Once) Inner() Acceptor { return o.A }

var _ OnceMarker = (*Once)(nil)
