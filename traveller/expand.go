package traveller

import (
	"github.com/nparse/nanta/acceptor"
	"github.com/nparse/nanta/network"
	"github.com/nparse/nanta/pool"
)

// expandBunch tries each outgoing arc of s's Node starting at s.BunchPos,
// in bunch order (spec §4.6, "Bunch expansion"). Simple and negative arcs
// are tried in turn within this single call; invoke/extend/positive arcs
// commit the State to a call and interrupt the loop, deferring any
// further arcs to whatever split State the call eventually returns (spec
// §4.2).
func (t *Traveller) expandBunch(idx pool.Index, s *State) error {
	arcs := s.Node.Bunch(s.BunchPos)
	for i, arc := range arcs {
		pos := s.BunchPos + i

		_, guarded := unwrapOnce(arc.Acceptor)
		if err := t.checkLeftRecursion(idx, s, arc.ID(), guarded); err != nil {
			return err
		}

		sp := &spectrumAdapter{t: t, ancestor: idx, arc: arc, continuationPos: pos + 1}
		arc.Acceptor.Accept(t.full, s.Range, t.input, sp)

		switch arc.Type {
		case network.Invoke, network.Extend, network.Positive:
			return nil
		case network.Negative:
			t.hasNegations = true
		}
	}
	return nil
}

// unwrapOnce reports whether acc itself carries the Once left-recursion
// marker (spec §4.1, "Once"), returning the acceptor the marker wraps. A
// marker nested inside another acceptor is not detected.
func unwrapOnce(acc acceptor.Acceptor) (acceptor.Acceptor, bool) {
	if m, ok := acc.(acceptor.OnceMarker); ok {
		return m.Inner(), true
	}
	return acc, false
}
