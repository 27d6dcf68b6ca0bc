package tracer

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/nparse/nanta/pool"
	"github.com/nparse/nanta/traveller"
)

// tr traces with key 'nanta.tracer'.
func tr() tracing.Trace {
	return tracing.Select("nanta.tracer")
}

// StateType is the significance of a State within an assembled trace
// (spec §4.7, "type()").
type StateType int8

const (
	Skip       StateType = iota // not a label boundary or split frame
	Actual                      // an actual labeled transition
	SplitFrame                  // a closing-parenthesis split
)

func (t StateType) String() string {
	switch t {
	case Skip:
		return "skip"
	case Actual:
		return "actual"
	case SplitFrame:
		return "split"
	}
	return "?"
}

// Tracer walks the completed traces of a traveller.Traveller, one at a
// time, exposing a cursor over the chain of States from root to
// terminal (spec §4.7).
type Tracer struct {
	tv *traveller.Traveller

	traceIdx int        // index into tv.Traces(), -1 before the first next()
	chain    []pool.Index // root..terminal, current trace only
	pos      int        // cursor into chain, -1 before the first step()
}

// New creates a Tracer over a Traveller whose Run has already completed.
func New(tv *traveller.Traveller) *Tracer {
	return &Tracer{tv: tv, traceIdx: -1, pos: -1}
}

// Next advances to the next trace, rebuilding its root-to-terminal
// chain, and resets the step cursor before its first entry. It returns
// false once every recorded trace has been visited (spec §4.7, "next()").
func (c *Tracer) Next() bool {
	c.traceIdx++
	if c.traceIdx >= len(c.tv.Traces()) {
		c.chain = nil
		c.pos = -1
		return false
	}
	terminal := c.tv.Traces()[c.traceIdx]
	c.chain = assembleChain(c.tv, terminal)
	c.pos = -1
	tr().Debugf("tracer: trace %d has %d states", c.traceIdx, len(c.chain))
	return true
}

// assembleChain walks from terminal to the root collecting every State
// along the ancestor chain, then reverses it, per spec §4.7's "The trace
// is assembled by walking from the terminal state to the root ...
// then reversing."
func assembleChain(tv *traveller.Traveller, terminal pool.Index) []pool.Index {
	var rev []pool.Index
	for cur := terminal; cur != pool.NoIndex; {
		rev = append(rev, cur)
		cur = tv.State(cur).Ancestor
	}
	out := make([]pool.Index, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = idx
	}
	return out
}

// Step advances the cursor to the next actual (non-skipped) State in the
// current trace, returning false once the chain is exhausted (spec §4.7,
// "step()").
func (c *Tracer) Step() bool {
	for {
		c.pos++
		if c.pos >= len(c.chain) {
			return false
		}
		if c.Type() != Skip {
			return true
		}
	}
}

// Current returns the State the cursor currently sits on, or nil before
// the first Step or after the chain is exhausted.
func (c *Tracer) Current() *traveller.State {
	idx, ok := c.currentIndex()
	if !ok {
		return nil
	}
	return c.tv.State(idx)
}

func (c *Tracer) currentIndex() (pool.Index, bool) {
	if c.pos < 0 || c.pos >= len(c.chain) {
		return pool.NoIndex, false
	}
	return c.chain[c.pos], true
}

// Type reports the current State's significance (spec §4.7, "type()"):
// a split-kind State always closes a frame; otherwise a State counts as
// actual only if the arc that produced it carries an actual label.
func (c *Tracer) Type() StateType {
	idx, ok := c.currentIndex()
	if !ok {
		return Skip
	}
	s := c.tv.State(idx)
	if s.Kind != traveller.Common {
		return SplitFrame
	}
	if s.ProducedBy != nil && s.ProducedBy.Label.IsActual() {
		return Actual
	}
	return Skip
}

// TraceIndex returns the index of the trace currently being walked (the
// %i placeholder of SPEC_FULL.md §6's trace-format language).
func (c *Tracer) TraceIndex() int { return c.traceIdx }

// StepIndex returns the cursor's position within the current trace's
// chain (the %j placeholder).
func (c *Tracer) StepIndex() int { return c.pos }

// Relative navigates from the current State using the compact path
// language of spec §4.7: '<' follows Ancestor, ':' follows Callee, '!'
// follows the caller of the current Callee frame (the Ancestor of the
// State at Callee). It returns nil if the path runs off either end of
// the pool or is applied before any Step.
func (c *Tracer) Relative(path string) *traveller.State {
	idx, ok := c.currentIndex()
	if !ok {
		return nil
	}
	for _, step := range strings.Split(path, "") {
		s := c.tv.State(idx)
		var next pool.Index
		switch step {
		case "<":
			next = s.Ancestor
		case ":":
			next = s.Callee
		case "!":
			if s.Callee == pool.NoIndex {
				return nil
			}
			next = c.tv.State(s.Callee).Ancestor
		default:
			continue
		}
		if next == pool.NoIndex {
			return nil
		}
		idx = next
	}
	return c.tv.State(idx)
}

// Reset rewinds the Tracer to before its first trace, so a subsequent
// Next() starts enumeration over again (spec §6, "reset").
func (c *Tracer) Reset() {
	c.traceIdx = -1
	c.chain = nil
	c.pos = -1
}

// Rewind moves the step cursor back to before the first State of the
// current trace without changing which trace is selected (spec §6,
// "rewind").
func (c *Tracer) Rewind() {
	c.pos = -1
}

// Shift reports the number of split-frame closes (StateType ==
// SplitFrame) encountered since the last actual State, used by
// reporters to render nested "closing parenthesis" depth (spec §6,
// "shift").
func (c *Tracer) Shift() int {
	n := 0
	for i := c.pos; i >= 0; i-- {
		s := c.tv.State(c.chain[i])
		if s.Kind != traveller.Common {
			n++
			continue
		}
		if s.ProducedBy != nil && s.ProducedBy.Label.IsActual() {
			break
		}
	}
	return n
}
