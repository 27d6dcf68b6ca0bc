package traveller

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
	"github.com/nparse/nanta/network"
	"github.com/nparse/nanta/pool"
)

// Kind distinguishes the four State variants of spec §3.
type Kind int8

const (
	Common       Kind = iota // ordinary simple transition
	Split                    // assertion (positive) return
	SplitShifted             // invocation (invoke) return, range = arc's original
	SplitExtended             // invocation (extend) return, range spans caller start to callee end
)

func (k Kind) String() string {
	switch k {
	case Common:
		return "common"
	case Split:
		return "split"
	case SplitShifted:
		return "split-shifted"
	case SplitExtended:
		return "split-extended"
	}
	return "?"
}

// blockSentinel marks a State as blocked (spec §3, "a sentinel value
// distinguishing blocked from live States"; invariant I5). It is chosen
// to be unreachable as a real pool.Index: Pool never allocates this many
// slots in one run.
const blockSentinel pool.Index = ^pool.Index(0)

// State is one node in the Traveller's search tree (spec §3). It is
// immutable after creation except for its Ancestor field, which is the
// sole mutation the engine ever performs on a live State: setting it to
// blockSentinel (spec §3, "Four State variants ... a sentinel value
// distinguishing blocked from live States").
type State struct {
	Kind       Kind
	Ancestor   pool.Index // pool.NoIndex for the root
	ProducedBy *network.Arc
	Node       *network.Node // bunch-owning node this State resumes iterating
	BunchPos   int           // next index into Node's bunch to try (the "remaining bunch")
	Range      nanta.Range
	Callee     pool.Index // innermost enclosing invocation/assertion frame; self for non-simple frames
	// ContinuationPos is set only on a frame-root State spawned by an
	// invoke/extend/positive arc: it records the caller's bunch index to
	// resume at once this frame's endpoint produces a split (spec §4.2).
	ContinuationPos int
	Ctx             *context.Context
}

// Blocked reports whether s has been retroactively blocked (invariant I5).
func (s *State) Blocked() bool { return s.Ancestor == blockSentinel }

// block marks s as blocked; no descendant of a blocked State is ever
// scheduled again (invariant I5), enforced by the filtering cascade in
// the Traveller, not by State itself.
func (s *State) block() { s.Ancestor = blockSentinel }
