package traveller

import (
	"github.com/cnf/structhash"

	"github.com/nparse/nanta/pool"
)

// lrSignature is the (arc ID, start offset) pair whose structhash digest
// is the re-entry signature the left-recursion guard walks the ancestor
// chain comparing against. Fingerprinting via structhash, rather than direct
// struct comparison, mirrors the Interner's bucket-digest approach (see
// context/interner.go; SPEC_FULL.md §11).
type lrSignature struct {
	ArcID uint64
	First int
}

func signatureOf(arcID uint64, first int) string {
	h, err := structhash.Hash(lrSignature{ArcID: arcID, First: first}, 1)
	if err != nil {
		return ""
	}
	return h
}

// LeftRecursionError is raised when the same arc is about to be re-entered
// at the same starting offset more times than the configured threshold
// tolerates (spec §4.6, "Left-recursion guard"). It aborts the parse as a
// runtime error, per spec §7.
type LeftRecursionError struct {
	ArcID uint64
	Pos   int
}

func (e *LeftRecursionError) Error() string {
	return "left recursion detected"
}

// checkLeftRecursion walks the ancestor chain of s (the State whose bunch
// is being expanded) counting prior entries into arc at s's current
// offset. It only fires for arcs explicitly guarded via the Once
// acceptor marker, or unconditionally once a positive lrThreshold is
// configured.
func (t *Traveller) checkLeftRecursion(sIdx pool.Index, s *State, arcID uint64, guarded bool) error {
	if !guarded && t.cfg.lrThreshold <= 0 {
		return nil
	}
	threshold := t.cfg.lrThreshold
	if threshold <= 0 {
		// Once-guarded re-entry with no explicit threshold: tolerate one
		// repeat of the signature before erroring, not zero.
		threshold = 1
	}
	pos := s.Range.Last
	sig := signatureOf(arcID, pos)
	count := 0
	cur := sIdx
	for cur != pool.NoIndex {
		cs := t.State(cur)
		if cs.ProducedBy != nil && signatureOf(cs.ProducedBy.ID(), cs.Range.First) == sig {
			count++
			if count > threshold {
				return &LeftRecursionError{ArcID: arcID, Pos: pos}
			}
		}
		cur = cs.Ancestor
	}
	return nil
}
