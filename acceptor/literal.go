package acceptor

import (
	"strings"

	"github.com/nparse/nanta"
)

// Unconditional always pushes an empty range at the current position
// (spec §4.1, required family).
type Unconditional struct{}

func (Unconditional) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	s.Push(accepted.Last, accepted.Last)
}

// Symbol matches an exact (or, with FlagCaseInsensitive, case-folded)
// literal word at the candidate position (spec §4.1, "Symbol / String /
// Class / Range"; case-folding per SPEC_FULL.md §12).
type Symbol struct {
	Text  string
	Flags Flags
}

func NewSymbol(text string, flags Flags) *Symbol {
	return &Symbol{Text: text, Flags: flags}
}

func (a *Symbol) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	matchLiteral(a.Text, a.Flags, full, accepted, in, s)
}

// String is distinguished from Symbol only by grammar-authoring
// convention (dictionary literal vs. quoted string); both share the
// same exact/case-normalized matching contract.
type String struct {
	Text  string
	Flags Flags
}

func NewString(text string, flags Flags) *String {
	return &String{Text: text, Flags: flags}
}

func (a *String) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	matchLiteral(a.Text, a.Flags, full, accepted, in, s)
}

func matchLiteral(text string, flags Flags, full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	from := accepted.Last
	to := from + len([]rune(text))
	if to > full.Last {
		maybePushNegated(flags, from, s)
		return
	}
	candidate := in.Slice(from, to)
	matched := candidate == text
	if flags.has(FlagCaseInsensitive) {
		matched = strings.EqualFold(candidate, text)
	}
	if flags.has(FlagNegate) {
		matched = !matched
	}
	if !matched {
		return
	}
	if flags.has(FlagNegate) {
		s.Push(from, from)
		return
	}
	s.Push(from, to)
}

func maybePushNegated(flags Flags, at int, s Spectrum) {
	if flags.has(FlagNegate) {
		s.Push(at, at)
	}
}

// End matches exactly when the accepted range reaches the end of the
// full input range (spec §4.1, "End").
type End struct{}

func (End) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	if accepted.Last == full.Last {
		s.Push(accepted.Last, accepted.Last)
	}
}
