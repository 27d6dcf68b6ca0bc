package nanta

import "fmt"

// Range is a half-open interval [First, Last) over the immutable input
// sequence. Iterators are positions within the input, counted in runes.
type Range struct {
	First int
	Last  int
}

// Len returns the number of positions covered by r.
func (r Range) Len() int {
	return r.Last - r.First
}

// IsEmpty returns true if r covers no positions.
func (r Range) IsEmpty() bool {
	return r.First == r.Last
}

// Contains reports whether r lies within the input bounds [0, n).
func (r Range) Contains(n int) bool {
	return r.First >= 0 && r.Last <= n && r.First <= r.Last
}

// Extend returns the smallest range covering both r and other. It mirrors
// gorgo.Span.Extend, used when a split-extended state needs to span from
// an invocation's start to its callee's final position.
func (r Range) Extend(other Range) Range {
	if other.First < r.First {
		r.First = other.First
	}
	if other.Last > r.Last {
		r.Last = other.Last
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("[%d…%d)", r.First, r.Last)
}

// Input is the immutable sequence being parsed. The core treats it purely
// as an indexable, read-only rune sequence; callers may wrap any source
// (file, string, token stream) as long as it satisfies this interface.
type Input interface {
	// At returns the rune at position i.
	At(i int) rune
	// Len returns the total number of positions.
	Len() int
	// Slice returns the runes in [from, to) as a string, for diagnostics
	// and for acceptors that want to inspect literal text.
	Slice(from, to int) string
}

// RuneInput is the default Input implementation, wrapping a []rune.
type RuneInput []rune

var _ Input = RuneInput(nil)

func (in RuneInput) At(i int) rune { return in[i] }
func (in RuneInput) Len() int      { return len(in) }
func (in RuneInput) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(in) {
		to = len(in)
	}
	if from >= to {
		return ""
	}
	return string(in[from:to])
}

// NewInput wraps a string as an Input.
func NewInput(s string) RuneInput {
	return RuneInput([]rune(s))
}

// SourceLocation is an opaque filename plus 1-based line/column, as
// delivered by an external staging.Provider for runtime-error decoration
// (spec §6, "Source-location format"). Offset is optional (0 means
// unknown) for line/column-less error sites.
type SourceLocation struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (l SourceLocation) String() string {
	if l.File == "" && l.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
