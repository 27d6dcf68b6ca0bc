package acceptor

// Flags is a bitmask shared by Test, Symbol, and String, consistent
// with Test's documented {single|greedy, accept-empty, negate} flags
// (spec §4.1) and extended per SPEC_FULL.md §12 with the case-folding
// distinction the original's sas/symbol.hpp and sas/string.hpp make
// between exact and case-normalized literal matching.
type Flags uint8

const (
	// FlagGreedy makes Test consume the longest run of matching runes
	// instead of a single one.
	FlagGreedy Flags = 1 << iota
	// FlagAcceptEmpty allows a zero-length match to count as acceptance.
	FlagAcceptEmpty
	// FlagNegate inverts the underlying predicate or literal comparison.
	FlagNegate
	// FlagCaseInsensitive makes Symbol/String compare case-normalized
	// rather than exact.
	FlagCaseInsensitive
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
