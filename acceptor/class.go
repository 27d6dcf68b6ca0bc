package acceptor

import "github.com/nparse/nanta"

// Predicate tests a single rune for class/range membership.
type Predicate func(r rune) bool

// Class matches a single rune satisfying Pred (spec §4.1, "Class").
type Class struct {
	Pred Predicate
}

func NewClass(pred Predicate) *Class { return &Class{Pred: pred} }

func (a *Class) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	from := accepted.Last
	if from >= full.Last {
		return
	}
	if a.Pred(in.At(from)) {
		s.Push(from, from+1)
	}
}

// RangeAcceptor matches a single rune within [Lo, Hi] inclusive (spec
// §4.1, "Range").
type RangeAcceptor struct {
	Lo, Hi rune
}

func NewRange(lo, hi rune) *RangeAcceptor { return &RangeAcceptor{Lo: lo, Hi: hi} }

func (a *RangeAcceptor) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	from := accepted.Last
	if from >= full.Last {
		return
	}
	r := in.At(from)
	if r >= a.Lo && r <= a.Hi {
		s.Push(from, from+1)
	}
}

// Test is a character-class test with the {single|greedy, accept-empty,
// negate} flags of spec §4.1. In single mode it pushes at most one
// one-rune match; in greedy mode it consumes the longest run of runes
// satisfying (or, with FlagNegate, not satisfying) Pred and pushes the
// single maximal range.
type Test struct {
	Pred  Predicate
	Flags Flags
}

func NewTest(pred Predicate, flags Flags) *Test {
	return &Test{Pred: pred, Flags: flags}
}

func (a *Test) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	from := accepted.Last
	matches := func(r rune) bool {
		m := a.Pred(r)
		if a.Flags.has(FlagNegate) {
			m = !m
		}
		return m
	}
	if a.Flags.has(FlagGreedy) {
		to := from
		for to < full.Last && matches(in.At(to)) {
			to++
		}
		if to > from {
			s.Push(from, to)
			return
		}
		if a.Flags.has(FlagAcceptEmpty) {
			s.Push(from, from)
		}
		return
	}
	if from < full.Last && matches(in.At(from)) {
		s.Push(from, from+1)
		return
	}
	if a.Flags.has(FlagAcceptEmpty) {
		s.Push(from, from)
	}
}
