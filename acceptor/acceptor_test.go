package acceptor

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

// fakeSpectrum records pushed/spawned ranges for assertions, standing in
// for the traveller during acceptor-only tests.
type fakeSpectrum struct {
	pushed []nanta.Range
}

func (f *fakeSpectrum) Push(from, to int) {
	f.pushed = append(f.pushed, nanta.Range{First: from, Last: to})
}

func (f *fakeSpectrum) Spawn(from, to int) Spawned {
	f.pushed = append(f.pushed, nanta.Range{First: from, Last: to})
	return fakeSpawned{context.NewRootContext(nil)}
}

type fakeSpawned struct{ ctx *context.Context }

func (f fakeSpawned) Context() *context.Context { return f.ctx }
func (f fakeSpawned) Enqueue()                   {}

func TestUnconditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("alpha")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	Unconditional{}.Accept(full, nanta.Range{First: 0, Last: 2}, in, fs)
	if len(fs.pushed) != 1 || fs.pushed[0] != (nanta.Range{First: 2, Last: 2}) {
		t.Errorf("got %v, want a single empty push at 2", fs.pushed)
	}
}

func TestSymbolExactMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("alpha")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	NewSymbol("alpha", 0).Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 1 || fs.pushed[0] != (nanta.Range{First: 0, Last: 5}) {
		t.Errorf("got %v, want [0,5)", fs.pushed)
	}
}

func TestSymbolCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("ALPHA")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	NewSymbol("alpha", FlagCaseInsensitive).Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 1 {
		t.Errorf("expected a case-insensitive match, got %v", fs.pushed)
	}
}

func TestEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("ab")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	End{}.Accept(full, nanta.Range{First: 0, Last: 2}, in, fs)
	if len(fs.pushed) != 1 {
		t.Errorf("End should match at input end, got %v", fs.pushed)
	}
	fs2 := &fakeSpectrum{}
	End{}.Accept(full, nanta.Range{First: 0, Last: 1}, in, fs2)
	if len(fs2.pushed) != 0 {
		t.Errorf("End should not match mid-input, got %v", fs2.pushed)
	}
}

func TestTestGreedyDigits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("123abc")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	NewTest(unicode.IsDigit, FlagGreedy).Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 1 || fs.pushed[0] != (nanta.Range{First: 0, Last: 3}) {
		t.Errorf("got %v, want [0,3)", fs.pushed)
	}
}

func TestNotSucceedsOnInnerFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("gamma")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	NewNot(NewSymbol("alpha", 0)).Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 1 || fs.pushed[0] != (nanta.Range{First: 0, Last: 0}) {
		t.Errorf("Not(alpha) over \"gamma\" should push empty at 0, got %v", fs.pushed)
	}
}

func TestNotFailsOnInnerSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("alpha")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	NewNot(NewSymbol("alpha", 0)).Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 0 {
		t.Errorf("Not(alpha) over \"alpha\" should push nothing, got %v", fs.pushed)
	}
}

func TestCheckRequiresExactResidual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	in := nanta.NewInput("alphabet")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	NewCheck(NewSymbol("alpha", 0)).Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 0 {
		t.Errorf("Check(alpha) over \"alphabet\" should not match (not exact residual), got %v", fs.pushed)
	}

	in2 := nanta.NewInput("alpha")
	full2 := nanta.Range{First: 0, Last: in2.Len()}
	fs2 := &fakeSpectrum{}
	NewCheck(NewSymbol("alpha", 0)).Accept(full2, nanta.Range{First: 0, Last: 0}, in2, fs2)
	if len(fs2.pushed) != 1 {
		t.Errorf("Check(alpha) over exact \"alpha\" should match, got %v", fs2.pushed)
	}
}

func TestOnceDelegatesAndExposesInner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.acceptor")
	defer teardown()
	//
	inner := NewSymbol("alpha", 0)
	once := NewOnce(inner)
	if once.Inner() != Acceptor(inner) {
		t.Errorf("Once.Inner() should return the wrapped acceptor")
	}
	in := nanta.NewInput("alpha")
	full := nanta.Range{First: 0, Last: in.Len()}
	fs := &fakeSpectrum{}
	once.Accept(full, nanta.Range{First: 0, Last: 0}, in, fs)
	if len(fs.pushed) != 1 {
		t.Errorf("Once should delegate matching to its inner acceptor")
	}
}
