package traveller

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/acceptor"
	"github.com/nparse/nanta/action"
	"github.com/nparse/nanta/context"
	"github.com/nparse/nanta/network"
)

// TestSimpleTransition covers spec §8 scenario 1: a two-arc chain
// matching a literal followed by end-of-input.
func TestSimpleTransition(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	term := network.NewNode("term")
	term.Endpoint = true
	exit := network.NewNode("exit")
	exit.AddArc(term, acceptor.End{}, network.Simple, network.Label{}, 0, 0)
	entry := network.NewNode("entry")
	entry.AddArc(exit, acceptor.NewSymbol("abc", 0), network.Simple, network.Label{}, 0, 0)

	tv := NewTraveller(entry, network.Label{})
	if _, err := tv.Init(nanta.NewInput("abc")); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := tv.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tv.Traces()) != 1 {
		t.Fatalf("want 1 trace, got %d", len(tv.Traces()))
	}
	trace := tv.State(tv.Traces()[0])
	if trace.Range.Last != 3 {
		t.Fatalf("want consumed range ending at 3, got %d", trace.Range.Last)
	}
}

// TestInvokeReturn covers spec §8 scenario 2: entry invokes a subrule
// ("digit") then continues past the return.
func TestInvokeReturn(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	// subrule: digitEntry -[0-9]-> digitExit(endpoint)
	digitExit := network.NewNode("digitExit")
	digitExit.Endpoint = true
	digitEntry := network.NewNode("digitEntry")
	digitEntry.AddArc(digitExit, acceptor.NewRange('0', '9'), network.Simple, network.Label{}, 0, 0)

	// main: entry -[invoke digitEntry]-> afterCall -[end]-> term(endpoint)
	term := network.NewNode("term")
	term.Endpoint = true
	afterCall := network.NewNode("afterCall")
	afterCall.AddArc(term, acceptor.End{}, network.Simple, network.Label{}, 0, 0)
	entry := network.NewNode("entry")
	entry.AddArc(digitEntry, acceptor.Unconditional{}, network.Invoke, network.Label{}, 0, 0)
	entry.AddArc(afterCall, acceptor.Unconditional{}, network.Simple, network.Label{}, 0, 0)

	tv := NewTraveller(entry, network.Label{})
	if _, err := tv.Init(nanta.NewInput("7")); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := tv.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tv.Traces()) != 1 {
		t.Fatalf("want 1 trace, got %d", len(tv.Traces()))
	}
}

// TestPositiveAssertion covers spec §8 scenario 3: a positive lookahead
// that consumes nothing but gates entry to the rest of the bunch.
func TestPositiveAssertion(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	lookExit := network.NewNode("lookExit")
	lookExit.Endpoint = true
	lookEntry := network.NewNode("lookEntry")
	lookEntry.AddArc(lookExit, acceptor.NewSymbol("a", 0), network.Simple, network.Label{}, 0, 0)

	term := network.NewNode("term")
	term.Endpoint = true
	consume := network.NewNode("consume")
	consume.AddArc(term, acceptor.NewSymbol("abc", 0), network.Simple, network.Label{}, 0, 0)
	entry := network.NewNode("entry")
	entry.AddArc(lookEntry, acceptor.Unconditional{}, network.Positive, network.Label{}, 0, 0)
	entry.AddArc(consume, acceptor.Unconditional{}, network.Simple, network.Label{}, 0, 0)

	tv := NewTraveller(entry, network.Label{})
	if _, err := tv.Init(nanta.NewInput("abc")); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := tv.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tv.Traces()) != 1 {
		t.Fatalf("want 1 trace, got %d", len(tv.Traces()))
	}
}

// buildNegativeNetwork builds the network for spec §8 scenario 4, shared by
// TestNegativeAssertionCascadeBlocks and
// TestNegativeAssertionLetsNonMatchThrough: a negative assertion that
// blocks the caller on match ("alpha") but lets a sibling arc through when
// the assertion's pattern does not match ("gamma").
func buildNegativeNetwork() *network.Node {
	negExit := network.NewNode("negExit")
	negExit.Endpoint = true
	negEntry := network.NewNode("negEntry")
	negEntry.AddArc(negExit, acceptor.NewSymbol("alpha", 0), network.Simple, network.Label{}, 0, 0)

	term := network.NewNode("term")
	term.Endpoint = true
	exit := network.NewNode("exit")
	exit.AddArc(term, acceptor.End{}, network.Simple, network.Label{}, 0, 0)
	entry := network.NewNode("entry")
	entry.AddArc(negEntry, acceptor.Unconditional{}, network.Negative, network.Label{}, 0, 0)
	entry.AddArc(exit, acceptor.NewTest(isLetter, acceptor.FlagGreedy), network.Simple, network.Label{}, 0, 0)
	return entry
}

func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

func TestNegativeAssertionCascadeBlocks(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	entry := buildNegativeNetwork()
	tv := NewTraveller(entry, network.Label{})
	if _, err := tv.Init(nanta.NewInput("alpha")); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := tv.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tv.Traces()) != 0 {
		t.Fatalf("want 0 traces (blocked by negative assertion), got %d", len(tv.Traces()))
	}
}

func TestNegativeAssertionLetsNonMatchThrough(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	entry := buildNegativeNetwork()
	tv := NewTraveller(entry, network.Label{})
	if _, err := tv.Init(nanta.NewInput("gamma")); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := tv.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tv.Traces()) != 1 {
		t.Fatalf("want 1 trace, got %d", len(tv.Traces()))
	}
}

// TestVariablePropagationCOW covers spec §8 scenario 5: a semantic
// action assigns a variable on one branch; the root State's context never
// sees the write (copy-on-write isolation, property P5).
func TestVariablePropagationCOW(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	loc := nanta.SourceLocation{}
	setX := action.Assign(loc, "x", action.NewTerminal(loc, context.IntValue(1)))

	term := network.NewNode("term")
	term.Endpoint = true
	exit := network.NewNode("exit")
	exit.AddArc(term, acceptor.End{}, network.Simple, network.Label{}, 0, 0)
	entry := network.NewNode("entry")
	entry.AddArc(exit, acceptor.NewSymbol("a", 0), network.Simple,
		network.Label{Action: setX}, 0, 0)

	tv := NewTraveller(entry, network.Label{})
	rootIdx, err := tv.Init(nanta.NewInput("a"))
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := tv.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tv.Traces()) != 1 {
		t.Fatalf("want 1 trace, got %d", len(tv.Traces()))
	}
	root := tv.State(rootIdx)
	if !root.Ctx.Val("x").IsNull() {
		t.Fatalf("expected root context to stay unaffected by child write")
	}
}

// TestLeftRecursionGuard covers spec §8 scenario 6: a self-invoking rule
// guarded by Once raises LeftRecursion rather than looping forever.
func TestLeftRecursionGuard(t *testing.T) {
	finish := gotestingadapter.QuickConfig(t, "nanta.traveller")
	defer finish()

	recEntry := network.NewNode("recEntry")
	recEntry.AddArc(recEntry, acceptor.NewOnce(acceptor.Unconditional{}), network.Invoke, network.Label{}, 0, 0)

	tv := NewTraveller(recEntry, network.Label{}, WithLRThreshold(2))
	if _, err := tv.Init(nanta.NewInput("")); err != nil {
		t.Fatalf("init: %v", err)
	}
	_, err := tv.Run()
	if err == nil {
		t.Fatalf("expected LeftRecursionError")
	}
	if _, ok := err.(*LeftRecursionError); !ok {
		t.Fatalf("expected *LeftRecursionError, got %T", err)
	}
}
