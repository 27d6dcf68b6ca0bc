package action

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

func eval(t *testing.T, e Expr, ctx *context.Context, env *Env) context.Value {
	t.Helper()
	v, err := e.Eval(ctx, env)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	return v
}

func TestArithmeticPriorityCast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{File: "g.rul", Line: 1, Column: 1}

	// "4" + 1 -> priority-cast to string -> "41"
	e := NewBinary(loc, Add, NewTerminal(loc, context.StrValue("4")), NewTerminal(loc, context.IntValue(1)))
	if got := eval(t, e, ctx, env); !got.Equal(context.StrValue("41")) {
		t.Errorf("got %s, want \"41\"", got)
	}

	// 2 + 3 -> 5 (both integer)
	e2 := NewBinary(loc, Add, NewTerminal(loc, context.IntValue(2)), NewTerminal(loc, context.IntValue(3)))
	if got := eval(t, e2, ctx, env); !got.Equal(context.IntValue(5)) {
		t.Errorf("got %s, want 5", got)
	}
}

func TestDivByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}
	e := NewBinary(loc, Div, NewTerminal(loc, context.IntValue(1)), NewTerminal(loc, context.IntValue(0)))
	_, err := e.Eval(ctx, env)
	if err == nil {
		t.Fatal("expected DivByZero error")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != DivByZero {
		t.Errorf("got %v, want a DivByZero RuntimeError", err)
	}
}

func TestVarAssignAndRef(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}

	assign := Assign(loc, "x", NewTerminal(loc, context.IntValue(42)))
	eval(t, assign, ctx, env)

	ref := NewVarRef(loc, "x")
	if got := eval(t, ref, ctx, env); !got.Equal(context.IntValue(42)) {
		t.Errorf("got %s, want 42", got)
	}
}

func TestArrayIndexAutoCreateOnWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}

	arrRef := NewVarRef(loc, "items")
	assign := AssignIndex(loc, arrRef, NewTerminal(loc, context.StrValue("0")), NewTerminal(loc, context.StrValue("first")))
	eval(t, assign, ctx, env)

	idx := NewIndex(loc, arrRef, NewTerminal(loc, context.StrValue("0")))
	if got := eval(t, idx, ctx, env); !got.Equal(context.StrValue("first")) {
		t.Errorf("got %s, want \"first\"", got)
	}
}

func TestSequenceYieldsLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}

	seq := NewSeq(loc,
		Assign(loc, "x", NewTerminal(loc, context.IntValue(1))),
		Assign(loc, "x", NewTerminal(loc, context.IntValue(2))),
		NewVarRef(loc, "x"),
	)
	if got := eval(t, seq, ctx, env); !got.Equal(context.IntValue(2)) {
		t.Errorf("got %s, want 2", got)
	}
}

func TestIfBranches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}

	cond := NewTerminal(loc, context.BoolValue(false))
	e := NewIf(loc, cond, NewTerminal(loc, context.IntValue(1)), NewTerminal(loc, context.IntValue(2)))
	if got := eval(t, e, ctx, env); !got.Equal(context.IntValue(2)) {
		t.Errorf("got %s, want 2 (else branch)", got)
	}
}

func TestCallBuiltinLen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}

	e := NewCall(loc, "len", NewTerminal(loc, context.StrValue("hello")))
	if got := eval(t, e, ctx, env); !got.Equal(context.IntValue(5)) {
		t.Errorf("got %s, want 5", got)
	}
}

func TestCallUnknownBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nanta.action")
	defer teardown()
	//
	env := NewEnv()
	ctx := context.NewRootContext(nil)
	loc := nanta.SourceLocation{}

	e := NewCall(loc, "nonesuch")
	_, err := e.Eval(ctx, env)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != UnknownBuiltin {
		t.Errorf("got %v, want UnknownBuiltin RuntimeError", err)
	}
}

func TestChainSkipsNilActions(t *testing.T) {
	loc := nanta.SourceLocation{}
	a := NewTerminal(loc, context.IntValue(1))
	combined := Chain(nil, a, nil)
	if combined != Expr(a) {
		t.Errorf("Chain of a single non-nil action should return it unwrapped")
	}
	if Chain(nil, nil) != nil {
		t.Errorf("Chain of only nil actions should be nil")
	}
}
