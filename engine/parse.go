package engine

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/tracer"
	"github.com/nparse/nanta/traveller"
)

// Parse runs the traveller over in against the loaded grammar, starting
// a fresh search every call (spec §6, "parse(input) → runs the
// traveller. Returns success iff ≥1 trace."). The engine must already be
// in StatusSteady, StatusCompleted or a terminal error state (i.e. Load
// has succeeded at least once); calling it before any Load is a logic
// error.
func (e *Engine) Parse(in nanta.Input) (bool, error) {
	if e.entryNode == nil {
		e.status = StatusLogicError
		return false, NewError(CompileTime, "parse called before load")
	}

	e.status = StatusRunning
	e.input = in

	tv := traveller.NewTraveller(e.entryNode, e.entryLabel, e.cfg.travellerOpts...)
	rootIdx, err := tv.Init(in)
	if err != nil {
		return e.fail(err)
	}

	root := tv.State(rootIdx)
	for _, s := range e.seeds {
		root.Ctx.Set(s.name, s.value)
	}

	if _, err := tv.Run(); err != nil {
		return e.fail(err)
	}

	e.tv = tv
	e.rootIdx = rootIdx
	e.tc = tracer.New(tv)

	traces := tv.Traces()
	switch {
	case len(traces) == 0:
		e.status = StatusSyntaxError
		e.messages = append(e.messages, NewError(Diagnostic, "no accepting trace"))
		return false, nil
	case len(traces) > 1 && e.cfg.requireUnique:
		e.status = StatusSyntaxAmbiguity
		e.messages = append(e.messages, NewError(Diagnostic, "multiple surface traces"))
		return false, nil
	}

	e.status = StatusCompleted
	return true, nil
}

// fail records a runtime error surfaced by Init/Run and terminates the
// current parse (spec §7, "Terminate the current parse call with status
// set and message list populated").
func (e *Engine) fail(cause error) (bool, error) {
	e.status = StatusRuntimeError
	err := NewError(Runtime, cause.Error())
	e.messages = append(e.messages, err)
	return false, err
}
