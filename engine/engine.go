package engine

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
	"github.com/nparse/nanta/network"
	"github.com/nparse/nanta/pool"
	"github.com/nparse/nanta/staging"
	"github.com/nparse/nanta/tracer"
	"github.com/nparse/nanta/traveller"
)

// tr traces with key 'nanta.engine'.
func tr() tracing.Trace {
	return tracing.Select("nanta.engine")
}

// seed is one variable binding recorded by Set, applied to the root
// Context at the start of the next Parse.
type seed struct {
	name  string
	value context.Value
}

// Engine is the embedding-facing façade tying a staging.Provider, a
// traveller.Traveller and a tracer.Tracer into the lifecycle spec §6
// describes: new, load, parse, trace navigation, variable access and
// diagnostics.
type Engine struct {
	cfg *config

	provider   staging.Provider
	ruleName   string
	entryNode  *network.Node
	entryLabel network.Label

	status   Status
	messages []*Error

	seeds []seed

	input   nanta.Input
	tv      *traveller.Traveller
	tc      *tracer.Tracer
	rootIdx pool.Index
}

// New creates an Engine in StatusReady, not yet bound to any grammar.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &Engine{cfg: cfg, status: StatusReady}
}

// Destroy releases e's bound grammar and search state, returning it to
// StatusReady (spec §6, "new / destroy engine"). Go's garbage collector
// reclaims the memory; Destroy exists so the embedding lifecycle has an
// explicit counterpart to New, the same shape as traveller.Traveller.Reset.
func (e *Engine) Destroy() {
	e.provider = nil
	e.ruleName = ""
	e.entryNode = nil
	e.entryLabel = network.Label{}
	e.tv = nil
	e.tc = nil
	e.seeds = nil
	e.messages = nil
	e.status = StatusReady
}

// Status returns the engine's current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Load compiles or retrieves the network for ruleName through p,
// transitioning ready → steady on success (spec §6, "load(grammar_source)").
func (e *Engine) Load(p staging.Provider, ruleName string) error {
	node := p.Cluster(ruleName)
	if node == nil {
		err := NewError(CompileTime, fmt.Sprintf("undefined rule %q", ruleName))
		p.Extend(err)
		e.messages = append(e.messages, err)
		e.status = StatusCompileError
		return err
	}
	e.provider = p
	e.ruleName = ruleName
	e.entryNode = node
	e.entryLabel = p.EntryLabel(ruleName)
	e.status = StatusSteady
	tr().Infof("engine: loaded rule %q", ruleName)
	return nil
}

// Set seeds varname with value in the root Context before the next Parse
// (spec §6, "set(varname, value)").
func (e *Engine) Set(varname string, value context.Value) {
	e.seeds = append(e.seeds, seed{name: varname, value: value})
}

// Get returns varname's value at the tracer's current trace position, or
// NullValue if no trace has been entered yet (spec §6, "get(varname)").
func (e *Engine) Get(varname string) context.Value {
	s := e.currentState()
	if s == nil {
		return context.NullValue
	}
	return s.Ctx.Val(varname)
}

// RootContext returns the full root context of the current parse (spec
// §6, "get(null) → the full root context"), or nil before any Parse.
func (e *Engine) RootContext() *context.Context {
	if e.tv == nil {
		return nil
	}
	return e.tv.State(e.rootIdx).Ctx
}

func (e *Engine) currentState() *traveller.State {
	if e.tc == nil {
		return nil
	}
	return e.tc.Current()
}
