package traveller

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/acceptor"
	"github.com/nparse/nanta/action"
	"github.com/nparse/nanta/context"
	"github.com/nparse/nanta/network"
	"github.com/nparse/nanta/pool"
)

// Traveller is the state-spawning search engine of spec component C6. It
// walks a network.Node graph from a single entry arc, spawning States
// into a pool.Pool as acceptors accept input ranges, evaluating each
// State's label action on entry, and recording completed parses.
type Traveller struct {
	cfg *config

	states *pool.Pool[State]
	queue  *schedQueue

	deferred     []pool.Index
	traces       []pool.Index
	hasNegations bool
	iterations   int

	entry      *network.Node
	entryArc   *network.Arc
	entryLabel network.Label

	input    nanta.Input
	full     nanta.Range
	interner *context.Interner
	env      *action.Env
}

// NewTraveller creates a Traveller rooted at entry, marking its synthetic
// entry arc with entryLabel (spec §4.6, "Construction"; mirrors the
// original's m_entry_arc, an Unconditional/Simple arc into the entry
// node).
func NewTraveller(entry *network.Node, entryLabel network.Label, opts ...Option) *Traveller {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	t := &Traveller{
		cfg:        cfg,
		states:     pool.NewPool[State](cfg.poolCapacity),
		queue:      newSchedQueue(),
		entry:      entry,
		entryLabel: entryLabel,
		interner:   context.NewInterner(),
		env:        action.NewEnv(),
	}
	t.entryArc = &network.Arc{
		Target:   entry,
		Acceptor: acceptor.Unconditional{},
		Type:     network.Simple,
		Label:    entryLabel,
	}
	return t
}

// Env returns the builtin-evaluation environment the Traveller passes to
// every label's action.Expr; callers register additional builtins before
// Init.
func (t *Traveller) Env() *action.Env { return t.env }

// State returns the State stored at idx.
func (t *Traveller) State(idx pool.Index) *State { return t.states.Get(idx) }

// Traces returns the indices of completed parses recorded so far (spec
// §4.6, "trace list").
func (t *Traveller) Traces() []pool.Index { return t.traces }

// Iterations returns the number of inner-loop pulls performed.
func (t *Traveller) Iterations() int { return t.iterations }

// PoolUsage, PoolPeak and PoolCapacity expose the underlying pool.Pool's
// accounting for the engine's diagnostics surface (spec §6, "pool
// usage/peak/capacity"). PoolUsage also serves as the engine's live
// context count, counting one Context frame per live State; a
// positive-assertion split State in fact shares its caller's frame.
func (t *Traveller) PoolUsage() int    { return t.states.Usage() }
func (t *Traveller) PoolPeak() int     { return t.states.Peak() }
func (t *Traveller) PoolCapacity() int { return t.states.Capacity() }

// Reset clears the Traveller back to its pre-Init state (spec §4.6,
// "reset").
func (t *Traveller) Reset() {
	t.states.Clear()
	t.queue = newSchedQueue()
	t.deferred = nil
	t.traces = nil
	t.hasNegations = false
	t.iterations = 0
}

// Init spawns the root State over input and pushes it onto the queue
// (spec §4.6, "Initialization"). The root's own context is created
// fresh, rooted at the Traveller's Interner.
func (t *Traveller) Init(in nanta.Input) (pool.Index, error) {
	t.input = in
	t.full = nanta.Range{First: 0, Last: in.Len()}
	idx, err := t.spawnDescendant(pool.NoIndex, t.entryArc, 0, 0, 0)
	if err != nil {
		return pool.NoIndex, err
	}
	t.enqueueNew(idx)
	return idx, nil
}

// rulePath reconstructs a dotted path of Node names from the root to idx,
// walking Ancestor links; used by diagnostics observers (DeepestReached).
func (t *Traveller) rulePath(idx pool.Index) string {
	var names []string
	cur := idx
	for cur != pool.NoIndex {
		cs := t.states.Get(cur)
		if cs.Node != nil {
			names = append(names, cs.Node.Name)
		}
		cur = cs.Ancestor
	}
	out := ""
	for i := len(names) - 1; i >= 0; i-- {
		if out != "" {
			out += "."
		}
		out += names[i]
	}
	return out
}

func (t *Traveller) observe(kind EventKind, idx pool.Index) {
	t.cfg.observer.Observe(kind, idx, t)
}

// Run drives the outer/inner loop pair of spec §4.6 to convergence,
// resolving entangled groups between inner-loop passes, and returns the
// total number of pulls performed.
func (t *Traveller) Run() (int, error) {
	for {
		if err := t.runInnerLoop(); err != nil {
			return t.iterations, err
		}
		if len(t.deferred) == 0 {
			break
		}
		t.resolveEntanglement()
	}
	return t.iterations, nil
}

// runInnerLoop pulls States off the queue until it drains, entering each
// one, expanding its bunch, and handling endpoints (spec §4.6, "Inner
// loop").
func (t *Traveller) runInnerLoop() error {
	for !t.queue.isEmpty() {
		var idx pool.Index
		var ok bool
		if t.hasNegations {
			idx, ok = t.queue.popFront()
		} else {
			idx, ok = t.queue.popBack()
		}
		if !ok {
			break
		}
		t.iterations++
		t.observe(EvPull, idx)

		s := t.states.Get(idx)
		if s.Blocked() {
			continue
		}

		entered, err := t.enterLabel(s)
		if err != nil {
			return err
		}
		if !entered {
			s.block()
			t.observe(EvDeny, idx)
			continue
		}
		t.observe(EvEntry, idx)

		if s.Node.Endpoint {
			next, expand := t.handleEndpoint(idx, s)
			if !expand {
				continue
			}
			idx = next
			s = t.states.Get(idx)
		}

		if err := t.expandBunch(idx, s); err != nil {
			return err
		}
	}
	return nil
}

// enterLabel evaluates the semantic action attached to the arc that
// produced s, if any (spec §4.6, "Entry"). Any error from the action
// blocks s without aborting the parse (spec §7); enterLabel never
// returns an error. The action's result value is not inspected, so an
// action that yields false does not block s.
func (t *Traveller) enterLabel(s *State) (bool, error) {
	if s.ProducedBy == nil || s.ProducedBy.Label.Action == nil {
		return true, nil
	}
	_, err := s.ProducedBy.Label.Action.Eval(s.Ctx, t.env)
	if err != nil {
		return false, nil
	}
	return true, nil
}
