package context

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nanta.context'.
func tracer() tracing.Trace {
	return tracing.Select("nanta.context")
}

// Context is one frame in the per-branch variable chain (spec §3,
// "Context"). A frame holds only the bindings a State's own subtree has
// written; reads walk the chain of ancestor frames. Frames are keyed by
// interned Keys rather than raw strings, and are materialized lazily
// instead of up front, which is what gives copy-on-write without an
// explicit copy step.
type Context struct {
	parent   *Context
	interner *Interner
	bindings map[Key]*Value
}

// NewRootContext creates a Context with no ancestor, owning in as its
// shared Interner. All descendant contexts must be created with
// NewChildContext so that they share the same Interner.
func NewRootContext(in *Interner) *Context {
	if in == nil {
		in = NewInterner()
	}
	return &Context{interner: in}
}

// NewChildContext creates a new, empty frame whose lookups fall back to
// parent. It is cheap: no copying happens until the child is written to.
func NewChildContext(parent *Context) *Context {
	return &Context{parent: parent, interner: parent.interner}
}

// Parent returns the ancestor frame, or nil for a root context.
func (c *Context) Parent() *Context { return c.parent }

// Interner returns the Key table this context (and its whole chain) shares.
func (c *Context) Interner() *Interner { return c.interner }

func (c *Context) localRef(k Key) *Value {
	if c.bindings == nil {
		return nil
	}
	return c.bindings[k]
}

// Val performs a read-only lookup (spec §4.3 "val(key)"): it walks the
// frame chain from c to the root and returns the first definition, or
// Null if none exists.
func (c *Context) Val(key string) Value {
	return c.ValByKey(c.interner.Intern(key))
}

// ValByKey is Val for an already-interned Key, avoiding a re-intern on
// hot paths (e.g. the DSL evaluator, which resolves the same variable
// reference many times across sibling branches).
func (c *Context) ValByKey(k Key) Value {
	for cur := c; cur != nil; cur = cur.parent {
		if v := cur.localRef(k); v != nil {
			return *v
		}
	}
	return NullValue
}

// Ref returns a mutable reference to key (spec §4.3 "ref(key, writable)").
// If key is bound in c's own frame, the local binding itself is returned,
// whatever writable says. Otherwise, if writable is false, the inherited
// value (or Null) is returned boxed in a fresh, unlinked Value; mutating
// it has no effect on the context. If writable is true, a local binding
// is materialized, copying the inherited value (or Null).
//
// Ref is the primitive array-index assignment and other lvalue-shaped DSL
// nodes build on; plain variable assignment should prefer Set, which
// additionally elides no-op writes per invariant I4.
func (c *Context) Ref(key string, writable bool) *Value {
	k := c.interner.Intern(key)
	if v := c.localRef(k); v != nil {
		return v
	}
	if !writable {
		v := c.ValByKey(k)
		return &v
	}
	inherited := c.ValByKey(k)
	if c.bindings == nil {
		c.bindings = make(map[Key]*Value)
	}
	ptr := new(Value)
	*ptr = inherited
	c.bindings[k] = ptr
	tracer().Debugf("materialized local binding %q = %s", key, inherited)
	return ptr
}

// Set writes value under key in c's own frame. Per invariant I4, a write
// that reproduces the value key would already resolve to via inheritance
// is elided: no local frame entry is created (or, if c's own frame
// already binds key, that binding is removed), which is what gives
// property P5 (cow isolation) its practical teeth: siblings that never
// truly diverge never allocate distinguishing storage.
func (c *Context) Set(key string, value Value) {
	k := c.interner.Intern(key)
	inheritedFromParent := Value{}
	hasParentBinding := false
	if c.parent != nil {
		inheritedFromParent = c.parent.ValByKey(k)
		hasParentBinding = true
	}
	if hasParentBinding && inheritedFromParent.Equal(value) {
		if c.bindings != nil {
			delete(c.bindings, k)
		}
		tracer().Debugf("elided no-op write %q = %s", key, value)
		return
	}
	if c.bindings == nil {
		c.bindings = make(map[Key]*Value)
	}
	ptr := new(Value)
	*ptr = value
	c.bindings[k] = ptr
}

// ChildContext obtains (creating if absent) the array-valued child
// context stored under key, for building nested associative arrays
// (spec §4.3 "context(key)").
func (c *Context) ChildContext(key string) *Context {
	ref := c.Ref(key, true)
	if ref.typ == Arr && ref.arr != nil {
		return ref.arr
	}
	child := NewChildContext(c)
	*ref = ArrValue(child)
	return child
}

// Binding is one (name, value) pair as enumerated by List.
type Binding struct {
	Key   string
	Value Value
}

// List enumerates bindings visible to c (or, if localOnly, only those
// written directly into c's own frame) into a caller-supplied sink
// (spec §4.3 "list(sink, local_only)"). Per invariant I-context-order,
// enumeration order is unspecified; callers that need a stable order
// should sort the result, which SortedList does for them.
func (c *Context) List(localOnly bool, sink func(Binding)) {
	if localOnly {
		for k, v := range c.bindings {
			sink(Binding{c.interner.Name(k), *v})
		}
		return
	}
	seen := make(map[Key]bool)
	for cur := c; cur != nil; cur = cur.parent {
		for k, v := range cur.bindings {
			if seen[k] {
				continue
			}
			seen[k] = true
			sink(Binding{c.interner.Name(k), *v})
		}
	}
}

// SortedList is List collected into a slice and sorted by key, for
// tooling that needs deterministic output (spec §4.3, invariant
// I-context-order).
func (c *Context) SortedList(localOnly bool) []Binding {
	var out []Binding
	c.List(localOnly, func(b Binding) { out = append(out, b) })
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
