package staging

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/acceptor"
	"github.com/nparse/nanta/network"
)

// Provider is the external grammar-compiler collaborator the core's
// engine.Load consults (spec §6, "IStaging / grammar provider"). A
// concrete Provider owns the grammar source, compiles (or loads a
// cached compile of) an acceptor network, and answers source-location
// and diagnostic-decoration queries the core cannot answer on its own
// since it never retains the original grammar text.
type Provider interface {
	// Cluster returns the entry network.Node for the named rule, or nil
	// if name is not a defined rule (spec §6, "cluster(name)").
	Cluster(name string) *network.Node

	// EntryLabel returns the label (tag, action) to attach to the
	// synthetic arc the traveller spawns its root State through for the
	// named rule (spec §6, "entry-label value").
	EntryLabel(name string) network.Label

	// Identify resolves an input offset to a source location, used to
	// decorate runtime-error messages with the grammar-source position
	// an acceptor or action was compiled from (spec §6, "identify(offset)").
	Identify(offset int) nanta.SourceLocation

	// Extend populates d with whatever additional staging-side context
	// the Provider can add (e.g. the grammar file a rule came from)
	// before the error is surfaced to the host (spec §6, "extend(error)").
	Extend(d Diagnostic)
}

// Diagnostic is the narrow view of engine.Error a Provider is allowed to
// decorate, kept here rather than importing package engine so the
// dependency runs staging → (nothing), engine → staging, never the
// other way.
type Diagnostic interface {
	SetLocation(loc nanta.SourceLocation)
	AddMessage(msg string)
}

// Registry resolves the string identifiers a compiled network's arcs
// reference back to concrete acceptor.Acceptor instances at grammar-load
// time (spec §6, "Acceptor registry"). Once a network.Arc is built, the
// core treats its Acceptor field as opaque and never consults the
// Registry again; Registry exists purely for the Provider's own
// compile step. engine.Load does not hand a Registry to the Provider.
type Registry interface {
	// Lookup returns the acceptor registered under id, and whether one
	// was found.
	Lookup(id string) (acceptor.Acceptor, bool)
	// Register installs acc under id, overwriting any prior entry.
	Register(id string, acc acceptor.Acceptor)
}

// MapRegistry is a Registry backed by a plain map, sufficient for
// grammars whose acceptor set is fixed at process start.
type MapRegistry struct {
	entries map[string]acceptor.Acceptor
}

// NewMapRegistry creates an empty MapRegistry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{entries: make(map[string]acceptor.Acceptor)}
}

func (r *MapRegistry) Lookup(id string) (acceptor.Acceptor, bool) {
	acc, ok := r.entries[id]
	return acc, ok
}

func (r *MapRegistry) Register(id string, acc acceptor.Acceptor) {
	r.entries[id] = acc
}

var _ Registry = (*MapRegistry)(nil)

// Variables is the character-encoding and string-interning collaborator
// used by key canonicalization and string-valued acceptors (spec §6,
// "Variable collaborator"). The core's own context.Interner handles
// Context key interning; Variables additionally normalizes the raw
// grammar-source text (case folding, encoding conversion) before a key
// or literal reaches the Interner, work the core itself does not know
// how to do since encoding policy is a staging concern.
type Variables interface {
	// Canonicalize normalizes a raw identifier (case folding, Unicode
	// normalization) into the form used as a Context key.
	Canonicalize(raw string) string
	// Decode converts grammar-source text (e.g. escaped literals) from
	// its source encoding into the nanta.Input rune form.
	Decode(raw string) string
}

// IdentityVariables is a no-op Variables, suitable for grammars in plain
// UTF-8 with no case folding.
type IdentityVariables struct{}

func (IdentityVariables) Canonicalize(raw string) string { return raw }
func (IdentityVariables) Decode(raw string) string       { return raw }

var _ Variables = IdentityVariables{}
