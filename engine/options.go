package engine

import (
	"github.com/nparse/nanta/staging"
	"github.com/nparse/nanta/traveller"
)

// Option configures an Engine at construction time, following the same
// functional-options pattern package traveller exposes (spec §10,
// "Configuration").
type Option func(*config)

type config struct {
	travellerOpts []traveller.Option
	registry      staging.Registry
	vars          staging.Variables
	requireUnique bool
}

func defaultConfig() *config {
	return &config{
		registry: staging.NewMapRegistry(),
		vars:     staging.IdentityVariables{},
	}
}

// WithPoolCapacity forwards to traveller.WithPoolCapacity.
func WithPoolCapacity(n int) Option {
	return func(c *config) { c.travellerOpts = append(c.travellerOpts, traveller.WithPoolCapacity(n)) }
}

// WithSwapFile forwards to traveller.WithSwapFile.
func WithSwapFile(path string) Option {
	return func(c *config) { c.travellerOpts = append(c.travellerOpts, traveller.WithSwapFile(path)) }
}

// WithLRThreshold forwards to traveller.WithLRThreshold.
func WithLRThreshold(n int) Option {
	return func(c *config) { c.travellerOpts = append(c.travellerOpts, traveller.WithLRThreshold(n)) }
}

// WithObserver forwards to traveller.WithObserver.
func WithObserver(o traveller.Observer) Option {
	return func(c *config) { c.travellerOpts = append(c.travellerOpts, traveller.WithObserver(o)) }
}

// WithRegistry records r as the engine's staging.Registry (spec §6,
// "Acceptor registry"). The engine does not read it back: Load does not
// pass it to the Provider.
func WithRegistry(r staging.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithVariables records v as the engine's staging.Variables collaborator
// (spec §6, "Variable collaborator"). The engine does not read it back:
// variable keys are interned by the traveller's contexts without
// consulting it.
func WithVariables(v staging.Variables) Option {
	return func(c *config) { c.vars = v }
}

// WithUniqueTrace makes Parse report StatusSyntaxAmbiguity instead of
// StatusCompleted when more than one surface trace is found (spec §7,
// "multiple surface traces when the host's mode demands uniqueness").
func WithUniqueTrace() Option {
	return func(c *config) { c.requireUnique = true }
}
