/*
Package nanta is a nondeterministic acceptor-network traveller: a generic
engine that explores all parses of an input against a graph of labeled
arcs carrying acceptor predicates, recording semantic-action side effects
per branch.

The engine itself does not know any concrete grammar. Callers (or a
grammar compiler acting as a staging.Provider, see package staging) hand
it a pre-built network of package network Nodes and Arcs; package
traveller explores it, package context holds the per-branch variable
store the semantic-action DSL of package action mutates, package pool
allocates the search-tree States the traveller spawns, and package
tracer enumerates the accepting branches back to callers.

Package structure, leaves first:

■ acceptor: predicates that test input ranges and push candidate matches.

■ network: the node/arc/label graph the traveller walks.

■ context: the tagged variant value model for trace variables, and
per-branch, copy-on-write variable stores.

■ action: the semantic-action expression DSL and its evaluator.

■ pool: the monotonic, evictable allocator backing search States.

■ traveller: the state-spawning search engine itself.

■ tracer: enumerates completed traces for callers to inspect.

■ staging: the collaborator interfaces the core consumes from an external
grammar compiler.

■ engine: the embedding-facing port API tying the above together.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package nanta
