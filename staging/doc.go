/*
Package staging defines the collaborator interfaces the core consumes
from an external grammar compiler and its supporting infrastructure
(spec §6, "Input (consumed)"). Apart from the trivial MapRegistry and
IdentityVariables, nothing in this module implements these interfaces;
a concrete grammar compiler, acceptor-factory registry, and
string/encoding layer live entirely outside the core's scope (spec.md
§1's Non-goals). A Provider is passed to `engine.Load`; a Registry and
Variables are given through engine options.

Each interface is deliberately narrow: the core calls through it and
never sees the concrete type behind it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package staging
