/*
Package engine is the embedding-facing port API (spec §6, "Output
(exposed)"): the single façade a host program links against, tying
together a staging.Provider-supplied network, a traveller.Traveller
search, and a tracer.Tracer walk into `new → load → parse → navigate`
lifecycle calls plus a structured Error type and a 9-value status enum.

Engine wraps a staging.Provider plus a traveller.Traveller behind a
small set of verbs, stripped of anything CLI-shaped, since the CLI layer
itself is out of scope (spec.md §1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package engine
