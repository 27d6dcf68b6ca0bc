/*
Package traveller implements the state-spawning search engine of spec
component C6, the heart of the core. A Traveller walks a network.Node
graph, consulting acceptor.Acceptor predicates to spawn States from a
pool.Pool, evaluating action.Expr labels against each State's
context.Context on entry, and recording completed parses for later
enumeration by package tracer.

The scheduler queue switches between depth-first and breadth-first
popping the moment a negative-assertion arc enters the search, so a
negation's subtree can resolve before its siblings propagate
irreversibly. The State-graph-as-forest shape (every State points only
at its ancestor, never the reverse) follows spec.md §9's arena/index
design note, which is why traveller owns the pool.Pool[State] directly
rather than allocating States as ordinary Go values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package traveller
