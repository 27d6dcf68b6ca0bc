/*
Package network implements the acceptor-network data model (spec
component C2): Nodes, Arcs, and Labels forming the directed graph a
traveller explores. The graph is cyclic by design (it encodes grammars);
ownership is not; every Arc is owned by its source Node's bunch, and
Nodes/Arcs/Labels are built once by an external grammar compiler and are
immutable for the lifetime of the engine.

A Node's bunch of outgoing Arcs is held in a github.com/emirpasic/gods
arraylist.List, the same container family used elsewhere in this module
for ordered, index-addressable collections.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package network
