/*
Package pool implements the state allocator of spec component C5: a
monotonic bump allocator with last-in-first-out eviction, peak-usage
tracking, and an optional file-backed variant for exceptionally large
parses.

Pool[T] (pool.go) is the allocator the traveller uses for States
themselves: States reference each other by pool index rather than by
pointer (spec.md §9, "store network Nodes and Arcs in arenas ... States
are pool-allocated and reference each other by raw index"), which is
what lets eviction roll the cursor back without invalidating live Go
pointers.

ByteRegion (region.go) is a literal byte-addressed sibling of the
original's utility::memory_pool (include/utility/memory_pool.hpp: a
preallocated byte buffer, a monotonic cursor, allocate/clear), kept
around for collaborators (e.g. a staging.Provider) that want raw
byte-buffer semantics instead of typed slot semantics; its file-backed
variant (mmapregion.go) memory-maps a file via golang.org/x/exp/mmap,
matching the original's file_pool.hpp.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pool
