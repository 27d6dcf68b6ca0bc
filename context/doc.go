/*
Package context implements the per-branch variable store of the traveller
(spec component C3): a tagged six-type variant value plus a chain of
context frames with copy-on-write inheritance.

A Context is owned by exactly one traveller State. Reading a key walks
the frame chain from the asking Context up through its ancestors; writing
always targets the asking Context's own frame, lazily materializing it
(and never touching an ancestor's bindings), which is what makes siblings
and ancestors immune to a descendant's writes (property P5).

Keys are canonicalized through an Interner owned by the traveller/engine
as an explicit value rather than a package global (see the "Global
state" design note in spec.md §9).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package context
