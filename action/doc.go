/*
Package action implements the semantic-action DSL (spec component C4): a
small expression-tree language compiled once by the grammar provider and
evaluated on entry to a traveller State against its Context.

The tree shape follows spec.md §4.4 exactly (terminal, variable-ref,
variable-assign, array-index, unary, binary, sequence, if, call); the
evaluator is a direct recursive-descent walk, resolving each node's
operands before dispatching on its kind. The evaluator does not log;
the only tracer() output in this package comes from the print builtin.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package action
