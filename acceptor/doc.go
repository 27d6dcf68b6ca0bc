/*
Package acceptor implements the acceptor predicates of spec component C1:
pure functions that examine a candidate input range and push zero or
more accepted sub-ranges into a Spectrum. Acceptors never mutate shared
state and never throw for an ordinary rejection; rejection is simply
"pushed nothing" (see the "Exceptions" design note in spec.md §9), which
is why Accept has no return value at all.

The required family (Unconditional, Symbol, String, Class/Range, Test,
RegEx, End, Check, Not, Once) covers the predicate shapes spec.md §4.1
names, including the RegEx member (a single-pattern lexmachine.Lexer
compiled once, re-scanned per call; see regex.go), the Check/Not
combinators, and the Symbol/String case-folding flags spec.md's
distillation compresses into one line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package acceptor
