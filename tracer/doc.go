/*
Package tracer enumerates the completed parses a traveller.Traveller has
recorded (spec component C7). Given a finished Traveller, a Tracer walks
each trace-terminal State back to its root, assembling the chain of
every State on that path, then lets callers step forward through it;
Step skips the States whose Type is Skip.

The cursor-based navigation API (next/step/type/relative) is pull-style
rather than a push-style visitor, since nanta's caller (package engine)
wants random-access "give me the current state" queries rather than a
single top-down callback pass.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tracer
