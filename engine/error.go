package engine

import (
	"fmt"
	"strings"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/staging"
)

// ErrorKind classifies an Error by the recovery posture spec §7's
// taxonomy assigns it.
type ErrorKind int8

const (
	// CompileTime errors are malformed grammar, unresolved rule
	// references, duplicate definitions: parsing cannot proceed.
	CompileTime ErrorKind = iota
	// Diagnostic errors are parse-time: no accepting trace, or multiple
	// surface traces when the host demands uniqueness.
	Diagnostic
	// Runtime errors are DSL evaluation failures, acceptor failures, or
	// pool exhaustion: they terminate the current Parse call.
	Runtime
)

func (k ErrorKind) String() string {
	switch k {
	case CompileTime:
		return "compile-time"
	case Diagnostic:
		return "diagnostic"
	case Runtime:
		return "runtime"
	}
	return "?"
}

// Error is the core's structured error type (spec §7, "User-visible
// failure"): a short message, an optional function/context name, and an
// optional source location. It implements staging.Diagnostic so a
// staging.Provider can decorate it via Extend.
type Error struct {
	Kind     ErrorKind
	Func     string
	Loc      nanta.SourceLocation
	messages []string
}

var _ staging.Diagnostic = (*Error)(nil)
var _ error = (*Error)(nil)

// NewError creates an Error of the given kind carrying msg as its first
// message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, messages: []string{msg}}
}

// SetLocation implements staging.Diagnostic.
func (e *Error) SetLocation(loc nanta.SourceLocation) { e.Loc = loc }

// AddMessage implements staging.Diagnostic, appending another message to
// the list (spec §7: "Multiple errors may coexist in one message list").
func (e *Error) AddMessage(msg string) { e.messages = append(e.messages, msg) }

// Messages returns every message text attached to e, in order.
func (e *Error) Messages() []string { return e.messages }

// MessageCount returns len(e.Messages()).
func (e *Error) MessageCount() int { return len(e.messages) }

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Func != "" {
		fmt.Fprintf(&b, " in %s", e.Func)
	}
	if e.Loc != (nanta.SourceLocation{}) {
		fmt.Fprintf(&b, " at %s", e.Loc)
	}
	b.WriteString(": ")
	b.WriteString(strings.Join(e.messages, "; "))
	return b.String()
}
