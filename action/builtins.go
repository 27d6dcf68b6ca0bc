package action

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/nparse/nanta/context"
)

// tracer traces with key 'nanta.action'.
func tracer() tracing.Trace {
	return tracing.Select("nanta.action")
}

// Builtin is a small built-in function available to call() nodes (spec
// §4.4, "a small set of built-in functions ... provided by the runtime
// plugin"). The core ships a minimal default set; a staging.Provider may
// register additional ones through Env.Register.
type Builtin func(args []context.Value) (context.Value, error)

// Env carries the builtin registry an evaluation runs against. It is
// created once per
// Engine and shared by every State's evaluation (builtins are pure
// functions of their arguments, so sharing is safe).
type Env struct {
	builtins map[string]Builtin
}

// NewEnv creates an Env preloaded with the default builtin family.
func NewEnv() *Env {
	e := &Env{builtins: make(map[string]Builtin)}
	e.Register("len", builtinLen)
	e.Register("substr", builtinSubstr)
	e.Register("number", builtinNumber)
	e.Register("string", builtinString)
	e.Register("upper", builtinUpper)
	e.Register("lower", builtinLower)
	e.Register("print", builtinPrint)
	return e
}

// Register adds or replaces a builtin under name.
func (e *Env) Register(name string, fn Builtin) {
	e.builtins[name] = fn
}

// Builtin looks up a registered builtin by name.
func (e *Env) Builtin(name string) (Builtin, bool) {
	fn, ok := e.builtins[name]
	return fn, ok
}

func builtinLen(args []context.Value) (context.Value, error) {
	if len(args) != 1 {
		return context.NullValue, fmt.Errorf("len: want 1 argument, got %d", len(args))
	}
	return context.IntValue(int64(len(args[0].AsString()))), nil
}

func builtinSubstr(args []context.Value) (context.Value, error) {
	if len(args) != 3 {
		return context.NullValue, fmt.Errorf("substr: want 3 arguments, got %d", len(args))
	}
	s := []rune(args[0].AsString())
	from, err := args[1].AsInteger()
	if err != nil {
		return context.NullValue, err
	}
	length, err := args[2].AsInteger()
	if err != nil {
		return context.NullValue, err
	}
	if from < 0 {
		from = 0
	}
	to := from + length
	if to > int64(len(s)) {
		to = int64(len(s))
	}
	if from > to {
		from = to
	}
	return context.StrValue(string(s[from:to])), nil
}

func builtinNumber(args []context.Value) (context.Value, error) {
	if len(args) != 1 {
		return context.NullValue, fmt.Errorf("number: want 1 argument, got %d", len(args))
	}
	r, err := args[0].AsReal()
	if err != nil {
		return context.NullValue, err
	}
	return context.RealValue(r), nil
}

func builtinString(args []context.Value) (context.Value, error) {
	if len(args) != 1 {
		return context.NullValue, fmt.Errorf("string: want 1 argument, got %d", len(args))
	}
	return context.StrValue(args[0].AsString()), nil
}

func builtinUpper(args []context.Value) (context.Value, error) {
	if len(args) != 1 {
		return context.NullValue, fmt.Errorf("upper: want 1 argument, got %d", len(args))
	}
	return context.StrValue(strings.ToUpper(args[0].AsString())), nil
}

func builtinLower(args []context.Value) (context.Value, error) {
	if len(args) != 1 {
		return context.NullValue, fmt.Errorf("lower: want 1 argument, got %d", len(args))
	}
	return context.StrValue(strings.ToLower(args[0].AsString())), nil
}

func builtinPrint(args []context.Value) (context.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.AsString()
	}
	line := strings.Join(parts, "")
	tracer().Infof("print: %s", line)
	return context.StrValue(line), nil
}
