package action

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

// Expr is a compiled semantic-action expression-tree node (spec §4.4,
// "Node kinds"). Grammar labels compile to a tree of these once; the
// traveller evaluates the tree on entry to a State against that State's
// Context.
type Expr interface {
	Eval(ctx *context.Context, env *Env) (context.Value, error)
	Location() nanta.SourceLocation
}

// lvalue is implemented by the Expr kinds that can appear on the
// writable side of a VarAssign: a plain variable reference or an
// array-index chain (spec §4.4, "array-index ... yield a[k] as an
// lvalue (auto-creates on write)").
type lvalue interface {
	ref(ctx *context.Context, env *Env, writable bool) (*context.Value, error)
}

type base struct {
	Loc nanta.SourceLocation
}

func (b base) Location() nanta.SourceLocation { return b.Loc }

// Terminal is a literal null/boolean/integer/real/string (spec §4.4).
type Terminal struct {
	base
	Value context.Value
}

func NewTerminal(loc nanta.SourceLocation, v context.Value) *Terminal {
	return &Terminal{base{loc}, v}
}

func (t *Terminal) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	return t.Value, nil
}

// VarRef is a read-only access to a context variable (spec §4.4,
// "variable-ref(key)").
type VarRef struct {
	base
	Key string
}

func NewVarRef(loc nanta.SourceLocation, key string) *VarRef {
	return &VarRef{base{loc}, key}
}

func (v *VarRef) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	return ctx.Val(v.Key), nil
}

func (v *VarRef) ref(ctx *context.Context, env *Env, writable bool) (*context.Value, error) {
	return ctx.Ref(v.Key, writable), nil
}

var _ lvalue = (*VarRef)(nil)

// Index is array-index(a, k): if a is an array-valued context, yields
// a[k]. When used as the target of a VarAssign it auto-creates the
// array (and the key within it) on write.
type Index struct {
	base
	Array Expr
	Key   Expr
}

func NewIndex(loc nanta.SourceLocation, array, key Expr) *Index {
	return &Index{base{loc}, array, key}
}

func (ix *Index) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	ref, err := ix.ref(ctx, env, false)
	if err != nil {
		return context.NullValue, err
	}
	return *ref, nil
}

func (ix *Index) ref(ctx *context.Context, env *Env, writable bool) (*context.Value, error) {
	var arrCtx *context.Context
	if lv, ok := ix.Array.(lvalue); ok && writable {
		aref, err := lv.ref(ctx, env, true)
		if err != nil {
			return nil, err
		}
		if aref.Type() == context.Null {
			child := context.NewChildContext(ctx)
			*aref = context.ArrValue(child)
		}
		var err2 error
		arrCtx, err2 = aref.AsArray()
		if err2 != nil {
			return nil, newError(NotAnArray, ix.Loc, "array-index target is not an array", err2)
		}
	} else {
		av, err := ix.Array.Eval(ctx, env)
		if err != nil {
			return nil, err
		}
		arrCtx, err = av.AsArray()
		if err != nil {
			return nil, newError(NotAnArray, ix.Loc, "array-index of non-array value", err)
		}
	}
	kv, err := ix.Key.Eval(ctx, env)
	if err != nil {
		return nil, err
	}
	return arrCtx.Ref(kv.AsString(), writable), nil
}

var _ lvalue = (*Index)(nil)

// VarAssign evaluates Rhs and writes it into Target (spec §4.4,
// "variable-assign(key, rhs)", generalized so Target may be a VarRef
// or an Index chain; both implement lvalue).
type VarAssign struct {
	base
	Target lvalue
	Rhs    Expr
}

// Assign builds the common case: assignment to a plain variable name.
func Assign(loc nanta.SourceLocation, key string, rhs Expr) *VarAssign {
	return &VarAssign{base{loc}, NewVarRef(loc, key), rhs}
}

// AssignIndex builds an assignment to an array element.
func AssignIndex(loc nanta.SourceLocation, array, key Expr, rhs Expr) *VarAssign {
	return &VarAssign{base{loc}, NewIndex(loc, array, key), rhs}
}

func (a *VarAssign) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	v, err := a.Rhs.Eval(ctx, env)
	if err != nil {
		return context.NullValue, err
	}
	if vr, ok := a.Target.(*VarRef); ok {
		// Set, not Ref+write, so invariant I4 elision applies.
		ctx.Set(vr.Key, v)
		return v, nil
	}
	ref, err := a.Target.ref(ctx, env, true)
	if err != nil {
		return context.NullValue, err
	}
	*ref = v
	return v, nil
}

// Seq evaluates its children left-to-right, yielding the last (spec
// §4.4, "sequence(e1, …, en)").
type Seq struct {
	base
	Exprs []Expr
}

func NewSeq(loc nanta.SourceLocation, exprs ...Expr) *Seq {
	return &Seq{base{loc}, exprs}
}

func (s *Seq) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	result := context.NullValue
	for _, e := range s.Exprs {
		v, err := e.Eval(ctx, env)
		if err != nil {
			return context.NullValue, err
		}
		result = v
	}
	return result, nil
}

// If evaluates Cond, coerces it to boolean, and evaluates Then or Else.
type If struct {
	base
	Cond, Then, Else Expr
}

func NewIf(loc nanta.SourceLocation, cond, then, els Expr) *If {
	return &If{base{loc}, cond, then, els}
}

func (f *If) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	cv, err := f.Cond.Eval(ctx, env)
	if err != nil {
		return context.NullValue, err
	}
	b, err := cv.AsBoolean()
	if err != nil {
		return context.NullValue, newError(BadCast, f.Loc, "if condition", err)
	}
	if b {
		if f.Then == nil {
			return context.NullValue, nil
		}
		return f.Then.Eval(ctx, env)
	}
	if f.Else == nil {
		return context.NullValue, nil
	}
	return f.Else.Eval(ctx, env)
}

// Call invokes a builtin function by name (spec §4.4, "call(builtin,
// args)"), resolved through Env's builtin registry.
type Call struct {
	base
	Name string
	Args []Expr
}

func NewCall(loc nanta.SourceLocation, name string, args ...Expr) *Call {
	return &Call{base{loc}, name, args}
}

func (c *Call) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	fn, ok := env.Builtin(c.Name)
	if !ok {
		return context.NullValue, newError(UnknownBuiltin, c.Loc, c.Name, nil)
	}
	args := make([]context.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Eval(ctx, env)
		if err != nil {
			return context.NullValue, err
		}
		args[i] = v
	}
	v, err := fn(args)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return context.NullValue, err
		}
		return context.NullValue, newError(BadArity, c.Loc, c.Name, err)
	}
	return v, nil
}
