package action

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

// BinaryOp is one of the binary operators of spec §4.4.
type BinaryOp int8

const (
	Add BinaryOp = iota // +  (numeric add / string concat / array concat)
	Sub                 // -
	Mul                 // *
	Div                 // /
	Mod                 // %
	Lt                  // <
	Le                  // <=
	Gt                  // >
	Ge                  // >=
	Eq                  // ==
	Ne                  // !=
	And                 // &&
	Or                  // ||
	BAnd                // &
	BOr                 // |
	BXor                // ^
)

func (op BinaryOp) String() string {
	return [...]string{"+", "-", "*", "/", "%", "<", "<=", ">", ">=", "==", "!=", "&&", "||", "&", "|", "^"}[op]
}

// Binary is binary(op, x, y) (spec §4.4). Comparison and logical
// operators always yield a boolean. `+` is overloaded on the priority-cast
// type (property P7): strings concatenate, arrays merge (see add), reals
// and integers add. `-`, `*`, `/` and `%` yield a real when the
// priority-cast type is real (`%` on reals is a BadCast) and an integer
// otherwise. The bitwise operators coerce both operands to integer and
// yield an integer.
type Binary struct {
	base
	Op   BinaryOp
	X, Y Expr
}

func NewBinary(loc nanta.SourceLocation, op BinaryOp, x, y Expr) *Binary {
	return &Binary{base{loc}, op, x, y}
}

func (b *Binary) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	// && and || short-circuit, so Y is evaluated lazily.
	if b.Op == And || b.Op == Or {
		xv, err := b.X.Eval(ctx, env)
		if err != nil {
			return context.NullValue, err
		}
		xb, err := xv.AsBoolean()
		if err != nil {
			return context.NullValue, newError(BadCast, b.Loc, "left side of "+b.Op.String(), err)
		}
		if b.Op == And && !xb {
			return context.BoolValue(false), nil
		}
		if b.Op == Or && xb {
			return context.BoolValue(true), nil
		}
		yv, err := b.Y.Eval(ctx, env)
		if err != nil {
			return context.NullValue, err
		}
		yb, err := yv.AsBoolean()
		if err != nil {
			return context.NullValue, newError(BadCast, b.Loc, "right side of "+b.Op.String(), err)
		}
		return context.BoolValue(yb), nil
	}

	xv, err := b.X.Eval(ctx, env)
	if err != nil {
		return context.NullValue, err
	}
	yv, err := b.Y.Eval(ctx, env)
	if err != nil {
		return context.NullValue, err
	}

	switch b.Op {
	case Eq, Ne:
		cu, cv, _, err := context.PriorityCast(xv, yv)
		if err != nil {
			return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
		}
		eq := cu.Equal(cv)
		if b.Op == Ne {
			eq = !eq
		}
		return context.BoolValue(eq), nil
	case Lt, Le, Gt, Ge:
		return b.compare(xv, yv)
	case Add:
		return b.add(xv, yv)
	case Sub, Mul, Div, Mod:
		return b.arith(xv, yv)
	case BAnd, BOr, BXor:
		return b.bitwise(xv, yv)
	}
	return context.NullValue, newError(BadCast, b.Loc, "unknown binary operator", nil)
}

func (b *Binary) compare(xv, yv context.Value) (context.Value, error) {
	cu, cv, typ, err := context.PriorityCast(xv, yv)
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
	}
	var cmp int
	switch typ {
	case context.Str:
		cmp = strCompare(cu.GetString(""), cv.GetString(""))
	case context.Real:
		cmp = realCompare(real64(cu), real64(cv))
	default:
		iu, _ := cu.AsInteger()
		iv, _ := cv.AsInteger()
		cmp = intCompare(iu, iv)
	}
	switch b.Op {
	case Lt:
		return context.BoolValue(cmp < 0), nil
	case Le:
		return context.BoolValue(cmp <= 0), nil
	case Gt:
		return context.BoolValue(cmp > 0), nil
	case Ge:
		return context.BoolValue(cmp >= 0), nil
	}
	return context.NullValue, newError(BadCast, b.Loc, "unreachable comparison", nil)
}

func real64(v context.Value) float64 {
	r, _ := v.AsReal()
	return r
}

func strCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func realCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intCompare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// add implements the overloaded `+` (spec §4.4): string priority-cast
// concatenates, array priority-cast yields a fresh child context of the
// left array (so every binding visible through it stays visible) with
// the right array's local bindings written into it, numeric
// priority-cast adds.
func (b *Binary) add(xv, yv context.Value) (context.Value, error) {
	cu, cv, typ, err := context.PriorityCast(xv, yv)
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, "+", err)
	}
	switch typ {
	case context.Str:
		return context.StrValue(cu.GetString("") + cv.GetString("")), nil
	case context.Arr:
		au, _ := cu.AsArray()
		av, _ := cv.AsArray()
		merged := context.NewChildContext(au)
		av.List(true, func(bnd context.Binding) { merged.Set(bnd.Key, bnd.Value) })
		return context.ArrValue(merged), nil
	case context.Real:
		return context.RealValue(real64(cu) + real64(cv)), nil
	default:
		iu, _ := cu.AsInteger()
		iv, _ := cv.AsInteger()
		return context.IntValue(iu + iv), nil
	}
}

func (b *Binary) arith(xv, yv context.Value) (context.Value, error) {
	cu, cv, typ, err := context.PriorityCast(xv, yv)
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
	}
	if typ == context.Real {
		ru, rv := real64(cu), real64(cv)
		switch b.Op {
		case Sub:
			return context.RealValue(ru - rv), nil
		case Mul:
			return context.RealValue(ru * rv), nil
		case Div:
			if rv == 0 {
				return context.NullValue, newError(DivByZero, b.Loc, b.Op.String(), nil)
			}
			return context.RealValue(ru / rv), nil
		case Mod:
			return context.NullValue, newError(BadCast, b.Loc, "% on real operands", nil)
		}
	}
	iu, err := cu.AsInteger()
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
	}
	iv, err := cv.AsInteger()
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
	}
	switch b.Op {
	case Sub:
		return context.IntValue(iu - iv), nil
	case Mul:
		return context.IntValue(iu * iv), nil
	case Div:
		if iv == 0 {
			return context.NullValue, newError(DivByZero, b.Loc, b.Op.String(), nil)
		}
		return context.IntValue(iu / iv), nil
	case Mod:
		if iv == 0 {
			return context.NullValue, newError(DivByZero, b.Loc, b.Op.String(), nil)
		}
		return context.IntValue(iu % iv), nil
	}
	return context.NullValue, newError(BadCast, b.Loc, "unreachable arithmetic", nil)
}

func (b *Binary) bitwise(xv, yv context.Value) (context.Value, error) {
	iu, err := xv.AsInteger()
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
	}
	iv, err := yv.AsInteger()
	if err != nil {
		return context.NullValue, newError(BadCast, b.Loc, b.Op.String(), err)
	}
	switch b.Op {
	case BAnd:
		return context.IntValue(iu & iv), nil
	case BOr:
		return context.IntValue(iu | iv), nil
	case BXor:
		return context.IntValue(iu ^ iv), nil
	}
	return context.NullValue, newError(BadCast, b.Loc, "unreachable bitwise", nil)
}
