package action

import (
	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

// UnaryOp is one of the four unary operators of spec §4.4.
type UnaryOp int8

const (
	Pos UnaryOp = iota // +
	Neg                // -
	Not                // ! (logical not)
	Inv                // ~ (bitwise not)
)

func (op UnaryOp) String() string {
	switch op {
	case Pos:
		return "+"
	case Neg:
		return "-"
	case Not:
		return "!"
	case Inv:
		return "~"
	}
	return "?"
}

// Unary is unary(op, x) (spec §4.4).
type Unary struct {
	base
	Op UnaryOp
	X  Expr
}

func NewUnary(loc nanta.SourceLocation, op UnaryOp, x Expr) *Unary {
	return &Unary{base{loc}, op, x}
}

func (u *Unary) Eval(ctx *context.Context, env *Env) (context.Value, error) {
	xv, err := u.X.Eval(ctx, env)
	if err != nil {
		return context.NullValue, err
	}
	switch u.Op {
	case Pos:
		r, err := xv.AsReal()
		if err != nil {
			return context.NullValue, newError(BadCast, u.Loc, "unary +", err)
		}
		if xv.IsInteger() {
			return xv, nil
		}
		return context.RealValue(r), nil
	case Neg:
		if xv.IsInteger() {
			i, _ := xv.AsInteger()
			return context.IntValue(-i), nil
		}
		r, err := xv.AsReal()
		if err != nil {
			return context.NullValue, newError(BadCast, u.Loc, "unary -", err)
		}
		return context.RealValue(-r), nil
	case Not:
		b, err := xv.AsBoolean()
		if err != nil {
			return context.NullValue, newError(BadCast, u.Loc, "unary !", err)
		}
		return context.BoolValue(!b), nil
	case Inv:
		i, err := xv.AsInteger()
		if err != nil {
			return context.NullValue, newError(BadCast, u.Loc, "unary ~", err)
		}
		return context.IntValue(^i), nil
	}
	return context.NullValue, newError(BadCast, u.Loc, "unknown unary operator", nil)
}
