package context

import (
	"fmt"
	"strconv"
)

// ValueType is the tag of a Variable value (spec §3, "Variable value").
type ValueType int8

const (
	Null ValueType = iota
	Bool
	Int
	Real
	Str
	Arr
)

func (t ValueType) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Real:
		return "real"
	case Str:
		return "string"
	case Arr:
		return "array"
	}
	return "?"
}

// rank is the priority order null < boolean < integer < real < string < array
// used by priority-cast (spec §4.4).
func (t ValueType) rank() int { return int(t) }

// Value is a tagged variant: null, boolean, integer, real, string or array.
// Following the Design Notes of spec.md §9, it is implemented as a closed
// tagged enum with inline scalar storage; a Str payload is held by
// reference (Go strings are already immutable, reference-counted by the
// runtime) and an Arr payload references a child Context, which is how
// the six-type model supports cyclic/hierarchical nested structure.
type Value struct {
	typ ValueType
	b   bool
	i   int64
	r   float64
	s   string
	arr *Context
}

// NullValue is the zero Value.
var NullValue = Value{}

func BoolValue(b bool) Value    { return Value{typ: Bool, b: b} }
func IntValue(i int64) Value    { return Value{typ: Int, i: i} }
func RealValue(r float64) Value { return Value{typ: Real, r: r} }
func StrValue(s string) Value   { return Value{typ: Str, s: s} }
func ArrValue(c *Context) Value { return Value{typ: Arr, arr: c} }

// Type returns the value's type tag.
func (v Value) Type() ValueType { return v.typ }

func (v Value) IsNull() bool { return v.typ == Null }

// BadCastError is raised when a directed cast (spec §4.4) has no defined
// conversion for the source/target type pair.
type BadCastError struct {
	From ValueType
	To   ValueType
}

func (e *BadCastError) Error() string {
	return fmt.Sprintf("cannot cast %s to %s", e.From, e.To)
}

// AsBoolean performs the directed cast to boolean (§4.4): null -> false,
// numeric/string -> value-preserving if parseable, else BadCast.
func (v Value) AsBoolean() (bool, error) {
	switch v.typ {
	case Null:
		return false, nil
	case Bool:
		return v.b, nil
	case Int:
		return v.i != 0, nil
	case Real:
		return v.r != 0, nil
	case Str:
		if v.s == "" {
			return false, nil
		}
		if b, err := strconv.ParseBool(v.s); err == nil {
			return b, nil
		}
		return false, &BadCastError{v.typ, Bool}
	}
	return false, &BadCastError{v.typ, Bool}
}

// AsInteger performs the directed cast to integer (§4.4).
func (v Value) AsInteger() (int64, error) {
	switch v.typ {
	case Null:
		return 0, nil
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return v.i, nil
	case Real:
		return int64(v.r), nil
	case Str:
		if n, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return int64(f), nil
		}
		return 0, &BadCastError{v.typ, Int}
	}
	return 0, &BadCastError{v.typ, Int}
}

// AsReal performs the directed cast to real (§4.4).
func (v Value) AsReal() (float64, error) {
	switch v.typ {
	case Null:
		return 0, nil
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return float64(v.i), nil
	case Real:
		return v.r, nil
	case Str:
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return f, nil
		}
		return 0, &BadCastError{v.typ, Real}
	}
	return 0, &BadCastError{v.typ, Real}
}

// AsString renders a canonical string for any value; this cast cannot fail.
func (v Value) AsString() string {
	switch v.typ {
	case Null:
		return ""
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Real:
		return strconv.FormatFloat(v.r, 'g', -1, 64)
	case Str:
		return v.s
	case Arr:
		return "<array>"
	}
	return ""
}

// AsArray performs the directed cast to array: array->array is an
// identity, everything else yields BadCast (callers that want the
// assignment-target auto-create behavior should use Context.ChildContext
// instead, per spec §4.4 "otherwise a fresh empty array is implicitly
// created (on assignment target)").
func (v Value) AsArray() (*Context, error) {
	if v.typ == Arr {
		return v.arr, nil
	}
	return nil, &BadCastError{v.typ, Arr}
}

func (v Value) IsBoolean() bool { return v.typ == Bool }
func (v Value) IsInteger() bool { return v.typ == Int }
func (v Value) IsReal() bool    { return v.typ == Real }
func (v Value) IsString() bool  { return v.typ == Str }
func (v Value) IsArray() bool   { return v.typ == Arr }

// GetBoolean returns the value as boolean if it is already of that type,
// otherwise def. Typed accessors of this shape never raise: use AsBoolean
// for the full coercion policy.
func (v Value) GetBoolean(def bool) bool {
	if v.typ == Bool {
		return v.b
	}
	return def
}

func (v Value) GetInteger(def int64) int64 {
	if v.typ == Int {
		return v.i
	}
	return def
}

func (v Value) GetReal(def float64) float64 {
	if v.typ == Real {
		return v.r
	}
	return def
}

func (v Value) GetString(def string) string {
	if v.typ == Str {
		return v.s
	}
	return def
}

// Equal implements the equality nparse's I4 invariant relies on: a write
// that would reproduce the already-inherited value is semantically a
// no-op. Arrays compare by Context identity, matching the C3 contract
// that an array is a reference, not a value.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case Null:
		return true
	case Bool:
		return v.b == other.b
	case Int:
		return v.i == other.i
	case Real:
		return v.r == other.r
	case Str:
		return v.s == other.s
	case Arr:
		return v.arr == other.arr
	}
	return false
}

func (v Value) String() string {
	switch v.typ {
	case Str:
		return fmt.Sprintf("%q", v.s)
	default:
		return v.AsString()
	}
}

// PriorityCast is the exported entry point action.Binary uses for
// symmetric operators (spec §4.4, property P7).
func PriorityCast(u, v Value) (Value, Value, ValueType, error) {
	return priorityCast(u, v)
}

// CastTo is the exported entry point for a directed cast to target type
// (spec §4.4), used by action for unary/assignment coercions.
func CastTo(v Value, target ValueType) (Value, error) {
	return castTo(v, target)
}

// priorityCast picks the higher-ranked type of (u, v) in the order
// null < boolean < integer < real < string < array (spec §4.4) and
// coerces both operands to it. It is symmetric by construction
// (property P7): priorityCast(u,v) and priorityCast(v,u) always agree
// on the resulting type and, by commuting the coercions, on the values.
func priorityCast(u, v Value) (Value, Value, ValueType, error) {
	target := u.typ
	if v.typ.rank() > target.rank() {
		target = v.typ
	}
	cu, err := castTo(u, target)
	if err != nil {
		return Value{}, Value{}, target, err
	}
	cv, err := castTo(v, target)
	if err != nil {
		return Value{}, Value{}, target, err
	}
	return cu, cv, target, nil
}

// castTo performs the directed cast of v to target type T (spec §4.4).
func castTo(v Value, target ValueType) (Value, error) {
	switch target {
	case Null:
		return NullValue, nil
	case Bool:
		b, err := v.AsBoolean()
		return BoolValue(b), err
	case Int:
		i, err := v.AsInteger()
		return IntValue(i), err
	case Real:
		r, err := v.AsReal()
		return RealValue(r), err
	case Str:
		return StrValue(v.AsString()), nil
	case Arr:
		a, err := v.AsArray()
		if err != nil {
			return Value{}, err
		}
		return ArrValue(a), nil
	}
	return Value{}, &BadCastError{v.typ, target}
}
