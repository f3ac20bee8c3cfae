package slac

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	// KindNothing is the zero Kind. It marks the absence of a value, as
	// produced by looking up a variable the environment does not know.
	// There is no literal syntax and no constructor for it.
	KindNothing Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "nothing"
	}
}

// Value is the dynamically typed result of evaluating an expression:
// a Boolean, a Number (float64), a String or an Array of Values.
// Values are immutable; the zero Value is the empty "nothing" state.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
}

// nothing is the result of an absent variable lookup.
var nothing = Value{}

// NewBoolean returns a Boolean Value.
func NewBoolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// NewNumber returns a Number Value.
func NewNumber(f float64) Value { return Value{kind: KindNumber, num: f} }

// NewString returns a String Value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewArray returns an Array Value holding the given elements.
func NewArray(values ...Value) Value {
	return Value{kind: KindArray, arr: values}
}

// Kind reports the variant stored in v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload, or false for any other kind.
func (v Value) Bool() bool { return v.kind == KindBoolean && v.b }

// Float returns the number payload, or 0 for any other kind.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// Text returns the string payload, or "" for any other kind.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Items returns the array payload, or nil for any other kind. The
// returned slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// IsEmpty reports whether v is the empty value of its kind: false, 0,
// '', [], or nothing.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindBoolean:
		return !v.b
	case KindNumber:
		return v.num == 0
	case KindString:
		return v.str == ""
	case KindArray:
		return len(v.arr) == 0
	default:
		return true
	}
}

// Empty returns the empty value of the same kind as v.
func (v Value) Empty() Value {
	switch v.kind {
	case KindBoolean:
		return NewBoolean(false)
	case KindNumber:
		return NewNumber(0)
	case KindString:
		return NewString("")
	case KindArray:
		return NewArray()
	default:
		return nothing
	}
}

// String renders v for display: booleans as "true"/"false", numbers in
// their shortest decimal form, strings verbatim, arrays as a bracketed
// comma-separated list.
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			if item.kind == KindString {
				sb.WriteByte('\'')
				sb.WriteString(item.str)
				sb.WriteByte('\'')
			} else {
				sb.WriteString(item.String())
			}
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return ""
	}
}

// Equal reports whether v and o are equal. Values of different kinds are
// never equal, except that nothing compares equal to any empty value.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNothing {
		return o.IsEmpty()
	}
	if o.kind == KindNothing {
		return v.IsEmpty()
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders v against o: -1, 0 or +1. Only values of the same kind
// are comparable; ok is false otherwise. Booleans order false < true,
// numbers and strings naturally, arrays by length and then elementwise.
func (v Value) Compare(o Value) (result int, ok bool) {
	if v.kind != o.kind || v.kind == KindNothing {
		return 0, false
	}
	switch v.kind {
	case KindBoolean:
		switch {
		case v.b == o.b:
			return 0, true
		case o.b:
			return -1, true
		default:
			return 1, true
		}
	case KindNumber:
		switch {
		case v.num < o.num:
			return -1, true
		case v.num > o.num:
			return 1, true
		default:
			return 0, true
		}
	case KindString:
		return strings.Compare(v.str, o.str), true
	case KindArray:
		switch {
		case len(v.arr) < len(o.arr):
			return -1, true
		case len(v.arr) > len(o.arr):
			return 1, true
		}
		for i := range v.arr {
			c, ok := v.arr[i].Compare(o.arr[i])
			if !ok {
				return 0, false
			}
			if c != 0 {
				return c, true
			}
		}
		return 0, true
	default:
		return 0, false
	}
}

// Add implements the overloaded '+' operator: numeric addition, string
// concatenation or array concatenation.
func (v Value) Add(o Value) (Value, error) {
	switch {
	case v.kind == KindNumber && o.kind == KindNumber:
		return NewNumber(v.num + o.num), nil
	case v.kind == KindString && o.kind == KindString:
		return NewString(v.str + o.str), nil
	case v.kind == KindArray && o.kind == KindArray:
		joined := make([]Value, 0, len(v.arr)+len(o.arr))
		joined = append(joined, v.arr...)
		joined = append(joined, o.arr...)
		return NewArray(joined...), nil
	default:
		return nothing, &InvalidOperatorError{Operator: OperatorPlus}
	}
}

// Sub implements numeric subtraction.
func (v Value) Sub(o Value) (Value, error) {
	if v.kind != KindNumber || o.kind != KindNumber {
		return nothing, &InvalidOperatorError{Operator: OperatorMinus}
	}
	return NewNumber(v.num - o.num), nil
}

// Mul implements numeric multiplication.
func (v Value) Mul(o Value) (Value, error) {
	if v.kind != KindNumber || o.kind != KindNumber {
		return nothing, &InvalidOperatorError{Operator: OperatorMultiply}
	}
	return NewNumber(v.num * o.num), nil
}

// Div implements floating point division. Division by zero follows IEEE
// 754 and yields an infinity or NaN.
func (v Value) Div(o Value) (Value, error) {
	if v.kind != KindNumber || o.kind != KindNumber {
		return nothing, &InvalidOperatorError{Operator: OperatorDivide}
	}
	return NewNumber(v.num / o.num), nil
}

// IntDiv implements the 'div' operator: division truncated toward zero.
func (v Value) IntDiv(o Value) (Value, error) {
	if v.kind != KindNumber || o.kind != KindNumber {
		return nothing, &InvalidOperatorError{Operator: OperatorDiv}
	}
	return NewNumber(math.Trunc(v.num / o.num)), nil
}

// Mod implements the 'mod' operator: the remainder of truncated
// division, taking the sign of the dividend.
func (v Value) Mod(o Value) (Value, error) {
	if v.kind != KindNumber || o.kind != KindNumber {
		return nothing, &InvalidOperatorError{Operator: OperatorMod}
	}
	return NewNumber(math.Mod(v.num, o.num)), nil
}

// Neg implements unary numeric negation.
func (v Value) Neg() (Value, error) {
	if v.kind != KindNumber {
		return nothing, &InvalidOperatorError{Operator: OperatorMinus}
	}
	return NewNumber(-v.num), nil
}

// Not implements boolean negation.
func (v Value) Not() (Value, error) {
	if v.kind != KindBoolean {
		return nothing, &InvalidOperatorError{Operator: OperatorNot}
	}
	return NewBoolean(!v.b), nil
}

// Xor implements boolean exclusive or.
func (v Value) Xor(o Value) (Value, error) {
	if v.kind != KindBoolean || o.kind != KindBoolean {
		return nothing, &InvalidOperatorError{Operator: OperatorXor}
	}
	return NewBoolean(v.b != o.b), nil
}
