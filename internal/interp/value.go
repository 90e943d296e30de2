package interp

import (
	"math"
	"strconv"
)

// Value is the runtime value type: a tagged variant over Number, String,
// Bool, None, Callable, Class, and Instance. Rather than a class
// hierarchy, each variant is its own concrete Go type implementing the
// marker method, so the evaluator switches on the concrete type wherever
// behavior differs (see applyBinaryOp in operators.go, and truthy and
// stringify below).
type Value interface {
	isValue()
}

// Number is the language's single numeric kind.
type Number float64

func (Number) isValue() {}

// String is a text value.
type String string

func (String) isValue() {}

// Bool is a boolean value.
type Bool bool

func (Bool) isValue() {}

// None is the language's null/unit value; there is exactly one instance,
// noneValue.
type None struct{}

func (None) isValue() {}

var noneValue = None{}

// truthy reports whether v counts as true in a condition: None, the
// number 0, and false are falsy; everything else, including the empty
// string, is truthy.
func truthy(v Value) bool {
	switch v := v.(type) {
	case None:
		return false
	case Number:
		return v != 0
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// stringify renders v the way the print() native and string
// concatenation do.
func stringify(v Value) string {
	switch v := v.(type) {
	case None:
		return "none"
	case Number:
		return formatNumber(float64(v))
	case String:
		return string(v)
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case *Class:
		return "<class " + v.Name + ">"
	case *Instance:
		return "<instance of " + v.Class.Name + ">"
	case *Function:
		return "<function " + v.Decl.Name.Lexeme + ">"
	case *NativeFunction:
		return "<native function " + v.name + ">"
	default:
		return "<unknown>"
	}
}

// formatNumber canonicalizes trailing zeroes away while rendering whole
// numbers without a decimal point or exponent, however large: a plain
// 'g' format switches to exponent notation past a handful of digits
// (print(1000000) would come out "1e+06"), so integral values take the
// 'f' verb instead and only fractional values fall back to 'g'.
func formatNumber(f float64) string {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
