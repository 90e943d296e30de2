package interp

import (
	"math"

	"github.com/loxlang/golox/internal/token"
)

// applyBinaryOp implements the arithmetic, comparison, and equality
// rules for each binary operator token.
func applyBinaryOp(op token.Token, left, right Value) (Value, error) {
	switch op.Kind {
	case token.PLUS:
		return applyPlus(op, left, right)
	case token.MINUS:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.STAR:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.SLASH:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case token.CARET:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return Number(math.Pow(float64(l), float64(r))), nil
	case token.LESS:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(l < r), nil
	case token.LESS_EQUAL:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(l <= r), nil
	case token.GREATER:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(l > r), nil
	case token.GREATER_EQUAL:
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(l >= r), nil
	case token.EQUAL_EQUAL:
		return Bool(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return Bool(!valuesEqual(left, right)), nil
	default:
		panic("interp: unhandled binary operator")
	}
}

// applyPlus implements "+": numeric addition when both operands are
// numbers, string concatenation when either operand is a string (the
// other is coerced via stringify, matching how print() renders values).
// Any other combination is a type error.
func applyPlus(op token.Token, left, right Value) (Value, error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if lok && rok {
		return ln + rn, nil
	}
	_, lIsStr := left.(String)
	_, rIsStr := right.(String)
	if lIsStr || rIsStr {
		return String(stringify(left) + stringify(right)), nil
	}
	return nil, runtimeErrorf(op.Pos, "'+' requires two numbers or a string operand")
}

func numericOperands(op token.Token, left, right Value) (Number, Number, error) {
	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(op.Pos, "'%s' requires two numbers", op.Lexeme)
	}
	return l, r, nil
}

// valuesEqual implements "==": two numbers are equal iff numerically
// equal under IEEE 754 comparison (so 0 == -0 and NaN != NaN), two
// strings iff character-equal, two bools iff equal, None equals only
// None, and values of distinct kinds are never equal.
func valuesEqual(left, right Value) bool {
	switch l := left.(type) {
	case Number:
		r, ok := right.(Number)
		return ok && l == r
	case String:
		r, ok := right.(String)
		return ok && l == r
	case Bool:
		r, ok := right.(Bool)
		return ok && l == r
	case None:
		_, ok := right.(None)
		return ok
	default:
		return left == right
	}
}
