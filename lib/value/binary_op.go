package value

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when the right operand of '/' evaluates
// to zero. Callers can test for it with errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// Op enumerates the binary operators of the language.
type Op uint8

const (
	Add Op = iota + 1
	Sub
	Mul
	Div
	Gt
	Gte
	Lt
	Lte
	Eq
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Gt:
		return ">"
	case Gte:
		return ">="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Eq:
		return "=="
	default:
		return fmt.Sprintf("unknown:%d", uint8(op))
	}
}

// Apply routes op to its arithmetic or comparison rule.
func Apply(op Op, left, right Int) (Int, error) {
	switch op {
	case Add:
		return left + right, nil
	case Sub:
		return left - right, nil
	case Mul:
		return left * right, nil
	case Div:
		return fdiv(left, right)
	case Gt:
		return fromBool(left > right), nil
	case Gte:
		return fromBool(left >= right), nil
	case Lt:
		return fromBool(left < right), nil
	case Lte:
		return fromBool(left <= right), nil
	case Eq:
		return fromBool(left == right), nil
	}
	return 0, fmt.Errorf("unsupported binary operator: '%s'", op)
}

// fdiv floors the quotient toward negative infinity, the reference
// convention for the language's '/'.
func fdiv(left, right Int) (Int, error) {
	if right == 0 {
		return 0, fmt.Errorf("%w while using '/'", ErrDivisionByZero)
	}
	q := left / right
	if left%right != 0 && (left < 0) != (right < 0) {
		q--
	}
	return q, nil
}

func fromBool(b bool) Int {
	if b {
		return 1
	}
	return 0
}
