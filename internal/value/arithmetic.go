package value

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned by Div/Mod when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// UnsupportedOperationError is returned when an operator's operand
// variants do not support it, per spec §4.1's exact wording.
type UnsupportedOperationError struct {
	Op   string
	A, B Value
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported for %s and %s", e.Op, e.A.TypeName(), e.B.TypeName())
}

func unsupported(op string, a, b Value) error {
	return &UnsupportedOperationError{Op: op, A: a, B: b}
}

// Add implements `+` per spec §4.1: Int+Int -> Int, mixed numeric ->
// Float, String+<any non-nil> -> String (RHS stringified), else error.
func Add(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai + bi, nil
		}
		if bf, ok := b.(Float); ok {
			return Float(ai) + bf, nil
		}
	}
	if af, ok := a.(Float); ok {
		if bn, ok := asNumber(b); ok {
			return af + Float(bn), nil
		}
	}
	if as, ok := a.(Str); ok {
		if _, isNil := b.(Nil); !isNil {
			return Str(string(as) + b.String()), nil
		}
	}
	return nil, unsupported("+", a, b)
}

// Sub implements `-`: numeric only.
func Sub(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai - bi, nil
		}
		if bf, ok := b.(Float); ok {
			return Float(ai) - bf, nil
		}
	}
	if af, ok := a.(Float); ok {
		if bn, ok := asNumber(b); ok {
			return af - Float(bn), nil
		}
	}
	return nil, unsupported("-", a, b)
}

// Mul implements `*`: numeric, plus String*Int repetition (n<0 yields
// empty string).
func Mul(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai * bi, nil
		}
		if bf, ok := b.(Float); ok {
			return Float(ai) * bf, nil
		}
	}
	if af, ok := a.(Float); ok {
		if bn, ok := asNumber(b); ok {
			return af * Float(bn), nil
		}
	}
	if as, ok := a.(Str); ok {
		if n, ok := b.(Int); ok {
			if n <= 0 {
				return Str(""), nil
			}
			return Str(strings.Repeat(string(as), int(n))), nil
		}
	}
	return nil, unsupported("*", a, b)
}

// Div implements `/`: Int/Int truncates toward zero; division by zero
// is ErrDivisionByZero; mixed/float division is ordinary float64
// division.
func Div(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if bi == 0 {
				return nil, ErrDivisionByZero
			}
			return ai / bi, nil // Go's int division already truncates toward zero
		}
		if bf, ok := b.(Float); ok {
			if bf == 0 {
				return nil, ErrDivisionByZero
			}
			return Float(ai) / bf, nil
		}
	}
	if af, ok := a.(Float); ok {
		if bn, ok := asNumber(b); ok {
			if bn == 0 {
				return nil, ErrDivisionByZero
			}
			return af / Float(bn), nil
		}
	}
	return nil, unsupported("/", a, b)
}

// Mod implements `%`: integer modulo only here, matching the other
// exact arithmetic operators; division by zero is ErrDivisionByZero.
func Mod(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if bi == 0 {
				return nil, ErrDivisionByZero
			}
			return ai % bi, nil
		}
	}
	return nil, unsupported("%", a, b)
}

// Compare implements `< <= > >=` for numeric/numeric and string/string
// pairs (spec §4.1); any other pairing is an error. Returns -1, 0, 1.
func Compare(a, b Value) (int, error) {
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			switch {
			case an < bn:
				return -1, nil
			case an > bn:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if as, ok := a.(Str); ok {
		if bs, ok := b.(Str); ok {
			return strings.Compare(string(as), string(bs)), nil
		}
	}
	return 0, unsupported("comparison", a, b)
}
