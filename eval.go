package symexpr

import (
	"math"
	"strconv"
)

// Eval evaluates an expression. e is not modified.
//
// Operations on an operand that is not a LongInteger give an Error value. An
// operation whose result does not fit in an int64 gives an Infinity value.
// Division truncates toward zero, and division by zero is a
// *DivisionByZeroError. Symbols cannot be evaluated yet, so any symbol in e
// gives an *UnimplementedError.
func Eval(e *Expr) (Value, error) {
	return e.Eval()
}

// Eval evaluates the expression. See the package-level Eval.
func (e *Expr) Eval() (Value, error) {
	if e == nil {
		return Value{}, &FaultError{Func: "Eval", Msg: "nil expression"}
	}
	switch e.kind {
	case ValueExpr:
		return e.val, nil
	case TreeExpr:
		l, err := e.left.Eval()
		if err != nil {
			return Value{}, err
		}
		r, err := e.right.Eval()
		if err != nil {
			return Value{}, err
		}
		return apply(e.op, l, r)
	case SymbolicExpr:
		return Value{}, &UnimplementedError{Op: "evaluation", Name: e.sym.name}
	default:
		return Value{}, &FaultError{Func: "Eval", Msg: "invalid expression kind " + e.kind.String()}
	}
}

// apply performs a binary operation.
func apply(op byte, l, r Value) (Value, error) {
	if !isOperator(op) {
		return Value{}, &FaultError{Func: "Eval", Msg: "invalid operator " + strconv.QuoteRune(rune(op))}
	}
	a, ok := l.Int64()
	if !ok {
		return Placeholder(Error), nil
	}
	b, ok := r.Int64()
	if !ok {
		return Placeholder(Error), nil
	}
	switch op {
	case '+':
		c := a + b
		// Overflow iff both operands have the same sign and the result's
		// sign differs.
		if (a >= 0) == (b >= 0) && (c >= 0) != (a >= 0) {
			return Placeholder(Infinity), nil
		}
		return NewInt(c), nil
	case '-':
		c := a - b
		if (a >= 0) != (b >= 0) && (c >= 0) != (a >= 0) {
			return Placeholder(Infinity), nil
		}
		return NewInt(c), nil
	case '*':
		if a == 0 || b == 0 {
			return NewInt(0), nil
		}
		c := a * b
		if c/b != a || a == -1 && b == math.MinInt64 || b == -1 && a == math.MinInt64 {
			return Placeholder(Infinity), nil
		}
		return NewInt(c), nil
	default: // '/'
		if b == 0 {
			return Value{}, &DivisionByZeroError{Dividend: a}
		}
		if a == math.MinInt64 && b == -1 {
			return Placeholder(Infinity), nil
		}
		return NewInt(a / b), nil
	}
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string, opts ...ParseOption) (Value, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return Value{}, err
	}
	return e.Eval()
}
