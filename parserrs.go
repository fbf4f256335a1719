package symexpr

import "strconv"

// SyntaxError is an error indicating malformed input. It implements
// InputError.
type SyntaxError struct {
	// Col is the 1-based byte position of the offending text in the input
	// given to Parse, or 0 if there is no position, e.g. from NewSymbol.
	Col int
	// Text is the offending character or substring, if any.
	Text string
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	msg := "syntax error: " + err.Msg
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// FaultError is an error indicating a violated internal contract, like an
// exhausted buffer or a terminator byte in the middle of an expression. It
// means a caller broke the rules, not that the user wrote a bad expression.
type FaultError struct {
	// Func is the operation that detected the fault.
	Func string
	// Msg describes the fault.
	Msg string
}

func (err *FaultError) Error() string {
	return err.Func + ": program fault: " + err.Msg
}

// UnimplementedError is an error indicating an operation that is recognized
// but not supported.
type UnimplementedError struct {
	// Op is the unsupported operation.
	Op string
	// Name is the symbol the operation was applied to.
	Name string
}

func (err *UnimplementedError) Error() string {
	return "unimplemented: " + err.Op + " of symbol " + strconv.Quote(err.Name)
}

// DivisionByZeroError is an error from evaluating a division by zero.
type DivisionByZeroError struct {
	// Dividend is the left operand of the division.
	Dividend int64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatInt(err.Dividend, 10) + " / 0"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the error in the input.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
