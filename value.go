package symexpr

import (
	"errors"
	"strconv"
)

// ValueKind is the tag of a Value.
type ValueKind uint8

const (
	// Error is the result of a malformed or impossible computation.
	Error ValueKind = iota
	// Undefined is a value with no defined result.
	Undefined
	// Infinity is a magnitude too large to represent.
	Infinity
	// LongInteger is a signed 64-bit integer.
	LongInteger
)

func (k ValueKind) String() string {
	switch k {
	case Error:
		return "Error"
	case Undefined:
		return "Undefined"
	case Infinity:
		return "Infinity"
	case LongInteger:
		return "LongInteger"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MaxIntDigits is the longest digit run ParseInt accepts. It is enough for
// the magnitude of a 128-bit integer, although values are stored in 64 bits.
const MaxIntDigits = 39

// Value is a tagged numeric result. Values are comparable with ==.
type Value struct {
	kind ValueKind
	n    int64
}

// NewInt creates a LongInteger value.
func NewInt(n int64) Value {
	return Value{kind: LongInteger, n: n}
}

// Placeholder creates a value of a kind that carries no payload. Panics if k
// is LongInteger; use NewInt for integers.
func Placeholder(k ValueKind) Value {
	switch k {
	case Error, Undefined, Infinity:
		return Value{kind: k}
	default:
		panic("symexpr: no placeholder for " + k.String())
	}
}

// ParseInt parses the run of decimal digits at the start of s. Anything after
// the digits is ignored. There is no sign handling, so "-1" has no digits.
//
// Having no digits or more than MaxIntDigits of them is a *FaultError, since
// callers are expected to hand ParseInt a digit run. A run that fits but is
// outside the range of int64 is a *SyntaxError.
func ParseInt(s string) (Value, error) {
	k := 0
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	switch {
	case k == 0:
		return Value{}, &FaultError{Func: "ParseInt", Msg: "no digits in " + strconv.Quote(s)}
	case k > MaxIntDigits:
		return Value{}, &FaultError{Func: "ParseInt", Msg: strconv.Itoa(k) + " digits exceeds buffer of " + strconv.Itoa(MaxIntDigits)}
	}
	n, err := strconv.ParseInt(s[:k], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, &SyntaxError{Text: s[:k], Msg: "number out of range"}
		}
		// Only digits reach here, so the only possible failure is range.
		return Value{}, &FaultError{Func: "ParseInt", Msg: err.Error()}
	}
	return NewInt(n), nil
}

// Kind returns the value's tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int64 returns the integer payload and whether v is a LongInteger.
func (v Value) Int64() (int64, bool) {
	if v.kind != LongInteger {
		return 0, false
	}
	return v.n, true
}

// String formats the value in its canonical form: ERROR, UNDEF, INF, or the
// decimal integer.
func (v Value) String() string {
	switch v.kind {
	case Error:
		return "ERROR"
	case Undefined:
		return "UNDEF"
	case Infinity:
		return "INF"
	case LongInteger:
		return strconv.FormatInt(v.n, 10)
	default:
		panic("symexpr: invalid value kind " + v.kind.String())
	}
}
