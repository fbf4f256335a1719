package symexpr

// Operators contains the bytes which are binary operators.
const Operators = "+-*/"

// NoMatch is the result of FindMatching when there is no matching paren. It
// is never a valid index.
const NoMatch = -1

// FindMatching finds the index of the close paren matching the open paren at
// text[open]. The result is NoMatch if text ends before the parens balance or
// if text[open] is not an open paren.
func FindMatching(text string, open int) int {
	if open < 0 || open >= len(text) || text[open] != '(' {
		return NoMatch
	}
	level := 1
	for i := open + 1; i < len(text); i++ {
		switch text[i] {
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return i
			}
		}
	}
	return NoMatch
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

// isTerminator reports whether c ends a line or a C string. Such bytes never
// belong inside an expression.
func isTerminator(c byte) bool {
	return c == 0 || c == '\n' || c == '\r'
}

// skipSpace returns the index of the first non-space byte in text[i:end], or
// end if there is none.
func skipSpace(text string, i, end int) int {
	for i < end && isSpace(text[i]) {
		i++
	}
	return i
}

// digitsEnd returns the index one past the run of digits starting at i.
func digitsEnd(text string, i, end int) int {
	for i < end && isDigit(text[i]) {
		i++
	}
	return i
}

// nameEnd returns the index one past the run of letters and digits starting
// at i.
func nameEnd(text string, i, end int) int {
	for i < end && isAlnum(text[i]) {
		i++
	}
	return i
}
