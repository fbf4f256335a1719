package symexpr

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Grammar, loosely:
//
// Expr = num | Symbol | Expr op Expr | '(' Expr ')'
// Symbol = letter { letter | digit } [ '(' Expr ')' ]
// op = '+' | '-' | '*' | '/'
//
// Which operator splits an expression is decided by position, not by kind:
// the leftmost operator at the shallowest paren depth wins.

// Parse parses an expression. The text must not contain NUL, newline, or
// carriage return bytes; those are a *FaultError. Malformed expressions give
// a *SyntaxError.
func Parse(text string, opts ...ParseOption) (*Expr, error) {
	p := newParser(text, opts)
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.expr(0, len(text))
}

type parser struct {
	src string
	// max is the recursion limit and level is the current recursion depth.
	max   int
	level int
}

func newParser(src string, opts []ParseOption) *parser {
	c := parsectx{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.parseOption(c)
	}
	return &parser{src: src, max: c.maxDepth}
}

// check rejects terminator bytes and unbalanced parens anywhere in the input.
// Spans handed to expr after check succeeds may have unbalanced parens at
// their edges, but never inside a symbol parameter that crosses them.
func (p *parser) check() error {
	var opens []int
	for i := 0; i < len(p.src); i++ {
		switch c := p.src[i]; {
		case isTerminator(c):
			return &FaultError{Func: "Parse", Msg: "terminator byte " + strconv.QuoteRune(rune(c)) + " at column " + strconv.Itoa(i+1)}
		case c == '(':
			opens = append(opens, i)
		case c == ')':
			if len(opens) == 0 {
				return &SyntaxError{Col: i + 1, Text: ")", Msg: "unmatched parenthesis"}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return &SyntaxError{Col: opens[0] + 1, Text: "(", Msg: "unmatched parenthesis"}
	}
	return nil
}

// occurrence is the shallowest token of one category seen in a span. Among
// tokens at that depth, it is the leftmost.
type occurrence struct {
	start, end int
	depth      int
	found      bool
}

// note records a token if it is strictly shallower than the current one.
func (o *occurrence) note(start, end, depth int) {
	if o.found && depth >= o.depth {
		return
	}
	*o = occurrence{start: start, end: end, depth: depth, found: true}
}

// expr parses src[start:end]. Depth is counted from zero at start, so the
// parens left unbalanced at the edges of a span by an earlier split shift
// every token in the span equally and do not change which tokens are chosen.
func (p *parser) expr(start, end int) (*Expr, error) {
	p.level++
	defer func() { p.level-- }()
	if p.level > p.max {
		return nil, &SyntaxError{Col: start + 1, Msg: "expression nested deeper than " + strconv.Itoa(p.max) + " levels"}
	}

	var op, num, sym occurrence
	nums, syms := 0, 0
	depth := 0
	for i := start; i < end; {
		c := p.src[i]
		switch {
		case c == '(':
			depth++
			i++
		case c == ')':
			depth--
			i++
		case isSpace(c):
			i++
		case isOperator(c):
			op.note(i, i+1, depth)
			i++
		case isDigit(c):
			k := digitsEnd(p.src, i, end)
			num.note(i, k, depth)
			nums++
			i = k
		case isLetter(c):
			// The symbol's parameter, if any, is part of the symbol, so
			// operators and numbers inside it are skipped here.
			k, err := p.symbolEnd(i, end)
			if err != nil {
				return nil, err
			}
			sym.note(i, k, depth)
			syms++
			i = k
		default:
			r, _ := utf8.DecodeRuneInString(p.src[i:end])
			return nil, &SyntaxError{Col: i + 1, Text: string(r), Msg: "unrecognized character"}
		}
	}

	switch {
	case op.found:
		left, err := p.expr(start, op.start)
		if err != nil {
			return nil, err
		}
		right, err := p.expr(op.end, end)
		if err != nil {
			return nil, err
		}
		return NewTree(p.src[op.start], left, right), nil
	case syms > 0 && nums == 0:
		if syms > 1 {
			return nil, &SyntaxError{Col: sym.start + 1, Text: p.span(start, end), Msg: "more than one symbol without an operation"}
		}
		s, _, err := p.symbol(sym.start, sym.end)
		if err != nil {
			return nil, err
		}
		return NewSymbolic(s), nil
	case syms > 0:
		return nil, &SyntaxError{Col: sym.start + 1, Text: p.span(start, end), Msg: "symbol and number without an operation"}
	case nums > 0:
		if nums > 1 {
			return nil, &SyntaxError{Col: num.start + 1, Text: p.span(start, end), Msg: "more than one number without an operation"}
		}
		v, err := ParseInt(p.src[num.start:num.end])
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.Col = num.start + 1
			}
			return nil, err
		}
		return NewValue(v), nil
	default:
		return nil, &SyntaxError{Col: start + 1, Msg: "no numbers or operations detected"}
	}
}

// span returns src[start:end] without surrounding whitespace, for messages.
func (p *parser) span(start, end int) string {
	return strings.Trim(p.src[start:end], " \t")
}

// symbolEnd finds the end of the symbol starting at the letter src[i],
// including its parameter if one follows.
func (p *parser) symbolEnd(i, end int) (int, error) {
	k := nameEnd(p.src, i, end)
	j := skipSpace(p.src, k, end)
	if j >= end || p.src[j] != '(' {
		return k, nil
	}
	m := FindMatching(p.src[:end], j)
	if m == NoMatch {
		return 0, &SyntaxError{Col: j + 1, Text: p.src[i:k], Msg: "unmatched parenthesis around symbol parameter"}
	}
	return m + 1, nil
}

// symbol parses the symbol at the start of src[start:end], skipping leading
// whitespace. The second result is the index one past the symbol.
func (p *parser) symbol(start, end int) (*Symbol, int, error) {
	i := skipSpace(p.src, start, end)
	if i >= end || !isLetter(p.src[i]) {
		text := ""
		if i < end {
			r, _ := utf8.DecodeRuneInString(p.src[i:end])
			text = string(r)
		}
		return nil, 0, &SyntaxError{Col: i + 1, Text: text, Msg: "expected symbol name"}
	}
	k := nameEnd(p.src, i, end)
	if k-i >= SymbolNameSize {
		return nil, 0, &SyntaxError{Col: i + 1, Text: p.src[i:k], Msg: "symbol name longer than " + strconv.Itoa(SymbolNameSize-1) + " bytes"}
	}
	s := &Symbol{name: p.src[i:k]}
	j := skipSpace(p.src, k, end)
	if j >= end || p.src[j] != '(' {
		return s, k, nil
	}
	m := FindMatching(p.src[:end], j)
	if m == NoMatch {
		return nil, 0, &SyntaxError{Col: j + 1, Text: s.name, Msg: "unmatched parenthesis around symbol parameter"}
	}
	param, err := p.expr(j+1, m)
	if err != nil {
		return nil, 0, err
	}
	adopt(param)
	s.param = param
	return s, m + 1, nil
}
