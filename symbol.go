package symexpr

import "strconv"

// SymbolNameSize bounds symbol names. It counts a terminator, so a name may
// hold at most SymbolNameSize-1 bytes.
const SymbolNameSize = 10

// Symbol is a named identifier, like a variable "x" or a function-like
// reference "sin(x)". A Symbol exclusively owns its parameter expression.
type Symbol struct {
	name  string
	param *Expr
	owned bool
}

// NewSymbol creates a symbol. The name must be an ASCII letter followed by
// letters or digits, shorter than SymbolNameSize. param may be nil for a bare
// identifier; otherwise NewSymbol takes ownership of it.
func NewSymbol(name string, param *Expr) (*Symbol, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if param != nil {
		adopt(param)
	}
	return &Symbol{name: name, param: param}, nil
}

func checkName(name string) error {
	switch {
	case name == "":
		return &SyntaxError{Msg: "empty symbol name"}
	case len(name) >= SymbolNameSize:
		return &SyntaxError{Text: name, Msg: "symbol name longer than " + strconv.Itoa(SymbolNameSize-1) + " bytes"}
	case !isLetter(name[0]):
		return &SyntaxError{Text: name, Msg: "symbol name must start with a letter"}
	}
	for i := 1; i < len(name); i++ {
		if !isAlnum(name[i]) {
			return &SyntaxError{Text: name, Msg: "invalid character in symbol name"}
		}
	}
	return nil
}

// ParseSymbol parses a symbol name, optionally followed by a parenthesized
// parameter expression, e.g. "x" or "foo (1 + 2)". Whitespace around the
// symbol is ignored; anything else after it is an error.
func ParseSymbol(text string, opts ...ParseOption) (*Symbol, error) {
	p := newParser(text, opts)
	if err := p.check(); err != nil {
		return nil, err
	}
	sym, end, err := p.symbol(0, len(text))
	if err != nil {
		return nil, err
	}
	if k := skipSpace(text, end, len(text)); k < len(text) {
		return nil, &SyntaxError{Col: k + 1, Text: text[k:], Msg: "unexpected text after symbol"}
	}
	return sym, nil
}

// Name returns the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// Param returns the symbol's parameter expression, or nil if it has none.
func (s *Symbol) Param() *Expr {
	return s.param
}

// String formats the symbol as its name, followed by its parameter in
// parentheses if it has one.
func (s *Symbol) String() string {
	var p printer
	if err := s.fmt(&p); err != nil {
		panic(err)
	}
	return p.b.String()
}

func (s *Symbol) fmt(p *printer) error {
	if err := p.write(s.name); err != nil {
		return err
	}
	if s.param == nil {
		return nil
	}
	if err := p.write("("); err != nil {
		return err
	}
	if err := s.param.fmt(p); err != nil {
		return err
	}
	return p.write(")")
}
