package symexpr

import (
	"strconv"
	"strings"
)

// ExprKind is the variant of an Expr.
type ExprKind uint8

const (
	exprNone ExprKind = iota

	// ValueExpr is a numeric leaf.
	ValueExpr
	// TreeExpr is a binary operation on two owned subexpressions.
	TreeExpr
	// SymbolicExpr wraps an owned Symbol.
	SymbolicExpr
)

func (k ExprKind) String() string {
	switch k {
	case exprNone:
		return "None"
	case ValueExpr:
		return "Value"
	case TreeExpr:
		return "Tree"
	case SymbolicExpr:
		return "Symbolic"
	default:
		return "ExprKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DefaultTextLimit is the output bound used by callers that want the size of
// the legacy fixed buffer.
const DefaultTextLimit = 256

// Expr is a node in an expression tree. Every node has at most one parent:
// the constructors take ownership of the nodes they are given and panic if a
// node already belongs to another. Exprs are not modified after construction.
type Expr struct {
	kind ExprKind

	val Value // ValueExpr
	op  byte  // TreeExpr

	left  *Expr
	right *Expr

	sym *Symbol // SymbolicExpr

	// owned is set once the node becomes a child.
	owned bool
}

// NewValue creates a leaf holding v.
func NewValue(v Value) *Expr {
	return &Expr{kind: ValueExpr, val: v}
}

// NewTree creates a binary operation node. It takes ownership of left and
// right, which must be distinct, non-nil, and not yet part of another tree.
// op is not checked here; Eval reports an operator outside Operators as a
// *FaultError.
func NewTree(op byte, left, right *Expr) *Expr {
	adopt(left)
	adopt(right)
	return &Expr{kind: TreeExpr, op: op, left: left, right: right}
}

// NewSymbolic creates a node wrapping sym, taking ownership of it.
func NewSymbolic(sym *Symbol) *Expr {
	if sym == nil {
		panic("symexpr: nil symbol")
	}
	if sym.owned {
		panic("symexpr: symbol " + strconv.Quote(sym.name) + " already belongs to an expression")
	}
	sym.owned = true
	return &Expr{kind: SymbolicExpr, sym: sym}
}

// adopt marks e as a child. Panics if e is nil or already has a parent.
func adopt(e *Expr) {
	if e == nil {
		panic("symexpr: nil subexpression")
	}
	if e.owned {
		panic("symexpr: subexpression already has a parent")
	}
	e.owned = true
}

// Kind returns the variant of e.
func (e *Expr) Kind() ExprKind {
	return e.kind
}

// Value returns the value of a ValueExpr. For other kinds, the result is an
// Error placeholder.
func (e *Expr) Value() Value {
	if e.kind != ValueExpr {
		return Placeholder(Error)
	}
	return e.val
}

// Op returns the operator of a TreeExpr, or 0 for other kinds.
func (e *Expr) Op() byte {
	return e.op
}

// Left returns the left operand of a TreeExpr, or nil.
func (e *Expr) Left() *Expr {
	return e.left
}

// Right returns the right operand of a TreeExpr, or nil.
func (e *Expr) Right() *Expr {
	return e.right
}

// Symbol returns the symbol of a SymbolicExpr, or nil.
func (e *Expr) Symbol() *Symbol {
	return e.sym
}

// Symbols returns the sorted names of all symbols in the expression,
// including those inside symbol parameters.
func (e *Expr) Symbols() []string {
	seen := make(map[string]bool)
	e.symbols(seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

func (e *Expr) symbols(seen map[string]bool) {
	switch e.kind {
	case TreeExpr:
		e.left.symbols(seen)
		e.right.symbols(seen)
	case SymbolicExpr:
		seen[e.sym.name] = true
		if e.sym.param != nil {
			e.sym.param.symbols(seen)
		}
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// String formats the expression with every operation parenthesized, e.g.
// "((10 + 20) + 128)" or "foo((1 + 2))". Panics if the tree contains a node
// that was not made by a constructor.
func (e *Expr) String() string {
	s, err := e.Text(0)
	if err != nil {
		panic(err)
	}
	return s
}

// Text formats the expression like String, but fails with a *FaultError if
// the result would be longer than limit bytes. A limit of zero or less means
// no limit.
func (e *Expr) Text(limit int) (string, error) {
	p := printer{limit: limit}
	if err := e.fmt(&p); err != nil {
		return "", err
	}
	return p.b.String(), nil
}

type printer struct {
	b     strings.Builder
	limit int
}

func (p *printer) write(s string) error {
	if p.limit > 0 && p.b.Len()+len(s) > p.limit {
		return &FaultError{Func: "Text", Msg: "output too large (limit " + strconv.Itoa(p.limit) + " bytes)"}
	}
	p.b.WriteString(s)
	return nil
}

func (e *Expr) fmt(p *printer) error {
	if e == nil {
		return &FaultError{Func: "Text", Msg: "nil expression after writing " + strconv.Quote(p.b.String())}
	}
	switch e.kind {
	case ValueExpr:
		return p.write(e.val.String())
	case TreeExpr:
		if err := p.write("("); err != nil {
			return err
		}
		if err := e.left.fmt(p); err != nil {
			return err
		}
		if err := p.write(" " + string(e.op) + " "); err != nil {
			return err
		}
		if err := e.right.fmt(p); err != nil {
			return err
		}
		return p.write(")")
	case SymbolicExpr:
		return e.sym.fmt(p)
	default:
		return &FaultError{Func: "Text", Msg: "invalid expression kind " + e.kind.String() + " after writing " + strconv.Quote(p.b.String())}
	}
}
