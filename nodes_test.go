package symexpr_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/symexpr"
)

func TestString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "129", "129"},
		{"parens", "((129))", "129"},
		{"add", "1+1", "(1 + 1)"},
		{"grouped", "(10 + 20) + 128", "((10 + 20) + 128)"},
		{"leftmost", "2*3+4", "(2 * (3 + 4))"},
		{"ident", "  x ", "x"},
		{"call", "foo(1 + 2)", "foo((1 + 2))"},
		{"call-num", "foo ( 7 )", "foo(7)"},
		{"call-nested", "f(g(x))", "f(g(x))"},
		{"mixed", "a*f(b)/(c - 1)", "(a * (f(b) / (c - 1)))"},
		{"zeros", "007 - 0", "(7 - 0)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := symexpr.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := a.String(); got != c.want {
				t.Errorf("%q printed as %q, want %q", c.src, got, c.want)
			}
			got, err := a.Text(symexpr.DefaultTextLimit)
			if err != nil {
				t.Fatalf("%q failed to print: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q printed with limit as %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestStringPlaceholders(t *testing.T) {
	e := symexpr.NewTree('-',
		symexpr.NewValue(symexpr.Placeholder(symexpr.Infinity)),
		symexpr.NewTree('/',
			symexpr.NewValue(symexpr.Placeholder(symexpr.Undefined)),
			symexpr.NewValue(symexpr.Placeholder(symexpr.Error)),
		),
	)
	if got, want := e.String(), "(INF - (UNDEF / ERROR))"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestTextLimit(t *testing.T) {
	a, err := symexpr.Parse("foo(1 + 2)")
	if err != nil {
		t.Fatal(err)
	}
	// foo((1 + 2)) is 12 bytes.
	cases := []struct {
		limit int
		ok    bool
	}{
		{0, true},
		{-1, true},
		{12, true},
		{100, true},
		{11, false},
		{3, false},
		{1, false},
	}
	for _, c := range cases {
		s, err := a.Text(c.limit)
		switch {
		case c.ok && err != nil:
			t.Errorf("limit %d: %v", c.limit, err)
		case c.ok && s != "foo((1 + 2))":
			t.Errorf("limit %d: wrong text %q", c.limit, s)
		case !c.ok && err == nil:
			t.Errorf("limit %d: gave %q with no error", c.limit, s)
		case !c.ok:
			if _, ok := err.(*symexpr.FaultError); !ok {
				t.Errorf("limit %d: %#v is not *symexpr.FaultError", c.limit, err)
			}
			if !strings.Contains(err.Error(), "too large") {
				t.Errorf("limit %d: %q doesn't say too large", c.limit, err.Error())
			}
		}
	}
}

func TestTextDefaultLimit(t *testing.T) {
	src := "1" + strings.Repeat(" + 1", 60)
	a, err := symexpr.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.String()) <= symexpr.DefaultTextLimit {
		t.Fatalf("test expression is too short: %d bytes", len(a.String()))
	}
	if _, err := a.Text(symexpr.DefaultTextLimit); err == nil {
		t.Error("no error for long output")
	}
}

func TestTextInvalid(t *testing.T) {
	if s, err := new(symexpr.Expr).Text(0); err == nil {
		t.Errorf("zero Expr printed as %q", s)
	}
}

func TestAccessors(t *testing.T) {
	a, err := symexpr.Parse("(1 + x) * foo(2)")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind() != symexpr.TreeExpr || a.Op() != '*' {
		t.Fatalf("root is %v %q", a.Kind(), a.Op())
	}
	l, r := a.Left(), a.Right()
	if l.Kind() != symexpr.TreeExpr || l.Op() != '+' {
		t.Errorf("left is %v %q", l.Kind(), l.Op())
	}
	if v, ok := l.Left().Value().Int64(); !ok || v != 1 {
		t.Errorf("left left is %v", l.Left().Value())
	}
	if s := l.Right().Symbol(); s == nil || s.Name() != "x" || s.Param() != nil {
		t.Errorf("left right is %v", l.Right())
	}
	s := r.Symbol()
	if r.Kind() != symexpr.SymbolicExpr || s == nil || s.Name() != "foo" {
		t.Fatalf("right is %v", r)
	}
	if s.Param() == nil || s.Param().Value() != symexpr.NewInt(2) {
		t.Errorf("foo's parameter is %v", s.Param())
	}
	if s.String() != "foo(2)" {
		t.Errorf("foo printed as %q", s.String())
	}
	if a.Value().Kind() != symexpr.Error || a.Symbol() != nil {
		t.Errorf("tree has value %v and symbol %v", a.Value(), a.Symbol())
	}
	if r.Left() != nil || r.Right() != nil || r.Op() != 0 {
		t.Errorf("symbolic node has operands")
	}
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"129",
		"1 + 1",
		"(10 + 20) + 128",
		"2 * 3 + 4",
		"1 - 2 - 3 - 4",
		"((1 - 2) - 3) - 4",
		"(8 / 3) * (7 - 9)",
		"foo(1 + 2)",
		"a + f(g(b * 2)) / 3",
		"1 / 0",
		"9223372036854775807 + 1",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			a, err := symexpr.Parse(src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", src, err)
			}
			s := a.String()
			b, err := symexpr.Parse(s)
			if err != nil {
				t.Fatalf("%q printed as %q which failed to parse: %v", src, s, err)
			}
			if s2 := b.String(); s2 != s {
				t.Errorf("%q printed as %q which printed as %q", src, s, s2)
			}
			va, erra := a.Eval()
			vb, errb := b.Eval()
			if va != vb {
				t.Errorf("%q gave %v but %q gave %v", src, va, s, vb)
			}
			if (erra == nil) != (errb == nil) || erra != nil && erra.Error() != errb.Error() {
				t.Errorf("%q gave error %v but %q gave error %v", src, erra, s, errb)
			}
		})
	}
}
