//go:build go1.18
// +build go1.18

package symexpr_test

import (
	"testing"

	"github.com/zephyrtronium/symexpr"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("1 / 0")
	f.Add("9223372036854775807 * 2")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := symexpr.EvalString(s)
		if err != nil {
			return
		}
		switch r.Kind() {
		case symexpr.Error, symexpr.Undefined, symexpr.Infinity, symexpr.LongInteger:
		default:
			t.Errorf("%q evaluated to invalid kind %v", s, r.Kind())
		}
	})
}
