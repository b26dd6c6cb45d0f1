package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calclib/expr"
)

func FuzzTokenizeRoundTrip(f *testing.F) {
	f.Add("x")
	f.Add("sin(x) + 1")
	f.Add("((")
	f.Add("~pi")
	f.Fuzz(func(t *testing.T, s string) {
		e := expr.New(s)
		again := expr.Tokenize(e.String(), expr.DefaultFuncs())
		if diff := cmp.Diff(e.Tokens(), again); diff != "" {
			t.Errorf("round trip of %q (-first +again):\n%s", s, diff)
		}
	})
}
