package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// empty and whitespace
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{{"0", Number}}},
		{"9876543210", []Token{{"9876543210", Number}}},
		{"1.5", []Token{{"1.5", Number}}},
		{".5", []Token{{".5", Number}}},
		{"1e5", []Token{{"1e5", Number}}},
		// an explicit exponent sign splits on the sign character, so
		// the mantissa half no longer parses as a number
		{"1e+5", []Token{{"1e", Ident}, {"+", Operator}, {"5", Number}}},
		// operators are always single-character tokens
		{"1+2", []Token{{"1", Number}, {"+", Operator}, {"2", Number}}},
		{"-1", []Token{{"-", Operator}, {"1", Number}}},
		{"~x", []Token{{"~", Operator}, {"x", Ident}}},
		{"a--b", []Token{{"a", Ident}, {"-", Operator}, {"-", Operator}, {"b", Ident}}},
		{"4^3^2", []Token{{"4", Number}, {"^", Operator}, {"3", Number}, {"^", Operator}, {"2", Number}}},
		// names
		{"pi", []Token{{"pi", Ident}}},
		{"sin(x)", []Token{{"sin", Function}, {"(", LeftParen}, {"x", Ident}, {")", RightParen}}},
		{"ln(x)+log(x)", []Token{
			{"ln", Function}, {"(", LeftParen}, {"x", Ident}, {")", RightParen},
			{"+", Operator},
			{"log", Function}, {"(", LeftParen}, {"x", Ident}, {")", RightParen},
		}},
		// whitespace is stripped before splitting
		{"x ^ 3 - 2*x", []Token{
			{"x", Ident}, {"^", Operator}, {"3", Number},
			{"-", Operator}, {"2", Number}, {"*", Operator}, {"x", Ident},
		}},
		// unbalanced parentheses yield no tokens at all
		{"(1+2", nil},
		{"1+2)", nil},
		{")(", nil},
		{"((1)", nil},
		// balanced nesting
		{"((1))", []Token{{"(", LeftParen}, {"(", LeftParen}, {"1", Number}, {")", RightParen}, {")", RightParen}}},
	}
	for _, c := range cases {
		got := Tokenize(c.src, defaultFuncs)
		if diff := cmp.Diff(c.tokens, got); diff != "" {
			t.Errorf("tokenizing %q (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestTokenizeCustomFuncs(t *testing.T) {
	funcs := []Func{{Name: "frob", Fn: func(x float64) float64 { return x }}}
	got := Tokenize("frob(sin)", funcs)
	want := []Token{{"frob", Function}, {"(", LeftParen}, {"sin", Ident}, {")", RightParen}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokenizing with custom table (-want +got):\n%s", diff)
	}
}

func TestClassifyOrder(t *testing.T) {
	// A full numeric parse takes precedence over everything, and a
	// partial one counts for nothing.
	cases := []struct {
		text string
		kind Kind
	}{
		{"1", Number},
		{"1.5e3", Number},
		{"1x", Ident},
		{"1e", Ident},
		{"sin", Function},
		{"sine", Ident},
		{"x", Ident},
	}
	for _, c := range cases {
		if got := classify(c.text, defaultFuncs); got != c.kind {
			t.Errorf("classify(%q) = %v, want %v", c.text, got, c.kind)
		}
	}
}

func TestKindString(t *testing.T) {
	// Ident names the variable-reference kind; Variable stays the
	// binding type.
	var _ = Variable{Name: "x", Val: 1}
	cases := []struct {
		kind Kind
		str  string
	}{
		{None, "None"},
		{Number, "Number"},
		{Operator, "Operator"},
		{LeftParen, "LeftParen"},
		{RightParen, "RightParen"},
		{Function, "Function"},
		{Ident, "Ident"},
		{Kind(42), "Kind(42)"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.str {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.str)
		}
	}
}

func TestBalanced(t *testing.T) {
	cases := []struct {
		src string
		ok  bool
	}{
		{"", true},
		{"()", true},
		{"(()())", true},
		{"(", false},
		{")", false},
		{")(", false}, // count ends at zero but dips negative
		{"(1+2", false},
	}
	for _, c := range cases {
		if got := Balanced(c.src); got != c.ok {
			t.Errorf("Balanced(%q) = %v, want %v", c.src, got, c.ok)
		}
	}
}
