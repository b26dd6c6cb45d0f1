package expr

import "strings"

// Expression is a parsed arithmetic expression. Construction runs the
// tokenizer and the RPN conversion once and caches both sequences;
// evaluation never re-tokenizes or re-converts.
//
// An Expression is immutable after construction. Each evaluation
// allocates its own value stack, so a single Expression may be
// evaluated concurrently, provided any caller-supplied functions are
// themselves safe to share.
type Expression struct {
	text     string
	funcs    []Func
	tokens   []Token
	rpn      []Token
	tokStr   string
	rpnStr   string
	balanced bool
}

// New parses an expression using the default function table.
func New(text string) *Expression {
	return NewWithFuncs(text, defaultFuncs)
}

// NewWithFuncs parses an expression against a caller-supplied function
// table. Construction never fails: unbalanced parentheses produce an
// Expression with empty token and RPN sequences, which evaluates to
// NaN.
func NewWithFuncs(text string, funcs []Func) *Expression {
	e := &Expression{
		text:     text,
		funcs:    funcs,
		balanced: Balanced(stripSpace(text)),
	}
	e.tokens = Tokenize(text, funcs)
	e.rpn = ToRPN(e.tokens)
	e.tokStr = joinTokens(e.tokens)
	e.rpnStr = joinTokens(e.rpn)
	return e
}

func joinTokens(tokens []Token) string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return strings.Join(texts, " ")
}

// String returns the space-joined token sequence. Tokens never contain
// spaces, so re-tokenizing the result yields the same sequence.
func (e *Expression) String() string {
	return e.tokStr
}

// RPNString returns the space-joined postfix token sequence.
func (e *Expression) RPNString() string {
	return e.rpnStr
}

// Balanced reports whether the expression's parentheses were balanced
// at construction.
func (e *Expression) Balanced() bool {
	return e.balanced
}

// Tokens returns a copy of the infix token sequence.
func (e *Expression) Tokens() []Token {
	return append([]Token(nil), e.tokens...)
}

// RPN returns a copy of the postfix token sequence.
func (e *Expression) RPN() []Token {
	return append([]Token(nil), e.rpn...)
}

// Eval evaluates the expression with only the default variables pi
// and e bound.
func (e *Expression) Eval() float64 {
	return EvalRPN(e.rpn, defaultVars, e.funcs)
}

// EvalAt evaluates the expression with the variable x bound to val,
// overwriting a default x if one existed and appending it otherwise.
// The default pi and e remain bound.
func (e *Expression) EvalAt(val float64) float64 {
	vars := append([]Variable(nil), defaultVars...)
	bound := false
	for i := range vars {
		if vars[i].Name == "x" {
			vars[i].Val = val
			bound = true
		}
	}
	if !bound {
		vars = append(vars, Variable{Name: "x", Val: val})
	}
	return EvalRPN(e.rpn, vars, e.funcs)
}

// EvalVars evaluates the expression with exactly the supplied
// bindings. No defaults are merged in; callers wanting pi or e must
// include them.
func (e *Expression) EvalVars(vars []Variable) float64 {
	return EvalRPN(e.rpn, vars, e.funcs)
}
