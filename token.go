package expr

import "strconv"

// Token is a single lexical unit of an expression. Its Kind is decided
// once, during tokenization, and never re-derived afterward.
type Token struct {
	// Text is the token as it appeared in the input, except for number
	// tokens in an RPN sequence, which are re-rendered from their
	// parsed value.
	Text string
	// Kind classifies the token.
	Kind Kind
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// Kind is the classification of a token.
type Kind int8

const (
	// None is the zero Kind. It never appears in a tokenized sequence.
	None Kind = iota
	// Number is a numeric literal that parses fully as a float64.
	Number
	// Operator is one of + - * / ^ ~.
	Operator
	// LeftParen is (.
	LeftParen
	// RightParen is ).
	RightParen
	// Function is a name found in the active function table.
	Function
	// Ident is any other name, treated as a variable reference.
	// Unresolvable names still tokenize as idents; they surface as a
	// NaN result at evaluation time.
	Ident
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case Function:
		return "Function"
	case Ident:
		return "Ident"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// classify determines the kind of a non-delimiter token. Number parsing
// is tried first and must consume the entire text, then the function
// table, and anything else is a variable reference.
func classify(text string, funcs []Func) Kind {
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return Number
	}
	if _, ok := lookupFunc(text, funcs); ok {
		return Function
	}
	return Ident
}
