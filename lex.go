package expr

import (
	"strings"
	"unicode"
)

// Operators contains the characters which are considered to be
// operators. ~ is unary negation; the rest are binary.
const Operators = "+-*/^~"

// delimiters is the set of characters that always form their own
// one-character token. Everything between two delimiters is emitted as
// a single token, never subdivided.
const delimiters = "()" + Operators

// Balanced reports whether the parentheses in text are balanced: the
// open-paren count never goes negative and ends at zero.
func Balanced(text string) bool {
	cnt := 0
	for i := 0; i < len(text) && cnt >= 0; i++ {
		switch text[i] {
		case '(':
			cnt++
		case ')':
			cnt--
		}
	}
	return cnt == 0
}

// Tokenize splits an expression into tokens, classifying each against
// the given function table. Whitespace is stripped first. If the
// parentheses are unbalanced, the result is nil; callers observe the
// failure as an empty RPN sequence and a NaN evaluation rather than an
// error.
func Tokenize(text string, funcs []Func) []Token {
	text = stripSpace(text)
	if !Balanced(text) {
		return nil
	}
	var tokens []Token
	pos := 0
	for {
		next := strings.IndexAny(text[pos:], delimiters)
		if next < 0 {
			break
		}
		next += pos
		if gap := text[pos:next]; gap != "" {
			tokens = append(tokens, Token{Text: gap, Kind: classify(gap, funcs)})
		}
		tokens = append(tokens, delimToken(text[next]))
		pos = next + 1
	}
	if gap := text[pos:]; gap != "" {
		tokens = append(tokens, Token{Text: gap, Kind: classify(gap, funcs)})
	}
	return tokens
}

func delimToken(c byte) Token {
	switch c {
	case '(':
		return Token{Text: "(", Kind: LeftParen}
	case ')':
		return Token{Text: ")", Kind: RightParen}
	default:
		return Token{Text: string(c), Kind: Operator}
	}
}

func stripSpace(text string) string {
	if !strings.ContainsFunc(text, unicode.IsSpace) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
