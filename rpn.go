package expr

import "strconv"

// Operator precedence. Higher binds tighter. Non-operator tokens,
// including functions and parentheses on the operator stack, have
// precedence 0 so they never pop for an incoming operator.
func precedence(tok Token) int {
	switch tok.Text {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "^", "~":
		return 3
	}
	return 0
}

// leftAssociative reports whether an operator groups left to right.
// ^ and ~ are absent: exponentiation is conventionally right-
// associative, and negation takes a single operand.
func leftAssociative(tok Token) bool {
	switch tok.Text {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

func binaryOperator(tok Token) bool {
	switch tok.Text {
	case "+", "-", "*", "/", "^":
		return true
	}
	return false
}

func unaryOperator(tok Token) bool {
	return tok.Text == "~"
}

// formatNumber renders a numeric value back to token text. RPN number
// tokens carry this normalized rendering rather than the input text.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ToRPN converts a tokenized infix expression to postfix order using
// the Shunting-Yard algorithm.
//
// A right parenthesis that empties the stack without finding its
// match, or a left parenthesis still on the stack at the end, is
// discarded silently; mismatches are caught earlier by the tokenizer's
// balance check, and hand-built sequences get the permissive behavior.
func ToRPN(tokens []Token) []Token {
	var rpn []Token
	var ops []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			// Re-render from the parsed value, honoring a ~ prefix in
			// hand-built sequences. Text that does not parse at all is
			// passed through untouched.
			if v, ok := parseNumber(tok.Text); ok {
				tok = Token{Text: formatNumber(v), Kind: Number}
			}
			rpn = append(rpn, tok)
		case Function:
			ops = append(ops, tok)
		case Operator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == LeftParen {
					break
				}
				if precedence(top) < precedence(tok) {
					break
				}
				if precedence(top) == precedence(tok) && !leftAssociative(tok) {
					break
				}
				rpn = append(rpn, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case LeftParen:
			ops = append(ops, tok)
		case RightParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != LeftParen {
				rpn = append(rpn, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 && ops[len(ops)-1].Kind == LeftParen {
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 && ops[len(ops)-1].Kind == Function {
				rpn = append(rpn, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
		default:
			// Variable references go straight to the output.
			rpn = append(rpn, tok)
		}
	}
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Kind != LeftParen {
			rpn = append(rpn, ops[i])
		}
	}
	return rpn
}
