package expr

import (
	"math"
	"strconv"
	"strings"
)

// EvalRPN evaluates a postfix token sequence against variable bindings
// and a function table, processing tokens left to right over a single
// value stack.
//
// The only error channel is the NaN sentinel: an empty sequence, a
// function applied to an empty stack, or a final stack depth other
// than one all yield NaN. An operator without enough operands is
// skipped outright rather than aborting, and an unresolvable variable
// pushes nothing; both leave the stack depth wrong, which the final
// check catches.
func EvalRPN(rpn []Token, vars []Variable, funcs []Func) float64 {
	stack := make([]float64, 0, len(rpn))
	for _, tok := range rpn {
		switch tok.Kind {
		case Number:
			if v, ok := parseNumber(tok.Text); ok {
				stack = append(stack, v)
			}
		case Function:
			if fn, ok := lookupFunc(tok.Text, funcs); ok {
				if len(stack) == 0 {
					return math.NaN()
				}
				stack[len(stack)-1] = fn(stack[len(stack)-1])
			} else if v, ok := lookupVar(tok.Text, vars); ok {
				// A function name absent from the table supplied at
				// evaluation time falls back to variable resolution.
				stack = append(stack, v)
			}
		case Operator:
			switch {
			case binaryOperator(tok) && len(stack) >= 2:
				b := stack[len(stack)-1]
				a := stack[len(stack)-2]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1] = calculate(a, b, tok.Text)
			case unaryOperator(tok) && len(stack) >= 1:
				stack[len(stack)-1] = -stack[len(stack)-1]
			}
		case Ident:
			if v, ok := lookupVar(tok.Text, vars); ok {
				stack = append(stack, v)
			}
		}
	}
	if len(stack) != 1 {
		return math.NaN()
	}
	return stack[0]
}

// calculate applies a binary operator. Division and exponentiation use
// standard float64 semantics: a/0 is ±Inf and pow may produce NaN for
// fractional exponents of negative bases.
func calculate(a, b float64, op string) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	case "^":
		return math.Pow(a, b)
	}
	return math.NaN()
}

// parseNumber parses number token text. A leading ~ is reinterpreted
// as a negative sign so that hand-built RPN sequences may carry
// negated literals.
func parseNumber(text string) (float64, bool) {
	if strings.HasPrefix(text, "~") {
		text = "-" + text[1:]
	}
	v, err := strconv.ParseFloat(text, 64)
	return v, err == nil
}

// lookupVar resolves a variable name against bindings, in order, first
// match wins. A name of the form ~name resolves to the negated value
// of name.
func lookupVar(name string, vars []Variable) (float64, bool) {
	for _, v := range vars {
		if v.Name == name {
			return v.Val, true
		}
		if "~"+v.Name == name {
			return -v.Val, true
		}
	}
	return 0, false
}
