// Package expr evaluates arithmetic expressions over float64 values.
//
// An expression is parsed once, via a tokenizer and Dijkstra's
// Shunting-Yard conversion to postfix form, and can then be evaluated
// any number of times against different variable bindings. Expressions
// support the binary operators + - * / ^, the unary negation operator
// ~, parentheses, named variables, and named unary functions such as
// sin or sqrt.
//
// There are no parse or evaluation errors. Malformed input, such as
// unbalanced parentheses or unbound variables, surfaces uniformly as
// a NaN result.
package expr
