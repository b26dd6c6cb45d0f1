package expr

import "math"

// Func is a named unary real function. Functions are held in an
// ordered table; lookup is by exact name and the first match wins, so
// a caller-supplied entry can shadow a later one of the same name.
type Func struct {
	Name string
	Fn   func(float64) float64
}

// Variable is a named numeric binding.
type Variable struct {
	Name string
	Val  float64
}

// The default tables are built once and shared. Callers receive them
// by reference and must not modify them; evaluation never does.
var (
	defaultFuncs = []Func{
		{"sin", math.Sin},
		{"cos", math.Cos},
		{"tan", math.Tan},
		{"ln", math.Log},
		{"log", math.Log10},
		{"exp", math.Exp},
		{"sqrt", math.Sqrt},
		{"abs", math.Abs},
	}

	defaultVars = []Variable{
		{"pi", 3.141592654},
		{"e", 2.718281828},
	}
)

// DefaultFuncs returns the default function table: sin, cos, tan, ln
// (natural log), log (base 10), exp, sqrt, and abs. The table is
// shared; treat it as read-only.
func DefaultFuncs() []Func {
	return defaultFuncs
}

// DefaultVars returns the default variable bindings pi and e. The
// slice is shared; treat it as read-only.
func DefaultVars() []Variable {
	return defaultVars
}

// lookupFunc finds a function by name. First match wins.
func lookupFunc(name string, funcs []Func) (func(float64) float64, bool) {
	for _, f := range funcs {
		if f.Name == name {
			return f.Fn, true
		}
	}
	return nil, false
}
