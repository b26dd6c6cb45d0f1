package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFuncs(t *testing.T) {
	names := make([]string, len(defaultFuncs))
	for i, f := range defaultFuncs {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"sin", "cos", "tan", "ln", "log", "exp", "sqrt", "abs"}, names)

	// ln is the natural log and log is base 10.
	ln, _ := lookupFunc("ln", defaultFuncs)
	log, _ := lookupFunc("log", defaultFuncs)
	assert.InDelta(t, 1.0, ln(math.E), 1e-12)
	assert.InDelta(t, 2.0, log(100), 1e-12)
}

func TestDefaultVars(t *testing.T) {
	assert.Equal(t, []Variable{{"pi", 3.141592654}, {"e", 2.718281828}}, DefaultVars())
}

func TestLookupFuncFirstMatchWins(t *testing.T) {
	funcs := []Func{
		{"f", func(float64) float64 { return 1 }},
		{"f", func(float64) float64 { return 2 }},
	}
	fn, ok := lookupFunc("f", funcs)
	assert.True(t, ok)
	assert.Equal(t, 1.0, fn(0))

	_, ok = lookupFunc("g", funcs)
	assert.False(t, ok)
}

func TestLookupVar(t *testing.T) {
	vars := []Variable{{"x", 2}, {"y", -3}}
	cases := []struct {
		name string
		val  float64
		ok   bool
	}{
		{"x", 2, true},
		{"~x", -2, true},
		{"y", -3, true},
		{"~y", 3, true},
		{"z", 0, false},
		{"~z", 0, false},
	}
	for _, c := range cases {
		v, ok := lookupVar(c.name, vars)
		assert.Equal(t, c.ok, ok, "lookup %q", c.name)
		assert.Equal(t, c.val, v, "lookup %q", c.name)
	}
}
