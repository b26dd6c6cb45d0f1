// Command expr parses and evaluates arithmetic expressions.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/calclib/expr"
)

func main() {
	app := &cli.App{
		Name:  "expr",
		Usage: "parse and evaluate arithmetic expressions",
		Commands: []*cli.Command{
			evalCommand(),
			demoCommand(),
			tableCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate expressions from arguments, a file, or stdin",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "given",
				Aliases: []string{"g"},
				Usage:   "`name=value` variable binding; value may itself be an expression (repeatable)",
			},
			&cli.StringFlag{
				Name:  "in",
				Usage: "read expressions from `file`, one per line (- for stdin)",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print token and RPN forms before each result",
			},
		},
		Action: runEval,
	}
}

func runEval(c *cli.Context) error {
	vars, err := parseBindings(c.StringSlice("given"))
	if err != nil {
		return err
	}
	srcs := c.Args().Slice()
	if name := c.String("in"); name != "" || len(srcs) == 0 {
		lines, err := readLines(name)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	for _, src := range srcs {
		e := expr.New(src)
		if c.Bool("echo") {
			fmt.Printf("%s : %s : ", e, e.RPNString())
		}
		fmt.Printf("%g\n", e.EvalVars(vars))
	}
	return nil
}

// parseBindings turns name=value arguments into bindings, with the
// default pi and e appended last so user bindings shadow them.
func parseBindings(given []string) ([]expr.Variable, error) {
	vars := make([]expr.Variable, 0, len(given)+2)
	for _, g := range given {
		name, value, ok := strings.Cut(g, "=")
		if !ok {
			return nil, fmt.Errorf("variable definitions must be %q, not %q", "name=value", g)
		}
		v := expr.New(strings.TrimSpace(value)).Eval()
		vars = append(vars, expr.Variable{Name: strings.TrimSpace(name), Val: v})
	}
	return append(vars, expr.DefaultVars()...), nil
}

func readLines(name string) ([]string, error) {
	f := os.Stdin
	if name != "" && name != "-" {
		in, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "walk through sample expressions",
		Action: runDemo,
	}
}

func runDemo(c *cli.Context) error {
	samples := []struct {
		src string
		at  []float64
	}{
		{"x^3 - 2*x^2 -x + 1", []float64{-1, -0.5}},
		{"e^~x - ln(x)", []float64{1, 1.5}},
		{"e^~(x^2) - x", []float64{-0.5, 0.5}},
		{"x^4 - 6*x^3 + 12*x^2 - 10*x + 3", []float64{3, 1, 0}},
		{"e", nil},
		{"pi", nil},
		{"~pi", nil},
		{"sin(x)", []float64{3.1416 / 2}},
		{"~7*e^~x + sin(tan(x^3) + cos(x - pi))", []float64{3.1416 / 2}},
	}
	for _, s := range samples {
		e := expr.New(s.src)
		fmt.Println("f(x) =", e)
		fmt.Println("rpn:", e.RPNString())
		if len(s.at) == 0 {
			fmt.Printf("f() = %g\n", e.Eval())
		}
		for _, x := range s.at {
			fmt.Printf("f(%g) = %g\n", x, e.EvalAt(x))
		}
		fmt.Println("===")
	}

	e := expr.New("2*a + 1")
	fmt.Println("f(a) =", e)
	fmt.Println("rpn:", e.RPNString())
	for _, a := range []float64{-1, -10, 10} {
		fmt.Printf("f(a = %g) = %g\n", a, e.EvalVars([]expr.Variable{{Name: "a", Val: a}}))
	}
	fmt.Println("===")
	return nil
}

func tableCommand() *cli.Command {
	return &cli.Command{
		Name:      "table",
		Usage:     "tabulate an expression over a range of values",
		ArgsUsage: "expression",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "var", Value: "x", Usage: "variable `name` to sweep"},
			&cli.Float64Flag{Name: "from", Value: 0, Usage: "first value"},
			&cli.Float64Flag{Name: "to", Value: 1, Usage: "last value"},
			&cli.Float64Flag{Name: "step", Value: 0.1, Usage: "increment"},
		},
		Action: runTable,
	}
}

func runTable(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("table wants exactly one expression, got %d", c.NArg())
	}
	step := c.Float64("step")
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %g", step)
	}
	name := c.String("var")
	e := expr.New(c.Args().First())

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{name, "f(" + name + ")"})
	for x := c.Float64("from"); x <= c.Float64("to")+step/2; x += step {
		vars := append([]expr.Variable{{Name: name, Val: x}}, expr.DefaultVars()...)
		w.Append([]string{
			strconv.FormatFloat(x, 'g', 6, 64),
			strconv.FormatFloat(e.EvalVars(vars), 'g', 6, 64),
		})
	}
	w.Render()
	return nil
}
