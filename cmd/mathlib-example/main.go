// Command mathlib-example prints the results of every mathlib operation.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/glog"

	"github.com/sonic-net/sonic-mathlib/pkg/mathlib"
)

// options holds the operands shown by the example.
type options struct {
	a, b, c   int32
	edgeCases bool
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer glog.Flush()

	glog.V(1).Infof("Running examples with a=%d b=%d c=%d edge=%t", opts.a, opts.b, opts.c, opts.edgeCases)

	if err := printExamples(os.Stdout, opts); err != nil {
		glog.Exitf("Example failed: %v", err)
	}
}

// parseFlags parses args into options. glog registers its own flags on fs,
// so -v and -logtostderr are accepted alongside the operands.
func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	a := fs.Int("a", 10, "first operand")
	b := fs.Int("b", 5, "second operand")
	c := fs.Int("c", -42, "operand for the absolute value example")
	edge := fs.Bool("edge", false, "also print division by zero and Abs(MinInt32)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{edgeCases: *edge}
	for _, v := range []struct {
		name string
		val  int
		dst  *int32
	}{
		{"a", *a, &opts.a},
		{"b", *b, &opts.b},
		{"c", *c, &opts.c},
	} {
		if v.val < math.MinInt32 || v.val > math.MaxInt32 {
			return options{}, fmt.Errorf("operand -%s=%d does not fit in 32 bits", v.name, v.val)
		}
		*v.dst = int32(v.val)
	}
	return opts, nil
}

// printExamples writes one line per operation to w.
func printExamples(w io.Writer, opts options) error {
	a, b, c := opts.a, opts.b, opts.c

	lines := []string{
		"=== Math Library Examples ===",
		"",
		fmt.Sprintf("Addition: %d + %d = %d", a, b, mathlib.Add(a, b)),
		fmt.Sprintf("Subtraction: %d - %d = %d", a, b, mathlib.Subtract(a, b)),
		fmt.Sprintf("Multiplication: %d * %d = %d", a, b, mathlib.Multiply(a, b)),
		fmt.Sprintf("Division: %d / %d = %d", a, b, mathlib.Divide(a, b)),
		fmt.Sprintf("Absolute value: |%d| = %d", c, mathlib.Abs(c)),
		fmt.Sprintf("Max(%d, %d) = %d", a, b, mathlib.Max(a, b)),
		fmt.Sprintf("Min(%d, %d) = %d", a, b, mathlib.Min(a, b)),
	}

	if opts.edgeCases {
		var minInt32 int32 = math.MinInt32
		lines = append(lines,
			"",
			"Edge cases:",
			fmt.Sprintf("Division by zero: %d / 0 = %d", a, mathlib.Divide(a, 0)),
			fmt.Sprintf("Absolute value: |%d| = %d", minInt32, mathlib.Abs(minInt32)),
		)
	}

	lines = append(lines, "", "Example completed successfully!")

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	glog.V(2).Infof("Wrote %d lines", len(lines))
	return nil
}
