package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/deepnoodle-ai/twister"
	"github.com/deepnoodle-ai/twister/pkg/sample"
	"github.com/deepnoodle-ai/twister/pkg/stream"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a batch of draws.
type Summary struct {
	Call     string  `json:"call"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
}

// drawer repeatedly calls one bound function on one stream.
type drawer struct {
	gen  *twister.Generator
	id   stream.ID
	name string
	args []sample.Value
}

// newDrawer parses "<stream> <name> [args...]" positional arguments.
func newDrawer(ctx *cli.Context) (*drawer, error) {
	args := ctx.Args()
	if len(args) < 2 {
		return nil, errors.New("usage: <stream> <name> [args...]")
	}
	id, err := stream.ParseID(args[0])
	if err != nil {
		return nil, err
	}
	name := args[1]
	if _, ok := sample.Params(id, name); !ok {
		return nil, fmt.Errorf("%s has no function named %q", id, name)
	}
	values, err := twister.ParseArgs(ctx.Context(), strings.Join(args[2:], ", "))
	if err != nil {
		return nil, err
	}
	gen, _, err := newGenerator(ctx)
	if err != nil {
		return nil, err
	}
	return &drawer{gen: gen, id: id, name: name, args: values}, nil
}

func (d *drawer) String() string {
	parts := make([]string, len(d.args))
	for i, arg := range d.args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s.%s(%s)", d.id, d.name, strings.Join(parts, ", "))
}

func (d *drawer) draw(n int) ([]sample.Value, error) {
	values := make([]sample.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.gen.Call(d.id, d.name, d.args...)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

func getCount(ctx *cli.Context) (int, error) {
	n := ctx.Int("count")
	if n <= 0 {
		return 0, fmt.Errorf("count must be > 0, got %d", n)
	}
	return n, nil
}

func sampleHandler(ctx *cli.Context) error {
	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	n, err := getCount(ctx)
	if err != nil {
		return err
	}
	d, err := newDrawer(ctx)
	if err != nil {
		return err
	}
	values, err := d.draw(n)
	if err != nil {
		return formatError(err)
	}
	if format == "json" {
		return printJSON(ctx, values)
	}
	for _, v := range values {
		fmt.Println(v)
	}
	return nil
}

func statsHandler(ctx *cli.Context) error {
	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	n, err := getCount(ctx)
	if err != nil {
		return err
	}
	d, err := newDrawer(ctx)
	if err != nil {
		return err
	}
	values, err := d.draw(n)
	if err != nil {
		return formatError(err)
	}
	xs := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float()
		if !ok {
			return fmt.Errorf("%s returns %s values, which have no statistics", d, v.Kind())
		}
		xs[i] = f
	}
	summary := summarize(d.String(), xs)
	if format == "json" {
		return printJSON(ctx, summary)
	}
	printSummary(ctx, summary)
	return nil
}

// summarize computes descriptive statistics of xs. xs is sorted in place.
func summarize(call string, xs []float64) Summary {
	sort.Float64s(xs)
	mean, variance := stat.MeanVariance(xs, nil)
	if len(xs) < 2 {
		variance = 0
	}
	return Summary{
		Call:     call,
		Count:    len(xs),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      floats.Min(xs),
		Q1:       stat.Quantile(0.25, stat.Empirical, xs, nil),
		Median:   stat.Quantile(0.5, stat.Empirical, xs, nil),
		Q3:       stat.Quantile(0.75, stat.Empirical, xs, nil),
		Max:      floats.Max(xs),
	}
}

func printSummary(ctx *cli.Context, s Summary) {
	label := func(text string) string {
		text = fmt.Sprintf("%-9s", text)
		if useColor(ctx, os.Stdout) {
			return color.Cyan.Apply(text)
		}
		return text
	}
	fmt.Println(s.Call)
	fmt.Printf("%s %d\n", label("count"), s.Count)
	rows := []struct {
		name  string
		value float64
	}{
		{"mean", s.Mean},
		{"variance", s.Variance},
		{"std dev", s.StdDev},
		{"min", s.Min},
		{"q1", s.Q1},
		{"median", s.Median},
		{"q3", s.Q3},
		{"max", s.Max},
	}
	for _, row := range rows {
		fmt.Printf("%s %.6g\n", label(row.name), row.value)
	}
}
