package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepnoodle-ai/twister"
	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/twister/pkg/sample"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/hashicorp/go-multierror"
)

// resultJSON is the JSON form of one evaluated statement.
type resultJSON struct {
	Call   string       `json:"call"`
	Stream string       `json:"stream"`
	Value  sample.Value `json:"value"`
	Error  string       `json:"error,omitempty"`
}

func evalHandler(ctx *cli.Context) error {
	source, err := getEvalSource(ctx)
	if err != nil {
		return err
	}
	return evaluate(ctx, source, "")
}

func runHandler(ctx *cli.Context) error {
	path := ctx.Arg(0)
	if path == "" {
		return errors.New("no file provided")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return evaluate(ctx, string(data), path)
}

func evaluate(ctx *cli.Context, source, filename string) error {
	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	var extra []twister.Option
	if filename != "" {
		extra = append(extra, twister.WithFilename(filename))
	}
	if ctx.Bool("keep-going") {
		extra = append(extra, twister.WithKeepGoing())
	}
	gen, _, err := newGenerator(ctx, extra...)
	if err != nil {
		return err
	}

	results, evalErr := gen.Eval(ctx.Context(), source)

	if format == "json" {
		out := make([]resultJSON, 0, len(results))
		for _, r := range results {
			item := resultJSON{Call: r.Call, Stream: r.Stream.String(), Value: r.Value}
			if r.Err != nil {
				item.Error = r.Err.Error()
			}
			out = append(out, item)
		}
		if err := printJSON(ctx, out); err != nil {
			return err
		}
	} else {
		printValues(results)
	}
	if evalErr != nil {
		return formatError(evalErr)
	}
	return nil
}

// printValues prints the value of every successful statement that produced
// one, one per line.
func printValues(results []twister.Result) {
	for _, r := range results {
		if r.Err != nil || r.Value.Kind() == sample.KindNone {
			continue
		}
		fmt.Println(r.Value)
	}
}

// formatError renders located errors with a source snippet.
func formatError(err error) error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		parts := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			parts = append(parts, friendly(e))
		}
		return errors.New(strings.Join(parts, "\n"))
	}
	return errors.New(friendly(err))
}

func friendly(err error) string {
	var e *errz.Error
	if errors.As(err, &e) {
		return strings.TrimSuffix(e.FriendlyErrorMessage(), "\n")
	}
	return err.Error()
}

func getEvalSource(ctx *cli.Context) (string, error) {
	codeSet := ctx.IsSet("code")
	stdinSet := ctx.Bool("stdin")
	exprProvided := ctx.Arg(0) != ""

	count := 0
	for _, set := range []bool{codeSet, stdinSet, exprProvided} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", errors.New("multiple input sources specified")
	}
	if count == 0 {
		return "", errors.New("no expression provided")
	}

	if stdinSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if exprProvided {
		return ctx.Arg(0), nil
	}
	return ctx.String("code"), nil
}
