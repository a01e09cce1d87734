package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output to f should be colorized.
func useColor(ctx *cli.Context, f *os.File) bool {
	return !ctx.Bool("no-color") && color.Enabled && isTerminal(f)
}

func outputFormat(ctx *cli.Context) (string, error) {
	format := strings.ToLower(ctx.String("output"))
	switch format {
	case "", "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

// printJSON writes v to stdout as indented JSON, colorized on a terminal.
func printJSON(ctx *cli.Context, v any) error {
	var data []byte
	var err error
	if useColor(ctx, os.Stdout) {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func versionHandler(ctx *cli.Context) error {
	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	if format == "json" {
		return printJSON(ctx, map[string]any{
			"version": version,
			"commit":  commit,
			"date":    date,
		})
	}
	fmt.Printf("twister %s\ncommit: %s\nbuilt at: %s\n", version, commit, date)
	return nil
}
