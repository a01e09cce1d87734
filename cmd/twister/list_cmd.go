package main

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/twister/pkg/sample"
	"github.com/deepnoodle-ai/twister/pkg/stream"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
)

type funcJSON struct {
	Stream string `json:"stream"`
	Name   string `json:"name"`
	Params string `json:"params"`
}

func listHandler(ctx *cli.Context) error {
	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}
	ids := stream.IDs
	if arg := ctx.Arg(0); arg != "" {
		id, err := stream.ParseID(arg)
		if err != nil {
			return err
		}
		ids = []stream.ID{id}
	}

	var funcs []funcJSON
	for _, id := range ids {
		for _, name := range sample.Names(id) {
			params, _ := sample.Params(id, name)
			funcs = append(funcs, funcJSON{Stream: id.String(), Name: name, Params: params})
		}
	}
	if format == "json" {
		return printJSON(ctx, funcs)
	}
	colored := useColor(ctx, os.Stdout)
	for _, f := range funcs {
		name := f.Stream + "." + f.Name
		if colored {
			name = color.Green.Apply(name)
		}
		fmt.Printf("%s(%s)\n", name, f.Params)
	}
	return nil
}
