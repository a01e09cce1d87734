package main

import (
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newApp().Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			return
		}
		printError(err.Error())
		os.Exit(cli.GetExitCode(err))
	}
}

// newApp wires the commands. The built-in version command prints the bare
// version string; info prints the full build details.
func newApp() *cli.App {
	app := cli.New("twister").
		Description("Reproducible random streams for the scripting and numeric ecosystems").
		Version(version).
		AddCompletionCommand()

	app.GlobalFlags(
		cli.String("config", "").Help("Config file (default is $HOME/.twister.yaml)"),
		cli.Int("seed-a", "").Help("Seed for the random stream"),
		cli.Int("seed-b", "").Help("Seed for the np.random stream"),
		cli.String("stream", "").Help("Stream used by calls without a prefix"),
		cli.String("poisson", "").Enum("ptrs", "product").Help("Poisson algorithm for lam >= 10"),
		cli.Int("max-rejections", "").Help("Stop rejection loops after this many rejections"),
		cli.Bool("verbose", "v").Help("Log seeding and evaluation events"),
		cli.Bool("no-color", "").Env("NO_COLOR").Help("Disable colored output"),
	)

	app.Command("eval").
		Alias("e").
		Description("Evaluate call expressions").
		Args("expr?").
		Flags(
			cli.String("code", "c").Help("Calls to evaluate"),
			cli.Bool("stdin", "").Help("Read calls from stdin"),
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
			cli.Bool("keep-going", "k").Help("Continue past failing calls"),
		).
		Run(evalHandler)

	app.Command("run").
		Alias("r").
		Description("Evaluate a file of call expressions").
		Args("file").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
			cli.Bool("keep-going", "k").Help("Continue past failing calls"),
		).
		Run(runHandler)

	app.Command("sample").
		Alias("s").
		Description("Draw values from a named distribution").
		Args("call...").
		Flags(
			cli.Int("count", "n").Help("Number of draws").Default(1),
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(sampleHandler)

	app.Command("stats").
		Description("Summarize draws from a named distribution").
		Args("call...").
		Flags(
			cli.Int("count", "n").Help("Number of draws").Default(10000),
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(statsHandler)

	app.Command("list").
		Alias("ls").
		Description("List the functions bound on each stream").
		Args("stream?").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(listHandler)

	app.Command("info").
		Description("Print version, commit and build date").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(versionHandler)

	return app
}

func printError(msg string) {
	if color.ShouldColorize(os.Stderr) {
		msg = color.Red.Apply(msg)
	}
	os.Stderr.WriteString(msg + "\n")
}
