// Package twister provides deterministic random streams that reproduce the
// output of the scripting language's random module (stream A) and the
// numeric library's legacy generator (stream B) bit for bit.
//
// A Generator owns one registry of both streams. Draws can be made through
// typed views, through the closed set of sample.Distribution values, or by
// evaluating call-expression source:
//
//	results, err := twister.Eval(ctx, `
//	    np.random.seed(0)
//	    np.random.standard_normal()
//	    random.randint(1, 6)
//	`, twister.WithSeed(stream.A, 42))
package twister

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/twister/pkg/ast"
	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/twister/pkg/parser"
	"github.com/deepnoodle-ai/twister/pkg/sample"
	"github.com/deepnoodle-ai/twister/pkg/stream"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Generator holds the two reference streams. It is not safe for concurrent
// use.
type Generator struct {
	registry      *stream.Registry
	logger        zerolog.Logger
	filename      string
	keepGoing     bool
	defaultStream stream.ID
}

// Result is the outcome of one evaluated statement.
type Result struct {
	// Call is the statement as written, normalized.
	Call string
	// Stream is the stream the statement drew from.
	Stream stream.ID
	// Value is the sampled value; None for seeding and failed statements.
	Value sample.Value
	// Err is set for statements that failed under WithKeepGoing.
	Err error
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	o := collectOptions(opts...)
	g := &Generator{
		registry: stream.NewRegistry(
			stream.WithLogger(o.logger),
			stream.WithSamplerOptions(o.samplerOpts()...),
		),
		logger:        o.logger,
		filename:      o.filename,
		keepGoing:     o.keepGoing,
		defaultStream: o.defaultStream,
	}
	for _, seed := range o.seeds {
		if err := g.registry.Seed(seed.id, seed.value); err != nil {
			g.logger.Warn().Err(err).Msg("ignoring seed option")
		}
	}
	return g
}

// Registry returns the generator's stream registry.
func (g *Generator) Registry() *stream.Registry {
	return g.registry
}

// Stream returns the stream with the given id.
func (g *Generator) Stream(id stream.ID) (*stream.Stream, error) {
	return g.registry.Get(id)
}

// Sample draws d from stream id.
func (g *Generator) Sample(id stream.ID, d sample.Distribution) (sample.Value, error) {
	s, err := g.registry.Get(id)
	if err != nil {
		return sample.None, err
	}
	return sample.Sample(s, d)
}

// Call binds name and args with stream id's conventions and draws the
// result.
func (g *Generator) Call(id stream.ID, name string, args ...sample.Value) (sample.Value, error) {
	d, err := sample.Bind(id, name, args)
	if err != nil {
		return sample.None, err
	}
	return g.Sample(id, d)
}

// Eval parses source and runs its statements in order. The context is
// checked between statements. Without WithKeepGoing evaluation stops at the
// first failure and returns the results so far.
func (g *Generator) Eval(ctx context.Context, source string) ([]Result, error) {
	var parserOpts []parser.Option
	if g.filename != "" {
		parserOpts = append(parserOpts, parser.WithFilename(g.filename))
	}
	program, err := parser.Parse(ctx, source, parserOpts...)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(source, "\n")

	var results []Result
	var errs *multierror.Error
	for _, call := range program.Stmts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := g.evalCall(call)
		if err != nil {
			err = g.locate(err, call, lines)
			g.logger.Debug().Err(err).Str("call", call.String()).Msg("statement failed")
			if !g.keepGoing {
				return results, err
			}
			result.Err = err
			errs = multierror.Append(errs, err)
		}
		results = append(results, result)
	}
	return results, errs.ErrorOrNil()
}

// Eval is a convenience function that creates a Generator from opts and
// evaluates source with it.
func Eval(ctx context.Context, source string, opts ...Option) ([]Result, error) {
	return New(opts...).Eval(ctx, source)
}

// ParseArgs parses a comma-separated argument list written in the
// call-expression syntax, such as "0, 1.5" or "[1, 2, 3]".
func ParseArgs(ctx context.Context, src string) ([]sample.Value, error) {
	program, err := parser.Parse(ctx, "args("+src+")")
	if err != nil {
		return nil, err
	}
	if len(program.Stmts) != 1 {
		return nil, errz.Newf(errz.ErrSyntax, "args", "invalid argument list %q", src)
	}
	call := program.Stmts[0]
	values := make([]sample.Value, len(call.Args))
	for i, arg := range call.Args {
		values[i] = toValue(arg)
	}
	return values, nil
}

func (g *Generator) evalCall(call *ast.Call) (Result, error) {
	result := Result{Call: call.String(), Stream: g.defaultStream, Value: sample.None}
	if prefix := call.Prefix(); prefix != "" {
		id, err := stream.ParseID(prefix)
		if err != nil {
			return result, err
		}
		result.Stream = id
	}
	args := make([]sample.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = toValue(arg)
	}
	value, err := g.Call(result.Stream, call.Func(), args...)
	if err != nil {
		return result, err
	}
	result.Value = value
	g.logger.Debug().
		Str("call", result.Call).
		Str("stream", result.Stream.String()).
		Str("value", value.String()).
		Msg("evaluated")
	return result, nil
}

func toValue(expr ast.Expr) sample.Value {
	switch x := expr.(type) {
	case *ast.Int:
		return sample.Int(x.Value)
	case *ast.Float:
		return sample.Float(x.Value)
	case *ast.List:
		items := make([]sample.Value, len(x.Items))
		for i, item := range x.Items {
			items[i] = toValue(item)
		}
		return sample.List(items)
	default:
		return sample.None
	}
}

// locate attaches the statement's source location to err.
func (g *Generator) locate(err error, call *ast.Call, lines []string) error {
	pos := call.Pos()
	loc := errz.SourceLocation{
		Filename: g.filename,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
	}
	if pos.Line < len(lines) {
		loc.Source = strings.TrimSuffix(lines[pos.Line], "\r")
	}
	var e *errz.Error
	if errors.As(err, &e) {
		located := *e
		located.Location = loc
		return &located
	}
	return fmt.Errorf("%s: %w", loc, err)
}
