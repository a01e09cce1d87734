package twister

import (
	"github.com/deepnoodle-ai/twister/pkg/dist"
	"github.com/deepnoodle-ai/twister/pkg/stream"
	"github.com/rs/zerolog"
)

// Option configures a Generator.
type Option func(*options)

type seedOption struct {
	id    stream.ID
	value uint32
}

type options struct {
	seeds         []seedOption
	logger        zerolog.Logger
	observer      dist.Observer
	poisson       dist.PoissonStrategy
	filename      string
	keepGoing     bool
	defaultStream stream.ID
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop(), defaultStream: stream.A}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) samplerOpts() []dist.Option {
	var opts []dist.Option
	if o.observer != nil {
		opts = append(opts, dist.WithObserver(o.observer))
	}
	if o.poisson != nil {
		opts = append(opts, dist.WithPoissonStrategy(o.poisson))
	}
	return opts
}

// WithSeed seeds stream id with value when the Generator is created. This
// option is additive; later seeds for the same stream win. Streams without
// a seed are seeded from entropy on their first draw.
func WithSeed(id stream.ID, value uint32) Option {
	return func(o *options) {
		o.seeds = append(o.seeds, seedOption{id: id, value: value})
	}
}

// WithLogger sets the logger for seeding and evaluation events. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver sets an observer that is notified of every rejected
// proposal in the samplers of both streams.
func WithObserver(observer dist.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithPoissonStrategy sets the algorithm for poisson draws with lambda of
// 10 or more.
func WithPoissonStrategy(strategy dist.PoissonStrategy) Option {
	return func(o *options) {
		o.poisson = strategy
	}
}

// WithFilename sets the filename reported in evaluation errors.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithKeepGoing makes Eval continue past failing statements. The returned
// error then aggregates every failure.
func WithKeepGoing() Option {
	return func(o *options) {
		o.keepGoing = true
	}
}

// WithDefaultStream selects the stream used by calls without a stream
// prefix, such as "gauss(0, 1)". The default is stream A.
func WithDefaultStream(id stream.ID) Option {
	return func(o *options) {
		o.defaultStream = id
	}
}
