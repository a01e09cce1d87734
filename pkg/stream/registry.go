package stream

import (
	"github.com/deepnoodle-ai/twister/pkg/dist"
	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/rs/zerolog"
)

// Registry owns exactly two streams, A and B.
type Registry struct {
	streams [2]*Stream
	logger  zerolog.Logger
}

// Option configures a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	logger      zerolog.Logger
	distOptions []dist.Option
}

// WithLogger sets the logger used to report seeding.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithSamplerOptions applies dist options to the samplers of both streams.
func WithSamplerOptions(opts ...dist.Option) Option {
	return func(c *registryConfig) {
		c.distOptions = append(c.distOptions, opts...)
	}
}

// NewRegistry returns a registry with two unseeded streams. An unseeded
// stream seeds itself from entropy on its first draw.
func NewRegistry(opts ...Option) *Registry {
	cfg := &registryConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	r := &Registry{logger: cfg.logger}
	for _, id := range IDs {
		r.streams[id] = newStream(id, cfg.distOptions...)
	}
	return r
}

// Get returns the stream with the given id.
func (r *Registry) Get(id ID) (*Stream, error) {
	if !id.Valid() {
		return nil, errz.Newf(errz.ErrName, "stream", "unknown stream id %d", int(id))
	}
	return r.streams[id], nil
}

// MustGet is like Get but panics on an unknown id.
func (r *Registry) MustGet(id ID) *Stream {
	s, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return s
}

// Seed seeds one stream. The other stream is untouched.
func (r *Registry) Seed(id ID, v uint32) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	s.Seed(v)
	r.logger.Debug().Str("stream", id.String()).Uint32("seed", v).Msg("seeded stream")
	return nil
}

// SeedEntropy seeds one stream from the operating system's entropy.
func (r *Registry) SeedEntropy(id ID) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	if err := s.engine.SeedEntropy(); err != nil {
		return err
	}
	r.logger.Debug().Str("stream", id.String()).Msg("seeded stream from entropy")
	return nil
}

// Python returns the scripting-language view of stream A.
func (r *Registry) Python() *Python {
	return &Python{s: r.streams[A]}
}

// Numpy returns the numeric-library view of stream B.
func (r *Registry) Numpy() *Numpy {
	return &Numpy{s: r.streams[B]}
}
