// Package stream holds the two independent reference streams and the
// ecosystem-facing views over them.
//
// A Registry is an explicit value: there are no process-wide generators.
// Each stream owns its own engine and gaussian cache, so drawing from one
// never advances the other.
package stream

import (
	"github.com/deepnoodle-ai/twister/pkg/dist"
	"github.com/deepnoodle-ai/twister/pkg/mt"
)

// Stream is one engine paired with the sampler that draws from it.
type Stream struct {
	id      ID
	engine  *mt.Engine
	sampler *dist.Sampler
}

func newStream(id ID, opts ...dist.Option) *Stream {
	engine := mt.New()
	return &Stream{
		id:      id,
		engine:  engine,
		sampler: dist.New(engine, opts...),
	}
}

// ID returns the stream's identity.
func (s *Stream) ID() ID {
	return s.id
}

// Engine returns the underlying generator state.
func (s *Stream) Engine() *mt.Engine {
	return s.engine
}

// Sampler returns the distribution sampler bound to the engine.
func (s *Stream) Sampler() *dist.Sampler {
	return s.sampler
}

// Seed re-seeds the engine and clears its gaussian cache.
func (s *Stream) Seed(v uint32) {
	s.engine.Seed(v)
}

// ShuffleSlice permutes xs in place using the stream's Fisher-Yates
// shuffle.
func ShuffleSlice[T any](s *Stream, xs []T) error {
	return s.sampler.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
