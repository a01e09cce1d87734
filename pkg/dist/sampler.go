// Package dist implements the distribution library: bounded integer ranges,
// shuffling and the catalog of named continuous and discrete samplers.
//
// Every sampler draws from a single Source and consumes exactly the same
// sequence of uniforms as the reference implementations, so two samplers on
// identically seeded sources produce identical output. Raw bits, integer
// ranges and shuffles match the references exactly. Results that pass
// through math.Log, Exp or Pow can differ from a C libm build in the last
// ulp.
//
// Rejection loops are not capped. An Observer can watch every discarded
// proposal and stop a loop explicitly, in which case the sampler returns an
// errz.ErrHalted error instead of silently changing its output.
package dist

import (
	"github.com/deepnoodle-ai/twister/pkg/errz"
)

// Source is the primitive random source a Sampler draws from.
// *mt.Engine implements it.
type Source interface {
	// Uint32 returns the next raw 32-bit word.
	Uint32() uint32
	// Float64 returns a uniform double in [0, 1).
	Float64() float64
	// Bits returns a uniform integer of n bits, 1 <= n <= 64.
	Bits(n uint) uint64
	// Gauss returns a standard normal deviate using the source's own
	// one-slot cache.
	Gauss() float64
}

// Sampler draws from the distribution catalog using a single Source.
type Sampler struct {
	src      Source
	observer Observer
	poisson  PoissonStrategy
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithObserver attaches an observer that is notified of every rejected
// proposal.
func WithObserver(o Observer) Option {
	return func(s *Sampler) {
		s.observer = o
	}
}

// WithPoissonStrategy replaces the algorithm used for poisson draws with
// lambda >= 10. The default is PTRS.
func WithPoissonStrategy(p PoissonStrategy) Option {
	return func(s *Sampler) {
		if p != nil {
			s.poisson = p
		}
	}
}

// New returns a Sampler drawing from src.
func New(src Source, opts ...Option) *Sampler {
	s := &Sampler{src: src, poisson: PTRS{}}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Source returns the underlying source.
func (s *Sampler) Source() Source {
	return s.src
}

// PoissonStrategy returns the strategy used for large lambda.
func (s *Sampler) PoissonStrategy() PoissonStrategy {
	return s.poisson
}

// Random returns a uniform double in [0, 1).
func (s *Sampler) Random() float64 {
	return s.src.Float64()
}

// reject reports a discarded proposal to the observer. A non-nil error
// means the observer halted the loop.
func (s *Sampler) reject(sampler string, iteration int) error {
	if s.observer == nil {
		return nil
	}
	if s.observer.OnReject(RejectEvent{Sampler: sampler, Iteration: iteration}) {
		return nil
	}
	return errz.Newf(errz.ErrHalted, sampler, "stopped by observer after %d rejections", iteration)
}
