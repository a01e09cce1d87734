package stream

// Python exposes stream A with the scripting language's random module
// names, argument orders and defaults.
type Python struct {
	s *Stream
}

// Stream returns the underlying stream.
func (p *Python) Stream() *Stream { return p.s }

// Seed re-seeds stream A.
func (p *Python) Seed(v uint32) { p.s.Seed(v) }

// Random returns a uniform double in [0, 1).
func (p *Python) Random() float64 { return p.s.sampler.Random() }

// GetRandBits returns an integer with k random bits.
func (p *Python) GetRandBits(k int64) (uint64, error) { return p.s.sampler.GetRandBits(k) }

// RandRange returns a random element of range(start, stop, step).
func (p *Python) RandRange(start, stop, step int64) (int64, error) {
	return p.s.sampler.RandRange(start, stop, step)
}

// RandInt returns a random integer in [a, b].
func (p *Python) RandInt(a, b int64) (int64, error) { return p.s.sampler.RandInt(a, b) }

// Uniform returns a + (b-a)*random().
func (p *Python) Uniform(a, b float64) float64 { return p.s.sampler.Uniform(a, b) }

// Triangular returns a triangular deviate with the mode at the midpoint.
func (p *Python) Triangular(low, high float64) float64 { return p.s.sampler.Triangular(low, high) }

// TriangularMode returns a triangular deviate on [low, high] with the given
// mode.
func (p *Python) TriangularMode(low, high, mode float64) float64 {
	return p.s.sampler.TriangularMode(low, high, mode)
}

// Gauss returns mu + sigma*Z using the stream's gaussian cache.
func (p *Python) Gauss(mu, sigma float64) float64 { return p.s.sampler.Normal(mu, sigma) }

// NormalVariate shares Gauss's algorithm and cache.
func (p *Python) NormalVariate(mu, sigma float64) float64 { return p.s.sampler.Normal(mu, sigma) }

// GammaVariate returns a gamma deviate with shape alpha and scale beta.
func (p *Python) GammaVariate(alpha, beta float64) (float64, error) {
	return p.s.sampler.Gamma(alpha, beta)
}

// BetaVariate returns a beta deviate.
func (p *Python) BetaVariate(alpha, beta float64) (float64, error) {
	return p.s.sampler.Beta(alpha, beta)
}

// ExpoVariate returns an exponential deviate with rate lambd.
func (p *Python) ExpoVariate(lambd float64) float64 { return p.s.sampler.Expovariate(lambd) }

// LogNormVariate returns exp(gauss(mu, sigma)).
func (p *Python) LogNormVariate(mu, sigma float64) float64 { return p.s.sampler.LogNormal(mu, sigma) }

// ParetoVariate returns a Pareto deviate with minimum 1.
func (p *Python) ParetoVariate(alpha float64) float64 { return p.s.sampler.ParetoVariate(alpha) }

// WeibullVariate returns a Weibull deviate with scale alpha and shape beta.
func (p *Python) WeibullVariate(alpha, beta float64) float64 {
	return p.s.sampler.WeibullVariate(alpha, beta)
}

// VonMisesVariate returns an angle in [0, 2*pi).
func (p *Python) VonMisesVariate(mu, kappa float64) (float64, error) {
	return p.s.sampler.VonMises(mu, kappa)
}

// Shuffle permutes n elements in place.
func (p *Python) Shuffle(n int, swap func(i, j int)) error { return p.s.sampler.Shuffle(n, swap) }
