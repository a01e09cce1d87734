package stream

// Numpy exposes stream B with the numeric library's legacy RandomState
// names, argument orders and defaults.
type Numpy struct {
	s *Stream
}

// Stream returns the underlying stream.
func (n *Numpy) Stream() *Stream { return n.s }

// Seed re-seeds stream B.
func (n *Numpy) Seed(v uint32) { n.s.Seed(v) }

// Random returns a uniform double in [0, 1).
func (n *Numpy) Random() float64 { return n.s.sampler.Random() }

// Rand is an alias of Random.
func (n *Numpy) Rand() float64 { return n.s.sampler.Random() }

// RandN returns a standard normal deviate.
func (n *Numpy) RandN() float64 { return n.s.sampler.Normal(0, 1) }

// StandardNormal returns a standard normal deviate.
func (n *Numpy) StandardNormal() float64 { return n.s.sampler.Normal(0, 1) }

// Normal returns loc + scale*Z.
func (n *Numpy) Normal(loc, scale float64) float64 { return n.s.sampler.Normal(loc, scale) }

// RandInt returns a random integer in the half-open range [low, high).
func (n *Numpy) RandInt(low, high int64) (int64, error) {
	return n.s.sampler.RandRange(low, high, 1)
}

// Uniform returns low + (high-low)*random().
func (n *Numpy) Uniform(low, high float64) float64 { return n.s.sampler.Uniform(low, high) }

// Triangular takes (left, mode, right), unlike the scripting language's
// (low, high, mode).
func (n *Numpy) Triangular(left, mode, right float64) float64 {
	return n.s.sampler.TriangularMode(left, right, mode)
}

// StandardGamma returns Gamma(shape, 1).
func (n *Numpy) StandardGamma(shape float64) (float64, error) {
	return n.s.sampler.StandardGamma(shape)
}

// Gamma returns a gamma deviate with the given shape and scale.
func (n *Numpy) Gamma(shape, scale float64) (float64, error) { return n.s.sampler.Gamma(shape, scale) }

// Beta returns a beta deviate.
func (n *Numpy) Beta(a, b float64) (float64, error) { return n.s.sampler.Beta(a, b) }

// Exponential returns an exponential deviate with the given scale.
func (n *Numpy) Exponential(scale float64) float64 { return n.s.sampler.Exponential(scale) }

// StandardExponential returns an exponential deviate with scale 1.
func (n *Numpy) StandardExponential() float64 { return n.s.sampler.StandardExponential() }

// LogNormal returns exp(normal(mean, sigma)).
func (n *Numpy) LogNormal(mean, sigma float64) float64 { return n.s.sampler.LogNormal(mean, sigma) }

// Pareto returns a Lomax deviate.
func (n *Numpy) Pareto(a float64) float64 { return n.s.sampler.Pareto(a) }

// Weibull returns a Weibull deviate with shape a.
func (n *Numpy) Weibull(a float64) float64 { return n.s.sampler.Weibull(a) }

// VonMises returns an angle in [0, 2*pi).
func (n *Numpy) VonMises(mu, kappa float64) (float64, error) { return n.s.sampler.VonMises(mu, kappa) }

// ChiSquare returns a chi-square deviate.
func (n *Numpy) ChiSquare(df float64) (float64, error) { return n.s.sampler.ChiSquare(df) }

// F returns an F deviate.
func (n *Numpy) F(dfnum, dfden float64) (float64, error) { return n.s.sampler.F(dfnum, dfden) }

// Geometric returns the number of trials up to the first success.
func (n *Numpy) Geometric(p float64) (int64, error) { return n.s.sampler.Geometric(p) }

// Gumbel returns a Gumbel deviate.
func (n *Numpy) Gumbel(loc, scale float64) float64 { return n.s.sampler.Gumbel(loc, scale) }

// Hypergeometric returns the good items in nsample draws.
func (n *Numpy) Hypergeometric(ngood, nbad, nsample int64) int64 {
	return n.s.sampler.Hypergeometric(ngood, nbad, nsample)
}

// Laplace returns a double-exponential deviate.
func (n *Numpy) Laplace(loc, scale float64) float64 { return n.s.sampler.Laplace(loc, scale) }

// Logistic returns a logistic deviate.
func (n *Numpy) Logistic(loc, scale float64) float64 { return n.s.sampler.Logistic(loc, scale) }

// LogSeries returns a logarithmic series deviate.
func (n *Numpy) LogSeries(p float64) (int64, error) { return n.s.sampler.LogSeries(p) }

// NegativeBinomial returns the failures before the n-th success.
func (n *Numpy) NegativeBinomial(k, p float64) (int64, error) {
	return n.s.sampler.NegativeBinomial(k, p)
}

// Poisson returns a poisson deviate with mean lam.
func (n *Numpy) Poisson(lam float64) (int64, error) { return n.s.sampler.Poisson(lam) }

// Power returns a power-function deviate.
func (n *Numpy) Power(a float64) (float64, error) { return n.s.sampler.Power(a) }

// Shuffle permutes n elements in place.
func (n *Numpy) Shuffle(size int, swap func(i, j int)) error {
	return n.s.sampler.Shuffle(size, swap)
}
