package dist

import (
	"math"

	"github.com/deepnoodle-ai/twister/pkg/errz"
)

// PoissonLamMax is the largest mean whose deviates still fit comfortably
// in an int64.
var PoissonLamMax = float64(math.MaxInt64) - math.Sqrt(float64(math.MaxInt64))*10

// geometricSearchCutoff is the success probability above which the direct
// summation search is cheaper than inversion.
const geometricSearchCutoff = 0.333333333333333333333333

// Geometric returns the number of trials up to and including the first
// success, with success probability p in (0, 1].
func (s *Sampler) Geometric(p float64) (int64, error) {
	if !(p > 0.0) || p > 1.0 {
		return 0, errz.Domainf("geometric", "p must be in (0, 1], got %g", p)
	}
	q := 1.0 - p
	if p >= geometricSearchCutoff {
		x := int64(1)
		sum, prod := p, p
		u := s.src.Float64()
		for u > sum {
			if err := s.reject("geometric", int(x)); err != nil {
				return 0, err
			}
			prod *= q
			sum += prod
			x++
		}
		return x, nil
	}
	return saturate(math.Ceil(math.Log(1.0-s.src.Float64()) / math.Log(q))), nil
}

// Hypergeometric returns the number of good items in nsample draws without
// replacement from ngood good and nbad bad items.
func (s *Sampler) Hypergeometric(ngood, nbad, nsample int64) int64 {
	d1 := nbad + ngood - nsample
	d2 := float64(min(nbad, ngood))

	y := d2
	k := nsample
	for y > 0.0 && k > 0 {
		y -= math.Floor(s.src.Float64() + y/float64(d1+k))
		k--
	}
	z := saturate(d2 - y)
	if ngood > nbad {
		return nsample - z
	}
	return z
}

// LogSeries returns a logarithmic series deviate with shape p in (0, 1].
func (s *Sampler) LogSeries(p float64) (int64, error) {
	if !(p > 0.0) || p > 1.0 {
		return 0, errz.Domainf("logseries", "p must be in (0, 1], got %g", p)
	}
	r := math.Log(1.0 - p)

	v := s.src.Float64()
	if v >= p {
		return 1, nil
	}
	u := s.src.Float64()
	q := 1.0 - math.Exp(r*u)
	if v <= q*q {
		lq := math.Log(q)
		if lq == 0 {
			return math.MaxInt64, nil
		}
		return saturate(1 + math.Log(v)/lq), nil
	}
	if v >= q {
		return 1, nil
	}
	return 2, nil
}

// NegativeBinomial returns the number of failures before the n-th success
// with success probability p, drawn as a gamma-mixed poisson.
func (s *Sampler) NegativeBinomial(n, p float64) (int64, error) {
	if !(n > 0) {
		return 0, errz.Domainf("negative_binomial", "n must be > 0, got %g", n)
	}
	if !(p > 0.0) || p > 1.0 {
		return 0, errz.Domainf("negative_binomial", "p must be in (0, 1], got %g", p)
	}
	if p == 1.0 {
		return 0, nil
	}
	y, err := s.Gamma(n, (1.0-p)/p)
	if err != nil {
		return 0, err
	}
	return s.Poisson(y)
}

// Poisson returns a poisson deviate with mean lam. lam below 10 uses the
// product-of-uniforms method; larger values use the configured
// PoissonStrategy.
func (s *Sampler) Poisson(lam float64) (int64, error) {
	if lam > PoissonLamMax {
		return 0, errz.Domainf("poisson", "lam must be <= %g, got %g", PoissonLamMax, lam)
	}
	if lam >= 10.0 {
		return s.poisson.Poisson(s, lam)
	}
	if !(lam >= 0.0) {
		return 0, errz.Domainf("poisson", "lam must be >= 0, got %g", lam)
	}
	if lam == 0.0 {
		return 0, nil
	}
	return productOfUniforms(s, lam)
}

func productOfUniforms(s *Sampler, lam float64) (int64, error) {
	enlam := math.Exp(-lam)
	x := int64(0)
	prod := 1.0
	for {
		prod *= s.src.Float64()
		if prod <= enlam {
			return x, nil
		}
		x++
		if err := s.reject("poisson", int(x)); err != nil {
			return 0, err
		}
	}
}

const maxInt64Float = float64(math.MaxInt64)

// saturate truncates f toward zero, mapping NaN and values beyond the int64
// range in either direction to math.MaxInt64. Those only arise when a
// logarithm in a count formula degenerates to zero, which stands for an
// unbounded count.
func saturate(f float64) int64 {
	if math.IsNaN(f) || math.Abs(f) >= maxInt64Float {
		return math.MaxInt64
	}
	return int64(f)
}
