package dist

import (
	"math"

	"github.com/deepnoodle-ai/twister/pkg/errz"
)

const twoPi = 2.0 * math.Pi

var (
	log4         = math.Log(4.0)
	sgMagicConst = 1.0 + math.Log(4.5)
)

// Uniform returns a + (b-a)*U.
func (s *Sampler) Uniform(a, b float64) float64 {
	return a + (b-a)*s.src.Float64()
}

// Normal returns mu + sigma*Z where Z comes from the source's gaussian
// cache.
func (s *Sampler) Normal(mu, sigma float64) float64 {
	return mu + sigma*s.src.Gauss()
}

// Triangular returns a triangular deviate on [low, high] with the mode at
// the midpoint.
func (s *Sampler) Triangular(low, high float64) float64 {
	u := s.src.Float64()
	c := 0.5
	if u > c {
		u = 1.0 - u
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// TriangularMode returns a triangular deviate on [low, high] with the given
// mode. It returns low when high == low.
func (s *Sampler) TriangularMode(low, high, mode float64) float64 {
	u := s.src.Float64()
	if high == low {
		return low
	}
	c := (mode - low) / (high - low)
	if u > c {
		u = 1.0 - u
		c = 1.0 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// Gamma returns a gamma deviate with shape alpha and scale beta.
//
// alpha > 1 uses Cheng's rejection algorithm (Applied Statistics 26, 1977),
// alpha == 1 is the exponential distribution, and 0 < alpha < 1 uses
// algorithm GS from Kennedy & Gentle.
func (s *Sampler) Gamma(alpha, beta float64) (float64, error) {
	if !(alpha > 0.0) || !(beta > 0.0) {
		return 0, errz.Domainf("gamma", "alpha and beta must be > 0.0, got alpha=%g beta=%g", alpha, beta)
	}
	switch {
	case alpha > 1.0:
		ainv := math.Sqrt(2.0*alpha - 1.0)
		bbb := alpha - log4
		ccc := alpha + ainv
		for i := 1; ; i++ {
			u1 := s.src.Float64()
			if 1e-7 < u1 && u1 < 0.9999999 {
				u2 := 1.0 - s.src.Float64()
				v := math.Log(u1/(1.0-u1)) / ainv
				x := alpha * math.Exp(v)
				z := u1 * u1 * u2
				r := bbb + ccc*v - x
				if r+sgMagicConst-4.5*z >= 0.0 || r >= math.Log(z) {
					return x * beta, nil
				}
			}
			if err := s.reject("gamma", i); err != nil {
				return 0, err
			}
		}
	case alpha == 1.0:
		u := s.src.Float64()
		for i := 1; u <= 1e-7; i++ {
			if err := s.reject("gamma", i); err != nil {
				return 0, err
			}
			u = s.src.Float64()
		}
		return -math.Log(u) * beta, nil
	default:
		var x float64
		for i := 1; ; i++ {
			u := s.src.Float64()
			b := (math.E + alpha) / math.E
			p := b * u
			if p <= 1.0 {
				x = math.Pow(p, 1.0/alpha)
			} else {
				x = -math.Log((b - p) / alpha)
			}
			u1 := s.src.Float64()
			if p > 1.0 {
				if u1 <= math.Pow(x, alpha-1.0) {
					break
				}
			} else if u1 <= math.Exp(-x) {
				break
			}
			if err := s.reject("gamma", i); err != nil {
				return 0, err
			}
		}
		return x * beta, nil
	}
}

// StandardGamma returns Gamma(shape, 1).
func (s *Sampler) StandardGamma(shape float64) (float64, error) {
	return s.Gamma(shape, 1.0)
}

// Beta returns y / (y + Gamma(beta, 1)) with y = Gamma(alpha, 1), or 0 when
// y is 0.
func (s *Sampler) Beta(alpha, beta float64) (float64, error) {
	y, err := s.Gamma(alpha, 1.0)
	if err != nil {
		return 0, err
	}
	if y == 0.0 {
		return 0.0, nil
	}
	y2, err := s.Gamma(beta, 1.0)
	if err != nil {
		return 0, err
	}
	return y / (y + y2), nil
}

// Expovariate returns an exponential deviate with rate lambd. 1-U is used
// instead of U so the logarithm never sees zero.
func (s *Sampler) Expovariate(lambd float64) float64 {
	return -math.Log(1.0-s.src.Float64()) / lambd
}

// Exponential returns an exponential deviate with the given scale.
func (s *Sampler) Exponential(scale float64) float64 {
	return -math.Log(1.0-s.src.Float64()) * scale
}

// StandardExponential returns an exponential deviate with scale 1.
func (s *Sampler) StandardExponential() float64 {
	return -math.Log(1.0 - s.src.Float64())
}

// LogNormal returns exp(Normal(mu, sigma)).
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return math.Exp(s.Normal(mu, sigma))
}

// ParetoVariate returns a Pareto deviate with shape alpha and minimum 1.
func (s *Sampler) ParetoVariate(alpha float64) float64 {
	u := 1.0 - s.src.Float64()
	return 1.0 / math.Pow(u, 1.0/alpha)
}

// Pareto returns a Lomax deviate: ParetoVariate(alpha) - 1.
func (s *Sampler) Pareto(alpha float64) float64 {
	u := 1.0 - s.src.Float64()
	return 1.0/math.Pow(u, 1.0/alpha) - 1
}

// WeibullVariate returns a Weibull deviate with scale alpha and shape beta.
func (s *Sampler) WeibullVariate(alpha, beta float64) float64 {
	u := 1.0 - s.src.Float64()
	return alpha * math.Pow(-math.Log(u), 1.0/beta)
}

// Weibull returns a Weibull deviate with shape a and scale 1.
func (s *Sampler) Weibull(a float64) float64 {
	u := 1.0 - s.src.Float64()
	return math.Pow(-math.Log(u), 1.0/a)
}

// VonMises returns a circular deviate in [0, 2*pi) with mean angle mu and
// concentration kappa, using Fisher's algorithm ("Statistical Analysis of
// Circular Data", 1993). kappa <= 1e-6 yields a uniform angle.
func (s *Sampler) VonMises(mu, kappa float64) (float64, error) {
	if math.IsNaN(kappa) {
		return 0, errz.Domainf("vonmises", "kappa must be a number")
	}
	if kappa <= 1e-6 {
		return twoPi * s.src.Float64(), nil
	}
	sk := 0.5 / kappa
	r := sk + math.Sqrt(1.0+sk*sk)

	var z float64
	for i := 1; ; i++ {
		u1 := s.src.Float64()
		z = math.Cos(math.Pi * u1)
		d := z / (r + z)
		u2 := s.src.Float64()
		if u2 < 1.0-d*d || u2 <= (1.0-d)*math.Exp(d) {
			break
		}
		if err := s.reject("vonmises", i); err != nil {
			return 0, err
		}
	}

	q := 1.0 / r
	f := (q + z) / (1.0 + q*z)
	u3 := s.src.Float64()
	if u3 > 0.5 {
		return floorMod(mu+math.Acos(f), twoPi), nil
	}
	return floorMod(mu-math.Acos(f), twoPi), nil
}

// ChiSquare returns 2 * StandardGamma(df/2).
func (s *Sampler) ChiSquare(df float64) (float64, error) {
	if !(df > 0.0) {
		return 0, errz.Domainf("chisquare", "df must be > 0, got %g", df)
	}
	g, err := s.StandardGamma(df / 2.0)
	if err != nil {
		return 0, err
	}
	return 2.0 * g, nil
}

// F returns an F deviate: (ChiSquare(num)*denom) / (ChiSquare(denom)*num).
func (s *Sampler) F(num, denom float64) (float64, error) {
	x, err := s.ChiSquare(num)
	if err != nil {
		return 0, err
	}
	y, err := s.ChiSquare(denom)
	if err != nil {
		return 0, err
	}
	return (x * denom) / (y * num), nil
}

// Gumbel returns loc - scale*ln(-ln(1-U)).
func (s *Sampler) Gumbel(loc, scale float64) float64 {
	u := 1.0 - s.src.Float64()
	return loc - scale*math.Log(-math.Log(u))
}

// Laplace returns a double-exponential deviate.
func (s *Sampler) Laplace(loc, scale float64) float64 {
	u := s.src.Float64()
	if u < 0.5 {
		return loc + scale*math.Log(u+u)
	}
	return loc - scale*math.Log(2.0-u-u)
}

// Logistic returns loc + scale*ln(U/(1-U)).
func (s *Sampler) Logistic(loc, scale float64) float64 {
	u := s.src.Float64()
	return loc + scale*math.Log(u/(1.0-u))
}

// Power returns (1 - exp(-E))^(1/a) where E is a standard exponential.
func (s *Sampler) Power(a float64) (float64, error) {
	if !(a > 0.0) {
		return 0, errz.Domainf("power", "a must be > 0, got %g", a)
	}
	return math.Pow(1-math.Exp(-s.StandardExponential()), 1./a), nil
}

// floorMod returns x mod y with the sign of y, matching the floating point
// modulo of the scripting language.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}
