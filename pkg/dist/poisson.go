package dist

import (
	"math"

	"github.com/deepnoodle-ai/twister/pkg/errz"
)

// PoissonStrategy draws poisson deviates for lam >= 10. Implementations
// must draw only from s so that the stream stays reproducible.
type PoissonStrategy interface {
	Name() string
	Poisson(s *Sampler, lam float64) (int64, error)
}

// PTRS is Hörmann's transformed rejection with squeeze ("The transformed
// rejection method for generating Poisson random variables", 1993), the
// algorithm the numeric library uses for large lambda.
type PTRS struct{}

// Name returns "ptrs".
func (PTRS) Name() string { return "ptrs" }

// Poisson draws a deviate with mean lam.
func (PTRS) Poisson(s *Sampler, lam float64) (int64, error) {
	if !(lam >= 0.0) {
		return 0, errz.Domainf("poisson", "lam must be >= 0, got %g", lam)
	}
	slam := math.Sqrt(lam)
	loglam := math.Log(lam)
	b := 0.931 + 2.53*slam
	a := -0.059 + 0.02483*b
	invalpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)

	for i := 1; ; i++ {
		u := s.src.Float64() - 0.5
		v := s.src.Float64()
		us := 0.5 - math.Abs(u)
		kf := math.Floor((2*a/us+b)*u + lam + 0.43)
		if us >= 0.07 && v <= vr {
			return int64(kf), nil
		}
		if !(kf >= 0) || (us < 0.013 && v > us) {
			if err := s.reject("poisson_ptrs", i); err != nil {
				return 0, err
			}
			continue
		}
		k := int64(kf)
		if math.Log(v)+math.Log(invalpha)-math.Log(a/(us*us)+b) <= -lam+kf*loglam-loggam(float64(k+1)) {
			return k, nil
		}
		if err := s.reject("poisson_ptrs", i); err != nil {
			return 0, err
		}
	}
}

// ProductOfUniforms applies the small-lambda method at every lambda. It is
// exact but takes O(lambda) uniforms per draw.
type ProductOfUniforms struct{}

// Name returns "product".
func (ProductOfUniforms) Name() string { return "product" }

// Poisson draws a deviate with mean lam.
func (ProductOfUniforms) Poisson(s *Sampler, lam float64) (int64, error) {
	if !(lam >= 0.0) {
		return 0, errz.Domainf("poisson", "lam must be >= 0, got %g", lam)
	}
	if lam == 0.0 {
		return 0, nil
	}
	return productOfUniforms(s, lam)
}

// PoissonStrategyByName returns the strategy registered under name.
func PoissonStrategyByName(name string) (PoissonStrategy, error) {
	switch name {
	case "", "ptrs":
		return PTRS{}, nil
	case "product":
		return ProductOfUniforms{}, nil
	default:
		return nil, errz.Newf(errz.ErrName, "poisson", "unknown strategy %q (want ptrs or product)", name)
	}
}

var loggamCoefficients = [10]float64{
	8.333333333333333e-02, -2.777777777777778e-03,
	7.936507936507937e-04, -5.952380952380952e-04,
	8.417508417508418e-04, -1.917526917526918e-03,
	6.410256410256410e-03, -2.955065359477124e-02,
	1.796443723688307e-01, -1.39243221690590e+00,
}

// loggam returns ln(Gamma(x)) with the Stirling series used by the numeric
// library, shifting small arguments up to 7 first.
func loggam(x float64) float64 {
	if x == 1.0 || x == 2.0 {
		return 0.0
	}
	x0 := x
	n := 0
	if x <= 7.0 {
		n = int(7 - x)
		x0 = x + float64(n)
	}
	x2 := 1.0 / (x0 * x0)
	gl0 := loggamCoefficients[9]
	for k := 8; k >= 0; k-- {
		gl0 *= x2
		gl0 += loggamCoefficients[k]
	}
	gl := gl0/x0 + 0.5*math.Log(twoPi) + (x0-0.5)*math.Log(x0) - x0
	if x <= 7.0 {
		for k := 1; k <= n; k++ {
			gl -= math.Log(x0 - 1.0)
			x0 -= 1.0
		}
	}
	return gl
}
