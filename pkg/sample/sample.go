package sample

import (
	"slices"

	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/twister/pkg/stream"
)

// Sample runs d against s and returns its result. Operations that only
// change state return None. A failed draw leaves the stream valid but
// advanced by whatever it consumed.
func Sample(s *stream.Stream, d Distribution) (Value, error) {
	smp := s.Sampler()
	switch d := d.(type) {
	case Seed:
		if d.Entropy {
			return None, s.Engine().SeedEntropy()
		}
		s.Seed(d.Value)
		return None, nil
	case Random:
		return Float(smp.Random()), nil
	case GetRandBits:
		return uintResult(smp.GetRandBits(d.K))
	case RandRange:
		return intResult(smp.RandRange(d.Start, d.Stop, d.Step))
	case RandInt:
		return intResult(smp.RandInt(d.A, d.B))
	case Uniform:
		return Float(smp.Uniform(d.A, d.B)), nil
	case Normal:
		return Float(smp.Normal(d.Mu, d.Sigma)), nil
	case Triangular:
		if d.Mode == nil {
			return Float(smp.Triangular(d.Low, d.High)), nil
		}
		return Float(smp.TriangularMode(d.Low, d.High, *d.Mode)), nil
	case Gamma:
		return floatResult(smp.Gamma(d.Alpha, d.Beta))
	case Beta:
		return floatResult(smp.Beta(d.Alpha, d.Beta))
	case Expovariate:
		return Float(smp.Expovariate(d.Lambda)), nil
	case Exponential:
		return Float(smp.Exponential(d.Scale)), nil
	case LogNormal:
		return Float(smp.LogNormal(d.Mu, d.Sigma)), nil
	case ParetoVariate:
		return Float(smp.ParetoVariate(d.Alpha)), nil
	case Pareto:
		return Float(smp.Pareto(d.A)), nil
	case WeibullVariate:
		return Float(smp.WeibullVariate(d.Alpha, d.Beta)), nil
	case Weibull:
		return Float(smp.Weibull(d.A)), nil
	case VonMises:
		return floatResult(smp.VonMises(d.Mu, d.Kappa))
	case ChiSquare:
		return floatResult(smp.ChiSquare(d.DF))
	case F:
		return floatResult(smp.F(d.Num, d.Denom))
	case Geometric:
		return intResult(smp.Geometric(d.P))
	case Gumbel:
		return Float(smp.Gumbel(d.Loc, d.Scale)), nil
	case Hypergeometric:
		return Int(smp.Hypergeometric(d.NGood, d.NBad, d.NSample)), nil
	case Laplace:
		return Float(smp.Laplace(d.Loc, d.Scale)), nil
	case Logistic:
		return Float(smp.Logistic(d.Loc, d.Scale)), nil
	case LogSeries:
		return intResult(smp.LogSeries(d.P))
	case NegativeBinomial:
		return intResult(smp.NegativeBinomial(d.N, d.P))
	case Poisson:
		return intResult(smp.Poisson(d.Lambda))
	case Power:
		return floatResult(smp.Power(d.A))
	case Shuffle:
		items := slices.Clone(d.Items)
		if err := stream.ShuffleSlice(s, items); err != nil {
			return None, err
		}
		return List(items), nil
	case nil:
		return None, errz.New(errz.ErrArgs, "sample", "nil distribution")
	default:
		return None, errz.Newf(errz.ErrName, "sample", "unsupported distribution %T", d)
	}
}

func floatResult(f float64, err error) (Value, error) {
	if err != nil {
		return None, err
	}
	return Float(f), nil
}

func intResult(i int64, err error) (Value, error) {
	if err != nil {
		return None, err
	}
	return Int(i), nil
}

func uintResult(u uint64, err error) (Value, error) {
	if err != nil {
		return None, err
	}
	return Uint(u), nil
}
