// Package sample defines the closed set of sampling operations, a single
// dispatcher that runs any of them against a stream, and the name binding
// that maps each ecosystem's function names and argument conventions onto
// them.
package sample

// Distribution is one fully parameterized sampling operation. The set of
// implementations is closed; Sample handles every one of them.
type Distribution interface {
	// Name returns the canonical operation name.
	Name() string
	distribution()
}

type (
	// Seed re-seeds the stream with Value, or from entropy when Entropy is
	// set.
	Seed struct {
		Value   uint32
		Entropy bool
	}
	// Random draws a uniform double in [0, 1).
	Random struct{}
	// GetRandBits draws an integer with K random bits.
	GetRandBits struct{ K int64 }
	// RandRange draws from the progression start, start+step, ... < stop.
	RandRange struct{ Start, Stop, Step int64 }
	// RandInt draws from [A, B], both ends included.
	RandInt struct{ A, B int64 }
	// Uniform draws A + (B-A)*U.
	Uniform struct{ A, B float64 }
	// Normal draws Mu + Sigma*Z from the stream's gaussian cache.
	Normal struct{ Mu, Sigma float64 }
	// Triangular draws on [Low, High]. A nil Mode puts it at the midpoint.
	Triangular struct {
		Low, High float64
		Mode      *float64
	}
	// Gamma draws with shape Alpha and scale Beta.
	Gamma struct{ Alpha, Beta float64 }
	// Beta draws a beta deviate.
	Beta struct{ Alpha, Beta float64 }
	// Expovariate draws an exponential with rate Lambda.
	Expovariate struct{ Lambda float64 }
	// Exponential draws an exponential with the given Scale.
	Exponential struct{ Scale float64 }
	// LogNormal draws exp(Normal(Mu, Sigma)).
	LogNormal struct{ Mu, Sigma float64 }
	// ParetoVariate draws a Pareto deviate with minimum 1.
	ParetoVariate struct{ Alpha float64 }
	// Pareto draws ParetoVariate(A) - 1.
	Pareto struct{ A float64 }
	// WeibullVariate draws with scale Alpha and shape Beta.
	WeibullVariate struct{ Alpha, Beta float64 }
	// Weibull draws with shape A and scale 1.
	Weibull struct{ A float64 }
	// VonMises draws an angle in [0, 2*pi).
	VonMises struct{ Mu, Kappa float64 }
	// ChiSquare draws with DF degrees of freedom.
	ChiSquare struct{ DF float64 }
	// F draws an F deviate.
	F struct{ Num, Denom float64 }
	// Geometric draws the trial count of the first success.
	Geometric struct{ P float64 }
	// Gumbel draws Loc - Scale*ln(-ln(1-U)).
	Gumbel struct{ Loc, Scale float64 }
	// Hypergeometric draws the good items in NSample draws.
	Hypergeometric struct{ NGood, NBad, NSample int64 }
	// Laplace draws a double-exponential deviate.
	Laplace struct{ Loc, Scale float64 }
	// Logistic draws Loc + Scale*ln(U/(1-U)).
	Logistic struct{ Loc, Scale float64 }
	// LogSeries draws a logarithmic series deviate.
	LogSeries struct{ P float64 }
	// NegativeBinomial draws the failures before the N-th success.
	NegativeBinomial struct{ N, P float64 }
	// Poisson draws with mean Lambda.
	Poisson struct{ Lambda float64 }
	// Power draws (1 - exp(-E))^(1/A).
	Power struct{ A float64 }
	// Shuffle returns a shuffled copy of Items.
	Shuffle struct{ Items []Value }
)

func (Seed) Name() string             { return "seed" }
func (Random) Name() string           { return "random" }
func (GetRandBits) Name() string      { return "getrandbits" }
func (RandRange) Name() string        { return "randrange" }
func (RandInt) Name() string          { return "randint" }
func (Uniform) Name() string          { return "uniform" }
func (Normal) Name() string           { return "normal" }
func (Triangular) Name() string       { return "triangular" }
func (Gamma) Name() string            { return "gamma" }
func (Beta) Name() string             { return "beta" }
func (Expovariate) Name() string      { return "expovariate" }
func (Exponential) Name() string      { return "exponential" }
func (LogNormal) Name() string        { return "lognormal" }
func (ParetoVariate) Name() string    { return "paretovariate" }
func (Pareto) Name() string           { return "pareto" }
func (WeibullVariate) Name() string   { return "weibullvariate" }
func (Weibull) Name() string          { return "weibull" }
func (VonMises) Name() string         { return "vonmises" }
func (ChiSquare) Name() string        { return "chisquare" }
func (F) Name() string                { return "f" }
func (Geometric) Name() string        { return "geometric" }
func (Gumbel) Name() string           { return "gumbel" }
func (Hypergeometric) Name() string   { return "hypergeometric" }
func (Laplace) Name() string          { return "laplace" }
func (Logistic) Name() string         { return "logistic" }
func (LogSeries) Name() string        { return "logseries" }
func (NegativeBinomial) Name() string { return "negative_binomial" }
func (Poisson) Name() string          { return "poisson" }
func (Power) Name() string            { return "power" }
func (Shuffle) Name() string          { return "shuffle" }

func (Seed) distribution()             {}
func (Random) distribution()           {}
func (GetRandBits) distribution()      {}
func (RandRange) distribution()        {}
func (RandInt) distribution()          {}
func (Uniform) distribution()          {}
func (Normal) distribution()           {}
func (Triangular) distribution()       {}
func (Gamma) distribution()            {}
func (Beta) distribution()             {}
func (Expovariate) distribution()      {}
func (Exponential) distribution()      {}
func (LogNormal) distribution()        {}
func (ParetoVariate) distribution()    {}
func (Pareto) distribution()           {}
func (WeibullVariate) distribution()   {}
func (Weibull) distribution()          {}
func (VonMises) distribution()         {}
func (ChiSquare) distribution()        {}
func (F) distribution()                {}
func (Geometric) distribution()        {}
func (Gumbel) distribution()           {}
func (Hypergeometric) distribution()   {}
func (Laplace) distribution()          {}
func (Logistic) distribution()         {}
func (LogSeries) distribution()        {}
func (NegativeBinomial) distribution() {}
func (Poisson) distribution()          {}
func (Power) distribution()            {}
func (Shuffle) distribution()          {}
