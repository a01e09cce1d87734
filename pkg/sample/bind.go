package sample

import (
	"math"
	"sort"
	"strconv"

	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/twister/pkg/stream"
)

// binding turns positional call arguments into a Distribution.
type binding struct {
	// Params documents the accepted arguments, e.g. "low, high, mode=None".
	Params string
	bind   func(c call) (Distribution, error)
}

var bindings = map[stream.ID]map[string]binding{
	stream.A: {
		"seed":            {"a=None", bindSeed},
		"random":          {"", bindNone(Random{})},
		"getrandbits":     {"k", bindGetRandBits},
		"randrange":       {"[start,] stop[, step]", bindRandRange},
		"randint":         {"a, b", bindRandInt},
		"uniform":         {"a, b", bind2(func(a, b float64) Distribution { return Uniform{a, b} })},
		"triangular":      {"low, high[, mode]", bindTriangularPython},
		"gauss":           {"mu, sigma", bind2(func(a, b float64) Distribution { return Normal{a, b} })},
		"normalvariate":   {"mu, sigma", bind2(func(a, b float64) Distribution { return Normal{a, b} })},
		"gammavariate":    {"alpha, beta", bind2(func(a, b float64) Distribution { return Gamma{a, b} })},
		"betavariate":     {"alpha, beta", bind2(func(a, b float64) Distribution { return Beta{a, b} })},
		"expovariate":     {"lambd", bind1(func(a float64) Distribution { return Expovariate{a} })},
		"lognormvariate":  {"mu, sigma", bind2(func(a, b float64) Distribution { return LogNormal{a, b} })},
		"paretovariate":   {"alpha", bind1(func(a float64) Distribution { return ParetoVariate{a} })},
		"weibullvariate":  {"alpha, beta", bind2(func(a, b float64) Distribution { return WeibullVariate{a, b} })},
		"vonmisesvariate": {"mu, kappa", bind2(func(a, b float64) Distribution { return VonMises{a, b} })},
		"shuffle":         {"x", bindShuffle},
	},
	stream.B: {
		"seed":                 {"seed=None", bindSeed},
		"random":               {"", bindNone(Random{})},
		"rand":                 {"", bindNone(Random{})},
		"randn":                {"", bindNone(Normal{0, 1})},
		"standard_normal":      {"", bindNone(Normal{0, 1})},
		"normal":               {"loc=0.0, scale=1.0", bindDefaults(func(v []float64) Distribution { return Normal{v[0], v[1]} }, 0, 1)},
		"randint":              {"low[, high]", bindRandIntNumpy},
		"uniform":              {"low, high", bind2(func(a, b float64) Distribution { return Uniform{a, b} })},
		"triangular":           {"left, mode, right", bindTriangularNumpy},
		"standard_gamma":       {"shape", bind1(func(a float64) Distribution { return Gamma{a, 1} })},
		"gamma":                {"shape, scale=1.0", bindRequired(1, func(v []float64) Distribution { return Gamma{v[0], v[1]} }, 1)},
		"beta":                 {"a, b", bind2(func(a, b float64) Distribution { return Beta{a, b} })},
		"exponential":          {"scale=1.0", bindDefaults(func(v []float64) Distribution { return Exponential{v[0]} }, 1)},
		"standard_exponential": {"", bindNone(Exponential{1})},
		"lognormal":            {"mean=0.0, sigma=1.0", bindDefaults(func(v []float64) Distribution { return LogNormal{v[0], v[1]} }, 0, 1)},
		"pareto":               {"a", bind1(func(a float64) Distribution { return Pareto{a} })},
		"weibull":              {"a", bind1(func(a float64) Distribution { return Weibull{a} })},
		"vonmises":             {"mu, kappa", bind2(func(a, b float64) Distribution { return VonMises{a, b} })},
		"chisquare":            {"df", bind1(func(a float64) Distribution { return ChiSquare{a} })},
		"f":                    {"dfnum, dfden", bind2(func(a, b float64) Distribution { return F{a, b} })},
		"geometric":            {"p", bind1(func(a float64) Distribution { return Geometric{a} })},
		"gumbel":               {"loc, scale", bind2(func(a, b float64) Distribution { return Gumbel{a, b} })},
		"hypergeometric":       {"ngood, nbad, nsample", bindHypergeometric},
		"laplace":              {"loc=0.0, scale=1.0", bindDefaults(func(v []float64) Distribution { return Laplace{v[0], v[1]} }, 0, 1)},
		"logistic":             {"loc=0.0, scale=1.0", bindDefaults(func(v []float64) Distribution { return Logistic{v[0], v[1]} }, 0, 1)},
		"logseries":            {"p", bind1(func(a float64) Distribution { return LogSeries{a} })},
		"negative_binomial":    {"n, p", bindNegativeBinomial},
		"poisson":              {"lam=1.0", bindDefaults(func(v []float64) Distribution { return Poisson{v[0]} }, 1)},
		"power":                {"a", bind1(func(a float64) Distribution { return Power{a} })},
		"shuffle":              {"x", bindShuffle},
	},
}

// Bind resolves name on stream id and converts args using that ecosystem's
// argument order and defaults.
func Bind(id stream.ID, name string, args []Value) (Distribution, error) {
	funcs, ok := bindings[id]
	if !ok {
		return nil, errz.Newf(errz.ErrName, "bind", "unknown stream id %d", int(id))
	}
	b, ok := funcs[name]
	if !ok {
		return nil, errz.Newf(errz.ErrName, id.String(), "no function named %q", name)
	}
	return b.bind(call{op: id.String() + "." + name, args: args})
}

// Names returns the sorted function names bound on stream id.
func Names(id stream.ID) []string {
	funcs := bindings[id]
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Params returns the documented parameter list of a bound function.
func Params(id stream.ID, name string) (string, bool) {
	b, ok := bindings[id][name]
	return b.Params, ok
}

type call struct {
	op   string
	args []Value
}

func (c call) arity(lo, hi int) error {
	n := len(c.args)
	if n >= lo && n <= hi {
		return nil
	}
	var takes string
	switch {
	case lo == hi:
		takes = strconv.Itoa(lo)
	case hi-lo == 1:
		takes = strconv.Itoa(lo) + " or " + strconv.Itoa(hi)
	default:
		takes = strconv.Itoa(lo) + " to " + strconv.Itoa(hi)
	}
	return errz.ArgCount(c.op, takes, n)
}

func (c call) floatArg(i int) (float64, error) {
	f, ok := c.args[i].Float()
	if !ok {
		return 0, errz.Argsf(c.op, "argument %d must be a number, got %s", i+1, c.args[i].Kind())
	}
	return f, nil
}

func (c call) intArg(i int) (int64, error) {
	v, ok := c.args[i].Int()
	if !ok {
		return 0, errz.Argsf(c.op, "argument %d must be an int, got %s", i+1, c.args[i].Kind())
	}
	return v, nil
}

func (c call) floats() ([]float64, error) {
	out := make([]float64, len(c.args))
	for i := range c.args {
		f, err := c.floatArg(i)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func (c call) ints() ([]int64, error) {
	out := make([]int64, len(c.args))
	for i := range c.args {
		v, err := c.intArg(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func bindNone(d Distribution) func(c call) (Distribution, error) {
	return func(c call) (Distribution, error) {
		if err := c.arity(0, 0); err != nil {
			return nil, err
		}
		return d, nil
	}
}

func bind1(f func(a float64) Distribution) func(c call) (Distribution, error) {
	return bindRequired(1, func(v []float64) Distribution { return f(v[0]) })
}

func bind2(f func(a, b float64) Distribution) func(c call) (Distribution, error) {
	return bindRequired(2, func(v []float64) Distribution { return f(v[0], v[1]) })
}

// bindDefaults accepts up to len(defaults) float arguments, filling the
// missing trailing ones from defaults.
func bindDefaults(f func(v []float64) Distribution, defaults ...float64) func(c call) (Distribution, error) {
	return bindRequired(0, f, defaults...)
}

// bindRequired takes required float arguments followed by optional ones
// with defaults.
func bindRequired(required int, f func(v []float64) Distribution, defaults ...float64) func(c call) (Distribution, error) {
	total := required + len(defaults)
	return func(c call) (Distribution, error) {
		if err := c.arity(required, total); err != nil {
			return nil, err
		}
		given, err := c.floats()
		if err != nil {
			return nil, err
		}
		v := make([]float64, total)
		copy(v, given)
		for i := len(given); i < total; i++ {
			v[i] = defaults[i-required]
		}
		return f(v), nil
	}
}

func bindSeed(c call) (Distribution, error) {
	if err := c.arity(0, 1); err != nil {
		return nil, err
	}
	if len(c.args) == 0 || c.args[0].Kind() == KindNone {
		return Seed{Entropy: true}, nil
	}
	v, err := c.intArg(0)
	if err != nil {
		return nil, err
	}
	if v < 0 || v > math.MaxUint32 {
		return nil, errz.Domainf(c.op, "seed must be between 0 and 2**32 - 1, got %d", v)
	}
	return Seed{Value: uint32(v)}, nil
}

func bindGetRandBits(c call) (Distribution, error) {
	if err := c.arity(1, 1); err != nil {
		return nil, err
	}
	k, err := c.intArg(0)
	if err != nil {
		return nil, err
	}
	return GetRandBits{K: k}, nil
}

func bindRandRange(c call) (Distribution, error) {
	if err := c.arity(1, 3); err != nil {
		return nil, err
	}
	v, err := c.ints()
	if err != nil {
		return nil, err
	}
	switch len(v) {
	case 1:
		return RandRange{Start: 0, Stop: v[0], Step: 1}, nil
	case 2:
		return RandRange{Start: v[0], Stop: v[1], Step: 1}, nil
	default:
		return RandRange{Start: v[0], Stop: v[1], Step: v[2]}, nil
	}
}

func bindRandInt(c call) (Distribution, error) {
	if err := c.arity(2, 2); err != nil {
		return nil, err
	}
	v, err := c.ints()
	if err != nil {
		return nil, err
	}
	return RandInt{A: v[0], B: v[1]}, nil
}

// bindRandIntNumpy maps the half-open randint(low[, high]) onto RandRange.
// A single argument is the exclusive upper bound.
func bindRandIntNumpy(c call) (Distribution, error) {
	if err := c.arity(1, 2); err != nil {
		return nil, err
	}
	v, err := c.ints()
	if err != nil {
		return nil, err
	}
	if len(v) == 1 {
		return RandRange{Start: 0, Stop: v[0], Step: 1}, nil
	}
	return RandRange{Start: v[0], Stop: v[1], Step: 1}, nil
}

func bindTriangularPython(c call) (Distribution, error) {
	if err := c.arity(2, 3); err != nil {
		return nil, err
	}
	v, err := c.floats()
	if err != nil {
		return nil, err
	}
	d := Triangular{Low: v[0], High: v[1]}
	if len(v) == 3 {
		d.Mode = &v[2]
	}
	return d, nil
}

func bindTriangularNumpy(c call) (Distribution, error) {
	if err := c.arity(3, 3); err != nil {
		return nil, err
	}
	v, err := c.floats()
	if err != nil {
		return nil, err
	}
	return Triangular{Low: v[0], High: v[2], Mode: &v[1]}, nil
}

func bindHypergeometric(c call) (Distribution, error) {
	if err := c.arity(3, 3); err != nil {
		return nil, err
	}
	v, err := c.ints()
	if err != nil {
		return nil, err
	}
	return Hypergeometric{NGood: v[0], NBad: v[1], NSample: v[2]}, nil
}

// bindNegativeBinomial takes an integral n and a float p.
func bindNegativeBinomial(c call) (Distribution, error) {
	if err := c.arity(2, 2); err != nil {
		return nil, err
	}
	n, err := c.intArg(0)
	if err != nil {
		return nil, err
	}
	p, err := c.floatArg(1)
	if err != nil {
		return nil, err
	}
	return NegativeBinomial{N: float64(n), P: p}, nil
}

func bindShuffle(c call) (Distribution, error) {
	if err := c.arity(1, 1); err != nil {
		return nil, err
	}
	items, ok := c.args[0].Items()
	if !ok {
		return nil, errz.Argsf(c.op, "argument 1 must be a list, got %s", c.args[0].Kind())
	}
	return Shuffle{Items: items}, nil
}
