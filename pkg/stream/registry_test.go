package stream

import (
	"bytes"
	"math"
	"testing"

	"github.com/deepnoodle-ai/twister/pkg/dist"
	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name string
		want ID
	}{
		{"a", A},
		{"py", A},
		{"random", A},
		{"Python", A},
		{"b", B},
		{"np", B},
		{"numpy", B},
		{"np.random", B},
		{" numpy.random ", B},
	}
	for _, tt := range tests {
		id, err := ParseID(tt.name)
		assert.NoError(t, err)
		assert.Equal(t, id, tt.want)
	}
	_, err := ParseID("torch")
	assert.ErrorIs(t, err, errz.ErrName)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, A.String(), "random")
	assert.Equal(t, B.String(), "np.random")
	assert.Equal(t, ID(7).String(), "stream(7)")
	assert.False(t, ID(7).Valid())
}

func TestGetUnknownStream(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get(ID(3))
	assert.ErrorIs(t, err, errz.ErrName)
	assert.ErrorIs(t, r.Seed(ID(-1), 1), errz.ErrName)
}

func TestStreamIndependence(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Seed(A, 0))
	require.NoError(t, r.Seed(B, 0))

	// Draining A must not move B.
	for range 1000 {
		r.Python().Random()
	}
	assert.Equal(t, r.Numpy().Random(), 0.5488135039273248)

	// Gaussian caches are per stream.
	r.Python().Gauss(0, 1)
	assert.True(t, r.MustGet(A).Engine().GaussCached())
	assert.False(t, r.MustGet(B).Engine().GaussCached())
}

func TestDeterminismAcrossRegistries(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()
	for _, r := range []*Registry{r1, r2} {
		require.NoError(t, r.Seed(A, 1234))
		require.NoError(t, r.Seed(B, 1234))
	}
	for range 200 {
		g1, err := r1.Python().GammaVariate(1.7, 2.0)
		require.NoError(t, err)
		g2, err := r2.Python().GammaVariate(1.7, 2.0)
		require.NoError(t, err)
		assert.Equal(t, g1, g2)

		p1, err := r1.Numpy().Poisson(33)
		require.NoError(t, err)
		p2, err := r2.Numpy().Poisson(33)
		require.NoError(t, err)
		assert.Equal(t, p1, p2)
	}
}

func TestNumpyStandardNormalGoldenValues(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Seed(B, 0))
	np := r.Numpy()
	for _, want := range []float64{1.764052345967664, 0.4001572083672233, 0.9787379841057392} {
		assert.True(t, math.Abs(np.StandardNormal()-want) < 1e-13)
	}
}

func TestReseedClearsGaussCache(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Seed(B, 0))
	first := r.Numpy().RandN()
	require.NoError(t, r.Seed(B, 0))
	assert.Equal(t, r.Numpy().RandN(), first)
}

func TestTriangularArgumentOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Seed(A, 12))
	require.NoError(t, r.Seed(B, 12))
	for range 100 {
		assert.Equal(t, r.Numpy().Triangular(1, 2.5, 3), r.Python().TriangularMode(1, 3, 2.5))
	}
}

func TestRandIntConventions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Seed(A, 8))
	require.NoError(t, r.Seed(B, 8))
	sawHigh := false
	for range 500 {
		a, err := r.Python().RandInt(0, 3)
		require.NoError(t, err)
		assert.True(t, a >= 0 && a <= 3)
		sawHigh = sawHigh || a == 3

		b, err := r.Numpy().RandInt(0, 3)
		require.NoError(t, err)
		assert.True(t, b >= 0 && b < 3)
	}
	assert.True(t, sawHigh)
	_, err := r.Numpy().RandInt(3, 3)
	assert.ErrorIs(t, err, errz.ErrDomain)
}

func TestShuffleSlice(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Seed(A, 11))
	xs := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	require.NoError(t, ShuffleSlice(r.MustGet(A), xs))
	assert.Equal(t, xs, []string{"j", "e", "h", "g", "i", "d", "f", "a", "b", "c"})
}

func TestUnseededStreamDraws(t *testing.T) {
	r := NewRegistry()
	f := r.Python().Random()
	assert.True(t, f >= 0 && f < 1)
	assert.True(t, r.MustGet(A).Engine().Seeded())
	assert.False(t, r.MustGet(B).Engine().Seeded())
}

func TestSeedEntropy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.SeedEntropy(B))
	assert.True(t, r.MustGet(B).Engine().Seeded())
}

func TestSeedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	r := NewRegistry(WithLogger(logger))
	require.NoError(t, r.Seed(B, 42))
	assert.Contains(t, buf.String(), `"stream":"np.random"`)
	assert.Contains(t, buf.String(), `"seed":42`)
	assert.Contains(t, buf.String(), "seeded stream")
}

func TestSamplerOptionsApplyToBothStreams(t *testing.T) {
	r := NewRegistry(WithSamplerOptions(dist.WithPoissonStrategy(dist.ProductOfUniforms{})))
	for _, id := range IDs {
		assert.Equal(t, r.MustGet(id).Sampler().PoissonStrategy().Name(), "product")
	}
}
