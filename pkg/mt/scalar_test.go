package mt

import (
	"math"
	"testing"

	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/wonton/assert"
)

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFloat64GoldenValues(t *testing.T) {
	// Matches the numeric library's seed(0); rand(5).
	e := NewSeeded(0)
	expected := []float64{
		0.5488135039273248,
		0.7151893663724195,
		0.6027633760716439,
		0.5448831829968969,
		0.4236547993389047,
	}
	for _, want := range expected {
		assert.Equal(t, e.Float64(), want)
	}
}

func TestFloat64Bounds(t *testing.T) {
	e := NewSeeded(12345)
	const n = 1_000_000
	sum, lo, hi := 0.0, 1.0, 0.0
	for range n {
		f := e.Float64()
		lo = min(lo, f)
		hi = max(hi, f)
		sum += f
	}
	assert.True(t, lo >= 0.0)
	assert.True(t, hi < 1.0)
	mean := sum / n
	assert.True(t, closeTo(mean, 0.5, 0.002))
}

func TestBits(t *testing.T) {
	e := NewSeeded(5489)
	assert.Equal(t, e.Bits(1), uint64(1))
	assert.Equal(t, e.Bits(32), uint64(581869302))
	assert.Equal(t, e.Bits(33), uint64(8185314030))
	assert.Equal(t, e.Bits(64), uint64(17872455815194096940))
}

func TestBitsWidth(t *testing.T) {
	e := NewSeeded(3)
	for n := uint(1); n <= 64; n++ {
		for range 50 {
			v := e.Bits(n)
			if n < 64 {
				assert.True(t, v < uint64(1)<<n)
			}
		}
	}
}

func TestBitsPanicsOutsideContract(t *testing.T) {
	e := NewSeeded(3)
	for _, n := range []uint{0, 65} {
		func() {
			defer func() {
				r := recover()
				assert.NotNil(t, r)
				err, ok := r.(*errz.Error)
				assert.True(t, ok)
				assert.Equal(t, err.Kind, errz.ErrPrecision)
			}()
			e.Bits(n)
		}()
	}
}

func TestGaussGoldenValues(t *testing.T) {
	// Matches the numeric library's seed(0); standard_normal(3).
	e := NewSeeded(0)
	assert.True(t, closeTo(e.Gauss(), 1.764052345967664, 1e-13))
	assert.True(t, closeTo(e.Gauss(), 0.4001572083672233, 1e-13))
	assert.True(t, closeTo(e.Gauss(), 0.9787379841057392, 1e-13))
}

func TestGaussCacheConsumesOnePair(t *testing.T) {
	e := NewSeeded(0)
	draws := 0
	uniform := func() float64 {
		draws++
		return e.Float64()
	}
	var c GaussCache

	c.Next(uniform)
	assert.Equal(t, draws, 2)
	assert.True(t, c.Cached())

	c.Next(uniform)
	assert.Equal(t, draws, 2)
	assert.False(t, c.Cached())

	c.Next(uniform)
	c.Next(uniform)
	assert.Equal(t, draws, 4)
}

func TestGaussCacheRejectsOutsideDisk(t *testing.T) {
	// The first pair maps to (-1, -1), outside the unit disk, and is
	// rejected; the second pair is accepted.
	values := []float64{0.0, 0.0, 0.75, 0.5}
	draws := 0
	uniform := func() float64 {
		v := values[draws]
		draws++
		return v
	}
	var c GaussCache
	got := c.Next(uniform)
	assert.Equal(t, draws, 4)
	// x1 = 0.5, x2 = 0, so the returned half is zero and the cached half
	// is positive.
	assert.Equal(t, got, 0.0)
	cached := c.Next(uniform)
	assert.True(t, cached > 0)
	assert.Equal(t, draws, 4)
}

func TestGaussCacheReset(t *testing.T) {
	var c GaussCache
	c.Next(func() float64 { return 0.25 })
	assert.True(t, c.Cached())
	c.Reset()
	assert.False(t, c.Cached())
}
