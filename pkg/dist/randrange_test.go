package dist

import (
	"math"
	"slices"
	"testing"

	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestRandRangeGoldenValues(t *testing.T) {
	tests := []struct {
		start, stop, step int64
		want              []int64
	}{
		{0, 10, 1, []int64{4, 0, 7, 7, 7, 9, 3, 0, 3, 4}},
		{10, 0, -3, []int64{4, 10, 1, 1, 1, 7, 10, 7, 4, 7}},
		{-5, 100, 7, []int64{79, 23, -5, 44, 65, 44, 72, 86, 44, 58}},
	}
	for _, tt := range tests {
		s := seeded(10)
		got := drawInts(t, len(tt.want), func() (int64, error) {
			return s.RandRange(tt.start, tt.stop, tt.step)
		})
		assert.Equal(t, got, tt.want)
	}
}

func TestRandRangeMembership(t *testing.T) {
	tests := []struct{ start, stop, step int64 }{
		{0, 1, 1},
		{0, 7, 1},
		{-20, 20, 3},
		{100, -100, -7},
		{0, 1 << 40, 1},
		{-(1 << 62), 1 << 62, 1 << 20},
	}
	s := seeded(42)
	for _, tt := range tests {
		for range 2000 {
			v, err := s.RandRange(tt.start, tt.stop, tt.step)
			assert.NoError(t, err)
			if tt.step > 0 {
				assert.True(t, v >= tt.start && v < tt.stop, "%d not in [%d, %d)", v, tt.start, tt.stop)
			} else {
				assert.True(t, v <= tt.start && v > tt.stop, "%d not in (%d, %d]", v, tt.stop, tt.start)
			}
			assert.Equal(t, (v-tt.start)%tt.step, int64(0))
		}
	}
}

func TestRandRangeWiderThanMaxInt64(t *testing.T) {
	tests := []struct{ start, stop, step int64 }{
		{math.MinInt64, math.MaxInt64, 1},
		{math.MaxInt64, math.MinInt64, -1},
		{math.MinInt64, math.MaxInt64, 1 << 40},
		{math.MaxInt64, math.MinInt64, -(1 << 40)},
		{-(1 << 62) - 5, 1<<62 + 5, 3},
	}
	s := seeded(45)
	for _, tt := range tests {
		var neg, pos bool
		for range 2000 {
			v, err := s.RandRange(tt.start, tt.stop, tt.step)
			assert.NoError(t, err)
			if tt.step > 0 {
				assert.True(t, v >= tt.start && v < tt.stop, "%d not in [%d, %d)", v, tt.start, tt.stop)
				assert.Equal(t, (uint64(v)-uint64(tt.start))%uint64(tt.step), uint64(0))
			} else {
				assert.True(t, v <= tt.start && v > tt.stop, "%d not in (%d, %d]", v, tt.stop, tt.start)
				assert.Equal(t, (uint64(tt.start)-uint64(v))%uint64(-tt.step), uint64(0))
			}
			neg = neg || v < 0
			pos = pos || v > 0
		}
		assert.True(t, neg && pos, "range (%d, %d, %d) drew one sign only", tt.start, tt.stop, tt.step)
	}
}

func TestRandRangeConsumesBitLength(t *testing.T) {
	// Three elements spread over the whole int64 range, drawn from 2 bits.
	s, twin := seeded(46), seeded(46)
	v, err := s.RandRange(math.MinInt64, math.MaxInt64, math.MaxInt64)
	assert.NoError(t, err)
	assert.True(t, v == math.MinInt64 || v == -1 || v == math.MaxInt64-1, "unexpected %d", v)
	for {
		r := twin.src.Bits(2)
		if r < 3 {
			minInt64 := int64(math.MinInt64)
			assert.Equal(t, v, int64(uint64(minInt64)+r*uint64(math.MaxInt64)))
			break
		}
	}
	assert.Equal(t, s.Random(), twin.Random())
}

func TestRandRangeCoversAllValues(t *testing.T) {
	s := seeded(43)
	seen := map[int64]bool{}
	for range 1000 {
		v, err := s.RandRange(3, 9, 1)
		assert.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func TestRandRangeErrors(t *testing.T) {
	s := seeded(1)
	_, err := s.RandRange(0, 10, 0)
	assert.ErrorIs(t, err, errz.ErrDomain)
	assert.Contains(t, err.Error(), "zero step")

	for _, args := range [][3]int64{{5, 5, 1}, {5, 0, 1}, {0, 5, -1}, {0, 0, -2}} {
		_, err := s.RandRange(args[0], args[1], args[2])
		assert.ErrorIs(t, err, errz.ErrDomain)
		assert.Contains(t, err.Error(), "empty range")
	}
}

func TestRandInt(t *testing.T) {
	s := seeded(44)
	for range 1000 {
		v, err := s.RandInt(-2, 2)
		assert.NoError(t, err)
		assert.True(t, v >= -2 && v <= 2)
	}
	v, err := s.RandInt(7, 7)
	assert.NoError(t, err)
	assert.Equal(t, v, int64(7))

	v, err = s.RandInt(math.MaxInt64, math.MaxInt64)
	assert.NoError(t, err)
	assert.Equal(t, v, int64(math.MaxInt64))

	for range 1000 {
		v, err := s.RandInt(math.MaxInt64-1, math.MaxInt64)
		assert.NoError(t, err)
		assert.True(t, v >= math.MaxInt64-1)

		v, err = s.RandInt(math.MinInt64, math.MinInt64+2)
		assert.NoError(t, err)
		assert.True(t, v <= math.MinInt64+2)
	}

	_, err = s.RandInt(5, 4)
	assert.ErrorIs(t, err, errz.ErrDomain)
	assert.Contains(t, err.Error(), "empty range for randrange(5, 5, 1)")
}

func TestRandIntFullRange(t *testing.T) {
	s, twin := seeded(47), seeded(47)
	for range 100 {
		v, err := s.RandInt(math.MinInt64, math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, v, int64(twin.src.Bits(64)))
	}
}

func TestGetRandBits(t *testing.T) {
	s := seeded(5489)
	v, err := s.GetRandBits(32)
	assert.NoError(t, err)
	assert.Equal(t, v, uint64(3499211612))

	for _, k := range []int64{0, -1, 65} {
		_, err := s.GetRandBits(k)
		assert.ErrorIs(t, err, errz.ErrDomain)
	}
}

func TestShuffleGoldenValues(t *testing.T) {
	s := seeded(11)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	err := s.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	assert.NoError(t, err)
	assert.Equal(t, xs, []int{9, 4, 7, 6, 8, 3, 5, 0, 1, 2})
}

func TestShuffleIsPermutation(t *testing.T) {
	s := seeded(12)
	xs := make([]int, 100)
	for i := range xs {
		xs[i] = i
	}
	assert.NoError(t, s.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] }))
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, v, i)
	}

	// Zero or one element draws nothing.
	assert.NoError(t, s.Shuffle(0, func(i, j int) { t.Fatal("unexpected swap") }))
	assert.NoError(t, s.Shuffle(1, func(i, j int) { t.Fatal("unexpected swap") }))
}
