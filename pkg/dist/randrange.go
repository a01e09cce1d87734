package dist

import (
	"math/bits"

	"github.com/deepnoodle-ai/twister/pkg/errz"
)

// RandRange returns a uniform integer from the progression
// start, start+step, ... that stops before stop. It samples without modulo
// bias by drawing bit-length(n) bits and rejecting values >= n, where n is
// the number of elements in the progression. Spans wider than MaxInt64 are
// counted in uint64 and the result is formed with wrapping arithmetic.
func (s *Sampler) RandRange(start, stop, step int64) (int64, error) {
	if step == 0 {
		return 0, errz.Domainf("randrange", "zero step for randrange()")
	}
	var span, stride uint64
	if step > 0 {
		if stop <= start {
			return 0, emptyRange(start, stop, step)
		}
		span = uint64(stop) - uint64(start)
		stride = uint64(step)
	} else {
		if stop >= start {
			return 0, emptyRange(start, stop, step)
		}
		span = uint64(start) - uint64(stop)
		stride = -uint64(step)
	}
	n := (span-1)/stride + 1
	r, err := s.below("randrange", n)
	if err != nil {
		return 0, err
	}
	return int64(uint64(start) + r*uint64(step)), nil
}

func emptyRange(start, stop, step int64) error {
	return errz.Domainf("randrange", "empty range for randrange(%d, %d, %d)", start, stop, step)
}

// below returns a uniform value in [0, n) for n >= 1.
func (s *Sampler) below(op string, n uint64) (uint64, error) {
	nbits := uint(64 - bits.LeadingZeros64(n))
	for i := 1; ; i++ {
		r := s.src.Bits(nbits)
		if r < n {
			return r, nil
		}
		if err := s.reject(op, i); err != nil {
			return 0, err
		}
	}
}

// RandInt returns a uniform integer in [a, b], both ends included. The full
// int64 range has 2^64 elements and is drawn as 64 raw bits.
func (s *Sampler) RandInt(a, b int64) (int64, error) {
	if b < a {
		return 0, emptyRange(a, b+1, 1)
	}
	n := uint64(b) - uint64(a) + 1
	if n == 0 {
		return int64(s.src.Bits(64)), nil
	}
	r, err := s.below("randrange", n)
	if err != nil {
		return 0, err
	}
	return int64(uint64(a) + r), nil
}

// GetRandBits returns an unsigned integer with k random bits.
func (s *Sampler) GetRandBits(k int64) (uint64, error) {
	if k < 1 || k > 64 {
		return 0, errz.Domainf("getrandbits", "number of bits must be in [1, 64], got %d", k)
	}
	return s.src.Bits(uint(k)), nil
}

// Shuffle permutes n elements in place with the Fisher-Yates algorithm,
// walking from the last index down and swapping each with a uniformly
// chosen index at or below it.
func (s *Sampler) Shuffle(n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := s.RandRange(0, int64(i+1), 1)
		if err != nil {
			return err
		}
		swap(i, int(j))
	}
	return nil
}
