package mt

import (
	"github.com/deepnoodle-ai/twister/pkg/errz"
)

const (
	twoPow26 = 67108864.0
	twoPow53 = 9007199254740992.0
)

// Float64 returns a uniform double in [0, 1) with 53 bits of precision,
// built from two consecutive words.
func (e *Engine) Float64() float64 {
	a := e.Uint32() >> 5
	b := e.Uint32() >> 6
	return (float64(a)*twoPow26 + float64(b)) / twoPow53
}

// Bits returns a uniform unsigned integer of n bits. For n <= 32 one word
// is drawn; otherwise the low word is drawn first and the high word second.
// Bits panics if n is outside [1, 64].
func (e *Engine) Bits(n uint) uint64 {
	if n < 1 || n > 64 {
		panic(errz.Newf(errz.ErrPrecision, "bits", "bit width must be in [1, 64], got %d", n))
	}
	if n <= 32 {
		return uint64(e.Uint32() >> (32 - n))
	}
	low := uint64(e.Uint32())
	high := uint64(e.Uint32() >> (64 - n))
	return low | high<<32
}
