// Package mt implements the MT19937 Mersenne Twister engine shared by both
// reference streams, together with the scalar primitives built directly on
// it and the one-slot gaussian cache.
//
// An Engine is single-owner state: it is mutated in place by every draw and
// must not be used from more than one goroutine at a time. Callers that need
// parallel determinism should use independent, separately seeded engines.
package mt

const (
	// N is the number of 32-bit words in the twister state.
	N = 624
	m = 397

	matrixA   uint32 = 0x9908b0df
	upperMask uint32 = 0x80000000
	lowerMask uint32 = 0x7fffffff

	temperingB uint32 = 0x9d2c5680
	temperingC uint32 = 0xefc60000
)

// Engine is the generator state of one stream.
type Engine struct {
	index  int
	words  [N]uint32
	seeded bool
	gauss  GaussCache
}

// New returns an unseeded engine. The first draw from an unseeded engine
// seeds it from entropy.
func New() *Engine {
	return &Engine{index: N}
}

// NewSeeded returns an engine seeded with Seed(seed).
func NewSeeded(seed uint32) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed re-initializes the state with the standard MT19937 init_genrand
// recurrence. The next draw triggers a reshuffle. Any cached gaussian is
// discarded.
func (e *Engine) Seed(seed uint32) {
	e.words[0] = seed
	for i := 1; i < N; i++ {
		prev := e.words[i-1]
		e.words[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	e.index = N
	e.seeded = true
	e.gauss.Reset()
}

// SeedArray re-initializes the state from a key with the MT19937
// init_by_array recurrence. An empty key is treated as a single zero word.
func (e *Engine) SeedArray(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	e.Seed(19650218)
	i, j := 1, 0
	k := max(N, len(key))
	for ; k > 0; k-- {
		prev := e.words[i-1]
		e.words[i] = (e.words[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= N {
			e.words[0] = e.words[N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		prev := e.words[i-1]
		e.words[i] = (e.words[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= N {
			e.words[0] = e.words[N-1]
			i = 1
		}
	}
	// MSB is 1, assuring a non-zero initial array.
	e.words[0] = 0x80000000
	e.index = N
}

// Seeded reports whether the engine has been seeded.
func (e *Engine) Seeded() bool {
	return e.seeded
}

// Index returns the position of the next word to emit.
func (e *Engine) Index() int {
	return e.index
}

// Reshuffle regenerates all N words with the twist recurrence and resets
// the index to 0.
func (e *Engine) Reshuffle() {
	w := &e.words
	var y uint32
	i := 0
	for ; i < N-m; i++ {
		y = (w[i] & upperMask) | (w[i+1] & lowerMask)
		w[i] = w[i+m] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	for ; i < N-1; i++ {
		y = (w[i] & upperMask) | (w[i+1] & lowerMask)
		w[i] = w[i+(m-N)] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	y = (w[N-1] & upperMask) | (w[0] & lowerMask)
	w[N-1] = w[m-1] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	e.index = 0
}

// Uint32 returns the next tempered 32-bit word.
func (e *Engine) Uint32() uint32 {
	if !e.seeded {
		e.seedFromEntropy()
	}
	if e.index >= N {
		e.Reshuffle()
	}
	y := e.words[e.index]
	e.index++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}
