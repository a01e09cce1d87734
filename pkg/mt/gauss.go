package mt

import "math"

// GaussCache holds the second value of a Box-Muller pair until it is asked
// for. It is a single slot, not a queue.
type GaussCache struct {
	has   bool
	value float64
}

// Next returns a standard normal deviate. A cached value is consumed first;
// otherwise a new pair is generated with the polar method from uniform,
// one half is cached and the other returned. uniform must draw from the
// same stream that owns the cache.
func (c *GaussCache) Next(uniform func() float64) float64 {
	if c.has {
		c.has = false
		return c.value
	}
	var x1, x2, r2 float64
	for {
		x1 = 2.0*uniform() - 1.0
		x2 = 2.0*uniform() - 1.0
		r2 = x1*x1 + x2*x2
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}
	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	c.value = f * x1
	c.has = true
	return f * x2
}

// Cached reports whether a value is waiting in the cache.
func (c *GaussCache) Cached() bool {
	return c.has
}

// Reset empties the cache.
func (c *GaussCache) Reset() {
	c.has = false
	c.value = 0
}

// Gauss returns a standard normal deviate from the engine's own cache and
// uniform stream.
func (e *Engine) Gauss() float64 {
	return e.gauss.Next(e.Float64)
}

// GaussCached reports whether the next Gauss call will be served from the
// cache.
func (e *Engine) GaussCached() bool {
	return e.gauss.Cached()
}
