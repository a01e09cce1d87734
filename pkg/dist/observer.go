package dist

import "sort"

// RejectEvent describes one discarded proposal in a rejection loop.
type RejectEvent struct {
	// Sampler is the name of the sampling loop, e.g. "gamma" or "randrange".
	Sampler string
	// Iteration counts rejections within the current call, starting at 1.
	Iteration int
}

// Observer is notified of rejected proposals. Returning false stops the
// loop and makes the sampler return an errz.ErrHalted error.
type Observer interface {
	OnReject(event RejectEvent) bool
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event RejectEvent) bool

// OnReject calls f(event).
func (f ObserverFunc) OnReject(event RejectEvent) bool {
	return f(event)
}

// RejectionLimit returns an observer that tolerates up to n rejections in
// a single call and halts on the next one.
func RejectionLimit(n int) Observer {
	return ObserverFunc(func(event RejectEvent) bool {
		return event.Iteration <= n
	})
}

// Counter is an Observer that counts rejections per sampler and never
// halts. It is not safe for concurrent use.
type Counter struct {
	counts map[string]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

// OnReject records the event.
func (c *Counter) OnReject(event RejectEvent) bool {
	c.counts[event.Sampler]++
	return true
}

// Count returns the number of rejections recorded for sampler.
func (c *Counter) Count(sampler string) int {
	return c.counts[sampler]
}

// Total returns the number of rejections recorded across all samplers.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Samplers returns the names of samplers with recorded rejections, sorted.
func (c *Counter) Samplers() []string {
	names := make([]string, 0, len(c.counts))
	for name := range c.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears all counts.
func (c *Counter) Reset() {
	clear(c.counts)
}
