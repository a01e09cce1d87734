package mt

import "github.com/deepnoodle-ai/twister/pkg/errz"

// State is a value copy of an engine's complete state.
type State struct {
	Index       int
	Words       [N]uint32
	HasGauss    bool
	CachedGauss float64
}

// Snapshot returns a copy of the engine state. Restoring it on any engine
// replays the same output sequence.
func (e *Engine) Snapshot() State {
	return State{
		Index:       e.index,
		Words:       e.words,
		HasGauss:    e.gauss.has,
		CachedGauss: e.gauss.value,
	}
}

// Restore replaces the engine state with s.
func (e *Engine) Restore(s State) error {
	if s.Index < 0 || s.Index > N {
		return errz.Domainf("restore", "index must be in [0, %d], got %d", N, s.Index)
	}
	e.index = s.Index
	e.words = s.Words
	e.gauss = GaussCache{has: s.HasGauss, value: s.CachedGauss}
	e.seeded = true
	return nil
}
