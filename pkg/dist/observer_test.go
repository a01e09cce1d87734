package dist

import (
	"testing"

	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/deepnoodle-ai/twister/pkg/mt"
	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverDoesNotChangeOutput(t *testing.T) {
	plain := seeded(60)
	counter := NewCounter()
	watched := seeded(60, WithObserver(counter))
	for range 500 {
		a, err := plain.Gamma(0.4, 1.0)
		require.NoError(t, err)
		b, err := watched.Gamma(0.4, 1.0)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		x, err := plain.RandRange(0, 5, 1)
		require.NoError(t, err)
		y, err := watched.RandRange(0, 5, 1)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
	assert.Greater(t, counter.Count("gamma"), 0)
	assert.Greater(t, counter.Count("randrange"), 0)
}

func TestRejectionLimit(t *testing.T) {
	obs := RejectionLimit(2)
	assert.True(t, obs.OnReject(RejectEvent{Sampler: "gamma", Iteration: 1}))
	assert.True(t, obs.OnReject(RejectEvent{Sampler: "gamma", Iteration: 2}))
	assert.False(t, obs.OnReject(RejectEvent{Sampler: "gamma", Iteration: 3}))
}

func TestHaltedRandRange(t *testing.T) {
	var events []RejectEvent
	obs := ObserverFunc(func(e RejectEvent) bool {
		events = append(events, e)
		return false
	})
	// n = 5 needs 3 bits, so 3 of every 8 proposals are rejected.
	s := New(mt.NewSeeded(0), WithObserver(obs))
	var err error
	for range 100 {
		if _, err = s.RandRange(0, 5, 1); err != nil {
			break
		}
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, errz.ErrHalted)
	kind, ok := errz.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, kind, errz.ErrHalted)
	assert.Len(t, events, 1)
	assert.Equal(t, events[0], RejectEvent{Sampler: "randrange", Iteration: 1})
}

func TestWithPoissonStrategyIgnoresNil(t *testing.T) {
	s := seeded(1, WithPoissonStrategy(nil))
	assert.Equal(t, s.PoissonStrategy().Name(), "ptrs")
	s = seeded(1, WithPoissonStrategy(ProductOfUniforms{}))
	assert.Equal(t, s.PoissonStrategy().Name(), "product")
}
