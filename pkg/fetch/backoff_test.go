package fetch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fetchkit/pkg/fetch"
)

func TestShouldRetry(t *testing.T) {
	t.Parallel()

	cfg := fetch.Config{
		MaxRetries:    3,
		BackoffFactor: time.Second,
		BackoffMax:    30 * time.Second,
	}

	t.Run("exponential progression", func(t *testing.T) {
		t.Parallel()

		d := fetch.ShouldRetry(0, cfg)
		require.True(t, d.Retry)
		assert.Equal(t, time.Second, d.Delay)

		d = fetch.ShouldRetry(1, cfg)
		require.True(t, d.Retry)
		assert.Equal(t, 2*time.Second, d.Delay)

		d = fetch.ShouldRetry(2, cfg)
		require.True(t, d.Retry)
		assert.Equal(t, 4*time.Second, d.Delay)
	})

	t.Run("gives up at max retries", func(t *testing.T) {
		t.Parallel()

		assert.False(t, fetch.ShouldRetry(3, cfg).Retry)
		assert.False(t, fetch.ShouldRetry(4, cfg).Retry)
		assert.False(t, fetch.ShouldRetry(100, cfg).Retry)
	})

	t.Run("delay clamped at max", func(t *testing.T) {
		t.Parallel()

		clamped := fetch.Config{
			MaxRetries:    10,
			BackoffFactor: 10 * time.Second,
			BackoffMax:    15 * time.Second,
		}

		d := fetch.ShouldRetry(0, clamped)
		require.True(t, d.Retry)
		assert.Equal(t, 10*time.Second, d.Delay)

		d = fetch.ShouldRetry(1, clamped)
		require.True(t, d.Retry)
		assert.Equal(t, 15*time.Second, d.Delay)

		d = fetch.ShouldRetry(9, clamped)
		require.True(t, d.Retry)
		assert.Equal(t, 15*time.Second, d.Delay)
	})

	t.Run("monotonically non-decreasing until clamped", func(t *testing.T) {
		t.Parallel()

		wide := fetch.Config{
			MaxRetries:    20,
			BackoffFactor: 100 * time.Millisecond,
			BackoffMax:    time.Minute,
		}

		prev := time.Duration(0)
		for attempt := 0; attempt < wide.MaxRetries; attempt++ {
			d := fetch.ShouldRetry(attempt, wide)
			require.True(t, d.Retry)
			assert.GreaterOrEqual(t, d.Delay, prev, "attempt %d", attempt)
			assert.LessOrEqual(t, d.Delay, wide.BackoffMax)
			prev = d.Delay
		}
	})

	t.Run("negative attempt treated as first", func(t *testing.T) {
		t.Parallel()

		d := fetch.ShouldRetry(-1, cfg)
		require.True(t, d.Retry)
		assert.Equal(t, time.Second, d.Delay)
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		t.Parallel()

		d := fetch.ShouldRetry(0, fetch.Config{MaxRetries: 1})
		require.True(t, d.Retry)
		assert.Equal(t, time.Second, d.Delay)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := fetch.DefaultConfig()
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.BackoffFactor)
	assert.Equal(t, 30*time.Second, cfg.BackoffMax)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 5*time.Second, cfg.RecvTimeout)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
