package fetch

import (
	"math"
	"time"
)

// Decision is the outcome of consulting the retry policy: either wait
// Delay and try again, or give up.
type Decision struct {
	Retry bool
	Delay time.Duration
}

// ShouldRetry is the pure backoff decision: given the zero-based count
// of timed-out attempts so far, decide whether another attempt is
// allowed and how long to wait first. It never sleeps, which keeps it
// testable without real time delays; the caller owns the suspension.
//
// Delay grows exponentially from BackoffFactor and is clamped at
// BackoffMax: the first retry waits BackoffFactor, the second twice
// that, and so on. No jitter is applied - acquisitions are independent
// sequential operations, so there is no retry storm to spread out.
func ShouldRetry(attempt int, cfg Config) Decision {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= cfg.MaxRetries {
		return Decision{}
	}

	factor := cfg.BackoffFactor
	if factor <= 0 {
		factor = time.Second
	}
	max := cfg.BackoffMax
	if max <= 0 {
		max = 30 * time.Second
	}

	delay := float64(factor) * math.Pow(2, float64(attempt))
	if delay > float64(max) {
		delay = float64(max)
	}

	return Decision{Retry: true, Delay: time.Duration(delay)}
}
