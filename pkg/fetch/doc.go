// Package fetch implements the remote-acquisition pipeline: resolving
// a URL to file metadata and reliably materializing its bytes onto
// local storage under transient network failure, with bounded
// exponential backoff retry.
//
// # Basic Usage
//
//	import (
//	    "context"
//
//	    "github.com/dmitrymomot/fetchkit/pkg/fetch"
//	)
//
//	acquirer := fetch.NewAcquirer()
//	f, err := acquirer.Acquire(ctx, "https://example.com/images/cat.jpg", nil)
//	if err != nil {
//	    // classify with errors.Is against fetch.ErrTimeout, fetch.ErrTransport, ...
//	}
//	// f.LocalPath now points at the downloaded bytes; the caller owns
//	// that temporary file.
//
// # Retry Semantics
//
// Only timeout-class failures are retried. Everything else - a non-200
// status, DNS failure, connection refused, malformed response - fails
// immediately: retrying would only mask permanent errors. The delay
// before retry n is min(BackoffFactor * 2^(n-1), BackoffMax), and after
// MaxRetries retries the call fails with ErrTimeout. The backoff
// decision (ShouldRetry) is a pure function; the acquirer owns the
// suspension, which tests replace via WithSleep.
//
// # Configuration
//
// Config carries the retry and timeout budgets. Load it from the
// environment once at startup:
//
//	var cfg fetch.Config
//	config.MustLoad(&cfg) // pkg/config
//	acquirer := fetch.NewAcquirer(fetch.WithConfig(cfg))
//
// # Observability
//
// The pipeline itself never logs; every failure surfaces as a typed,
// wrapped error. Callers that want visibility register an attempt hook:
//
//	acquirer := fetch.NewAcquirer(fetch.WithOnAttempt(func(r fetch.AttemptResult) {
//	    log.Debug("fetch attempt", logger.URL(r.URL), logger.Attempt(r.Attempt), logger.Error(r.Err))
//	}))
package fetch
