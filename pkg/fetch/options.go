package fetch

import (
	"context"
	"net/http"
	"time"
)

// Option is a functional option for configuring an Acquirer.
type Option func(*Acquirer)

// WithConfig sets the retry and timeout configuration.
func WithConfig(cfg Config) Option {
	return func(a *Acquirer) {
		a.cfg = cfg
	}
}

// WithHTTPClient sets a custom HTTP client for all attempts. Config
// timeouts do not apply to a caller-supplied client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Acquirer) {
		if client != nil {
			a.client = NewClientWithHTTP(client)
		}
	}
}

// WithClient sets a pre-built fetch client.
func WithClient(client *Client) Option {
	return func(a *Acquirer) {
		if client != nil {
			a.client = client
		}
	}
}

// WithSleep replaces the backoff suspension function. Tests inject a
// fake here to exercise the retry loop without real delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(a *Acquirer) {
		if sleep != nil {
			a.sleep = sleep
		}
	}
}

// WithOnAttempt sets an observer invoked after every network attempt.
func WithOnAttempt(hook AttemptHook) Option {
	return func(a *Acquirer) {
		a.onAttempt = hook
	}
}
