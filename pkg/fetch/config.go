package fetch

import "time"

// Config carries the retry and timeout budgets for one acquisition.
// It is read-only for the lifetime of the process: load it once at
// startup (pkg/config understands the env tags) and thread it down.
type Config struct {
	// MaxRetries is the number of retry attempts after the first
	// failure; total attempts are MaxRetries+1.
	MaxRetries int `env:"FETCH_MAX_RETRIES" envDefault:"3"`
	// BackoffFactor is the base delay of the exponential backoff.
	BackoffFactor time.Duration `env:"FETCH_BACKOFF_FACTOR" envDefault:"1s"`
	// BackoffMax clamps the computed backoff delay.
	BackoffMax time.Duration `env:"FETCH_BACKOFF_MAX" envDefault:"30s"`
	// ConnectTimeout bounds TCP connection establishment.
	ConnectTimeout time.Duration `env:"FETCH_CONNECT_TIMEOUT" envDefault:"10s"`
	// RecvTimeout bounds the wait for response headers after the
	// request is fully written.
	RecvTimeout time.Duration `env:"FETCH_RECV_TIMEOUT" envDefault:"5s"`
	// RequestTimeout bounds one whole attempt, body read included.
	RequestTimeout time.Duration `env:"FETCH_REQUEST_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns the stated defaults without consulting the
// environment.
func DefaultConfig() Config {
	return Config{
		MaxRetries:     3,
		BackoffFactor:  time.Second,
		BackoffMax:     30 * time.Second,
		ConnectTimeout: 10 * time.Second,
		RecvTimeout:    5 * time.Second,
		RequestTimeout: 10 * time.Second,
	}
}
