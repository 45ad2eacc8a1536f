package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/dmitrymomot/fetchkit/pkg/file"
	"github.com/dmitrymomot/fetchkit/pkg/mimetype"
)

// Scope is the optional per-request input a caller supplies alongside a
// URL. Filename, when set, overrides the name derived from the URL path.
type Scope struct {
	Filename string
}

// AttemptResult describes one network attempt for observer hooks.
type AttemptResult struct {
	URL      string
	Attempt  int // 1-based
	Duration time.Duration
	Err      error
}

// AttemptHook is called after every network attempt. The core never
// logs; callers that want logging or metrics plug in here.
type AttemptHook func(AttemptResult)

// Acquirer downloads a URL's bytes to a temporary local path and
// produces a fully populated file descriptor. Attempts are strictly
// sequential: a new one starts only after the previous timed out and
// the backoff delay elapsed. Acquirer holds no shared mutable state and
// is safe for concurrent use.
type Acquirer struct {
	cfg       Config
	client    *Client
	sleep     func(ctx context.Context, d time.Duration) error
	onAttempt AttemptHook
}

// NewAcquirer creates an acquirer with the default config; options
// override config, HTTP client, sleep function, and attempt hook.
func NewAcquirer(opts ...Option) *Acquirer {
	a := &Acquirer{
		cfg:   DefaultConfig(),
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.client == nil {
		a.client = NewClient(a.cfg)
	}
	return a
}

// Acquire resolves rawURL to file metadata and materializes its bytes
// onto local storage. On success the returned descriptor has LocalPath,
// Filename, Headers, MIMEType, and Extension populated; ownership of
// the temporary file transfers to the caller, who is responsible for
// eventual deletion (typically via a storage backend's Ingest).
//
// Failures are classified per the package error taxonomy. Only
// timeout-class failures are retried, up to Config.MaxRetries times
// with exponential backoff; after exhaustion the call fails with
// ErrTimeout.
func (a *Acquirer) Acquire(ctx context.Context, rawURL string, scope *Scope) (*file.File, error) {
	candidate, err := candidateFilename(rawURL, scope)
	if err != nil {
		return nil, err
	}

	tempPath, err := file.TempPath(file.Ext(candidate))
	if err != nil {
		return nil, err
	}

	resp, err := a.fetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(tempPath, resp.Body, 0600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocalIO, err)
	}

	contentType, ok := resp.ContentType()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingContentType, rawURL)
	}

	name, ext, err := mimetype.ResolveName(candidate, contentType)
	if err != nil {
		return nil, err
	}

	return &file.File{
		LocalPath: tempPath,
		Filename:  name,
		Headers:   resp.Headers,
		MIMEType:  contentType,
		Extension: ext,
	}, nil
}

// fetchWithRetry runs the attempt loop: fetch, classify, consult the
// backoff policy on timeouts, suspend, repeat. Transport failures are
// terminal on their first occurrence.
func (a *Acquirer) fetchWithRetry(ctx context.Context, rawURL string) (*Response, error) {
	attempt := 0
	for {
		start := time.Now()
		resp, err := a.client.Fetch(ctx, rawURL)
		if a.onAttempt != nil {
			a.onAttempt(AttemptResult{
				URL:      rawURL,
				Attempt:  attempt + 1,
				Duration: time.Since(start),
				Err:      err,
			})
		}
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, ErrTimeout) {
			return nil, err
		}

		decision := ShouldRetry(attempt, a.cfg)
		if !decision.Retry {
			return nil, fmt.Errorf("%w: gave up after %d attempts: %v", ErrTimeout, attempt+1, err)
		}
		if err := a.sleep(ctx, decision.Delay); err != nil {
			return nil, err
		}
		attempt++
	}
}

// candidateFilename derives the name the download will resolve against:
// the scope override when present, otherwise the URL's last path
// segment lower-cased.
func candidateFilename(rawURL string, scope *Scope) (string, error) {
	if scope != nil && scope.Filename != "" {
		return file.SanitizeFilename(scope.Filename), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	return file.SanitizeFilename(strings.ToLower(path.Base(u.Path))), nil
}

// sleepContext is the default suspension between attempts: a plain
// timer wait that aborts when the context is done, so a stalled backoff
// never outlives its caller.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
