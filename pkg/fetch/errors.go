package fetch

import "errors"

// Domain errors for remote acquisition, designed for error wrapping and
// classification with errors.Is.
//
// Classification strategy:
//   - Invalid input: malformed URL or scope (fail fast, never retried)
//   - Timeout: transient network stalls (the only retried class)
//   - Transport: every other network/HTTP failure (terminal on first hit)
//   - Local I/O: disk failures after a successful download (terminal)
var (
	ErrInvalidURL         = errors.New("invalid fetch URL")
	ErrTimeout            = errors.New("fetch request timed out")
	ErrTransport          = errors.New("fetch transport failure")
	ErrMissingContentType = errors.New("response has no content-type header")
	ErrLocalIO            = errors.New("failed to write downloaded bytes")
)
