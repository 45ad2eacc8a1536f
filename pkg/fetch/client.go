package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dmitrymomot/fetchkit/pkg/file"
)

// Response is the result of one successful GET: the full body and the
// response headers in a deterministic order.
type Response struct {
	Body    []byte
	Headers []file.Header
}

// ContentType returns the value of the Content-Type header, matched
// case-insensitively.
func (r *Response) ContentType() (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, "Content-Type") {
			return h.Value, true
		}
	}
	return "", false
}

// Client performs single HTTP GET attempts with redirect following and
// the configured timeout budgets. It classifies failures into timeout
// (ErrTimeout, retryable by the acquirer) and everything else
// (ErrTransport, terminal). It never touches local storage.
type Client struct {
	// httpClient is reused across requests for connection pooling
	httpClient *http.Client
}

// NewClient creates a fetch client honoring the config's connect,
// receive, and request timeouts.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
				ResponseHeaderTimeout: cfg.RecvTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

// NewClientWithHTTP creates a fetch client around a custom HTTP client.
// The caller's client is used as-is; config timeouts do not apply.
// Useful for custom transports, proxies, or testing.
func NewClientWithHTTP(client *http.Client) *Client {
	if client == nil {
		return NewClient(DefaultConfig())
	}
	return &Client{httpClient: client}
}

// Fetch performs one GET against rawURL. A 200 response yields the body
// and headers; a timeout-class failure wraps ErrTimeout; any other
// outcome (non-200 status, DNS failure, connection refused, malformed
// response) wraps ErrTransport.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused despite the error.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The budget can also expire mid-body; keep the classification
		// consistent with connection-phase failures.
		return nil, classify(err)
	}

	return &Response{Body: body, Headers: flattenHeaders(resp.Header)}, nil
}

// classify maps a client error to the retryable/terminal split. Only
// timeout-class failures are retryable; permanent errors like DNS
// failures must not hide behind repeated retries.
func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

// flattenHeaders converts the header map to ordered pairs. net/http
// does not preserve wire order, so canonical names are sorted to keep
// the sequence deterministic; multi-valued headers stay in value order.
func flattenHeaders(h http.Header) []file.Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]file.Header, 0, len(h))
	for _, name := range names {
		for _, value := range h[name] {
			headers = append(headers, file.Header{Name: name, Value: value})
		}
	}
	return headers
}
