package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ryde/ryde/internal/pkg/circuitbreaker"
	appctx "github.com/ryde/ryde/internal/pkg/context"
	"github.com/ryde/ryde/internal/pkg/logger"
	nrpkg "github.com/ryde/ryde/internal/pkg/newrelic"
	"github.com/ryde/ryde/internal/pkg/retry"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// Config configures a Client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Option customizes a Client
type Option func(*Client)

// WithCircuitBreaker guards every call with cb
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// WithRetrier retries failed calls with r
func WithRetrier(r *retry.Retrier) Option {
	return func(c *Client) { c.retrier = r }
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// Client is an HTTP client for JSON services with optional retry and
// circuit breaker protection.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	retrier    *retry.Retrier
}

// NewClient creates a new HTTP client
func NewClient(config Config, opts ...Option) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Message)
}

// Temporary reports whether the status is worth retrying
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// IsRetryable retries transport errors and temporary HTTP errors
func IsRetryable(err error) bool {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.Temporary()
	}
	return err != nil
}

// Get performs a GET request against path and returns the body of a 2xx response
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body []byte
	call := func(ctx context.Context) error {
		var err error
		body, err = c.do(ctx, http.MethodGet, endpoint)
		return err
	}

	guarded := call
	if c.retrier != nil {
		guarded = func(ctx context.Context) error { return c.retrier.Execute(ctx, call) }
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, guarded)
	} else {
		err = guarded(ctx)
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, result interface{}) error {
	body, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := appctx.GetRequestID(ctx); requestID != "" {
		req.Header.Set(appctx.HeaderRequestID, requestID)
	}

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("host", req.URL.Host),
		logger.String("path", req.URL.Path),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return body, nil
}
