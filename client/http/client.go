// Package http provides a small JSON HTTP client shared by the outbound
// API clients.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// HTTPClient wraps the standard client with a base URL and JSON helpers.
type HTTPClient struct {
	baseURL string
	client  *stdhttp.Client
	headers map[string]string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL sets the base URL every request path is resolved against.
func WithBaseURL(baseURL string) Option {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = timeout
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *HTTPClient) {
		c.headers[key] = value
	}
}

// NewHTTPClient creates a client with the given options applied.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client:  &stdhttp.Client{Timeout: defaultTimeout},
		headers: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DoJSON sends a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil and the response carries a body.
// The HTTP status code is returned alongside any transport error.
func (c *HTTPClient) DoJSON(ctx context.Context, method, path string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := stdhttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, errors.Wrap(err, "failed to decode response body")
		}
		return resp.StatusCode, nil
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// Get issues a GET request.
func (c *HTTPClient) Get(ctx context.Context, path string, out interface{}) (int, error) {
	return c.DoJSON(ctx, stdhttp.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, path string, body, out interface{}) (int, error) {
	return c.DoJSON(ctx, stdhttp.MethodPost, path, body, out)
}
