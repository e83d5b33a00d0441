// Package transport executes single-attempt JSON requests against the
// remote FitAI backend and classifies every failure.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/fitai/fitai/internal/codec"
)

const (
	// DialTimeout is the connection timeout.
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the TLS negotiation timeout.
	TLSHandshakeTimeout = 10 * time.Second
	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes = 10 << 20

	userAgent = "FitAI-Client/1.0"
)

// NewHTTPClient creates an HTTP client for backend calls. A zero timeout
// leaves requests bounded only by their context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: TLSHandshakeTimeout,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Decoder turns a 2xx response body into a record.
type Decoder[T any] func(data []byte) (T, error)

// Client performs requests relative to a base address.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for baseURL. The base is not validated here; a bad
// base surfaces as ErrInvalidEndpoint on the first call.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    NewHTTPClient(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "transport")
	return c
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the response.
func Get[T any](ctx context.Context, c *Client, path string, headers map[string]string, decode Decoder[T]) (T, error) {
	return Do(ctx, c, http.MethodGet, path, nil, headers, decode)
}

// Post issues a POST with body and decodes the response.
func Post[T any](ctx context.Context, c *Client, path string, body any, headers map[string]string, decode Decoder[T]) (T, error) {
	return Do(ctx, c, http.MethodPost, path, body, headers, decode)
}

// Put issues a PUT with body and decodes the response.
func Put[T any](ctx context.Context, c *Client, path string, body any, headers map[string]string, decode Decoder[T]) (T, error) {
	return Do(ctx, c, http.MethodPut, path, body, headers, decode)
}

// Delete issues a DELETE. Any response body is discarded.
func Delete(ctx context.Context, c *Client, path string, headers map[string]string) error {
	_, err := c.send(ctx, http.MethodDelete, path, nil, headers)
	return err
}

// Do performs one request. A nil body sends no payload. The response body of
// a 2xx reply is passed to decode; decode failures become DecodingError.
func Do[T any](ctx context.Context, c *Client, method, path string, body any, headers map[string]string, decode Decoder[T]) (T, error) {
	var zero T

	data, err := c.send(ctx, method, path, body, headers)
	if err != nil {
		return zero, err
	}

	v, err := decode(data)
	if err != nil {
		c.logger.Debug("response decode failed", "method", method, "path", path, "error", err)
		return zero, &DecodingError{Err: err}
	}
	return v, nil
}

// send executes the request and returns the body of a 2xx response.
func (c *Client) send(ctx context.Context, method, path string, body any, headers map[string]string) ([]byte, error) {
	target, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	var payload io.Reader
	if body != nil {
		data, err := codec.Marshal(body)
		if err != nil {
			return nil, &EncodingError{Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method,
			"path", path,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		drain(resp.Body)
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		drain(resp.Body)
		return nil, &ServerError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	return data, nil
}

// endpoint joins the base address and path into an absolute URL.
func (c *Client) endpoint(path string) (string, error) {
	raw := c.baseURL + path
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidEndpoint, raw)
	}
	return u.String(), nil
}

// drain reads a little of the body so the connection can be reused.
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 1024))
}
