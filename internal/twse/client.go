// Package twse talks to the backend proxy fronting the Taiwan Stock
// Exchange APIs: liveness probing, real-time quotes and daily history.
package twse

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the TWSE backend proxy.
type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a proxy client for the given base URL. The URL is
// normalized the same way the probe normalizes it, so both agree on
// what "base" means.
func New(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: NormalizeBaseURL(baseURL),
	}
}

// NewWithHTTPClient creates a proxy client with a custom http.Client (for testing).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	c.client = hc
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NormalizeBaseURL strips a trailing slash and a trailing /health
// suffix so pasted health-check URLs still resolve to the API root.
func NormalizeBaseURL(raw string) string {
	cleaned := strings.TrimSuffix(raw, "/")
	cleaned = strings.TrimSuffix(cleaned, "/health")
	return cleaned
}

// get issues a GET with JSON accept headers against an absolute URL.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return c.client.Do(req)
}
