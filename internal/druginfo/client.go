// Package druginfo is the boundary to the external drug-information
// lookup service. The service is a black box that answers with either a
// success payload or a JSON object carrying an "error" key; this package
// hands the payload through unchanged and leaves status mapping to the
// API layer. Lookups are one-shot, never retried.
package druginfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodySize = 1 << 20 // 1MB
)

type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a Client for the given lookup endpoint.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewWithTransport allows injecting a Transport, e.g. for tests.
func NewWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) *Client {
	c := New(baseURL, timeout)
	if tr != nil {
		c.http.Transport = tr
	}
	return c
}

// Lookup fetches drug information for a medication name. The decoded
// JSON payload is returned as-is, including upstream bodies that carry
// an "error" key regardless of HTTP status. A non-nil error means the
// request itself failed (network, timeout, unparseable body).
func (c *Client) Lookup(ctx context.Context, name string) (map[string]any, error) {
	q := url.Values{}
	q.Set("search", fmt.Sprintf("openfda.brand_name:%q", name))
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("druginfo: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("druginfo: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("druginfo: read response: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("druginfo: unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	return payload, nil
}

// HasError reports whether an upstream payload carries an "error" key,
// which the API layer must surface as an upstream-failure response.
func HasError(payload map[string]any) bool {
	v, ok := payload["error"]
	return ok && v != nil
}
