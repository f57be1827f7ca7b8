// Package apod talks to the Astronomy Picture of the Day service and
// persists what it returns.
package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/starford/sowilo/internal/apperr"
)

// DefaultBaseURL is the public APOD metadata endpoint.
const DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

const (
	defaultUserAgent = "sowilo/0.1"
	requestTimeout   = 30 * time.Second
)

// Client talks to the APOD HTTP API. One attempt per call, no retries.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given metadata endpoint.
// An empty baseURL selects the public NASA endpoint.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchMetadata retrieves the picture-of-the-day document. The api_key
// query parameter is the only parameter the endpoint needs.
func (c *Client) FetchMetadata(ctx context.Context, apiKey string) (Metadata, error) {
	reqURL := *c.baseURL
	values := reqURL.Query()
	values.Set("api_key", apiKey)
	reqURL.RawQuery = values.Encode()

	body, err := c.get(ctx, reqURL.String(), "application/json")
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("apod: %w: %v", apperr.ErrDecode, err)
	}
	return meta, nil
}

// FetchImage retrieves raw image bytes from rawURL, which normally comes
// from the metadata document's url field.
func (c *Client) FetchImage(ctx context.Context, rawURL string) ([]byte, error) {
	return c.get(ctx, rawURL, "image/*")
}

func (c *Client) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("apod: create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apod: %w: %v", apperr.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("apod: %w: %s returned status %d", apperr.ErrNetwork, req.URL.Host, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apod: %w: read body: %v", apperr.ErrNetwork, err)
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("apod: parse base url %q: %w", raw, err)
	}
	return u, nil
}
