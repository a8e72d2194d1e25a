// ABOUTME: HTTP client adapter for the storefront REST API
// ABOUTME: Single configured client with bearer-token injection and typed decoding

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the current access token, or "" when the client
// is anonymous. It is consulted per request so a login mid-session takes
// effect immediately.
type TokenSource func() string

// Client is the single configured request client shared by every layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

// New creates a client for the given base URL. token may be nil for a
// fully anonymous client.
func New(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		token: token,
	}
}

// Get performs GET path?params and decodes the body into out.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.url(path)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// Post performs POST path with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

// Put performs PUT path with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

// Patch performs PATCH path with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPatch, path, body, out)
}

// Delete performs DELETE path. body may be non-nil; the cart endpoints
// read a JSON body on DELETE.
func (c *Client) Delete(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodDelete, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() == context.Canceled {
			return fmt.Errorf("request canceled: %w", err)
		}
		if req.Context().Err() == context.DeadlineExceeded {
			return fmt.Errorf("request timed out: %w", err)
		}
		return fmt.Errorf("cannot reach storefront API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	slog.Debug("API request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return newError(resp.StatusCode, body)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from storefront API: %w", err)
	}
	return nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
