// Package api is the HTTP wrapper every domain call funnels through. It owns
// the base URL, forwards the session cookie on every request, and normalizes
// failures into a structured Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// Client sends requests against a single configured origin. Session
// credentials ride on the cookie jar, so every request after login carries
// them automatically. No retries; failures propagate on the first attempt.
type Client struct {
	baseURL string
	http    *http.Client

	onAuthFailure func()
}

// New builds a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

// OnAuthFailure registers a hook invoked whenever a request comes back
// 401/403. The session layer uses it to clear the persisted session.
func (c *Client) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, "", nil, out)
}

// SendJSON issues a request with a JSON-encoded body and decodes the
// response into out. out may be nil when the caller ignores the payload.
func (c *Client) SendJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to encode request body: %s", err)}
		}
		reader = bytes.NewReader(raw)
	}
	return c.Do(ctx, method, path, nil, "application/json", reader, out)
}

// Do issues a single request and decodes a JSON response into out. A non-2xx
// status is converted into *Error carrying the server message when the body
// is the usual {"error": ...} payload.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to build request: %s", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("request failed: %s", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.failure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to decode response: %s", err)}
	}
	return nil
}

// FetchBinary issues a GET and returns the raw response bytes, for endpoints
// that serve file content rather than JSON.
func (c *Client) FetchBinary(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to build request: %s", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("request failed: %s", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.failure(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to read response: %s", err)}
	}
	return content, nil
}

func (c *Client) failure(resp *http.Response) *Error {
	apiErr := &Error{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}

	if apiErr.Kind == KindAuth && c.onAuthFailure != nil {
		c.onAuthFailure()
	}
	return apiErr
}
