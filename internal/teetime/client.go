// Package teetime implements the HTTP clients for the two remote services
// this tool talks to: the Google Identity Toolkit (sign-in) and the
// TeeTimeAlerts API (course search and preference updates).
package teetime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"teetimealerts/internal/config"
)

// Client issues requests against the identity and preferences services.
// All calls are single-attempt and block until a response or transport
// error; there is no retry layer.
type Client struct {
	Settings config.Settings
	HTTP     *http.Client
}

// New builds a Client from the given settings with a 30 second
// per-request timeout.
func New(s config.Settings) *Client {
	return &Client{
		Settings: s,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError carries status and body for non-2xx responses so callers can
// surface the service's own error text to the user.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed: HTTP status %d: %s", e.Method, e.URL, e.StatusCode, snippet(e.Body))
}

func snippet(b []byte) string {
	const max = 900
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// doJSON sends payload as a JSON body with the given method and headers,
// reads the full response body, and returns it with the HTTP status code.
// Non-2xx statuses become an *APIError holding the body text.
func (c *Client) doJSON(ctx context.Context, method, url string, payload any, header http.Header) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, respBody, &APIError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	return resp.StatusCode, respBody, nil
}
