package scoreboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrMatchNotFound is returned by GetMatchByCode when no match exists for the
// given code.
var ErrMatchNotFound = errors.New("scoreboard: no match found for code")

// APIError is a rejected backend call. Message carries the backend-provided
// reason when one was decodable, otherwise a generic fallback set by the
// calling operation.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scoreboard: backend rejected request (%d): %s", e.StatusCode, e.Message)
}

// Config controls how the client reaches the scoreboard backend.
type Config struct {
	// BaseURL is the root of the backend API, without a trailing slash.
	BaseURL string

	// HTTPClient overrides the default client. The default carries a 30s
	// timeout; there is no retry or cancellation beyond it.
	HTTPClient *http.Client
}

// Client is the gateway to the remote scoreboard backend. Every call resolves
// or rejects exactly once; none retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a gateway client from the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// BaseURL reports the backend root the client was configured with. List views
// use it to resolve relative logo paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func resolveHTTPClient(hc *http.Client) *http.Client {
	if hc != nil {
		return hc
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// do issues one request and decodes a 2xx response body into out (skipped when
// out is nil). A non-2xx status becomes an *APIError carrying the backend's
// message when decodable, or fallback otherwise.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out interface{}, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()
	log.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body, fallback),
		}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}, fallback string) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out, fallback)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}, fallback string) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, token, body, "application/json", out, fallback)
}

func (c *Client) putJSON(ctx context.Context, path, token string, in, out interface{}, fallback string) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, token, body, "application/json", out, fallback)
}

func encodeJSON(in interface{}) (io.Reader, error) {
	if in == nil {
		return bytes.NewReader([]byte("{}")), nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(raw), nil
}

// decodeErrorMessage pulls the human-readable reason out of an error response.
// The backend wraps it as {"error":{"message":...}}; older endpoints use a bare
// {"message":...}.
func decodeErrorMessage(r io.Reader, fallback string) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return fallback
	}
	var wrapped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Error.Message != "" {
			return wrapped.Error.Message
		}
		if wrapped.Message != "" {
			return wrapped.Message
		}
	}
	return fallback
}
