// Package gateway is a thin adapter over the hosted document store
// and its file bucket.  Records live in named collections addressed
// by a fixed (database ID, collection ID) pair; documents are untyped
// field mappings and the server issues string identifiers on create.
// There is no retry or backoff: a failed call surfaces a single
// generic error whose message the caller shows to the user.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the hosted backend.  Construct it once at startup
// and pass it into each repository; a nil or unconfigured client
// means the application falls back to the local draft store.
type Client struct {
	endpoint string
	project  string
	apiKey   string
	http     *http.Client
}

// New returns a client for the given endpoint and project.  apiKey
// may be empty for anonymous access.
func New(endpoint, project, apiKey string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		project:  project,
		apiKey:   apiKey,
		// The transport applies no request timeout of its own: the
		// caller's context bounds each call.
		http: &http.Client{},
	}
}

// Configured reports whether the client points at a backend.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != "" && c.project != ""
}

// Error is the generic transport/validation failure returned by the
// backend.  No distinction is drawn between not-found, network and
// server errors beyond the status code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsNotFound reports whether err is a gateway error with a 404 status.
func IsNotFound(err error) bool {
	ge, ok := err.(*Error)
	return ok && ge.Status == http.StatusNotFound
}

// do executes a JSON request and decodes the response into out (when
// out is non-nil).  Non-2xx responses are decoded into an Error using
// the backend's message field when present.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Project", c.project)
	if c.apiKey != "" {
		req.Header.Set("X-Key", c.apiKey)
	}
}

func decodeError(resp *http.Response) error {
	ge := &Error{Status: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		ge.Message = payload.Message
	}
	return ge
}
