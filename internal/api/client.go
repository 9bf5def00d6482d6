// Package api implements service.Service and service.Auth against the
// task-management REST backend.
package api

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

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"taskcli/internal/service"
)

// HTTPTimeout is the transport-level timeout for API calls. There is no
// per-call deadline or retry policy on top of it.
const HTTPTimeout = 30 * time.Second

// Client talks to the REST backend. It implements service.Service and
// service.Auth.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   oauth2.TokenSource
	log     *zap.Logger
}

// New creates a client for the given base URL. A trailing slash on the
// base URL is stripped. creds supplies the bearer credential per request;
// a nil creds sends unauthenticated requests.
func New(baseURL string, creds oauth2.TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: HTTPTimeout},
		creds:   creds,
		log:     log,
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, creds oauth2.TokenSource, httpc *http.Client) *Client {
	c := New(baseURL, creds, nil)
	c.httpc = httpc
	return c
}

// do issues one request and normalizes the response.
//
// body, when non-nil, is JSON-encoded with Content-Type application/json.
// out, when non-nil, receives the decoded JSON of a 2xx response body;
// a 204 leaves out untouched.
//
// Failures map onto the service error taxonomy: a missing credential or an
// HTTP 401 yields service.ErrAuthRequired, transport failures yield
// *service.NetworkError, and any other non-2xx status yields
// *service.RequestError with the message extracted from the error body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if c.creds != nil {
		token, err := c.creds.Token()
		if err != nil {
			// No usable credential; don't bother the server.
			return service.ErrAuthRequired
		}
		token.SetAuthHeader(req)
	}

	c.log.Debug("api request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &service.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("api response", zap.String("path", path), zap.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body)
		return service.ErrAuthRequired
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	default:
		return &service.RequestError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Body),
		}
	}
}

// public returns a copy of the client that attaches no credential.
func (c *Client) public() *Client {
	cp := *c
	cp.creds = nil
	return &cp
}

// errorMessage extracts the human-readable text from an error body of the
// shape {"detail": "..."} or {"detail": {"message": "..."}}. Returns ""
// when the body is absent or unparseable.
func errorMessage(body io.Reader) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Detail, &obj); err == nil {
		return obj.Message
	}
	return ""
}
