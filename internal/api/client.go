// Package api is the REST client glue for the SkyLander enrollment server.
// Every operation is a single request/response pair: no retries, no
// backoff, no idempotency keys. Failures surface as errors that screens
// render verbatim in an alert.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"skylander/internal/logging"
)

// Error is a non-2xx response with the server-provided message, which is
// what the user sees in the failure alert.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned HTTP %d", e.Status)
}

// Client talks to the enrollment API. Safe for use from multiple
// goroutines; it holds no per-request state.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a zap logger for request logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured server root.
func (c *Client) BaseURL() string { return c.baseURL }

// MediaURL returns the public URL for an uploaded media file.
func (c *Client) MediaURL(fileName string) string {
	return c.baseURL + "/uploads/" + fileName
}

// messageBody is the {message} envelope most mutation endpoints return.
type messageBody struct {
	Message string `json:"message"`
}

// postJSON sends a JSON body and decodes the response into out when the
// status is 2xx; otherwise it returns *Error with the server message.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// getJSON issues a GET and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	c.log.Debug("api request", zap.String("method", req.Method), zap.String("url", req.URL.String()))
	logging.Info(logging.CategoryAPI, "%s %s", req.Method, req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Error(logging.CategoryAPI, "%s %s: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.serverError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// serverError drains the body and builds the user-facing *Error.
func (c *Client) serverError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var mb messageBody
	_ = json.Unmarshal(body, &mb)
	logging.Warn(logging.CategoryAPI, "%s %s -> %d %s",
		resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, mb.Message)
	return &Error{Status: resp.StatusCode, Message: mb.Message}
}
