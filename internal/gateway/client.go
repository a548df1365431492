// Package gateway wraps the remote REST backend. It is the only component
// that talks HTTP; callers get flat, uniformly-typed slices back and are
// responsible for any fallback on failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentx-client/internal/logger"
)

// BackendStatus is the result of a connectivity probe.
type BackendStatus string

const (
	StatusChecking     BackendStatus = "checking"
	StatusConnected    BackendStatus = "connected"
	StatusDisconnected BackendStatus = "disconnected"
	StatusError        BackendStatus = "error"
)

// Config contains client settings
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080/api"
	BaseURL string
	// AuthTimeout bounds the login call. Resource and mutation calls run
	// without a timeout; the original call sites were configured that way
	// and the inconsistency is preserved.
	AuthTimeout time.Duration
}

// Client issues HTTP calls against the configured backend
type Client struct {
	baseURL  string
	http     *http.Client
	authHTTP *http.Client
}

// New creates a gateway client
func New(cfg Config) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{},
		authHTTP: &http.Client{Timeout: cfg.AuthTimeout},
	}
}

// HTTPError is a non-2xx backend response
type HTTPError struct {
	Code int
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// do runs the request and returns the response body. A non-2xx status
// yields a *HTTPError carrying the body text.
func (c *Client) do(client *http.Client, req *http.Request) ([]byte, error) {
	logger.BackendCall(req.Method, req.URL.String(), "request_id", req.Header.Get("X-Request-ID"))

	resp, err := client.Do(req)
	if err != nil {
		logger.BackendResult(req.Method, req.URL.String(), err)
		return nil, fmt.Errorf("backend not reachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.BackendResult(req.Method, req.URL.String(), err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &HTTPError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		logger.BackendResult(req.Method, req.URL.String(), statusErr)
		return data, statusErr
	}

	logger.BackendResult(req.Method, req.URL.String(), nil, "status", resp.StatusCode)
	return data, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(c.http, req)
}

func (c *Client) put(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodPut, path, nil)
	if err != nil {
		return err
	}
	_, err = c.do(c.http, req)
	return err
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	_, err = c.do(c.http, req)
	return err
}
