package gateway

import (
	"context"
	"errors"
	"net/http"
)

// Probe checks backend reachability with a single vehicles fetch.
// A transport failure means disconnected, a non-2xx response means the
// backend is up but unhealthy.
func (c *Client) Probe(ctx context.Context) BackendStatus {
	req, err := c.newRequest(ctx, http.MethodGet, "/vehicles", nil)
	if err != nil {
		return StatusError
	}

	if _, err := c.do(c.http, req); err != nil {
		var statusErr *HTTPError
		if errors.As(err, &statusErr) {
			return StatusError
		}
		return StatusDisconnected
	}
	return StatusConnected
}
