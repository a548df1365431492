package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"rentx-client/internal/domain"
)

// CreateBooking submits the combined booking+payment request with the
// session's bearer token.
func (c *Client) CreateBooking(ctx context.Context, token string, r domain.BookingRequest) (*domain.BookingConfirmation, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/bookings", r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	data, err := c.do(c.http, req)
	if err != nil {
		return nil, err
	}

	var confirmation domain.BookingConfirmation
	if err := json.Unmarshal(data, &confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode booking confirmation: %w", err)
	}
	return &confirmation, nil
}
