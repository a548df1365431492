package gateway

import (
	"context"
	"fmt"

	"rentx-client/internal/domain"
)

// FetchVehicles returns the full fleet, type-tagged regardless of the
// shape the backend chose for the payload.
func (c *Client) FetchVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	data, err := c.get(ctx, "/vehicles")
	if err != nil {
		return nil, err
	}
	return decodeVehicles(data)
}

// FetchPayments returns all payments.
func (c *Client) FetchPayments(ctx context.Context) ([]domain.Payment, error) {
	data, err := c.get(ctx, "/payments")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Payment](data, "payments")
}

// FetchOffers returns all offers.
func (c *Client) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	data, err := c.get(ctx, "/offers")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Offer](data, "offers")
}

// FetchUsers returns all registered users.
func (c *Client) FetchUsers(ctx context.Context) ([]domain.User, error) {
	data, err := c.get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.User](data, "users")
}

// FetchRentals returns all rentals.
func (c *Client) FetchRentals(ctx context.Context) ([]domain.Rental, error) {
	data, err := c.get(ctx, "/rentals")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Rental](data, "rentals")
}

// CreateVehicle adds a vehicle to the fleet.
func (c *Client) CreateVehicle(ctx context.Context, v domain.Vehicle) error {
	return c.post(ctx, "/vehicles", v)
}

// CreateOffer publishes a new offer.
func (c *Client) CreateOffer(ctx context.Context, o domain.Offer) error {
	return c.post(ctx, "/offers", o)
}

// ApprovePayment moves a pending payment to completed.
func (c *Client) ApprovePayment(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/payments/%d/approve", id))
}

// RejectPayment moves a pending payment to rejected.
func (c *Client) RejectPayment(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/payments/%d/reject", id))
}

// MarkDamaged flags a vehicle as damaged, removing it from listings.
func (c *Client) MarkDamaged(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/vehicles/%d/damage", id))
}

// MarkRepaired clears a vehicle's damaged flag.
func (c *Client) MarkRepaired(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/vehicles/%d/repair", id))
}

// ConfirmRental moves a pending rental to confirmed.
func (c *Client) ConfirmRental(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/rentals/%d/confirm", id))
}

// RejectRental moves a pending rental to rejected.
func (c *Client) RejectRental(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/rentals/%d/reject", id))
}

// CompleteRental moves a confirmed rental to completed.
func (c *Client) CompleteRental(ctx context.Context, id int) error {
	return c.put(ctx, fmt.Sprintf("/rentals/%d/complete", id))
}
