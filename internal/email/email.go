// Package email sends rental confirmation messages. SendGrid does the
// delivery when a key is configured; without one the send is logged and
// treated as delivered, which keeps demo mode fully navigable.
package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentx-client/internal/domain"
	"rentx-client/internal/logger"
)

// Sender delivers rental confirmations.
type Sender interface {
	SendRentalConfirmation(ctx context.Context, rental domain.Rental) error
}

// ConfirmationBody renders the confirmation message for a rental.
func ConfirmationBody(rental domain.Rental) string {
	return fmt.Sprintf(`Dear %s,

Your vehicle rental has been confirmed!

Booking Details:
- Vehicle: %s (%s)
- Rental Period: %s to %s
- Total Cost: ₹%d
- Pickup Location: %s

Thank you for choosing RentX!

Best regards,
RentX Team`,
		rental.UserName,
		rental.VehicleName, rental.VehicleType,
		rental.StartDate, rental.EndDate,
		rental.TotalCost,
		rental.PickupLocation,
	)
}

// SendGridSender delivers mail through the SendGrid API.
type SendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) SendRentalConfirmation(ctx context.Context, rental domain.Rental) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(rental.UserName, rental.UserEmail)
	subject := fmt.Sprintf("RentX Rental Confirmation - #%d", rental.ID)
	body := ConfirmationBody(rental)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// LogSender records the send instead of delivering it.
type LogSender struct{}

func (LogSender) SendRentalConfirmation(ctx context.Context, rental domain.Rental) error {
	logger.Info("Sending confirmation email",
		"to", rental.UserEmail,
		"rental_id", rental.ID,
		"body", ConfirmationBody(rental),
	)
	return nil
}
