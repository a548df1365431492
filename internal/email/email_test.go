package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentx-client/internal/domain"
)

func TestConfirmationBody(t *testing.T) {
	rental := domain.Rental{
		ID: 1, UserName: "John Doe", UserEmail: "john.doe@example.com",
		VehicleName: "Toyota Camry", VehicleType: domain.VehicleTypeCar,
		StartDate: "2024-01-25", EndDate: "2024-01-28",
		TotalCost: 7500, PickupLocation: "Bangalore",
	}

	body := ConfirmationBody(rental)
	assert.Contains(t, body, "Dear John Doe,")
	assert.Contains(t, body, "Toyota Camry (CAR)")
	assert.Contains(t, body, "2024-01-25 to 2024-01-28")
	assert.Contains(t, body, "₹7500")
	assert.Contains(t, body, "Pickup Location: Bangalore")
	assert.Contains(t, body, "Thank you for choosing RentX!")
}

func TestLogSenderAlwaysDelivers(t *testing.T) {
	assert.NoError(t, LogSender{}.SendRentalConfirmation(context.Background(), domain.Rental{ID: 1}))
}
