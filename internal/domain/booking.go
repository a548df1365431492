package domain

// BookingRequest is the combined booking+payment submission.
type BookingRequest struct {
	VehicleID     int    `json:"vehicleId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	PaymentAmount int    `json:"paymentAmount"`
	PaymentMethod string `json:"paymentMethod"`
}

// BookingConfirmation is the backend's acknowledgment of a booking.
type BookingConfirmation struct {
	ID string `json:"id"`
}
