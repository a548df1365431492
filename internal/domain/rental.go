package domain

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusRejected  RentalStatus = "rejected"
	RentalStatusCompleted RentalStatus = "completed"
)

// CanTransition reports whether a rental may move from its current status
// to the given one. Pending rentals go to confirmed or rejected; confirmed
// rentals go to completed. Rejected and completed are terminal.
func (s RentalStatus) CanTransition(to RentalStatus) bool {
	switch s {
	case RentalStatusPending:
		return to == RentalStatusConfirmed || to == RentalStatusRejected
	case RentalStatusConfirmed:
		return to == RentalStatusCompleted
	default:
		return false
	}
}

// Rental is denormalized: user and vehicle fields are snapshots taken at
// booking time, not references resolved client-side.
type Rental struct {
	ID             int          `json:"id"`
	UserID         int          `json:"userId"`
	UserName       string       `json:"userName"`
	UserEmail      string       `json:"userEmail"`
	VehicleID      int          `json:"vehicleId"`
	VehicleName    string       `json:"vehicleName"`
	VehicleType    VehicleType  `json:"vehicleType"`
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"`
	TotalCost      int          `json:"totalCost"`
	Status         RentalStatus `json:"status"`
	PickupLocation string       `json:"pickupLocation"`
	BookingDate    string       `json:"bookingDate"`
}
