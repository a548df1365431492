package domain

type VehicleType string

const (
	VehicleTypeCar  VehicleType = "CAR"
	VehicleTypeBike VehicleType = "BIKE"
)

type Vehicle struct {
	ID        int         `json:"id"`
	Type      VehicleType `json:"type"`
	Name      string      `json:"name"`
	Model     string      `json:"model"`
	Number    string      `json:"number"`
	RentCost  int         `json:"rentCost"`
	Available bool        `json:"available"`
	Damaged   bool        `json:"damaged"`
}

// Rentable reports whether the vehicle may appear in rental listings.
// Damaged vehicles are excluded regardless of availability.
func (v Vehicle) Rentable() bool {
	return v.Available && !v.Damaged
}
