// Package fixtures holds the fixed demo datasets shown when the backend is
// unreachable. Every function returns a fresh copy so demo-mode mutations
// on one screen never leak into another.
package fixtures

import "rentx-client/internal/domain"

// AdminCars is the admin dashboard's demo car fleet.
func AdminCars() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 1, Name: "Toyota Camry", Model: "2023", Number: "AB123CD", RentCost: 2500, Available: true, Damaged: false, Type: domain.VehicleTypeCar},
		{ID: 2, Name: "Honda Accord", Model: "2023", Number: "EF456GH", RentCost: 2800, Available: false, Damaged: true, Type: domain.VehicleTypeCar},
		{ID: 3, Name: "Ford Mustang", Model: "2024", Number: "IJ789KL", RentCost: 4500, Available: true, Damaged: false, Type: domain.VehicleTypeCar},
	}
}

// AdminBikes is the admin dashboard's demo bike fleet. IDs overlap with
// the cars; the two lists are kept separate, exactly like the live
// cars/bikes split.
func AdminBikes() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 1, Name: "Honda CBR", Model: "2023", Number: "XY789Z", RentCost: 800, Available: true, Damaged: false, Type: domain.VehicleTypeBike},
		{ID: 2, Name: "Yamaha R1", Model: "2023", Number: "PQ456R", RentCost: 1200, Available: true, Damaged: false, Type: domain.VehicleTypeBike},
		{ID: 3, Name: "Kawasaki Ninja", Model: "2024", Number: "ST123U", RentCost: 1500, Available: false, Damaged: true, Type: domain.VehicleTypeBike},
	}
}

// Payments is the admin demo payment ledger.
func Payments() []domain.Payment {
	return []domain.Payment{
		{ID: 1, User: "John Doe", Amount: 5000, Date: "2024-01-20", Status: domain.PaymentStatusPending},
		{ID: 2, User: "Jane Smith", Amount: 2800, Date: "2024-01-19", Status: domain.PaymentStatusCompleted},
		{ID: 3, User: "Mike Johnson", Amount: 7500, Date: "2024-01-21", Status: domain.PaymentStatusPending},
	}
}

// Offers is the admin demo offer list.
func Offers() []domain.Offer {
	return []domain.Offer{
		{ID: 1, Title: "New Year Offer", Discount: "15%", ValidTill: "2024-01-31", Active: true},
		{ID: 2, Title: "Weekend Special", Discount: "10%", ValidTill: "2024-02-05", Active: true},
		{ID: 3, Title: "Winter Discount", Discount: "20%", ValidTill: "2024-02-15", Active: false},
	}
}

// Users is the admin demo user roster.
func Users() []domain.User {
	return []domain.User{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com", JoinDate: "2024-01-15", TotalBookings: 5, Role: domain.RoleUser},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@example.com", JoinDate: "2024-02-10", TotalBookings: 3, Role: domain.RoleUser},
		{ID: 3, Name: "Admin User", Email: "admin@rentx.com", JoinDate: "2024-01-01", TotalBookings: 0, Role: domain.RoleAdmin},
	}
}

// Rentals is the admin demo rental book.
func Rentals() []domain.Rental {
	return []domain.Rental{
		{
			ID: 1, UserID: 1, UserName: "John Doe", UserEmail: "john.doe@example.com",
			VehicleID: 1, VehicleName: "Toyota Camry", VehicleType: domain.VehicleTypeCar,
			StartDate: "2024-01-25", EndDate: "2024-01-28", TotalCost: 7500,
			Status: domain.RentalStatusPending, PickupLocation: "Bangalore", BookingDate: "2024-01-20",
		},
		{
			ID: 2, UserID: 2, UserName: "Jane Smith", UserEmail: "jane.smith@example.com",
			VehicleID: 4, VehicleName: "Honda CBR", VehicleType: domain.VehicleTypeBike,
			StartDate: "2024-01-26", EndDate: "2024-01-30", TotalCost: 3200,
			Status: domain.RentalStatusConfirmed, PickupLocation: "Mumbai", BookingDate: "2024-01-21",
		},
		{
			ID: 3, UserID: 1, UserName: "John Doe", UserEmail: "john.doe@example.com",
			VehicleID: 3, VehicleName: "Ford Mustang", VehicleType: domain.VehicleTypeCar,
			StartDate: "2024-02-01", EndDate: "2024-02-05", TotalCost: 18000,
			Status: domain.RentalStatusPending, PickupLocation: "Delhi", BookingDate: "2024-01-22",
		},
	}
}

// FallbackVehicles is the user dashboard's smaller vehicle fallback.
func FallbackVehicles() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 1, Name: "Toyota Camry", Model: "2023", Number: "AB123CD", RentCost: 2500, Type: domain.VehicleTypeCar, Available: true, Damaged: false},
		{ID: 2, Name: "Honda CBR", Model: "2023", Number: "XY789Z", RentCost: 1200, Type: domain.VehicleTypeBike, Available: true, Damaged: false},
	}
}

// FallbackOffers is the user dashboard's offer fallback.
func FallbackOffers() []domain.Offer {
	return []domain.Offer{
		{ID: 1, Title: "New Year Special", Discount: "15% OFF", ValidTill: "2024-12-31", Active: true, Description: "Get 15% off on all vehicle rentals"},
		{ID: 2, Title: "Weekend Discount", Discount: "10% OFF", ValidTill: "2024-12-15", Active: true, Description: "Special weekend rates for all customers"},
	}
}
