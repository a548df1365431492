// Package dashboard holds the per-screen view-models: the UI-visible state
// records and the action handlers that mutate them, either optimistically
// (demo mode) or through a backend round-trip (connected mode). Rendering
// is left to the caller; the view-models only own state and workflows.
package dashboard

import (
	"rentx-client/internal/domain"
)

// Notifier surfaces the blocking alerts the workflows raise. The terminal
// frontend prints them; tests capture them.
type Notifier interface {
	Alert(msg string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

// splitVehicles separates a flat, type-tagged fleet back into the
// cars/bikes lists the admin screen works with.
func splitVehicles(vehicles []domain.Vehicle) (cars, bikes []domain.Vehicle) {
	for _, v := range vehicles {
		switch v.Type {
		case domain.VehicleTypeCar:
			cars = append(cars, v)
		case domain.VehicleTypeBike:
			bikes = append(bikes, v)
		}
	}
	return cars, bikes
}
