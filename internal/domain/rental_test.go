package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from RentalStatus
		to   RentalStatus
		want bool
	}{
		{"pending to confirmed", RentalStatusPending, RentalStatusConfirmed, true},
		{"pending to rejected", RentalStatusPending, RentalStatusRejected, true},
		{"pending to completed", RentalStatusPending, RentalStatusCompleted, false},
		{"confirmed to completed", RentalStatusConfirmed, RentalStatusCompleted, true},
		{"confirmed to rejected", RentalStatusConfirmed, RentalStatusRejected, false},
		{"confirmed to pending", RentalStatusConfirmed, RentalStatusPending, false},
		{"rejected is terminal", RentalStatusRejected, RentalStatusConfirmed, false},
		{"completed is terminal", RentalStatusCompleted, RentalStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}
