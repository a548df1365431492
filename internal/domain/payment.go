package domain

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

// CanTransition reports whether a payment may move to the given status.
// Completed and rejected are terminal.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return s == PaymentStatusPending &&
		(to == PaymentStatusCompleted || to == PaymentStatusRejected)
}

type Payment struct {
	ID     int           `json:"id"`
	User   string        `json:"user"`
	Amount int           `json:"amount"`
	Date   string        `json:"date"`
	Status PaymentStatus `json:"status"`
}
