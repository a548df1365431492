package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentx-client/internal/domain"
	"rentx-client/internal/fixtures"
	"rentx-client/internal/gateway"
	"rentx-client/internal/reconcile"
	"rentx-client/internal/session"
)

// ErrNotAuthenticated means no usable session exists; the caller routes
// back to the login screen.
var ErrNotAuthenticated = errors.New("not authenticated")

// UserGateway is the slice of the remote data gateway the user screen
// consumes.
type UserGateway interface {
	FetchVehicles(ctx context.Context) ([]domain.Vehicle, error)
	FetchOffers(ctx context.Context) ([]domain.Offer, error)
	CreateBooking(ctx context.Context, token string, r domain.BookingRequest) (*domain.BookingConfirmation, error)
}

// PaymentForm is the payment modal's input buffer. Amount is fixed from
// the selected vehicle and not user-editable.
type PaymentForm struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	CardHolder string
	Amount     int
}

// UserState is the user screen's single state record.
type UserState struct {
	ActiveTab     string
	VehicleFilter string // "cars" or "bikes"

	AvailableVehicles []domain.Vehicle
	ActiveOffers      []domain.Offer

	VehiclesSource reconcile.Source
	OffersSource   reconcile.Source

	SelectedVehicle  *domain.Vehicle
	ShowPaymentModal bool
	Payment          PaymentForm

	User    domain.User
	Loading bool
	Error   string
}

// UserStats is the dashboard tab's derived summary.
type UserStats struct {
	AvailableCars  int
	AvailableBikes int
	ActiveOffers   int
	TotalBookings  int
}

// User drives the customer dashboard.
type User struct {
	gw       UserGateway
	sessions *session.Store
	notify   Notifier
	state    UserState

	// fetchGap separates the two resource loads; processingDelay simulates
	// payment processing. Both are shortened to zero in tests.
	fetchGap        time.Duration
	processingDelay time.Duration
}

func NewUser(gw UserGateway, sessions *session.Store, notify Notifier) *User {
	return &User{
		gw:       gw,
		sessions: sessions,
		notify:   notify,
		state: UserState{
			ActiveTab:     "dashboard",
			VehicleFilter: "cars",
		},
		fetchGap:        100 * time.Millisecond,
		processingDelay: 2 * time.Second,
	}
}

// State returns a snapshot of the current screen state.
func (u *User) State() UserState {
	return u.state
}

func (u *User) update(mutate func(*UserState)) {
	mutate(&u.state)
}

// Load verifies the session, then fetches vehicles and offers one after
// the other with a short gap. Unlike the admin screen, each resource
// falls back to its demo set independently.
func (u *User) Load(ctx context.Context) error {
	sess, err := u.sessions.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNotAuthenticated
	}

	u.update(func(s *UserState) {
		s.User = sess.User
		s.Loading = true
		s.Error = ""
	})

	vehicles := reconcile.Resolve(false, func() ([]domain.Vehicle, error) {
		return u.gw.FetchVehicles(ctx)
	}, fixtures.FallbackVehicles())
	u.update(func(s *UserState) {
		s.AvailableVehicles = rentableOnly(vehicles.Data)
		s.VehiclesSource = vehicles.Source
		if vehicles.Source == reconcile.SourceDemo {
			s.Error = "Failed to load vehicles from backend."
		}
	})

	time.Sleep(u.fetchGap)

	// Offers are stored as fetched; inactive ones stay visible and count
	// toward the offer stat.
	offers := reconcile.Resolve(false, func() ([]domain.Offer, error) {
		return u.gw.FetchOffers(ctx)
	}, fixtures.FallbackOffers())
	u.update(func(s *UserState) {
		s.ActiveOffers = offers.Data
		s.OffersSource = offers.Source
		s.Loading = false
	})

	return nil
}

func rentableOnly(vehicles []domain.Vehicle) []domain.Vehicle {
	var out []domain.Vehicle
	for _, v := range vehicles {
		if v.Rentable() {
			out = append(out, v)
		}
	}
	return out
}

func (u *User) SetActiveTab(tab string) {
	u.update(func(s *UserState) { s.ActiveTab = tab })
}

func (u *User) SetVehicleFilter(filter string) {
	u.update(func(s *UserState) { s.VehicleFilter = filter })
}

// FilteredVehicles returns the rentable vehicles matching the current
// cars/bikes filter.
func (u *User) FilteredVehicles() []domain.Vehicle {
	want := domain.VehicleTypeCar
	if u.state.VehicleFilter == "bikes" {
		want = domain.VehicleTypeBike
	}
	var out []domain.Vehicle
	for _, v := range u.state.AvailableVehicles {
		if v.Type == want {
			out = append(out, v)
		}
	}
	return out
}

// RentClick opens the payment modal for a vehicle with the amount fixed
// to its rent cost.
func (u *User) RentClick(v domain.Vehicle) {
	u.update(func(s *UserState) {
		s.SelectedVehicle = &v
		s.ShowPaymentModal = true
		s.Payment = PaymentForm{Amount: v.RentCost}
	})
}

// EditPaymentForm mutates the payment buffer.
func (u *User) EditPaymentForm(mutate func(*PaymentForm)) {
	u.update(func(s *UserState) { mutate(&s.Payment) })
}

// ClosePaymentModal abandons the payment and clears the buffer.
func (u *User) ClosePaymentModal() {
	u.update(func(s *UserState) {
		s.ShowPaymentModal = false
		s.SelectedVehicle = nil
		s.Payment = PaymentForm{}
	})
}

// SubmitPayment validates the card fields, then submits the combined
// booking+payment request with the session token. Validation is presence
// only; no card number checks are performed. Success closes the modal and
// clears the buffer; failure leaves the modal open for another attempt.
func (u *User) SubmitPayment(ctx context.Context) {
	form := u.state.Payment
	if form.CardNumber == "" || form.ExpiryDate == "" || form.CVV == "" || form.CardHolder == "" {
		u.notify.Alert("Please fill all payment details")
		return
	}
	vehicle := u.state.SelectedVehicle
	if vehicle == nil {
		return
	}

	time.Sleep(u.processingDelay)

	sess, err := u.sessions.Load()
	if err != nil || sess == nil {
		u.notify.Alert("Payment failed. Error: session expired - please log in again")
		return
	}

	now := time.Now()
	req := domain.BookingRequest{
		VehicleID:     vehicle.ID,
		StartDate:     now.Format(time.RFC3339),
		EndDate:       now.Add(24 * time.Hour).Format(time.RFC3339),
		PaymentAmount: form.Amount,
		PaymentMethod: "Credit Card",
	}

	confirmation, err := u.gw.CreateBooking(ctx, sess.Token, req)
	if err != nil {
		u.notify.Alert(fmt.Sprintf("Payment failed. Error: %s", bookingErrorText(err)))
		return
	}

	u.notify.Alert(fmt.Sprintf("Payment successful! You have rented %s (%s)!\nBooking ID: %s\nAmount Paid: ₹%d",
		vehicle.Name, vehicle.Model, confirmation.ID, form.Amount))
	u.ClosePaymentModal()
}

// bookingErrorText prefers the backend's message body over the transport
// error string.
func bookingErrorText(err error) string {
	var statusErr *gateway.HTTPError
	if errors.As(err, &statusErr) && statusErr.Body != "" {
		return statusErr.Body
	}
	return err.Error()
}

// Stats derives the dashboard tab's summary from current state.
func (u *User) Stats() UserStats {
	stats := UserStats{
		ActiveOffers:  len(u.state.ActiveOffers),
		TotalBookings: u.state.User.TotalBookings,
	}
	for _, v := range u.state.AvailableVehicles {
		switch v.Type {
		case domain.VehicleTypeCar:
			stats.AvailableCars++
		case domain.VehicleTypeBike:
			stats.AvailableBikes++
		}
	}
	return stats
}
