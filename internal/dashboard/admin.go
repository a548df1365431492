package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"rentx-client/internal/domain"
	"rentx-client/internal/email"
	"rentx-client/internal/fixtures"
	"rentx-client/internal/gateway"
	"rentx-client/internal/logger"
	"rentx-client/internal/reconcile"
)

// ErrNoVehicleSelected rejects a damage report submitted without picking
// a vehicle first.
var ErrNoVehicleSelected = errors.New("no vehicle selected")

// AdminGateway is the slice of the remote data gateway the admin screen
// consumes.
type AdminGateway interface {
	Probe(ctx context.Context) gateway.BackendStatus
	FetchVehicles(ctx context.Context) ([]domain.Vehicle, error)
	FetchPayments(ctx context.Context) ([]domain.Payment, error)
	FetchOffers(ctx context.Context) ([]domain.Offer, error)
	FetchUsers(ctx context.Context) ([]domain.User, error)
	FetchRentals(ctx context.Context) ([]domain.Rental, error)
	CreateVehicle(ctx context.Context, v domain.Vehicle) error
	CreateOffer(ctx context.Context, o domain.Offer) error
	ApprovePayment(ctx context.Context, id int) error
	RejectPayment(ctx context.Context, id int) error
	MarkDamaged(ctx context.Context, id int) error
	MarkRepaired(ctx context.Context, id int) error
	ConfirmRental(ctx context.Context, id int) error
	RejectRental(ctx context.Context, id int) error
	CompleteRental(ctx context.Context, id int) error
}

// VehicleForm is the add-vehicle input buffer.
type VehicleForm struct {
	Type      string // "car" or "bike"
	Name      string
	Model     string
	Number    string
	RentCost  int
	Available bool
	Damaged   bool
}

func defaultVehicleForm() VehicleForm {
	return VehicleForm{Type: "car", Available: true}
}

// OfferForm is the add-offer input buffer.
type OfferForm struct {
	Title     string
	Discount  string
	ValidTill string
	Active    bool
}

func defaultOfferForm() OfferForm {
	return OfferForm{Active: true}
}

// AdminState is the admin screen's single state record. Handlers mutate it
// through Admin.update, a last-writer-wins merge; nothing else touches it.
type AdminState struct {
	ActiveTab       string
	ActiveRentalTab string // pending, confirmed, completed

	Cars     []domain.Vehicle
	Bikes    []domain.Vehicle
	Payments []domain.Payment
	Offers   []domain.Offer
	Users    []domain.User
	Rentals  []domain.Rental

	ShowAddVehicleForm bool
	ShowAddOfferForm   bool
	ShowDamageModal    bool
	ShowRentalModal    bool

	SelectedType      string // "cars" or "bikes"
	SelectedVehicleID string
	SelectedRental    *domain.Rental

	Loading       bool
	Error         string
	BackendStatus gateway.BackendStatus

	NewVehicle VehicleForm
	NewOffer   OfferForm
}

// AdminStats is the overview tab's derived summary.
type AdminStats struct {
	TotalUsers        int
	TotalCars         int
	AvailableCars     int
	DamagedCars       int
	TotalBikes        int
	AvailableBikes    int
	DamagedBikes      int
	PendingPayments   int
	CompletedPayments int
	PendingRentals    int
	ConfirmedRentals  int
	TotalRentals      int
}

// Admin drives the admin dashboard.
type Admin struct {
	gw     AdminGateway
	email  email.Sender
	notify Notifier
	state  AdminState
}

func NewAdmin(gw AdminGateway, sender email.Sender, notify Notifier) *Admin {
	return &Admin{
		gw:     gw,
		email:  sender,
		notify: notify,
		state: AdminState{
			ActiveTab:       "overview",
			ActiveRentalTab: "pending",
			SelectedType:    "cars",
			BackendStatus:   gateway.StatusChecking,
			NewVehicle:      defaultVehicleForm(),
			NewOffer:        defaultOfferForm(),
		},
	}
}

// State returns a snapshot of the current screen state.
func (a *Admin) State() AdminState {
	return a.state
}

func (a *Admin) update(mutate func(*AdminState)) {
	mutate(&a.state)
}

func (a *Admin) demoMode() bool {
	return a.state.BackendStatus == gateway.StatusDisconnected
}

// Load probes the backend and fetches all five resources concurrently.
// If any single fetch fails the whole screen drops to demo mode; there is
// no per-resource fallback on this screen. Resolution happens once per
// load; only an explicit Refresh re-probes.
func (a *Admin) Load(ctx context.Context) {
	a.update(func(s *AdminState) {
		s.Loading = true
		s.Error = ""
	})

	status := a.gw.Probe(ctx)
	a.update(func(s *AdminState) { s.BackendStatus = status })

	var (
		vehicles []domain.Vehicle
		payments []domain.Payment
		offers   []domain.Offer
		users    []domain.User
		rentals  []domain.Rental
	)

	source := reconcile.ResolveScreen(status == gateway.StatusDisconnected, func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { vehicles, err = a.gw.FetchVehicles(gctx); return })
		g.Go(func() (err error) { payments, err = a.gw.FetchPayments(gctx); return })
		g.Go(func() (err error) { offers, err = a.gw.FetchOffers(gctx); return })
		g.Go(func() (err error) { users, err = a.gw.FetchUsers(gctx); return })
		g.Go(func() (err error) { rentals, err = a.gw.FetchRentals(gctx); return })
		return g.Wait()
	})

	if source == reconcile.SourceDemo {
		a.update(func(s *AdminState) { s.BackendStatus = gateway.StatusDisconnected })
		a.useDemoData()
	} else {
		cars, bikes := splitVehicles(vehicles)
		a.update(func(s *AdminState) {
			s.Cars = cars
			s.Bikes = bikes
			s.Payments = payments
			s.Offers = offers
			s.Users = users
			s.Rentals = rentals
		})
	}

	a.update(func(s *AdminState) { s.Loading = false })
}

// Refresh is the manual re-probe action.
func (a *Admin) Refresh(ctx context.Context) {
	a.Load(ctx)
}

func (a *Admin) useDemoData() {
	logger.WithScreen("admin").Info("Using demo data for admin dashboard")
	a.update(func(s *AdminState) {
		s.Cars = fixtures.AdminCars()
		s.Bikes = fixtures.AdminBikes()
		s.Payments = fixtures.Payments()
		s.Offers = fixtures.Offers()
		s.Users = fixtures.Users()
		s.Rentals = fixtures.Rentals()
	})
}

// Tab and modal plumbing.

func (a *Admin) SetActiveTab(tab string) {
	a.update(func(s *AdminState) { s.ActiveTab = tab })
}

func (a *Admin) SetRentalTab(tab string) {
	a.update(func(s *AdminState) { s.ActiveRentalTab = tab })
}

func (a *Admin) OpenAddVehicleForm() {
	a.update(func(s *AdminState) { s.ShowAddVehicleForm = true })
}

func (a *Admin) CloseAddVehicleForm() {
	a.update(func(s *AdminState) { s.ShowAddVehicleForm = false })
}

func (a *Admin) OpenAddOfferForm() {
	a.update(func(s *AdminState) { s.ShowAddOfferForm = true })
}

func (a *Admin) CloseAddOfferForm() {
	a.update(func(s *AdminState) { s.ShowAddOfferForm = false })
}

func (a *Admin) OpenDamageModal() {
	a.update(func(s *AdminState) { s.ShowDamageModal = true })
}

func (a *Admin) CloseDamageModal() {
	a.update(func(s *AdminState) {
		s.ShowDamageModal = false
		s.SelectedVehicleID = ""
	})
}

func (a *Admin) SetSelectedType(listKey string) {
	a.update(func(s *AdminState) { s.SelectedType = listKey })
}

func (a *Admin) SelectVehicle(id string) {
	a.update(func(s *AdminState) { s.SelectedVehicleID = id })
}

// ViewRentalDetails opens the details modal for a rental.
func (a *Admin) ViewRentalDetails(r domain.Rental) {
	a.update(func(s *AdminState) {
		s.SelectedRental = &r
		s.ShowRentalModal = true
	})
}

func (a *Admin) CloseRentalModal() {
	a.update(func(s *AdminState) {
		s.ShowRentalModal = false
		s.SelectedRental = nil
	})
}

// EditVehicleForm mutates the add-vehicle buffer.
func (a *Admin) EditVehicleForm(mutate func(*VehicleForm)) {
	a.update(func(s *AdminState) { mutate(&s.NewVehicle) })
}

// EditOfferForm mutates the add-offer buffer.
func (a *Admin) EditOfferForm(mutate func(*OfferForm)) {
	a.update(func(s *AdminState) { mutate(&s.NewOffer) })
}

// SubmitVehicle creates the vehicle from the form buffer. In demo mode it
// is appended locally with a len+1 ID; connected mode POSTs and re-fetches.
// The form buffer and modal are reset either way.
func (a *Admin) SubmitVehicle(ctx context.Context) {
	form := a.state.NewVehicle

	vehicleType := domain.VehicleTypeCar
	if form.Type == "bike" {
		vehicleType = domain.VehicleTypeBike
	}
	v := domain.Vehicle{
		Type:      vehicleType,
		Name:      form.Name,
		Model:     form.Model,
		Number:    form.Number,
		RentCost:  form.RentCost,
		Available: form.Available,
		Damaged:   form.Damaged,
	}

	if a.demoMode() {
		a.update(func(s *AdminState) {
			if vehicleType == domain.VehicleTypeCar {
				v.ID = len(s.Cars) + 1
				s.Cars = append(s.Cars, v)
			} else {
				v.ID = len(s.Bikes) + 1
				s.Bikes = append(s.Bikes, v)
			}
		})
		a.notify.Alert("DEMO: New vehicle added!")
	} else {
		if err := a.gw.CreateVehicle(ctx, v); err != nil {
			a.notify.Alert("Failed to add vehicle")
		} else {
			a.notify.Alert("Vehicle added successfully!")
			a.refreshVehicles(ctx)
		}
	}

	a.update(func(s *AdminState) {
		s.ShowAddVehicleForm = false
		s.NewVehicle = defaultVehicleForm()
	})
}

// SubmitOffer creates the offer from the form buffer.
func (a *Admin) SubmitOffer(ctx context.Context) {
	form := a.state.NewOffer
	o := domain.Offer{
		Title:     form.Title,
		Discount:  form.Discount,
		ValidTill: form.ValidTill,
		Active:    form.Active,
	}

	if a.demoMode() {
		a.update(func(s *AdminState) {
			o.ID = len(s.Offers) + 1
			s.Offers = append(s.Offers, o)
		})
		a.notify.Alert("DEMO: New offer added!")
	} else {
		if err := a.gw.CreateOffer(ctx, o); err != nil {
			a.notify.Alert("Failed to add offer")
		} else {
			a.notify.Alert("Offer added successfully!")
			a.refreshOffers(ctx)
		}
	}

	a.update(func(s *AdminState) {
		s.ShowAddOfferForm = false
		s.NewOffer = defaultOfferForm()
	})
}

// ApprovePayment moves a pending payment to completed. Connected mode
// requires backend acknowledgment before the view changes.
func (a *Admin) ApprovePayment(ctx context.Context, id int) {
	a.settlePayment(ctx, id, domain.PaymentStatusCompleted)
}

// RejectPayment moves a pending payment to rejected.
func (a *Admin) RejectPayment(ctx context.Context, id int) {
	a.settlePayment(ctx, id, domain.PaymentStatusRejected)
}

func (a *Admin) settlePayment(ctx context.Context, id int, to domain.PaymentStatus) {
	verb, past := "approve", "approved"
	call := a.gw.ApprovePayment
	if to == domain.PaymentStatusRejected {
		verb, past = "reject", "rejected"
		call = a.gw.RejectPayment
	}

	if a.demoMode() {
		a.update(func(s *AdminState) {
			for i, p := range s.Payments {
				if p.ID == id && p.Status.CanTransition(to) {
					s.Payments[i].Status = to
				}
			}
		})
		a.notify.Alert(fmt.Sprintf("DEMO: Payment %d %s", id, past))
		return
	}

	if err := call(ctx, id); err != nil {
		a.notify.Alert(fmt.Sprintf("Failed to %s payment", verb))
		return
	}
	a.notify.Alert(fmt.Sprintf("Payment %d %s!", id, past))
	a.refreshPayments(ctx)
}

// ReportDamage marks the selected vehicle damaged. Submitting without a
// selection is an invalid input and mutates nothing.
func (a *Admin) ReportDamage(ctx context.Context) error {
	if a.state.SelectedVehicleID == "" {
		return ErrNoVehicleSelected
	}
	id, err := strconv.Atoi(a.state.SelectedVehicleID)
	if err != nil {
		return ErrNoVehicleSelected
	}

	if a.demoMode() {
		listKey := a.state.SelectedType
		a.update(func(s *AdminState) {
			for i, v := range *a.listFor(s, listKey) {
				if v.ID == id {
					(*a.listFor(s, listKey))[i].Damaged = true
				}
			}
		})
		a.notify.Alert("DEMO: Vehicle marked as damaged!")
	} else {
		if err := a.gw.MarkDamaged(ctx, id); err != nil {
			a.notify.Alert("Failed to mark vehicle as damaged")
		} else {
			a.notify.Alert("Vehicle marked as damaged!")
			a.refreshVehicles(ctx)
		}
	}

	a.CloseDamageModal()
	return nil
}

// Repair clears a vehicle's damaged flag.
func (a *Admin) Repair(ctx context.Context, listKey string, id int) {
	if a.demoMode() {
		a.update(func(s *AdminState) {
			for i, v := range *a.listFor(s, listKey) {
				if v.ID == id {
					(*a.listFor(s, listKey))[i].Damaged = false
				}
			}
		})
		a.notify.Alert("DEMO: Vehicle marked as repaired!")
		return
	}

	if err := a.gw.MarkRepaired(ctx, id); err != nil {
		a.notify.Alert("Failed to mark vehicle as repaired")
		return
	}
	a.notify.Alert("Vehicle marked as repaired!")
	a.refreshVehicles(ctx)
}

func (a *Admin) listFor(s *AdminState, listKey string) *[]domain.Vehicle {
	if listKey == "bikes" {
		return &s.Bikes
	}
	return &s.Cars
}

// DamageCandidates lists the undamaged vehicles of the selected type,
// the only valid targets for a damage report.
func (a *Admin) DamageCandidates() []domain.Vehicle {
	var out []domain.Vehicle
	for _, v := range *a.listFor(&a.state, a.state.SelectedType) {
		if !v.Damaged {
			out = append(out, v)
		}
	}
	return out
}

// ConfirmRental moves a pending rental to confirmed and closes the
// details modal.
func (a *Admin) ConfirmRental(ctx context.Context, id int) {
	a.transitionRental(ctx, id, domain.RentalStatusConfirmed, a.gw.ConfirmRental,
		fmt.Sprintf("DEMO: Rental #%d confirmed!", id),
		fmt.Sprintf("Rental #%d confirmed successfully!", id),
		"Failed to confirm rental")
	a.CloseRentalModal()
}

// RejectRental moves a pending rental to rejected and closes the details
// modal.
func (a *Admin) RejectRental(ctx context.Context, id int) {
	a.transitionRental(ctx, id, domain.RentalStatusRejected, a.gw.RejectRental,
		fmt.Sprintf("DEMO: Rental #%d rejected!", id),
		fmt.Sprintf("Rental #%d rejected!", id),
		"Failed to reject rental")
	a.CloseRentalModal()
}

// CompleteRental moves a confirmed rental to completed.
func (a *Admin) CompleteRental(ctx context.Context, id int) {
	a.transitionRental(ctx, id, domain.RentalStatusCompleted, a.gw.CompleteRental,
		fmt.Sprintf("DEMO: Rental #%d marked as completed!", id),
		fmt.Sprintf("Rental #%d completed!", id),
		"Failed to complete rental")
}

func (a *Admin) transitionRental(ctx context.Context, id int, to domain.RentalStatus,
	call func(context.Context, int) error, demoMsg, okMsg, failMsg string) {

	if a.demoMode() {
		a.update(func(s *AdminState) {
			for i, r := range s.Rentals {
				if r.ID == id && r.Status.CanTransition(to) {
					s.Rentals[i].Status = to
				}
			}
		})
		a.notify.Alert(demoMsg)
		return
	}

	if err := call(ctx, id); err != nil {
		a.notify.Alert(failMsg)
		return
	}
	a.notify.Alert(okMsg)
	a.refreshRentals(ctx)
}

// SendConfirmationEmail delivers the rental confirmation to the renter.
func (a *Admin) SendConfirmationEmail(ctx context.Context, rental domain.Rental) {
	if err := a.email.SendRentalConfirmation(ctx, rental); err != nil {
		logger.WithScreen("admin").Error("Confirmation email failed", "rental_id", rental.ID, "error", err)
		a.notify.Alert("Failed to send confirmation email")
		return
	}
	a.notify.Alert(fmt.Sprintf("Confirmation email sent to %s", rental.UserEmail))
}

// RentalsByStatus filters the rental book for one sub-tab.
func (a *Admin) RentalsByStatus(status domain.RentalStatus) []domain.Rental {
	var out []domain.Rental
	for _, r := range a.state.Rentals {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// DamagedVehicles lists all damaged vehicles across both fleets.
func (a *Admin) DamagedVehicles() []domain.Vehicle {
	var out []domain.Vehicle
	for _, v := range append(append([]domain.Vehicle{}, a.state.Cars...), a.state.Bikes...) {
		if v.Damaged {
			out = append(out, v)
		}
	}
	return out
}

// Stats derives the overview summary from current state.
func (a *Admin) Stats() AdminStats {
	s := a.state
	stats := AdminStats{
		TotalUsers:   len(s.Users),
		TotalCars:    len(s.Cars),
		TotalBikes:   len(s.Bikes),
		TotalRentals: len(s.Rentals),
	}
	for _, c := range s.Cars {
		if c.Rentable() {
			stats.AvailableCars++
		}
		if c.Damaged {
			stats.DamagedCars++
		}
	}
	for _, b := range s.Bikes {
		if b.Rentable() {
			stats.AvailableBikes++
		}
		if b.Damaged {
			stats.DamagedBikes++
		}
	}
	for _, p := range s.Payments {
		switch p.Status {
		case domain.PaymentStatusPending:
			stats.PendingPayments++
		case domain.PaymentStatusCompleted:
			stats.CompletedPayments++
		}
	}
	for _, r := range s.Rentals {
		switch r.Status {
		case domain.RentalStatusPending:
			stats.PendingRentals++
		case domain.RentalStatusConfirmed:
			stats.ConfirmedRentals++
		}
	}
	return stats
}

func (a *Admin) refreshVehicles(ctx context.Context) {
	vehicles, err := a.gw.FetchVehicles(ctx)
	if err != nil {
		logger.WithScreen("admin").Warn("Vehicle refresh failed", "error", err)
		return
	}
	cars, bikes := splitVehicles(vehicles)
	a.update(func(s *AdminState) {
		s.Cars = cars
		s.Bikes = bikes
	})
}

func (a *Admin) refreshPayments(ctx context.Context) {
	payments, err := a.gw.FetchPayments(ctx)
	if err != nil {
		logger.WithScreen("admin").Warn("Payment refresh failed", "error", err)
		return
	}
	a.update(func(s *AdminState) { s.Payments = payments })
}

func (a *Admin) refreshOffers(ctx context.Context) {
	offers, err := a.gw.FetchOffers(ctx)
	if err != nil {
		logger.WithScreen("admin").Warn("Offer refresh failed", "error", err)
		return
	}
	a.update(func(s *AdminState) { s.Offers = offers })
}

func (a *Admin) refreshRentals(ctx context.Context) {
	rentals, err := a.gw.FetchRentals(ctx)
	if err != nil {
		logger.WithScreen("admin").Warn("Rental refresh failed", "error", err)
		return
	}
	a.update(func(s *AdminState) { s.Rentals = rentals })
}
