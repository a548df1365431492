package dashboard

import (
	"fmt"
	"time"

	"rentx-client/internal/domain"
	"rentx-client/internal/session"
)

// ContactForm is the landing page's contact buffer.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// RentalForm is the landing page's quick-rental buffer.
type RentalForm struct {
	VehicleType string // "car" or "bike"
	StartDate   string
	EndDate     string
	Location    string
}

// MainPageState is the landing page's state record.
type MainPageState struct {
	User            *domain.User
	IsAuthenticated bool
	Loading         bool

	Contact    ContactForm
	Submitting bool

	Rental          RentalForm
	ShowRentalModal bool
}

// MainPage drives the landing page: session display, the contact form,
// and the quick-rental entry points. Neither form talks to the backend;
// both submissions are simulated with a short delay.
type MainPage struct {
	sessions *session.Store
	notify   Notifier
	state    MainPageState

	contactDelay time.Duration
	rentalDelay  time.Duration
}

func NewMainPage(sessions *session.Store, notify Notifier) *MainPage {
	return &MainPage{
		sessions: sessions,
		notify:   notify,
		state:    MainPageState{Loading: true},

		contactDelay: time.Second,
		rentalDelay:  1500 * time.Millisecond,
	}
}

// State returns a snapshot of the current page state.
func (m *MainPage) State() MainPageState {
	return m.state
}

// Load reads the stored session at mount. Corrupt session data has
// already been cleared by the store and shows as logged out.
func (m *MainPage) Load() error {
	sess, err := m.sessions.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		m.state.User = nil
		m.state.IsAuthenticated = false
	} else {
		m.state.User = &sess.User
		m.state.IsAuthenticated = true
	}
	m.state.Loading = false
	return nil
}

// Logout destroys the session and routes back to the landing page.
func (m *MainPage) Logout() session.Route {
	m.sessions.Clear()
	m.state.User = nil
	m.state.IsAuthenticated = false
	return session.RouteHome
}

// Dashboard routes to the signed-in user's dashboard.
func (m *MainPage) Dashboard() session.Route {
	if !m.state.IsAuthenticated || m.state.User == nil {
		return session.RouteLogin
	}
	return session.RouteForRole(m.state.User.Role)
}

// RentCar starts a car rental. Unauthenticated visitors are sent to the
// login screen and admins to their dashboard; everyone else gets the
// quick-rental modal. The empty route means no navigation happens.
func (m *MainPage) RentCar() session.Route {
	return m.startRental("car")
}

// RentBike starts a bike rental, same gating as RentCar.
func (m *MainPage) RentBike() session.Route {
	return m.startRental("bike")
}

func (m *MainPage) startRental(vehicleType string) session.Route {
	if !m.state.IsAuthenticated {
		return session.RouteLogin
	}
	if m.state.User != nil && m.state.User.Role == domain.RoleAdmin {
		return session.RouteAdminDashboard
	}
	m.state.Rental.VehicleType = vehicleType
	m.state.ShowRentalModal = true
	return ""
}

// VehicleCategory routes a category tile click to the vehicles tab of
// the right dashboard. The returned filter ("cars" or "bikes") only
// applies on the user dashboard.
func (m *MainPage) VehicleCategory(category string) (session.Route, string) {
	if !m.state.IsAuthenticated {
		return session.RouteLogin, ""
	}
	if m.state.User != nil && m.state.User.Role == domain.RoleAdmin {
		return session.RouteAdminDashboard, ""
	}
	filter := "cars"
	if category == "bikes" {
		filter = "bikes"
	}
	return session.RouteUserDashboard, filter
}

// EditContactForm mutates the contact buffer.
func (m *MainPage) EditContactForm(mutate func(*ContactForm)) {
	mutate(&m.state.Contact)
}

// SubmitContact simulates the contact submission and resets the buffer.
func (m *MainPage) SubmitContact() {
	m.state.Submitting = true
	time.Sleep(m.contactDelay)
	m.notify.Alert("Thank you for your message! We'll get back to you soon.")
	m.state.Contact = ContactForm{}
	m.state.Submitting = false
}

// EditRentalForm mutates the quick-rental buffer.
func (m *MainPage) EditRentalForm(mutate func(*RentalForm)) {
	mutate(&m.state.Rental)
}

// CloseRentalModal abandons the quick rental.
func (m *MainPage) CloseRentalModal() {
	m.state.ShowRentalModal = false
	m.state.Rental = RentalForm{}
}

// SubmitRental simulates the quick-rental booking, then routes to the
// user dashboard. Authentication is re-checked at submit time.
func (m *MainPage) SubmitRental() session.Route {
	if !m.state.IsAuthenticated {
		return session.RouteLogin
	}

	time.Sleep(m.rentalDelay)
	m.notify.Alert(fmt.Sprintf("Your %s rental has been booked successfully!", m.state.Rental.VehicleType))

	m.state.Rental = RentalForm{}
	m.state.ShowRentalModal = false
	return session.RouteUserDashboard
}
