package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentx-client/internal/domain"
	"rentx-client/internal/session"
)

func newTestMainPage(t *testing.T, user *domain.User) (*MainPage, *alertRecorder, *session.Store) {
	t.Helper()
	sessions := session.NewStore(session.NewMemoryStorage())
	if user != nil {
		require.NoError(t, sessions.Save("t1", *user))
	}

	alerts := &alertRecorder{}
	page := NewMainPage(sessions, alerts)
	page.contactDelay = 0
	page.rentalDelay = 0
	require.NoError(t, page.Load())
	return page, alerts, sessions
}

func TestMainPageLoadSession(t *testing.T) {
	page, _, _ := newTestMainPage(t, &domain.User{Name: "John Doe", Role: domain.RoleUser})

	st := page.State()
	assert.True(t, st.IsAuthenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "John Doe", st.User.Name)
	assert.False(t, st.Loading)
}

func TestMainPageLoadCorruptSessionShowsLoggedOut(t *testing.T) {
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Put("authToken", "t1"))
	require.NoError(t, storage.Put("user", "{broken"))

	page := NewMainPage(session.NewStore(storage), &alertRecorder{})
	require.NoError(t, page.Load())

	assert.False(t, page.State().IsAuthenticated)
	assert.Nil(t, page.State().User)
}

func TestMainPageLogout(t *testing.T) {
	page, _, sessions := newTestMainPage(t, &domain.User{Name: "John Doe"})

	assert.Equal(t, session.RouteHome, page.Logout())
	assert.False(t, page.State().IsAuthenticated)

	sess, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, sess, "session destroyed")
}

func TestMainPageRentGating(t *testing.T) {
	t.Run("unauthenticated goes to login", func(t *testing.T) {
		page, _, _ := newTestMainPage(t, nil)
		assert.Equal(t, session.RouteLogin, page.RentCar())
		assert.False(t, page.State().ShowRentalModal)
	})

	t.Run("admin goes to admin dashboard", func(t *testing.T) {
		page, _, _ := newTestMainPage(t, &domain.User{Name: "Admin", Role: domain.RoleAdmin})
		assert.Equal(t, session.RouteAdminDashboard, page.RentBike())
		assert.False(t, page.State().ShowRentalModal)
	})

	t.Run("user gets the modal", func(t *testing.T) {
		page, _, _ := newTestMainPage(t, &domain.User{Name: "John", Role: domain.RoleUser})
		assert.Equal(t, session.Route(""), page.RentBike())
		assert.True(t, page.State().ShowRentalModal)
		assert.Equal(t, "bike", page.State().Rental.VehicleType)
	})
}

func TestMainPageVehicleCategory(t *testing.T) {
	page, _, _ := newTestMainPage(t, &domain.User{Role: domain.RoleUser})

	route, filter := page.VehicleCategory("bikes")
	assert.Equal(t, session.RouteUserDashboard, route)
	assert.Equal(t, "bikes", filter)

	page, _, _ = newTestMainPage(t, nil)
	route, _ = page.VehicleCategory("cars")
	assert.Equal(t, session.RouteLogin, route)
}

func TestMainPageSubmitRental(t *testing.T) {
	page, alerts, _ := newTestMainPage(t, &domain.User{Name: "John", Role: domain.RoleUser})

	require.Equal(t, session.Route(""), page.RentCar())
	page.EditRentalForm(func(f *RentalForm) {
		f.StartDate = "2024-03-01"
		f.EndDate = "2024-03-03"
		f.Location = "Bangalore"
	})

	assert.Equal(t, session.RouteUserDashboard, page.SubmitRental())
	assert.Equal(t, "Your car rental has been booked successfully!", alerts.last())

	st := page.State()
	assert.False(t, st.ShowRentalModal)
	assert.Equal(t, RentalForm{}, st.Rental, "buffer reset")
}

func TestMainPageSubmitContact(t *testing.T) {
	page, alerts, _ := newTestMainPage(t, nil)

	page.EditContactForm(func(f *ContactForm) {
		f.Name = "Visitor"
		f.Email = "visitor@example.com"
		f.Message = "Do you deliver?"
	})
	page.SubmitContact()

	assert.Equal(t, "Thank you for your message! We'll get back to you soon.", alerts.last())
	assert.Equal(t, ContactForm{}, page.State().Contact, "buffer reset")
	assert.False(t, page.State().Submitting)
}
