package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentx-client/internal/domain"
	"rentx-client/internal/gateway"
)

func validRegisterForm(s *RegisterState) {
	s.Name = "New User"
	s.Email = "New.User@RentX.com"
	s.Password = "secret1"
	s.ConfirmPassword = "secret1"
	s.Role = domain.RoleUser
}

func TestRegisterSubmitSuccess(t *testing.T) {
	gw := &fakeAuthGateway{}
	alerts := &alertRecorder{}
	reg := NewRegister(gw, alerts)

	reg.EditForm(validRegisterForm)
	require.True(t, reg.Submit(context.Background()))

	require.Len(t, gw.registered, 1)
	assert.Equal(t, "new.user@rentx.com", gw.registered[0].Email, "email normalized")
	assert.Equal(t, "New User", gw.registered[0].Name)
	assert.True(t, reg.State().Success)
	assert.Contains(t, alerts.last(), "Registration successful!")
}

func TestRegisterPasswordMismatchStopsBeforeNetwork(t *testing.T) {
	gw := &fakeAuthGateway{}
	reg := NewRegister(gw, &alertRecorder{})

	reg.EditForm(func(s *RegisterState) {
		validRegisterForm(s)
		s.ConfirmPassword = "different"
	})

	assert.False(t, reg.Submit(context.Background()))
	assert.Zero(t, gw.registerCalls, "mismatch fails client-side")
	assert.Equal(t, "Passwords do not match", reg.State().Errors["confirmPassword"])
}

func TestRegisterFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterState)
		field   string
		message string
	}{
		{"empty name", func(s *RegisterState) { s.Name = " " }, "name", "Name is required"},
		{"short name", func(s *RegisterState) { s.Name = "A" }, "name", "Name must be at least 2 characters"},
		{"empty email", func(s *RegisterState) { s.Email = "" }, "email", "Email is required"},
		{"bad email", func(s *RegisterState) { s.Email = "not-an-email" }, "email", "Email is invalid"},
		{"empty password", func(s *RegisterState) { s.Password = ""; s.ConfirmPassword = "" }, "password", "Password is required"},
		{"short password", func(s *RegisterState) { s.Password = "abc"; s.ConfirmPassword = "abc" }, "password", "Password must be at least 6 characters"},
		{"bad phone", func(s *RegisterState) { s.Phone = "12345" }, "phone", "Phone number must be 10 digits"},
		{"missing role", func(s *RegisterState) { s.Role = "" }, "role", "Please select a role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeAuthGateway{}
			reg := NewRegister(gw, &alertRecorder{})
			reg.EditForm(func(s *RegisterState) {
				validRegisterForm(s)
				tt.mutate(s)
			})

			assert.False(t, reg.Submit(context.Background()))
			assert.Zero(t, gw.registerCalls)
			assert.Equal(t, tt.message, reg.State().Errors[tt.field])
		})
	}
}

func TestRegisterPhoneAcceptsFormatting(t *testing.T) {
	gw := &fakeAuthGateway{}
	reg := NewRegister(gw, &alertRecorder{})
	reg.EditForm(func(s *RegisterState) {
		validRegisterForm(s)
		s.Phone = "(987) 654-3210"
	})

	assert.True(t, reg.Submit(context.Background()), "ten digits after stripping separators")
}

func TestRegisterBackendFailure(t *testing.T) {
	gw := &fakeAuthGateway{registerErr: errors.New("user with this email already exists")}
	reg := NewRegister(gw, &alertRecorder{})
	reg.EditForm(validRegisterForm)

	assert.False(t, reg.Submit(context.Background()))
	assert.Equal(t, "user with this email already exists", reg.State().Errors["submit"])
	assert.False(t, reg.State().Success)
}

func TestRegisterCheckBackend(t *testing.T) {
	reg := NewRegister(&fakeAuthGateway{probe: gateway.StatusError}, &alertRecorder{})
	reg.CheckBackend(context.Background())
	assert.Equal(t, gateway.StatusError, reg.State().BackendStatus)
}
