package dashboard

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"rentx-client/internal/domain"
	"rentx-client/internal/gateway"
)

var digitsOnly = regexp.MustCompile(`\D`)

// RegisterState is the account-creation form's state record.
type RegisterState struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Address         string
	Role            domain.UserRole

	Errors        map[string]string
	Submitting    bool
	Success       bool
	BackendStatus gateway.BackendStatus
}

// Register drives the account-creation screen.
type Register struct {
	gw     AuthGateway
	notify Notifier
	state  RegisterState
}

func NewRegister(gw AuthGateway, notify Notifier) *Register {
	return &Register{
		gw:     gw,
		notify: notify,
		state: RegisterState{
			Role:          domain.RoleUser,
			Errors:        map[string]string{},
			BackendStatus: gateway.StatusChecking,
		},
	}
}

// State returns a snapshot of the current form state.
func (r *Register) State() RegisterState {
	return r.state
}

// CheckBackend probes the backend once at mount, same badge semantics as
// the login screen.
func (r *Register) CheckBackend(ctx context.Context) {
	if r.gw.Probe(ctx) == gateway.StatusConnected {
		r.state.BackendStatus = gateway.StatusConnected
		return
	}
	r.state.BackendStatus = gateway.StatusError
}

// EditForm mutates the form fields and clears the field errors.
func (r *Register) EditForm(mutate func(*RegisterState)) {
	mutate(&r.state)
	r.state.Errors = map[string]string{}
}

// validate applies the client-side rules. A failing form never reaches
// the network.
func (r *Register) validate() bool {
	errs := map[string]string{}

	name := strings.TrimSpace(r.state.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(r.state.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(r.state.Email) {
		errs["email"] = "Email is invalid"
	}

	if r.state.Password == "" {
		errs["password"] = "Password is required"
	} else if len(r.state.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if r.state.Password != r.state.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if r.state.Phone != "" && len(digitsOnly.ReplaceAllString(r.state.Phone, "")) != 10 {
		errs["phone"] = "Phone number must be 10 digits"
	}

	if r.state.Role == "" {
		errs["role"] = "Please select a role"
	}

	r.state.Errors = errs
	return len(errs) == 0
}

// Submit validates and creates the account. On success the caller routes
// to the login screen with the email prefilled.
func (r *Register) Submit(ctx context.Context) bool {
	if !r.validate() {
		return false
	}

	r.state.Submitting = true
	defer func() { r.state.Submitting = false }()

	req := gateway.RegisterRequest{
		Name:     strings.TrimSpace(r.state.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.state.Email)),
		Password: r.state.Password,
		Phone:    strings.TrimSpace(r.state.Phone),
		Address:  strings.TrimSpace(r.state.Address),
		Role:     r.state.Role,
	}

	if err := r.gw.Register(ctx, req); err != nil {
		r.state.Errors = map[string]string{"submit": err.Error()}
		return false
	}

	r.state.Success = true
	r.notify.Alert(fmt.Sprintf("Registration successful! Welcome %s. Please login with your credentials.", req.Name))
	return true
}
