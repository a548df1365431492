package dashboard

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"rentx-client/internal/domain"
	"rentx-client/internal/gateway"
	"rentx-client/internal/logger"
	"rentx-client/internal/session"
)

// AuthGateway is the slice of the remote data gateway the auth screens
// consume.
type AuthGateway interface {
	Probe(ctx context.Context) gateway.BackendStatus
	Login(ctx context.Context, email, password string, role domain.UserRole) (*domain.Session, error)
	Register(ctx context.Context, r gateway.RegisterRequest) error
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// LoginState is the sign-in form's state record. Errors is keyed by field
// name, with "submit" for the request-level failure.
type LoginState struct {
	Email    string
	Password string
	Role     domain.UserRole

	Errors        map[string]string
	Submitting    bool
	BackendStatus gateway.BackendStatus
}

// Login drives the sign-in screen.
type Login struct {
	gw       AuthGateway
	sessions *session.Store
	notify   Notifier
	state    LoginState
}

func NewLogin(gw AuthGateway, sessions *session.Store, notify Notifier) *Login {
	return &Login{
		gw:       gw,
		sessions: sessions,
		notify:   notify,
		state: LoginState{
			Role:          domain.RoleUser,
			Errors:        map[string]string{},
			BackendStatus: gateway.StatusChecking,
		},
	}
}

// State returns a snapshot of the current form state.
func (l *Login) State() LoginState {
	return l.state
}

// CheckBackend probes the backend once at mount. Anything short of a
// clean response shows as an error badge; the form itself stays usable.
func (l *Login) CheckBackend(ctx context.Context) {
	if l.gw.Probe(ctx) == gateway.StatusConnected {
		l.state.BackendStatus = gateway.StatusConnected
		return
	}
	l.state.BackendStatus = gateway.StatusError
}

// SetEmail updates the email field and clears its error.
func (l *Login) SetEmail(email string) {
	l.state.Email = email
	delete(l.state.Errors, "email")
}

// SetPassword updates the password field and clears its error.
func (l *Login) SetPassword(password string) {
	l.state.Password = password
	delete(l.state.Errors, "password")
}

// SetRole updates the role field and clears its error.
func (l *Login) SetRole(role domain.UserRole) {
	l.state.Role = role
	delete(l.state.Errors, "role")
}

// PrefillEmail carries the address over from a fresh registration.
func (l *Login) PrefillEmail(email string) {
	l.state.Email = email
}

func (l *Login) validate() bool {
	errs := map[string]string{}

	if strings.TrimSpace(l.state.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(l.state.Email) {
		errs["email"] = "Email is invalid"
	}

	if l.state.Password == "" {
		errs["password"] = "Password is required"
	}

	if l.state.Role == "" {
		errs["role"] = "Please select a role"
	}

	l.state.Errors = errs
	return len(errs) == 0
}

// Submit validates the form, authenticates, and persists the session.
// The returned route is derived from the authenticated user's role; the
// zero route means the submission failed and Errors carries the reason.
func (l *Login) Submit(ctx context.Context) (session.Route, bool) {
	if !l.validate() {
		return "", false
	}

	l.state.Submitting = true
	defer func() { l.state.Submitting = false }()

	sess, err := l.gw.Login(ctx, l.state.Email, l.state.Password, l.state.Role)
	if err != nil {
		l.state.Errors = map[string]string{"submit": err.Error()}
		return "", false
	}

	if err := l.sessions.Save(sess.Token, sess.User); err != nil {
		logger.WithScreen("login").Error("Failed to persist session", "error", err)
		l.state.Errors = map[string]string{"submit": err.Error()}
		return "", false
	}

	l.notify.Alert(fmt.Sprintf("Welcome back, %s!", sess.User.Name))
	return session.RouteForRole(sess.User.Role), true
}
