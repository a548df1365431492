package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"rentx-client/internal/domain"
)

// errorBody is the backend's error envelope; either key may be set.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// Login authenticates against the backend and returns the session on
// success. This is the one call with an explicit timeout (10s by default);
// see Config.AuthTimeout.
func (c *Client) Login(ctx context.Context, email, password string, role domain.UserRole) (*domain.Session, error) {
	payload := map[string]any{
		"email":    strings.ToLower(strings.TrimSpace(email)),
		"password": password,
		"role":     role,
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return nil, err
	}

	data, err := c.do(c.authHTTP, req)
	if err != nil {
		var statusErr *HTTPError
		if errors.As(err, &statusErr) {
			var body errorBody
			_ = json.Unmarshal(data, &body)
			if msg := body.text(); msg != "" {
				return nil, errors.New(msg)
			}
			return nil, fmt.Errorf("login failed (%d)", statusErr.Code)
		}
		return nil, errors.New("no response from server - please check if the backend is running")
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil || session.Token == "" {
		var body errorBody
		_ = json.Unmarshal(data, &body)
		if msg := body.text(); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, errors.New("invalid email or password")
	}

	return &session, nil
}

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Phone    string          `json:"phone,omitempty"`
	Address  string          `json:"address,omitempty"`
	Role     domain.UserRole `json:"role"`
}

// Register creates an account. Failures map HTTP statuses to the
// user-facing messages this workflow cares about.
func (c *Client) Register(ctx context.Context, r RegisterRequest) error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", r)
	if err != nil {
		return err
	}

	data, err := c.do(c.http, req)
	if err == nil {
		return nil
	}

	var statusErr *HTTPError
	if !errors.As(err, &statusErr) {
		return errors.New("backend server not reachable - please make sure the server is running")
	}

	var body errorBody
	if len(data) > 0 {
		if jsonErr := json.Unmarshal(data, &body); jsonErr != nil {
			body.Message = strings.TrimSpace(string(data))
		}
	}
	if msg := body.text(); msg != "" {
		return errors.New(msg)
	}

	switch statusErr.Code {
	case http.StatusBadRequest:
		return errors.New("bad request - check your input data")
	case http.StatusConflict:
		return errors.New("user with this email already exists")
	case http.StatusInternalServerError:
		return errors.New("server error - please try again later")
	default:
		return fmt.Errorf("registration failed (%d)", statusErr.Code)
	}
}
