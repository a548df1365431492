// Package session persists the auth token and user profile between runs
// and derives post-login routing from the stored role.
package session

import (
	"encoding/json"
	"fmt"

	"rentx-client/internal/domain"
	"rentx-client/internal/logger"
)

const (
	keyAuthToken = "authToken"
	keyUser      = "user"
)

// Route names a screen the client can land on.
type Route string

const (
	RouteHome           Route = "home"
	RouteLogin          Route = "login"
	RouteAdminDashboard Route = "admin-dashboard"
	RouteUserDashboard  Route = "user-dashboard"
)

// Store reads and writes the session through an injected Storage.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Save persists the session after a successful login or registration.
func (s *Store) Save(token string, user domain.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	if err := s.storage.Put(keyAuthToken, token); err != nil {
		return fmt.Errorf("failed to store auth token: %w", err)
	}
	if err := s.storage.Put(keyUser, string(userJSON)); err != nil {
		return fmt.Errorf("failed to store user profile: %w", err)
	}
	return nil
}

// Load returns the stored session, or nil when logged out. Malformed
// stored data is cleared and treated as logged out, never an error.
func (s *Store) Load() (*domain.Session, error) {
	token, hasToken, err := s.storage.Get(keyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth token: %w", err)
	}
	userJSON, hasUser, err := s.storage.Get(keyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read user profile: %w", err)
	}
	if !hasToken || !hasUser {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		logger.Warn("Stored user profile is unparseable, clearing session", "error", err)
		s.Clear()
		return nil, nil
	}

	return &domain.Session{Token: token, User: user}, nil
}

// Clear destroys the session.
func (s *Store) Clear() {
	_ = s.storage.Delete(keyAuthToken)
	_ = s.storage.Delete(keyUser)
}

// RouteForRole decides where a session lands: admins on the admin
// dashboard, everyone else on the user dashboard. Re-derived at login
// success and at every dashboard mount, never cached.
func RouteForRole(role domain.UserRole) Route {
	if role == domain.RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteUserDashboard
}
