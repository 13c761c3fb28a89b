// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal as reported by the auth backend.
type Identity struct {
	ID    uuid.UUID `json:"id"`    // The backend's user id, referenced by todos.user_id.
	Email string    `json:"email"` // The address the principal signed in with.
}

// Session pairs an Identity with the tokens the backend issued for it.
type Session struct {
	AccessToken  string    `json:"access_token"`  // Bearer token sent on every data call.
	RefreshToken string    `json:"refresh_token"` // Exchanged for a new access token before expiry.
	TokenType    string    `json:"token_type"`    // Usually "bearer".
	ExpiresAt    time.Time `json:"expires_at"`    // Absolute access token expiry.
	Identity     Identity  `json:"user"`
}

// Expired reports whether the access token is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}

	return !s.ExpiresAt.After(now)
}

// ExpiresWithin reports whether the access token expires before now+margin.
func (s *Session) ExpiresWithin(now time.Time, margin time.Duration) bool {
	if s == nil {
		return true
	}

	return !s.ExpiresAt.After(now.Add(margin))
}

// AuthEvent names a session change pushed by the auth client.
type AuthEvent string

const (
	AuthEventInitialSession   AuthEvent = "INITIAL_SESSION"
	AuthEventSignedIn         AuthEvent = "SIGNED_IN"
	AuthEventSignedOut        AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed   AuthEvent = "TOKEN_REFRESHED"
	AuthEventPasswordRecovery AuthEvent = "PASSWORD_RECOVERY"
)

// String returns the string representation of the AuthEvent.
func (e AuthEvent) String() string {
	return string(e)
}
