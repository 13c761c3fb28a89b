// Package service defines interfaces for the external services the domain
// depends on. Infrastructure packages provide the implementations.
package service

import (
	"context"

	"todo/internal/domain/entity"
)

// AuthStateListener receives every session change. session is nil after sign-out.
type AuthStateListener func(event entity.AuthEvent, session *entity.Session)

// AuthService is a stateful client of the backend's auth API. It holds the
// current session, persists it, refreshes it before expiry and notifies
// listeners whenever it changes.
type AuthService interface {
	// GetSession returns the persisted session, refreshing it first when it
	// has expired. It returns (nil, nil) when nobody is signed in.
	GetSession(ctx context.Context) (*entity.Session, error)

	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SignUp registers an account. The session is nil when the backend
	// requires email confirmation first.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut revokes the current session and forgets it locally.
	SignOut(ctx context.Context) error

	// ResetPasswordForEmail sends a recovery email that links to redirectTo.
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error

	// OnAuthStateChange registers listener and returns its unsubscribe func.
	OnAuthStateChange(listener AuthStateListener) (unsubscribe func())
}

// TokenSource yields the bearer token for data calls: the session's access
// token when signed in, the publishable key otherwise.
type TokenSource interface {
	AccessToken() string
}
