package middleware

import (
	"todo/internal/domain/entity"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// SessionGuard rejects requests made while no identity is held.
type SessionGuard struct {
	session usecase.SessionUsecase
}

// NewSessionGuard creates the guard for session-scoped routes.
func NewSessionGuard(session usecase.SessionUsecase) *SessionGuard {
	return &SessionGuard{session: session}
}

// Require answers ErrNotAuthenticated while signed out and ErrSessionLoading
// while the persisted session is still being read.
func (m *SessionGuard) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.session.RequireIdentity()
		if err != nil {
			return err
		}
		c.Set(identityKey, identity)

		return next(c)
	}
}

// Identity returns the identity stored by Require, if any.
func Identity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}
