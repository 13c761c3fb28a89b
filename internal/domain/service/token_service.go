package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access token claims the client relies on.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject as a uuid.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenInspector reads access tokens issued by the backend. The client does
// not hold the signing secret, so signatures are not verified here; the
// backend verifies them on every call.
type TokenInspector interface {
	// Inspect decodes the token claims.
	Inspect(token string) (*Claims, error)

	// ExpiresAt returns the token's exp claim.
	ExpiresAt(token string) (time.Time, error)
}
