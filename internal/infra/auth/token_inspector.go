// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"todo/internal/domain/service"
	"todo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when a token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// jwtInspector is a TokenInspector for backend-issued JWTs.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for jwtInspector.
func NewTokenInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodRS256.Alg(),
			jwt.SigningMethodES256.Alg(),
		})),
	}
}

// Inspect decodes the claims without verifying the signature.
func (s *jwtInspector) Inspect(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	return claims, nil
}

// ExpiresAt returns the exp claim.
func (s *jwtInspector) ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := s.Inspect(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}
