package auth

import (
	"testing"
	"time"

	"todo/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret-the-client-never-sees"))
	require.NoError(t, err)

	return token
}

func TestTokenInspector_Inspect(t *testing.T) {
	userID := uuid.New()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, &service.Claims{
		Email: "a@b.co",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	inspector := NewTokenInspector()

	claims, err := inspector.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	expiresAt, err := inspector.ExpiresAt(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(expiresAt))
}

func TestTokenInspector_ExpiredTokenStillReadable(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signTestToken(t, &service.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}})

	expiresAt, err := NewTokenInspector().ExpiresAt(token)

	require.NoError(t, err)
	assert.True(t, exp.Equal(expiresAt))
}

func TestTokenInspector_Errors(t *testing.T) {
	inspector := NewTokenInspector()

	_, err := inspector.Inspect("not-a-jwt")
	assert.Error(t, err)

	token := signTestToken(t, &service.Claims{Email: "a@b.co"})
	_, err = inspector.ExpiresAt(token)
	assert.ErrorIs(t, err, ErrNoExpiry)
}
