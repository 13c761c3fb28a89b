package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session has been persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the single local auth session between runs.
type SessionRepository interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
