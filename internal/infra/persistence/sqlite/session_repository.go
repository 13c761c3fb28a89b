package sqlite

import (
	"context"
	"database/sql"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/errors"

	"github.com/google/uuid"
)

// sessionRow is the only row id of auth_sessions.
const sessionRow = 1

// sessionRepository implements repository.SessionRepository on one table row.
type sessionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

// Load returns the persisted session or repository.ErrSessionNotFound.
func (repo *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var (
		session   entity.Session
		expiresAt int64
		userID    string
	)

	err := repo.db.QueryRowContext(ctx, `
		SELECT access_token, refresh_token, token_type, expires_at, user_id, email
		FROM auth_sessions WHERE id = ?`, sessionRow,
	).Scan(&session.AccessToken, &session.RefreshToken, &session.TokenType, &expiresAt, &userID, &session.Identity.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse persisted user id")
	}
	session.Identity.ID = id
	session.ExpiresAt = time.Unix(expiresAt, 0)

	return &session, nil
}

// Save replaces the persisted session.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return repo.Clear(ctx)
	}

	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO auth_sessions (id, access_token, refresh_token, token_type, expires_at, user_id, email, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type    = excluded.token_type,
			expires_at    = excluded.expires_at,
			user_id       = excluded.user_id,
			email         = excluded.email,
			updated_at    = excluded.updated_at`,
		sessionRow,
		session.AccessToken,
		session.RefreshToken,
		session.TokenType,
		session.ExpiresAt.Unix(),
		session.Identity.ID.String(),
		session.Identity.Email,
		repo.now().Unix(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Clear forgets the persisted session. Clearing nothing is not an error.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = ?`, sessionRow); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
