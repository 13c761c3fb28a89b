package impl

import (
	"io"
	"log/slog"
	"time"

	"todo/config"
	"todo/internal/cache"
	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestQueries() *cache.QueryClient {
	return cache.NewQueryClient(cache.Params{Logger: newDiscardLogger()})
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{Bucket: "todos-images", MaxUploadBytes: 5 << 20},
		Session: &config.SessionConfig{ResetRedirectURL: "http://localhost:5173/reset-password"},
	}
}

func newTestSession(email string) *entity.Session {
	return &entity.Session{
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + email,
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(time.Hour),
		Identity:     entity.Identity{ID: uuid.New(), Email: email},
	}
}

func newTestTodo(ownerID uuid.UUID, title string) *entity.Todo {
	now := time.Now()

	return &entity.Todo{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ptr[T any](v T) *T {
	return &v
}
