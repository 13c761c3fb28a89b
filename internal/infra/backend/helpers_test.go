package backend

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"todo/config"
	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
)

const testAPIKey = "anon-key"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(url string) *config.Config {
	return &config.Config{
		Backend: &config.BackendConfig{
			URL:            url,
			PublishableKey: testAPIKey,
			RequestTimeout: 5 * time.Second,
		},
		Session: &config.SessionConfig{RefreshMargin: time.Minute},
	}
}

func newTestClient(url string) *Client {
	return NewClient(ClientParams{Config: newTestConfig(url), Logger: newDiscardLogger()})
}

// memorySessions is an in-process SessionRepository.
type memorySessions struct {
	mu      sync.Mutex
	session *entity.Session
	saves   int
	clears  int
}

var _ repository.SessionRepository = (*memorySessions)(nil)

func (m *memorySessions) Load(context.Context) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, repository.ErrSessionNotFound
	}
	copied := *m.session

	return &copied, nil
}

func (m *memorySessions) Save(_ context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *session
	m.session = &copied
	m.saves++

	return nil
}

func (m *memorySessions) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	m.clears++

	return nil
}

func (m *memorySessions) stored() *entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session
}
