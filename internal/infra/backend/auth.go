package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"todo/config"
	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	authTokenPath   = "/auth/v1/token"
	authSignUpPath  = "/auth/v1/signup"
	authLogoutPath  = "/auth/v1/logout"
	authRecoverPath = "/auth/v1/recover"

	defaultRefreshMargin = time.Minute
	maxRefreshTick       = 30 * time.Second
)

// authUser is the user object of the auth API.
type authUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// tokenResponse is the session payload of the token and signup endpoints.
// Signup answers with a bare user object when email confirmation is pending.
type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at"`
	RefreshToken string    `json:"refresh_token"`
	User         *authUser `json:"user"`
}

// AuthClientParams holds dependencies for AuthClient, injected by Fx
type AuthClientParams struct {
	fx.In

	Config    *config.Config
	Client    *Client
	Sessions  repository.SessionRepository
	Inspector service.TokenInspector `optional:"true"`
	Logger    *slog.Logger
}

// AuthClient implements service.AuthService and service.TokenSource. It is
// the only writer of the persisted session.
type AuthClient struct {
	client      *Client
	sessions    repository.SessionRepository
	inspector   service.TokenInspector
	logger      *slog.Logger
	margin      time.Duration
	autoRefresh bool
	now         func() time.Time

	mu        sync.RWMutex
	session   *entity.Session
	loaded    bool
	listeners map[uint64]service.AuthStateListener
	nextID    uint64

	refreshMu sync.Mutex // serialises refresh calls
	cancel    context.CancelFunc
	done      chan struct{}
}

var (
	_ service.AuthService = (*AuthClient)(nil)
	_ service.TokenSource = (*AuthClient)(nil)
)

// NewAuthClient creates an AuthClient. Call Start to enable auto refresh.
func NewAuthClient(params AuthClientParams) *AuthClient {
	margin := defaultRefreshMargin
	autoRefresh := true
	if s := params.Config.Session; s != nil {
		if s.RefreshMargin > 0 {
			margin = s.RefreshMargin
		}
		autoRefresh = s.AutoRefresh
	}

	return &AuthClient{
		client:      params.Client,
		sessions:    params.Sessions,
		inspector:   params.Inspector,
		logger:      params.Logger,
		margin:      margin,
		autoRefresh: autoRefresh,
		now:         time.Now,
		listeners:   make(map[uint64]service.AuthStateListener),
	}
}

// Start launches the auto-refresh loop when enabled.
func (a *AuthClient) Start(_ context.Context) error {
	if !a.autoRefresh {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})

	go a.refreshLoop(ctx)

	return nil
}

// Stop ends the auto-refresh loop.
func (a *AuthClient) Stop(ctx context.Context) error {
	if a.cancel == nil {
		return nil
	}
	a.cancel()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// AccessToken returns the session's access token, or the publishable key when signed out.
func (a *AuthClient) AccessToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return a.client.APIKey()
	}

	return a.session.AccessToken
}

// GetSession returns the current session, loading it from the repository on first use.
func (a *AuthClient) GetSession(ctx context.Context) (*entity.Session, error) {
	if err := a.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	session := a.current()
	if session == nil || !session.Expired(a.now()) {
		return session, nil
	}

	refreshed, err := a.refresh(ctx, session)
	if err != nil {
		a.logger.Warn("Expired session could not be refreshed", slog.Any("error", err))
		a.replace(ctx, entity.AuthEventSignedOut, nil)

		return nil, nil
	}

	return refreshed, nil
}

// SignInWithPassword exchanges credentials for a session.
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp tokenResponse
	_, err := a.client.Do(ctx, Request{
		Operation: "auth.signin",
		Method:    http.MethodPost,
		Path:      authTokenPath,
		Query:     url.Values{"grant_type": {"password"}},
		JSON:      map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, err
	}

	session, err := a.toSession(&resp)
	if err != nil {
		return nil, err
	}
	a.replace(ctx, entity.AuthEventSignedIn, session)

	return session, nil
}

// SignUp registers an account. The returned session is nil until the email is confirmed.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp tokenResponse
	_, err := a.client.Do(ctx, Request{
		Operation: "auth.signup",
		Method:    http.MethodPost,
		Path:      authSignUpPath,
		JSON:      map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, nil
	}

	session, err := a.toSession(&resp)
	if err != nil {
		return nil, err
	}
	a.replace(ctx, entity.AuthEventSignedIn, session)

	return session, nil
}

// SignOut revokes the session on the backend and forgets it locally. A
// session the backend already considers gone is forgotten as well.
func (a *AuthClient) SignOut(ctx context.Context) error {
	session := a.current()
	if session != nil {
		_, err := a.client.Do(ctx, Request{
			Operation: "auth.signout",
			Method:    http.MethodPost,
			Path:      authLogoutPath,
			Token:     session.AccessToken,
		}, nil)
		if err != nil && !isSessionGone(err) {
			return err
		}
	}

	a.replace(ctx, entity.AuthEventSignedOut, nil)

	return nil
}

// ResetPasswordForEmail sends the recovery email.
func (a *AuthClient) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}

	_, err := a.client.Do(ctx, Request{
		Operation: "auth.recover",
		Method:    http.MethodPost,
		Path:      authRecoverPath,
		Query:     query,
		JSON:      map[string]string{"email": email},
	}, nil)

	return err
}

// OnAuthStateChange registers listener for every session change.
func (a *AuthClient) OnAuthStateChange(listener service.AuthStateListener) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = listener
	a.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.listeners, id)
			a.mu.Unlock()
		})
	}
}

func (a *AuthClient) refreshLoop(ctx context.Context) {
	defer close(a.done)

	tick := a.margin / 2
	if tick > maxRefreshTick {
		tick = maxRefreshTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.refreshIfDue(ctx)
		}
	}
}

// refreshIfDue refreshes a session that expires within the margin. A failed
// refresh of an already expired session signs the user out.
func (a *AuthClient) refreshIfDue(ctx context.Context) {
	session := a.current()
	if session == nil || !session.ExpiresWithin(a.now(), a.margin) {
		return
	}

	if _, err := a.refresh(ctx, session); err != nil {
		if ctx.Err() != nil {
			return
		}
		if session.Expired(a.now()) {
			a.logger.Warn("Session expired and refresh failed, signing out", slog.Any("error", err))
			a.replace(ctx, entity.AuthEventSignedOut, nil)

			return
		}
		a.logger.Warn("Token refresh failed, will retry", slog.Any("error", err))
	}
}

func (a *AuthClient) refresh(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	// Another caller may have refreshed while this one waited.
	if current := a.current(); current != nil && current.AccessToken != session.AccessToken {
		return current, nil
	}

	var resp tokenResponse
	_, err := a.client.Do(ctx, Request{
		Operation: "auth.refresh",
		Method:    http.MethodPost,
		Path:      authTokenPath,
		Query:     url.Values{"grant_type": {"refresh_token"}},
		JSON:      map[string]string{"refresh_token": session.RefreshToken},
	}, &resp)
	if err != nil {
		return nil, err
	}

	refreshed, err := a.toSession(&resp)
	if err != nil {
		return nil, err
	}
	a.replace(ctx, entity.AuthEventTokenRefreshed, refreshed)

	return refreshed, nil
}

func (a *AuthClient) ensureLoaded(ctx context.Context) error {
	a.mu.RLock()
	loaded := a.loaded
	a.mu.RUnlock()
	if loaded {
		return nil
	}

	session, err := a.sessions.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to load persisted session")
	}

	a.mu.Lock()
	if !a.loaded {
		a.session = session
		a.loaded = true
	}
	a.mu.Unlock()

	return nil
}

func (a *AuthClient) current() *entity.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.session
}

// replace swaps the held session, persists it and notifies listeners outside the lock.
func (a *AuthClient) replace(ctx context.Context, event entity.AuthEvent, session *entity.Session) {
	a.mu.Lock()
	a.session = session
	a.loaded = true
	listeners := make([]service.AuthStateListener, 0, len(a.listeners))
	for _, l := range a.listeners {
		listeners = append(listeners, l)
	}
	a.mu.Unlock()

	persistCtx := context.WithoutCancel(ctx)
	var err error
	if session == nil {
		err = a.sessions.Clear(persistCtx)
	} else {
		err = a.sessions.Save(persistCtx, session)
	}
	if err != nil {
		a.logger.Warn("Failed to persist session", slog.String("event", event.String()), slog.Any("error", err))
	}

	for _, l := range listeners {
		l(event, session)
	}
}

func (a *AuthClient) toSession(resp *tokenResponse) (*entity.Session, error) {
	if resp.AccessToken == "" {
		return nil, errors.New("auth response carries no access token")
	}

	session := &entity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
	}
	if resp.User != nil {
		session.Identity = entity.Identity{ID: resp.User.ID, Email: resp.User.Email}
	}

	switch {
	case resp.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(resp.ExpiresAt, 0)
	case resp.ExpiresIn > 0:
		session.ExpiresAt = a.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	case a.inspector != nil:
		expiresAt, err := a.inspector.ExpiresAt(resp.AccessToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read token expiry")
		}
		session.ExpiresAt = expiresAt
	default:
		return nil, errors.New("auth response carries no expiry")
	}

	if session.Identity.ID == uuid.Nil && a.inspector != nil {
		if claims, err := a.inspector.Inspect(resp.AccessToken); err == nil {
			if id, err := claims.UserID(); err == nil {
				session.Identity = entity.Identity{ID: id, Email: claims.Email}
			}
		}
	}

	return session, nil
}

func isSessionGone(err error) bool {
	var backendErr interface{ Status() int }
	if !errors.As(err, &backendErr) {
		return false
	}

	switch backendErr.Status() {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	default:
		return false
	}
}
