// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"todo/config"
	"todo/internal/cache"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/usecase"
)

const (
	signUpMessage        = "Account created! Please check your email to verify your account."
	resetPasswordMessage = "Password reset email sent! Check your inbox."
)

// sessionService implements the SessionUsecase interface. It is the single
// owner of the session cell.
type sessionService struct {
	auth             service.AuthService
	queries          *cache.QueryClient
	validate         *inputValidator
	resetRedirectURL string
	logger           *slog.Logger

	mu        sync.RWMutex
	state     usecase.SessionState
	version   uint64 // bumped by every write to state
	listeners map[uint64]func(usecase.SessionState)
	nextID    uint64

	ready       chan struct{}
	readyOnce   sync.Once
	unsubscribe func()
	cancelLoad  context.CancelFunc
	loading     sync.WaitGroup
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	auth service.AuthService,
	queries *cache.QueryClient,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	var redirect string
	if cfg != nil && cfg.Session != nil {
		redirect = cfg.Session.ResetRedirectURL
	}

	return &sessionService{
		auth:             auth,
		queries:          queries,
		validate:         newInputValidator(),
		resetRedirectURL: redirect,
		logger:           logger,
		state:            usecase.SessionState{Status: usecase.SessionUninitialized},
		listeners:        make(map[uint64]func(usecase.SessionState)),
		ready:            make(chan struct{}),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start registers the auth-change subscription and loads the persisted
// session in the background.
func (srv *sessionService) Start(ctx context.Context) error {
	srv.mu.Lock()
	if srv.state.Status != usecase.SessionUninitialized {
		srv.mu.Unlock()

		return nil
	}
	srv.state = usecase.SessionState{Status: usecase.SessionLoading}
	srv.version++
	startVersion := srv.version
	snapshot := srv.state
	listeners := srv.listenersLocked()
	srv.mu.Unlock()
	notifySession(listeners, snapshot)

	srv.unsubscribe = srv.auth.OnAuthStateChange(srv.handleAuthChange)

	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	srv.cancelLoad = cancel
	srv.loading.Add(1)
	go func() {
		defer srv.loading.Done()
		srv.loadPersisted(loadCtx, startVersion)
	}()

	return nil
}

func (srv *sessionService) loadPersisted(ctx context.Context, startVersion uint64) {
	session, err := srv.auth.GetSession(ctx)
	if err != nil {
		srv.logger.Error("Failed to load persisted session", slog.Any("error", err))
		session = nil
	}

	// A session change pushed while loading is newer than what was persisted.
	if !srv.setSession(session, startVersion) {
		srv.logger.Debug("Persisted session superseded by a newer auth change")
	}
	srv.markReady()

	if session != nil {
		srv.logger.Info("Restored persisted session", slog.String("email", session.Identity.Email))
	}
}

// Stop releases the auth-change subscription and waits for the initial load.
func (srv *sessionService) Stop(ctx context.Context) error {
	if srv.unsubscribe != nil {
		srv.unsubscribe()
	}
	if srv.cancelLoad != nil {
		srv.cancelLoad()
	}

	done := make(chan struct{})
	go func() {
		srv.loading.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (srv *sessionService) handleAuthChange(event entity.AuthEvent, session *entity.Session) {
	srv.logger.Info("Auth state changed", slog.String("event", event.String()), slog.String("email", emailOf(session)))

	hadIdentity := srv.State().Identity != nil
	srv.setSession(session, 0)
	srv.markReady()

	if event == entity.AuthEventSignedOut && hadIdentity {
		srv.queries.Clear()
	}
}

// State returns the current snapshot.
func (srv *sessionService) State() usecase.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// Subscribe registers a listener for every state change.
func (srv *sessionService) Subscribe(listener func(usecase.SessionState)) func() {
	srv.mu.Lock()
	id := srv.nextID
	srv.nextID++
	srv.listeners[id] = listener
	srv.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.mu.Lock()
			delete(srv.listeners, id)
			srv.mu.Unlock()
		})
	}
}

// WaitReady blocks until the persisted session has been read.
func (srv *sessionService) WaitReady(ctx context.Context) error {
	select {
	case <-srv.ready:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// RequireIdentity returns the held identity.
func (srv *sessionService) RequireIdentity() (*entity.Identity, error) {
	state := srv.State()
	if state.Status != usecase.SessionReady {
		return nil, domainerrors.ErrSessionLoading
	}
	if state.Identity == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return state.Identity, nil
}

// SignIn exchanges credentials for a session and invalidates identity-scoped queries.
func (srv *sessionService) SignIn(ctx context.Context, input usecase.SignInInput) (*entity.Identity, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Signing in", slog.String("email", input.Email))

	session, err := srv.auth.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign in")
	}

	srv.setSession(session, 0)
	srv.markReady()
	srv.queries.Invalidate(cache.TodoKeys.All())

	identity := session.Identity

	return &identity, nil
}

// SignUp registers an account. The caller is sent back to the sign-in form.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Signing up", slog.String("email", input.Email))

	if _, err := srv.auth.SignUp(ctx, input.Email, input.Password); err != nil {
		srv.log(ctx).Warn("Sign up failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign up")
	}

	return &usecase.SignUpOutput{Message: signUpMessage, Mode: usecase.AuthModeSignIn}, nil
}

// SignOut revokes the session and drops every cached query.
func (srv *sessionService) SignOut(ctx context.Context) error {
	srv.log(ctx).Info("Signing out")

	if err := srv.auth.SignOut(ctx); err != nil {
		srv.log(ctx).Warn("Sign out failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to sign out")
	}

	srv.setSession(nil, 0)
	srv.markReady()
	srv.queries.Clear()

	return nil
}

// ResetPassword sends the recovery email.
func (srv *sessionService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.ResetPasswordOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	if err := srv.auth.ResetPasswordForEmail(ctx, input.Email, srv.resetRedirectURL); err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send password reset")
	}

	return &usecase.ResetPasswordOutput{Message: resetPasswordMessage}, nil
}

// SubmitAuthForm runs one submission of the combined sign-in / sign-up /
// reset form.
func (srv *sessionService) SubmitAuthForm(ctx context.Context, input usecase.AuthFormInput) (*usecase.AuthFormResult, error) {
	switch input.Mode {
	case usecase.AuthModeReset:
		out, err := srv.ResetPassword(ctx, usecase.ResetPasswordInput{Email: input.Email})
		if err != nil {
			return nil, err
		}

		return &usecase.AuthFormResult{Message: out.Message, Mode: usecase.AuthModeReset}, nil

	case usecase.AuthModeSignUp:
		out, err := srv.SignUp(ctx, usecase.SignUpInput{
			Email:           input.Email,
			Password:        input.Password,
			ConfirmPassword: input.ConfirmPassword,
		})
		if err != nil {
			return nil, err
		}

		return &usecase.AuthFormResult{Message: out.Message, Mode: out.Mode}, nil

	case usecase.AuthModeSignIn:
		identity, err := srv.SignIn(ctx, usecase.SignInInput{Email: input.Email, Password: input.Password})
		if err != nil {
			return nil, err
		}

		return &usecase.AuthFormResult{Mode: usecase.AuthModeSignIn, Identity: identity}, nil

	default:
		return nil, domainerrors.ErrInvalidAuthMode
	}
}

// setSession replaces the held session atomically. When ifVersion is non-zero
// the write only happens if nothing else was written since that version.
func (srv *sessionService) setSession(session *entity.Session, ifVersion uint64) bool {
	srv.mu.Lock()
	if ifVersion != 0 && srv.version != ifVersion {
		srv.mu.Unlock()

		return false
	}

	next := usecase.SessionState{Status: usecase.SessionReady, Session: session}
	if session != nil {
		identity := session.Identity
		next.Identity = &identity
	}
	srv.state = next
	srv.version++
	listeners := srv.listenersLocked()
	srv.mu.Unlock()

	notifySession(listeners, next)

	return true
}

func (srv *sessionService) markReady() {
	srv.readyOnce.Do(func() { close(srv.ready) })
}

func (srv *sessionService) listenersLocked() []func(usecase.SessionState) {
	out := make([]func(usecase.SessionState), 0, len(srv.listeners))
	for _, l := range srv.listeners {
		out = append(out, l)
	}

	return out
}

func notifySession(listeners []func(usecase.SessionState), state usecase.SessionState) {
	for _, l := range listeners {
		l(state)
	}
}

func emailOf(session *entity.Session) string {
	if session == nil {
		return ""
	}

	return session.Identity.Email
}
