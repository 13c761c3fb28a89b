package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"todo/internal/cache"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	mockService "todo/internal/mocks/service"
	"todo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	service usecase.SessionUsecase
	auth    *mockService.MockAuthService
	queries *cache.QueryClient
}

func createTestSessionService(t *testing.T) *sessionFixtures {
	auth := mockService.NewMockAuthService(t)
	queries := newTestQueries()

	return &sessionFixtures{
		service: NewSessionService(auth, queries, newTestConfig(), newDiscardLogger()),
		auth:    auth,
		queries: queries,
	}
}

// startWith starts the service with a persisted session and returns the
// captured auth-change listener.
func (fx *sessionFixtures) startWith(t *testing.T, persisted *entity.Session) service.AuthStateListener {
	t.Helper()

	var listener service.AuthStateListener
	fx.auth.EXPECT().OnAuthStateChange(mock.Anything).RunAndReturn(func(l service.AuthStateListener) func() {
		listener = l

		return func() {}
	}).Once()
	fx.auth.EXPECT().GetSession(mock.Anything).Return(persisted, nil).Once()

	require.NoError(t, fx.service.Start(context.Background()))
	require.NoError(t, fx.service.WaitReady(context.Background()))
	t.Cleanup(func() { _ = fx.service.Stop(context.Background()) })

	return listener
}

func TestSessionService_Start_LoadingUntilPersistedSessionResolves(t *testing.T) {
	fx := createTestSessionService(t)
	persisted := newTestSession("a@b.com")
	release := make(chan struct{})

	fx.auth.EXPECT().OnAuthStateChange(mock.Anything).Return(func() {}).Once()
	fx.auth.EXPECT().GetSession(mock.Anything).RunAndReturn(func(context.Context) (*entity.Session, error) {
		<-release

		return persisted, nil
	}).Once()

	assert.Equal(t, usecase.SessionUninitialized, fx.service.State().Status)
	require.NoError(t, fx.service.Start(context.Background()))

	assert.Equal(t, usecase.SessionLoading, fx.service.State().Status)
	_, err := fx.service.RequireIdentity()
	assert.ErrorIs(t, err, domainerrors.ErrSessionLoading)

	close(release)
	require.NoError(t, fx.service.WaitReady(context.Background()))

	state := fx.service.State()
	assert.Equal(t, usecase.SessionReady, state.Status)
	require.NotNil(t, state.Identity)
	assert.Equal(t, "a@b.com", state.Identity.Email)
	require.NoError(t, fx.service.Stop(context.Background()))
}

func TestSessionService_Start_NoPersistedSession(t *testing.T) {
	fx := createTestSessionService(t)
	fx.startWith(t, nil)

	assert.Equal(t, usecase.SessionReady, fx.service.State().Status)
	_, err := fx.service.RequireIdentity()
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestSessionService_WaitReady_HonoursContext(t *testing.T) {
	fx := createTestSessionService(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, fx.service.WaitReady(ctx), context.DeadlineExceeded)
}

func TestSessionService_SignIn_HoldsIdentityAndInvalidatesTodos(t *testing.T) {
	fx := createTestSessionService(t)
	fx.startWith(t, nil)
	fx.queries.SetData(cache.TodoKeys.Lists(), []*entity.Todo{})
	fx.queries.SetData(cache.TodoKeys.Detail("1"), &entity.Todo{})
	fx.queries.SetData(cache.UserKeys.Lists(), []*entity.User{})

	session := newTestSession("a@b.com")
	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "a@b.com", "secret1").Return(session, nil).Once()

	var notified []usecase.SessionState
	unsubscribe := fx.service.Subscribe(func(s usecase.SessionState) { notified = append(notified, s) })
	defer unsubscribe()

	identity, err := fx.service.SignIn(context.Background(), usecase.SignInInput{Email: " a@b.com ", Password: "secret1"})

	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, session.Identity.ID, identity.ID)
	assert.True(t, fx.service.State().SignedIn())
	assert.Equal(t, session, fx.service.State().Session)
	assert.True(t, fx.queries.Peek(cache.TodoKeys.Lists()).Stale)
	assert.True(t, fx.queries.Peek(cache.TodoKeys.Detail("1")).Stale)
	assert.False(t, fx.queries.Peek(cache.UserKeys.Lists()).Stale)
	require.Len(t, notified, 1)
	assert.Equal(t, "a@b.com", notified[0].Identity.Email)
}

func TestSessionService_SignIn_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SignInInput
		want  error
	}{
		{name: "empty email", input: usecase.SignInInput{Password: "secret1"}, want: domainerrors.ErrEmailRequired},
		{name: "blank email", input: usecase.SignInInput{Email: "   ", Password: "secret1"}, want: domainerrors.ErrEmailRequired},
		{name: "empty password", input: usecase.SignInInput{Email: "a@b.com"}, want: domainerrors.ErrPasswordRequired},
		{name: "short password", input: usecase.SignInInput{Email: "a@b.com", Password: "12345"}, want: domainerrors.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)

			_, err := fx.service.SignIn(context.Background(), tt.input)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.(domainerrors.AppError).Message(), domainerrors.UserMessage(err))
		})
	}
}

func TestSessionService_SignIn_BackendErrorSurfacedVerbatim(t *testing.T) {
	fx := createTestSessionService(t)
	fx.startWith(t, nil)
	fx.queries.SetData(cache.TodoKeys.Lists(), []*entity.Todo{})

	backendErr := domainerrors.NewBackendError(http.StatusBadRequest, "invalid_credentials", "Invalid login credentials")
	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "a@b.com", "secret1").Return(nil, backendErr).Once()

	identity, err := fx.service.SignIn(context.Background(), usecase.SignInInput{Email: "a@b.com", Password: "secret1"})

	assert.Nil(t, identity)
	require.ErrorIs(t, err, backendErr)
	assert.Equal(t, "Invalid login credentials", domainerrors.UserMessage(err))
	assert.Nil(t, fx.service.State().Identity)
	assert.False(t, fx.queries.Peek(cache.TodoKeys.Lists()).Stale)
}

func TestSessionService_SignOut_ClearsIdentityAndCache(t *testing.T) {
	fx := createTestSessionService(t)
	fx.startWith(t, newTestSession("a@b.com"))
	fx.queries.SetData(cache.TodoKeys.Lists(), []*entity.Todo{{Title: "stale"}})
	fx.queries.SetData(cache.UserKeys.Lists(), []*entity.User{})

	fx.auth.EXPECT().SignOut(mock.Anything).Return(nil).Once()

	require.NoError(t, fx.service.SignOut(context.Background()))

	assert.Nil(t, fx.service.State().Identity)
	assert.Equal(t, usecase.SessionReady, fx.service.State().Status)
	assert.Equal(t, 0, fx.queries.Len())

	snap := fx.queries.Peek(cache.TodoKeys.Lists())
	assert.Equal(t, cache.StatusIdle, snap.Status)
	assert.False(t, snap.HasData())
}

func TestSessionService_SignOut_FailureKeepsState(t *testing.T) {
	fx := createTestSessionService(t)
	fx.startWith(t, newTestSession("a@b.com"))
	fx.queries.SetData(cache.TodoKeys.Lists(), []*entity.Todo{})

	fx.auth.EXPECT().SignOut(mock.Anything).Return(domainerrors.NewBackendError(http.StatusInternalServerError, "", "boom")).Once()

	err := fx.service.SignOut(context.Background())

	require.Error(t, err)
	assert.NotNil(t, fx.service.State().Identity)
	assert.Equal(t, 1, fx.queries.Len())
}

func TestSessionService_SignUp_SendsBackToSignIn(t *testing.T) {
	fx := createTestSessionService(t)
	fx.auth.EXPECT().SignUp(mock.Anything, "a@b.com", "secret1").Return(nil, nil).Once()

	out, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	require.NoError(t, err)
	assert.Contains(t, out.Message, "check your email")
	assert.Equal(t, usecase.AuthModeSignIn, out.Mode)
}

func TestSessionService_SignUp_PasswordMismatch(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	assert.Equal(t, "Passwords do not match", domainerrors.UserMessage(err))
}

func TestSessionService_ResetPassword_UsesRedirect(t *testing.T) {
	fx := createTestSessionService(t)
	fx.auth.EXPECT().ResetPasswordForEmail(mock.Anything, "a@b.com", "http://localhost:5173/reset-password").Return(nil).Once()

	out, err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Email: "a@b.com"})

	require.NoError(t, err)
	assert.Equal(t, "Password reset email sent! Check your inbox.", out.Message)
}

func TestSessionService_SubmitAuthForm(t *testing.T) {
	t.Run("reset needs only the email", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.auth.EXPECT().ResetPasswordForEmail(mock.Anything, "a@b.com", mock.Anything).Return(nil).Once()

		result, err := fx.service.SubmitAuthForm(context.Background(), usecase.AuthFormInput{Mode: usecase.AuthModeReset, Email: "a@b.com"})

		require.NoError(t, err)
		assert.Equal(t, usecase.AuthModeReset, result.Mode)
		assert.Equal(t, resetPasswordMessage, result.Message)
	})

	t.Run("sign up switches mode to sign in", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.auth.EXPECT().SignUp(mock.Anything, "a@b.com", "secret1").Return(nil, nil).Once()

		result, err := fx.service.SubmitAuthForm(context.Background(), usecase.AuthFormInput{
			Mode:            usecase.AuthModeSignUp,
			Email:           "a@b.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		})

		require.NoError(t, err)
		assert.Equal(t, usecase.AuthModeSignIn, result.Mode)
		assert.Contains(t, result.Message, "check your email")
	})

	t.Run("sign in returns the identity", func(t *testing.T) {
		fx := createTestSessionService(t)
		session := newTestSession("a@b.com")
		fx.auth.EXPECT().SignInWithPassword(mock.Anything, "a@b.com", "secret1").Return(session, nil).Once()

		result, err := fx.service.SubmitAuthForm(context.Background(), usecase.AuthFormInput{
			Mode:     usecase.AuthModeSignIn,
			Email:    "a@b.com",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.Equal(t, session.Identity.ID, result.Identity.ID)
	})

	t.Run("email checked before password", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.SubmitAuthForm(context.Background(), usecase.AuthFormInput{Mode: usecase.AuthModeSignUp})

		assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
	})

	t.Run("unknown mode", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.SubmitAuthForm(context.Background(), usecase.AuthFormInput{Mode: "magic"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthMode)
	})
}

func TestSessionService_AuthChange_ReplacesSession(t *testing.T) {
	fx := createTestSessionService(t)
	listener := fx.startWith(t, newTestSession("a@b.com"))
	require.NotNil(t, listener)

	refreshed := newTestSession("a@b.com")
	listener(entity.AuthEventTokenRefreshed, refreshed)

	assert.Equal(t, refreshed, fx.service.State().Session)
}

func TestSessionService_AuthChange_SignedOutClearsCache(t *testing.T) {
	fx := createTestSessionService(t)
	listener := fx.startWith(t, newTestSession("a@b.com"))
	fx.queries.SetData(cache.TodoKeys.Lists(), []*entity.Todo{})

	listener(entity.AuthEventSignedOut, nil)

	assert.Nil(t, fx.service.State().Identity)
	assert.Equal(t, 0, fx.queries.Len())
}

func TestSessionService_AuthChange_WinsOverSlowPersistedLoad(t *testing.T) {
	fx := createTestSessionService(t)
	release := make(chan struct{})
	var listener service.AuthStateListener

	fx.auth.EXPECT().OnAuthStateChange(mock.Anything).RunAndReturn(func(l service.AuthStateListener) func() {
		listener = l

		return func() {}
	}).Once()
	fx.auth.EXPECT().GetSession(mock.Anything).RunAndReturn(func(context.Context) (*entity.Session, error) {
		<-release

		return newTestSession("old@b.com"), nil
	}).Once()

	require.NoError(t, fx.service.Start(context.Background()))

	fresh := newTestSession("new@b.com")
	listener(entity.AuthEventSignedIn, fresh)
	close(release)
	require.NoError(t, fx.service.Stop(context.Background()))

	assert.Equal(t, "new@b.com", fx.service.State().Identity.Email)
}
