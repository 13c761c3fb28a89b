package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo/internal/delivery/api/response"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	mockusecase "todo/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantRetry  bool
		wantDetail any
	}{
		{
			name:       "validation error keeps its message",
			err:        errors.WithStack(domainerrors.ErrTitleRequired),
			wantStatus: http.StatusBadRequest,
			wantCode:   "TITLE_REQUIRED",
			wantMsg:    "Title is required",
		},
		{
			name:       "backend error is surfaced verbatim",
			err:        errors.Wrap(domainerrors.NewBackendError(http.StatusBadRequest, "invalid_credentials", "Invalid login credentials"), "sign in"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BACKEND_ERROR",
			wantMsg:    "Invalid login credentials",
			wantDetail: "invalid_credentials",
		},
		{
			name:       "list failure offers a retry",
			err:        domainerrors.ErrListFetchFailed,
			wantStatus: http.StatusBadGateway,
			wantCode:   "LIST_FETCH_FAILED",
			wantMsg:    "An unexpected error occurred",
			wantRetry:  true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "An error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantMsg, info.Message)
			assert.Equal(t, tt.wantRetry, info.Retry)
			assert.Equal(t, tt.wantDetail, info.Details)
		})
	}
}

func TestSessionGuard(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "a@b.c"}

	tests := []struct {
		name       string
		identity   *entity.Identity
		err        error
		wantStatus int
	}{
		{name: "signed in", identity: identity, wantStatus: http.StatusOK},
		{name: "signed out", err: domainerrors.ErrNotAuthenticated, wantStatus: http.StatusUnauthorized},
		{name: "loading", err: domainerrors.ErrSessionLoading, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mockusecase.NewMockSessionUsecase(t)
			session.EXPECT().RequireIdentity().Return(tt.identity, tt.err).Once()

			e := newTestEcho()
			guard := NewSessionGuard(session)
			e.GET("/", func(c echo.Context) error {
				got, ok := Identity(c)
				require.True(t, ok)
				assert.Equal(t, identity.ID, got.ID)

				return c.NoContent(http.StatusOK)
			}, guard.Require)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
