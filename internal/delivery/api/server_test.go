package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"todo/config"
	"todo/internal/cache"
	apimiddleware "todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/response"
	"todo/internal/delivery/api/router"
	"todo/internal/delivery/api/router/handler"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/infra/metrics"
	mockusecase "todo/internal/mocks/usecase"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	session *mockusecase.MockSessionUsecase
	todos   *mockusecase.MockTodoUsecase
	users   *mockusecase.MockUserUsecase
	echo    *echo.Echo
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "6MB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry := metrics.NewRegistry()
	metrics.NewCollector(registry)

	session := mockusecase.NewMockSessionUsecase(t)
	todos := mockusecase.NewMockTodoUsecase(t)
	users := mockusecase.NewMockUserUsecase(t)

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{SessionUC: session, Logger: logger}),
		TodoHandler: handler.NewTodoHandler(handler.TodoHandlerParams{
			TodoUC:    todos,
			SessionUC: session,
			Queries:   cache.NewQueryClient(cache.Params{Logger: logger}),
			Logger:    logger,
		}),
		UserHandler:  handler.NewUserHandler(handler.UserHandlerParams{UserUC: users, Logger: logger}),
		SessionGuard: apimiddleware.NewSessionGuard(session),
		Config:       cfg,
		Gatherer:     registry,
	})

	return &testAPI{session: session, todos: todos, users: users, echo: e}
}

func (a *testAPI) signedIn(identity *entity.Identity) {
	a.session.EXPECT().RequireIdentity().Return(identity, nil)
}

func (a *testAPI) do(t *testing.T, method, path string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (a *testAPI) doJSON(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	return a.do(t, method, path, reader, echo.MIMEApplicationJSON)
}

func multipartBody(t *testing.T, fields map[string]string, filename, fileType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
		header.Set("Content-Type", fileType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func sampleTodo(title string) *entity.Todo {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return &entity.Todo{ID: uuid.New(), UserID: uuid.New(), Title: title, CreatedAt: now, UpdatedAt: now}
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestAPI(t)

	rec, env := a.doJSON(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, env))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)

	rec, _ = a.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAuthRoutes(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "ada@example.com"}

	t.Run("session snapshot", func(t *testing.T) {
		a := newTestAPI(t)
		a.session.EXPECT().State().Return(usecase.SessionState{Status: usecase.SessionReady, Identity: identity})

		rec, env := a.doJSON(t, http.MethodGet, "/auth/session", "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[handler.SessionResponse](t, env)
		assert.Equal(t, usecase.SessionReady, got.Status)
		assert.Equal(t, identity, got.Identity)
		assert.NotContains(t, string(env.Data), "access_token")
	})

	t.Run("sign in", func(t *testing.T) {
		a := newTestAPI(t)
		a.session.EXPECT().
			SignIn(mock.Anything, usecase.SignInInput{Email: "ada@example.com", Password: "secret1"}).
			Return(identity, nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/signin", `{"email":"ada@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, identity, decodeData[*entity.Identity](t, env))
	})

	t.Run("sign in surfaces the backend message", func(t *testing.T) {
		a := newTestAPI(t)
		a.session.EXPECT().SignIn(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewBackendError(http.StatusBadRequest, "invalid_credentials", "Invalid login credentials")).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/signin", `{"email":"ada@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Invalid login credentials", env.Error.Message)
	})

	t.Run("sign in validation", func(t *testing.T) {
		a := newTestAPI(t)
		a.session.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailRequired).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/signin", `{"password":"secret1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email is required", env.Error.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		a := newTestAPI(t)

		rec, env := a.doJSON(t, http.MethodPost, "/auth/signin", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("sign up", func(t *testing.T) {
		a := newTestAPI(t)
		want := &usecase.SignUpOutput{Message: "Account created! Please check your email to verify your account.", Mode: usecase.AuthModeSignIn}
		a.session.EXPECT().
			SignUp(mock.Anything, usecase.SignUpInput{Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1"}).
			Return(want, nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/signup", `{"email":"ada@example.com","password":"secret1","confirmPassword":"secret1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, want, decodeData[*usecase.SignUpOutput](t, env))
	})

	t.Run("sign out", func(t *testing.T) {
		a := newTestAPI(t)
		a.session.EXPECT().SignOut(mock.Anything).Return(nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/signout", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, response.Message{Message: "Signed out"}, decodeData[response.Message](t, env))
	})

	t.Run("reset", func(t *testing.T) {
		a := newTestAPI(t)
		want := &usecase.ResetPasswordOutput{Message: "Password reset email sent! Check your inbox."}
		a.session.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{Email: "ada@example.com"}).Return(want, nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/reset", `{"email":"ada@example.com"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, decodeData[*usecase.ResetPasswordOutput](t, env))
	})

	t.Run("form", func(t *testing.T) {
		a := newTestAPI(t)
		a.session.EXPECT().
			SubmitAuthForm(mock.Anything, usecase.AuthFormInput{Mode: usecase.AuthModeSignIn, Email: "ada@example.com", Password: "secret1"}).
			Return(&usecase.AuthFormResult{Mode: usecase.AuthModeSignIn, Identity: identity}, nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/auth/form", `{"mode":"signin","email":"ada@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[*usecase.AuthFormResult](t, env)
		assert.Equal(t, identity, got.Identity)
	})
}

func TestTodoRoutes_SessionGuard(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "signed out", err: domainerrors.ErrNotAuthenticated, wantStatus: http.StatusUnauthorized},
		{name: "session loading", err: domainerrors.ErrSessionLoading, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t)
			a.session.EXPECT().RequireIdentity().Return(nil, tt.err).Once()

			rec, env := a.doJSON(t, http.MethodGet, "/api/v1/todos", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.err.(domainerrors.AppError).ErrorCode(), env.Error.Code)
			a.todos.AssertNotCalled(t, "ListTodos", mock.Anything)
		})
	}
}

func TestTodoRoutes(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "ada@example.com"}

	t.Run("list", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		todo := sampleTodo("Buy milk")
		a.todos.EXPECT().ListTodos(mock.Anything).Return([]*entity.Todo{todo}, nil).Once()

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/todos", "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[[]*entity.Todo](t, env)
		require.Len(t, got, 1)
		assert.Equal(t, "Buy milk", got[0].Title)
	})

	t.Run("refresh refetches", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		a.todos.EXPECT().RefetchTodos(mock.Anything).Return([]*entity.Todo{}, nil).Once()

		rec, _ := a.doJSON(t, http.MethodGet, "/api/v1/todos?refresh=true", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list failure offers a retry", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		a.todos.EXPECT().ListTodos(mock.Anything).Return(nil, domainerrors.ErrListFetchFailed).Once()

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/todos", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "An unexpected error occurred", env.Error.Message)
		assert.True(t, env.Error.Retry)
	})

	t.Run("get", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		todo := sampleTodo("Walk dog")
		a.todos.EXPECT().GetTodo(mock.Anything, todo.ID).Return(todo, nil).Once()

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/todos/"+todo.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, todo.ID, decodeData[*entity.Todo](t, env).ID)
	})

	t.Run("get missing", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		id := uuid.New()
		a.todos.EXPECT().GetTodo(mock.Anything, id).Return(nil, domainerrors.ErrTodoNotFound).Once()

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/todos/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "TODO_NOT_FOUND", env.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/todos/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})

	t.Run("create from json", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		created := sampleTodo("Buy milk")
		a.todos.EXPECT().
			CreateTodo(mock.Anything, usecase.CreateTodoInput{Title: "Buy milk", Description: "2 liters"}).
			Return(created, nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/api/v1/todos", `{"title":"Buy milk","description":"2 liters"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Buy milk", decodeData[*entity.Todo](t, env).Title)
	})

	t.Run("create validation error", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		a.todos.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrTitleRequired).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/api/v1/todos", `{"title":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Title is required", env.Error.Message)
	})

	t.Run("create from multipart with image", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		body, contentType := multipartBody(t, map[string]string{"title": "Photo", "description": "with image"}, "cat.png", "image/png", []byte("png-bytes"))
		a.todos.EXPECT().
			CreateTodo(mock.Anything, mock.MatchedBy(func(input usecase.CreateTodoInput) bool {
				if input.Title != "Photo" || input.Description != "with image" || input.Image == nil {
					return false
				}
				content, err := io.ReadAll(input.Image.Body)

				return err == nil &&
					string(content) == "png-bytes" &&
					input.Image.Filename == "cat.png" &&
					input.Image.ContentType == "image/png" &&
					input.Image.Size == int64(len("png-bytes"))
			})).
			Return(sampleTodo("Photo"), nil).Once()

		rec, _ := a.do(t, http.MethodPost, "/api/v1/todos", body, contentType)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("update from multipart", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		id := uuid.New()
		body, contentType := multipartBody(t, map[string]string{"title": "Renamed", "removeImage": "true"}, "", "", nil)
		a.todos.EXPECT().
			UpdateTodo(mock.Anything, id, mock.MatchedBy(func(input usecase.UpdateTodoInput) bool {
				return input.Title != nil && *input.Title == "Renamed" &&
					input.Description == nil && input.Completed == nil &&
					input.RemoveImage && input.Image == nil
			})).
			Return(sampleTodo("Renamed"), nil).Once()

		rec, _ := a.do(t, http.MethodPatch, "/api/v1/todos/"+id.String(), body, contentType)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update from json", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		id := uuid.New()
		a.todos.EXPECT().
			UpdateTodo(mock.Anything, id, mock.MatchedBy(func(input usecase.UpdateTodoInput) bool {
				return input.Completed != nil && *input.Completed && input.Title == nil
			})).
			Return(sampleTodo("Done"), nil).Once()

		rec, _ := a.doJSON(t, http.MethodPatch, "/api/v1/todos/"+id.String(), `{"completed":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("toggle", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		todo := sampleTodo("Buy milk")
		todo.Completed = true
		a.todos.EXPECT().ToggleTodo(mock.Anything, todo.ID, true).Return(todo, nil).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/api/v1/todos/"+todo.ID.String()+"/toggle", `{"completed":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeData[*entity.Todo](t, env).Completed)
	})

	t.Run("toggle requires completed", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)

		rec, env := a.doJSON(t, http.MethodPost, "/api/v1/todos/"+uuid.NewString()+"/toggle", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		id := uuid.New()
		a.todos.EXPECT().DeleteTodo(mock.Anything, id).Return(nil).Once()

		rec, env := a.doJSON(t, http.MethodDelete, "/api/v1/todos/"+id.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, response.Message{Message: "Todo deleted"}, decodeData[response.Message](t, env))
	})

	t.Run("upload image", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		body, contentType := multipartBody(t, nil, "cat.png", "image/png", []byte("png"))
		a.todos.EXPECT().
			UploadImage(mock.Anything, mock.MatchedBy(func(upload entity.ImageUpload) bool {
				return upload.Filename == "cat.png" && upload.ContentType == "image/png"
			})).
			Return("https://cdn.example.com/cat.png", nil).Once()

		rec, env := a.do(t, http.MethodPost, "/api/v1/todos/images", body, contentType)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "https://cdn.example.com/cat.png", decodeData[handler.UploadImageResponse](t, env).URL)
	})

	t.Run("upload image rejected before any call", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		body, contentType := multipartBody(t, nil, "notes.txt", "text/plain", []byte("hello"))
		a.todos.EXPECT().UploadImage(mock.Anything, mock.Anything).Return("", domainerrors.ErrImageType).Once()

		rec, env := a.do(t, http.MethodPost, "/api/v1/todos/images", body, contentType)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Only image files are allowed", env.Error.Message)
	})

	t.Run("upload requires a file", func(t *testing.T) {
		a := newTestAPI(t)
		a.signedIn(identity)
		body, contentType := multipartBody(t, map[string]string{"title": "x"}, "", "", nil)

		rec, env := a.do(t, http.MethodPost, "/api/v1/todos/images", body, contentType)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "IMAGE_REQUIRED", env.Error.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		a := newTestAPI(t)
		a.users.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Age: 36}}, nil).Once()

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/users", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]*entity.User](t, env), 1)
	})

	t.Run("create", func(t *testing.T) {
		a := newTestAPI(t)
		a.users.EXPECT().
			CreateUser(mock.Anything, usecase.CreateUserInput{Name: "Ada", Email: "ada@example.com", Age: 36}).
			Return(&entity.User{ID: uuid.New(), Name: "Ada"}, nil).Once()

		rec, _ := a.doJSON(t, http.MethodPost, "/api/v1/users", `{"name":"Ada","email":"ada@example.com","age":36}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create validation error", func(t *testing.T) {
		a := newTestAPI(t)
		a.users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAgeInvalid).Once()

		rec, env := a.doJSON(t, http.MethodPost, "/api/v1/users", `{"name":"Ada","email":"ada@example.com","age":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Age must be at least 1", env.Error.Message)
	})

	t.Run("update", func(t *testing.T) {
		a := newTestAPI(t)
		id := uuid.New()
		a.users.EXPECT().
			UpdateUser(mock.Anything, id, mock.MatchedBy(func(input usecase.UpdateUserInput) bool {
				return input.Age != nil && *input.Age == 37 && input.Name == nil
			})).
			Return(&entity.User{ID: id, Age: 37}, nil).Once()

		rec, _ := a.doJSON(t, http.MethodPatch, "/api/v1/users/"+id.String(), `{"age":37}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		a := newTestAPI(t)
		id := uuid.New()
		a.users.EXPECT().GetUser(mock.Anything, id).Return(nil, domainerrors.ErrUserNotFound).Once()

		rec, env := a.doJSON(t, http.MethodGet, "/api/v1/users/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", env.Error.Message)
	})

	t.Run("delete", func(t *testing.T) {
		a := newTestAPI(t)
		id := uuid.New()
		a.users.EXPECT().DeleteUser(mock.Anything, id).Return(nil).Once()

		rec, _ := a.doJSON(t, http.MethodDelete, "/api/v1/users/"+id.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
