package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo/internal/cache"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	mockusecase "todo/internal/mocks/usecase"
	"todo/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type streamFixture struct {
	queries *cache.QueryClient
	todos   *mockusecase.MockTodoUsecase
	session *mockusecase.MockSessionUsecase
	watch   *mockusecase.MockTodoWatch
	url     string
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &streamFixture{
		queries: cache.NewQueryClient(cache.Params{Logger: logger}),
		todos:   mockusecase.NewMockTodoUsecase(t),
		session: mockusecase.NewMockSessionUsecase(t),
		watch:   mockusecase.NewMockTodoWatch(t),
	}

	h := NewTodoHandler(TodoHandlerParams{TodoUC: f.todos, SessionUC: f.session, Queries: f.queries, Logger: logger})
	e := echo.New()
	e.GET("/stream", h.Stream)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	f.url = "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"

	return f
}

// listFrom makes ListTodos go through the real cache like the todo service does.
func (f *streamFixture) listFrom(todos ...*entity.Todo) func(ctx context.Context) ([]*entity.Todo, error) {
	return func(ctx context.Context) ([]*entity.Todo, error) {
		return cache.Query(ctx, f.queries, cache.TodoKeys.Lists(), func(context.Context) ([]*entity.Todo, error) {
			return todos, nil
		})
	}
}

func (f *streamFixture) dial(t *testing.T, ctx context.Context) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.Dial(ctx, f.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })

	return conn
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) StreamFrame {
	t.Helper()

	var frame StreamFrame
	require.NoError(t, wsjson.Read(ctx, conn, &frame))

	return frame
}

func newTodo(title string) *entity.Todo {
	return &entity.Todo{ID: uuid.New(), UserID: uuid.New(), Title: title}
}

func TestStream_PushesCacheChangesAndReleasesWatch(t *testing.T) {
	f := newStreamFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	milk := newTodo("Buy milk")
	released := make(chan struct{})
	f.todos.EXPECT().WatchTodos(mock.Anything).Return(f.watch, nil).Once()
	f.todos.EXPECT().ListTodos(mock.Anything).RunAndReturn(f.listFrom(milk))
	f.session.EXPECT().Subscribe(mock.Anything).Return(func() {}).Once()
	f.watch.EXPECT().Close().RunAndReturn(func() error {
		close(released)

		return nil
	}).Once()

	conn := f.dial(t, ctx)

	frame := readFrame(t, ctx, conn)
	assert.Equal(t, frameSnapshot, frame.Type)
	require.Len(t, frame.Todos, 1)
	assert.Equal(t, "Buy milk", frame.Todos[0].Title)

	// A realtime insert patches the cached list without a fetch.
	dog := newTodo("Walk dog")
	require.True(t, cache.Patch(f.queries, cache.TodoKeys.Lists(), func(old []*entity.Todo) ([]*entity.Todo, bool) {
		return append([]*entity.Todo{dog}, old...), true
	}))

	frame = readFrame(t, ctx, conn)
	require.Len(t, frame.Todos, 2)
	assert.Equal(t, "Walk dog", frame.Todos[0].Title)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	select {
	case <-released:
	case <-ctx.Done():
		t.Fatal("watch was not released after the stream closed")
	}
}

func TestStream_FailedFetchWaitsForSessionChange(t *testing.T) {
	f := newStreamFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	listeners := make(chan func(usecase.SessionState), 1)
	f.todos.EXPECT().WatchTodos(mock.Anything).Return(f.watch, nil).Once()
	f.todos.EXPECT().ListTodos(mock.Anything).Return(nil, domainerrors.ErrNotAuthenticated).Once()
	f.session.EXPECT().Subscribe(mock.Anything).
		Run(func(listener func(usecase.SessionState)) { listeners <- listener }).
		Return(func() {}).Once()
	f.watch.EXPECT().Close().Return(nil).Maybe()

	conn := f.dial(t, ctx)

	frame := readFrame(t, ctx, conn)
	assert.Equal(t, frameError, frame.Type)
	require.NotNil(t, frame.Error)
	assert.Equal(t, "NOT_AUTHENTICATED", frame.Error.Code)

	// Signing in wakes the stream, which fetches again.
	f.todos.EXPECT().ListTodos(mock.Anything).RunAndReturn(f.listFrom(newTodo("Buy milk")))
	listener := <-listeners
	listener(usecase.SessionState{Status: usecase.SessionReady, Identity: &entity.Identity{ID: uuid.New()}})

	frame = readFrame(t, ctx, conn)
	assert.Equal(t, frameSnapshot, frame.Type)
	assert.Len(t, frame.Todos, 1)
}

func TestStream_WatchFailureClosesConnection(t *testing.T) {
	f := newStreamFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f.todos.EXPECT().WatchTodos(mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()

	conn := f.dial(t, ctx)

	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusInternalError, websocket.CloseStatus(err))
}
