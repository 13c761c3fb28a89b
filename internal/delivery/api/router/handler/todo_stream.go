package handler

import (
	"context"
	"log/slog"
	"time"

	"todo/internal/cache"
	"todo/internal/delivery/api/response"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/errors"
	"todo/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
)

const (
	frameSnapshot = "snapshot"
	frameError    = "error"

	streamWriteTimeout = 10 * time.Second
)

// StreamFrame is one message pushed on the todo stream.
type StreamFrame struct {
	Type  string              `json:"type"`
	Todos []*entity.Todo      `json:"todos"`
	Error *response.ErrorInfo `json:"error,omitempty"`
}

// Stream upgrades to a websocket and pushes the todo list every time its
// cache entry changes. The realtime watch lives exactly as long as the
// connection.
func (h *TodoHandler) Stream(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local API, any origin
	})
	if err != nil {
		h.log(c).Warn("Failed to accept todo stream", slog.Any("error", err))

		return nil
	}
	defer conn.CloseNow()

	// Client frames are ignored; ctx ends when the peer goes away.
	ctx := conn.CloseRead(c.Request().Context())

	watch, err := h.todoUC.WatchTodos(ctx)
	if err != nil {
		h.log(c).Error("Failed to watch todo changes", slog.Any("error", err))
		_ = conn.Close(websocket.StatusInternalError, "realtime unavailable")

		return nil
	}
	defer func() {
		if err := watch.Close(); err != nil {
			h.log(c).Warn("Failed to release todo watch", slog.Any("error", err))
		}
	}()

	changes := make(chan struct{}, 1)
	unsubscribeCache := h.queries.Subscribe(cache.TodoKeys.Lists(), func(cache.Snapshot) { signal(changes) })
	defer unsubscribeCache()

	sessions := make(chan struct{}, 1)
	unsubscribeSession := h.sessionUC.Subscribe(func(usecase.SessionState) { signal(sessions) })
	defer unsubscribeSession()

	h.log(c).Debug("Todo stream opened")
	if err := h.pushSnapshots(ctx, conn, changes, sessions); err != nil && ctx.Err() == nil {
		h.log(c).Debug("Todo stream ended", slog.Any("error", err))
	}
	_ = conn.Close(websocket.StatusNormalClosure, "")

	return nil
}

// pushSnapshots writes the list whenever it holds new data and fetches it
// whenever it is missing or stale. After a failed fetch it waits for the
// cache or the session to change before trying again.
func (h *TodoHandler) pushSnapshots(ctx context.Context, conn *websocket.Conn, changes, sessions <-chan struct{}) error {
	key := cache.TodoKeys.Lists()

	var (
		sent   time.Time
		failed bool
	)
	for {
		snap := h.queries.Peek(key)
		switch {
		case snap.Status == cache.StatusLoading:
		case snap.Status == cache.StatusSuccess && !snap.Stale:
			failed = false
			if !snap.UpdatedAt.Equal(sent) {
				todos, _ := snap.Data.([]*entity.Todo)
				if err := writeFrame(ctx, conn, StreamFrame{Type: frameSnapshot, Todos: todos}); err != nil {
					return err
				}
				sent = snap.UpdatedAt
			}
		case failed:
		default:
			if _, err := h.todoUC.ListTodos(ctx); err != nil {
				if ctx.Err() != nil {
					return errors.WithStack(ctx.Err())
				}
				failed = true
				if err := writeFrame(ctx, conn, errorFrame(err)); err != nil {
					return err
				}
			}

			continue
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-changes:
		case <-sessions:
			failed = false
		}
	}
}

func errorFrame(err error) StreamFrame {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.ErrInternalError
	}

	return StreamFrame{Type: frameError, Error: response.AppErrorInfo(appErr)}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, frame StreamFrame) error {
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()

	return errors.WithStack(wsjson.Write(ctx, conn, frame))
}

func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
