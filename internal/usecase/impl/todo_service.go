package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"todo/config"
	"todo/internal/cache"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const todosTable = "todos"

// TodoServiceParams holds dependencies for the todo usecase, injected by Fx.
type TodoServiceParams struct {
	fx.In

	Config   *config.Config
	Todos    repository.TodoRepository
	Storage  service.ObjectStorage
	Realtime service.RealtimeService
	Sessions usecase.SessionUsecase
	Queries  *cache.QueryClient
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// todoService implements the TodoUsecase interface.
type todoService struct {
	todos         repository.TodoRepository
	storage       service.ObjectStorage
	realtime      service.RealtimeService
	sessions      usecase.SessionUsecase
	queries       *cache.QueryClient
	metrics       service.MetricsRecorder
	validate      *inputValidator
	maxImageBytes int64
	now           func() time.Time
	logger        *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	maxImageBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxImageBytes = params.Config.Storage.MaxUploadBytes
	}
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &todoService{
		todos:         params.Todos,
		storage:       params.Storage,
		realtime:      params.Realtime,
		sessions:      params.Sessions,
		queries:       params.Queries,
		metrics:       metrics,
		validate:      newInputValidator(),
		maxImageBytes: maxImageBytes,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTodos returns the cached list, newest first, fetching it when absent or stale.
func (srv *todoService) ListTodos(ctx context.Context) ([]*entity.Todo, error) {
	todos, err := cache.Query(ctx, srv.queries, cache.TodoKeys.Lists(), srv.fetchList)
	if err != nil {
		return nil, srv.listFetchError(ctx, err)
	}

	return todos, nil
}

// RefetchTodos reloads the list regardless of freshness.
func (srv *todoService) RefetchTodos(ctx context.Context) ([]*entity.Todo, error) {
	todos, err := cache.Refetch(ctx, srv.queries, cache.TodoKeys.Lists(), srv.fetchList)
	if err != nil {
		return nil, srv.listFetchError(ctx, err)
	}

	return todos, nil
}

func (srv *todoService) fetchList(ctx context.Context) ([]*entity.Todo, error) {
	todos, err := srv.todos.List(ctx, repository.OrderByCreatedAtDesc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch todos")
	}
	if todos == nil {
		todos = []*entity.Todo{}
	}

	return todos, nil
}

func (srv *todoService) listFetchError(ctx context.Context, err error) error {
	srv.log(ctx).Error("Failed to fetch todos", slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return domainerrors.ErrListFetchFailed.WithMessage(appErr.Message())
	}

	return domainerrors.ErrListFetchFailed
}

// GetTodo returns one todo through its detail key.
func (srv *todoService) GetTodo(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	todo, err := cache.Query(ctx, srv.queries, cache.TodoKeys.Detail(id.String()), func(ctx context.Context) (*entity.Todo, error) {
		return srv.todos.FindByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch todo")
	}

	return todo, nil
}

// CreateTodo inserts a todo owned by the signed-in identity, uploading its
// image first when one is attached.
func (srv *todoService) CreateTodo(ctx context.Context, input usecase.CreateTodoInput) (*entity.Todo, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}
	if input.Image != nil {
		if err := validateImage(*input.Image, srv.maxImageBytes); err != nil {
			return nil, err
		}
	}

	identity, err := srv.sessions.RequireIdentity()
	if err != nil {
		return nil, err
	}

	insert := &entity.TodoInsert{
		UserID:    identity.ID,
		Title:     input.Title,
		Completed: false,
	}
	if input.Description != "" {
		insert.Description = &input.Description
	}

	var uploadedKey string
	if input.Image != nil {
		imageURL, key, err := srv.upload(ctx, identity.ID, *input.Image)
		if err != nil {
			return nil, err
		}
		insert.ImageURL = &imageURL
		uploadedKey = key
	}

	todo, err := srv.todos.Create(ctx, insert)
	if err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Any("error", err))
		if uploadedKey != "" {
			srv.removeImage(ctx, uploadedKey)
		}

		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Info("Todo created", slog.String("todo_id", todo.ID.String()))
	srv.queries.Invalidate(cache.TodoKeys.Lists())

	return todo, nil
}

// UpdateTodo applies the set fields of input, replacing or detaching the
// image when asked. The previous image is removed best-effort afterwards.
func (srv *todoService) UpdateTodo(ctx context.Context, id uuid.UUID, input usecase.UpdateTodoInput) (*entity.Todo, error) {
	patch := &entity.TodoPatch{Completed: input.Completed}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.ErrTitleRequired
		}
		patch.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		patch.Description = &description
	}
	if input.Image != nil {
		if err := validateImage(*input.Image, srv.maxImageBytes); err != nil {
			return nil, err
		}
	}
	patch.ClearImage = input.RemoveImage && input.Image == nil
	if patch.IsEmpty() && input.Image == nil {
		return nil, domainerrors.ErrEmptyUpdate
	}

	var (
		previous    *entity.Todo
		uploadedKey string
	)
	if input.Image != nil || input.RemoveImage {
		current, err := srv.todos.FindByID(ctx, id)
		if err != nil {
			return nil, srv.notFound(err, "failed to fetch todo")
		}
		previous = current

		if input.Image != nil {
			imageURL, key, err := srv.upload(ctx, current.UserID, *input.Image)
			if err != nil {
				return nil, err
			}
			patch.ImageURL = &imageURL
			uploadedKey = key
		}
	}

	todo, err := srv.applyPatch(ctx, id, patch)
	if err != nil {
		if uploadedKey != "" {
			srv.removeImage(ctx, uploadedKey)
		}

		return nil, err
	}

	if previous.HasImage() && (todo.ImageURL == nil || *todo.ImageURL != *previous.ImageURL) {
		srv.removeImageURL(ctx, *previous.ImageURL)
	}

	return todo, nil
}

// ToggleTodo sets the completed flag.
func (srv *todoService) ToggleTodo(ctx context.Context, id uuid.UUID, completed bool) (*entity.Todo, error) {
	return srv.applyPatch(ctx, id, &entity.TodoPatch{Completed: &completed})
}

func (srv *todoService) applyPatch(ctx context.Context, id uuid.UUID, patch *entity.TodoPatch) (*entity.Todo, error) {
	todo, err := srv.todos.Update(ctx, id, patch)
	if err != nil {
		srv.log(ctx).Error("Failed to update todo", slog.String("todo_id", id.String()), slog.Any("error", err))

		return nil, srv.notFound(err, "failed to update todo")
	}

	srv.queries.SetData(cache.TodoKeys.Detail(todo.ID.String()), todo)
	srv.queries.Invalidate(cache.TodoKeys.Lists())

	return todo, nil
}

// DeleteTodo removes the todo, then its stored image. A failed image removal
// is logged and counted; the deletion still succeeds.
func (srv *todoService) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	todo, err := srv.todos.FindByID(ctx, id)
	if err != nil {
		return srv.notFound(err, "failed to fetch todo")
	}

	if err := srv.todos.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete todo", slog.String("todo_id", id.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete todo")
	}

	if todo.HasImage() {
		srv.removeImageURL(ctx, *todo.ImageURL)
	}

	srv.log(ctx).Info("Todo deleted", slog.String("todo_id", id.String()))
	srv.queries.Invalidate(cache.TodoKeys.Lists())

	return nil
}

// UploadImage stores an image for the signed-in identity and returns its public URL.
func (srv *todoService) UploadImage(ctx context.Context, upload entity.ImageUpload) (string, error) {
	if err := validateImage(upload, srv.maxImageBytes); err != nil {
		return "", err
	}

	identity, err := srv.sessions.RequireIdentity()
	if err != nil {
		return "", err
	}

	imageURL, _, err := srv.upload(ctx, identity.ID, upload)

	return imageURL, err
}

func (srv *todoService) upload(ctx context.Context, ownerID uuid.UUID, upload entity.ImageUpload) (imageURL, key string, err error) {
	key = imageKey(ownerID, srv.now(), upload)
	if err := srv.storage.Upload(ctx, key, upload.ContentType, upload.Body); err != nil {
		srv.log(ctx).Error("Failed to upload image", slog.String("key", key), slog.Any("error", err))

		return "", "", errors.Wrap(err, "failed to upload image")
	}

	srv.log(ctx).Debug("Image uploaded", slog.String("key", key), slog.Int64("size", upload.Size))

	return srv.storage.PublicURL(key), key, nil
}

func (srv *todoService) removeImageURL(ctx context.Context, imageURL string) {
	key, ok := srv.storage.KeyFromURL(imageURL)
	if !ok {
		srv.log(ctx).Warn("Image URL does not point into the image bucket; object left in place", slog.String("image_url", imageURL))
		srv.metrics.RecordOrphanedImage()

		return
	}

	srv.removeImage(ctx, key)
}

func (srv *todoService) removeImage(ctx context.Context, key string) {
	if err := srv.storage.Remove(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove image; object orphaned", slog.String("key", key), slog.Any("error", err))
		srv.metrics.RecordOrphanedImage()
	}
}

func (srv *todoService) notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return domainerrors.ErrTodoNotFound
	}

	return errors.Wrap(err, msg)
}

// WatchTodos subscribes to todos changes and patches the cached list.
func (srv *todoService) WatchTodos(ctx context.Context) (usecase.TodoWatch, error) {
	sub, err := srv.realtime.Subscribe(ctx, todosTable, srv.applyChange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to todo changes")
	}

	srv.log(ctx).Debug("Watching todo changes")

	return &todoWatch{sub: sub}, nil
}

// applyChange patches the list key in place. Nothing is fetched.
func (srv *todoService) applyChange(event entity.ChangeEvent) {
	srv.metrics.RecordRealtimeEvent(event.Table, string(event.Type))

	switch event.Type {
	case entity.ChangeInsert:
		todo, ok := srv.decodeTodo(event.Record)
		if !ok {
			return
		}
		cache.Patch(srv.queries, cache.TodoKeys.Lists(), func(list []*entity.Todo) ([]*entity.Todo, bool) {
			return prependTodo(list, todo), true
		})

	case entity.ChangeUpdate:
		todo, ok := srv.decodeTodo(event.Record)
		if !ok {
			return
		}
		cache.Patch(srv.queries, cache.TodoKeys.Lists(), func(list []*entity.Todo) ([]*entity.Todo, bool) {
			return replaceTodo(list, todo)
		})

	case entity.ChangeDelete:
		var old struct {
			ID uuid.UUID `json:"id"`
		}
		if err := json.Unmarshal(event.OldRecord, &old); err != nil || old.ID == uuid.Nil {
			srv.logger.Warn("Ignoring delete notification without id", slog.Any("error", err))

			return
		}
		cache.Patch(srv.queries, cache.TodoKeys.Lists(), func(list []*entity.Todo) ([]*entity.Todo, bool) {
			return removeTodo(list, old.ID)
		})

	default:
		srv.logger.Debug("Ignoring change notification", slog.String("type", string(event.Type)))
	}
}

func (srv *todoService) decodeTodo(raw json.RawMessage) (*entity.Todo, bool) {
	var todo entity.Todo
	if err := json.Unmarshal(raw, &todo); err != nil || todo.ID == uuid.Nil {
		srv.logger.Warn("Ignoring malformed todo notification", slog.Any("error", err))

		return nil, false
	}

	return &todo, true
}

// The list is shared with readers; every patch builds a new slice.

func prependTodo(list []*entity.Todo, todo *entity.Todo) []*entity.Todo {
	if replaced, ok := replaceTodo(list, todo); ok {
		return replaced
	}

	out := make([]*entity.Todo, 0, len(list)+1)
	out = append(out, todo)

	return append(out, list...)
}

func replaceTodo(list []*entity.Todo, todo *entity.Todo) ([]*entity.Todo, bool) {
	for i, existing := range list {
		if existing.ID != todo.ID {
			continue
		}
		out := make([]*entity.Todo, len(list))
		copy(out, list)
		out[i] = todo

		return out, true
	}

	return list, false
}

func removeTodo(list []*entity.Todo, id uuid.UUID) ([]*entity.Todo, bool) {
	for i, existing := range list {
		if existing.ID != id {
			continue
		}
		out := make([]*entity.Todo, 0, len(list)-1)
		out = append(out, list[:i]...)

		return append(out, list[i+1:]...), true
	}

	return list, false
}

// imageKey builds "{ownerId}/{unixMillis}.{ext}".
func imageKey(ownerID uuid.UUID, at time.Time, upload entity.ImageUpload) string {
	return ownerID.String() + "/" + strconv.FormatInt(at.UnixMilli(), 10) + "." + imageExtension(upload)
}

func imageExtension(upload entity.ImageUpload) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(upload.Filename)), "."); ext != "" {
		return ext
	}

	subtype := strings.TrimPrefix(strings.ToLower(upload.ContentType), "image/")
	if i := strings.IndexAny(subtype, "+;"); i >= 0 {
		subtype = subtype[:i]
	}
	if subtype == "" {
		return "img"
	}

	return subtype
}

type todoWatch struct {
	sub  service.Subscription
	once sync.Once
	err  error
}

// Close releases the realtime subscription.
func (w *todoWatch) Close() error {
	w.once.Do(func() {
		w.err = w.sub.Unsubscribe()
	})

	return w.err
}
