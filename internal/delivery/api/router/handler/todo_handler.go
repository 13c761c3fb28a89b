package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"todo/internal/cache"
	"todo/internal/delivery/api/response"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	"todo/internal/errors"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageField = "image"

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC    usecase.TodoUsecase
	SessionUC usecase.SessionUsecase
	Queries   *cache.QueryClient
	Logger    *slog.Logger
}

// TodoHandler holds dependencies for todo-related handlers
type TodoHandler struct {
	todoUC    usecase.TodoUsecase
	sessionUC usecase.SessionUsecase
	queries   *cache.QueryClient
	logger    *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{
		todoUC:    params.TodoUC,
		sessionUC: params.SessionUC,
		queries:   params.Queries,
		logger:    params.Logger,
	}
}

// ToggleTodoRequest represents the request body for toggling completion
type ToggleTodoRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// UploadImageResponse carries the public URL of an uploaded image
type UploadImageResponse struct {
	URL string `json:"url"`
}

func (h *TodoHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// ListTodos returns the cached list; ?refresh=true forces a refetch.
func (h *TodoHandler) ListTodos(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		todos []*entity.Todo
		err   error
	)
	if refresh, _ := strconv.ParseBool(c.QueryParam("refresh")); refresh {
		todos, err = h.todoUC.RefetchTodos(ctx)
	} else {
		todos, err = h.todoUC.ListTodos(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todos)
}

// GetTodo returns one todo
func (h *TodoHandler) GetTodo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	todo, err := h.todoUC.GetTodo(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// CreateTodo accepts JSON, or a multipart form carrying an optional image.
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	var input usecase.CreateTodoInput
	if isMultipart(c) {
		input.Title = c.FormValue("title")
		input.Description = c.FormValue("description")

		image, release, err := formImage(c)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid image upload")
		}
		defer release()
		input.Image = image
	} else if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	todo, err := h.todoUC.CreateTodo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, todo)
}

// UpdateTodo changes the given fields. A multipart form may replace the image.
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	var input usecase.UpdateTodoInput
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
		}
		input.Title = formString(form.Value, "title")
		input.Description = formString(form.Value, "description")
		if input.Completed, err = formBool(form.Value, "completed"); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid completed value")
		}
		removeImage, err := formBool(form.Value, "removeImage")
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid removeImage value")
		}
		input.RemoveImage = removeImage != nil && *removeImage

		image, release, err := formImage(c)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid image upload")
		}
		defer release()
		input.Image = image
	} else if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	todo, err := h.todoUC.UpdateTodo(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// ToggleTodo sets the completed flag
func (h *TodoHandler) ToggleTodo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	var req ToggleTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.todoUC.ToggleTodo(c.Request().Context(), id, *req.Completed)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// DeleteTodo removes a todo and its image
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	if err := h.todoUC.DeleteTodo(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, "Todo deleted")
}

// UploadImage stores an image without attaching it and returns its URL.
func (h *TodoHandler) UploadImage(c echo.Context) error {
	image, release, err := formImage(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer release()
	if image == nil {
		return response.BadRequest(c, "IMAGE_REQUIRED", "An image file is required")
	}

	url, err := h.todoUC.UploadImage(c.Request().Context(), *image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, UploadImageResponse{URL: url})
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formImage opens the uploaded image, if any. release closes it.
func formImage(c echo.Context) (*entity.ImageUpload, func(), error) {
	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, errors.WithStack(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.WithStack(err)
	}

	return &entity.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, nil
}

func formString(values map[string][]string, name string) *string {
	v, ok := values[name]
	if !ok || len(v) == 0 {
		return nil
	}

	return &v[0]
}

func formBool(values map[string][]string, name string) (*bool, error) {
	s := formString(values, name)
	if s == nil {
		return nil, nil
	}
	b, err := strconv.ParseBool(*s)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &b, nil
}
