package usecase

import (
	"context"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput defines a new todo. Title and description are trimmed
// before validation.
type CreateTodoInput struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Image       *entity.ImageUpload `json:"-"`
}

// UpdateTodoInput changes the non-nil fields of a todo. RemoveImage detaches
// the current image; Image replaces it.
type UpdateTodoInput struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Completed   *bool               `json:"completed,omitempty"`
	RemoveImage bool                `json:"removeImage,omitempty"`
	Image       *entity.ImageUpload `json:"-"`
}

// TodoWatch is a scoped realtime subscription to the todos collection.
// Close releases it and is safe to call more than once.
type TodoWatch interface {
	Close() error
}

// TodoUsecase defines the todo operations of the signed-in identity. Reads go
// through the query cache; mutations update it only after the backend call
// succeeded.
type TodoUsecase interface {
	ListTodos(ctx context.Context) ([]*entity.Todo, error)
	RefetchTodos(ctx context.Context) ([]*entity.Todo, error)
	GetTodo(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	CreateTodo(ctx context.Context, input CreateTodoInput) (*entity.Todo, error)
	UpdateTodo(ctx context.Context, id uuid.UUID, input UpdateTodoInput) (*entity.Todo, error)
	ToggleTodo(ctx context.Context, id uuid.UUID, completed bool) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, upload entity.ImageUpload) (string, error)

	// WatchTodos patches the cached list from realtime change notifications
	// until the returned watch is closed.
	WatchTodos(ctx context.Context) (TodoWatch, error)
}
