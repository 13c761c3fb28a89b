package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when no todo row matches the id.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository is the gateway to the remote "todos" collection. Row
// visibility is decided by the backend for the bearer of the current session.
type TodoRepository interface {
	List(ctx context.Context, order OrderBy) ([]*entity.Todo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	Create(ctx context.Context, insert *entity.TodoInsert) (*entity.Todo, error)
	Update(ctx context.Context, id uuid.UUID, patch *entity.TodoPatch) (*entity.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
