package rest

import (
	"context"

	"todo/internal/domain/constants"
	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/infra/backend"

	"github.com/google/uuid"
)

// todoRepository implements the repository.TodoRepository interface over REST.
type todoRepository struct {
	todos *table[entity.Todo]
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(client *backend.Client, tokens service.TokenSource) repository.TodoRepository {
	return &todoRepository{todos: newTable[entity.Todo](constants.TableTodos, client, tokens)}
}

// List returns the todos visible to the current bearer.
func (repo *todoRepository) List(ctx context.Context, order repository.OrderBy) ([]*entity.Todo, error) {
	todos, err := repo.todos.list(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// FindByID retrieves a single todo, or repository.ErrTodoNotFound.
func (repo *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	todo, err := repo.todos.findByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find todo by id")
	}
	if todo == nil {
		return nil, repository.ErrTodoNotFound
	}

	return todo, nil
}

// Create inserts a todo row and returns it as stored.
func (repo *todoRepository) Create(ctx context.Context, insert *entity.TodoInsert) (*entity.Todo, error) {
	todo, err := repo.todos.insert(ctx, insert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create todo")
	}
	if todo == nil {
		return nil, errors.New("insert returned no todo row")
	}

	return todo, nil
}

// Update applies patch to the todo row and returns it as stored.
func (repo *todoRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.TodoPatch) (*entity.Todo, error) {
	todo, err := repo.todos.update(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update todo")
	}
	if todo == nil {
		return nil, repository.ErrTodoNotFound
	}

	return todo, nil
}

// Delete removes the todo row.
func (repo *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(repo.todos.delete(ctx, id), "failed to delete todo")
}
