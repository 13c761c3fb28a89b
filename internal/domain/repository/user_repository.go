// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user row matches the id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the gateway to the remote "users" collection.
type UserRepository interface {
	// List returns every user row in the given order.
	List(ctx context.Context, order OrderBy) ([]*entity.User, error)

	// FindByID returns one user row, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create inserts a row and returns it as stored.
	Create(ctx context.Context, insert *entity.UserInsert) (*entity.User, error)

	// Update applies patch to the row and returns it as stored.
	Update(ctx context.Context, id uuid.UUID, patch *entity.UserPatch) (*entity.User, error)

	// Delete removes the row. Deleting a missing row is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
