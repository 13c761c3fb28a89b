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

// userRepository implements the repository.UserRepository interface over REST.
type userRepository struct {
	users *table[entity.User]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *backend.Client, tokens service.TokenSource) repository.UserRepository {
	return &userRepository{users: newTable[entity.User](constants.TableUsers, client, tokens)}
}

func (repo *userRepository) List(ctx context.Context, order repository.OrderBy) ([]*entity.User, error) {
	users, err := repo.users.list(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := repo.users.findByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (repo *userRepository) Create(ctx context.Context, insert *entity.UserInsert) (*entity.User, error) {
	user, err := repo.users.insert(ctx, insert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	if user == nil {
		return nil, errors.New("insert returned no user row")
	}

	return user, nil
}

func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.UserPatch) (*entity.User, error) {
	user, err := repo.users.update(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(repo.users.delete(ctx, id), "failed to delete user")
}
