package impl

import (
	"context"
	"log/slog"
	"strings"

	"todo/internal/cache"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/errors"
	"todo/internal/usecase"

	"github.com/google/uuid"
)

// userService implements the UserUsecase interface.
type userService struct {
	users    repository.UserRepository
	queries  *cache.QueryClient
	validate *inputValidator
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	users repository.UserRepository,
	queries *cache.QueryClient,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		users:    users,
		queries:  queries,
		validate: newInputValidator(),
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns the cached list ordered by name.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := cache.Query(ctx, srv.queries, cache.UserKeys.Lists(), func(ctx context.Context) ([]*entity.User, error) {
		users, err := srv.users.List(ctx, repository.OrderByNameAsc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch users")
		}
		if users == nil {
			users = []*entity.User{}
		}

		return users, nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to fetch users", slog.Any("error", err))

		return nil, err
	}

	return users, nil
}

// GetUser returns one user through its detail key.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := cache.Query(ctx, srv.queries, cache.UserKeys.Detail(id.String()), func(ctx context.Context) (*entity.User, error) {
		return srv.users.FindByID(ctx, id)
	})
	if err != nil {
		return nil, srv.notFound(err, "failed to fetch user")
	}

	return user, nil
}

// CreateUser inserts a user record.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := srv.users.Create(ctx, &entity.UserInsert{Name: input.Name, Email: input.Email, Age: input.Age})
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.queries.Invalidate(cache.UserKeys.Lists())

	return user, nil
}

// UpdateUser applies the set fields of input.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	patch := &entity.UserPatch{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrNameRequired
		}
		patch.Name = &name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, domainerrors.ErrEmailRequired
		}
		patch.Email = &email
	}
	if input.Age != nil {
		if *input.Age < 1 {
			return nil, domainerrors.ErrAgeInvalid
		}
		patch.Age = input.Age
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyUpdate
	}

	user, err := srv.users.Update(ctx, id, patch)
	if err != nil {
		srv.log(ctx).Error("Failed to update user", slog.String("user_id", id.String()), slog.Any("error", err))

		return nil, srv.notFound(err, "failed to update user")
	}

	srv.queries.SetData(cache.UserKeys.Detail(user.ID.String()), user)
	srv.queries.Invalidate(cache.UserKeys.Lists())

	return user, nil
}

// DeleteUser removes a user record.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.users.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.String("user_id", id.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.queries.Invalidate(cache.UserKeys.Lists())

	return nil
}

func (srv *userService) notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, msg)
}
