package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "crm-services/internal/domain/user"
	pkgerrors "crm-services/pkg/errors"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing the plain PostgreSQL implementation
// and the caching decorator to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, fields domain.Update) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserUsecase implements the business logic for user management operations.
type UserUsecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of UserUsecase.
func New(r Repository, log *zap.Logger) *UserUsecase {
	return &UserUsecase{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a typed
// validation error with a human-readable message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// CreateUser creates a new user after validating the request. The email
// uniqueness constraint is enforced by storage and surfaced as a conflict.
func (uc *UserUsecase) CreateUser(ctx context.Context, in CreateUserRequest) (*domain.User, error) {
	uc.log.Info("creating user", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	role := in.Role
	if role == "" {
		role = domain.DefaultRole
	}

	u, err := uc.repo.Create(ctx, &domain.User{
		Email: in.Email,
		Name:  in.Name,
		Role:  role,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return u, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		uc.log.Warn("get user validation failed", zap.Int64("id", id))
		return nil, pkgerrors.NewValidationError("id", "must be a positive number")
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return u, nil
}

// UpdateUser applies a partial update. At least one field must be supplied
// or the request is rejected before any write happens.
func (uc *UserUsecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*domain.User, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	fields := domain.Update{
		Name:   in.Name,
		Role:   in.Role,
		Active: in.Active,
	}
	if fields.Empty() {
		uc.log.Warn("update user rejected", zap.Int64("id", in.ID), zap.String("reason", "no fields to update"))
		return nil, pkgerrors.NewValidationError("", "no fields to update")
	}

	u, err := uc.repo.Update(ctx, in.ID, fields)
	if err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return u, nil
}

// DeleteUser deletes a user by ID.
func (uc *UserUsecase) DeleteUser(ctx context.Context, id int64) error {
	uc.log.Info("deleting user", zap.Int64("id", id))

	if id <= 0 {
		uc.log.Warn("delete user validation failed", zap.Int64("id", id))
		return pkgerrors.NewValidationError("id", "must be a positive number")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ListUsers retrieves a page of users ordered by creation time descending.
func (uc *UserUsecase) ListUsers(ctx context.Context, in ListUsersRequest) ([]domain.User, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)

	uc.log.Info("listing users", zap.Int("limit", limit), zap.Int("offset", offset))

	users, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	return users, nil
}

// normalizePage applies the shared pagination defaults and bounds.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
