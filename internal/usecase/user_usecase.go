package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput holds the admin-side changes to an account. Nil fields are left untouched.
type UpdateUserInput struct {
	Name    *string
	Email   *string
	Role    *string
	Address *string
}

// UserUsecase defines the administrative user management operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
