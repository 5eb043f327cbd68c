// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the self-service profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name     *string
	Address  *string
	Password *string
}

// --- Output DTOs ---

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// Authenticate resolves a bearer token to the caller it was issued for.
	Authenticate(ctx context.Context, token string) (*Actor, error)
}
