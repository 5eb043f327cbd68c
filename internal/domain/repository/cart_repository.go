package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when the user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// FindByUserID loads the user's cart with product details joined into each line.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists an empty cart. A concurrent creation for the same user is absorbed
	// and the existing cart is loaded into cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// Save replaces the cart lines and total with the given state.
	Save(ctx context.Context, cart *entity.Cart) error
}
