package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the per-user cart operations. Every call returns the full cart
// with product details joined into each line.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
