package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when another product already uses the SKU.
	ErrDuplicateSKU = errors.New("sku already exists")
	// ErrInsufficientStock is returned when a conditional stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySKU retrieves a product by its normalized SKU.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// FindByCategory returns all products of a category, newest first.
	FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// List returns products newest first along with the total count.
	// A non-positive limit returns every product.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	// Create persists a new product. Returns ErrDuplicateSKU on a unique violation.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product. Returns ErrDuplicateSKU on a unique violation.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts quantity only when enough stock remains.
	// Returns ErrInsufficientStock when it does not, ErrProductNotFound when the product is gone.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
