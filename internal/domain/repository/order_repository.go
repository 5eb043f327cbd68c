package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the order number is already taken.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	// ErrDuplicateMerchantUID is returned when the merchant uid is already recorded.
	ErrDuplicateMerchantUID = errors.New("merchant uid already exists")
)

// OrderFilter narrows an order listing. Nil fields are not filtered on.
type OrderFilter struct {
	UserID *uuid.UUID
	Status *entity.OrderStatus
	Offset int
	Limit  int
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists an order with its items. Subtotal and total are recomputed first.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items and owner summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByMerchantUID retrieves the order recorded for a payment id.
	FindByMerchantUID(ctx context.Context, merchantUID string) (*entity.Order, error)

	// FindLastOrderNumber returns the greatest order number starting with prefix,
	// or an empty string when none exists.
	FindLastOrderNumber(ctx context.Context, prefix string) (string, error)

	// List returns orders newest first along with the total matching count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// Update persists the mutable status fields of an order.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
