package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductLoader fetches a product from the source of truth on a cache miss.
type ProductLoader func(ctx context.Context) (*entity.Product, error)

// ProductCache is a read-through cache for single-product lookups.
type ProductCache interface {
	// GetProduct returns the cached product or calls load and stores its result.
	GetProduct(ctx context.Context, id uuid.UUID, load ProductLoader) (*entity.Product, error)

	// Invalidate drops the cached entry for id.
	Invalidate(ctx context.Context, id uuid.UUID) error
}
