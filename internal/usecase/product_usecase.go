package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines a new catalog entry.
type CreateProductInput struct {
	SKU         string
	Name        string
	Price       float64
	Category    string
	Image       string
	Description string
	Stock       int
}

// UpdateProductInput holds partial product changes. Nil fields are left untouched.
type UpdateProductInput struct {
	SKU         *string
	Name        *string
	Price       *float64
	Category    *string
	Image       *string
	Description *string
	Stock       *int
}

// ProductListOutput is one page of the catalog.
type ProductListOutput struct {
	Products   []*entity.Product
	Pagination entity.Pagination
}

// ProductUsecase defines the catalog operations.
type ProductUsecase interface {
	// ListProducts pages through the catalog. A limit outside (0, 10000) returns everything.
	ListProducts(ctx context.Context, page, limit int) (*ProductListOutput, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
