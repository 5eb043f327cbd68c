package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Product listings with a limit at or above this value return the whole catalog.
const unpagedProductLimit = 10000

type productService struct {
	productRepo repository.ProductRepository
	cache       service.ProductCache
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts pages through the catalog newest first.
func (srv *productService) ListProducts(ctx context.Context, page, limit int) (*usecase.ProductListOutput, error) {
	if limit <= 0 || limit >= unpagedProductLimit {
		products, total, err := srv.productRepo.List(ctx, 0, 0)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}

		return &usecase.ProductListOutput{
			Products:   products,
			Pagination: entity.NewPagination(1, len(products), total),
		}, nil
	}

	if page < 1 {
		page = 1
	}

	products, total, err := srv.productRepo.List(ctx, entity.Offset(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Pagination: entity.NewPagination(page, limit, total),
	}, nil
}

func (srv *productService) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	cat := entity.Category(strings.TrimSpace(category))
	if !cat.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	products, err := srv.productRepo.FindByCategory(ctx, cat)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// GetProduct reads through the product cache.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.cache.GetProduct(ctx, id, func(ctx context.Context) (*entity.Product, error) {
		return srv.productRepo.FindByID(ctx, id)
	})
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (srv *productService) GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		SKU:         entity.NormalizeSKU(input.SKU),
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Category:    entity.Category(strings.TrimSpace(input.Category)),
		Image:       strings.TrimSpace(input.Image),
		Description: input.Description,
		Stock:       input.Stock,
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapProductError(err)
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("sku", product.SKU))

	return product, nil
}

// UpdateProduct applies only the provided fields and drops the cached copy.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}

	if input.SKU != nil {
		product.SKU = entity.NormalizeSKU(*input.SKU)
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = entity.Category(strings.TrimSpace(*input.Category))
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err)
	}

	srv.invalidate(ctx, id)

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapProductError(err)
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// invalidate drops the cached product; the entry still expires by TTL if this fails.
func (srv *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to invalidate product cache", slog.Any("productID", id), slog.Any("error", err))
	}
}

func validateProduct(product *entity.Product) error {
	switch {
	case product.SKU == "":
		return domainerrors.ErrValidationFailed.WithDetails("sku")
	case product.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name")
	case product.Price < 0:
		return domainerrors.ErrValidationFailed.WithDetails("price")
	case !product.Category.IsValid():
		return domainerrors.ErrInvalidCategory.WithDetails(string(product.Category))
	case product.Image == "":
		return domainerrors.ErrValidationFailed.WithDetails("image")
	case product.Stock < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock")
	}

	return nil
}

// mapProductError translates product repository sentinels into application errors.
func mapProductError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
	case errors.Is(err, repository.ErrDuplicateSKU):
		return errors.Wrap(domainerrors.ErrProductSKUConflict, "product write failed")
	default:
		return errors.Wrap(err, "product repository failed")
	}
}
