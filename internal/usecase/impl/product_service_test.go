package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	cache       *mockSvc.MockProductCache
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	cache := mockSvc.NewMockProductCache(t)

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		cache:       cache,
	}
}

func sampleProduct() *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		SKU:      "TS-001",
		Name:     "베이직 티셔츠",
		Price:    19000,
		Category: entity.CategoryTops,
		Image:    "/images/ts-001.jpg",
		Stock:    10,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	t.Run("paged", func(t *testing.T) {
		fx := createTestProductService(t)

		fx.productRepo.EXPECT().List(mock.Anything, 20, 10).Return([]*entity.Product{sampleProduct()}, int64(21), nil)

		out, err := fx.service.ListProducts(context.Background(), 3, 10)

		require.NoError(t, err)
		assert.Len(t, out.Products, 1)
		assert.Equal(t, 3, out.Pagination.Page)
		assert.Equal(t, 3, out.Pagination.TotalPages)
		assert.False(t, out.Pagination.HasNextPage)
		assert.True(t, out.Pagination.HasPrevPage)
	})

	t.Run("whole catalog", func(t *testing.T) {
		for _, limit := range []int{0, 10000, 50000} {
			fx := createTestProductService(t)
			products := []*entity.Product{sampleProduct(), sampleProduct()}

			fx.productRepo.EXPECT().List(mock.Anything, 0, 0).Return(products, int64(2), nil)

			out, err := fx.service.ListProducts(context.Background(), 5, limit)

			require.NoError(t, err)
			assert.Len(t, out.Products, 2)
			assert.Equal(t, 1, out.Pagination.Page)
			assert.Equal(t, 2, out.Pagination.Limit)
			assert.False(t, out.Pagination.HasNextPage)
		}
	})
}

func TestProductService_ListByCategory(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().
		FindByCategory(mock.Anything, entity.CategoryBottoms).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListByCategory(context.Background(), "하의")
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = fx.service.ListByCategory(context.Background(), "shoes")
	requireAppError(t, err, domainerrors.ErrInvalidCategory)
}

func TestProductService_GetProduct_ReadsThroughCache(t *testing.T) {
	fx := createTestProductService(t)
	product := sampleProduct()

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil).Once()
	fx.cache.EXPECT().
		GetProduct(mock.Anything, product.ID, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID, load service.ProductLoader) (*entity.Product, error) {
			return load(ctx)
		})

	got, err := fx.service.GetProduct(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	fx.cache.EXPECT().
		GetProduct(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(context.Background(), uuid.New())
	requireAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.SKU == "TS-002" && p.Category == entity.CategoryTops
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		SKU:      " ts-002 ",
		Name:     "오버핏 티셔츠",
		Price:    29000,
		Category: "상의",
		Image:    "/images/ts-002.jpg",
		Stock:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, "TS-002", product.SKU)
}

func TestProductService_CreateProduct_Invalid(t *testing.T) {
	base := usecase.CreateProductInput{SKU: "A", Name: "B", Price: 1, Category: "상의", Image: "/i.jpg", Stock: 1}

	tests := []struct {
		name   string
		mutate func(*usecase.CreateProductInput)
		target *domainerrors.BaseError
	}{
		{name: "sku", mutate: func(in *usecase.CreateProductInput) { in.SKU = " " }, target: domainerrors.ErrValidationFailed},
		{name: "price", mutate: func(in *usecase.CreateProductInput) { in.Price = -1 }, target: domainerrors.ErrValidationFailed},
		{name: "category", mutate: func(in *usecase.CreateProductInput) { in.Category = "신발" }, target: domainerrors.ErrInvalidCategory},
		{name: "image", mutate: func(in *usecase.CreateProductInput) { in.Image = "" }, target: domainerrors.ErrValidationFailed},
		{name: "stock", mutate: func(in *usecase.CreateProductInput) { in.Stock = -2 }, target: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			input := base
			tt.mutate(&input)

			_, err := fx.service.CreateProduct(context.Background(), &input)
			requireAppError(t, err, tt.target)
		})
	}
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateSKU)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		SKU: "TS-001", Name: "dup", Price: 1, Category: "상의", Image: "/i.jpg",
	})
	requireAppError(t, err, domainerrors.ErrProductSKUConflict)
}

func TestProductService_UpdateProduct_InvalidatesCache(t *testing.T) {
	fx := createTestProductService(t)
	product := sampleProduct()

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(mock.Anything, product).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, product.ID).Return(errors.New("redis down"))

	price := 15000.0
	stock := 0
	got, err := fx.service.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{Price: &price, Stock: &stock})

	require.NoError(t, err)
	assert.InDelta(t, 15000, got.Price, 0.001)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, "TS-001", got.SKU)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.productRepo.EXPECT().Delete(mock.Anything, id).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, id).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(context.Background(), id))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().Delete(mock.Anything, mock.Anything).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(context.Background(), uuid.New())
	requireAppError(t, err, domainerrors.ErrProductNotFound)
}
