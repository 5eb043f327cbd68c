package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ListProducts(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})

	productUC.EXPECT().ListProducts(mock.Anything, 1, 10).Return(&usecase.ProductListOutput{
		Products:   []*entity.Product{{ID: uuid.New(), SKU: "TOP-001"}},
		Pagination: entity.NewPagination(1, 10, 1),
	}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, path: "/api/products", query: "page=1&limit=10"})

	require.NoError(t, h.ListProducts(c))

	body := decodeBody(t, rec)
	assert.Len(t, body["data"], 1)
	assert.Contains(t, body, "pagination")
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
	id := uuid.New()

	productUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)

	c, _ := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/api/products/" + id.String(),
		params: map[string]string{"id": id.String()},
	})

	assert.ErrorIs(t, h.GetProduct(c), domainerrors.ErrProductNotFound)
}

func TestProductHandler_CreateProduct_ValidationFailed(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})

	c, _ := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/products",
		body:   `{"sku":"TOP-001","name":"Tee","price":-1,"category":"상의","image":"tee.png"}`,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, h.CreateProduct(c), &validationErrs)
	assert.Equal(t, "price", validationErrs[0].Field())
}
