package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_AddItem(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	actor := testCustomer()
	productID := uuid.New()

	cartUC.EXPECT().AddItem(mock.Anything, actor.UserID, productID, 3).
		Return(&entity.Cart{UserID: actor.UserID}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/cart/items",
		body:   `{"productId":"` + productID.String() + `","quantity":3,"price":1}`,
		actor:  actor,
	})

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCartHandler_AddItem_InvalidProductID(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

	c, _ := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/cart/items",
		body:   `{"productId":"sku-1","quantity":1}`,
		actor:  testCustomer(),
	})

	assert.ErrorIs(t, h.AddItem(c), domainerrors.ErrInvalidID)
}

func TestCartHandler_UpdateItem_InsufficientStock(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	actor := testCustomer()
	itemID := uuid.New()

	cartUC.EXPECT().UpdateItem(mock.Anything, actor.UserID, itemID, 10).
		Return(nil, domainerrors.ErrInsufficientStock.WithDetails("3"))

	c, _ := newTestContext(testRequest{
		method: http.MethodPut,
		path:   "/api/cart/items/" + itemID.String(),
		params: map[string]string{"itemId": itemID.String()},
		body:   `{"quantity":10}`,
		actor:  actor,
	})

	assert.ErrorIs(t, h.UpdateItem(c), domainerrors.ErrInsufficientStock)
}

func TestCartHandler_GetCart_Unauthenticated(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

	c, _ := newTestContext(testRequest{method: http.MethodGet, path: "/api/cart"})

	assert.ErrorIs(t, h.GetCart(c), domainerrors.ErrUnauthenticated)
}
