package handler

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := testCustomer()
	productID := uuid.New()

	orderUC.EXPECT().
		CreateOrder(mock.Anything, actor, mock.AnythingOfType("*usecase.CreateOrderInput")).
		RunAndReturn(func(_ context.Context, _ *usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
			require.Len(t, input.Items, 1)
			assert.Equal(t, productID.String(), input.Items[0].ProductID)
			assert.Equal(t, 2, input.Items[0].Quantity)
			assert.Nil(t, input.Products)
			assert.Equal(t, "서울시 강남구", input.ShippingAddress.Address)
			assert.Equal(t, "mid_1", input.MerchantUID)
			assert.Equal(t, "imp_1", input.ImpUID)

			return &entity.Order{ID: uuid.New(), OrderNumber: "ORD-20250205-0001", UserID: actor.UserID}, nil
		})

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/orders",
		actor:  actor,
		body: `{
			"items": [{"productId": "` + productID.String() + `", "quantity": 2}],
			"recipientName": "Kim",
			"recipientPhone": "010-1234-5678",
			"shippingAddress": {"postalCode": "06000", "address": "서울시 강남구"},
			"paymentMethod": "card",
			"paymentStatus": "paid",
			"merchant_uid": "mid_1",
			"imp_uid": "imp_1"
		}`,
	})

	require.NoError(t, h.CreateOrder(c))

	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ORD-20250205-0001", data["orderNumber"])
}

func TestOrderHandler_CreateOrder_LegacyProducts(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := testCustomer()
	productID := uuid.New()

	orderUC.EXPECT().
		CreateOrder(mock.Anything, actor, mock.AnythingOfType("*usecase.CreateOrderInput")).
		RunAndReturn(func(_ context.Context, _ *usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
			assert.Nil(t, input.Items)
			require.Len(t, input.Products, 1)
			assert.Equal(t, productID.String(), input.Products[0].ProductID)

			return &entity.Order{ID: uuid.New()}, nil
		})

	c, _ := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/orders",
		actor:  actor,
		body:   `{"products": [{"_id": "` + productID.String() + `", "quantity": 1}], "recipientName": "Kim"}`,
	})

	require.NoError(t, h.CreateOrder(c))
}

func TestOrderHandler_CreateOrder_NegativeDiscountReachesUsecase(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := testCustomer()

	orderUC.EXPECT().
		CreateOrder(mock.Anything, actor, mock.AnythingOfType("*usecase.CreateOrderInput")).
		RunAndReturn(func(_ context.Context, _ *usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
			assert.InDelta(t, -500, input.Discount, 0.001)

			return &entity.Order{ID: uuid.New(), TotalAmount: 20000}, nil
		})

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/orders",
		actor:  actor,
		body:   `{"items": [{"productId": "` + uuid.NewString() + `", "quantity": 2}], "discount": -500}`,
	})

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_CreateOrder_Unauthenticated(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	c, _ := newTestContext(testRequest{method: http.MethodPost, path: "/api/orders", body: `{}`})

	assert.ErrorIs(t, h.CreateOrder(c), domainerrors.ErrUnauthenticated)
}

func TestOrderHandler_CreateOrder_UsecaseError(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrDuplicateTransaction.WithDetails("mid_1"))

	c, _ := newTestContext(testRequest{method: http.MethodPost, path: "/api/orders", actor: testCustomer(), body: `{}`})

	assert.ErrorIs(t, h.CreateOrder(c), domainerrors.ErrDuplicateTransaction)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := testCustomer()

	orderUC.EXPECT().
		ListOrders(mock.Anything, actor, &usecase.ListOrdersInput{Page: 2, Limit: 5, Status: "배송중"}).
		Return(&usecase.OrderListOutput{
			Orders:     []*entity.Order{{ID: uuid.New()}},
			Pagination: entity.NewPagination(2, 5, 6),
		}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/api/orders",
		query:  "page=2&limit=5&status=%EB%B0%B0%EC%86%A1%EC%A4%91",
		actor:  actor,
	})

	require.NoError(t, h.ListOrders(c))

	body := decodeBody(t, rec)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), pagination["total"])
	assert.Equal(t, false, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPrevPage"])
}

func TestOrderHandler_GetOrder_InvalidID(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	c, _ := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/api/orders/abc",
		params: map[string]string{"id": "abc"},
		actor:  testCustomer(),
	})

	assert.ErrorIs(t, h.GetOrder(c), domainerrors.ErrInvalidID)
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := testCustomer()
	orderID := uuid.New()

	orderUC.EXPECT().
		UpdateOrder(mock.Anything, actor, orderID, mock.AnythingOfType("*usecase.UpdateOrderInput")).
		RunAndReturn(func(_ context.Context, _ *usecase.Actor, _ uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
			require.NotNil(t, input.OrderStatus)
			assert.Equal(t, string(entity.OrderStatusCancelled), *input.OrderStatus)
			assert.Nil(t, input.TrackingNumber)

			return &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusCancelled}, nil
		})

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		path:   "/api/orders/" + orderID.String(),
		params: map[string]string{"id": orderID.String()},
		body:   `{"orderStatus":"주문취소"}`,
		actor:  actor,
	})

	require.NoError(t, h.UpdateOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_GetReceiptQR(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := testCustomer()
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	orderUC.EXPECT().GetOrderReceiptQR(mock.Anything, actor, orderID).Return(png, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/api/orders/" + orderID.String() + "/receipt",
		params: map[string]string{"id": orderID.String()},
		actor:  actor,
	})

	require.NoError(t, h.GetReceiptQR(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
