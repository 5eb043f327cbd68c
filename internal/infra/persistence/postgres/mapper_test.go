package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderDomain_StoresEmptyMerchantUIDAsNull(t *testing.T) {
	order := &entity.Order{
		OrderNumber: "ORD-20250205-0001",
		UserID:      uuid.New(),
		Items: []*entity.OrderItem{
			{ProductID: uuid.New(), Name: "티셔츠", Price: 10000, Quantity: 2},
			{ProductID: uuid.New(), Name: "모자", Price: 5000, Quantity: 1},
		},
		PaymentMethod: entity.PaymentMethodCard,
		PaymentStatus: entity.PaymentStatusPending,
		OrderStatus:   entity.OrderStatusConfirmed,
	}

	orderM := fromOrderDomain(order)

	assert.Nil(t, orderM.MerchantUID)
	assert.Nil(t, orderM.ImpUID)
	require.Len(t, orderM.Items, 2)
	assert.Equal(t, 0, orderM.Items[0].Position)
	assert.Equal(t, 1, orderM.Items[1].Position)
}

func TestToOrderDomain_RoundTripsFields(t *testing.T) {
	merchantUID := "mid_1738712345"
	paidAt := time.Date(2025, 2, 5, 3, 0, 0, 0, time.UTC)
	userID := uuid.New()

	orderM := &model.OrderModel{
		ID:          uuid.New(),
		OrderNumber: "ORD-20250205-0002",
		UserID:      userID,
		User:        &model.UserModel{ID: userID, Name: "김철수", Email: "kim@example.com"},
		Items: []model.OrderItemModel{
			{ProductID: uuid.New(), Name: "바지", Price: 30000, Quantity: 1, Size: "L"},
		},
		ShippingAddress: model.ShippingAddressModel{PostalCode: "06236", Address: "서울 강남구"},
		PaymentMethod:   "kakao",
		PaymentStatus:   "paid",
		PaidAt:          &paidAt,
		MerchantUID:     &merchantUID,
		Subtotal:        30000,
		TotalAmount:     30000,
		OrderStatus:     string(entity.OrderStatusPreparing),
	}

	order := toOrderDomain(orderM)

	assert.Equal(t, merchantUID, order.MerchantUID)
	assert.Empty(t, order.ImpUID)
	assert.Equal(t, entity.PaymentMethodKakao, order.PaymentMethod)
	assert.Equal(t, entity.OrderStatusPreparing, order.OrderStatus)
	assert.Equal(t, "06236", order.ShippingAddress.PostalCode)
	require.NotNil(t, order.User)
	assert.Equal(t, "김철수", order.User.Name)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "L", order.Items[0].Size)
}

func TestToCartDomain_JoinsProduct(t *testing.T) {
	productID := uuid.New()
	cartM := &model.CartModel{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		TotalAmount: 20000,
		Items: []model.CartItemModel{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Quantity:  2,
				Price:     10000,
				Product:   &model.ProductModel{ID: productID, SKU: "TOP-001", Name: "티셔츠", Category: "상의"},
			},
		},
	}

	cart := toCartDomain(cartM)

	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, entity.CategoryTops, cart.Items[0].Product.Category)
	assert.InDelta(t, 20000, cart.TotalAmount, 0.0001)
}

func TestFromUserDomain_NormalizesEmailAndRole(t *testing.T) {
	userM := fromUserDomain(&entity.User{Email: "  Kim@Example.COM ", Role: entity.Role("root")})

	assert.Equal(t, "kim@example.com", userM.Email)
	assert.Equal(t, "customer", userM.Role)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `ORD-20250205-`, escapeLike("ORD-20250205-"))
	assert.Equal(t, `a\%b\_c\\`, escapeLike(`a%b_c\`))
}
