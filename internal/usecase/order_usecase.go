package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one submitted order line. ProductID is validated by the use case.
type OrderItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Image     string
	Size      string
	Color     string
}

// CreateOrderInput is the checkout request. Products is the legacy item list and is only
// consulted when Items is nil.
type CreateOrderInput struct {
	Items           []OrderItemInput
	Products        []OrderItemInput
	RecipientName   string
	RecipientPhone  string
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
	PaymentStatus   string
	Discount        float64
	MerchantUID     string
	ImpUID          string
	Memo            string
}

// ListOrdersInput narrows an order listing.
type ListOrdersInput struct {
	Page   int
	Limit  int
	Status string
	UserID string // Only honoured for admins.
}

// OrderListOutput is one page of orders.
type OrderListOutput struct {
	Orders     []*entity.Order
	Pagination entity.Pagination
}

// UpdateOrderInput holds the status changes to an order. Nil fields are left untouched.
// Owners may only change OrderStatus; the remaining fields are admin-only.
type UpdateOrderInput struct {
	OrderStatus    *string
	TrackingNumber *string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	PaymentStatus  *string
	PaidAt         *time.Time
	Memo           *string
}

// OrderUsecase defines the order operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, actor *Actor, input *CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, actor *Actor, input *ListOrdersInput) (*OrderListOutput, error)
	GetOrder(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Order, error)
	UpdateOrder(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, actor *Actor, id uuid.UUID) error

	// GetOrderReceiptQR renders the order receipt as a PNG QR code.
	GetOrderReceiptQR(ctx context.Context, actor *Actor, id uuid.UUID) ([]byte, error)
}
