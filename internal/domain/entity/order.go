package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultItemName is used for order lines submitted without a name.
const DefaultItemName = "상품"

// Order is an immutable checkout record; only status-related fields change after creation.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          uuid.UUID       `json:"userId"`
	User            *OrderUser      `json:"user,omitempty"`
	Items           []*OrderItem    `json:"items"`
	RecipientName   string          `json:"recipientName"`
	RecipientPhone  string          `json:"recipientPhone"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaidAt          *time.Time      `json:"paidAt"`
	MerchantUID     string          `json:"merchantUid,omitempty"` // Idempotency key, unique when set.
	ImpUID          string          `json:"impUid,omitempty"`      // PortOne transaction id.
	Subtotal        float64         `json:"subtotal"`
	Discount        float64         `json:"discount"`
	TotalAmount     int64           `json:"totalAmount"`
	OrderStatus     OrderStatus     `json:"orderStatus"`
	TrackingNumber  string          `json:"trackingNumber"`
	ShippedAt       *time.Time      `json:"shippedAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
	Memo            string          `json:"memo"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderUser is the owner summary joined into order responses.
type OrderUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// OrderItem is a snapshot of a product at checkout time, decoupled from later catalog edits.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

// ShippingAddress is the delivery destination of an order.
type ShippingAddress struct {
	PostalCode    string `json:"postalCode"`
	Address       string `json:"address"`
	AddressDetail string `json:"addressDetail"`
}

// CalculateSubtotal returns the sum of price times quantity over items.
func CalculateSubtotal(items []*OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	return subtotal
}

// CalculateTotal returns max(0, round(subtotal - discount)).
func CalculateTotal(subtotal, discount float64) int64 {
	total := math.Round(subtotal - discount)
	if total < 0 {
		return 0
	}

	return int64(total)
}

// Recalculate re-derives Subtotal and TotalAmount from the items and discount,
// overwriting whatever the caller put there.
func (o *Order) Recalculate() {
	if o.Discount < 0 {
		o.Discount = 0
	}
	o.Subtotal = CalculateSubtotal(o.Items)
	o.TotalAmount = CalculateTotal(o.Subtotal, o.Discount)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// MarkPaid sets the payment status to paid and stamps PaidAt if it is empty.
func (o *Order) MarkPaid(at time.Time) {
	o.PaymentStatus = PaymentStatusPaid
	if o.PaidAt == nil {
		o.PaidAt = &at
	}
}
