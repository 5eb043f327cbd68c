package entity

// OrderStatus is one of the fixed lifecycle labels shown to shoppers.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "주문 확인"
	OrderStatusPreparing OrderStatus = "상품 준비중"
	OrderStatusShipped   OrderStatus = "배송시작"
	OrderStatusInTransit OrderStatus = "배송중"
	OrderStatusDelivered OrderStatus = "배송완료"
	OrderStatusCancelled OrderStatus = "주문취소"
)

// orderProgress ranks the forward sequence; cancellation sits outside it.
var orderProgress = map[OrderStatus]int{
	OrderStatusConfirmed: 0,
	OrderStatusPreparing: 1,
	OrderStatusShipped:   2,
	OrderStatusInTransit: 3,
	OrderStatusDelivered: 4,
}

// IsValid checks if the OrderStatus is a known label.
func (s OrderStatus) IsValid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := orderProgress[s]

	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CancellableByOwner reports whether the shopper may still cancel the order themselves.
func (s OrderStatus) CancellableByOwner() bool {
	return s == OrderStatusConfirmed || s == OrderStatusPreparing
}

// CanTransition reports whether an order in s may move to next.
// Forward moves may skip steps. Cancellation is allowed from any non-terminal status
// for admins and only before shipment for the owner, who cannot move orders forward.
func (s OrderStatus) CanTransition(next OrderStatus, admin bool) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}

	if next == OrderStatusCancelled {
		return admin || s.CancellableByOwner()
	}
	if !admin {
		return false
	}

	return orderProgress[next] > orderProgress[s]
}

// PaymentStatus tracks the money side of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsValid checks if the PaymentStatus is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentMethod is the shopper's chosen way to pay.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodMobile   PaymentMethod = "mobile"
	PaymentMethodKakao    PaymentMethod = "kakao"
	PaymentMethodNaver    PaymentMethod = "naver"
	PaymentMethodEtc      PaymentMethod = "etc"
)

// ParsePaymentMethod maps unknown values to PaymentMethodEtc.
func ParsePaymentMethod(s string) PaymentMethod {
	switch m := PaymentMethod(s); m {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodMobile, PaymentMethodKakao, PaymentMethodNaver:
		return m
	default:
		return PaymentMethodEtc
	}
}
