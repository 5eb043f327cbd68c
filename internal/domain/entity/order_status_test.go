package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  OrderStatus
		to    OrderStatus
		admin bool
		want  bool
	}{
		{name: "admin moves forward one step", from: OrderStatusConfirmed, to: OrderStatusPreparing, admin: true, want: true},
		{name: "admin skips forward", from: OrderStatusPreparing, to: OrderStatusInTransit, admin: true, want: true},
		{name: "admin cannot move backward", from: OrderStatusInTransit, to: OrderStatusPreparing, admin: true, want: false},
		{name: "admin cancels shipped order", from: OrderStatusShipped, to: OrderStatusCancelled, admin: true, want: true},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusCancelled, admin: true, want: false},
		{name: "cancelled is terminal", from: OrderStatusCancelled, to: OrderStatusConfirmed, admin: true, want: false},
		{name: "same status is a no-op", from: OrderStatusDelivered, to: OrderStatusDelivered, admin: false, want: true},
		{name: "owner cancels before shipment", from: OrderStatusPreparing, to: OrderStatusCancelled, admin: false, want: true},
		{name: "owner cannot cancel after shipment", from: OrderStatusShipped, to: OrderStatusCancelled, admin: false, want: false},
		{name: "owner cannot move forward", from: OrderStatusConfirmed, to: OrderStatusPreparing, admin: false, want: false},
		{name: "unknown label", from: OrderStatusConfirmed, to: OrderStatus("shipped"), admin: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to, tt.admin))
		})
	}
}

func TestPaymentStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []PaymentStatus{PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, PaymentStatus("settled").IsValid())
}
