package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subtotal float64
		discount float64
		want     int64
	}{
		{name: "no discount", subtotal: 25000, discount: 0, want: 25000},
		{name: "with discount", subtotal: 25000, discount: 3000, want: 22000},
		{name: "rounds half up", subtotal: 1000.5, discount: 0, want: 1001},
		{name: "rounds down", subtotal: 1000.4, discount: 0, want: 1000},
		{name: "discount larger than subtotal clamps to zero", subtotal: 1000, discount: 5000, want: 0},
		{name: "empty order", subtotal: 0, discount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CalculateTotal(tt.subtotal, tt.discount))
		})
	}
}

func TestOrder_Recalculate_IgnoresCallerTotal(t *testing.T) {
	t.Parallel()

	order := &Order{
		Items: []*OrderItem{
			{ProductID: uuid.New(), Price: 10000, Quantity: 2},
			{ProductID: uuid.New(), Price: 5000, Quantity: 1},
		},
		Discount:    2500,
		Subtotal:    1,
		TotalAmount: 999999,
	}

	order.Recalculate()

	assert.InDelta(t, 25000, order.Subtotal, 0.0001)
	assert.Equal(t, int64(22500), order.TotalAmount)
}

func TestOrder_Recalculate_NegativeDiscountIsZero(t *testing.T) {
	t.Parallel()

	order := &Order{
		Items:    []*OrderItem{{ProductID: uuid.New(), Price: 1000, Quantity: 1}},
		Discount: -500,
	}

	order.Recalculate()

	assert.Zero(t, order.Discount)
	assert.Equal(t, int64(1000), order.TotalAmount)
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 2, 5, 10, 0, 0, 0, time.UTC)
	order := &Order{PaymentStatus: PaymentStatusPending}
	order.MarkPaid(now)

	assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)
	if assert.NotNil(t, order.PaidAt) {
		assert.Equal(t, now, *order.PaidAt)
	}

	// An existing stamp is kept.
	order.MarkPaid(now.Add(time.Hour))
	assert.Equal(t, now, *order.PaidAt)
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PaymentMethodKakao, ParsePaymentMethod("kakao"))
	assert.Equal(t, PaymentMethodCard, ParsePaymentMethod("card"))
	assert.Equal(t, PaymentMethodEtc, ParsePaymentMethod("bitcoin"))
	assert.Equal(t, PaymentMethodEtc, ParsePaymentMethod(""))
}
