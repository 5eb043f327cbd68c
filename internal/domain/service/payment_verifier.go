package service

import (
	"context"

	"storefront/internal/errors"
)

var (
	// ErrPaymentGatewayUnavailable is returned when the gateway cannot be reached
	// or answers with a server error.
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrPaymentNotFound is returned when the gateway knows no payment with the given id.
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentRecord is the gateway's view of a payment.
type PaymentRecord struct {
	ImpUID      string
	MerchantUID string
	Status      string
	Amount      float64
}

// PaymentVerifier looks up payments at the external gateway (PortOne).
type PaymentVerifier interface {
	// Configured reports whether credentials are present.
	Configured() bool

	// FetchPayment retrieves the payment recorded under impUID.
	FetchPayment(ctx context.Context, impUID string) (*PaymentRecord, error)
}
