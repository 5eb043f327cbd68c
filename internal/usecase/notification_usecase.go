package usecase

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// ErrMalformedEvent marks an event that can never be processed and must not be retried.
var ErrMalformedEvent = errors.New("malformed order event")

// NotificationResult summarises the fan-out of one event.
type NotificationResult struct {
	Devices       int
	SuccessCount  int
	FailureCount  int
	InvalidTokens int
}

// NotificationUsecase turns order events into push notifications on the owner's devices.
type NotificationUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}
