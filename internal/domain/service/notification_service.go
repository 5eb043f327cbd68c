package service

import (
	"context"
)

// PushMessage is a notification addressed to a set of device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// PushResult summarises a batch send.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered.
}

// NotificationService defines the interface for push notification delivery.
type NotificationService interface {
	// SendBatchNotification sends msg to every token in msg.Tokens.
	SendBatchNotification(ctx context.Context, msg *PushMessage) (*PushResult, error)
}
