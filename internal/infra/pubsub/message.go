package pubsub

import (
	"storefront/internal/domain/service"
)

// PushMessage mirrors the body Google Pub/Sub posts to push subscriptions.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"` // base64 encoded OrderEvent JSON
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every message for filtering and tracing.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"event_type":   event.EventType,
		"order_id":     event.OrderID,
		"order_number": event.OrderNumber,
		"user_id":      event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
