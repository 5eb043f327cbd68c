package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:     "req-1",
		EventType:     service.OrderEventCreated,
		OrderID:       "0194d1f0-0000-7000-8000-000000000001",
		OrderNumber:   "ORD-20250205-0001",
		UserID:        "0194d1f0-0000-7000-8000-000000000002",
		OrderStatus:   "주문 확인",
		PaymentStatus: "paid",
		TotalAmount:   25000,
		OccurredAt:    time.Date(2025, 2, 5, 3, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.Default())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.OrderEventCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "ORD-20250205-0001", received.Message.Attributes["order_number"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, slog.Default()).PublishOrderEvent(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishOrderEvent(ctx, testEvent()))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, AMQPURL: "amqp://localhost"}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}
