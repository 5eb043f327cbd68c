package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
		cfg.Env.Env = constants.EnvDevelop
	}

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/order-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *service.OrderEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(t *testing.T, h *PushHandler, body string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func TestHandlePush_Success(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)
	event := &service.OrderEvent{
		EventType:   service.OrderEventCreated,
		OrderID:     "7d0b7f5e-4a57-4d4b-9a51-4b1a4b0c2f11",
		OrderNumber: "ORD-20250205-0001",
		UserID:      "0f4f1c52-18a6-4d6e-a3c5-4c1ac8b1e0c3",
	}

	notificationUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *service.OrderEvent) bool {
			return got.OrderNumber == event.OrderNumber && got.EventType == event.EventType
		})).
		Return(&usecase.NotificationResult{Devices: 1, SuccessCount: 1}, nil)

	status := servePush(t, h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-1"}))

	assert.Equal(t, http.StatusOK, status)
}

func TestHandlePush_BadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"message":`},
		{name: "empty data", body: `{"message":{"data":""}}`},
		{name: "invalid base64", body: `{"message":{"data":"%%%"}}`},
		{name: "invalid event json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			assert.Equal(t, http.StatusBadRequest, servePush(t, h, tt.body))
		})
	}
}

func TestHandlePush_MalformedEventNotRetried(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)

	notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(usecase.ErrMalformedEvent, "invalid user id"))

	status := servePush(t, h, pushBody(t, encodeEvent(t, &service.OrderEvent{UserID: "x"}), nil))

	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandlePush_TransientFailureRetried(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)

	notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	status := servePush(t, h, pushBody(t, encodeEvent(t, &service.OrderEvent{OrderNumber: "ORD-20250205-0001"}), nil))

	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestHandlePush_RequiresTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h, _ := newTestPushHandler(t, cfg)

	require.NotNil(t, h.verifyToken)
	assert.Equal(t, http.StatusUnauthorized, servePush(t, h, pushBody(t, "", nil)))
}
