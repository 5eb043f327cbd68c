package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service    usecase.NotificationUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	notifier   *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		DeviceRepo: deviceRepo,
		Notifier:   notifier,
		Logger:     newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		notifier:   notifier,
	}
}

func createdEvent(userID uuid.UUID) *service.OrderEvent {
	return &service.OrderEvent{
		EventType:   service.OrderEventCreated,
		OrderID:     uuid.NewString(),
		OrderNumber: "ORD-20250205-0001",
		UserID:      userID.String(),
		OrderStatus: string(entity.OrderStatusConfirmed),
		TotalAmount: 24000,
	}
}

func TestNotificationService_HandleOrderEvent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, PushToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: userID, PushToken: "token-2", IsActive: true},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return len(msg.Tokens) == 2 &&
				msg.Title == "주문이 접수되었습니다" &&
				msg.Data["order_number"] == "ORD-20250205-0001" &&
				msg.Data["event_type"] == service.OrderEventCreated
		})).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-2"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByPushTokens(ctx, []string{"token-2"}).Return(nil)

	result, err := fx.service.HandleOrderEvent(ctx, createdEvent(userID))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestNotificationService_HandleOrderEvent_Cancelled(t *testing.T) {
	fx := createTestNotificationService(t)
	userID := uuid.New()
	event := createdEvent(userID)
	event.EventType = service.OrderEventStatusChanged
	event.OrderStatus = string(entity.OrderStatusCancelled)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{{PushToken: "token-1"}}, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "주문이 취소되었습니다"
		})).
		Return(&service.PushResult{SuccessCount: 1}, nil)

	result, err := fx.service.HandleOrderEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestNotificationService_HandleOrderEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, nil)

	result, err := fx.service.HandleOrderEvent(context.Background(), createdEvent(userID))

	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestNotificationService_HandleOrderEvent_Malformed(t *testing.T) {
	fx := createTestNotificationService(t)

	event := createdEvent(uuid.New())
	event.UserID = "not-a-uuid"

	_, err := fx.service.HandleOrderEvent(context.Background(), event)

	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrMalformedEvent))
}

func TestNotificationService_HandleOrderEvent_UnknownTypeAcked(t *testing.T) {
	fx := createTestNotificationService(t)

	event := createdEvent(uuid.New())
	event.EventType = "order.refunded"

	result, err := fx.service.HandleOrderEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestNotificationService_HandleOrderEvent_SendFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{{PushToken: "token-1"}}, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	_, err := fx.service.HandleOrderEvent(context.Background(), createdEvent(userID))

	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrMalformedEvent))
}
