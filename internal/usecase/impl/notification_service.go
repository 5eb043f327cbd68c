package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type notificationService struct {
	deviceRepo repository.DeviceRepository
	notifier   service.NotificationService
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Notifier   service.NotificationService
	Logger     *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo: params.DeviceRepo,
		notifier:   params.Notifier,
		logger:     params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleOrderEvent pushes the event to every active device of the order owner.
// Tokens the provider rejects are deactivated.
func (s *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrMalformedEvent, "invalid user id %q", event.UserID)
	}

	title, body, ok := orderEventMessage(event)
	if !ok {
		s.log(ctx).Warn("Ignoring unknown order event type", slog.String("eventType", event.EventType))

		return &usecase.NotificationResult{}, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	result := &usecase.NotificationResult{Devices: len(devices)}
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices for order owner", slog.Any("userID", userID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.PushToken)
	}

	pushResult, err := s.notifier.SendBatchNotification(ctx, &service.PushMessage{
		Tokens: tokens,
		Title:  title,
		Body:   body,
		Data: map[string]string{
			"event_type":   event.EventType,
			"order_id":     event.OrderID,
			"order_number": event.OrderNumber,
			"order_status": event.OrderStatus,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send push notification")
	}

	result.SuccessCount = pushResult.SuccessCount
	result.FailureCount = pushResult.FailureCount
	result.InvalidTokens = len(pushResult.InvalidTokens)

	if len(pushResult.InvalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByPushTokens(ctx, pushResult.InvalidTokens); err != nil {
			s.log(ctx).Error("Failed to deactivate invalid push tokens",
				slog.Int("count", len(pushResult.InvalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	s.log(ctx).Info("Order notification sent",
		slog.String("eventType", event.EventType),
		slog.String("orderNumber", event.OrderNumber),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
	)

	return result, nil
}

// orderEventMessage returns the push title and body shown for an event.
func orderEventMessage(event *service.OrderEvent) (title, body string, ok bool) {
	switch event.EventType {
	case service.OrderEventCreated:
		return "주문이 접수되었습니다",
			fmt.Sprintf("주문번호 %s, 결제금액 %d원", event.OrderNumber, event.TotalAmount),
			true
	case service.OrderEventStatusChanged:
		if entity.OrderStatus(event.OrderStatus) == entity.OrderStatusCancelled {
			return "주문이 취소되었습니다",
				fmt.Sprintf("주문번호 %s 주문이 취소되었습니다", event.OrderNumber),
				true
		}

		return "주문 상태 안내",
			fmt.Sprintf("주문번호 %s 상태가 '%s'(으)로 변경되었습니다", event.OrderNumber, event.OrderStatus),
			true
	default:
		return "", "", false
	}
}
