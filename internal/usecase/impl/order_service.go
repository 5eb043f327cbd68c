package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultOrderNumberRetries = 3
	paymentStatusPaid         = "paid"
)

type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	cache      service.ProductCache
	verifier   service.PaymentVerifier
	publisher  service.EventPublisher
	qrcode     service.QRCodeService
	orderCfg   config.OrderConfig
	paymentCfg config.PaymentConfig
	logger     *slog.Logger
	now        func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Cache     service.ProductCache
	Verifier  service.PaymentVerifier
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	orderCfg := config.OrderConfig{MaxNumberRetries: defaultOrderNumberRetries, DecrementStock: true}
	if params.Config != nil && params.Config.Order != nil {
		orderCfg = *params.Config.Order
	}
	if orderCfg.MaxNumberRetries <= 0 {
		orderCfg.MaxNumberRetries = defaultOrderNumberRetries
	}

	var paymentCfg config.PaymentConfig
	if params.Config != nil && params.Config.Payment != nil {
		paymentCfg = *params.Config.Payment
	}

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		cache:      params.Cache,
		verifier:   params.Verifier,
		publisher:  params.Publisher,
		qrcode:     params.QRCode,
		orderCfg:   orderCfg,
		paymentCfg: paymentCfg,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates the checkout request, guards against replayed payments,
// verifies paid orders with the gateway and persists the order under a fresh number.
func (srv *orderService) CreateOrder(ctx context.Context, actor *usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if !actor.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := buildOrder(actor.UserID, input, srv.now())
	if err != nil {
		return nil, err
	}

	if order.MerchantUID != "" {
		if err := srv.ensureNewPayment(ctx, order.MerchantUID); err != nil {
			return nil, err
		}
	}

	if err := srv.verifyPayment(ctx, order); err != nil {
		return nil, err
	}

	if err := srv.persistOrder(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.String("orderNumber", order.OrderNumber),
		slog.Any("userID", order.UserID),
		slog.Int64("totalAmount", order.TotalAmount),
	)
	srv.publish(ctx, service.OrderEventCreated, order)

	return order, nil
}

// buildOrder turns the request into an order, dropping lines with malformed product ids.
func buildOrder(userID uuid.UUID, input *usecase.CreateOrderInput, now time.Time) (*entity.Order, error) {
	recipientName := strings.TrimSpace(input.RecipientName)
	if recipientName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipientName")
	}
	recipientPhone := strings.TrimSpace(input.RecipientPhone)
	if recipientPhone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipientPhone")
	}
	address := strings.TrimSpace(input.ShippingAddress.Address)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shippingAddress.address")
	}

	submitted := input.Items
	if submitted == nil {
		submitted = input.Products
	}
	if len(submitted) == 0 {
		return nil, domainerrors.ErrOrderItemsRequired
	}

	items := make([]*entity.OrderItem, 0, len(submitted))
	for _, in := range submitted {
		productID, err := uuid.Parse(strings.TrimSpace(in.ProductID))
		if err != nil {
			continue
		}
		items = append(items, buildOrderItem(productID, in))
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrNoValidItems
	}

	order := &entity.Order{
		UserID:         userID,
		Items:          items,
		RecipientName:  recipientName,
		RecipientPhone: recipientPhone,
		ShippingAddress: entity.ShippingAddress{
			PostalCode:    strings.TrimSpace(input.ShippingAddress.PostalCode),
			Address:       address,
			AddressDetail: strings.TrimSpace(input.ShippingAddress.AddressDetail),
		},
		PaymentMethod: entity.ParsePaymentMethod(strings.TrimSpace(input.PaymentMethod)),
		PaymentStatus: entity.PaymentStatusPending,
		MerchantUID:   strings.TrimSpace(input.MerchantUID),
		ImpUID:        strings.TrimSpace(input.ImpUID),
		Discount:      max(0, input.Discount),
		OrderStatus:   entity.OrderStatusConfirmed,
		Memo:          strings.TrimSpace(input.Memo),
	}
	if strings.TrimSpace(input.PaymentStatus) == paymentStatusPaid {
		order.MarkPaid(now)
	}
	order.Recalculate()

	return order, nil
}

func buildOrderItem(productID uuid.UUID, in usecase.OrderItemInput) *entity.OrderItem {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = entity.DefaultItemName
	}

	return &entity.OrderItem{
		ProductID: productID,
		Name:      name,
		Price:     max(0, in.Price),
		Quantity:  max(1, in.Quantity),
		Image:     strings.TrimSpace(in.Image),
		Size:      strings.TrimSpace(in.Size),
		Color:     strings.TrimSpace(in.Color),
	}
}

// ensureNewPayment rejects a merchant uid that is already recorded on an order.
func (srv *orderService) ensureNewPayment(ctx context.Context, merchantUID string) error {
	existing, err := srv.orderRepo.FindByMerchantUID(ctx, merchantUID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check merchant uid")
	}

	srv.log(ctx).Warn("Duplicate payment submitted",
		slog.String("merchantUID", merchantUID),
		slog.String("orderNumber", existing.OrderNumber),
	)

	return domainerrors.ErrDuplicateTransaction.WithDetails(existing.OrderNumber)
}

// verifyPayment checks a paid order against the gateway record: status paid and
// an amount exactly equal to the order total.
func (srv *orderService) verifyPayment(ctx context.Context, order *entity.Order) error {
	if order.ImpUID == "" || order.PaymentStatus != entity.PaymentStatusPaid {
		return nil
	}

	if srv.verifier == nil || !srv.verifier.Configured() {
		if srv.paymentCfg.RequireVerification {
			return domainerrors.ErrPaymentVerifierUnavailable
		}
		srv.log(ctx).Warn("Payment verifier not configured, skipping verification", slog.String("impUID", order.ImpUID))

		return nil
	}

	record, err := srv.verifier.FetchPayment(ctx, order.ImpUID)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("payment not found")
	case err != nil:
		if srv.paymentCfg.FailOpen {
			srv.log(ctx).Warn("Payment gateway unreachable, skipping verification",
				slog.String("impUID", order.ImpUID),
				slog.Any("error", err),
			)

			return nil
		}
		srv.log(ctx).Error("Payment gateway unreachable", slog.String("impUID", order.ImpUID), slog.Any("error", err))

		return domainerrors.ErrPaymentVerificationFailed.
			WithStatus(http.StatusBadGateway).
			WithDetails("payment gateway unavailable")
	}

	if record.Status != paymentStatusPaid {
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("payment status is " + record.Status)
	}
	if record.Amount != float64(order.TotalAmount) {
		srv.log(ctx).Warn("Payment amount mismatch",
			slog.String("impUID", order.ImpUID),
			slog.Int64("expected", order.TotalAmount),
			slog.Float64("paid", record.Amount),
		)

		return domainerrors.ErrPaymentVerificationFailed.WithDetails(
			fmt.Sprintf("amount mismatch: expected %d, paid %v", order.TotalAmount, record.Amount),
		)
	}

	return nil
}

// persistOrder assigns the next order number of the day and inserts the order, decrementing
// stock in the same transaction. A collision on the number is retried with a fresh one.
func (srv *orderService) persistOrder(ctx context.Context, order *entity.Order) error {
	for attempt := 1; attempt <= srv.orderCfg.MaxNumberRetries; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.insertOrder(ctx, repoFactory, order)
		})
		if err == nil {
			srv.invalidateStock(ctx, order)

			return nil
		}

		if !errors.IsAny(err, repository.ErrDuplicateOrderNumber, repository.ErrDuplicateMerchantUID) {
			return mapCreateOrderError(err)
		}

		// The unique violation may come from a concurrent checkout of the same payment.
		if order.MerchantUID != "" {
			if dupErr := srv.ensureNewPayment(ctx, order.MerchantUID); dupErr != nil {
				return dupErr
			}
		}

		srv.log(ctx).Warn("Order number collision, retrying",
			slog.Int("attempt", attempt),
			slog.String("orderNumber", order.OrderNumber),
		)
	}

	return errors.Wrap(domainerrors.ErrOrderNumberUnavailable, "order number retries exhausted")
}

// invalidateStock drops cached products whose stock the committed order decremented.
// A failed invalidation only delays the stock change until the cache TTL.
func (srv *orderService) invalidateStock(ctx context.Context, order *entity.Order) {
	if !srv.orderCfg.DecrementStock || srv.cache == nil {
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}

		if err := srv.cache.Invalidate(ctx, item.ProductID); err != nil {
			srv.log(ctx).Warn("Failed to invalidate product cache", slog.Any("productID", item.ProductID), slog.Any("error", err))
		}
	}
}

func (srv *orderService) insertOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	orderRepo := repoFactory.NewOrderRepository()
	now := srv.now()

	last, err := orderRepo.FindLastOrderNumber(ctx, entity.OrderNumberPrefix(now))
	if err != nil {
		return errors.Wrap(err, "failed to find last order number")
	}

	number, err := entity.NextOrderNumber(now, last)
	if err != nil {
		return errors.Wrap(err, "failed to derive order number")
	}

	order.ID = uuid.Nil
	order.OrderNumber = number
	if err := orderRepo.Create(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	if !srv.orderCfg.DecrementStock {
		return nil
	}

	productRepo := repoFactory.NewProductRepository()
	for _, item := range order.Items {
		if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			switch {
			case errors.Is(err, repository.ErrInsufficientStock):
				return domainerrors.ErrInsufficientStock.WithStatus(http.StatusConflict).WithDetails(item.ProductID.String())
			case errors.Is(err, repository.ErrProductNotFound):
				return domainerrors.ErrProductNotFound.WithDetails(item.ProductID.String())
			default:
				return errors.Wrap(err, "failed to decrement stock")
			}
		}
	}

	return nil
}

func mapCreateOrderError(err error) error {
	switch {
	case errors.Is(err, entity.ErrOrderNumberExhausted):
		return errors.Wrap(domainerrors.ErrOrderNumberUnavailable, err.Error())
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, "order owner missing")
	default:
		return errors.Wrap(err, "failed to persist order")
	}
}

// ListOrders returns a page of orders; non-admins only ever see their own.
func (srv *orderService) ListOrders(ctx context.Context, actor *usecase.Actor, input *usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	if !actor.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	page, limit := entity.ClampPage(input.Page, input.Limit, entity.MaxPageLimit)
	filter := repository.OrderFilter{
		Offset: entity.Offset(page, limit),
		Limit:  limit,
	}

	switch {
	case !actor.IsAdmin():
		userID := actor.UserID
		filter.UserID = &userID
	case strings.TrimSpace(input.UserID) != "":
		userID, err := uuid.Parse(strings.TrimSpace(input.UserID))
		if err != nil {
			return nil, domainerrors.ErrInvalidID.WithDetails("userId")
		}
		filter.UserID = &userID
	}

	if status := strings.TrimSpace(input.Status); status != "" {
		orderStatus := entity.OrderStatus(status)
		if !orderStatus.IsValid() {
			return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(status)
		}
		filter.Status = &orderStatus
	}

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{
		Orders:     orders,
		Pagination: entity.NewPagination(page, limit, total),
	}, nil
}

// GetOrder returns an order visible to the actor.
func (srv *orderService) GetOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	if !actor.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err)
	}

	if !actor.CanAccess(order.UserID) {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", id), slog.Any("userID", actor.UserID))

		return nil, domainerrors.ErrOrderAccessDenied
	}

	return order, nil
}

// UpdateOrder applies status changes. Owners may only change the order status, which the
// status state machine restricts to cancellation; admins may also edit shipping and payment fields.
func (srv *orderService) UpdateOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	admin := actor.IsAdmin()
	previous := order.OrderStatus
	now := srv.now()

	if admin {
		if err := applyAdminOrderChanges(order, input, now); err != nil {
			return nil, err
		}
	}

	if input.OrderStatus != nil {
		next := entity.OrderStatus(strings.TrimSpace(*input.OrderStatus))
		if !next.IsValid() {
			return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(*input.OrderStatus)
		}
		if !previous.CanTransition(next, admin) {
			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(previous) + " -> " + string(next))
		}

		order.OrderStatus = next
		switch next {
		case entity.OrderStatusShipped:
			if order.ShippedAt == nil {
				order.ShippedAt = &now
			}
		case entity.OrderStatusDelivered:
			if order.DeliveredAt == nil {
				order.DeliveredAt = &now
			}
		}
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, mapOrderError(err)
	}

	if order.OrderStatus != previous {
		srv.log(ctx).Info("Order status changed",
			slog.Any("orderID", order.ID),
			slog.String("from", string(previous)),
			slog.String("to", string(order.OrderStatus)),
		)
		srv.publish(ctx, service.OrderEventStatusChanged, order)
	}

	return order, nil
}

func applyAdminOrderChanges(order *entity.Order, input *usecase.UpdateOrderInput, now time.Time) error {
	if input.TrackingNumber != nil {
		order.TrackingNumber = strings.TrimSpace(*input.TrackingNumber)
	}
	if input.ShippedAt != nil {
		order.ShippedAt = input.ShippedAt
	}
	if input.DeliveredAt != nil {
		order.DeliveredAt = input.DeliveredAt
	}
	if input.Memo != nil {
		order.Memo = strings.TrimSpace(*input.Memo)
	}
	if input.PaidAt != nil {
		order.PaidAt = input.PaidAt
	}
	if input.PaymentStatus != nil {
		status := entity.PaymentStatus(strings.TrimSpace(*input.PaymentStatus))
		if !status.IsValid() {
			return domainerrors.ErrInvalidPaymentStatus.WithDetails(*input.PaymentStatus)
		}
		if status == entity.PaymentStatusPaid {
			order.MarkPaid(now)
		} else {
			order.PaymentStatus = status
		}
	}

	return nil
}

// DeleteOrder hard-deletes an order. Admin only.
func (srv *orderService) DeleteOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return mapOrderError(err)
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id), slog.Any("adminID", actor.UserID))

	return nil
}

// GetOrderReceiptQR renders the receipt QR code of an order visible to the actor.
func (srv *orderService) GetOrderReceiptQR(ctx context.Context, actor *usecase.Actor, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateOrderReceiptQR(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}

// publish emits an order event. Delivery is best effort and never fails the request.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     eventType,
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID.String(),
		OrderStatus:   string(order.OrderStatus),
		PaymentStatus: string(order.PaymentStatus),
		TotalAmount:   order.TotalAmount,
		OccurredAt:    srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

// mapOrderError translates order repository sentinels into application errors.
func mapOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
	}

	return errors.Wrap(err, "order repository failed")
}
