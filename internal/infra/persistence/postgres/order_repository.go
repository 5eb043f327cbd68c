package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its items. Totals are re-derived before the insert.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	order.Recalculate()
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("User").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(violatedConstraint(err), "merchant_uid") {
				return repository.ErrDuplicateMerchantUID
			}

			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items and owner summary.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "orders.id = ?", id)
}

// FindByMerchantUID retrieves the order recorded for a payment id.
func (repo *orderRepository) FindByMerchantUID(ctx context.Context, merchantUID string) (*entity.Order, error) {
	return repo.findOne(ctx, "orders.merchant_uid = ?", merchantUID)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withDetails(repo.db.WithContext(ctx)).
		Where(query, arg).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// FindLastOrderNumber returns the greatest order number with the given prefix.
// Fixed-width numbers make lexical order match numeric order.
func (repo *orderRepository) FindLastOrderNumber(ctx context.Context, prefix string) (string, error) {
	var numbers []string

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_number LIKE ?", escapeLike(prefix)+"%").
		Order("order_number DESC").
		Limit(1).
		Pluck("order_number", &numbers).Error; err != nil {
		return "", errors.Wrap(err, "failed to find last order number")
	}

	if len(numbers) == 0 {
		return "", nil
	}

	return numbers[0], nil
}

// List returns orders newest first with the total matching count.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.UserID != nil {
		base = base.Where("orders.user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		base = base.Where("orders.order_status = ?", string(*filter.Status))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	query := repo.withDetails(base.Session(&gorm.Session{})).Order("orders.created_at DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Update writes the status-related fields of an order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.Recalculate()

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"order_status":    string(order.OrderStatus),
			"payment_status":  string(order.PaymentStatus),
			"paid_at":         order.PaidAt,
			"tracking_number": order.TrackingNumber,
			"shipped_at":      order.ShippedAt,
			"delivered_at":    order.DeliveredAt,
			"memo":            order.Memo,
			"subtotal":        order.Subtotal,
			"discount":        order.Discount,
			"total_amount":    order.TotalAmount,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order; its items cascade.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items = append(items, &entity.OrderItem{
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Price:     itemM.Price,
			Quantity:  itemM.Quantity,
			Image:     itemM.Image,
			Size:      itemM.Size,
			Color:     itemM.Color,
		})
	}

	order := &entity.Order{
		ID:             data.ID,
		OrderNumber:    data.OrderNumber,
		UserID:         data.UserID,
		Items:          items,
		RecipientName:  data.RecipientName,
		RecipientPhone: data.RecipientPhone,
		ShippingAddress: entity.ShippingAddress{
			PostalCode:    data.ShippingAddress.PostalCode,
			Address:       data.ShippingAddress.Address,
			AddressDetail: data.ShippingAddress.AddressDetail,
		},
		PaymentMethod:  entity.ParsePaymentMethod(data.PaymentMethod),
		PaymentStatus:  entity.PaymentStatus(data.PaymentStatus),
		PaidAt:         data.PaidAt,
		MerchantUID:    derefString(data.MerchantUID),
		ImpUID:         derefString(data.ImpUID),
		Subtotal:       data.Subtotal,
		Discount:       data.Discount,
		TotalAmount:    data.TotalAmount,
		OrderStatus:    entity.OrderStatus(data.OrderStatus),
		TrackingNumber: data.TrackingNumber,
		ShippedAt:      data.ShippedAt,
		DeliveredAt:    data.DeliveredAt,
		Memo:           data.Memo,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.User != nil {
		order.User = &entity.OrderUser{
			ID:    data.User.ID,
			Name:  data.User.Name,
			Email: data.User.Email,
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Size:      item.Size,
			Color:     item.Color,
			Position:  i,
		})
	}

	return &model.OrderModel{
		ID:             data.ID,
		OrderNumber:    data.OrderNumber,
		UserID:         data.UserID,
		Items:          items,
		RecipientName:  data.RecipientName,
		RecipientPhone: data.RecipientPhone,
		ShippingAddress: model.ShippingAddressModel{
			PostalCode:    data.ShippingAddress.PostalCode,
			Address:       data.ShippingAddress.Address,
			AddressDetail: data.ShippingAddress.AddressDetail,
		},
		PaymentMethod:  string(data.PaymentMethod),
		PaymentStatus:  string(data.PaymentStatus),
		PaidAt:         data.PaidAt,
		MerchantUID:    nilIfEmpty(data.MerchantUID),
		ImpUID:         nilIfEmpty(data.ImpUID),
		Subtotal:       data.Subtotal,
		Discount:       data.Discount,
		TotalAmount:    data.TotalAmount,
		OrderStatus:    string(data.OrderStatus),
		TrackingNumber: data.TrackingNumber,
		ShippedAt:      data.ShippedAt,
		DeliveredAt:    data.DeliveredAt,
		Memo:           data.Memo,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// nilIfEmpty stores empty strings as NULL so unique indexes allow many of them.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
