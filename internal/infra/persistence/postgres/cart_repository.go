package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID loads the user's cart with each line's product joined.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Create persists an empty cart; a concurrent creation for the same user wins and is loaded instead.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:          cart.ID,
		UserID:      cart.UserID,
		TotalAmount: cart.TotalAmount,
	}

	if err := repo.db.WithContext(ctx).Omit("Items").Create(cartM).Error; err != nil {
		if !isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
		}

		existing, findErr := repo.FindByUserID(ctx, cart.UserID)
		if findErr != nil {
			return findErr
		}
		*cart = *existing

		return nil
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// Save replaces the stored lines with cart.Items and writes the total.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.Recalculate()

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CartModel{}).
			Where("id = ?", cart.ID).
			Update("total_amount", cart.TotalAmount)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCartNotFound
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}

		if len(cart.Items) == 0 {
			return nil
		}

		items := make([]*model.CartItemModel, 0, len(cart.Items))
		for i, item := range cart.Items {
			items = append(items, fromCartItemDomain(cart.ID, i, item))
		}

		if err := tx.Omit("Product").Create(&items).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrProductNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart items")
		}

		for i, itemM := range items {
			cart.Items[i].ID = itemM.ID
		}

		return nil
	})
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items = append(items, &entity.CartItem{
			ID:        itemM.ID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
			Product:   toProductDomain(itemM.Product),
		})
	}

	return &entity.Cart{
		ID:          data.ID,
		UserID:      data.UserID,
		Items:       items,
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCartItemDomain(cartID uuid.UUID, position int, data *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        data.ID,
		CartID:    cartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		Position:  position,
	}
}
