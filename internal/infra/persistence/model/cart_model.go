package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartModel mirrors the 'carts' table; one row per user.
type CartModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	TotalAmount float64         `gorm:"type:double precision;not null;default:0"`
	Items       []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// BeforeCreate assigns the primary key.
func (m *CartModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Quantity  int           `gorm:"not null;check:chk_cart_items_quantity,quantity >= 1"`
	Price     float64       `gorm:"type:double precision;not null"`
	Position  int           `gorm:"not null;default:0"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// BeforeCreate assigns the primary key.
func (m *CartItemModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
