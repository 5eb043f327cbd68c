package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU         string    `gorm:"column:sku;type:varchar(64);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Price       float64   `gorm:"type:double precision;not null;check:chk_products_price,price >= 0"`
	Category    string    `gorm:"type:varchar(20);not null;index"`
	Image       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Stock       int       `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
