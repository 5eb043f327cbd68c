package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingAddressModel is embedded into 'orders' with the shipping_ prefix.
type ShippingAddressModel struct {
	PostalCode    string `gorm:"type:varchar(20)"`
	Address       string `gorm:"type:text;not null"`
	AddressDetail string `gorm:"type:text"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey"`
	OrderNumber     string               `gorm:"type:varchar(20);uniqueIndex;not null"`
	UserID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	User            *UserModel           `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Items           []OrderItemModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	RecipientName   string               `gorm:"type:varchar(100);not null"`
	RecipientPhone  string               `gorm:"type:varchar(30);not null"`
	ShippingAddress ShippingAddressModel `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string               `gorm:"type:varchar(20);not null;default:card"`
	PaymentStatus   string               `gorm:"type:varchar(20);not null;default:pending"`
	PaidAt          *time.Time
	MerchantUID     *string `gorm:"column:merchant_uid;type:varchar(100);uniqueIndex"`
	ImpUID          *string `gorm:"column:imp_uid;type:varchar(100)"`
	Subtotal        float64 `gorm:"type:double precision;not null;default:0"`
	Discount        float64 `gorm:"type:double precision;not null;default:0"`
	TotalAmount     int64   `gorm:"not null;default:0"`
	OrderStatus     string  `gorm:"type:varchar(20);not null;index"`
	TrackingNumber  string  `gorm:"type:varchar(100)"`
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	Memo            string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// OrderItemModel mirrors the 'order_items' table, a snapshot of a product at checkout.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Price     float64   `gorm:"type:double precision;not null"`
	Quantity  int       `gorm:"not null"`
	Image     string    `gorm:"type:text"`
	Size      string    `gorm:"type:varchar(50)"`
	Color     string    `gorm:"type:varchar(50)"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the primary key.
func (m *OrderItemModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
