package model

import (
	"github.com/google/uuid"
)

// ensureID assigns a random UUID when the primary key is still empty, so rows created
// through associations get their id before the INSERT.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&UserDeviceModel{},
	}
}
