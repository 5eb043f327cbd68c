// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a device that receives order push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	PushToken string    `json:"pushToken"` // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"deviceId"`  // Client-side device identifier.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
