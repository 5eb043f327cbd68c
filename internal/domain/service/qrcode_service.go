package service

import (
	"storefront/internal/domain/entity"
)

// QRCodeService renders QR codes for orders.
type QRCodeService interface {
	// GenerateOrderReceiptQR returns a PNG QR code pointing at the order's receipt page.
	GenerateOrderReceiptQR(order *entity.Order) ([]byte, error)
}
