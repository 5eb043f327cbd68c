package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize          = 256
	receiptPayloadType   = "order_receipt"
	defaultRecoveryLevel = qrcode.Medium
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ReceiptData is encoded when no receipt page URL is configured.
type ReceiptData struct {
	Type        string `json:"type"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	TotalAmount int64  `json:"total_amount"`
}

// NewQRCodeService creates a QR code service from the qrcode configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return defaultRecoveryLevel
	}
}

// GenerateOrderReceiptQR renders a PNG QR code for the order receipt.
func (s *qrcodeService) GenerateOrderReceiptQR(order *entity.Order) ([]byte, error) {
	content, err := s.receiptContent(order)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// receiptContent is the receipt page URL when one is configured, otherwise a JSON payload.
func (s *qrcodeService) receiptContent(order *entity.Order) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/" + url.PathEscape(order.ID.String()) +
			"?orderNumber=" + url.QueryEscape(order.OrderNumber), nil
	}

	data, err := json.Marshal(ReceiptData{
		Type:        receiptPayloadType,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}
