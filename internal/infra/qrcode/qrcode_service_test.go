package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:          uuid.MustParse("0194d1f0-0000-7000-8000-000000000001"),
		OrderNumber: "ORD-20250205-0001",
		TotalAmount: 25000,
	}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateOrderReceiptQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: "M"}})

		pngBytes, err := svc.GenerateOrderReceiptQR(testOrder())
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(pngBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
	}
}

func TestQRCodeService_ReceiptContentURL(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{BaseURL: "https://shop.example.com/orders/"},
	}).(*qrcodeService)
	require.True(t, ok)

	content, err := svc.receiptContent(testOrder())
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/orders/0194d1f0-0000-7000-8000-000000000001?orderNumber=ORD-20250205-0001", content)
}

func TestQRCodeService_ReceiptContentJSON(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, svc.size)

	content, err := svc.receiptContent(testOrder())
	require.NoError(t, err)

	var data ReceiptData
	require.NoError(t, json.Unmarshal([]byte(content), &data))
	assert.Equal(t, receiptPayloadType, data.Type)
	assert.Equal(t, "ORD-20250205-0001", data.OrderNumber)
	assert.Equal(t, int64(25000), data.TotalAmount)
}
