package qrcode

import (
	"testing"

	"market/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              baseURL,
		},
	}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateAdvertisementQR(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"configured", newTestConfig(256, "M", "https://example.com/ads/")},
		{"small without base url", newTestConfig(128, "L", "")},
		{"defaults", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.cfg)

			qrBytes, err := service.GenerateAdvertisementQR(uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_ShareContent(t *testing.T) {
	adUUID := uuid.MustParse("0b4e7c1e-7d7e-4b8f-9e0e-2c4f6c1d9a10")

	withURL := NewQRCodeService(newTestConfig(256, "M", "https://example.com/ads/")).(*qrcodeService)
	assert.Equal(t, "https://example.com/ads/0b4e7c1e-7d7e-4b8f-9e0e-2c4f6c1d9a10", withURL.shareContent(adUUID))

	withoutURL := NewQRCodeService(nil).(*qrcodeService)
	assert.Equal(t, "urn:uuid:0b4e7c1e-7d7e-4b8f-9e0e-2c4f6c1d9a10", withoutURL.shareContent(adUUID))
	assert.Equal(t, defaultSize, withoutURL.size)
	assert.Equal(t, qrcode.Medium, withoutURL.level)
}
