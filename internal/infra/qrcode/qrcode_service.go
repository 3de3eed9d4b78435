// Package qrcode renders advertisement share codes.
package qrcode

import (
	"strings"

	"market/config"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService reads qrcode.* from cfg. A missing section yields
// medium-recovery 256px codes without a base URL.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	s := &qrcodeService{size: defaultSize, level: qrcode.Medium}
	if cfg == nil || cfg.QRCode == nil {
		return s
	}

	if cfg.QRCode.Size > 0 {
		s.size = cfg.QRCode.Size
	}
	s.level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	s.baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")

	return s
}

// parseRecoveryLevel accepts the ISO letter or its go-qrcode name.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// shareContent is the advertisement URL, or its URN when no public base URL
// is configured.
func (s *qrcodeService) shareContent(adUUID uuid.UUID) string {
	if s.baseURL == "" {
		return adUUID.URN()
	}

	return s.baseURL + "/" + adUUID.String()
}

func (s *qrcodeService) GenerateAdvertisementQR(adUUID uuid.UUID) ([]byte, error) {
	code, err := qrcode.New(s.shareContent(adUUID), s.level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode share code for %s", adUUID)
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return png, nil
}
