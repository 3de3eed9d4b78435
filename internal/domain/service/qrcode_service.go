package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders advertisement share codes.
type QRCodeService interface {
	// GenerateAdvertisementQR renders a PNG that opens the advertisement when scanned.
	GenerateAdvertisementQR(adUUID uuid.UUID) ([]byte, error)
}
