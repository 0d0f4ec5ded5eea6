package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses share codes for farmer profiles.
type QRCodeService interface {
	// GenerateFarmerQR renders a PNG QR code that resolves to the farmer's public profile.
	GenerateFarmerQR(accountID uuid.UUID, displayName string) ([]byte, error)

	// ParseFarmerQR extracts the farmer's account ID from scanned QR data.
	ParseFarmerQR(qrData string) (uuid.UUID, error)
}
