package qrcode

import (
	"encoding/json"
	"strings"

	"farmlink/config"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	farmerProfileType = "farmer_profile"
	defaultSize       = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is the JSON payload encoded in a farmer share code.
type QRCodeData struct {
	AccountID string `json:"account_id"`
	Type      string `json:"type"`
	Name      string `json:"name,omitempty"`
	URL       string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var qrCfg config.QRCodeConfig
	if cfg != nil && cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	var level qrcode.RecoveryLevel
	switch qrCfg.ErrorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

// GenerateFarmerQR renders a PNG pointing buyers at the farmer's public profile.
func (s *qrcodeService) GenerateFarmerQR(accountID uuid.UUID, displayName string) ([]byte, error) {
	data := QRCodeData{
		AccountID: accountID.String(),
		Type:      farmerProfileType,
		Name:      displayName,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + data.AccountID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseFarmerQR parses scanned QR code data and returns the farmer's account ID.
func (s *qrcodeService) ParseFarmerQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != farmerProfileType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	accountID, err := uuid.Parse(data.AccountID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse account ID")
	}

	return accountID, nil
}
