package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"farmlink/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(size int, level string) *qrcodeService {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://farmlink.example/farmers/",
	}})

	return svc.(*qrcodeService)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Empty(t, svc.baseURL)

	assert.Equal(t, "https://farmlink.example/farmers", newService(128, "H").baseURL)
}

func TestQRCodeService_GenerateFarmerQR(t *testing.T) {
	svc := newService(200, "M")

	qrBytes, err := svc.GenerateFarmerQR(uuid.New(), "Kilimo Co-op (Group)")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_ParseFarmerQR(t *testing.T) {
	svc := newService(256, "M")
	accountID := uuid.New()

	payload, err := json.Marshal(QRCodeData{AccountID: accountID.String(), Type: farmerProfileType})
	require.NoError(t, err)

	parsed, err := svc.ParseFarmerQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)

	wrongType, _ := json.Marshal(QRCodeData{AccountID: accountID.String(), Type: "subscription"})
	_, err = svc.ParseFarmerQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	badID, _ := json.Marshal(QRCodeData{AccountID: "nope", Type: farmerProfileType})
	_, err = svc.ParseFarmerQR(string(badID))
	assert.Error(t, err)

	_, err = svc.ParseFarmerQR("not json")
	assert.Error(t, err)
}
