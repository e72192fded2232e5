package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://careconnect.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://careconnect.example.com")
	profileID := uuid.New()

	qrBytes, err := service.GenerateProfileQR(profileID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://careconnect.example.com")
			profileID := uuid.New()

			qrBytes, err := service.GenerateProfileQR(profileID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateProfileQR_TrailingSlashBaseURL(t *testing.T) {
	// A trailing slash on the base URL must not produce a double slash
	// in the encoded link; both services encode the same payload.
	withSlash := NewQRCodeService(256, "M", "https://careconnect.example.com/")
	withoutSlash := NewQRCodeService(256, "M", "https://careconnect.example.com")
	profileID := uuid.New()

	a, err := withSlash.GenerateProfileQR(profileID)
	require.NoError(t, err)
	b, err := withoutSlash.GenerateProfileQR(profileID)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
