package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates scannable share codes for public profile views.
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code encoding the public share URL
	// of the given profile.
	GenerateProfileQR(profileID uuid.UUID) ([]byte, error)
}
