package impl

import (
	"careconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// profileOwnedBy builds a minimal stored profile for ownership tests.
func profileOwnedBy(ownerID string, id uuid.UUID) *entity.Profile {
	return &entity.Profile{
		ID:             id,
		OwnerID:        ownerID,
		Name:           "Stored Profile",
		Age:            "70",
		Phone:          "+91-9000000000",
		Address:        "1 Main Street",
		EmergencyPhone: "+91-9000000002",
		PhotoURL:       "https://media.example.com/stored.jpg",
	}
}
