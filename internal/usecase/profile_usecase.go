// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Mutations take the owner identifier extracted from the verified session;
// reads by ID are public because the profile ID doubles as the share token.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, ownerID string, input *CreateProfileInput) (*entity.Profile, error)
	ListProfilesByOwner(ctx context.Context, ownerID string) ([]*entity.Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, ownerID string, input *UpdateProfileInput) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID, ownerID string) error
	DeleteAllProfilesForOwner(ctx context.Context, ownerID string) (int64, error)
	GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// PhotoUpload carries the raw multipart photo attached to a request.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// CreateProfileInput defines the data required to create a profile. A photo
// is mandatory on create. CustomFields arrives as the raw JSON string from
// the multipart form and is parsed before any upload happens.
type CreateProfileInput struct {
	Name    string `validate:"required"`
	Age     string `validate:"required"`
	Gender  string `validate:"gender"`
	Type    string `validate:"profile_type"`
	Address string `validate:"required"`
	City    string
	State   string
	Pincode string
	Phone   string `validate:"required"`
	Email   string `validate:"omitempty,email"`

	BloodGroup   string `validate:"blood_group"`
	Condition    string
	Medications  string
	Allergies    string
	Disabilities string
	SpecialNeeds string
	Medical      string

	EmergencyName     string
	EmergencyRelation string
	EmergencyPhone    string `validate:"required"`
	EmergencyPhone2   string

	Language           string
	CommunicationNeeds string
	Message            string

	Species  string
	Breed    string
	ChipID   string
	VetName  string
	VetPhone string

	CustomFields string
	Photo        *PhotoUpload
}

// UpdateProfileInput defines the data for a partial profile update. Nil
// fields are left untouched; the photo is optional and replaces the stored
// URL only when a new upload succeeds.
type UpdateProfileInput struct {
	Name    *string
	Age     *string
	Gender  *string
	Type    *string
	Address *string
	City    *string
	State   *string
	Pincode *string
	Phone   *string
	Email   *string

	BloodGroup   *string
	Condition    *string
	Medications  *string
	Allergies    *string
	Disabilities *string
	SpecialNeeds *string
	Medical      *string

	EmergencyName     *string
	EmergencyRelation *string
	EmergencyPhone    *string
	EmergencyPhone2   *string

	Language           *string
	CommunicationNeeds *string
	Message            *string

	Species  *string
	Breed    *string
	ChipID   *string
	VetName  *string
	VetPhone *string

	CustomFields *string
	Photo        *PhotoUpload
}
