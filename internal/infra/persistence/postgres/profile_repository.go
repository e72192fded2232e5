package postgres

import (
	"context"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile and backfills the generated ID and timestamps.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by its unique ID regardless of owner.
// Ownership filtering, where required, is the caller's concern.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByOwner retrieves all profiles belonging to an owner, newest first.
func (repo *profileRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by owner")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Update saves the full state of an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// DeleteByIDAndOwner deletes the profile only when both ID and owner match.
// A missing record and an ownership mismatch are the same outcome on purpose.
func (repo *profileRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeleteByOwner deletes every profile belonging to the owner. Zero deletions
// is a valid, idempotent outcome.
func (repo *profileRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profiles by owner")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	customFields := make([]entity.CustomField, 0, len(data.CustomFields))
	for _, field := range data.CustomFields {
		customFields = append(customFields, entity.CustomField{
			Label: field.Label,
			Value: field.Value,
		})
	}

	return &entity.Profile{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Age:                data.Age,
		Gender:             entity.Gender(data.Gender),
		Type:               entity.ProfileType(data.Type),
		PhotoURL:           data.PhotoURL,
		Address:            data.Address,
		City:               data.City,
		State:              data.State,
		Pincode:            data.Pincode,
		Phone:              data.Phone,
		Email:              data.Email,
		BloodGroup:         entity.BloodGroup(data.BloodGroup),
		Condition:          data.Condition,
		Medications:        data.Medications,
		Allergies:          data.Allergies,
		Disabilities:       data.Disabilities,
		SpecialNeeds:       data.SpecialNeeds,
		Medical:            data.Medical,
		EmergencyName:      data.EmergencyName,
		EmergencyRelation:  data.EmergencyRelation,
		EmergencyPhone:     data.EmergencyPhone,
		EmergencyPhone2:    data.EmergencyPhone2,
		Language:           data.Language,
		CommunicationNeeds: data.CommunicationNeeds,
		Message:            data.Message,
		Species:            data.Species,
		Breed:              data.Breed,
		ChipID:             data.ChipID,
		VetName:            data.VetName,
		VetPhone:           data.VetPhone,
		CustomFields:       customFields,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	customFields := make([]model.ProfileCustomField, 0, len(data.CustomFields))
	for _, field := range data.CustomFields {
		customFields = append(customFields, model.ProfileCustomField{
			Label: field.Label,
			Value: field.Value,
		})
	}

	return &model.ProfileModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Age:                data.Age,
		Gender:             string(data.Gender),
		Type:               string(data.Type),
		PhotoURL:           data.PhotoURL,
		Address:            data.Address,
		City:               data.City,
		State:              data.State,
		Pincode:            data.Pincode,
		Phone:              data.Phone,
		Email:              data.Email,
		BloodGroup:         string(data.BloodGroup),
		Condition:          data.Condition,
		Medications:        data.Medications,
		Allergies:          data.Allergies,
		Disabilities:       data.Disabilities,
		SpecialNeeds:       data.SpecialNeeds,
		Medical:            data.Medical,
		EmergencyName:      data.EmergencyName,
		EmergencyRelation:  data.EmergencyRelation,
		EmergencyPhone:     data.EmergencyPhone,
		EmergencyPhone2:    data.EmergencyPhone2,
		Language:           data.Language,
		CommunicationNeeds: data.CommunicationNeeds,
		Message:            data.Message,
		Species:            data.Species,
		Breed:              data.Breed,
		ChipID:             data.ChipID,
		VetName:            data.VetName,
		VetPhone:           data.VetPhone,
		CustomFields:       customFields,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
