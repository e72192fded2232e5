// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/domain/constants"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requiredFieldJSONNames maps the required input struct fields to the client
// facing names echoed back in the missing map of a validation failure.
var requiredFieldJSONNames = map[string]string{
	"Name":           "name",
	"Age":            "age",
	"Address":        "address",
	"Phone":          "phone",
	"EmergencyPhone": "emergencyPhone",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	mediaStore  service.MediaStore
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	mediaStore service.MediaStore,
	publisher service.EventPublisher,
	qrService service.QRCodeService,
	logger *slog.Logger,
) (usecase.ProfileUsecase, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerEnumValidations(validate); err != nil {
		return nil, errors.Wrap(err, "failed to register validations")
	}

	return &profileService{
		profileRepo: profileRepo,
		mediaStore:  mediaStore,
		publisher:   publisher,
		qrService:   qrService,
		validate:    validate,
		logger:      logger,
	}, nil
}

// registerEnumValidations wires the domain enums into the validator so input
// tags can reference them by name. The empty string passes every enum check
// because each attribute is optional.
func registerEnumValidations(validate *validator.Validate) error {
	if err := validate.RegisterValidation("profile_type", func(fl validator.FieldLevel) bool {
		return entity.ProfileType(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	if err := validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return entity.Gender(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	return validate.RegisterValidation("blood_group", func(fl validator.FieldLevel) bool {
		return entity.BloodGroup(fl.Field().String()).Valid()
	})
}

// CreateProfile validates the input, uploads the photo and persists the new
// profile under the verified owner. Validation and the custom-fields parse
// run before the upload so a doomed request never stores an orphaned image.
func (srv *profileService) CreateProfile(ctx context.Context, ownerID string, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Creating profile", slog.String("owner_id", ownerID))

	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	customFields, err := entity.ParseCustomFields(input.CustomFields)
	if err != nil {
		return nil, domainerrors.ErrInvalidCustomFields.WrapMessage(err.Error())
	}

	if input.Photo == nil || len(input.Photo.Data) == 0 {
		return nil, domainerrors.ErrPhotoRequired
	}

	photoURL, err := srv.uploadPhoto(ctx, input.Photo)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		OwnerID:            ownerID,
		Name:               input.Name,
		Age:                input.Age,
		Gender:             entity.Gender(input.Gender),
		Type:               entity.ProfileType(input.Type),
		PhotoURL:           photoURL,
		Address:            input.Address,
		City:               input.City,
		State:              input.State,
		Pincode:            input.Pincode,
		Phone:              input.Phone,
		Email:              input.Email,
		BloodGroup:         entity.BloodGroup(input.BloodGroup),
		Condition:          input.Condition,
		Medications:        input.Medications,
		Allergies:          input.Allergies,
		Disabilities:       input.Disabilities,
		SpecialNeeds:       input.SpecialNeeds,
		Medical:            input.Medical,
		EmergencyName:      input.EmergencyName,
		EmergencyRelation:  input.EmergencyRelation,
		EmergencyPhone:     input.EmergencyPhone,
		EmergencyPhone2:    input.EmergencyPhone2,
		Language:           input.Language,
		CommunicationNeeds: input.CommunicationNeeds,
		Message:            input.Message,
		Species:            input.Species,
		Breed:              input.Breed,
		ChipID:             input.ChipID,
		VetName:            input.VetName,
		VetPhone:           input.VetPhone,
		CustomFields:       customFields,
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.publishEvent(ctx, constants.EventActionCreated, profile.ID.String(), ownerID, 0)
	logger.Info("Profile created",
		slog.String("profile_id", profile.ID.String()),
		slog.String("owner_id", ownerID),
	)

	return profile, nil
}

// ListProfilesByOwner returns every profile the owner has created, newest first.
func (srv *profileService) ListProfilesByOwner(ctx context.Context, ownerID string) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// GetProfileByID retrieves a profile without an ownership check: holding the
// ID is the sharing capability.
func (srv *profileService) GetProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update to an owned profile. A mismatch
// between the stored owner and the caller reports not-found, the same as a
// missing record, so record existence cannot be probed.
func (srv *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, ownerID string, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Updating profile", slog.String("profile_id", id.String()))

	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}
	if profile.OwnerID != ownerID {
		return nil, domainerrors.ErrProfileNotFound
	}

	if err := validateUpdateEnums(input); err != nil {
		return nil, err
	}

	// Parse before touching the media store, mirroring the create ordering.
	if input.CustomFields != nil {
		customFields, err := entity.ParseCustomFields(*input.CustomFields)
		if err != nil {
			return nil, domainerrors.ErrInvalidCustomFields.WrapMessage(err.Error())
		}
		profile.CustomFields = customFields
	}

	if input.Photo != nil && len(input.Photo.Data) > 0 {
		photoURL, err := srv.uploadPhoto(ctx, input.Photo)
		if err != nil {
			return nil, err
		}
		profile.PhotoURL = photoURL
	}

	applyUpdate(profile, input)

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.publishEvent(ctx, constants.EventActionUpdated, profile.ID.String(), ownerID, 0)
	logger.Info("Profile updated", slog.String("profile_id", profile.ID.String()))

	return profile, nil
}

// DeleteProfile removes an owned profile. Like updates, an ownership mismatch
// is indistinguishable from a missing record.
func (srv *profileService) DeleteProfile(ctx context.Context, id uuid.UUID, ownerID string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if err := srv.profileRepo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	srv.publishEvent(ctx, constants.EventActionDeleted, id.String(), ownerID, 0)
	logger.Info("Profile deleted", slog.String("profile_id", id.String()))

	return nil
}

// DeleteAllProfilesForOwner removes every profile of the owner and reports
// how many were removed. Deleting an empty account succeeds with zero.
func (srv *profileService) DeleteAllProfilesForOwner(ctx context.Context, ownerID string) (int64, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	count, err := srv.profileRepo.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete profiles")
	}

	if count > 0 {
		srv.publishEvent(ctx, constants.EventActionBulkDelete, "", ownerID, count)
	}
	logger.Info("Profiles deleted for owner",
		slog.String("owner_id", ownerID),
		slog.Int64("count", count),
	)

	return count, nil
}

// GenerateShareQR renders the QR code for an existing profile's share link.
func (srv *profileService) GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetProfileByID(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProfileQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// validateInput runs struct validation and translates the failures into the
// wire-level errors: absent required fields become a MissingFieldsError with
// the per-field map, anything else is a plain validation failure.
func (srv *profileService) validateInput(input *usecase.CreateProfileInput) error {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	missing := make(map[string]bool)
	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() != "required" {
			continue
		}
		if name, ok := requiredFieldJSONNames[fieldErr.StructField()]; ok {
			missing[name] = true
		}
	}
	if len(missing) > 0 {
		return domainerrors.NewMissingFieldsError(missing)
	}

	return domainerrors.ErrValidationFailed.WrapMessage(validationErrs.Error())
}

// validateUpdateEnums checks the enumerated attributes supplied in a partial
// update. Required fields are not re-checked because omitted means unchanged.
func validateUpdateEnums(input *usecase.UpdateProfileInput) error {
	if input.Type != nil && !entity.ProfileType(*input.Type).Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid profile type")
	}
	if input.Gender != nil && !entity.Gender(*input.Gender).Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid gender")
	}
	if input.BloodGroup != nil && !entity.BloodGroup(*input.BloodGroup).Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid blood group")
	}

	return nil
}

// uploadPhoto stores the photo and maps media-store constraint violations to
// client errors; anything else is a provider failure.
func (srv *profileService) uploadPhoto(ctx context.Context, photo *usecase.PhotoUpload) (string, error) {
	photoURL, err := srv.mediaStore.UploadPhoto(ctx, &service.MediaUpload{
		Filename: photo.Filename,
		Data:     photo.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoTooLarge):
			return "", domainerrors.ErrPhotoTooLarge
		case errors.Is(err, service.ErrUnsupportedPhotoFormat):
			return "", domainerrors.ErrUnsupportedPhotoFormat
		default:
			return "", domainerrors.ErrPhotoUploadFailed.WrapMessage(err.Error())
		}
	}

	return photoURL, nil
}

// publishEvent emits an audit event. Publishing is best effort: a failure is
// logged and never surfaces to the caller.
func (srv *profileService) publishEvent(ctx context.Context, action, profileID, ownerID string, count int64) {
	event := &service.ProfileEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Action:    action,
		ProfileID: profileID,
		OwnerID:   ownerID,
		Count:     count,
	}

	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish profile event",
			slog.String("action", action),
			slog.String("profile_id", profileID),
			slog.Any("error", err),
		)
	}
}

// applyUpdate merges the non-nil scalar fields of the input onto the profile.
// CustomFields and Photo are handled by the caller.
func applyUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	setString(&profile.Name, input.Name)
	setString(&profile.Age, input.Age)
	if input.Gender != nil {
		profile.Gender = entity.Gender(*input.Gender)
	}
	if input.Type != nil {
		profile.Type = entity.ProfileType(*input.Type)
	}
	setString(&profile.Address, input.Address)
	setString(&profile.City, input.City)
	setString(&profile.State, input.State)
	setString(&profile.Pincode, input.Pincode)
	setString(&profile.Phone, input.Phone)
	setString(&profile.Email, input.Email)
	if input.BloodGroup != nil {
		profile.BloodGroup = entity.BloodGroup(*input.BloodGroup)
	}
	setString(&profile.Condition, input.Condition)
	setString(&profile.Medications, input.Medications)
	setString(&profile.Allergies, input.Allergies)
	setString(&profile.Disabilities, input.Disabilities)
	setString(&profile.SpecialNeeds, input.SpecialNeeds)
	setString(&profile.Medical, input.Medical)
	setString(&profile.EmergencyName, input.EmergencyName)
	setString(&profile.EmergencyRelation, input.EmergencyRelation)
	setString(&profile.EmergencyPhone, input.EmergencyPhone)
	setString(&profile.EmergencyPhone2, input.EmergencyPhone2)
	setString(&profile.Language, input.Language)
	setString(&profile.CommunicationNeeds, input.CommunicationNeeds)
	setString(&profile.Message, input.Message)
	setString(&profile.Species, input.Species)
	setString(&profile.Breed, input.Breed)
	setString(&profile.ChipID, input.ChipID)
	setString(&profile.VetName, input.VetName)
	setString(&profile.VetPhone, input.VetPhone)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
