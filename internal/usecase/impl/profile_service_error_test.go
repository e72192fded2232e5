package impl

import (
	"context"
	"testing"

	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_CreateProfile_MissingRequiredFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		Name: "Only a name",
		Photo: &usecase.PhotoUpload{
			Filename: "p.jpg",
			Data:     []byte{0xFF, 0xD8},
		},
	}

	// No media or repository expectations: validation fails first and
	// nothing may be uploaded or persisted.
	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)

	var missingErr *domainerrors.MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	missing := missingErr.Missing()
	assert.True(t, missing["age"])
	assert.True(t, missing["address"])
	assert.True(t, missing["phone"])
	assert.True(t, missing["emergencyPhone"])
	assert.False(t, missing["name"])
}

func TestProfileService_CreateProfile_MalformedCustomFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.CustomFields = `{"label":"not an array"}`

	// The parse failure must precede the upload, so the media store is
	// never touched.
	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCustomFields)
}

func TestProfileService_CreateProfile_CustomFieldsMissingValue(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.CustomFields = `[{"label":"Ward","value":""}]`

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCustomFields)
}

func TestProfileService_CreateProfile_PhotoRequired(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.Photo = nil

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoRequired)
}

func TestProfileService_CreateProfile_PhotoTooLarge(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStore.EXPECT().
		UploadPhoto(ctx, mock.AnythingOfType("*service.MediaUpload")).
		Return("", service.ErrPhotoTooLarge)

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoTooLarge)
}

func TestProfileService_CreateProfile_UnsupportedPhotoFormat(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStore.EXPECT().
		UploadPhoto(ctx, mock.AnythingOfType("*service.MediaUpload")).
		Return("", service.ErrUnsupportedPhotoFormat)

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPhotoFormat)
}

func TestProfileService_CreateProfile_UploadProviderFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStore.EXPECT().
		UploadPhoto(ctx, mock.AnythingOfType("*service.MediaUpload")).
		Return("", errors.New("bucket unreachable"))

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoUploadFailed)
}

func TestProfileService_CreateProfile_InvalidEnum(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.BloodGroup = "X+"

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_CreateProfile_PersistFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.mediaStore.EXPECT().
		UploadPhoto(ctx, mock.AnythingOfType("*service.MediaUpload")).
		Return("https://media.example.com/p.jpg", nil)

	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), ""))

	_, err := fx.service.CreateProfile(ctx, "owner", input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestProfileService_GetProfileByID_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfileByID(ctx, profileID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.UpdateProfile(ctx, profileID, "owner", &usecase.UpdateProfileInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_OwnershipMismatchReportsNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(profileOwnedBy("someone-else", profileID), nil)

	newName := "hijacked"
	_, err := fx.service.UpdateProfile(ctx, profileID, "attacker", &usecase.UpdateProfileInput{Name: &newName})
	require.Error(t, err)

	// The mismatch is indistinguishable from a missing record.
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_InvalidEnum(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(profileOwnedBy("owner", profileID), nil)

	badType := "Dragon"
	_, err := fx.service.UpdateProfile(ctx, profileID, "owner", &usecase.UpdateProfileInput{Type: &badType})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_MalformedCustomFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(profileOwnedBy("owner", profileID), nil)

	malformed := `[{"label":"no value"}]`
	_, err := fx.service.UpdateProfile(ctx, profileID, "owner", &usecase.UpdateProfileInput{CustomFields: &malformed})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCustomFields)
}

func TestProfileService_DeleteProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		DeleteByIDAndOwner(ctx, profileID, "owner").
		Return(repository.ErrProfileNotFound)

	err := fx.service.DeleteProfile(ctx, profileID, "owner")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GenerateShareQR_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GenerateShareQR(ctx, profileID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
