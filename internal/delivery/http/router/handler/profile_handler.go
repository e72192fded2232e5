package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"careconnect/internal/delivery/http/middleware"
	"careconnect/internal/delivery/http/response"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfile handles the multipart profile creation request.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	input := &usecase.CreateProfileInput{
		Name:               c.FormValue("name"),
		Age:                c.FormValue("age"),
		Gender:             c.FormValue("gender"),
		Type:               c.FormValue("type"),
		Address:            c.FormValue("address"),
		City:               c.FormValue("city"),
		State:              c.FormValue("state"),
		Pincode:            c.FormValue("pincode"),
		Phone:              c.FormValue("phone"),
		Email:              c.FormValue("email"),
		BloodGroup:         c.FormValue("bloodGroup"),
		Condition:          c.FormValue("condition"),
		Medications:        c.FormValue("medications"),
		Allergies:          c.FormValue("allergies"),
		Disabilities:       c.FormValue("disabilities"),
		SpecialNeeds:       c.FormValue("specialNeeds"),
		Medical:            c.FormValue("medical"),
		EmergencyName:      c.FormValue("emergencyName"),
		EmergencyRelation:  c.FormValue("emergencyRelation"),
		EmergencyPhone:     c.FormValue("emergencyPhone"),
		EmergencyPhone2:    c.FormValue("emergencyPhone2"),
		Language:           c.FormValue("language"),
		CommunicationNeeds: c.FormValue("communicationNeeds"),
		Message:            c.FormValue("message"),
		Species:            c.FormValue("species"),
		Breed:              c.FormValue("breed"),
		ChipID:             c.FormValue("chipId"),
		VetName:            c.FormValue("vetName"),
		VetPhone:           c.FormValue("vetPhone"),
		CustomFields:       c.FormValue("customFields"),
	}

	photo, err := readPhotoFile(c)
	if err != nil {
		return err
	}
	input.Photo = photo

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), ownerID, input)
	if err != nil {
		return err
	}

	return response.Created(c, "Profile created successfully", profile)
}

// GetOwnProfiles returns every profile belonging to the caller as a bare
// JSON array, newest first.
func (h *ProfileHandler) GetOwnProfiles(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	profiles, err := h.profileUC.ListProfilesByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = []*entity.Profile{}
	}

	return c.JSON(http.StatusOK, profiles)
}

// GetProfileByID is the public share view: anyone holding the ID may read
// the profile. An unparseable ID reports not-found like a missing record.
func (h *ProfileHandler) GetProfileByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProfileNotFound
	}

	profile, err := h.profileUC.GetProfileByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// GetProfileQR renders the scannable share code for a profile as a PNG.
func (h *ProfileHandler) GetProfileQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProfileNotFound
	}

	png, err := h.profileUC.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateProfile handles the multipart partial update. Only fields present in
// the form are applied; the photo is optional.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProfileNotFound
	}

	form, err := c.FormParams()
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	input := &usecase.UpdateProfileInput{
		Name:               formValue(form, "name"),
		Age:                formValue(form, "age"),
		Gender:             formValue(form, "gender"),
		Type:               formValue(form, "type"),
		Address:            formValue(form, "address"),
		City:               formValue(form, "city"),
		State:              formValue(form, "state"),
		Pincode:            formValue(form, "pincode"),
		Phone:              formValue(form, "phone"),
		Email:              formValue(form, "email"),
		BloodGroup:         formValue(form, "bloodGroup"),
		Condition:          formValue(form, "condition"),
		Medications:        formValue(form, "medications"),
		Allergies:          formValue(form, "allergies"),
		Disabilities:       formValue(form, "disabilities"),
		SpecialNeeds:       formValue(form, "specialNeeds"),
		Medical:            formValue(form, "medical"),
		EmergencyName:      formValue(form, "emergencyName"),
		EmergencyRelation:  formValue(form, "emergencyRelation"),
		EmergencyPhone:     formValue(form, "emergencyPhone"),
		EmergencyPhone2:    formValue(form, "emergencyPhone2"),
		Language:           formValue(form, "language"),
		CommunicationNeeds: formValue(form, "communicationNeeds"),
		Message:            formValue(form, "message"),
		Species:            formValue(form, "species"),
		Breed:              formValue(form, "breed"),
		ChipID:             formValue(form, "chipId"),
		VetName:            formValue(form, "vetName"),
		VetPhone:           formValue(form, "vetPhone"),
		CustomFields:       formValue(form, "customFields"),
	}

	photo, err := readPhotoFile(c)
	if err != nil {
		return err
	}
	input.Photo = photo

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), id, ownerID, input)
	if err != nil {
		return err
	}

	return response.Updated(c, "Profile updated successfully", profile)
}

// DeleteProfile removes a single owned profile.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProfileNotFound
	}

	if err := h.profileUC.DeleteProfile(c.Request().Context(), id, ownerID); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Profile deleted successfully")
}

// DeleteAllProfiles removes every profile the caller owns. Deleting an empty
// account succeeds with the same body.
func (h *ProfileHandler) DeleteAllProfiles(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if _, err := h.profileUC.DeleteAllProfilesForOwner(c.Request().Context(), ownerID); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "All profiles deleted")
}

// readPhotoFile reads the optional multipart photo into memory. An absent
// file part is not an error here; the usecase decides whether it is required.
func readPhotoFile(c echo.Context) (*usecase.PhotoUpload, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return nil, domainerrors.ErrPhotoUploadFailed.WrapMessage(err.Error())
	}

	return &usecase.PhotoUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	}, nil
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// formValue reports a form field as a pointer: nil when the field was absent
// from the request, a value (possibly empty) when it was supplied.
func formValue(form map[string][]string, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}
