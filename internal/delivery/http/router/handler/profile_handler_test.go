package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"careconnect/config"
	httpmiddleware "careconnect/internal/delivery/http/middleware"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/service"
	mockSvc "careconnect/internal/mocks/service"
	mockUC "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	server    *echo.Echo
	profileUC *mockUC.MockProfileUsecase
	verifier  *mockSvc.MockSessionVerifier
}

// createTestServer wires the handler behind the auth middleware and the
// centralized error handler, mirroring the production middleware chain.
func createTestServer(t *testing.T) handlerFixtures {
	profileUC := mockUC.NewMockProfileUsecase(t)
	verifier := mockSvc.NewMockSessionVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := &ProfileHandler{profileUC: profileUC, logger: logger}
	authMW := httpmiddleware.NewAuthMiddleware(verifier)

	cfg := &config.Config{}
	errorMW := httpmiddleware.NewErrorMiddleware(logger, cfg)

	e := echo.New()
	e.HTTPErrorHandler = errorMW.HandleHTTPError

	profilesGroup := e.Group("/api/profiles")
	ownedGroup := profilesGroup.Group("")
	ownedGroup.Use(authMW.Authenticate)
	ownedGroup.POST("", h.CreateProfile)
	ownedGroup.GET("/user", h.GetOwnProfiles)
	ownedGroup.DELETE("/user/all", h.DeleteAllProfiles)
	ownedGroup.PUT("/:id", h.UpdateProfile)
	ownedGroup.DELETE("/:id", h.DeleteProfile)
	profilesGroup.GET("/:id", h.GetProfileByID)
	profilesGroup.GET("/:id/qr", h.GetProfileQR)

	return handlerFixtures{
		server:    e,
		profileUC: profileUC,
		verifier:  verifier,
	}
}

func (fx handlerFixtures) expectSession(ownerID string) {
	fx.verifier.EXPECT().
		VerifySession(mock.Anything, "valid-token").
		Return(&service.Session{OwnerID: ownerID}, nil)
}

// multipartBody builds a multipart form with the given fields and an optional
// photo file part.
func multipartBody(t *testing.T, fields map[string]string, photo []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if photo != nil {
		part, err := writer.CreateFormFile("photo", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return decoded
}

func TestProfileHandler_CreateProfile_NoAuthorizationHeader(t *testing.T) {
	fx := createTestServer(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Martha"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	// The request is rejected before the usecase is touched.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization required", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_CreateProfile_InvalidSession(t *testing.T) {
	fx := createTestServer(t)

	fx.verifier.EXPECT().
		VerifySession(mock.Anything, "expired-token").
		Return(nil, service.ErrInvalidSession)

	body, contentType := multipartBody(t, map[string]string{"name": "Martha"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired session", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_CreateProfile_MissingFields(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("owner-1")

	fx.profileUC.EXPECT().
		CreateProfile(mock.Anything, "owner-1", mock.AnythingOfType("*usecase.CreateProfileInput")).
		Return(nil, domainerrors.NewMissingFieldsError(map[string]bool{"emergencyPhone": true}))

	body, contentType := multipartBody(t, map[string]string{"name": "Martha"}, []byte{0xFF, 0xD8})
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decoded := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields", decoded["msg"])
	missing, ok := decoded["missing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, missing["emergencyPhone"])
}

func TestProfileHandler_CreateProfile_Success(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("owner-1")

	created := &entity.Profile{
		ID:      uuid.New(),
		OwnerID: "owner-1",
		Name:    "Martha Devi",
	}

	fx.profileUC.EXPECT().
		CreateProfile(mock.Anything, "owner-1", mock.MatchedBy(func(input *usecase.CreateProfileInput) bool {
			return input.Name == "Martha Devi" && input.Photo != nil && len(input.Photo.Data) > 0
		})).
		Return(created, nil)

	fields := map[string]string{
		"name":           "Martha Devi",
		"age":            "82",
		"phone":          "+91-9876543210",
		"address":        "12 Lakeview Road",
		"emergencyPhone": "+91-9123456780",
	}
	body, contentType := multipartBody(t, fields, []byte{0xFF, 0xD8, 0xFF})
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	decoded := decodeBody(t, rec)
	assert.Equal(t, "Profile created successfully", decoded["msg"])
	profile, ok := decoded["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "owner-1", profile["ownerId"])
}

func TestProfileHandler_GetOwnProfiles_EmptyIsBareArray(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("owner-1")

	fx.profileUC.EXPECT().
		ListProfilesByOwner(mock.Anything, "owner-1").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/user", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProfileHandler_GetProfileByID_PublicRead(t *testing.T) {
	fx := createTestServer(t)

	profileID := uuid.New()
	fx.profileUC.EXPECT().
		GetProfileByID(mock.Anything, profileID).
		Return(&entity.Profile{ID: profileID, Name: "Shared"}, nil)

	// No Authorization header: holding the ID is the capability.
	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+profileID.String(), nil)
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shared", decodeBody(t, rec)["name"])
}

func TestProfileHandler_GetProfileByID_NotFound(t *testing.T) {
	fx := createTestServer(t)

	profileID := uuid.New()
	fx.profileUC.EXPECT().
		GetProfileByID(mock.Anything, profileID).
		Return(nil, domainerrors.ErrProfileNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+profileID.String(), nil)
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Profile not found", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_GetProfileByID_UnparseableIDIsNotFound(t *testing.T) {
	fx := createTestServer(t)

	// No usecase expectation: the malformed ID never reaches it, and the
	// body is identical to the missing-record case.
	req := httptest.NewRequest(http.MethodGet, "/api/profiles/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Profile not found", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_GetProfileQR(t *testing.T) {
	fx := createTestServer(t)

	profileID := uuid.New()
	fx.profileUC.EXPECT().
		GenerateShareQR(mock.Anything, profileID).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+profileID.String()+"/qr", nil)
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes())
}

func TestProfileHandler_UpdateProfile_OnlySuppliedFieldsBound(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("owner-1")

	profileID := uuid.New()
	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, profileID, "owner-1", mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.Age != nil && *input.Age == "83" &&
				input.Name == nil && input.Photo == nil
		})).
		Return(&entity.Profile{ID: profileID, OwnerID: "owner-1", Age: "83"}, nil)

	body, contentType := multipartBody(t, map[string]string{"age": "83"}, nil)
	req := httptest.NewRequest(http.MethodPut, "/api/profiles/"+profileID.String(), body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_DeleteProfile(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("owner-1")

	profileID := uuid.New()
	fx.profileUC.EXPECT().
		DeleteProfile(mock.Anything, profileID, "owner-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/profiles/"+profileID.String(), nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile deleted successfully", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_DeleteAllProfiles(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("owner-1")

	fx.profileUC.EXPECT().
		DeleteAllProfilesForOwner(mock.Anything, "owner-1").
		Return(int64(2), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/profiles/user/all", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All profiles deleted", decodeBody(t, rec)["msg"])
}

func TestProfileHandler_DeleteProfile_NotOwnedReportsNotFound(t *testing.T) {
	fx := createTestServer(t)
	fx.expectSession("attacker")

	profileID := uuid.New()
	fx.profileUC.EXPECT().
		DeleteProfile(mock.Anything, profileID, "attacker").
		Return(domainerrors.ErrProfileNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/profiles/"+profileID.String(), nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Profile not found", decodeBody(t, rec)["msg"])
}
