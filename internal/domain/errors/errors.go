package errors

import (
	"net/http"

	"careconnect/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrInvalidCustomFields = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CUSTOM_FIELDS",
		"Invalid customFields format",
		"",
	)

	ErrPhotoRequired = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_REQUIRED",
		"Photo is required",
		"",
	)

	ErrPhotoTooLarge = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_TOO_LARGE",
		"Photo exceeds the 5 MB size limit",
		"",
	)

	ErrUnsupportedPhotoFormat = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PHOTO_FORMAT",
		"Photo must be a JPEG, PNG or WEBP image",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid profile data",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authorization required",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session",
		"",
	)

	// Profile-related errors. Absence and ownership mismatch are deliberately
	// the same error so non-owners cannot probe for record existence.
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrPhotoUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_UPLOAD_FAILED",
		"Image upload failed",
		"",
	)

	ErrProfileCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_CREATION_FAILED",
		"Failed to create profile",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Failed to update profile",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
		"",
	)
)

// MissingFieldsError is the validation error for absent required fields. It
// carries the per-field missing map echoed back to the client so the form can
// highlight each offending input.
type MissingFieldsError struct {
	missing map[string]bool
}

// NewMissingFieldsError creates a MissingFieldsError from the missing map.
func NewMissingFieldsError(missing map[string]bool) AppError {
	return &MissingFieldsError{missing: missing}
}

// Error implements the error interface
func (e *MissingFieldsError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *MissingFieldsError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *MissingFieldsError) ErrorCode() string {
	return "MISSING_FIELDS"
}

// Message returns the user-facing error message
func (e *MissingFieldsError) Message() string {
	return "Missing required fields"
}

// Details returns detailed error information
func (e *MissingFieldsError) Details() string {
	return ""
}

// Missing returns the map of required field names to their absence flag.
func (e *MissingFieldsError) Missing() map[string]bool {
	return e.missing
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
