// Package response renders the wire-level JSON bodies. Error payloads carry a
// human-readable msg field; validation failures additionally echo a per-field
// missing map so client forms can highlight each absent input.
package response

import (
	"net/http"

	"careconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body for message-only results.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ProfileResponse is the body for mutations that return the affected profile.
type ProfileResponse struct {
	Msg     string          `json:"msg"`
	Profile *entity.Profile `json:"profile"`
}

// ErrorResponse is the body for every error result. Missing is populated only
// for required-field validation failures; Error carries internal detail and is
// set only in debug mode.
type ErrorResponse struct {
	Msg     string          `json:"msg"`
	Missing map[string]bool `json:"missing,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Message returns a message-only response.
func Message(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, MessageResponse{Msg: msg})
}

// Created returns the 201 body for a newly created profile.
func Created(c echo.Context, msg string, profile *entity.Profile) error {
	return c.JSON(http.StatusCreated, ProfileResponse{Msg: msg, Profile: profile})
}

// Updated returns the 200 body for an updated profile.
func Updated(c echo.Context, msg string, profile *entity.Profile) error {
	return c.JSON(http.StatusOK, ProfileResponse{Msg: msg, Profile: profile})
}

// Error returns an error response.
func Error(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, ErrorResponse{Msg: msg})
}

// ValidationError returns the 400 body carrying the missing-fields map.
func ValidationError(c echo.Context, msg string, missing map[string]bool) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: msg, Missing: missing})
}

// ErrorWithDetails returns an error response exposing internal detail. Only
// the debug configuration path may call this.
func ErrorWithDetails(c echo.Context, statusCode int, msg, details string) error {
	return c.JSON(statusCode, ErrorResponse{Msg: msg, Error: details})
}
