package middleware

import (
	"log/slog"
	"net/http"

	"careconnect/config"
	"careconnect/internal/delivery/http/response"
	domainerrors "careconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Required-field validation failures carry the per-field missing map
	var missingErr *domainerrors.MissingFieldsError
	if errors.As(err, &missingErr) {
		_ = response.ValidationError(c, missingErr.Message(), missingErr.Missing())

		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			if m.debug {
				_ = response.ErrorWithDetails(c, appErr.HTTPCode(), appErr.Message(), err.Error())

				return
			}
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	// Default to internal error, log the error but return a generic message
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if m.debug {
		_ = response.ErrorWithDetails(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message(), err.Error())

		return
	}
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}
