// Package handler contains the HTTP request handlers for the profile API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// serviceVersion is stamped at build time via -ldflags.
var serviceVersion = "dev"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "CareConnect API is running",
		"version": serviceVersion,
		"status":  "healthy",
	})
}
