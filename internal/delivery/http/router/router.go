// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"careconnect/internal/delivery/http/middleware"
	"careconnect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Profile routes. The share views are public: holding a profile ID is the
	// read capability, so GET by ID and the QR render take no session. Fixed
	// segments are registered before :id so "user" never matches as an ID.
	profilesGroup := e.Group("/api/profiles")
	{
		ownedGroup := profilesGroup.Group("")
		ownedGroup.Use(r.authMiddleware.Authenticate)
		{
			ownedGroup.POST("", r.profileHandler.CreateProfile)
			ownedGroup.GET("/user", r.profileHandler.GetOwnProfiles)
			ownedGroup.DELETE("/user/all", r.profileHandler.DeleteAllProfiles)
			ownedGroup.PUT("/:id", r.profileHandler.UpdateProfile)
			ownedGroup.DELETE("/:id", r.profileHandler.DeleteProfile)
		}

		profilesGroup.GET("/:id", r.profileHandler.GetProfileByID)
		profilesGroup.GET("/:id/qr", r.profileHandler.GetProfileQR)
	}
}
