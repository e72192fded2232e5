// Package auth contains session verifier adapters for the external identity
// provider. The provider issues opaque session tokens; this package only
// verifies them and extracts the owner identifier.
package auth

import (
	"context"
	"log/slog"

	"careconnect/config"
	"careconnect/internal/domain/constants"
	"careconnect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the session verifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionVerifier creates a SessionVerifier based on configuration
func NewSessionVerifier(params VerifierParams) (service.SessionVerifier, error) {
	cfg := params.Config.Auth
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("auth provider is not configured")
	}

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for firebase provider")
		}
		logger.Info("Using Firebase session verifier",
			slog.String("project_id", cfg.ProjectID),
		)

		return NewFirebaseVerifier(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)

	case constants.AuthProviderLocal:
		if cfg.LocalSecret == "" {
			return nil, errors.New("local secret is required for local provider")
		}
		logger.Info("Using local HMAC session verifier")

		return NewLocalVerifier(cfg.LocalSecret), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}
