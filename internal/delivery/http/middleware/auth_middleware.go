package middleware

import (
	"net/http"
	"strings"

	"careconnect/internal/delivery/http/response"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ownerIDKey is the echo.Context key under which the verified owner is stored.
const ownerIDKey = "ownerID"

// AuthMiddleware authenticates requests by verifying the bearer token against
// the identity provider and exposing the resulting owner ID to handlers.
type AuthMiddleware struct {
	verifier service.SessionVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.SessionVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Authorization header and stores the verified
// owner ID on the request context. A missing header and a bad token both end
// the request with 401 before any handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
		}

		session, err := m.verifier.VerifySession(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrSessionInvalid.Message())
		}

		c.Set(ownerIDKey, session.OwnerID)

		return next(c)
	}
}

// GetOwnerID extracts the verified owner ID set by Authenticate.
func GetOwnerID(c echo.Context) (string, bool) {
	ownerID, ok := c.Get(ownerIDKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}

	return ownerID, true
}
