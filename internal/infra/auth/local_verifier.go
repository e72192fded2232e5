package auth

import (
	"context"

	"careconnect/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// localVerifier verifies HMAC-signed tokens against a shared secret. It
// exists for local development and integration tests, where standing up the
// hosted identity provider is not practical.
type localVerifier struct {
	secret []byte
}

// NewLocalVerifier creates a development session verifier using the shared secret.
func NewLocalVerifier(secret string) service.SessionVerifier {
	return &localVerifier{
		secret: []byte(secret),
	}
}

// VerifySession parses the token, checks the HS256 signature and expiry, and
// uses the subject claim as the owner identifier.
func (v *localVerifier) VerifySession(_ context.Context, token string) (*service.Session, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSession, err.Error())
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.Wrap(service.ErrInvalidSession, "subject claim missing")
	}

	return &service.Session{OwnerID: subject}, nil
}
