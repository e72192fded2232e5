// Package service defines interfaces for external collaborators consumed by
// the application layer: the identity provider, the media store, QR code
// generation and the audit event publisher.
package service

import (
	"context"
	"errors"
)

// ErrInvalidSession is returned when a session token cannot be verified.
var ErrInvalidSession = errors.New("invalid session")

// Session is the result of verifying an opaque session token.
type Session struct {
	// OwnerID is the stable, opaque user identifier issued by the identity
	// provider. It is the only authority for profile ownership; client
	// payloads are never trusted for it.
	OwnerID string
}

// SessionVerifier is the identity provider adapter. The provider itself
// (token issuance, login, revocation) is a black box; the application only
// verifies tokens and extracts the owner identifier.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*Session, error)
}
