package auth

import (
	"context"

	"careconnect/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseVerifier verifies Firebase ID tokens against the configured project.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a session verifier backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsPath string) (service.SessionVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{
		client: client,
	}, nil
}

// VerifySession checks the ID token signature, audience and expiry and maps
// the Firebase UID onto the opaque owner identifier.
func (v *firebaseVerifier) VerifySession(ctx context.Context, token string) (*service.Session, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSession, err.Error())
	}

	return &service.Session{OwnerID: decoded.UID}, nil
}
