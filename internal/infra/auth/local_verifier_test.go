package auth

import (
	"context"
	"testing"
	"time"

	"careconnect/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "local-dev-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestLocalVerifier_VerifySession_Valid(t *testing.T) {
	verifier := NewLocalVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	session, err := verifier.VerifySession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "owner-123", session.OwnerID)
}

func TestLocalVerifier_VerifySession_WrongSecret(t *testing.T) {
	verifier := NewLocalVerifier(testSecret)
	token := signToken(t, "a-different-secret", jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.VerifySession(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestLocalVerifier_VerifySession_Expired(t *testing.T) {
	verifier := NewLocalVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := verifier.VerifySession(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestLocalVerifier_VerifySession_MissingSubject(t *testing.T) {
	verifier := NewLocalVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.VerifySession(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestLocalVerifier_VerifySession_Garbage(t *testing.T) {
	verifier := NewLocalVerifier(testSecret)

	_, err := verifier.VerifySession(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}

func TestLocalVerifier_VerifySession_NoneAlgorithmRejected(t *testing.T) {
	verifier := NewLocalVerifier(testSecret)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.VerifySession(context.Background(), unsigned)
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}
