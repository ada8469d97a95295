package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func newTestAuthenticator(t *testing.T, secret string, now time.Time) *JWTAuthenticator {
	t.Helper()

	a, err := NewJWTAuthenticator(secret)
	require.NoError(t, err)

	return a.WithClock(func() time.Time { return now })
}

func TestNewJWTAuthenticator_EmptySecret(t *testing.T) {
	_, err := NewJWTAuthenticator("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAuthenticator(t, testSecret, issuedAt)

	token, err := a.GenerateToken("665f1c2e9b1e8a0012345678")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "665f1c2e9b1e8a0012345678", claims.UserID)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(TokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	signer := newTestAuthenticator(t, testSecret, issuedAt)

	validToken, err := signer.GenerateToken("user-1")
	require.NoError(t, err)

	foreignToken, err := newTestAuthenticator(t, "another-secret-that-is-long-enough-too", issuedAt).
		GenerateToken("user-1")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-1"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "valid", token: validToken, now: issuedAt.Add(time.Hour)},
		{name: "just before expiry", token: validToken, now: issuedAt.Add(TokenLifetime - time.Second)},
		{name: "expired", token: validToken, now: issuedAt.Add(TokenLifetime + time.Second), wantErr: ErrExpiredToken},
		{name: "different signing key", token: foreignToken, now: issuedAt, wantErr: ErrInvalidToken},
		{name: "alg none", token: noneToken, now: issuedAt, wantErr: ErrInvalidToken},
		{name: "missing exp", token: noExpiry, now: issuedAt, wantErr: ErrInvalidToken},
		{name: "missing user id", token: noUser, now: issuedAt, wantErr: ErrInvalidToken},
		{name: "malformed", token: "not.a.jwt", now: issuedAt, wantErr: ErrInvalidToken},
		{name: "empty", token: "", now: issuedAt, wantErr: ErrInvalidToken},
		{name: "tampered payload", token: tamper(validToken), now: issuedAt, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := signer.WithClock(func() time.Time { return tt.now })

			claims, err := verifier.ValidateToken(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
		})
	}
}

// tamper swaps the payload segment for one claiming a different user.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "someone-else"}).
		SignedString([]byte("irrelevant"))
	parts[1] = strings.Split(forged, ".")[1]

	return strings.Join(parts, ".")
}
