package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifier_EmptySecret(t *testing.T) {
	_, err := NewVerifier("")
	require.Error(t, err)
}

func TestVerifier_RoundTrip(t *testing.T) {
	v, err := NewVerifier("test-secret")
	require.NoError(t, err)

	token, err := v.Issue("user-42", time.Hour)
	require.NoError(t, err)

	userID, err := v.UserID(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier("test-secret")
	require.NoError(t, err)
	other, err := NewVerifier("other-secret")
	require.NoError(t, err)

	expired, err := v.Issue("user-42", -time.Minute)
	require.NoError(t, err)

	foreign, err := other.Issue("user-42", time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	nulSubject, err := v.Issue("user\x0042", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user-42",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = v.UserID("")
	assert.ErrorIs(t, err, ErrMissingToken)

	for name, token := range map[string]string{
		"garbage":     "not-a-jwt",
		"expired":     expired,
		"foreign":     foreign,
		"no subject":  noSubject,
		"no expiry":   noExpiry,
		"nul subject": nulSubject,
	} {
		_, err := v.UserID(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}
