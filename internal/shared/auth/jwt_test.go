package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	token, err := SignJWT(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Email:            "jane@example.com",
	})
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "jane@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
}

func TestVerifyRejectsExpiredAndForeignTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	expired, err := SignJWT(Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	require.NoError(t, err)
	_, err = VerifyJWT(expired)
	require.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = VerifyJWT(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyJWT("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignRequiresSecretInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "production")

	_, err := SignJWT(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	require.Error(t, err)
}
