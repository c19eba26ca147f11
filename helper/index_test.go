package helper

import (
	"testing"

	"prephub_backend/constants"
	"prephub_backend/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPasswordHash("secret123", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidEmail(t *testing.T) {
	require.True(t, ValidEmail("user@example.com"))
	require.False(t, ValidEmail("not-an-email"))
	require.False(t, ValidEmail(""))
}

func TestIsListerRole(t *testing.T) {
	for _, role := range constants.ListerRoles {
		require.True(t, IsListerRole(role))
	}
	require.False(t, IsListerRole(constants.ROLE_STUDENT))
	require.False(t, IsListerRole(constants.ROLE_ADMIN))
	require.False(t, IsListerRole(""))
}

func TestAccessTokenCarriesClaims(t *testing.T) {
	claim := model.TokenClaim{UserId: 7, Email: "user@example.com", Role: constants.ROLE_COACHING}

	signed, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(signed)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, float64(7), claims["userId"])
	require.Equal(t, "user@example.com", claims["email"])
	require.Equal(t, constants.ROLE_COACHING, claims["role"])
}

func TestRefreshTokenOmitsRole(t *testing.T) {
	claim := model.TokenClaim{UserId: 7, Email: "user@example.com", Role: constants.ROLE_COACHING}

	signed, err := GenerateRefreshToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(signed)
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, float64(7), claims["userId"])
	_, hasRole := claims["role"]
	require.False(t, hasRole)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	claim := model.TokenClaim{UserId: 7, Email: "user@example.com"}

	first, err := GenerateRefreshToken(claim)
	require.NoError(t, err)
	second, err := GenerateRefreshToken(claim)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	require.Error(t, err)
}
