package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("govportal", "admin", time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "govportal")
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Username)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", "admin", time.Hour, "secret")
	require.Error(t, err)

	_, err = GenerateJWTToken("govportal", "", time.Hour, "secret")
	require.Error(t, err)

	_, err = GenerateJWTToken("govportal", "admin", 0, "secret")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("govportal", "admin", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-key", "govportal")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", "admin", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "govportal")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("govportal", "admin", time.Nanosecond, "secret")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "govportal")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = ParseBearerToken("abc.def.ghi")
	require.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	require.Error(t, err)
}
