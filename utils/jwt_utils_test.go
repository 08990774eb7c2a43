package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wecare/utils"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWTToken("test-secret", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	issuer, err := utils.ParseJWTToken("test-secret", token)
	require.NoError(t, err)
	require.Equal(t, "admin", issuer)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWTToken("test-secret", "admin")
	require.NoError(t, err)

	_, err = utils.ParseJWTToken("other-secret", token)
	require.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	_, err := utils.ParseJWTToken("test-secret", "not.a.token")
	require.Error(t, err)
}
