package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(987654321)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(987654321), id)
}

func TestParseJWTGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT(1)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
