package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURL(t *testing.T) {
	ct, payload, err := parseDataURL("data:image/jpeg;base64,/9j/4AAQ")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.Equal(t, "/9j/4AAQ", payload)
}

func TestParseDataURLNoColon(t *testing.T) {
	_, _, err := parseDataURL("image/jpeg;base64,/9j/4AAQ")
	assert.Error(t, err)
}

func TestParseDataURLNoComma(t *testing.T) {
	_, _, err := parseDataURL("data:image/jpeg;base64")
	assert.Error(t, err)
}

func TestParseDataURLEmptyPayload(t *testing.T) {
	_, _, err := parseDataURL("data:image/jpeg;base64,")
	assert.Error(t, err)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("image/jpg"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
}
