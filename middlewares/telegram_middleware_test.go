package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithHeader(key, value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/nutrition", nil)
	if key != "" {
		c.Request.Header.Set(key, value)
	}
	return c
}

func TestParseTimezoneOffset(t *testing.T) {
	c := contextWithHeader("x-timezone-offset", "-180")
	assert.Equal(t, -180, ParseTimezoneOffset(c, -180))

	c = contextWithHeader("x-timezone-offset", "300")
	assert.Equal(t, 300, ParseTimezoneOffset(c, -180))
}

func TestParseTimezoneOffsetExplicitZero(t *testing.T) {
	// "0" is a real offset (UTC), not a missing value.
	c := contextWithHeader("x-timezone-offset", "0")
	assert.Equal(t, 0, ParseTimezoneOffset(c, -180))
}

func TestParseTimezoneOffsetFallbacks(t *testing.T) {
	c := contextWithHeader("", "")
	assert.Equal(t, -180, ParseTimezoneOffset(c, -180))

	c = contextWithHeader("x-timezone-offset", "tomorrow")
	assert.Equal(t, -180, ParseTimezoneOffset(c, -180))
}
