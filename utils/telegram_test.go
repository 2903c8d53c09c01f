package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func TestVerifyInitData(t *testing.T) {
	const token = "12345:test-token"
	initData := signInitData(t, token, map[string]string{
		"auth_date": "1710500000",
		"query_id":  "AAF3xyz",
		"user":      `{"id":987654321,"username":"bro","first_name":"Серёжа","photo_url":"https://t.me/p.jpg"}`,
	})

	user, err := VerifyInitData(initData, token)
	require.NoError(t, err)
	assert.Equal(t, int64(987654321), user.ID)
	assert.Equal(t, "bro", user.Username)
	assert.Equal(t, "Серёжа", user.FirstName)
}

func TestVerifyInitDataWrongToken(t *testing.T) {
	initData := signInitData(t, "12345:test-token", map[string]string{
		"auth_date": "1710500000",
		"user":      `{"id":1}`,
	})

	_, err := VerifyInitData(initData, "6789:other-token")
	assert.Error(t, err)
}

func TestVerifyInitDataTampered(t *testing.T) {
	const token = "12345:test-token"
	initData := signInitData(t, token, map[string]string{
		"auth_date": "1710500000",
		"user":      `{"id":1,"username":"bro"}`,
	})
	tampered := strings.Replace(initData, "bro", "eve", 1)

	_, err := VerifyInitData(tampered, token)
	assert.Error(t, err)
}

func TestVerifyInitDataMissingHash(t *testing.T) {
	_, err := VerifyInitData("auth_date=1710500000", "12345:test-token")
	assert.Error(t, err)
}

func TestVerifyInitDataNoUser(t *testing.T) {
	const token = "12345:test-token"
	initData := signInitData(t, token, map[string]string{"auth_date": "1710500000"})

	_, err := VerifyInitData(initData, token)
	assert.Error(t, err)
}
