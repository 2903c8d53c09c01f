package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// WebAppUser is the subset of the Telegram WebApp user payload the backend
// cares about.
type WebAppUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	PhotoURL  string `json:"photo_url"`
}

// VerifyInitData checks the signature of a Mini App initData string against
// the bot token, per Telegram's documented scheme: the hash field is the
// hex HMAC-SHA256 of the sorted key=value lines, keyed by
// HMAC-SHA256("WebAppData", botToken).
func VerifyInitData(initData, botToken string) (*WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("malformed initData: %w", err)
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, fmt.Errorf("initData has no hash")
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	dataCheckString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheckString))
	want := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(want), []byte(gotHash)) {
		return nil, fmt.Errorf("initData signature mismatch")
	}

	var user WebAppUser
	if raw := values.Get("user"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("bad user payload: %w", err)
		}
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("initData carries no user id")
	}
	return &user, nil
}
