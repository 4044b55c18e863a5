package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-cryptopay/core"
)

// Sign returns the lowercase hex signature Crypto Pay would send for body.
func Sign(token string, body []byte) string {
	secret := sha256.Sum256([]byte(token))
	mac := hmac.New(sha256.New, secret[:])
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// CheckSignature reports whether signature matches body for token. The
// comparison runs in constant time and is case sensitive.
func CheckSignature(signature string, token string, body []byte) bool {
	if signature == "" {
		return false
	}
	expected := Sign(token, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// CheckUpdateSignature signs the JSON encoding of an already decoded update.
// That encoding writes decimal amounts as quoted strings ("125.5") and times in
// Go's RFC 3339 layout, so it cannot reproduce a body that carried amounts as
// JSON numbers or timestamps with millisecond padding. Such deliveries never
// match here; prefer CheckSignature over the raw body.
func CheckUpdateSignature(signature string, token string, update core.Update) (bool, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return false, fmt.Errorf("webhooks: encode update: %w", err)
	}
	return CheckSignature(signature, token, body), nil
}

func headerValue(headers map[string]string, key string) string {
	if len(headers) == 0 {
		return ""
	}
	if value, ok := headers[key]; ok {
		return value
	}
	for current, value := range headers {
		if strings.EqualFold(current, key) {
			return value
		}
	}
	return ""
}
