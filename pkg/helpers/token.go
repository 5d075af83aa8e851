package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// KeyMagicLink is the Redis key holding a pending magic-link login payload.
func KeyMagicLink(token string) string {
	return "auth:magiclink:" + token
}

// GenToken returns n random bytes encoded URL-safe, used for magic-link
// tokens.
func GenToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
