package config

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecretKey returns a URL-safe token with 32 bytes of entropy. The
// encoded form is 43 characters, which always satisfies the production
// minimum length.
func GenerateSecretKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
