// Package auth provides the access-token primitives the backend mounts
// behind its authentication middleware: issuing and verifying JWTs using
// the key, algorithm and lifetime from the loaded settings.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"classrent/internal/config"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed or expired token.
var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and verifies access tokens. Build one per process from the
// loaded settings.
type Issuer struct {
	method jwt.SigningMethod
	secret []byte
	ttl    time.Duration
}

func NewIssuer(cfg *config.Settings) (*Issuer, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based, cannot sign with SECRET_KEY", cfg.Algorithm)
	}
	return &Issuer{
		method: method,
		secret: []byte(cfg.SecretKey),
		ttl:    cfg.AccessTokenTTL,
	}, nil
}

// Issue creates a token for subject expiring after the configured lifetime.
func (i *Issuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	return jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
}

// Verify parses raw and returns its claims. Tokens signed with a different
// key or algorithm, or past their expiry, come back as ErrInvalidToken.
func (i *Issuer) Verify(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{i.method.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
