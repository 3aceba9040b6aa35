package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/savoria/ordering-system/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenCodec issues and verifies HS256 identity tokens. It is stateless aside
// from the signing secret, which is fixed at construction and never rotated.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token asserting email, expiring ttl after now. There is no
// refresh mechanism and no server-side record of issued tokens.
func (c *TokenCodec) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify decodes and validates a token. Signature mismatch, a malformed
// payload, an unexpected algorithm, and expiry all collapse into
// domain.ErrInvalidToken: callers only need to know the token is unusable.
func (c *TokenCodec) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, domain.ErrInvalidToken
	}
	return &domain.TokenClaims{Email: email}, nil
}
