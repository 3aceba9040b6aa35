package ports

import "github.com/savoria/ordering-system/internal/core/domain"

// TokenCodec issues and verifies signed identity tokens. Both operations are
// pure CPU work against the process-wide signing secret; neither touches I/O.
type TokenCodec interface {
	// Issue mints a signed token asserting the given email, valid for a fixed TTL.
	Issue(email string) (string, error)
	// Verify decodes a token and returns its claims. It fails with
	// domain.ErrInvalidToken on a bad signature, malformed payload, or expiry.
	Verify(token string) (*domain.TokenClaims, error)
}
