package ports

import (
	"context"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// CartService defines owner-scoped cart operations. authEmail is always the
// authenticated identity taken from the verified token, never client input.
type CartService interface {
	// ListForOwner returns the target email's cart. An empty target yields an
	// empty list; a target different from authEmail fails with
	// domain.ErrForbidden regardless of whether that cart exists.
	ListForOwner(ctx context.Context, authEmail, targetEmail string) ([]*domain.CartItem, error)
	// Add inserts a cart line owned by authEmail.
	Add(ctx context.Context, authEmail string, item *domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, authEmail, id string, quantity int) error
	// Remove deletes the owner's cart item; removing an absent id succeeds
	// with a zero count.
	Remove(ctx context.Context, authEmail, id string) (int64, error)
}
