package ports

import (
	"context"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// CartRepository defines persistence for pending purchase lines.
// All id-based mutations are additionally filtered by owner email, so a
// customer can never touch another customer's cart.
type CartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error)
	Insert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	// UpdateQuantity sets the quantity of the owner's cart item. It fails with
	// domain.ErrCartItemNotFound when no matching item exists.
	UpdateQuantity(ctx context.Context, id, email string, quantity int) error
	// Delete removes the owner's cart item and reports how many documents were
	// removed. Deleting an absent id is not an error: the count is simply zero.
	Delete(ctx context.Context, id, email string) (int64, error)
	// DeleteByIDs bulk-removes the owner's cart items whose ids appear in ids.
	// Ids already removed (or never present) are skipped silently.
	DeleteByIDs(ctx context.Context, email string, ids []string) (int64, error)
}
