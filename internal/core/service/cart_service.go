package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// CartService implements owner-scoped cart operations. The ownership invariant
// is enforced twice: explicitly here for listings, and structurally in the
// repository for id-based mutations (all filtered by owner email).
type CartService struct {
	repo ports.CartRepository
	log  zerolog.Logger
}

func NewCartService(repo ports.CartRepository, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

// ListForOwner returns targetEmail's cart. The comparison against authEmail
// happens before any store read, so a forbidden request never reveals whether
// the target cart exists.
func (s *CartService) ListForOwner(ctx context.Context, authEmail, targetEmail string) ([]*domain.CartItem, error) {
	if targetEmail == "" {
		return []*domain.CartItem{}, nil
	}
	if targetEmail != authEmail {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByEmail(ctx, targetEmail)
}

// Add inserts a cart line. The owner email is forced to the authenticated
// identity, discarding whatever the client supplied.
func (s *CartService) Add(ctx context.Context, authEmail string, item *domain.CartItem) (*domain.CartItem, error) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	item.Email = authEmail
	return s.repo.Insert(ctx, item)
}

func (s *CartService) UpdateQuantity(ctx context.Context, authEmail, id string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return s.repo.UpdateQuantity(ctx, id, authEmail, quantity)
}

func (s *CartService) Remove(ctx context.Context, authEmail, id string) (int64, error) {
	return s.repo.Delete(ctx, id, authEmail)
}
