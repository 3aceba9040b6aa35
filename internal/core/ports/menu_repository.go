package ports

import (
	"context"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// MenuRepository defines persistence for the menu catalog.
type MenuRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	EstimatedCount(ctx context.Context) (int64, error)
}

// ReviewRepository reads customer reviews. Reviews are written out of band.
type ReviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
}
