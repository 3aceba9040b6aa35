package ports

import (
	"context"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// CategoryStat is one row of the per-category revenue breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

// PaymentRepository defines persistence for the append-only payment ledger.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
	// TotalRevenue sums the price field over the whole ledger.
	TotalRevenue(ctx context.Context) (float64, error)
	// CategoryStats joins payments against the menu catalog and groups order
	// count and revenue by category, rounded to 2 decimal places. Categories
	// with no matching payments are omitted.
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
	EstimatedCount(ctx context.Context) (int64, error)
}
