package ports

import "context"

// AdminStats is the platform-wide summary shown on the admin dashboard.
type AdminStats struct {
	Revenue  float64 `json:"revenue"`
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
}

// UserStats is the self-service purchase summary for one customer.
type UserStats struct {
	TotalSpent          float64 `json:"totalSpent"`
	TotalProductsBought int     `json:"totalProductsBought"`
}

// StatsService derives read-side aggregates from the payment ledger.
type StatsService interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	OrderStats(ctx context.Context) ([]CategoryStat, error)
	UserStats(ctx context.Context, email string) (*UserStats, error)
}
