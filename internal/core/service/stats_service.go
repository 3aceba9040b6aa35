package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/savoria/ordering-system/internal/core/ports"
)

type statsService struct {
	payments ports.PaymentRepository
	users    ports.UserRepository
	menu     ports.MenuRepository
	log      zerolog.Logger
}

// NewStatsService returns a StatsService deriving aggregates from the payment
// ledger. All reads are full scans or store-side aggregations; nothing is
// maintained incrementally.
func NewStatsService(
	payments ports.PaymentRepository,
	users ports.UserRepository,
	menu ports.MenuRepository,
	log zerolog.Logger,
) ports.StatsService {
	return &statsService{payments: payments, users: users, menu: menu, log: log}
}

func (s *statsService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: revenue: %w", err)
	}
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: users: %w", err)
	}
	products, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: products: %w", err)
	}
	orders, err := s.payments.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: orders: %w", err)
	}

	return &ports.AdminStats{
		Revenue:  revenue,
		Users:    users,
		Products: products,
		Orders:   orders,
	}, nil
}

func (s *statsService) OrderStats(ctx context.Context) ([]ports.CategoryStat, error) {
	stats, err := s.payments.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return stats, nil
}

// UserStats scans only the caller's payments. TotalProductsBought counts cart
// lines across payments, not distinct menu items.
func (s *statsService) UserStats(ctx context.Context, email string) (*ports.UserStats, error) {
	payments, err := s.payments.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	out := &ports.UserStats{}
	for _, p := range payments {
		out.TotalSpent += p.Price
		out.TotalProductsBought += len(p.CartItemIDs)
	}
	return out, nil
}
