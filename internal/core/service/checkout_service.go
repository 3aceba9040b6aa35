package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/savoria/ordering-system/internal/api/metrics"
	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// DedupChecker abstracts the settlement idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, transactionID string) (bool, error)
	Mark(ctx context.Context, transactionID string) error
}

type checkoutService struct {
	payments ports.PaymentRepository
	carts    ports.CartRepository
	charges  ports.ChargeService
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewCheckoutService returns a CheckoutService implementation.
func NewCheckoutService(
	payments ports.PaymentRepository,
	carts ports.CartRepository,
	charges ports.ChargeService,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.CheckoutService {
	return &checkoutService{
		payments: payments,
		carts:    carts,
		charges:  charges,
		dedup:    dedup,
		log:      log,
	}
}

// CreateIntent asks the charge service to authorize the amount and returns the
// client secret for completing payment client-side. A failure here halts the
// checkout with no ledger mutation.
func (s *checkoutService) CreateIntent(ctx context.Context, email string, price float64) (string, error) {
	if price <= 0 {
		return "", domain.ErrInvalidInput
	}

	secret, err := s.charges.CreateIntent(ctx, toMinorUnits(price), "usd")
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).Str("email", email).Float64("price", price).Msg("charge authorization failed")
		return "", err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("email", email).Float64("price", price).Msg("payment intent created")
	return secret, nil
}

// Settle records the payment and then clears the settled cart lines, in that
// order. The two writes are not atomic: when the delete fails after a
// successful insert, the payment record stays (order history stays correct)
// and the caller sees ErrCartReconcile so the stale cart is observable.
func (s *checkoutService) Settle(ctx context.Context, in ports.SettlePaymentInput) (*ports.SettleResult, error) {
	if in.TransactionID != "" {
		dup, err := s.dedup.IsDuplicate(ctx, in.TransactionID)
		if err != nil {
			s.log.Warn().Err(err).Str("transaction_id", in.TransactionID).Msg("dedup check failed, processing anyway")
		} else if dup {
			metrics.SettleDedupTotal.WithLabelValues("hit").Inc()
			s.log.Info().Str("transaction_id", in.TransactionID).Msg("duplicate settlement skipped")
			return &ports.SettleResult{Duplicate: true}, nil
		} else {
			metrics.SettleDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	payment := &domain.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		CartItemIDs:   in.CartItemIDs,
		MenuItemIDs:   in.MenuItemIDs,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("settle payment: record: %w", err)
	}

	if in.TransactionID != "" {
		if markErr := s.dedup.Mark(ctx, in.TransactionID); markErr != nil {
			s.log.Warn().Err(markErr).Str("transaction_id", in.TransactionID).Msg("failed to set settle dedup key")
		}
	}

	deleted, err := s.carts.DeleteByIDs(ctx, in.Email, in.CartItemIDs)
	if err != nil {
		s.log.Error().Err(err).
			Str("payment_id", created.ID).
			Str("email", in.Email).
			Msg("payment recorded but cart reconciliation failed")
		return &ports.SettleResult{PaymentID: created.ID}, fmt.Errorf("settle payment: %w", domain.ErrCartReconcile)
	}

	metrics.PaymentsSettledTotal.Inc()
	metrics.PaymentAmount.Observe(in.Price)

	s.log.Info().
		Str("payment_id", created.ID).
		Str("email", in.Email).
		Float64("price", in.Price).
		Int64("cart_items_cleared", deleted).
		Msg("checkout settled")

	return &ports.SettleResult{PaymentID: created.ID, DeletedCount: deleted}, nil
}

// toMinorUnits converts a decimal price to integer cents, truncating
// fractional cents.
func toMinorUnits(price float64) int64 {
	return int64(math.Trunc(price * 100))
}
