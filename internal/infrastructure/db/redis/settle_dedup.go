package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const settleTTL = 24 * time.Hour

// SettleDedup provides settlement idempotency checks backed by Redis, keyed by
// the payment provider's transaction id. A replayed confirmation within the
// TTL is recognized and skipped instead of writing a second payment record.
// Key format: settle:<transaction_id>
type SettleDedup struct {
	client *redis.Client
}

// NewSettleDedup creates a SettleDedup wrapping the given Redis client.
func NewSettleDedup(client *redis.Client) *SettleDedup {
	return &SettleDedup{client: client}
}

// IsDuplicate reports whether this transaction has already been settled.
func (d *SettleDedup) IsDuplicate(ctx context.Context, transactionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(transactionID)).Result()
	if err != nil {
		return false, fmt.Errorf("settle dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this transaction has been settled (expires after settleTTL).
func (d *SettleDedup) Mark(ctx context.Context, transactionID string) error {
	return d.client.Set(ctx, d.key(transactionID), "1", settleTTL).Err()
}

func (d *SettleDedup) key(transactionID string) string {
	return "settle:" + transactionID
}
