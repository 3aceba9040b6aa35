package ports

import "context"

// SettlePaymentInput carries the client's confirmation that a charge
// completed, referencing the cart lines it settled.
type SettlePaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	CartItemIDs   []string
	MenuItemIDs   []string
}

// SettleResult reports the combined outcome of recording the payment and
// reconciling the cart.
type SettleResult struct {
	PaymentID    string
	DeletedCount int64
	// Duplicate is true when the transaction id was already settled and no
	// second payment record was written.
	Duplicate bool
}

// CheckoutService orchestrates the two-phase checkout: authorize a charge
// intent first, then — on a later confirmation request — record the payment
// and clear the settled cart lines.
type CheckoutService interface {
	// CreateIntent converts the decimal price to truncated integer cents and
	// asks the charge service for a client secret. No ledger is touched.
	CreateIntent(ctx context.Context, email string, price float64) (string, error)
	// Settle inserts a payment record and then bulk-deletes the referenced
	// cart items. The insert always happens before the delete; a delete
	// failure after a successful insert surfaces as domain.ErrCartReconcile
	// while the payment record stays in place.
	Settle(ctx context.Context, in SettlePaymentInput) (*SettleResult, error)
}
