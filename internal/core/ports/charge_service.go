package ports

import "context"

// ChargeService authorizes a monetary charge with the external payment
// provider. Amounts are integer minor currency units (cents). Failures
// surface as domain.ErrChargeFailed; retries, if any, belong to the client.
type ChargeService interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}
