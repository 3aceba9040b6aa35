package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// StripeCharger implements ports.ChargeService against the Stripe
// PaymentIntents API. It holds its own client instance so the secret key is
// plumbed in at construction rather than set on the package-level global.
type StripeCharger struct {
	api *client.API
}

func NewStripeCharger(secretKey string) *StripeCharger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCharger{api: api}
}

// CreateIntent authorizes a card charge for the given amount in minor units
// and returns the client secret the caller uses to complete payment. Any
// provider failure surfaces as domain.ErrChargeFailed.
func (s *StripeCharger) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrChargeFailed, err)
	}
	return pi.ClientSecret, nil
}
