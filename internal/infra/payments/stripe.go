package payments

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	domain "barberhub/internal/domain/payment"
)

// StripeProvider maps the domain payment contract onto Stripe
// PaymentIntents.
type StripeProvider struct{}

func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

func (p *StripeProvider) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
	metadata map[string]string,
) (*domain.Intent, error) {

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return toIntent(pi), nil
}

func (p *StripeProvider) GetIntent(
	ctx context.Context,
	id string,
) (*domain.Intent, error) {

	pi, err := paymentintent.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, err
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *domain.Intent {
	terminal := pi.Status == stripe.PaymentIntentStatusSucceeded ||
		pi.Status == stripe.PaymentIntentStatusCanceled
	return &domain.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Terminal:     terminal,
	}
}

var _ domain.Provider = (*StripeProvider)(nil)
