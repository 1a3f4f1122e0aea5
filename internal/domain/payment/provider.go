package payment

import "context"

// Intent is the provider-agnostic view of an external payment intent.
// Terminal means the intent already succeeded or was cancelled and can
// no longer be confirmed by the client.
type Intent struct {
	ID           string
	ClientSecret string
	Terminal     bool
}

type Provider interface {
	CreateIntent(
		ctx context.Context,
		amountCents int64,
		currency string,
		metadata map[string]string,
	) (*Intent, error)

	GetIntent(
		ctx context.Context,
		id string,
	) (*Intent, error)
}
