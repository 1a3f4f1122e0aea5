package payment

import (
	"context"
	"strconv"

	"barberhub/internal/audit"
	domain "barberhub/internal/domain/payment"
	"barberhub/internal/httperr"
	"barberhub/internal/models"
)

type Repository interface {
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	SetPaymentIntentID(
		ctx context.Context,
		bookingID uint,
		intentID string,
	) error
}

type IntentResult struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// CreateIntent produces the payment handle the client confirms with the
// provider. At most one live intent exists per booking: a pending intent
// is returned as-is, a terminal one is replaced.
type CreateIntent struct {
	repo     Repository
	provider domain.Provider
	currency string
	audit    *audit.Dispatcher
}

func NewCreateIntent(
	repo Repository,
	provider domain.Provider,
	currency string,
	audit *audit.Dispatcher,
) *CreateIntent {
	return &CreateIntent{
		repo:     repo,
		provider: provider,
		currency: currency,
		audit:    audit,
	}
}

func (uc *CreateIntent) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*IntentResult, error) {

	// Deployments without a Stripe key run with no provider at all.
	if uc.provider == nil {
		return nil, httperr.TransientError(
			"payments_not_configured",
			"Payments are not configured on this server.",
		)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.NotFoundError("booking_not_found", "Booking not found.")
	}

	// Only the booked client may pay for the booking.
	if b.ClientID != userID {
		return nil, httperr.ForbiddenError(
			"not_your_booking",
			"You can only pay for your own bookings.",
		)
	}

	if b.TotalPriceCents <= 0 {
		return nil, httperr.ValidationError(
			"invalid_amount",
			"This booking has no payable amount.",
		)
	}

	// Reuse the existing intent while it is still confirmable. This
	// makes repeated calls (app restart, retry) idempotent.
	if b.StripePaymentIntentID != "" {
		existing, err := uc.provider.GetIntent(ctx, b.StripePaymentIntentID)
		if err != nil {
			return nil, httperr.TransientError(
				"payment_provider_error",
				"The payment provider could not be reached.",
			)
		}
		if !existing.Terminal {
			return &IntentResult{
				ClientSecret:    existing.ClientSecret,
				PaymentIntentID: existing.ID,
			}, nil
		}
	}

	// The amount always comes from the stored snapshot, never from the
	// request.
	intent, err := uc.provider.CreateIntent(ctx, b.TotalPriceCents, uc.currency, map[string]string{
		"bookingId": strconv.FormatUint(uint64(b.ID), 10),
		"clientId":  strconv.FormatUint(uint64(b.ClientID), 10),
	})
	if err != nil {
		return nil, httperr.TransientError(
			"payment_provider_error",
			"The payment provider could not be reached.",
		)
	}

	if err := uc.repo.SetPaymentIntentID(ctx, b.ID, intent.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "payment_intent_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return &IntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}
