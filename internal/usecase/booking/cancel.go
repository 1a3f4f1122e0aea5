package booking

import (
	"context"

	"barberhub/internal/audit"
	domain "barberhub/internal/domain/booking"
	"barberhub/internal/dto"
	"barberhub/internal/httperr"
)

// CancelBooking is the client-side path: a client may cancel their own
// booking as long as it has not been finalized.
type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	clientID uint,
) (*dto.BookingView, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.NotFoundError("booking_not_found", "Booking not found.")
	}

	if b.ClientID != clientID {
		return nil, httperr.ForbiddenError(
			"not_your_booking",
			"You can only cancel your own bookings.",
		)
	}

	from := domain.Status(b.Status)
	if err := domain.ValidateClientCancel(from); err != nil {
		return nil, err
	}

	ok, err := uc.repo.UpdateBookingStatus(ctx, b.ID, from, domain.StatusCanceled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ConflictError(
			"booking_status_changed",
			"The booking status changed while processing, try again.",
		)
	}
	b.Status = string(domain.StatusCanceled)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &clientID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"from": string(from)},
	})

	view := bookingView(b)
	if barber, err := uc.repo.GetBarber(ctx, b.BarberID); err == nil {
		view.Barber = barberSummary(barber)
	}
	if svc, err := uc.repo.GetService(ctx, b.ServiceID); err == nil {
		view.Service = serviceSummary(svc)
	}
	return &view, nil
}
