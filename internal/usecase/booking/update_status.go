package booking

import (
	"context"

	"barberhub/internal/audit"
	domain "barberhub/internal/domain/booking"
	"barberhub/internal/dto"
	"barberhub/internal/httperr"
)

// UpdateStatus is the operator path: only the barber owning the
// booking's profile may move it, and only along the allowed transitions.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	barberUserID uint,
	bookingID uint,
	target string,
) (*dto.BookingView, error) {

	profile, err := uc.repo.GetBarberByUser(ctx, barberUserID)
	if err != nil {
		return nil, httperr.ForbiddenError(
			"not_a_barber",
			"This account has no barber profile.",
		)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.NotFoundError("booking_not_found", "Booking not found.")
	}

	if b.BarberID != profile.ID {
		return nil, httperr.ForbiddenError(
			"not_your_booking",
			"You can only manage bookings for your own shop.",
		)
	}

	to, valid := domain.Parse(target)
	if !valid {
		return nil, httperr.ValidationError("invalid_status", "Unknown booking status.")
	}

	from := domain.Status(b.Status)
	if err := domain.ValidateOperatorTransition(from, to); err != nil {
		return nil, err
	}

	ok, err := uc.repo.UpdateBookingStatus(ctx, b.ID, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ConflictError(
			"booking_status_changed",
			"The booking status changed while processing, try again.",
		)
	}
	b.Status = string(to)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberUserID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	view := bookingView(b)
	if svc, err := uc.repo.GetService(ctx, b.ServiceID); err == nil {
		view.Service = serviceSummary(svc)
	}
	if users, err := uc.repo.ListUsersByIDs(ctx, []uint{b.ClientID}); err == nil && len(users) == 1 {
		view.Client = clientSummary(&users[0])
	}
	return &view, nil
}
