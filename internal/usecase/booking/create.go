package booking

import (
	"context"
	"time"

	"barberhub/internal/audit"
	domain "barberhub/internal/domain/booking"
	"barberhub/internal/dto"
	"barberhub/internal/httperr"
	"barberhub/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID    uint
	BarberID    uint
	ServiceID   uint
	ScheduledAt time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*dto.BookingView, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.NotFoundError("service_not_found", "Service not found.")
	}

	// The service must belong to the barber the client selected.
	if svc.BarberID != in.BarberID {
		return nil, httperr.ValidationError(
			"service_barber_mismatch",
			"This service does not belong to the selected barber.",
		)
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.NotFoundError("barber_not_found", "Barber not found.")
	}

	// Price is snapshotted here; later service price changes never touch
	// existing bookings.
	b := &models.Booking{
		ClientID:        in.ClientID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		ScheduledAt:     in.ScheduledAt,
		Status:          string(domain.InitialStatus()),
		TotalPriceCents: svc.PriceCents,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	view := bookingView(b)
	view.Barber = barberSummary(barber)
	view.Service = serviceSummary(svc)
	return &view, nil
}
