package booking

import (
	"context"

	domain "barberhub/internal/domain/booking"
	"barberhub/internal/dto"
	"barberhub/internal/httperr"
)

// ListForBarber returns the agenda of the barber bound to the given
// user account, including client contact info.
type ListForBarber struct {
	repo domain.Repository
}

func NewListForBarber(repo domain.Repository) *ListForBarber {
	return &ListForBarber{repo: repo}
}

func (uc *ListForBarber) Execute(
	ctx context.Context,
	barberUserID uint,
) ([]dto.BookingView, error) {

	profile, err := uc.repo.GetBarberByUser(ctx, barberUserID)
	if err != nil {
		return nil, httperr.ForbiddenError(
			"not_a_barber",
			"This account has no barber profile.",
		)
	}

	bookings, err := uc.repo.ListBookingsForBarber(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	_, services, clients, err := relatedEntities(ctx, uc.repo, bookings, true)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BookingView, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		view := bookingView(b)
		view.Barber = barberSummary(profile)
		if s, ok := services[b.ServiceID]; ok {
			view.Service = serviceSummary(s)
		}
		if u, ok := clients[b.ClientID]; ok {
			view.Client = clientSummary(u)
		}
		views = append(views, view)
	}
	return views, nil
}
