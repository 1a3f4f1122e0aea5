package booking

import (
	"context"

	domain "barberhub/internal/domain/booking"
	"barberhub/internal/dto"
	"barberhub/internal/models"
)

type ListForClient struct {
	repo domain.Repository
}

func NewListForClient(repo domain.Repository) *ListForClient {
	return &ListForClient{repo: repo}
}

func (uc *ListForClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.BookingView, error) {

	bookings, err := uc.repo.ListBookingsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	barbers, services, _, err := relatedEntities(ctx, uc.repo, bookings, false)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BookingView, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		view := bookingView(b)
		if p, ok := barbers[b.BarberID]; ok {
			view.Barber = barberSummary(p)
		}
		if s, ok := services[b.ServiceID]; ok {
			view.Service = serviceSummary(s)
		}
		views = append(views, view)
	}
	return views, nil
}

// relatedEntities batch-fetches the barbers, services and (optionally)
// clients referenced by a booking page in at most three IN queries.
func relatedEntities(
	ctx context.Context,
	repo domain.Repository,
	bookings []models.Booking,
	withClients bool,
) (map[uint]*models.BarberProfile, map[uint]*models.Service, map[uint]*models.User, error) {

	barberIDs := make([]uint, 0, len(bookings))
	serviceIDs := make([]uint, 0, len(bookings))
	clientIDs := make([]uint, 0, len(bookings))
	seenBarber := map[uint]bool{}
	seenService := map[uint]bool{}
	seenClient := map[uint]bool{}

	for i := range bookings {
		b := &bookings[i]
		if !seenBarber[b.BarberID] {
			seenBarber[b.BarberID] = true
			barberIDs = append(barberIDs, b.BarberID)
		}
		if !seenService[b.ServiceID] {
			seenService[b.ServiceID] = true
			serviceIDs = append(serviceIDs, b.ServiceID)
		}
		if withClients && !seenClient[b.ClientID] {
			seenClient[b.ClientID] = true
			clientIDs = append(clientIDs, b.ClientID)
		}
	}

	profiles, err := repo.ListBarbersByIDs(ctx, barberIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	services, err := repo.ListServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	barberByID := make(map[uint]*models.BarberProfile, len(profiles))
	for i := range profiles {
		barberByID[profiles[i].ID] = &profiles[i]
	}
	serviceByID := make(map[uint]*models.Service, len(services))
	for i := range services {
		serviceByID[services[i].ID] = &services[i]
	}

	var clientByID map[uint]*models.User
	if withClients {
		users, err := repo.ListUsersByIDs(ctx, clientIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		clientByID = make(map[uint]*models.User, len(users))
		for i := range users {
			clientByID[users[i].ID] = &users[i]
		}
	}

	return barberByID, serviceByID, clientByID, nil
}
